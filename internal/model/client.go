package model

import (
	"time"

	"gorm.io/gorm"
)

// Client is the platform customer an Address can be attached to. Only the
// fields the address slice needs are modeled here.
type Client struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountNo   string          `gorm:"type:varchar(20);uniqueIndex" json:"account_no"`
	DisplayName string          `gorm:"type:varchar(255);not null" json:"display_name"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	Addresses   []ClientAddress `gorm:"foreignKey:ClientID" json:"addresses,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
