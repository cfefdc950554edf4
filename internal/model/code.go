package model

import (
	"time"
)

// Well-known code names seeded out of the box. System-defined codes
// come with the platform and cannot be renamed or removed; only their
// values may change.
const (
	CodeAddressType    = "AddressType"
	CodeStateProvince  = "StateProvince"
	CodeCountry        = "Country"
	CodeIdentifierType = "CustomerIdentifierType"
)

// Code is a named category of permissible lookup values, e.g. "AddressType".
type Code struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	IsSystemDefined bool        `gorm:"not null;default:false" json:"is_system_defined"`
	Values          []CodeValue `gorm:"foreignKey:CodeID" json:"values,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CodeValue is one labeled, positioned entry within a Code. Labels are
// unique within their parent code; other entities reference code values
// by id and never own them.
type CodeValue struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CodeID      int64     `gorm:"not null;index;uniqueIndex:uq_code_value_label" json:"code_id"`
	Code        *Code     `gorm:"foreignKey:CodeID" json:"-"`
	Label       string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_code_value_label" json:"label"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	IsMandatory bool      `gorm:"not null;default:false" json:"is_mandatory"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
