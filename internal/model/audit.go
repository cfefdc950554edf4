package model

import (
	"time"

	"github.com/google/uuid"
)

// Command actions recorded in the audit log. Every write operation is
// logged under one of these before its transaction commits.
const (
	ActionCreateCode = "CREATE_CODE"
	ActionUpdateCode = "UPDATE_CODE"
	ActionDeleteCode = "DELETE_CODE"

	ActionCreateCodeValue = "CREATE_CODEVALUE"
	ActionUpdateCodeValue = "UPDATE_CODEVALUE"
	ActionDeleteCodeValue = "DELETE_CODEVALUE"

	ActionCreateClient = "CREATE_CLIENT"

	ActionCreateClientAddress = "CREATE_CLIENT_ADDRESS"
	ActionUpdateClientAddress = "UPDATE_CLIENT_ADDRESS"
	ActionDeleteClientAddress = "DELETE_CLIENT_ADDRESS"
)

// CommandLog is the audit record for a write command. Its primary key is
// the commandId returned to API callers in every write result.
type CommandLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // nil for unauthenticated internal callers
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Payload    string     `gorm:"type:jsonb" json:"payload"` // request body as submitted
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
