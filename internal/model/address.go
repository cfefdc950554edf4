package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is a standalone postal record. State/province and country are
// references into the code-value table; both are optional. CreatedOn and
// UpdatedOn are tenant-local calendar dates, stamped on every create and
// on every update that actually changes a field.
type Address struct {
	ID              int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	AddressLine1    string           `gorm:"type:varchar(500)" json:"address_line_1"`
	AddressLine2    string           `gorm:"type:varchar(500)" json:"address_line_2"`
	AddressLine3    string           `gorm:"type:varchar(500)" json:"address_line_3"`
	TownVillage     string           `gorm:"type:varchar(200)" json:"town_village"`
	City            string           `gorm:"type:varchar(200)" json:"city"`
	CountyDistrict  string           `gorm:"type:varchar(200)" json:"county_district"`
	PostalCode      string           `gorm:"type:varchar(20)" json:"postal_code"`
	Latitude        *decimal.Decimal `gorm:"type:decimal(10,8)" json:"latitude,omitempty"`
	Longitude       *decimal.Decimal `gorm:"type:decimal(11,8)" json:"longitude,omitempty"`
	StateProvinceID *int64           `gorm:"index" json:"state_province_id,omitempty"`
	StateProvince   *CodeValue       `gorm:"foreignKey:StateProvinceID" json:"-"`
	CountryID       *int64           `gorm:"index" json:"country_id,omitempty"`
	Country         *CodeValue       `gorm:"foreignKey:CountryID" json:"-"`
	CreatedOn       time.Time        `gorm:"type:date" json:"created_on"`
	UpdatedOn       time.Time        `gorm:"type:date" json:"updated_on"`
}

// ClientAddress joins one Client to one Address with an address-type
// classification. The Address is exclusively owned: deleting it removes
// the association through the FK cascade, and no Address is ever shared
// across associations.
type ClientAddress struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID      int64      `gorm:"not null;index;uniqueIndex:uq_client_address" json:"client_id"`
	Client        *Client    `gorm:"foreignKey:ClientID" json:"-"`
	AddressID     int64      `gorm:"not null;uniqueIndex:uq_client_address" json:"address_id"`
	Address       *Address   `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE" json:"address,omitempty"`
	AddressTypeID int64      `gorm:"not null;index" json:"address_type_id"`
	AddressType   *CodeValue `gorm:"foreignKey:AddressTypeID" json:"-"`
	IsActive      bool       `gorm:"not null;default:false" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
