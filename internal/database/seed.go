package database

import (
	"finadmin/internal/model"

	"gorm.io/gorm"
)

// SeedSystemCodes makes sure the system-defined lookup categories exist.
// Runs at startup; already-present codes are left untouched so operator
// edits to their values survive restarts.
func SeedSystemCodes(db *gorm.DB) error {
	names := []string{
		model.CodeAddressType,
		model.CodeStateProvince,
		model.CodeCountry,
		model.CodeIdentifierType,
	}

	for _, name := range names {
		var count int64
		if err := db.Model(&model.Code{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&model.Code{Name: name, IsSystemDefined: true}).Error; err != nil {
			return err
		}
	}
	return nil
}
