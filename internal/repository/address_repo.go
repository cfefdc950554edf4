package repository

import (
	"context"

	"finadmin/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Address, error)
	Create(ctx context.Context, address *model.Address) error
	Save(ctx context.Context, address *model.Address) error
	Delete(ctx context.Context, id int64) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) FindByID(ctx context.Context, id int64) (*model.Address, error) {
	var address model.Address
	if err := GetDB(ctx, r.db).First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	return translatePgError(GetDB(ctx, r.db).Create(address).Error)
}

func (r *addressRepository) Save(ctx context.Context, address *model.Address) error {
	return translatePgError(GetDB(ctx, r.db).Save(address).Error)
}

// Delete removes the address row; the owning client_addresses row goes
// with it through ON DELETE CASCADE.
func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	return translatePgError(GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Address{}).Error)
}
