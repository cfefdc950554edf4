package repository

import (
	"context"

	"finadmin/internal/model"

	"gorm.io/gorm"
)

type ClientAddressRepository interface {
	FindByID(ctx context.Context, id int64) (*model.ClientAddress, error)
	FindByClientAndAddress(ctx context.Context, clientID, addressID int64) (*model.ClientAddress, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.ClientAddress, error)
	Create(ctx context.Context, assoc *model.ClientAddress) error
	Save(ctx context.Context, assoc *model.ClientAddress) error
}

type clientAddressRepository struct {
	db *gorm.DB
}

func NewClientAddressRepository(db *gorm.DB) ClientAddressRepository {
	return &clientAddressRepository{db: db}
}

func (r *clientAddressRepository) FindByID(ctx context.Context, id int64) (*model.ClientAddress, error) {
	var assoc model.ClientAddress
	if err := GetDB(ctx, r.db).Preload("Address").First(&assoc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *clientAddressRepository) FindByClientAndAddress(ctx context.Context, clientID, addressID int64) (*model.ClientAddress, error) {
	var assoc model.ClientAddress
	err := GetDB(ctx, r.db).Preload("Address").
		First(&assoc, "client_id = ? AND address_id = ?", clientID, addressID).Error
	if err != nil {
		return nil, err
	}
	return &assoc, nil
}

func (r *clientAddressRepository) ListByClient(ctx context.Context, clientID int64) ([]model.ClientAddress, error) {
	var assocs []model.ClientAddress
	err := GetDB(ctx, r.db).
		Preload("Address").Preload("Address.StateProvince").Preload("Address.Country").Preload("AddressType").
		Where("client_id = ?", clientID).Order("id ASC").Find(&assocs).Error
	if err != nil {
		return nil, err
	}
	return assocs, nil
}

func (r *clientAddressRepository) Create(ctx context.Context, assoc *model.ClientAddress) error {
	return translatePgError(GetDB(ctx, r.db).Create(assoc).Error)
}

func (r *clientAddressRepository) Save(ctx context.Context, assoc *model.ClientAddress) error {
	return translatePgError(GetDB(ctx, r.db).Save(assoc).Error)
}
