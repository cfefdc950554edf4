package repository

import (
	"context"

	"finadmin/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Client, error)
	List(ctx context.Context, page, limit int) ([]model.Client, int64, error)
	Create(ctx context.Context, client *model.Client) error
	Save(ctx context.Context, client *model.Client) error
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*model.Client, error) {
	var client model.Client
	if err := GetDB(ctx, r.db).First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context, page, limit int) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("id ASC").Offset(offset).Limit(limit).Find(&clients).Error; err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	return translatePgError(GetDB(ctx, r.db).Create(client).Error)
}

func (r *clientRepository) Save(ctx context.Context, client *model.Client) error {
	return translatePgError(GetDB(ctx, r.db).Save(client).Error)
}
