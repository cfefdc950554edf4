package repository

import (
	"context"

	"finadmin/internal/model"

	"gorm.io/gorm"
)

type CodeRepository interface {
	List(ctx context.Context) ([]model.Code, error)
	FindByID(ctx context.Context, id int64) (*model.Code, error)
	FindByName(ctx context.Context, name string) (*model.Code, error)
	Create(ctx context.Context, code *model.Code) error
	Save(ctx context.Context, code *model.Code) error
	Delete(ctx context.Context, id int64) error
}

type codeRepository struct {
	db *gorm.DB
}

func NewCodeRepository(db *gorm.DB) CodeRepository {
	return &codeRepository{db: db}
}

func (r *codeRepository) List(ctx context.Context) ([]model.Code, error) {
	var codes []model.Code
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *codeRepository) FindByID(ctx context.Context, id int64) (*model.Code, error) {
	var code model.Code
	if err := GetDB(ctx, r.db).First(&code, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *codeRepository) FindByName(ctx context.Context, name string) (*model.Code, error) {
	var code model.Code
	if err := GetDB(ctx, r.db).First(&code, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *codeRepository) Create(ctx context.Context, code *model.Code) error {
	return translatePgError(GetDB(ctx, r.db).Create(code).Error)
}

func (r *codeRepository) Save(ctx context.Context, code *model.Code) error {
	return translatePgError(GetDB(ctx, r.db).Save(code).Error)
}

func (r *codeRepository) Delete(ctx context.Context, id int64) error {
	return translatePgError(GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Code{}).Error)
}
