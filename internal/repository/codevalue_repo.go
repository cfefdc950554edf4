package repository

import (
	"context"

	"finadmin/internal/model"

	"gorm.io/gorm"
)

type CodeValueRepository interface {
	ListByCode(ctx context.Context, codeID int64, byLabel bool) ([]model.CodeValue, error)
	FindByID(ctx context.Context, id int64) (*model.CodeValue, error)
	FindByLabel(ctx context.Context, label string) (*model.CodeValue, error)
	FindByCodeAndLabel(ctx context.Context, codeID int64, label string) (*model.CodeValue, error)
	Create(ctx context.Context, value *model.CodeValue) error
	Save(ctx context.Context, value *model.CodeValue) error
	Delete(ctx context.Context, id int64) error
}

type codeValueRepository struct {
	db *gorm.DB
}

func NewCodeValueRepository(db *gorm.DB) CodeValueRepository {
	return &codeValueRepository{db: db}
}

func (r *codeValueRepository) ListByCode(ctx context.Context, codeID int64, byLabel bool) ([]model.CodeValue, error) {
	order := "position ASC, id ASC"
	if byLabel {
		order = "label ASC"
	}
	var values []model.CodeValue
	if err := GetDB(ctx, r.db).Where("code_id = ?", codeID).Order(order).Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (r *codeValueRepository) FindByID(ctx context.Context, id int64) (*model.CodeValue, error) {
	var value model.CodeValue
	if err := GetDB(ctx, r.db).First(&value, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

// FindByLabel matches exactly one value by label across all codes. Labels
// are only unique per code, so the lowest id wins on a cross-code clash,
// matching the resolver's addressable-namespace contract.
func (r *codeValueRepository) FindByLabel(ctx context.Context, label string) (*model.CodeValue, error) {
	var value model.CodeValue
	if err := GetDB(ctx, r.db).Where("label = ?", label).Order("id ASC").First(&value).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *codeValueRepository) FindByCodeAndLabel(ctx context.Context, codeID int64, label string) (*model.CodeValue, error) {
	var value model.CodeValue
	if err := GetDB(ctx, r.db).First(&value, "code_id = ? AND label = ?", codeID, label).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *codeValueRepository) Create(ctx context.Context, value *model.CodeValue) error {
	return translatePgError(GetDB(ctx, r.db).Create(value).Error)
}

func (r *codeValueRepository) Save(ctx context.Context, value *model.CodeValue) error {
	return translatePgError(GetDB(ctx, r.db).Save(value).Error)
}

// Delete fails with an integrity conflict when the value is still
// referenced by an address, association, or any other row holding an FK.
func (r *codeValueRepository) Delete(ctx context.Context, id int64) error {
	return translatePgError(GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.CodeValue{}).Error)
}
