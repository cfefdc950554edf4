package service

import (
	"context"
	"errors"
	"strconv"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"
	"finadmin/internal/repository"

	"gorm.io/gorm"
)

// CodeValueResolver turns a textual token into the code value it names.
// A token that parses as a non-negative integer is treated as a numeric
// id; anything else is matched against labels, exactly and case
// sensitively. A miss on either path is a ReferenceNotFoundError.
type CodeValueResolver struct {
	codeValues repository.CodeValueRepository
}

func NewCodeValueResolver(codeValues repository.CodeValueRepository) *CodeValueResolver {
	return &CodeValueResolver{codeValues: codeValues}
}

func (r *CodeValueResolver) Resolve(ctx context.Context, token string) (*model.CodeValue, error) {
	if id, err := strconv.ParseInt(token, 10, 64); err == nil && id >= 0 {
		value, err := r.codeValues.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &apperrors.ReferenceNotFoundError{Token: token}
			}
			return nil, err
		}
		return value, nil
	}

	value, err := r.codeValues.FindByLabel(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ReferenceNotFoundError{Token: token}
		}
		return nil, err
	}
	return value, nil
}
