package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"
	"finadmin/internal/repository"

	"gorm.io/gorm"
)

// --- DTOs ---

type CreateCodeValueRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Position    int    `json:"position" validate:"gte=0"`
	Description string `json:"description" validate:"max=500"`
	IsMandatory bool   `json:"isMandatory"`
	IsActive    *bool  `json:"isActive"` // defaults to true when absent
}

// UpdateCodeValueRequest is a partial update: only non-nil fields change.
type UpdateCodeValueRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Position    *int    `json:"position" validate:"omitempty,gte=0"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsMandatory *bool   `json:"isMandatory"`
	IsActive    *bool   `json:"isActive"`
}

type CodeValueResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Position    int    `json:"position"`
	Description string `json:"description"`
	IsMandatory bool   `json:"isMandatory"`
	IsActive    bool   `json:"isActive"`
}

// --- Interface ---

type CodeValueService interface {
	ListByCode(ctx context.Context, codeID int64, byName bool) ([]CodeValueResponse, error)
	// Get accepts a numeric id or an exact label as the path token.
	Get(ctx context.Context, codeID int64, token string) (CodeValueResponse, error)
	Create(ctx context.Context, codeID int64, req CreateCodeValueRequest) (CommandResult, error)
	Update(ctx context.Context, codeID, codeValueID int64, req UpdateCodeValueRequest) (CommandResult, error)
	Delete(ctx context.Context, codeID, codeValueID int64) (CommandResult, error)
}

type codeValueService struct {
	codes      repository.CodeRepository
	codeValues repository.CodeValueRepository
	commandLog CommandLogService
	txManager  repository.TransactionManager
}

func NewCodeValueService(codes repository.CodeRepository, codeValues repository.CodeValueRepository,
	commandLog CommandLogService, txManager repository.TransactionManager) CodeValueService {
	return &codeValueService{codes: codes, codeValues: codeValues, commandLog: commandLog, txManager: txManager}
}

// --- Reads ---

func (s *codeValueService) ListByCode(ctx context.Context, codeID int64, byName bool) ([]CodeValueResponse, error) {
	if _, err := s.findCode(ctx, codeID); err != nil {
		return nil, err
	}

	values, err := s.codeValues.ListByCode(ctx, codeID, byName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch code values: %w", err)
	}

	res := make([]CodeValueResponse, 0, len(values))
	for _, v := range values {
		res = append(res, toCodeValueResponse(v))
	}
	return res, nil
}

func (s *codeValueService) Get(ctx context.Context, codeID int64, token string) (CodeValueResponse, error) {
	var (
		value *model.CodeValue
		err   error
	)
	if id, parseErr := strconv.ParseInt(token, 10, 64); parseErr == nil && id >= 0 {
		value, err = s.codeValues.FindByID(ctx, id)
	} else {
		value, err = s.codeValues.FindByCodeAndLabel(ctx, codeID, token)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CodeValueResponse{}, apperrors.NotFound("code value", token)
		}
		return CodeValueResponse{}, err
	}
	if value.CodeID != codeID {
		return CodeValueResponse{}, apperrors.NotFound("code value", token)
	}
	return toCodeValueResponse(*value), nil
}

// --- Writes ---

func (s *codeValueService) Create(ctx context.Context, codeID int64, req CreateCodeValueRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	code, err := s.findCode(ctx, codeID)
	if err != nil {
		return CommandResult{}, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	value := model.CodeValue{
		CodeID:      codeID,
		Label:       req.Name,
		Position:    req.Position,
		Description: req.Description,
		IsMandatory: req.IsMandatory,
		IsActive:    active,
	}

	var result CommandResult
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codeValues.Create(txCtx, &value); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: code value %q under code %q", apperrors.ErrDuplicate, req.Name, code.Name)
			}
			return fmt.Errorf("failed to create code value: %w", err)
		}
		commandID, err := s.commandLog.Record(txCtx, model.ActionCreateCodeValue, value.ID, value.Label, req)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: value.ID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *codeValueService) Update(ctx context.Context, codeID, codeValueID int64, req UpdateCodeValueRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	value, err := s.findCodeValue(ctx, codeID, codeValueID)
	if err != nil {
		return CommandResult{}, err
	}

	if req.Name != nil {
		value.Label = *req.Name
	}
	if req.Position != nil {
		value.Position = *req.Position
	}
	if req.Description != nil {
		value.Description = *req.Description
	}
	if req.IsMandatory != nil {
		value.IsMandatory = *req.IsMandatory
	}
	if req.IsActive != nil {
		value.IsActive = *req.IsActive
	}

	var result CommandResult
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codeValues.Save(txCtx, value); err != nil {
			return fmt.Errorf("failed to update code value: %w", err)
		}
		commandID, err := s.commandLog.Record(txCtx, model.ActionUpdateCodeValue, value.ID, value.Label, req)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: value.ID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *codeValueService) Delete(ctx context.Context, codeID, codeValueID int64) (CommandResult, error) {
	value, err := s.findCodeValue(ctx, codeID, codeValueID)
	if err != nil {
		return CommandResult{}, err
	}

	var result CommandResult
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codeValues.Delete(txCtx, value.ID); err != nil {
			return err
		}
		commandID, err := s.commandLog.Record(txCtx, model.ActionDeleteCodeValue, value.ID, value.Label, nil)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: value.ID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

// --- Helpers ---

func (s *codeValueService) findCode(ctx context.Context, codeID int64) (*model.Code, error) {
	code, err := s.codes.FindByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("code", codeID)
		}
		return nil, err
	}
	return code, nil
}

func (s *codeValueService) findCodeValue(ctx context.Context, codeID, codeValueID int64) (*model.CodeValue, error) {
	value, err := s.codeValues.FindByID(ctx, codeValueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("code value", codeValueID)
		}
		return nil, err
	}
	if value.CodeID != codeID {
		return nil, apperrors.NotFound("code value", codeValueID)
	}
	return value, nil
}

func toCodeValueResponse(v model.CodeValue) CodeValueResponse {
	return CodeValueResponse{
		ID:          v.ID,
		Name:        v.Label,
		Position:    v.Position,
		Description: v.Description,
		IsMandatory: v.IsMandatory,
		IsActive:    v.IsActive,
	}
}
