package service

import (
	"context"
	"errors"
	"fmt"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"
	"finadmin/internal/repository"

	"gorm.io/gorm"
)

// --- DTOs ---

type CreateCodeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateCodeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CodeResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	IsSystemDefined bool   `json:"systemDefined"`
}

// --- Interface ---

// CodeService manages the categories code values live under. System
// defined codes ship with the platform and may not be renamed or
// deleted; only user-defined ones are fully mutable.
type CodeService interface {
	List(ctx context.Context) ([]CodeResponse, error)
	Get(ctx context.Context, codeID int64) (CodeResponse, error)
	Create(ctx context.Context, req CreateCodeRequest) (CommandResult, error)
	Update(ctx context.Context, codeID int64, req UpdateCodeRequest) (CommandResult, error)
	Delete(ctx context.Context, codeID int64) (CommandResult, error)
}

type codeService struct {
	codes      repository.CodeRepository
	commandLog CommandLogService
	txManager  repository.TransactionManager
}

func NewCodeService(codes repository.CodeRepository, commandLog CommandLogService, txManager repository.TransactionManager) CodeService {
	return &codeService{codes: codes, commandLog: commandLog, txManager: txManager}
}

func (s *codeService) List(ctx context.Context) ([]CodeResponse, error) {
	codes, err := s.codes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch codes: %w", err)
	}
	res := make([]CodeResponse, 0, len(codes))
	for _, c := range codes {
		res = append(res, toCodeResponse(c))
	}
	return res, nil
}

func (s *codeService) Get(ctx context.Context, codeID int64) (CodeResponse, error) {
	code, err := s.find(ctx, codeID)
	if err != nil {
		return CodeResponse{}, err
	}
	return toCodeResponse(*code), nil
}

func (s *codeService) Create(ctx context.Context, req CreateCodeRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	code := model.Code{Name: req.Name, IsSystemDefined: false}

	var result CommandResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codes.Create(txCtx, &code); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: code %q", apperrors.ErrDuplicate, req.Name)
			}
			return fmt.Errorf("failed to create code: %w", err)
		}
		commandID, err := s.commandLog.Record(txCtx, model.ActionCreateCode, code.ID, code.Name, req)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: code.ID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *codeService) Update(ctx context.Context, codeID int64, req UpdateCodeRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	code, err := s.find(ctx, codeID)
	if err != nil {
		return CommandResult{}, err
	}
	if code.IsSystemDefined {
		return CommandResult{}, fmt.Errorf("%w: system-defined code %q cannot be changed", apperrors.ErrIntegrityConflict, code.Name)
	}

	code.Name = req.Name

	var result CommandResult
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codes.Save(txCtx, code); err != nil {
			return fmt.Errorf("failed to update code: %w", err)
		}
		commandID, err := s.commandLog.Record(txCtx, model.ActionUpdateCode, code.ID, code.Name, req)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: code.ID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *codeService) Delete(ctx context.Context, codeID int64) (CommandResult, error) {
	code, err := s.find(ctx, codeID)
	if err != nil {
		return CommandResult{}, err
	}
	if code.IsSystemDefined {
		return CommandResult{}, fmt.Errorf("%w: system-defined code %q cannot be deleted", apperrors.ErrIntegrityConflict, code.Name)
	}

	var result CommandResult
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codes.Delete(txCtx, code.ID); err != nil {
			return err
		}
		commandID, err := s.commandLog.Record(txCtx, model.ActionDeleteCode, code.ID, code.Name, nil)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: code.ID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *codeService) find(ctx context.Context, codeID int64) (*model.Code, error) {
	code, err := s.codes.FindByID(ctx, codeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("code", codeID)
		}
		return nil, err
	}
	return code, nil
}

func toCodeResponse(c model.Code) CodeResponse {
	return CodeResponse{ID: c.ID, Name: c.Name, IsSystemDefined: c.IsSystemDefined}
}
