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

// CreateClientRequest optionally carries an address array; each element
// is attached within the same transaction as the client row.
type CreateClientRequest struct {
	DisplayName string           `json:"displayName" validate:"required,max=255"`
	AccountNo   string           `json:"accountNo" validate:"omitempty,max=20"`
	Addresses   []AddressRequest `json:"address"`
}

type ClientResponse struct {
	ID          int64  `json:"id"`
	AccountNo   string `json:"accountNo"`
	DisplayName string `json:"displayName"`
	IsActive    bool   `json:"isActive"`
}

// --- Interface ---

type ClientService interface {
	Create(ctx context.Context, req CreateClientRequest) (CommandResult, error)
	Get(ctx context.Context, clientID int64) (ClientResponse, error)
	List(ctx context.Context, page, limit int) ([]ClientResponse, int64, error)
}

type clientService struct {
	clients         repository.ClientRepository
	clientAddresses ClientAddressService
	commandLog      CommandLogService
	txManager       repository.TransactionManager
}

func NewClientService(clients repository.ClientRepository, clientAddresses ClientAddressService,
	commandLog CommandLogService, txManager repository.TransactionManager) ClientService {
	return &clientService{clients: clients, clientAddresses: clientAddresses, commandLog: commandLog, txManager: txManager}
}

func (s *clientService) Create(ctx context.Context, req CreateClientRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	client := model.Client{
		AccountNo:   req.AccountNo,
		DisplayName: req.DisplayName,
		IsActive:    true,
	}

	var result CommandResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.clients.Create(txCtx, &client); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: account number %q", apperrors.ErrDuplicate, req.AccountNo)
			}
			return fmt.Errorf("failed to create client: %w", err)
		}

		// Account numbers are derived from the id when the caller did
		// not supply one.
		if client.AccountNo == "" {
			client.AccountNo = fmt.Sprintf("%09d", client.ID)
			if err := s.clients.Save(txCtx, &client); err != nil {
				return fmt.Errorf("failed to assign account number: %w", err)
			}
		}

		var assocIDs []int64
		if len(req.Addresses) > 0 {
			var err error
			assocIDs, err = s.clientAddresses.AttachAllForClient(txCtx, &client, req.Addresses)
			if err != nil {
				return err
			}
		}

		commandID, err := s.commandLog.Record(txCtx, model.ActionCreateClient, client.ID, client.DisplayName, req)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: client.ID, ClientID: &client.ID, ResourceIDs: assocIDs}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *clientService) Get(ctx context.Context, clientID int64) (ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClientResponse{}, apperrors.NotFound("client", clientID)
		}
		return ClientResponse{}, err
	}
	return toClientResponse(*client), nil
}

func (s *clientService) List(ctx context.Context, page, limit int) ([]ClientResponse, int64, error) {
	clients, total, err := s.clients.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch clients: %w", err)
	}

	res := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, toClientResponse(c))
	}
	return res, total, nil
}

func toClientResponse(c model.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		AccountNo:   c.AccountNo,
		DisplayName: c.DisplayName,
		IsActive:    c.IsActive,
	}
}
