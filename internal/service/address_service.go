package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"
	"finadmin/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

// AddressRequest carries the address payload for attach and update.
// Every field is a pointer so presence and absence stay distinguishable;
// an absent field never touches the stored value. stateProvinceId and
// countryId are resolution tokens: numeric code-value id or exact label.
type AddressRequest struct {
	AddressTypeID  *int64           `json:"addressTypeId" validate:"omitempty,gt=0"`
	AddressLine1   *string          `json:"addressLine1" validate:"omitempty,max=500"`
	AddressLine2   *string          `json:"addressLine2" validate:"omitempty,max=500"`
	AddressLine3   *string          `json:"addressLine3" validate:"omitempty,max=500"`
	TownVillage    *string          `json:"townVillage" validate:"omitempty,max=200"`
	City           *string          `json:"city" validate:"omitempty,max=200"`
	CountyDistrict *string          `json:"countyDistrict" validate:"omitempty,max=200"`
	PostalCode     *string          `json:"postalCode" validate:"omitempty,max=20"`
	StateProvince  *string          `json:"stateProvinceId"`
	Country        *string          `json:"countryId"`
	Latitude       *decimal.Decimal `json:"latitude"`
	Longitude      *decimal.Decimal `json:"longitude"`
	IsActive       *bool            `json:"isActive"` // association flag, defaults to false on attach
}

type UpdateClientAddressRequest struct {
	AddressID int64 `json:"addressId" validate:"required,gt=0"`
	AddressRequest
}

type ClientAddressResponse struct {
	ID             int64            `json:"clientAddressId"`
	ClientID       int64            `json:"clientId"`
	AddressID      int64            `json:"addressId"`
	AddressType    string           `json:"addressType"`
	AddressTypeID  int64            `json:"addressTypeId"`
	IsActive       bool             `json:"isActive"`
	AddressLine1   string           `json:"addressLine1"`
	AddressLine2   string           `json:"addressLine2"`
	AddressLine3   string           `json:"addressLine3"`
	TownVillage    string           `json:"townVillage"`
	City           string           `json:"city"`
	CountyDistrict string           `json:"countyDistrict"`
	PostalCode     string           `json:"postalCode"`
	StateProvince  string           `json:"stateProvince,omitempty"`
	Country        string           `json:"country,omitempty"`
	Latitude       *decimal.Decimal `json:"latitude,omitempty"`
	Longitude      *decimal.Decimal `json:"longitude,omitempty"`
	CreatedOn      string           `json:"createdOn"`
	UpdatedOn      string           `json:"updatedOn"`
}

// --- Interface ---

// ClientAddressService manages addresses and their per-client
// associations. Attach and detach always mutate both entities inside one
// transaction; partial writes are never left visible.
type ClientAddressService interface {
	Attach(ctx context.Context, clientID, addressTypeID int64, req AddressRequest) (CommandResult, error)
	// AttachBulk creates one address + association per element; any
	// element failing validation or resolution aborts the whole batch.
	AttachBulk(ctx context.Context, clientID int64, reqs []AddressRequest) (CommandResult, error)
	// AttachAllForClient is the in-transaction variant used while
	// creating a new client: the caller already holds the client and
	// the transaction context.
	AttachAllForClient(txCtx context.Context, client *model.Client, reqs []AddressRequest) ([]int64, error)
	Update(ctx context.Context, clientID int64, req UpdateClientAddressRequest) (CommandResult, error)
	// Detach takes the underlying address id, not the association id.
	// Deleting the address removes the association through the cascade.
	Detach(ctx context.Context, clientID, addressID int64) (CommandResult, error)
	ListByClient(ctx context.Context, clientID int64) ([]ClientAddressResponse, error)
}

type clientAddressService struct {
	resolver        *CodeValueResolver
	addresses       repository.AddressRepository
	clientAddresses repository.ClientAddressRepository
	clients         repository.ClientRepository
	commandLog      CommandLogService
	txManager       repository.TransactionManager
	tenantTZ        *time.Location
}

func NewClientAddressService(resolver *CodeValueResolver, addresses repository.AddressRepository,
	clientAddresses repository.ClientAddressRepository, clients repository.ClientRepository,
	commandLog CommandLogService, txManager repository.TransactionManager, tenantTZ *time.Location) ClientAddressService {
	if tenantTZ == nil {
		tenantTZ = time.UTC
	}
	return &clientAddressService{
		resolver:        resolver,
		addresses:       addresses,
		clientAddresses: clientAddresses,
		clients:         clients,
		commandLog:      commandLog,
		txManager:       txManager,
		tenantTZ:        tenantTZ,
	}
}

// --- Attach ---

func (s *clientAddressService) Attach(ctx context.Context, clientID, addressTypeID int64, req AddressRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	var result CommandResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		client, err := s.findClient(txCtx, clientID)
		if err != nil {
			return err
		}

		assoc, err := s.attachOne(txCtx, client, addressTypeID, req)
		if err != nil {
			return err
		}

		commandID, err := s.commandLog.Record(txCtx, model.ActionCreateClientAddress, assoc.ID, client.DisplayName, req)
		if err != nil {
			return err
		}
		result = CommandResult{
			CommandID:     commandID,
			ResourceID:    assoc.ID,
			SubResourceID: &assoc.AddressID,
			ClientID:      &clientID,
		}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *clientAddressService) AttachBulk(ctx context.Context, clientID int64, reqs []AddressRequest) (CommandResult, error) {
	if len(reqs) == 0 {
		return CommandResult{}, apperrors.Invalid("address", "at least one address element is required")
	}

	var result CommandResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		client, err := s.findClient(txCtx, clientID)
		if err != nil {
			return err
		}

		ids, err := s.AttachAllForClient(txCtx, client, reqs)
		if err != nil {
			return err
		}

		last := ids[len(ids)-1]
		commandID, err := s.commandLog.Record(txCtx, model.ActionCreateClientAddress, last, client.DisplayName, reqs)
		if err != nil {
			return err
		}
		result = CommandResult{
			CommandID:   commandID,
			ResourceID:  last,
			ClientID:    &clientID,
			ResourceIDs: ids,
		}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (s *clientAddressService) AttachAllForClient(txCtx context.Context, client *model.Client, reqs []AddressRequest) ([]int64, error) {
	ids := make([]int64, 0, len(reqs))
	for i, req := range reqs {
		if err := validateStruct(req); err != nil {
			return nil, fmt.Errorf("address[%d]: %w", i, err)
		}
		if req.AddressTypeID == nil {
			return nil, apperrors.Invalid(fmt.Sprintf("address[%d].addressTypeId", i), "required for each address element")
		}
		assoc, err := s.attachOne(txCtx, client, *req.AddressTypeID, req)
		if err != nil {
			return nil, fmt.Errorf("address[%d]: %w", i, err)
		}
		ids = append(ids, assoc.ID)
	}
	return ids, nil
}

// attachOne builds and persists one Address plus its association. Must
// run inside the caller's transaction.
func (s *clientAddressService) attachOne(txCtx context.Context, client *model.Client, addressTypeID int64, req AddressRequest) (*model.ClientAddress, error) {
	addressType, err := s.resolver.Resolve(txCtx, fmt.Sprint(addressTypeID))
	if err != nil {
		return nil, err
	}

	address, err := s.buildAddress(txCtx, req)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.Create(txCtx, address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	active := false
	if req.IsActive != nil {
		active = *req.IsActive
	}
	assoc := &model.ClientAddress{
		ClientID:      client.ID,
		AddressID:     address.ID,
		AddressTypeID: addressType.ID,
		IsActive:      active,
	}
	if err := s.clientAddresses.Create(txCtx, assoc); err != nil {
		return nil, fmt.Errorf("failed to create client address: %w", err)
	}
	return assoc, nil
}

// buildAddress assembles an unpersisted Address from the payload,
// resolving state and country tokens first so an unresolvable reference
// aborts before anything is written.
func (s *clientAddressService) buildAddress(ctx context.Context, req AddressRequest) (*model.Address, error) {
	address := &model.Address{}
	if _, err := s.applyAddressFields(ctx, address, req); err != nil {
		return nil, err
	}

	today := s.today()
	address.CreatedOn = today
	address.UpdatedOn = today
	return address, nil
}

// --- Update ---

func (s *clientAddressService) Update(ctx context.Context, clientID int64, req UpdateClientAddressRequest) (CommandResult, error) {
	if err := validateStruct(req); err != nil {
		return CommandResult{}, err
	}

	var result CommandResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		assoc, err := s.clientAddresses.FindByClientAndAddress(txCtx, clientID, req.AddressID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("address", fmt.Sprintf("clientId=%d addressId=%d", clientID, req.AddressID))
			}
			return err
		}

		address := assoc.Address
		if address == nil {
			address, err = s.addresses.FindByID(txCtx, assoc.AddressID)
			if err != nil {
				return err
			}
		}

		dirty, err := s.applyAddressFields(txCtx, address, req.AddressRequest)
		if err != nil {
			return err
		}
		if dirty {
			address.UpdatedOn = s.today()
			if err := s.addresses.Save(txCtx, address); err != nil {
				return fmt.Errorf("failed to update address: %w", err)
			}
		}

		// The activation flag updates independently of the address fields.
		if req.IsActive != nil && assoc.IsActive != *req.IsActive {
			assoc.IsActive = *req.IsActive
			assoc.Address = nil
			if err := s.clientAddresses.Save(txCtx, assoc); err != nil {
				return fmt.Errorf("failed to update client address: %w", err)
			}
		}

		commandID, err := s.commandLog.Record(txCtx, model.ActionUpdateClientAddress, assoc.ID, "", req)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: assoc.ID, ClientID: &clientID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

// applyAddressFields copies supplied payload fields onto the address and
// reports whether anything changed. A supplied empty string is treated
// as "no change", same as an absent key. Supplied state/country tokens
// are always resolved; a resolution miss aborts the whole operation.
func (s *clientAddressService) applyAddressFields(ctx context.Context, address *model.Address, req AddressRequest) (bool, error) {
	dirty := false

	setText := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
			dirty = true
		}
	}
	setText(&address.AddressLine1, req.AddressLine1)
	setText(&address.AddressLine2, req.AddressLine2)
	setText(&address.AddressLine3, req.AddressLine3)
	setText(&address.TownVillage, req.TownVillage)
	setText(&address.City, req.City)
	setText(&address.CountyDistrict, req.CountyDistrict)
	setText(&address.PostalCode, req.PostalCode)

	if req.StateProvince != nil {
		state, err := s.resolver.Resolve(ctx, *req.StateProvince)
		if err != nil {
			return false, err
		}
		address.StateProvinceID = &state.ID
		address.StateProvince = nil
		dirty = true
	}
	if req.Country != nil {
		country, err := s.resolver.Resolve(ctx, *req.Country)
		if err != nil {
			return false, err
		}
		address.CountryID = &country.ID
		address.Country = nil
		dirty = true
	}

	if req.Latitude != nil {
		address.Latitude = req.Latitude
		dirty = true
	}
	if req.Longitude != nil {
		address.Longitude = req.Longitude
		dirty = true
	}

	return dirty, nil
}

// --- Detach ---

func (s *clientAddressService) Detach(ctx context.Context, clientID, addressID int64) (CommandResult, error) {
	var result CommandResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.clientAddresses.FindByClientAndAddress(txCtx, clientID, addressID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("address", fmt.Sprintf("clientId=%d addressId=%d", clientID, addressID))
			}
			return err
		}

		if err := s.addresses.Delete(txCtx, addressID); err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}

		commandID, err := s.commandLog.Record(txCtx, model.ActionDeleteClientAddress, addressID, "", nil)
		if err != nil {
			return err
		}
		result = CommandResult{CommandID: commandID, ResourceID: addressID, ClientID: &clientID}
		return nil
	})
	if err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

// --- Reads ---

func (s *clientAddressService) ListByClient(ctx context.Context, clientID int64) ([]ClientAddressResponse, error) {
	if _, err := s.findClient(ctx, clientID); err != nil {
		return nil, err
	}

	assocs, err := s.clientAddresses.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client addresses: %w", err)
	}

	res := make([]ClientAddressResponse, 0, len(assocs))
	for _, a := range assocs {
		res = append(res, toClientAddressResponse(a))
	}
	return res, nil
}

// --- Helpers ---

func (s *clientAddressService) findClient(ctx context.Context, clientID int64) (*model.Client, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("client", clientID)
		}
		return nil, err
	}
	return client, nil
}

// today is the current calendar date in the tenant's timezone, stored at
// midnight UTC so the date survives round-trips through a date column.
func (s *clientAddressService) today() time.Time {
	now := time.Now().In(s.tenantTZ)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func toClientAddressResponse(a model.ClientAddress) ClientAddressResponse {
	res := ClientAddressResponse{
		ID:            a.ID,
		ClientID:      a.ClientID,
		AddressID:     a.AddressID,
		AddressTypeID: a.AddressTypeID,
		IsActive:      a.IsActive,
	}
	if a.AddressType != nil {
		res.AddressType = a.AddressType.Label
	}
	if addr := a.Address; addr != nil {
		res.AddressLine1 = addr.AddressLine1
		res.AddressLine2 = addr.AddressLine2
		res.AddressLine3 = addr.AddressLine3
		res.TownVillage = addr.TownVillage
		res.City = addr.City
		res.CountyDistrict = addr.CountyDistrict
		res.PostalCode = addr.PostalCode
		res.Latitude = addr.Latitude
		res.Longitude = addr.Longitude
		res.CreatedOn = addr.CreatedOn.Format("2006-01-02")
		res.UpdatedOn = addr.UpdatedOn.Format("2006-01-02")
		if addr.StateProvince != nil {
			res.StateProvince = addr.StateProvince.Label
		}
		if addr.Country != nil {
			res.Country = addr.Country.Label
		}
	}
	return res
}
