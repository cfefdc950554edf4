package service

import (
	"context"
	"fmt"
	"sort"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeStore is a single in-memory stand-in for the database, shared by
// every fake repository so cross-table effects (FK checks, the address
// delete cascade, transaction rollback) behave like the real schema.
type fakeStore struct {
	nextID          int64
	codes           map[int64]model.Code
	codeValues      map[int64]model.CodeValue
	clients         map[int64]model.Client
	addresses       map[int64]model.Address
	clientAddresses map[int64]model.ClientAddress
	commands        []model.CommandLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		codes:           make(map[int64]model.Code),
		codeValues:      make(map[int64]model.CodeValue),
		clients:         make(map[int64]model.Client),
		addresses:       make(map[int64]model.Address),
		clientAddresses: make(map[int64]model.ClientAddress),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) clone() fakeStore {
	c := fakeStore{
		nextID:          s.nextID,
		codes:           make(map[int64]model.Code, len(s.codes)),
		codeValues:      make(map[int64]model.CodeValue, len(s.codeValues)),
		clients:         make(map[int64]model.Client, len(s.clients)),
		addresses:       make(map[int64]model.Address, len(s.addresses)),
		clientAddresses: make(map[int64]model.ClientAddress, len(s.clientAddresses)),
		commands:        append([]model.CommandLog(nil), s.commands...),
	}
	for k, v := range s.codes {
		c.codes[k] = v
	}
	for k, v := range s.codeValues {
		c.codeValues[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	for k, v := range s.addresses {
		c.addresses[k] = v
	}
	for k, v := range s.clientAddresses {
		c.clientAddresses[k] = v
	}
	return c
}

// Seed helpers.

func (s *fakeStore) addCode(name string, system bool) int64 {
	id := s.id()
	s.codes[id] = model.Code{ID: id, Name: name, IsSystemDefined: system}
	return id
}

func (s *fakeStore) addCodeValue(codeID int64, label string, position int) int64 {
	id := s.id()
	s.codeValues[id] = model.CodeValue{ID: id, CodeID: codeID, Label: label, Position: position, IsActive: true}
	return id
}

func (s *fakeStore) addClient(displayName string) int64 {
	id := s.id()
	s.clients[id] = model.Client{ID: id, DisplayName: displayName, IsActive: true}
	return id
}

func (s *fakeStore) addAssociation(clientID, addressTypeID int64, address model.Address) int64 {
	address.ID = s.id()
	s.addresses[address.ID] = address
	id := s.id()
	s.clientAddresses[id] = model.ClientAddress{ID: id, ClientID: clientID, AddressID: address.ID, AddressTypeID: addressTypeID}
	return id
}

// fakeTxManager snapshots the whole store and restores it when the
// callback fails, mirroring a real rollback.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	saved := m.store.clone()
	if err := fn(ctx); err != nil {
		*m.store = saved
		return err
	}
	return nil
}

// fakeCommandLog satisfies CommandLogService without a database or hub.
type fakeCommandLog struct {
	store *fakeStore
}

func (l *fakeCommandLog) Record(ctx context.Context, action string, entityID int64, entityName string, payload any) (uuid.UUID, error) {
	entry := model.CommandLog{
		ID:         uuid.New(),
		Action:     action,
		EntityID:   fmt.Sprint(entityID),
		EntityName: entityName,
	}
	l.store.commands = append(l.store.commands, entry)
	return entry.ID, nil
}

func (l *fakeCommandLog) List(ctx context.Context, page, limit int) ([]CommandLogResponse, int64, error) {
	res := make([]CommandLogResponse, 0, len(l.store.commands))
	for _, e := range l.store.commands {
		res = append(res, CommandLogResponse{ID: e.ID.String(), Action: e.Action, EntityID: e.EntityID})
	}
	return res, int64(len(res)), nil
}

// --- Repositories ---

type fakeCodeRepo struct {
	store *fakeStore
}

func (r *fakeCodeRepo) List(ctx context.Context) ([]model.Code, error) {
	codes := make([]model.Code, 0, len(r.store.codes))
	for _, c := range r.store.codes {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Name < codes[j].Name })
	return codes, nil
}

func (r *fakeCodeRepo) FindByID(ctx context.Context, id int64) (*model.Code, error) {
	c, ok := r.store.codes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeCodeRepo) FindByName(ctx context.Context, name string) (*model.Code, error) {
	for _, c := range r.store.codes {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCodeRepo) Create(ctx context.Context, code *model.Code) error {
	for _, c := range r.store.codes {
		if c.Name == code.Name {
			return fmt.Errorf("%w: uq_code_name", apperrors.ErrDuplicate)
		}
	}
	code.ID = r.store.id()
	r.store.codes[code.ID] = *code
	return nil
}

func (r *fakeCodeRepo) Save(ctx context.Context, code *model.Code) error {
	r.store.codes[code.ID] = *code
	return nil
}

func (r *fakeCodeRepo) Delete(ctx context.Context, id int64) error {
	for _, v := range r.store.codeValues {
		if v.CodeID == id {
			return fmt.Errorf("%w: fk_code_value_code", apperrors.ErrIntegrityConflict)
		}
	}
	delete(r.store.codes, id)
	return nil
}

type fakeCodeValueRepo struct {
	store *fakeStore
}

func (r *fakeCodeValueRepo) ListByCode(ctx context.Context, codeID int64, byLabel bool) ([]model.CodeValue, error) {
	values := make([]model.CodeValue, 0)
	for _, v := range r.store.codeValues {
		if v.CodeID == codeID {
			values = append(values, v)
		}
	}
	sort.Slice(values, func(i, j int) bool {
		if byLabel {
			return values[i].Label < values[j].Label
		}
		if values[i].Position != values[j].Position {
			return values[i].Position < values[j].Position
		}
		return values[i].ID < values[j].ID
	})
	return values, nil
}

func (r *fakeCodeValueRepo) FindByID(ctx context.Context, id int64) (*model.CodeValue, error) {
	v, ok := r.store.codeValues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *fakeCodeValueRepo) FindByLabel(ctx context.Context, label string) (*model.CodeValue, error) {
	var best *model.CodeValue
	for _, v := range r.store.codeValues {
		if v.Label != label {
			continue
		}
		if best == nil || v.ID < best.ID {
			v := v
			best = &v
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (r *fakeCodeValueRepo) FindByCodeAndLabel(ctx context.Context, codeID int64, label string) (*model.CodeValue, error) {
	for _, v := range r.store.codeValues {
		if v.CodeID == codeID && v.Label == label {
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCodeValueRepo) Create(ctx context.Context, value *model.CodeValue) error {
	if _, ok := r.store.codes[value.CodeID]; !ok {
		return fmt.Errorf("%w: fk_code_value_code", apperrors.ErrIntegrityConflict)
	}
	for _, v := range r.store.codeValues {
		if v.CodeID == value.CodeID && v.Label == value.Label {
			return fmt.Errorf("%w: uq_code_value_label", apperrors.ErrDuplicate)
		}
	}
	value.ID = r.store.id()
	r.store.codeValues[value.ID] = *value
	return nil
}

func (r *fakeCodeValueRepo) Save(ctx context.Context, value *model.CodeValue) error {
	r.store.codeValues[value.ID] = *value
	return nil
}

func (r *fakeCodeValueRepo) Delete(ctx context.Context, id int64) error {
	for _, a := range r.store.addresses {
		if (a.StateProvinceID != nil && *a.StateProvinceID == id) || (a.CountryID != nil && *a.CountryID == id) {
			return fmt.Errorf("%w: fk_address_code_value", apperrors.ErrIntegrityConflict)
		}
	}
	for _, ca := range r.store.clientAddresses {
		if ca.AddressTypeID == id {
			return fmt.Errorf("%w: fk_client_address_type", apperrors.ErrIntegrityConflict)
		}
	}
	delete(r.store.codeValues, id)
	return nil
}

type fakeClientRepo struct {
	store *fakeStore
}

func (r *fakeClientRepo) FindByID(ctx context.Context, id int64) (*model.Client, error) {
	c, ok := r.store.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) List(ctx context.Context, page, limit int) ([]model.Client, int64, error) {
	clients := make([]model.Client, 0, len(r.store.clients))
	for _, c := range r.store.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, int64(len(clients)), nil
}

func (r *fakeClientRepo) Create(ctx context.Context, client *model.Client) error {
	client.ID = r.store.id()
	r.store.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) Save(ctx context.Context, client *model.Client) error {
	r.store.clients[client.ID] = *client
	return nil
}

type fakeAddressRepo struct {
	store *fakeStore
}

func (r *fakeAddressRepo) FindByID(ctx context.Context, id int64) (*model.Address, error) {
	a, ok := r.store.addresses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *fakeAddressRepo) Create(ctx context.Context, address *model.Address) error {
	address.ID = r.store.id()
	r.store.addresses[address.ID] = *address
	return nil
}

func (r *fakeAddressRepo) Save(ctx context.Context, address *model.Address) error {
	r.store.addresses[address.ID] = *address
	return nil
}

// Delete removes the address and, like the schema's ON DELETE CASCADE,
// every association pointing at it.
func (r *fakeAddressRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.addresses, id)
	for k, ca := range r.store.clientAddresses {
		if ca.AddressID == id {
			delete(r.store.clientAddresses, k)
		}
	}
	return nil
}

type fakeClientAddressRepo struct {
	store *fakeStore
}

// hydrate mimics the Preloads the real repository issues.
func (r *fakeClientAddressRepo) hydrate(assoc model.ClientAddress) model.ClientAddress {
	if a, ok := r.store.addresses[assoc.AddressID]; ok {
		if a.StateProvinceID != nil {
			if v, ok := r.store.codeValues[*a.StateProvinceID]; ok {
				a.StateProvince = &v
			}
		}
		if a.CountryID != nil {
			if v, ok := r.store.codeValues[*a.CountryID]; ok {
				a.Country = &v
			}
		}
		assoc.Address = &a
	}
	if v, ok := r.store.codeValues[assoc.AddressTypeID]; ok {
		assoc.AddressType = &v
	}
	return assoc
}

func (r *fakeClientAddressRepo) FindByID(ctx context.Context, id int64) (*model.ClientAddress, error) {
	ca, ok := r.store.clientAddresses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ca = r.hydrate(ca)
	return &ca, nil
}

func (r *fakeClientAddressRepo) FindByClientAndAddress(ctx context.Context, clientID, addressID int64) (*model.ClientAddress, error) {
	for _, ca := range r.store.clientAddresses {
		if ca.ClientID == clientID && ca.AddressID == addressID {
			ca = r.hydrate(ca)
			return &ca, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClientAddressRepo) ListByClient(ctx context.Context, clientID int64) ([]model.ClientAddress, error) {
	assocs := make([]model.ClientAddress, 0)
	for _, ca := range r.store.clientAddresses {
		if ca.ClientID == clientID {
			assocs = append(assocs, r.hydrate(ca))
		}
	}
	sort.Slice(assocs, func(i, j int) bool { return assocs[i].ID < assocs[j].ID })
	return assocs, nil
}

func (r *fakeClientAddressRepo) Create(ctx context.Context, assoc *model.ClientAddress) error {
	if _, ok := r.store.clients[assoc.ClientID]; !ok {
		return fmt.Errorf("%w: fk_client_address_client", apperrors.ErrIntegrityConflict)
	}
	if _, ok := r.store.addresses[assoc.AddressID]; !ok {
		return fmt.Errorf("%w: fk_client_address_address", apperrors.ErrIntegrityConflict)
	}
	for _, ca := range r.store.clientAddresses {
		if ca.ClientID == assoc.ClientID && ca.AddressID == assoc.AddressID {
			return fmt.Errorf("%w: uq_client_address", apperrors.ErrDuplicate)
		}
	}
	assoc.ID = r.store.id()
	stored := *assoc
	stored.Address = nil
	stored.AddressType = nil
	stored.Client = nil
	r.store.clientAddresses[assoc.ID] = stored
	return nil
}

func (r *fakeClientAddressRepo) Save(ctx context.Context, assoc *model.ClientAddress) error {
	stored := *assoc
	stored.Address = nil
	stored.AddressType = nil
	stored.Client = nil
	r.store.clientAddresses[assoc.ID] = stored
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
