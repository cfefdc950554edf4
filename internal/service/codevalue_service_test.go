package service

import (
	"context"
	"testing"

	"finadmin/internal/apperrors"
	"finadmin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeValueFixture struct {
	store  *fakeStore
	svc    CodeValueService
	codeID int64
}

func newCodeValueFixture(t *testing.T) *codeValueFixture {
	t.Helper()
	store := newFakeStore()
	codeID := store.addCode("ADDRESS_TYPE", true)
	svc := NewCodeValueService(
		&fakeCodeRepo{store: store},
		&fakeCodeValueRepo{store: store},
		&fakeCommandLog{store: store},
		&fakeTxManager{store: store},
	)
	return &codeValueFixture{store: store, svc: svc, codeID: codeID}
}

func TestCreateCodeValueDefaultsActive(t *testing.T) {
	f := newCodeValueFixture(t)

	result, err := f.svc.Create(context.Background(), f.codeID, CreateCodeValueRequest{Name: "HOME", Position: 1})
	require.NoError(t, err)
	assert.NotZero(t, result.CommandID)
	require.NotZero(t, result.ResourceID)

	stored := f.store.codeValues[result.ResourceID]
	assert.Equal(t, "HOME", stored.Label)
	assert.True(t, stored.IsActive)

	require.Len(t, f.store.commands, 1)
	assert.Equal(t, result.CommandID, f.store.commands[0].ID)
}

func TestCreateCodeValueRejectsBlankName(t *testing.T) {
	f := newCodeValueFixture(t)

	_, err := f.svc.Create(context.Background(), f.codeID, CreateCodeValueRequest{Name: ""})
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, f.store.codeValues)
	assert.Empty(t, f.store.commands)
}

func TestCreateCodeValueDuplicateLabel(t *testing.T) {
	f := newCodeValueFixture(t)
	f.store.addCodeValue(f.codeID, "HOME", 1)

	_, err := f.svc.Create(context.Background(), f.codeID, CreateCodeValueRequest{Name: "HOME"})
	require.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Empty(t, f.store.commands)
}

func TestCreateCodeValueUnknownCode(t *testing.T) {
	f := newCodeValueFixture(t)

	_, err := f.svc.Create(context.Background(), 999, CreateCodeValueRequest{Name: "HOME"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetCodeValueByIDAndByLabel(t *testing.T) {
	f := newCodeValueFixture(t)
	valueID := f.store.addCodeValue(f.codeID, "OFFICE", 2)

	byID, err := f.svc.Get(context.Background(), f.codeID, "2")
	require.NoError(t, err)
	assert.Equal(t, valueID, byID.ID)
	assert.Equal(t, "OFFICE", byID.Name)

	byLabel, err := f.svc.Get(context.Background(), f.codeID, "OFFICE")
	require.NoError(t, err)
	assert.Equal(t, byID, byLabel)
}

func TestGetCodeValueWrongCode(t *testing.T) {
	f := newCodeValueFixture(t)
	otherCode := f.store.addCode("COUNTRY", true)
	f.store.addCodeValue(otherCode, "India", 1)

	_, err := f.svc.Get(context.Background(), f.codeID, "India")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListCodeValuesOrdering(t *testing.T) {
	f := newCodeValueFixture(t)
	f.store.addCodeValue(f.codeID, "OFFICE", 2)
	f.store.addCodeValue(f.codeID, "HOME", 1)

	byPosition, err := f.svc.ListByCode(context.Background(), f.codeID, false)
	require.NoError(t, err)
	require.Len(t, byPosition, 2)
	assert.Equal(t, "HOME", byPosition[0].Name)
	assert.Equal(t, "OFFICE", byPosition[1].Name)

	byName, err := f.svc.ListByCode(context.Background(), f.codeID, true)
	require.NoError(t, err)
	assert.Equal(t, "HOME", byName[0].Name)
	assert.Equal(t, "OFFICE", byName[1].Name)
}

func TestUpdateCodeValuePartial(t *testing.T) {
	f := newCodeValueFixture(t)
	valueID := f.store.addCodeValue(f.codeID, "HOME", 1)

	_, err := f.svc.Update(context.Background(), f.codeID, valueID, UpdateCodeValueRequest{
		Description: ptr("primary residence"),
	})
	require.NoError(t, err)

	stored := f.store.codeValues[valueID]
	assert.Equal(t, "HOME", stored.Label)
	assert.Equal(t, 1, stored.Position)
	assert.Equal(t, "primary residence", stored.Description)
}

func TestUpdateCodeValueOfOtherCode(t *testing.T) {
	f := newCodeValueFixture(t)
	otherCode := f.store.addCode("COUNTRY", true)
	valueID := f.store.addCodeValue(otherCode, "India", 1)

	_, err := f.svc.Update(context.Background(), f.codeID, valueID, UpdateCodeValueRequest{Name: ptr("Bharat")})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteCodeValue(t *testing.T) {
	f := newCodeValueFixture(t)
	valueID := f.store.addCodeValue(f.codeID, "HOME", 1)

	result, err := f.svc.Delete(context.Background(), f.codeID, valueID)
	require.NoError(t, err)
	assert.Equal(t, valueID, result.ResourceID)
	assert.NotContains(t, f.store.codeValues, valueID)
}

func TestDeleteReferencedCodeValueConflicts(t *testing.T) {
	f := newCodeValueFixture(t)
	valueID := f.store.addCodeValue(f.codeID, "HOME", 1)
	clientID := f.store.addClient("Ranjan")
	f.store.addAssociation(clientID, valueID, model.Address{City: "Ahmedabad"})

	_, err := f.svc.Delete(context.Background(), f.codeID, valueID)
	require.ErrorIs(t, err, apperrors.ErrIntegrityConflict)
	assert.Contains(t, f.store.codeValues, valueID)
	assert.Empty(t, f.store.commands)
}
