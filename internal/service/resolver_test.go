package service

import (
	"context"
	"testing"

	"finadmin/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverNumericToken(t *testing.T) {
	store := newFakeStore()
	codeID := store.addCode("ADDRESS_TYPE", true)
	valueID := store.addCodeValue(codeID, "HOME", 1)
	resolver := NewCodeValueResolver(&fakeCodeValueRepo{store: store})

	value, err := resolver.Resolve(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, valueID, value.ID)
	assert.Equal(t, "HOME", value.Label)
}

func TestResolverNumericMiss(t *testing.T) {
	store := newFakeStore()
	resolver := NewCodeValueResolver(&fakeCodeValueRepo{store: store})

	_, err := resolver.Resolve(context.Background(), "99")
	var refErr *apperrors.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "99", refErr.Token)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestResolverLabelToken(t *testing.T) {
	store := newFakeStore()
	codeID := store.addCode("COUNTRY", true)
	valueID := store.addCodeValue(codeID, "India", 1)
	resolver := NewCodeValueResolver(&fakeCodeValueRepo{store: store})

	value, err := resolver.Resolve(context.Background(), "India")
	require.NoError(t, err)
	assert.Equal(t, valueID, value.ID)
}

func TestResolverLabelIsCaseSensitive(t *testing.T) {
	store := newFakeStore()
	codeID := store.addCode("COUNTRY", true)
	store.addCodeValue(codeID, "India", 1)
	resolver := NewCodeValueResolver(&fakeCodeValueRepo{store: store})

	_, err := resolver.Resolve(context.Background(), "india")
	var refErr *apperrors.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "india", refErr.Token)
}

func TestResolverCrossCodeClashLowestIDWins(t *testing.T) {
	store := newFakeStore()
	stateCode := store.addCode("STATE", true)
	countryCode := store.addCode("COUNTRY", true)
	first := store.addCodeValue(stateCode, "Georgia", 1)
	store.addCodeValue(countryCode, "Georgia", 1)
	resolver := NewCodeValueResolver(&fakeCodeValueRepo{store: store})

	value, err := resolver.Resolve(context.Background(), "Georgia")
	require.NoError(t, err)
	assert.Equal(t, first, value.ID)
	assert.Equal(t, stateCode, value.CodeID)
}

func TestResolverNegativeNumberTreatedAsLabel(t *testing.T) {
	store := newFakeStore()
	codeID := store.addCode("STATE", true)
	store.addCodeValue(codeID, "-1", 1)
	resolver := NewCodeValueResolver(&fakeCodeValueRepo{store: store})

	value, err := resolver.Resolve(context.Background(), "-1")
	require.NoError(t, err)
	assert.Equal(t, "-1", value.Label)
}
