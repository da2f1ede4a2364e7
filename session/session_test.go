package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	created := registry.New()
	require.NotEmpty(t, created.ID)

	found, ok := registry.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	_, ok = registry.Get("unknown")
	assert.False(t, ok)
}

func TestRegistryAuthLifecycle(t *testing.T) {
	registry := NewRegistry()
	created := registry.New()

	registry.SetAuth(created.ID, AuthInfo{
		Token:  "token-123",
		UserID: "user-1",
		Email:  "jane@example.com",
		Role:   "CUSTOMER",
	})

	found, ok := registry.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "token-123", found.Token)
	assert.Equal(t, "user-1", found.UserID)

	registry.ClearAuth(created.ID)

	found, ok = registry.Get(created.ID)
	require.True(t, ok)
	assert.Empty(t, found.Token)
	assert.Equal(t, created.ID, found.ID)

	// Setting auth on an unknown session is a no-op
	registry.SetAuth("unknown", AuthInfo{Token: "x"})
	_, ok = registry.Get("unknown")
	assert.False(t, ok)
}
