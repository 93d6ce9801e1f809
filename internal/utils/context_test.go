package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/music-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPrincipalFromContext checks retrieval of a stored principal.
func TestGetPrincipalFromContext(t *testing.T) {
	principal := models.Principal{Subject: "user-1", Email: "john@example.com", EmailVerified: true}
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, principal)

	got, ok := GetPrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, principal, got)
}

// TestGetPrincipalFromContext_Missing checks the ok flag when nothing was
// stored.
func TestGetPrincipalFromContext_Missing(t *testing.T) {
	_, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
}

// TestGetPrincipalFromContext_WrongType checks the ok flag when the stored
// value has an unexpected type.
func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not a principal")

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}

// TestContextKeyString checks the fmt.Stringer implementation.
func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}
