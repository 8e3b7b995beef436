package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := New("test-secret", -time.Minute)

	token, err := svc.GenerateToken(1, domain.RoleClient)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(1, domain.RoleClient)
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}
