package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			SigningKey:  "test_signing_key_very_long_for_testing",
			TokenExpiry: time.Hour,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	employeeID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(employeeID, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, employeeID, claims.EmployeeID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateToken(uuid.New(), "employee")
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	other, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{SigningKey: "another_key", TokenExpiry: time.Hour}})
	require.NoError(t, err)

	token, _, err := other.GenerateToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedTokens(t *testing.T) {
	svc := newTestJWTService(t)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name:   "wrong token type",
			claims: jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix(), "type": "refresh"},
		},
		{
			name:   "subject is not a uuid",
			claims: jwt.MapClaims{"sub": "someone", "exp": time.Now().Add(time.Hour).Unix(), "type": tokenTypeAccess},
		},
		{
			name:   "missing expiry",
			claims: jwt.MapClaims{"sub": uuid.NewString(), "type": tokenTypeAccess},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString(svc.signingKey)
			require.NoError(t, err)

			claims, err := svc.ValidateToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}

	_, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_MissingSigningKey(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{TokenExpiry: time.Hour}})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt signing key must be provided")
}
