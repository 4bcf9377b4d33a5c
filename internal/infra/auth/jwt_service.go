package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tracker/config"
	"tracker/internal/domain/service"
)

const tokenTypeAccess = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	signingKey []byte        // Secret key for signing tokens.
	ttl        time.Duration // Time-to-live for issued tokens.
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.SigningKey == "" {
		return nil, errors.New("jwt signing key must be provided")
	}
	if cfg.Auth.TokenExpiry <= 0 {
		return nil, errors.New("jwt token expiry must be positive")
	}

	return &jwtService{
		signingKey: []byte(cfg.Auth.SigningKey),
		ttl:        cfg.Auth.TokenExpiry,
		now:        time.Now,
	}, nil
}

// GenerateToken creates a signed access token for the given employee and role.
func (s *jwtService) GenerateToken(employeeID uuid.UUID, role string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":  employeeID.String(), // Subject (who the token is for)
		"iat":  issuedAt.Unix(),     // Issued At
		"exp":  expiresAt.Unix(),    // Expiration Time
		"type": tokenTypeAccess,
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// ValidateToken checks signature, expiry and token type and extracts the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing token subject")
	}

	employeeID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token subject")
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, errors.New("missing token expiry")
	}

	role, _ := claims["role"].(string)

	return &service.Claims{
		EmployeeID: employeeID,
		Role:       role,
		ExpiresAt:  expiresAt.Time,
	}, nil
}
