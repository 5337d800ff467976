package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "org-management-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminClaims represents JWT token claims
type AdminClaims struct {
	// Organization is the slug of the organization the admin belongs to
	Organization         string `json:"org" example:"acme_inc"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService issues and verifies signed, time-limited bearer tokens
type TokenService struct {
	config *AuthConfig
	method *jwt.SigningMethodHMAC
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig) (*TokenService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	method, err := config.SigningMethod()
	if err != nil {
		return nil, err
	}

	return &TokenService{
		config: config,
		method: method,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source; used by tests to move past expiry
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// TTL returns the configured default token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.config.TokenTTL
}

// IssueToken signs a token for subject scoped to organizationSlug, expiring at iat+ttl.
// JWT timestamps carry whole seconds, so iat is the issue time truncated to the second
// and ttl is rounded up to a whole number of seconds. A non-positive ttl uses the configured default.
func (s *TokenService) IssueToken(subject, organizationSlug string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.config.TokenTTL
	}
	if rem := ttl % time.Second; rem != 0 {
		ttl += time.Second - rem
	}

	now := s.now().Truncate(time.Second)
	expiresAt := now.Add(ttl)
	claims := &AdminClaims{
		Organization: organizationSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, claims.ExpiresAt.Time, nil
}

// VerifyToken validates signature, algorithm and expiry and returns the claims.
// The token is expired once the current time reaches exp; no leeway is applied.
func (s *TokenService) VerifyToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" || claims.Organization == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
