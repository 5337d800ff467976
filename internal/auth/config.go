package auth

import (
	"fmt"
	"time"

	"org-management-backend/internal/config"
	apperrors "org-management-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the credential settings shared by token issuance and password hashing
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" json:"jwt_secret"`
	Algorithm  string        `yaml:"algorithm" json:"algorithm"`
	TokenTTL   time.Duration `yaml:"token_ttl" json:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
	Issuer     string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig derives the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		Algorithm:  cfg.JWTAlgorithm,
		TokenTTL:   cfg.AccessTokenTTL(),
		BcryptCost: cfg.BcryptCost,
		Issuer:     "org-management-backend",
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.NewConfigurationError("JWT secret is required")
	}

	if _, err := c.SigningMethod(); err != nil {
		return err
	}

	if c.TokenTTL <= 0 {
		return apperrors.NewConfigurationError("token TTL must be positive")
	}

	if c.BcryptCost != 0 && (c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost) {
		return apperrors.NewConfigurationError(fmt.Sprintf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	return nil
}

// SigningMethod resolves the configured HMAC algorithm
func (c *AuthConfig) SigningMethod() (*jwt.SigningMethodHMAC, error) {
	switch c.Algorithm {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("%w %q", apperrors.ErrUnsupportedSigningMethod, c.Algorithm)
}
