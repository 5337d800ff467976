package auth

import (
	"errors"
	"net/http"
	"strings"

	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	bearerTokenKey = "bearer_token"
	authClaimsKey  = "auth_claims"
)

// AuthMiddleware provides bearer token middleware
type AuthMiddleware struct {
	service *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *TokenService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireBearer extracts the bearer token without verifying it.
// Used by routes whose service verifies the token against a specific organization.
func (m *AuthMiddleware) RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearer(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(bearerTokenKey, tokenString)
		c.Next()
	}
}

// RequireAuth validates the bearer token and sets the admin claims in context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractBearer(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		claims, err := m.service.VerifyToken(tokenString)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(bearerTokenKey, tokenString)
		c.Set(authClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithAdmin(c.Request.Context(), claims.Subject))

		c.Next()
	}
}

// GetBearerToken is a helper function to extract the raw bearer token from context
func GetBearerToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(bearerTokenKey)
	if !exists {
		return "", false
	}

	tokenStr, ok := token.(string)
	return tokenStr, ok
}

// GetAuthClaims is a helper function to extract verified claims from context
func GetAuthClaims(c *gin.Context) (*AdminClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	adminClaims, ok := claims.(*AdminClaims)
	return adminClaims, ok
}

func extractBearer(header string) (string, error) {
	if header == "" {
		return "", apperrors.ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", apperrors.NewAuthenticationError("invalid authorization header format")
	}

	return strings.TrimSpace(token), nil
}

func abortUnauthorized(c *gin.Context, err error) {
	message := err.Error()
	if errors.Is(err, apperrors.ErrInvalidToken) {
		message = apperrors.ErrInvalidToken.Error()
	}
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "kind": apperrors.Kind(err)})
}
