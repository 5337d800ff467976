package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "org-management-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  "test-signing-key",
		Algorithm:  "HS256",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
		Issuer:     "org-management-backend",
	}
}

func newTestTokenService(t *testing.T, now time.Time) *TokenService {
	t.Helper()
	service, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)
	return service.WithClock(func() time.Time { return now })
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testAuthConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testAuthConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		config := testAuthConfig()
		config.Algorithm = "RS256"

		err := config.ValidateConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedSigningMethod)
		assert.True(t, apperrors.IsConfiguration(err))
		assert.Contains(t, err.Error(), `"RS256"`)

		_, err = NewTokenService(config)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := testAuthConfig()
		config.TokenTTL = 0
		assert.True(t, apperrors.IsConfiguration(config.ValidateConfig()))
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		config := testAuthConfig()
		config.BcryptCost = bcrypt.MaxCost + 1
		assert.True(t, apperrors.IsConfiguration(config.ValidateConfig()))
	})

	t.Run("signing methods", func(t *testing.T) {
		for alg, expected := range map[string]string{"": "HS256", "HS256": "HS256", "HS384": "HS384", "HS512": "HS512"} {
			config := testAuthConfig()
			config.Algorithm = alg
			method, err := config.SigningMethod()
			require.NoError(t, err)
			assert.Equal(t, expected, method.Alg())
		}
	})
}

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	t.Run("hash then verify", func(t *testing.T) {
		digest, err := hasher.HashPassword("s3cret!")
		require.NoError(t, err)

		assert.NotEqual(t, "s3cret!", digest)
		assert.True(t, hasher.VerifyPassword("s3cret!", digest))
		assert.False(t, hasher.VerifyPassword("wrong", digest))
	})

	t.Run("digests are salted", func(t *testing.T) {
		first, err := hasher.HashPassword("same")
		require.NoError(t, err)
		second, err := hasher.HashPassword("same")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.VerifyPassword("same", first))
		assert.True(t, hasher.VerifyPassword("same", second))
	})

	t.Run("malformed digest never matches", func(t *testing.T) {
		assert.False(t, hasher.VerifyPassword("anything", ""))
		assert.False(t, hasher.VerifyPassword("anything", "not-a-bcrypt-digest"))
	})

	t.Run("zero cost uses default", func(t *testing.T) {
		assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	})
}

func TestTokenOperations(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	t.Run("issue and verify", func(t *testing.T) {
		service := newTestTokenService(t, now)

		token, expiresAt, err := service.IssueToken("owner@acme.com", "acme_inc", 0)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, now.Add(time.Hour), expiresAt)

		claims, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "owner@acme.com", claims.Subject)
		assert.Equal(t, "acme_inc", claims.Organization)
		assert.Equal(t, "org-management-backend", claims.Issuer)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("custom ttl", func(t *testing.T) {
		service := newTestTokenService(t, now)

		_, expiresAt, err := service.IssueToken("owner@acme.com", "acme_inc", 5*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, now.Add(5*time.Minute), expiresAt)
	})

	t.Run("valid until just before expiry", func(t *testing.T) {
		service := newTestTokenService(t, now)
		token, _, err := service.IssueToken("owner@acme.com", "acme_inc", time.Minute)
		require.NoError(t, err)

		service.WithClock(func() time.Time { return now.Add(time.Minute - time.Second) })
		_, err = service.VerifyToken(token)
		assert.NoError(t, err)
	})

	t.Run("expired at exp", func(t *testing.T) {
		service := newTestTokenService(t, now)
		token, _, err := service.IssueToken("owner@acme.com", "acme_inc", time.Minute)
		require.NoError(t, err)

		service.WithClock(func() time.Time { return now.Add(time.Minute) })
		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("sub-second issue time", func(t *testing.T) {
		issuedAt := now.Add(700 * time.Millisecond)
		service := newTestTokenService(t, issuedAt)

		token, expiresAt, err := service.IssueToken("owner@acme.com", "acme_inc", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Minute), expiresAt)

		_, err = service.VerifyToken(token)
		require.NoError(t, err)

		service.WithClock(func() time.Time { return now.Add(59*time.Second + 500*time.Millisecond) })
		_, err = service.VerifyToken(token)
		assert.NoError(t, err)

		service.WithClock(func() time.Time { return now.Add(time.Minute) })
		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("sub-second ttl rounds up", func(t *testing.T) {
		issuedAt := now.Add(700 * time.Millisecond)
		service := newTestTokenService(t, issuedAt)

		token, expiresAt, err := service.IssueToken("owner@acme.com", "acme_inc", 200*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Second), expiresAt)

		_, err = service.VerifyToken(token)
		assert.NoError(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		service := newTestTokenService(t, now)
		token, _, err := service.IssueToken("owner@acme.com", "acme_inc", 0)
		require.NoError(t, err)

		other := testAuthConfig()
		other.JWTSecret = "another-key"
		otherService, err := NewTokenService(other)
		require.NoError(t, err)
		otherService.WithClock(func() time.Time { return now })

		_, err = otherService.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("algorithm mismatch rejected", func(t *testing.T) {
		service := newTestTokenService(t, now)

		claims := &AdminClaims{
			Organization: "acme_inc",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "owner@acme.com",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing expiry rejected", func(t *testing.T) {
		service := newTestTokenService(t, now)

		claims := &AdminClaims{
			Organization:     "acme_inc",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "owner@acme.com"},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing organization claim rejected", func(t *testing.T) {
		service := newTestTokenService(t, now)

		token, _, err := service.IssueToken("owner@acme.com", "", 0)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		service := newTestTokenService(t, now)

		_, err := service.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.True(t, apperrors.IsAuthentication(err))
	})
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/bearer", middleware.RequireBearer(), func(c *gin.Context) {
		token, ok := GetBearerToken(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"token": token})
	})
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": claims.Subject, "org": claims.Organization})
	})

	validToken, _, err := service.IssueToken("owner@acme.com", "acme_inc", 0)
	require.NoError(t, err)

	testCases := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedKind   string
	}{
		{"bearer passes raw token", "/bearer", "Bearer raw-token", http.StatusOK, ""},
		{"bearer missing header", "/bearer", "", http.StatusUnauthorized, "unauthorized"},
		{"bearer wrong scheme", "/bearer", "Basic abc", http.StatusUnauthorized, "unauthorized"},
		{"bearer empty token", "/bearer", "Bearer ", http.StatusUnauthorized, "unauthorized"},
		{"auth valid token", "/me", "Bearer " + validToken, http.StatusOK, ""},
		{"auth lowercase scheme", "/me", "bearer " + validToken, http.StatusOK, ""},
		{"auth invalid token", "/me", "Bearer garbage", http.StatusUnauthorized, "unauthorized"},
		{"auth missing header", "/me", "", http.StatusUnauthorized, "unauthorized"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.expectedKind != "" {
				assert.Equal(t, tc.expectedKind, body["kind"])
				assert.NotEmpty(t, body["error"])
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}

	t.Run("claims exposed to handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)

		router.ServeHTTP(w, req)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "owner@acme.com", body["email"])
		assert.Equal(t, "acme_inc", body["org"])
	})
}
