package service_test

import (
	"testing"
	"time"

	"org-management-backend/internal/auth"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "s3cret!"

func newTestHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(bcrypt.MinCost)
}

func newTestTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(&auth.AuthConfig{
		JWTSecret: "test-signing-key",
		Algorithm: "HS256",
		TokenTTL:  time.Hour,
		Issuer:    "org-management-backend",
	})
	require.NoError(t, err)
	return tokens
}

func hashOf(t *testing.T, hasher *auth.PasswordHasher, password string) string {
	t.Helper()
	digest, err := hasher.HashPassword(password)
	require.NoError(t, err)
	return digest
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
