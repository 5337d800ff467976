package service

import (
	"context"
	"fmt"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/repository"
)

// Authorizer decides whether a credential pair or a bearer token grants rights over an organization
type Authorizer struct {
	admins repository.AdminRepositoryInterface
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthorizer creates a new authorization check
func NewAuthorizer(admins repository.AdminRepositoryInterface, hasher *auth.PasswordHasher, tokens *auth.TokenService) *Authorizer {
	return &Authorizer{
		admins: admins,
		hasher: hasher,
		tokens: tokens,
	}
}

// AuthorizeCredentials verifies email and password against the admins of org.
// An unknown email, an inactive admin and a wrong password all yield ErrInvalidCredentials.
func (a *Authorizer) AuthorizeCredentials(ctx context.Context, org *models.Organization, email, password string) (*models.Admin, error) {
	admin, err := a.admins.FindByEmailAndOrg(ctx, email, org.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !admin.IsActive || !a.hasher.VerifyPassword(password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return admin, nil
}

// AuthorizeToken verifies token and checks that it was issued for organizationSlug
func (a *Authorizer) AuthorizeToken(token, organizationSlug string) (*auth.AdminClaims, error) {
	if token == "" {
		return nil, apperrors.ErrMissingToken
	}

	claims, err := a.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	if claims.Organization != organizationSlug {
		return nil, apperrors.ErrOrganizationScope
	}

	return claims, nil
}
