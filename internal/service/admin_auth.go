package service

import (
	"context"
	"fmt"

	"org-management-backend/internal/auth"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/logger"
	"org-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// AdminAuthService handles admin login and the current-admin lookup
type AdminAuthService struct {
	admins    repository.AdminRepositoryInterface
	orgs      repository.OrganizationRepositoryInterface
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenService
	validator *validator.Validate
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(
	admins repository.AdminRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
	validator *validator.Validate,
) *AdminAuthService {
	return &AdminAuthService{
		admins:    admins,
		orgs:      orgs,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"owner@acme.com"`
	Password string `json:"password" validate:"required,max=72" example:"s3cret!"`
}

// TokenResponse represents an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"3600"`
}

// Login verifies an active admin's credentials and issues a token scoped to its organization.
// Every failure looks the same to the caller.
func (s *AdminAuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	admin, err := s.admins.FindActiveByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !s.hasher.VerifyPassword(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	org, err := s.orgs.FindByID(ctx, admin.OrgID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin organization: %w", err)
	}

	token, _, err := s.tokens.IssueToken(admin.ID.Hex(), org.Name, 0)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"admin":        admin.ID.Hex(),
		"organization": org.Name,
	}).Info("admin logged in")

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// CurrentAdmin returns the profile of the admin a verified token was issued to
func (s *AdminAuthService) CurrentAdmin(ctx context.Context, claims *auth.AdminClaims) (*AdminResponse, error) {
	id, ok := objectIDFromHex(claims.Subject)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInactiveAdmin
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if !admin.IsActive {
		return nil, apperrors.ErrInactiveAdmin
	}

	org, err := s.orgs.FindByID(ctx, admin.OrgID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get admin organization: %w", err)
	}

	response := toAdminResponse(admin, org)
	return &response, nil
}
