package service

import (
	"context"

	"org-management-backend/internal/auth"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for the organization lifecycle
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error)
	Get(ctx context.Context, name string) (*OrganizationResponse, error)
	Rename(ctx context.Context, req *RenameOrganizationRequest) (*OrganizationResponse, error)
	RenameExplicit(ctx context.Context, req *RenameOrganizationExplicitRequest) (*OrganizationResponse, error)
	Delete(ctx context.Context, name, token string) (*DeleteOrganizationResponse, error)
	Count(ctx context.Context) (int64, error)
	History(ctx context.Context, name, token string, limit, offset int) (*LifecycleHistoryResponse, error)
}

// AdminAuthServiceInterface defines the interface for admin authentication
type AdminAuthServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	CurrentAdmin(ctx context.Context, claims *auth.AdminClaims) (*AdminResponse, error)
}

var (
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ AdminAuthServiceInterface    = (*AdminAuthService)(nil)
)
