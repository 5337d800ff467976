package repository

import (
	"context"

	"org-management-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization metadata and tenant collection operations
type OrganizationRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*models.Organization, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error)
	Insert(ctx context.Context, org *models.Organization) (primitive.ObjectID, error)
	SetOwner(ctx context.Context, orgID, adminID primitive.ObjectID) error
	RenameSlug(ctx context.Context, oldSlug, newSlug, displayName string) error
	Delete(ctx context.Context, slug string) error
	Count(ctx context.Context) (int64, error)
	CreateCollection(ctx context.Context, name string) error
	CopyCollection(ctx context.Context, src, dst string) (int, error)
	DropCollection(ctx context.Context, name string) error
}

// AdminRepositoryInterface defines the interface for admin credential operations
type AdminRepositoryInterface interface {
	Insert(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error)
	FindByEmailAndOrg(ctx context.Context, email string, orgID primitive.ObjectID) (*models.Admin, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteAllForOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error)
}

// LifecycleEventRepositoryInterface defines the interface for the lifecycle journal
type LifecycleEventRepositoryInterface interface {
	Create(ctx context.Context, event *models.LifecycleEvent) error
	ListByOrganizationID(ctx context.Context, organizationID string, limit, offset int) ([]models.LifecycleEvent, int64, error)
}
