package testutils

import (
	"time"

	"org-management-backend/internal/database/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return f.WithSlug("test_org", "Test Org")
}

// WithSlug creates an organization with the given slug and display name
func (f *OrganizationFactory) WithSlug(slug, displayName string) *models.Organization {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.Organization{
		ID:             primitive.NewObjectID(),
		Name:           slug,
		DisplayName:    displayName,
		CollectionName: models.CollectionNameFor(slug),
		Status:         models.OrganizationStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithOwner sets the owning admin of an organization
func (f *OrganizationFactory) WithOwner(org *models.Organization, adminID primitive.ObjectID) *models.Organization {
	org.OwnerAdminID = &adminID
	return org
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates a test Admin with default values
func (f *AdminFactory) Create() *models.Admin {
	return f.ForOrganization(primitive.NewObjectID(), "admin-"+uuid.NewString()[:8]+"@example.com")
}

// ForOrganization creates an active owner of orgID with the given email.
// The password hash is left empty; set it with a real hasher when the test logs in.
func (f *AdminFactory) ForOrganization(orgID primitive.ObjectID, email string) *models.Admin {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &models.Admin{
		ID:        primitive.NewObjectID(),
		OrgID:     orgID,
		Email:     email,
		Role:      models.AdminRoleOwner,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Inactive marks an admin as deactivated
func (f *AdminFactory) Inactive(admin *models.Admin) *models.Admin {
	admin.IsActive = false
	return admin
}

// LifecycleEventFactory provides methods to create test LifecycleEvent data
type LifecycleEventFactory struct{}

// NewLifecycleEventFactory creates a new LifecycleEventFactory
func NewLifecycleEventFactory() *LifecycleEventFactory {
	return &LifecycleEventFactory{}
}

// Create creates a successful journal event for an organization step
func (f *LifecycleEventFactory) Create(orgID primitive.ObjectID, slug string, action models.LifecycleAction, step string) *models.LifecycleEvent {
	return &models.LifecycleEvent{
		OrganizationID:   orgID.Hex(),
		OrganizationSlug: slug,
		Action:           action,
		Step:             step,
		Status:           models.LifecycleStatusOK,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization   *OrganizationFactory
	Admin          *AdminFactory
	LifecycleEvent *LifecycleEventFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		Admin:          NewAdminFactory(),
		LifecycleEvent: NewLifecycleEventFactory(),
	}
}

// CreateOrganizationWithOwner creates an organization and its owner admin linked to each other
func (fs *FactorySet) CreateOrganizationWithOwner(slug, displayName, email string) (*models.Organization, *models.Admin) {
	org := fs.Organization.WithSlug(slug, displayName)
	admin := fs.Admin.ForOrganization(org.ID, email)
	fs.Organization.WithOwner(org, admin.ID)
	return org, admin
}
