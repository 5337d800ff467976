package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/logger"
	"org-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Journal step names
const (
	stepInsertOrganization = "insert_organization"
	stepCreateCollection   = "create_collection"
	stepInsertAdmin        = "insert_admin"
	stepSetOwner           = "set_owner"
	stepCopyCollection     = "copy_collection"
	stepDropCollection     = "drop_collection"
	stepRenameRecord       = "rename_record"
	stepDeleteAdmins       = "delete_admins"
	stepDeleteRecord       = "delete_record"
)

const defaultHistoryLimit = 100

// OrganizationService orchestrates the organization lifecycle over the organization and admin stores.
// Multi-step flows are not transactional: a failing step stops the flow, is journaled and returned.
type OrganizationService struct {
	orgs       repository.OrganizationRepositoryInterface
	admins     repository.AdminRepositoryInterface
	authorizer *Authorizer
	hasher     *auth.PasswordHasher
	journal    *Journal
	validator  *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	admins repository.AdminRepositoryInterface,
	authorizer *Authorizer,
	hasher *auth.PasswordHasher,
	journal *Journal,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgs:       orgs,
		admins:     admins,
		authorizer: authorizer,
		hasher:     hasher,
		journal:    journal,
		validator:  validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization and its owner
type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=200" example:"Acme Inc"`
	Email            string `json:"email" validate:"required,email,max=254" example:"owner@acme.com"`
	Password         string `json:"password" validate:"required,max=72" example:"s3cret!"`
}

// RenameOrganizationRequest represents the single-name rename request.
// The credentials are checked against the organization named by OrganizationName.
type RenameOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,max=200" example:"Acme Inc"`
	Email            string `json:"email" validate:"required,email,max=254" example:"owner@acme.com"`
	Password         string `json:"password" validate:"required,max=72" example:"s3cret!"`
}

// RenameOrganizationExplicitRequest represents the rename request naming both current and new organization
type RenameOrganizationExplicitRequest struct {
	CurrentOrganizationName string `json:"current_organization_name" validate:"required,max=200" example:"Acme Inc"`
	NewOrganizationName     string `json:"new_organization_name" validate:"required,max=200" example:"Acme Corp"`
	Email                   string `json:"email" validate:"required,email,max=254" example:"owner@acme.com"`
	Password                string `json:"password" validate:"required,max=72" example:"s3cret!"`
}

// OrganizationResponse represents the sanitized organization metadata
type OrganizationResponse struct {
	ID             string    `json:"id" example:"665f1c2e9b1e8a3d4c5b6a79"`
	Name           string    `json:"name" example:"acme_inc"`
	DisplayName    string    `json:"display_name" example:"Acme Inc"`
	CollectionName string    `json:"collection_name" example:"org_acme_inc"`
	OwnerAdminID   string    `json:"owner_admin_id,omitempty" example:"665f1c2e9b1e8a3d4c5b6a7a"`
	OwnerEmail     string    `json:"owner_email,omitempty" example:"owner@acme.com"`
	Status         string    `json:"status" example:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AdminResponse represents an admin without credentials
type AdminResponse struct {
	ID               string    `json:"id" example:"665f1c2e9b1e8a3d4c5b6a7a"`
	OrgID            string    `json:"org_id" example:"665f1c2e9b1e8a3d4c5b6a79"`
	OrganizationName string    `json:"organization_name,omitempty" example:"acme_inc"`
	Email            string    `json:"email" example:"owner@acme.com"`
	Role             string    `json:"role" example:"owner"`
	IsActive         bool      `json:"is_active" example:"true"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateOrganizationResponse represents the result of creating an organization
type CreateOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Admin        AdminResponse        `json:"admin"`
}

// DeleteOrganizationResponse represents the result of deleting an organization
type DeleteOrganizationResponse struct {
	Deleted          bool   `json:"deleted" example:"true"`
	OrganizationName string `json:"organization_name" example:"acme_inc"`
}

// LifecycleEventResponse represents one journaled step
type LifecycleEventResponse struct {
	Action    string    `json:"action" example:"rename"`
	Step      string    `json:"step" example:"copy_collection"`
	Status    string    `json:"status" example:"ok"`
	Slug      string    `json:"organization_name" example:"acme_inc"`
	Detail    string    `json:"detail,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LifecycleHistoryResponse represents the journal of an organization
type LifecycleHistoryResponse struct {
	Events []LifecycleEventResponse `json:"events"`
	Total  int64                    `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// Create provisions an organization: metadata record, tenant collection, owner admin, owner link.
// Slug and email conflicts are detected before anything is written.
func (s *OrganizationService) Create(ctx context.Context, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	displayName := strings.TrimSpace(req.OrganizationName)
	slug := NormalizeName(displayName)
	if slug == "" {
		return nil, apperrors.ErrEmptyOrganizationName
	}

	if _, err := s.orgs.FindBySlug(ctx, slug); err == nil {
		return nil, apperrors.ErrOrganizationExists
	} else if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	taken, err := s.admins.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if taken {
		return nil, apperrors.ErrAdminExists
	}

	digest, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:        slug,
		DisplayName: displayName,
		Status:      models.OrganizationStatusActive,
	}
	actor := strings.ToLower(strings.TrimSpace(req.Email))

	// The unique index makes this insert the arbiter between concurrent creates of one slug
	if _, err := s.orgs.Insert(ctx, org); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionCreate, stepInsertOrganization, actor, nil)

	if err := s.orgs.CreateCollection(ctx, org.CollectionName); err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionCreate, stepCreateCollection, actor, err)
		return nil, wrapStepError("failed to create organization collection", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionCreate, stepCreateCollection, actor, nil)

	admin := &models.Admin{
		OrgID:        org.ID,
		Email:        req.Email,
		PasswordHash: digest,
		Role:         models.AdminRoleOwner,
		IsActive:     true,
	}
	if _, err := s.admins.Insert(ctx, admin); err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionCreate, stepInsertAdmin, actor, err)
		return nil, wrapStepError("failed to create admin", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionCreate, stepInsertAdmin, actor, nil)

	if err := s.orgs.SetOwner(ctx, org.ID, admin.ID); err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionCreate, stepSetOwner, actor, err)
		return nil, fmt.Errorf("failed to link organization owner: %w", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionCreate, stepSetOwner, actor, nil)
	ownerID := admin.ID
	org.OwnerAdminID = &ownerID

	logger.WithContext(ctx).WithField("organization", slug).Info("organization created")

	return &CreateOrganizationResponse{
		Organization: toOrganizationResponse(org, admin.Email),
		Admin:        toAdminResponse(admin, org),
	}, nil
}

// Get returns the sanitized metadata of the organization whose display name normalizes to name
func (s *OrganizationService) Get(ctx context.Context, name string) (*OrganizationResponse, error) {
	org, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	ownerEmail := ""
	if org.OwnerAdminID != nil {
		owner, err := s.admins.FindByID(ctx, *org.OwnerAdminID)
		switch {
		case err == nil:
			ownerEmail = owner.Email
		case !apperrors.IsNotFound(err):
			return nil, fmt.Errorf("failed to get organization owner: %w", err)
		}
	}

	response := toOrganizationResponse(org, ownerEmail)
	return &response, nil
}

// Rename renames the organization named in the request to that same name.
// The credentials are checked against that organization; when the name normalizes to the
// current slug only the display name changes.
func (s *OrganizationService) Rename(ctx context.Context, req *RenameOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	return s.RenameExplicit(ctx, &RenameOrganizationExplicitRequest{
		CurrentOrganizationName: req.OrganizationName,
		NewOrganizationName:     req.OrganizationName,
		Email:                   req.Email,
		Password:                req.Password,
	})
}

// RenameExplicit moves an organization to a new slug: copy the tenant collection, drop the old one,
// then rewrite the metadata record. The old collection is only dropped after every document was copied.
func (s *OrganizationService) RenameExplicit(ctx context.Context, req *RenameOrganizationExplicitRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	org, err := s.resolve(ctx, req.CurrentOrganizationName)
	if err != nil {
		return nil, err
	}

	admin, err := s.authorizer.AuthorizeCredentials(ctx, org, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(req.NewOrganizationName)
	newSlug := NormalizeName(displayName)
	if newSlug == "" {
		return nil, apperrors.NewValidationError("new_organization_name", "organization name is empty after normalization")
	}

	if newSlug != org.Name {
		existing, err := s.orgs.FindBySlug(ctx, newSlug)
		if err == nil && existing.ID != org.ID {
			return nil, apperrors.ErrOrganizationExists
		}
		if err != nil && !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check existing organization: %w", err)
		}
	}

	oldSlug := org.Name
	oldCollection := org.CollectionName
	newCollection := models.CollectionNameFor(newSlug)
	actor := admin.Email
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization": oldSlug,
		"new_name":     newSlug,
	})

	if newSlug != oldSlug {
		copied, err := s.orgs.CopyCollection(ctx, oldCollection, newCollection)
		if err != nil {
			s.journal.Record(ctx, org, models.LifecycleActionRename, stepCopyCollection, actor, err)
			return nil, fmt.Errorf("failed to copy organization collection: %w", err)
		}
		s.journal.Record(ctx, org, models.LifecycleActionRename, stepCopyCollection, actor, nil)
		log.WithField("documents", copied).Info("organization collection copied")

		if err := s.orgs.DropCollection(ctx, oldCollection); err != nil {
			s.journal.Record(ctx, org, models.LifecycleActionRename, stepDropCollection, actor, err)
			return nil, fmt.Errorf("failed to drop old organization collection: %w", err)
		}
		s.journal.Record(ctx, org, models.LifecycleActionRename, stepDropCollection, actor, nil)
	}

	if err := s.orgs.RenameSlug(ctx, oldSlug, newSlug, displayName); err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionRename, stepRenameRecord, actor, err)
		return nil, wrapStepError("failed to rename organization", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionRename, stepRenameRecord, actor, nil)
	log.Info("organization renamed")

	return s.Get(ctx, newSlug)
}

// Delete removes an organization authorized by a bearer token issued for it:
// tenant collection first, then its admins, then the metadata record.
func (s *OrganizationService) Delete(ctx context.Context, name, token string) (*DeleteOrganizationResponse, error) {
	org, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	claims, err := s.authorizer.AuthorizeToken(token, org.Name)
	if err != nil {
		return nil, err
	}
	actor := claims.Subject

	if err := s.orgs.DropCollection(ctx, org.CollectionName); err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionDelete, stepDropCollection, actor, err)
		return nil, fmt.Errorf("failed to drop organization collection: %w", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionDelete, stepDropCollection, actor, nil)

	deleted, err := s.admins.DeleteAllForOrg(ctx, org.ID)
	if err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionDelete, stepDeleteAdmins, actor, err)
		return nil, fmt.Errorf("failed to delete organization admins: %w", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionDelete, stepDeleteAdmins, actor, nil)

	if err := s.orgs.Delete(ctx, org.Name); err != nil {
		s.journal.Record(ctx, org, models.LifecycleActionDelete, stepDeleteRecord, actor, err)
		return nil, wrapStepError("failed to delete organization", err)
	}
	s.journal.Record(ctx, org, models.LifecycleActionDelete, stepDeleteRecord, actor, nil)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization":   org.Name,
		"admins_deleted": deleted,
	}).Info("organization deleted")

	return &DeleteOrganizationResponse{Deleted: true, OrganizationName: org.Name}, nil
}

// Count returns the number of organizations
func (s *OrganizationService) Count(ctx context.Context) (int64, error) {
	count, err := s.orgs.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count organizations: %w", err)
	}
	return count, nil
}

// History returns the lifecycle journal of an organization, authorized by a token issued for it
func (s *OrganizationService) History(ctx context.Context, name, token string, limit, offset int) (*LifecycleHistoryResponse, error) {
	org, err := s.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.authorizer.AuthorizeToken(token, org.Name); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	events, total, err := s.journal.ListByOrganization(ctx, org.ID.Hex(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to read lifecycle journal: %w", err)
	}

	responses := make([]LifecycleEventResponse, len(events))
	for i, event := range events {
		responses[i] = LifecycleEventResponse{
			Action:    string(event.Action),
			Step:      event.Step,
			Status:    string(event.Status),
			Slug:      event.OrganizationSlug,
			Detail:    event.Detail,
			Actor:     event.Actor,
			CreatedAt: event.CreatedAt,
		}
	}

	return &LifecycleHistoryResponse{
		Events: responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// resolve normalizes name and loads the organization it designates
func (s *OrganizationService) resolve(ctx context.Context, name string) (*models.Organization, error) {
	slug := NormalizeName(name)
	if slug == "" {
		return nil, apperrors.ErrEmptyOrganizationName
	}

	org, err := s.orgs.FindBySlug(ctx, slug)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// wrapStepError keeps typed store errors visible to the caller and wraps everything else
func wrapStepError(message string, err error) error {
	if apperrors.IsAlreadyExists(err) || apperrors.IsNotFound(err) {
		return err
	}
	return fmt.Errorf("%s: %w", message, err)
}

func toOrganizationResponse(org *models.Organization, ownerEmail string) OrganizationResponse {
	response := OrganizationResponse{
		ID:             org.ID.Hex(),
		Name:           org.Name,
		DisplayName:    org.DisplayName,
		CollectionName: org.CollectionName,
		OwnerEmail:     ownerEmail,
		Status:         string(org.Status),
		CreatedAt:      org.CreatedAt,
		UpdatedAt:      org.UpdatedAt,
	}
	if org.OwnerAdminID != nil {
		response.OwnerAdminID = org.OwnerAdminID.Hex()
	}
	return response
}

func toAdminResponse(admin *models.Admin, org *models.Organization) AdminResponse {
	response := AdminResponse{
		ID:        admin.ID.Hex(),
		OrgID:     admin.OrgID.Hex(),
		Email:     admin.Email,
		Role:      string(admin.Role),
		IsActive:  admin.IsActive,
		CreatedAt: admin.CreatedAt,
	}
	if org != nil {
		response.OrganizationName = org.Name
	}
	return response
}

func objectIDFromHex(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	return id, err == nil
}
