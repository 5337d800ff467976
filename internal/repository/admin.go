package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository handles database operations for admin users
type AdminRepository struct {
	admins  *mongo.Collection
	timeout time.Duration
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *mongo.Database, timeout time.Duration) *AdminRepository {
	return &AdminRepository{
		admins:  db.Collection(models.AdminsCollection),
		timeout: timeout,
	}
}

// Insert stores a new admin. Emails are stored lowercased.
func (r *AdminRepository) Insert(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	admin.Email = normalizeEmail(admin.Email)
	if admin.Role == "" {
		admin.Role = models.AdminRoleAdmin
	}
	if !admin.Role.IsValid() {
		return primitive.NilObjectID, apperrors.NewValidationError("role", fmt.Sprintf("unknown admin role %q", admin.Role))
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now

	if _, err := r.admins.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.ErrAdminExists
		}
		return primitive.NilObjectID, fmt.Errorf("insert admin: %w", err)
	}
	return admin.ID, nil
}

// FindByEmailAndOrg retrieves the admin with email that belongs to orgID
func (r *AdminRepository) FindByEmailAndOrg(ctx context.Context, email string, orgID primitive.ObjectID) (*models.Admin, error) {
	return r.findOne(ctx, bson.M{"email": normalizeEmail(email), "org_id": orgID})
}

// FindActiveByEmail retrieves an active admin by email across all organizations
func (r *AdminRepository) FindActiveByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.findOne(ctx, bson.M{"email": normalizeEmail(email), "is_active": true})
}

// FindByID retrieves an admin by ID
func (r *AdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// ExistsByEmail reports whether any admin already uses email
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.admins.CountDocuments(ctx, bson.M{"email": normalizeEmail(email)})
	if err != nil {
		return false, fmt.Errorf("count admins by email: %w", err)
	}
	return count > 0, nil
}

// DeleteAllForOrg removes every admin of orgID and returns how many were deleted
func (r *AdminRepository) DeleteAllForOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.admins.DeleteMany(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return 0, fmt.Errorf("delete admins of organization %s: %w", orgID.Hex(), err)
	}
	return res.DeletedCount, nil
}

func (r *AdminRepository) findOne(ctx context.Context, filter bson.M) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var admin models.Admin
	if err := r.admins.FindOne(ctx, filter).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
