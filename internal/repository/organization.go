package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	duplicateKeyCode    = 11000
	namespaceExistsCode = 48
	copyBatchSize       = 500
)

// OrganizationRepository handles organization metadata and the per-tenant collections in the master database
type OrganizationRepository struct {
	db      *mongo.Database
	orgs    *mongo.Collection
	timeout time.Duration
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *mongo.Database, timeout time.Duration) *OrganizationRepository {
	return &OrganizationRepository{
		db:      db,
		orgs:    db.Collection(models.OrganizationsCollection),
		timeout: timeout,
	}
}

// FindBySlug retrieves an organization by its slug
func (r *OrganizationRepository) FindBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var org models.Organization
	if err := r.orgs.FindOne(ctx, bson.M{"name": slug}).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization %q: %w", slug, err)
	}
	return &org, nil
}

// FindByID retrieves an organization by ID
func (r *OrganizationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var org models.Organization
	if err := r.orgs.FindOne(ctx, bson.M{"_id": id}).Decode(&org); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization %s: %w", id.Hex(), err)
	}
	return &org, nil
}

// Insert stores a new organization. The collection name is always derived from the slug.
func (r *OrganizationRepository) Insert(ctx context.Context, org *models.Organization) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	if org.ID.IsZero() {
		org.ID = primitive.NewObjectID()
	}
	org.CollectionName = models.CollectionNameFor(org.Name)
	if org.Status == "" {
		org.Status = models.OrganizationStatusActive
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = now
	}
	org.UpdatedAt = now

	if _, err := r.orgs.InsertOne(ctx, org); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.ErrOrganizationExists
		}
		return primitive.NilObjectID, fmt.Errorf("insert organization %q: %w", org.Name, err)
	}
	return org.ID, nil
}

// SetOwner records the owning admin of an organization
func (r *OrganizationRepository) SetOwner(ctx context.Context, orgID, adminID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.orgs.UpdateOne(ctx,
		bson.M{"_id": orgID},
		bson.M{"$set": bson.M{"owner_admin_id": adminID, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("set owner of organization %s: %w", orgID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrOrganizationNotFound
	}
	return nil
}

// RenameSlug moves an organization record from oldSlug to newSlug and updates its display name.
// The unique index on name rejects a newSlug held by another organization.
func (r *OrganizationRepository) RenameSlug(ctx context.Context, oldSlug, newSlug, displayName string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.orgs.UpdateOne(ctx,
		bson.M{"name": oldSlug},
		bson.M{"$set": bson.M{
			"name":            newSlug,
			"display_name":    displayName,
			"collection_name": models.CollectionNameFor(newSlug),
			"updated_at":      time.Now().UTC(),
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrOrganizationExists
		}
		return fmt.Errorf("rename organization %q to %q: %w", oldSlug, newSlug, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrOrganizationNotFound
	}
	return nil
}

// Delete removes an organization record by slug
func (r *OrganizationRepository) Delete(ctx context.Context, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.orgs.DeleteOne(ctx, bson.M{"name": slug})
	if err != nil {
		return fmt.Errorf("delete organization %q: %w", slug, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrOrganizationNotFound
	}
	return nil
}

// Count returns the number of organization records
func (r *OrganizationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	count, err := r.orgs.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count organizations: %w", err)
	}
	return count, nil
}

// CreateCollection creates an empty tenant collection
func (r *OrganizationRepository) CreateCollection(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsCode {
			return apperrors.ErrCollectionExists
		}
		return fmt.Errorf("create collection %q: %w", name, err)
	}
	return nil
}

// CopyCollection copies every document of src into dst in batches and returns how many were written.
// dst is created when missing. Documents whose _id already exists in dst are skipped, so an
// interrupted copy can be run again. The store timeout bounds each round trip rather than the
// whole copy, so large collections are limited only by ctx.
func (r *OrganizationRepository) CopyCollection(ctx context.Context, src, dst string) (int, error) {
	createCtx, cancel := context.WithTimeout(ctx, r.timeout)
	err := r.db.CreateCollection(createCtx, dst)
	cancel()
	if err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != namespaceExistsCode {
			return 0, fmt.Errorf("create collection %q: %w", dst, err)
		}
	}

	findCtx, cancel := context.WithTimeout(ctx, r.timeout)
	cursor, err := r.db.Collection(src).Find(findCtx, bson.M{}, options.Find().SetBatchSize(copyBatchSize))
	cancel()
	if err != nil {
		return 0, fmt.Errorf("read collection %q: %w", src, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		defer cancel()
		_ = cursor.Close(closeCtx)
	}()

	target := r.db.Collection(dst)
	copied := 0
	batch := make([]interface{}, 0, copyBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		writeCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		written := len(batch)
		_, err := target.InsertMany(writeCtx, batch, options.InsertMany().SetOrdered(false))
		if err != nil {
			skipped, ok := duplicateKeyWrites(err)
			if !ok {
				return fmt.Errorf("write collection %q: %w", dst, err)
			}
			written -= skipped
		}
		copied += written
		batch = batch[:0]
		return nil
	}

	// next bounds each cursor advance; at most one getMore round trip happens per call
	next := func() bool {
		readCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		return cursor.Next(readCtx)
	}

	for next() {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return copied, fmt.Errorf("decode document from %q: %w", src, err)
		}
		batch = append(batch, doc)
		if len(batch) == copyBatchSize {
			if err := flush(); err != nil {
				return copied, err
			}
		}
	}
	if err := cursor.Err(); err != nil {
		return copied, fmt.Errorf("read collection %q: %w", src, err)
	}
	if err := flush(); err != nil {
		return copied, err
	}

	return copied, nil
}

// DropCollection drops a tenant collection. A missing collection is not an error.
func (r *OrganizationRepository) DropCollection(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.Collection(name).Drop(ctx); err != nil {
		return fmt.Errorf("drop collection %q: %w", name, err)
	}
	return nil
}

// duplicateKeyWrites reports how many writes failed and whether every failure was a duplicate key
func duplicateKeyWrites(err error) (int, bool) {
	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) || bulkErr.WriteConcernError != nil || len(bulkErr.WriteErrors) == 0 {
		return 0, false
	}
	for _, writeErr := range bulkErr.WriteErrors {
		if writeErr.Code != duplicateKeyCode {
			return 0, false
		}
	}
	return len(bulkErr.WriteErrors), true
}
