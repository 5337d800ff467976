package testutils

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory stand-in for the master database.
// It enforces the same uniqueness rules as the mongo indexes and is safe for concurrent use.
type MemoryStore struct {
	mu          sync.Mutex
	orgs        map[primitive.ObjectID]*models.Organization
	admins      map[primitive.ObjectID]*models.Admin
	collections map[string][]string
	events      []models.LifecycleEvent

	// FailOn makes the named operation fail with the given error once, e.g. "DropCollection"
	FailOn map[string]error
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orgs:        make(map[primitive.ObjectID]*models.Organization),
		admins:      make(map[primitive.ObjectID]*models.Admin),
		collections: make(map[string][]string),
		FailOn:      make(map[string]error),
	}
}

// Organizations returns the store as an organization repository
func (s *MemoryStore) Organizations() *MemoryOrganizationRepository {
	return &MemoryOrganizationRepository{store: s}
}

// Admins returns the store as an admin repository
func (s *MemoryStore) Admins() *MemoryAdminRepository {
	return &MemoryAdminRepository{store: s}
}

// Events returns the store as a lifecycle journal repository
func (s *MemoryStore) Events() *MemoryEventRepository {
	return &MemoryEventRepository{store: s}
}

// HasCollection reports whether a tenant collection exists
func (s *MemoryStore) HasCollection(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.collections[name]
	return ok
}

// CollectionDocs returns the documents stored in a tenant collection
func (s *MemoryStore) CollectionDocs(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.collections[name]...)
}

// SeedCollection puts documents into a tenant collection, creating it if needed
func (s *MemoryStore) SeedCollection(name string, docs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = append(s.collections[name], docs...)
}

// AdminsOf returns every admin that belongs to orgID
func (s *MemoryStore) AdminsOf(orgID primitive.ObjectID) []models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Admin
	for _, admin := range s.admins {
		if admin.OrgID == orgID {
			out = append(out, *admin)
		}
	}
	return out
}

func (s *MemoryStore) fail(op string) error {
	if err, ok := s.FailOn[op]; ok {
		delete(s.FailOn, op)
		return err
	}
	return nil
}

// MemoryOrganizationRepository implements the organization repository over a MemoryStore
type MemoryOrganizationRepository struct {
	store *MemoryStore
}

func (r *MemoryOrganizationRepository) findBySlug(slug string) *models.Organization {
	for _, org := range r.store.orgs {
		if org.Name == slug {
			return org
		}
	}
	return nil
}

func (r *MemoryOrganizationRepository) FindBySlug(_ context.Context, slug string) (*models.Organization, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("FindBySlug"); err != nil {
		return nil, err
	}
	org := r.findBySlug(slug)
	if org == nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	clone := *org
	return &clone, nil
}

func (r *MemoryOrganizationRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Organization, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	org, ok := r.store.orgs[id]
	if !ok {
		return nil, apperrors.ErrOrganizationNotFound
	}
	clone := *org
	return &clone, nil
}

func (r *MemoryOrganizationRepository) Insert(_ context.Context, org *models.Organization) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("InsertOrganization"); err != nil {
		return primitive.NilObjectID, err
	}
	if r.findBySlug(org.Name) != nil {
		return primitive.NilObjectID, apperrors.ErrOrganizationExists
	}
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
	clone := *org
	r.store.orgs[org.ID] = &clone
	return org.ID, nil
}

func (r *MemoryOrganizationRepository) SetOwner(_ context.Context, orgID, adminID primitive.ObjectID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("SetOwner"); err != nil {
		return err
	}
	org, ok := r.store.orgs[orgID]
	if !ok {
		return apperrors.ErrOrganizationNotFound
	}
	owner := adminID
	org.OwnerAdminID = &owner
	org.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryOrganizationRepository) RenameSlug(_ context.Context, oldSlug, newSlug, displayName string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("RenameSlug"); err != nil {
		return err
	}
	org := r.findBySlug(oldSlug)
	if org == nil {
		return apperrors.ErrOrganizationNotFound
	}
	if other := r.findBySlug(newSlug); other != nil && other.ID != org.ID {
		return apperrors.ErrOrganizationExists
	}
	org.Name = newSlug
	org.DisplayName = displayName
	org.CollectionName = models.CollectionNameFor(newSlug)
	org.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryOrganizationRepository) Delete(_ context.Context, slug string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("DeleteOrganization"); err != nil {
		return err
	}
	org := r.findBySlug(slug)
	if org == nil {
		return apperrors.ErrOrganizationNotFound
	}
	delete(r.store.orgs, org.ID)
	return nil
}

func (r *MemoryOrganizationRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.orgs)), nil
}

func (r *MemoryOrganizationRepository) CreateCollection(_ context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("CreateCollection"); err != nil {
		return err
	}
	if _, ok := r.store.collections[name]; ok {
		return apperrors.ErrCollectionExists
	}
	r.store.collections[name] = []string{}
	return nil
}

func (r *MemoryOrganizationRepository) CopyCollection(_ context.Context, src, dst string) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("CopyCollection"); err != nil {
		return 0, err
	}
	existing := make(map[string]bool)
	for _, doc := range r.store.collections[dst] {
		existing[doc] = true
	}
	target := append([]string{}, r.store.collections[dst]...)
	copied := 0
	for _, doc := range r.store.collections[src] {
		if existing[doc] {
			continue
		}
		target = append(target, doc)
		copied++
	}
	r.store.collections[dst] = target
	return copied, nil
}

func (r *MemoryOrganizationRepository) DropCollection(_ context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("DropCollection"); err != nil {
		return err
	}
	delete(r.store.collections, name)
	return nil
}

// MemoryAdminRepository implements the admin repository over a MemoryStore
type MemoryAdminRepository struct {
	store *MemoryStore
}

func (r *MemoryAdminRepository) Insert(_ context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("InsertAdmin"); err != nil {
		return primitive.NilObjectID, err
	}
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	for _, existing := range r.store.admins {
		if existing.Email == email {
			return primitive.NilObjectID, apperrors.ErrAdminExists
		}
	}
	now := time.Now().UTC()
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	admin.Email = email
	if admin.Role == "" {
		admin.Role = models.AdminRoleAdmin
	}
	if !admin.Role.IsValid() {
		return primitive.NilObjectID, apperrors.NewValidationError("role", "unknown admin role")
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now
	clone := *admin
	r.store.admins[admin.ID] = &clone
	return admin.ID, nil
}

func (r *MemoryAdminRepository) find(match func(*models.Admin) bool) (*models.Admin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, admin := range r.store.admins {
		if match(admin) {
			clone := *admin
			return &clone, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (r *MemoryAdminRepository) FindByEmailAndOrg(_ context.Context, email string, orgID primitive.ObjectID) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.find(func(a *models.Admin) bool { return a.Email == email && a.OrgID == orgID })
}

func (r *MemoryAdminRepository) FindActiveByEmail(_ context.Context, email string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.find(func(a *models.Admin) bool { return a.Email == email && a.IsActive })
}

func (r *MemoryAdminRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	return r.find(func(a *models.Admin) bool { return a.ID == id })
}

func (r *MemoryAdminRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.find(func(a *models.Admin) bool { return a.Email == email })
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *MemoryAdminRepository) DeleteAllForOrg(_ context.Context, orgID primitive.ObjectID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("DeleteAllForOrg"); err != nil {
		return 0, err
	}
	var deleted int64
	for id, admin := range r.store.admins {
		if admin.OrgID == orgID {
			delete(r.store.admins, id)
			deleted++
		}
	}
	return deleted, nil
}

// MemoryEventRepository implements the lifecycle journal repository over a MemoryStore
type MemoryEventRepository struct {
	store *MemoryStore
}

func (r *MemoryEventRepository) Create(_ context.Context, event *models.LifecycleEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	r.store.events = append(r.store.events, *event)
	return nil
}

func (r *MemoryEventRepository) ListByOrganizationID(_ context.Context, organizationID string, limit, offset int) ([]models.LifecycleEvent, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var matched []models.LifecycleEvent
	for _, event := range r.store.events {
		if event.OrganizationID == organizationID {
			matched = append(matched, event)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.LifecycleEvent{}, total, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}
