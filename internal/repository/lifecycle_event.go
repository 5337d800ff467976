package repository

import (
	"context"
	"fmt"

	"org-management-backend/internal/database/models"

	"gorm.io/gorm"
)

// LifecycleEventRepository handles database operations for the lifecycle journal
type LifecycleEventRepository struct {
	db *gorm.DB
}

// NewLifecycleEventRepository creates a new lifecycle event repository
func NewLifecycleEventRepository(db *gorm.DB) *LifecycleEventRepository {
	return &LifecycleEventRepository{db: db}
}

// Create appends a journal event
func (r *LifecycleEventRepository) Create(ctx context.Context, event *models.LifecycleEvent) error {
	if !event.Action.IsValid() {
		return fmt.Errorf("unknown lifecycle action %q", event.Action)
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByOrganizationID retrieves journal events of an organization, oldest first, with pagination
func (r *LifecycleEventRepository) ListByOrganizationID(ctx context.Context, organizationID string, limit, offset int) ([]models.LifecycleEvent, int64, error) {
	var events []models.LifecycleEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&models.LifecycleEvent{}).Where("organization_id = ?", organizationID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
