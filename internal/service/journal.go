package service

import (
	"context"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/logger"
	"org-management-backend/internal/repository"
)

// Journal records each step of the create, rename and delete flows.
// A nil repository disables the journal; recording then only logs.
type Journal struct {
	repo repository.LifecycleEventRepositoryInterface
}

// NewJournal creates a new lifecycle journal
func NewJournal(repo repository.LifecycleEventRepositoryInterface) *Journal {
	return &Journal{repo: repo}
}

// Enabled reports whether events are persisted
func (j *Journal) Enabled() bool {
	return j != nil && j.repo != nil
}

// Record stores the outcome of one step. Persistence failures are logged and never returned.
func (j *Journal) Record(ctx context.Context, org *models.Organization, action models.LifecycleAction, step, actor string, stepErr error) {
	event := &models.LifecycleEvent{
		OrganizationID:   org.ID.Hex(),
		OrganizationSlug: org.Name,
		Action:           action,
		Step:             step,
		Status:           models.LifecycleStatusOK,
		Actor:            actor,
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization": org.Name,
		"action":       string(action),
		"step":         step,
	})
	if stepErr != nil {
		event.Status = models.LifecycleStatusFailed
		event.Detail = stepErr.Error()
		log.WithError(stepErr).Error("organization lifecycle step failed")
	} else {
		log.Debug("organization lifecycle step completed")
	}

	if !j.Enabled() {
		return
	}
	if err := j.repo.Create(ctx, event); err != nil {
		log.WithError(err).Warn("failed to write lifecycle journal")
	}
}

// ListByOrganization returns the journal of an organization, oldest first
func (j *Journal) ListByOrganization(ctx context.Context, organizationID string, limit, offset int) ([]models.LifecycleEvent, int64, error) {
	if !j.Enabled() {
		return nil, 0, apperrors.ErrJournalDisabled
	}
	return j.repo.ListByOrganizationID(ctx, organizationID, limit, offset)
}
