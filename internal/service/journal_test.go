package service_test

import (
	"context"
	"errors"
	"testing"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/mocks"
	"org-management-backend/internal/service"
	"org-management-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJournalRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLifecycleEventRepositoryInterface(ctrl)
	journal := service.NewJournal(repo)
	org := testutils.NewOrganizationFactory().WithSlug("acme_inc", "Acme Inc")

	t.Run("completed step", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *models.LifecycleEvent) error {
				assert.Equal(t, org.ID.Hex(), event.OrganizationID)
				assert.Equal(t, "acme_inc", event.OrganizationSlug)
				assert.Equal(t, models.LifecycleActionCreate, event.Action)
				assert.Equal(t, "insert_organization", event.Step)
				assert.Equal(t, models.LifecycleStatusOK, event.Status)
				assert.Empty(t, event.Detail)
				assert.Equal(t, "owner@acme.com", event.Actor)
				return nil
			})

		journal.Record(context.Background(), org, models.LifecycleActionCreate, "insert_organization", "owner@acme.com", nil)
	})

	t.Run("failed step carries the error", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *models.LifecycleEvent) error {
				assert.Equal(t, models.LifecycleStatusFailed, event.Status)
				assert.Equal(t, "socket closed", event.Detail)
				return nil
			})

		journal.Record(context.Background(), org, models.LifecycleActionRename, "copy_collection", "owner@acme.com", errors.New("socket closed"))
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("journal unavailable"))

		assert.NotPanics(t, func() {
			journal.Record(context.Background(), org, models.LifecycleActionDelete, "delete_record", "admin-id", nil)
		})
	})
}

func TestJournalDisabled(t *testing.T) {
	journal := service.NewJournal(nil)
	org := testutils.NewOrganizationFactory().WithSlug("acme_inc", "Acme Inc")

	assert.False(t, journal.Enabled())
	assert.NotPanics(t, func() {
		journal.Record(context.Background(), org, models.LifecycleActionCreate, "insert_organization", "", errors.New("boom"))
	})

	_, _, err := journal.ListByOrganization(context.Background(), org.ID.Hex(), 10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrJournalDisabled)
}

func TestJournalListByOrganization(t *testing.T) {
	store := testutils.NewMemoryStore()
	journal := service.NewJournal(store.Events())
	factory := testutils.NewOrganizationFactory()
	acme := factory.WithSlug("acme_inc", "Acme Inc")
	globex := factory.WithSlug("globex", "Globex")
	ctx := context.Background()

	journal.Record(ctx, acme, models.LifecycleActionCreate, "insert_organization", "", nil)
	journal.Record(ctx, globex, models.LifecycleActionCreate, "insert_organization", "", nil)
	journal.Record(ctx, acme, models.LifecycleActionCreate, "create_collection", "", nil)
	journal.Record(ctx, acme, models.LifecycleActionCreate, "insert_admin", "", errors.New("duplicate"))

	events, total, err := journal.ListByOrganization(ctx, acme.ID.Hex(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, events, 2)
	assert.Equal(t, "create_collection", events[0].Step)
	assert.Equal(t, "insert_admin", events[1].Step)
	assert.Equal(t, models.LifecycleStatusFailed, events[1].Status)
}
