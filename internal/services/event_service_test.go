package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	mock_repositories "alumni_portal/internal/db/repositories/mocks"
	"alumni_portal/internal/identity"
	"context"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const eventID = "9a1c4f0e-77d2-4c35-8f8e-0f0b2c4d6e21"

var (
	organizerCaller = &identity.Identity{ProfileID: "3f9e2b7a-1c4d-4e5f-8a9b-0c1d2e3f4a5b", Role: models.ProfileRoleOrganizer}
	adminCaller     = &identity.Identity{ProfileID: "7c2d9e1f-3a4b-4c5d-9e6f-1a2b3c4d5e6f", Role: models.ProfileRoleAdmin}
	memberCaller    = &identity.Identity{ProfileID: voterID, Role: models.ProfileRoleMember}
)

func newEventService(t *testing.T) (*eventService, *mock_repositories.MockEventRepository) {
	ctrl := gomock.NewController(t)
	events := mock_repositories.NewMockEventRepository(ctrl)

	service := NewEventService(events, zap.NewNop().Sugar()).(*eventService)
	service.now = func() time.Time { return base }

	return service, events
}

func TestCreateEvent(t *testing.T) {
	t.Run("members cannot create events", func(t *testing.T) {
		service, _ := newEventService(t)

		_, err := service.Create(context.Background(), memberCaller, EventInput{Title: "Gala"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("organizer owns the event", func(t *testing.T) {
		service, events := newEventService(t)

		events.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.Event) (*models.Event, error) {
				e.ID = eventID
				return e, nil
			})

		event, err := service.Create(context.Background(), organizerCaller, EventInput{Title: "Gala"})
		require.NoError(t, err)
		assert.True(t, event.IsOrganizedBy(organizerCaller.ProfileID))
	})
}

func TestUpdateEvent(t *testing.T) {
	owned := func() *models.Event {
		organizerID := organizerCaller.ProfileID
		return &models.Event{ID: eventID, Title: "Gala", OrganizerID: &organizerID}
	}

	t.Run("owner organizer", func(t *testing.T) {
		service, events := newEventService(t)
		title := "Winter Gala"

		events.EXPECT().GetOne(gomock.Any(), eventID).Return(owned(), nil)
		events.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.Event) (*models.Event, error) {
				return e, nil
			})

		event, err := service.Update(context.Background(), organizerCaller, eventID, EventPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Winter Gala", event.Title)
		assert.Equal(t, base, event.UpdatedAt)
	})

	t.Run("other organizer", func(t *testing.T) {
		service, events := newEventService(t)
		other := &identity.Identity{ProfileID: voterID, Role: models.ProfileRoleOrganizer}

		events.EXPECT().GetOne(gomock.Any(), eventID).Return(owned(), nil)

		_, err := service.Update(context.Background(), other, eventID, EventPatch{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("missing event", func(t *testing.T) {
		service, events := newEventService(t)

		events.EXPECT().GetOne(gomock.Any(), eventID).Return(nil, pg.ErrNoRows)

		_, err := service.Update(context.Background(), adminCaller, eventID, EventPatch{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		service, _ := newEventService(t)

		assert.ErrorIs(t, service.Delete(context.Background(), organizerCaller, eventID), apperrors.ErrForbidden)
	})

	t.Run("admin", func(t *testing.T) {
		service, events := newEventService(t)
		event := &models.Event{ID: eventID}

		events.EXPECT().GetOne(gomock.Any(), eventID).Return(event, nil)
		events.EXPECT().Delete(gomock.Any(), event).Return(nil)

		assert.NoError(t, service.Delete(context.Background(), adminCaller, eventID))
	})
}

func TestListEvents(t *testing.T) {
	service, events := newEventService(t)

	events.EXPECT().GetMany(gomock.Any()).Return([]*models.Event{{ID: eventID}}, nil)

	list, err := service.List(context.Background(), memberCaller)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = service.List(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
