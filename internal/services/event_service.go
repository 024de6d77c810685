package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/policy"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type EventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    *string    `json:"location"`
	EventDate   *time.Time `json:"event_date"`
}

// EventPatch changes only the fields that are set.
type EventPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	EventDate   *time.Time `json:"event_date"`
}

type EventService interface {
	List(ctx context.Context, caller *identity.Identity) ([]*models.Event, error)
	Create(ctx context.Context, caller *identity.Identity, input EventInput) (*models.Event, error)
	Update(ctx context.Context, caller *identity.Identity, eventID string, patch EventPatch) (*models.Event, error)
	Delete(ctx context.Context, caller *identity.Identity, eventID string) error
}

type eventService struct {
	events repositories.EventRepository
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewEventService(events repositories.EventRepository, logger *zap.SugaredLogger) EventService {
	return &eventService{
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

func (s *eventService) List(ctx context.Context, caller *identity.Identity) ([]*models.Event, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	events, err := s.events.GetMany(ctx)
	if err != nil {
		s.logger.Errorw("failed to get events", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	return events, nil
}

func (s *eventService) Create(ctx context.Context, caller *identity.Identity, input EventInput) (*models.Event, error) {
	if err := policy.Check(caller, policy.CanCreateEvent(caller)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.MissingField("title")
	}

	organizerID := caller.ProfileID
	event, err := s.events.Create(ctx, &models.Event{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Location:    optionalText(input.Location),
		EventDate:   input.EventDate,
		OrganizerID: &organizerID,
	})
	if err != nil {
		s.logger.Errorw("failed to create event", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	s.logger.Infow("event created", "eventID", event.ID, "organizerID", organizerID)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, caller *identity.Identity, eventID string, patch EventPatch) (*models.Event, error) {
	if caller == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	event, err := s.getOne(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err = policy.Check(caller, policy.CanUpdateEvent(caller, event)); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, apperrors.MissingField("title")
		}
		event.Title = title
	}
	if patch.Description != nil {
		event.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Location != nil {
		event.Location = optionalText(patch.Location)
	}
	if patch.EventDate != nil {
		event.EventDate = patch.EventDate
	}
	event.UpdatedAt = s.now().UTC()

	updated, err := s.events.Update(ctx, event)
	if err != nil {
		s.logger.Errorw("failed to update event", "eventID", eventID, "error", err)
		return nil, apperrors.FromStorage(err)
	}

	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, caller *identity.Identity, eventID string) error {
	if err := policy.Check(caller, policy.CanDeleteEvent(caller)); err != nil {
		return err
	}

	event, err := s.getOne(ctx, eventID)
	if err != nil {
		return err
	}

	if err = s.events.Delete(ctx, event); err != nil {
		s.logger.Errorw("failed to delete event", "eventID", eventID, "error", err)
		return apperrors.FromStorage(err)
	}

	s.logger.Infow("event deleted", "eventID", eventID)
	return nil
}

func (s *eventService) getOne(ctx context.Context, eventID string) (*models.Event, error) {
	if err := validateID(eventID); err != nil {
		return nil, err
	}

	event, err := s.events.GetOne(ctx, eventID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	return event, nil
}
