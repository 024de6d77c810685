package repositories

import (
	"alumni_portal/internal/db/models"
	"context"

	"github.com/go-pg/pg/v10"
)

type eventRepository struct {
	repository
}

type EventRepository interface {
	Create(ctx context.Context, request *models.Event) (*models.Event, error)
	Update(ctx context.Context, request *models.Event) (*models.Event, error)
	Delete(ctx context.Context, request *models.Event) error
	GetOne(ctx context.Context, eventID string) (*models.Event, error)
	GetMany(ctx context.Context) ([]*models.Event, error)
}

func NewEventRepository(db *pg.DB) EventRepository {
	return &eventRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *eventRepository) Create(ctx context.Context, request *models.Event) (*models.Event, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(ctx, request.ID)
}

func (r *eventRepository) Update(ctx context.Context, request *models.Event) (*models.Event, error) {
	_, err := r.db.ModelContext(ctx, request).
		Column("title", "description", "location", "event_date", "organizer_id", "updated_at").
		WherePK().
		Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(ctx, request.ID)
}

func (r *eventRepository) Delete(ctx context.Context, request *models.Event) error {
	_, err := r.db.ModelContext(ctx, request).WherePK().Delete()
	return err
}

func (r *eventRepository) GetOne(ctx context.Context, eventID string) (*models.Event, error) {
	event := &models.Event{}

	err := r.db.ModelContext(ctx, event).
		Where("id = ?", eventID).
		Select()

	return event, err
}

// GetMany lists events by date, undated ones last.
func (r *eventRepository) GetMany(ctx context.Context) ([]*models.Event, error) {
	events := make([]*models.Event, 0)

	err := r.db.ModelContext(ctx, &events).
		OrderExpr("event_date ASC NULLS LAST").
		OrderExpr("created_at ASC").
		Select()

	return events, err
}
