package repositories

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type suggestionRepository struct {
	repository
}

type SuggestionRepository interface {
	Create(ctx context.Context, request *models.Suggestion) (*models.Suggestion, error)
	GetOne(ctx context.Context, suggestionID string) (*models.Suggestion, error)
	// GetFeed returns every suggestion newest-first with its votes and its
	// comments in ascending order.
	GetFeed(ctx context.Context) ([]*models.Suggestion, error)
	// GetPromotionCandidates returns every suggestion oldest-first with its votes.
	GetPromotionCandidates(ctx context.Context) ([]*models.Suggestion, error)
	Count(ctx context.Context) (int, error)
	// Promote turns the suggestion into an event and retires the suggestion,
	// its votes and its comments in a single transaction.
	Promote(ctx context.Context, suggestionID string, threshold int) (*models.Event, error)
}

func NewSuggestionRepository(db *pg.DB) SuggestionRepository {
	return &suggestionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *suggestionRepository) Create(ctx context.Context, request *models.Suggestion) (*models.Suggestion, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(ctx, request.ID)
}

func (r *suggestionRepository) GetOne(ctx context.Context, suggestionID string) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{}

	err := r.db.ModelContext(ctx, suggestion).
		Relation("Votes").
		Relation("Comments", orderCommentsAscending).
		Where("id = ?", suggestionID).
		Select()

	return suggestion, err
}

func (r *suggestionRepository) GetFeed(ctx context.Context) ([]*models.Suggestion, error) {
	suggestions := make([]*models.Suggestion, 0)

	err := r.db.ModelContext(ctx, &suggestions).
		Relation("Votes").
		Relation("Comments", orderCommentsAscending).
		OrderExpr("created_at DESC").
		Select()

	return suggestions, err
}

func (r *suggestionRepository) GetPromotionCandidates(ctx context.Context) ([]*models.Suggestion, error) {
	suggestions := make([]*models.Suggestion, 0)

	err := r.db.ModelContext(ctx, &suggestions).
		Relation("Votes").
		OrderExpr("created_at ASC").
		Select()

	return suggestions, err
}

func (r *suggestionRepository) Count(ctx context.Context) (int, error) {
	return r.db.ModelContext(ctx, (*models.Suggestion)(nil)).Count()
}

func (r *suggestionRepository) Promote(ctx context.Context, suggestionID string, threshold int) (*models.Event, error) {
	var event *models.Event

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		suggestion := &models.Suggestion{}

		err := tx.ModelContext(ctx, suggestion).
			Where("id = ?", suggestionID).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyPromoted, suggestionID)
		} else if err != nil {
			return err
		}

		votes, err := tx.ModelContext(ctx, (*models.Vote)(nil)).
			Where("suggestion_id = ?", suggestionID).
			Count()
		if err != nil {
			return err
		}

		if votes < threshold {
			return fmt.Errorf("%w: %s has %d of %d votes", apperrors.ErrBelowThreshold, suggestionID, votes, threshold)
		}

		event = suggestion.ToEvent()
		if _, err = tx.ModelContext(ctx, event).Insert(); err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}

		if _, err = tx.ModelContext(ctx, (*models.Vote)(nil)).Where("suggestion_id = ?", suggestionID).Delete(); err != nil {
			return fmt.Errorf("failed to delete votes: %w", err)
		}

		if _, err = tx.ModelContext(ctx, (*models.Comment)(nil)).Where("suggestion_id = ?", suggestionID).Delete(); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		if _, err = tx.ModelContext(ctx, suggestion).WherePK().Delete(); err != nil {
			return fmt.Errorf("failed to delete suggestion: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

func orderCommentsAscending(q *orm.Query) (*orm.Query, error) {
	return q.OrderExpr("created_at ASC"), nil
}
