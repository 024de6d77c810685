package repositories

import (
	"alumni_portal/internal/db/models"
	"context"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Toggle(ctx context.Context, suggestionID, voterID string) (voted bool, err error)
	GetManyBySuggestion(ctx context.Context, suggestionID string) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Toggle removes the voter's vote when one exists and casts it otherwise.
// Toggles of the same pair are serialized by a transaction-scoped advisory
// lock, so concurrent toggles alternate instead of both casting the vote.
func (r *voteRepository) Toggle(ctx context.Context, suggestionID, voterID string) (bool, error) {
	voted := false

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext(?), hashtext(?))", suggestionID, voterID); err != nil {
			return err
		}

		res, err := tx.ModelContext(ctx, (*models.Vote)(nil)).
			Where("suggestion_id = ?", suggestionID).
			Where("voter_id = ?", voterID).
			Delete()
		if err != nil {
			return err
		}

		if res.RowsAffected() > 0 {
			return nil
		}

		vote := &models.Vote{
			SuggestionID: suggestionID,
			VoterID:      voterID,
		}

		_, err = tx.ModelContext(ctx, vote).
			OnConflict("(suggestion_id, voter_id) DO NOTHING").
			Insert()
		if err != nil {
			return err
		}

		voted = true
		return nil
	})

	return voted, err
}

func (r *voteRepository) GetManyBySuggestion(ctx context.Context, suggestionID string) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.ModelContext(ctx, &votes).
		Where("suggestion_id = ?", suggestionID).
		OrderExpr("created_at ASC").
		Select()

	return votes, err
}
