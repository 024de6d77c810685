package repositories

import (
	"alumni_portal/internal/db/models"
	"context"

	"github.com/go-pg/pg/v10"
)

type commentRepository struct {
	repository
}

type CommentRepository interface {
	Create(ctx context.Context, request *models.Comment) (*models.Comment, error)
	GetManyBySuggestion(ctx context.Context, suggestionID string) ([]*models.Comment, error)
}

func NewCommentRepository(db *pg.DB) CommentRepository {
	return &commentRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *commentRepository) Create(ctx context.Context, request *models.Comment) (*models.Comment, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{}

	err = r.db.ModelContext(ctx, comment).
		Where("id = ?", request.ID).
		Select()

	return comment, err
}

func (r *commentRepository) GetManyBySuggestion(ctx context.Context, suggestionID string) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)

	err := r.db.ModelContext(ctx, &comments).
		Where("suggestion_id = ?", suggestionID).
		OrderExpr("created_at ASC").
		Select()

	return comments, err
}
