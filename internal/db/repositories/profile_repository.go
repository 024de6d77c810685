package repositories

import (
	"alumni_portal/internal/db/models"
	"context"
	"strings"

	"github.com/go-pg/pg/v10"
)

type profileRepository struct {
	repository
}

type ProfileFilter struct {
	Query          string
	GraduationYear *int
	Verified       *bool
}

type ProfileRepository interface {
	Create(ctx context.Context, request *models.Profile) (*models.Profile, error)
	// Update writes the given columns, or every column when none are named.
	Update(ctx context.Context, request *models.Profile, columns ...string) (*models.Profile, error)
	Delete(ctx context.Context, request *models.Profile) error
	GetOneByID(ctx context.Context, profileID string) (*models.Profile, error)
	GetOneByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetMany(ctx context.Context, filter ProfileFilter) ([]*models.Profile, error)
}

func NewProfileRepository(db *pg.DB) ProfileRepository {
	return &profileRepository{
		repository: repository{
			db: db,
		},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *profileRepository) Create(ctx context.Context, request *models.Profile) (*models.Profile, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(ctx, request.ID)
}

func (r *profileRepository) Update(ctx context.Context, request *models.Profile, columns ...string) (*models.Profile, error) {
	q := r.db.ModelContext(ctx, request).WherePK()
	if len(columns) > 0 {
		q = q.Column(columns...)
	}

	if _, err := q.Update(); err != nil {
		return nil, err
	}

	return r.GetOneByID(ctx, request.ID)
}

func (r *profileRepository) Delete(ctx context.Context, request *models.Profile) error {
	_, err := r.db.ModelContext(ctx, request).WherePK().Delete()
	return err
}

func (r *profileRepository) GetOneByID(ctx context.Context, profileID string) (*models.Profile, error) {
	profile := &models.Profile{}

	err := r.db.ModelContext(ctx, profile).
		Where("id = ?", profileID).
		Select()

	return profile, err
}

func (r *profileRepository) GetOneByEmail(ctx context.Context, email string) (*models.Profile, error) {
	profile := &models.Profile{}

	err := r.db.ModelContext(ctx, profile).
		Where("lower(email) = lower(?)", email).
		Select()

	return profile, err
}

func (r *profileRepository) GetMany(ctx context.Context, filter ProfileFilter) ([]*models.Profile, error) {
	profiles := make([]*models.Profile, 0)

	q := r.db.ModelContext(ctx, &profiles)

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + likeEscaper.Replace(query) + "%"
		q = q.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			for _, column := range []string{"full_name", "company", "job_title", "major", "location"} {
				q = q.WhereOr("? ILIKE ?", pg.Ident(column), pattern)
			}
			return q, nil
		})
	}

	if filter.GraduationYear != nil {
		q = q.Where("graduation_year = ?", *filter.GraduationYear)
	}

	if filter.Verified != nil {
		q = q.Where("verified = ?", *filter.Verified)
	}

	err := q.OrderExpr("full_name ASC").Select()

	return profiles, err
}
