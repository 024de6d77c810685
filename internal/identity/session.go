package identity

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/repositories"
	"context"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-pg/pg/v10"
)

const profileIDKey = "profile_id"

type Resolver interface {
	Resolve(r *http.Request) (*Identity, error)
}

// SessionResolver keeps the signed-in profile id in an scs session and
// loads the caller's role and verification from the profile on every request.
type SessionResolver struct {
	sessions *scs.SessionManager
	profiles repositories.ProfileRepository
}

func NewSessionResolver(sessions *scs.SessionManager, profiles repositories.ProfileRepository) *SessionResolver {
	return &SessionResolver{
		sessions: sessions,
		profiles: profiles,
	}
}

func (s *SessionResolver) Resolve(r *http.Request) (*Identity, error) {
	ctx := r.Context()

	profileID := s.sessions.GetString(ctx, profileIDKey)
	if profileID == "" {
		return nil, nil
	}

	profile, err := s.profiles.GetOneByID(ctx, profileID)
	if errors.Is(err, pg.ErrNoRows) {
		s.sessions.Remove(ctx, profileIDKey)
		return nil, nil
	} else if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	return FromProfile(profile), nil
}

func (s *SessionResolver) SignIn(ctx context.Context, profileID string) error {
	if err := s.sessions.RenewToken(ctx); err != nil {
		return err
	}

	s.sessions.Put(ctx, profileIDKey, profileID)
	return nil
}

func (s *SessionResolver) SignOut(ctx context.Context) error {
	return s.sessions.Destroy(ctx)
}
