package identity

import (
	"alumni_portal/internal/db/models"
	"context"
)

// Identity is the caller behind a request. A nil *Identity is an anonymous caller.
type Identity struct {
	ProfileID string
	Role      models.ProfileRole
	Verified  bool
	service   bool
}

func FromProfile(profile *models.Profile) *Identity {
	return &Identity{
		ProfileID: profile.ID,
		Role:      profile.Role,
		Verified:  profile.Verified,
	}
}

// Service is the elevated identity of the promotion job. It belongs to no profile.
func Service() *Identity {
	return &Identity{service: true}
}

func (i *Identity) IsService() bool {
	return i != nil && i.service
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.ProfileRoleAdmin
}

func (i *Identity) IsOrganizer() bool {
	return i != nil && i.Role == models.ProfileRoleOrganizer
}

func (i *Identity) Is(profileID string) bool {
	return i != nil && !i.service && i.ProfileID != "" && i.ProfileID == profileID
}

type contextKey struct{}

func WithIdentity(ctx context.Context, caller *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

// FromContext returns the caller stored in ctx, or nil when there is none.
func FromContext(ctx context.Context) *Identity {
	caller, _ := ctx.Value(contextKey{}).(*Identity)
	return caller
}
