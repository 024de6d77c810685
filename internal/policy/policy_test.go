package policy

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/identity"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	member    = &identity.Identity{ProfileID: "m1", Role: models.ProfileRoleMember}
	verified  = &identity.Identity{ProfileID: "m2", Role: models.ProfileRoleMember, Verified: true}
	organizer = &identity.Identity{ProfileID: "o1", Role: models.ProfileRoleOrganizer}
	admin     = &identity.Identity{ProfileID: "a1", Role: models.ProfileRoleAdmin}
)

func TestCheck(t *testing.T) {
	assert.ErrorIs(t, Check(nil, true), apperrors.ErrUnauthenticated)
	assert.ErrorIs(t, Check(member, false), apperrors.ErrForbidden)
	assert.NoError(t, Check(member, true))
}

func TestSuggestionRules(t *testing.T) {
	assert.False(t, CanCreateSuggestion(nil))
	assert.True(t, CanCreateSuggestion(member))
	assert.False(t, CanCastVote(identity.Service()))
	assert.True(t, CanComment(organizer))

	vote := &models.Vote{VoterID: "m1"}
	assert.True(t, CanDeleteVote(member, vote))
	assert.False(t, CanDeleteVote(verified, vote))
	assert.False(t, CanDeleteVote(admin, vote))
	assert.False(t, CanDeleteVote(nil, vote))
}

func TestEventRules(t *testing.T) {
	ownerID := "o1"
	owned := &models.Event{OrganizerID: &ownerID}
	orphan := &models.Event{}

	assert.False(t, CanCreateEvent(member))
	assert.True(t, CanCreateEvent(organizer))
	assert.True(t, CanCreateEvent(admin))

	assert.True(t, CanUpdateEvent(organizer, owned))
	assert.False(t, CanUpdateEvent(organizer, orphan))
	assert.True(t, CanUpdateEvent(admin, orphan))
	assert.False(t, CanUpdateEvent(member, owned))

	assert.False(t, CanDeleteEvent(organizer))
	assert.True(t, CanDeleteEvent(admin))
}

func TestCanPromote(t *testing.T) {
	assert.True(t, CanPromote(identity.Service()))
	assert.False(t, CanPromote(admin))
	assert.False(t, CanPromote(nil))
}

func TestProfileRules(t *testing.T) {
	profile := &models.Profile{ID: "m1"}
	assert.True(t, CanUpdateProfile(member, profile))
	assert.False(t, CanUpdateProfile(admin, profile))
	assert.True(t, CanManageProfiles(admin))
	assert.False(t, CanManageProfiles(organizer))
	assert.True(t, CanManageProfiles(identity.Service()))
}

func TestCanViewContact(t *testing.T) {
	cases := []struct {
		name       string
		visibility models.ContactVisibility
		caller     *identity.Identity
		want       bool
	}{
		{"public to anyone", models.ContactVisibilityPublic, nil, true},
		{"members to unverified", models.ContactVisibilityMembers, organizer, false},
		{"members to verified", models.ContactVisibilityMembers, verified, true},
		{"private to verified", models.ContactVisibilityPrivate, verified, false},
		{"private to admin", models.ContactVisibilityPrivate, admin, true},
		{"private to self", models.ContactVisibilityPrivate, member, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			profile := &models.Profile{ID: "m1", ContactVisibility: c.visibility}
			assert.Equal(t, c.want, CanViewContact(c.caller, profile))
		})
	}
}
