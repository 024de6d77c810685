// Package policy holds the row-level access rules of the portal as predicates
// over the caller and the row being read or written.
package policy

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/identity"
)

// Check turns a predicate result into an error: unauthenticated for a nil
// caller, forbidden when the predicate denies.
func Check(caller *identity.Identity, allowed bool) error {
	if caller == nil {
		return apperrors.ErrUnauthenticated
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return nil
}

func IsMember(caller *identity.Identity) bool {
	return caller != nil && !caller.IsService() && caller.ProfileID != ""
}

func CanCreateSuggestion(caller *identity.Identity) bool {
	return IsMember(caller)
}

func CanCastVote(caller *identity.Identity) bool {
	return IsMember(caller)
}

// CanDeleteVote allows removing only the caller's own vote.
func CanDeleteVote(caller *identity.Identity, vote *models.Vote) bool {
	return IsMember(caller) && caller.Is(vote.VoterID)
}

func CanComment(caller *identity.Identity) bool {
	return IsMember(caller)
}

func CanCreateEvent(caller *identity.Identity) bool {
	return caller.IsOrganizer() || caller.IsAdmin()
}

func CanUpdateEvent(caller *identity.Identity, event *models.Event) bool {
	return caller.IsAdmin() || (caller.IsOrganizer() && event.IsOrganizedBy(caller.ProfileID))
}

func CanDeleteEvent(caller *identity.Identity) bool {
	return caller.IsAdmin()
}

// CanPromote is reserved to the elevated service identity.
func CanPromote(caller *identity.Identity) bool {
	return caller.IsService()
}

func CanUpdateProfile(caller *identity.Identity, profile *models.Profile) bool {
	return caller.Is(profile.ID)
}

// CanManageProfiles covers role and verification changes and profile deletion.
func CanManageProfiles(caller *identity.Identity) bool {
	return caller.IsAdmin() || caller.IsService()
}

// CanViewContact decides whether email, phone and LinkedIn of profile are visible.
func CanViewContact(caller *identity.Identity, profile *models.Profile) bool {
	if caller.Is(profile.ID) || caller.IsAdmin() {
		return true
	}

	switch profile.ContactVisibility {
	case models.ContactVisibilityPublic:
		return true
	case models.ContactVisibilityMembers:
		return IsMember(caller) && caller.Verified
	default:
		return false
	}
}
