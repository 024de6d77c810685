package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	mock_repositories "alumni_portal/internal/db/repositories/mocks"
	"alumni_portal/internal/identity"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newProfileService(t *testing.T) (*profileService, *mock_repositories.MockProfileRepository) {
	ctrl := gomock.NewController(t)
	profiles := mock_repositories.NewMockProfileRepository(ctrl)

	service := NewProfileService(profiles, zap.NewNop().Sugar()).(*profileService)
	service.now = func() time.Time { return base }

	return service, profiles
}

func contactProfile(id string, visibility models.ContactVisibility) *models.Profile {
	return &models.Profile{
		ID:                id,
		Email:             id + "@alumni.example",
		Phone:             "+1 555 0100",
		ContactVisibility: visibility,
	}
}

func TestDirectory_ContactPrivacy(t *testing.T) {
	service, profiles := newProfileService(t)
	caller := &identity.Identity{ProfileID: "viewer", Verified: false}

	filter := repositories.ProfileFilter{Query: "acme"}
	profiles.EXPECT().GetMany(gomock.Any(), filter).Return([]*models.Profile{
		contactProfile("public", models.ContactVisibilityPublic),
		contactProfile("members", models.ContactVisibilityMembers),
		contactProfile("private", models.ContactVisibilityPrivate),
		contactProfile("viewer", models.ContactVisibilityPrivate),
	}, nil)

	result, err := service.Directory(context.Background(), caller, filter)
	require.NoError(t, err)
	require.Len(t, result, 4)

	assert.NotEmpty(t, result[0].Email)
	assert.Empty(t, result[1].Email, "unverified callers do not see members-only contacts")
	assert.Empty(t, result[2].Phone)
	assert.NotEmpty(t, result[3].Email, "own contacts stay visible")
}

func TestDirectory_VerifiedMember(t *testing.T) {
	service, profiles := newProfileService(t)
	caller := &identity.Identity{ProfileID: "viewer", Verified: true}

	profiles.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return([]*models.Profile{
		contactProfile("members", models.ContactVisibilityMembers),
	}, nil)

	result, err := service.Directory(context.Background(), caller, repositories.ProfileFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, result[0].Email)
}

func TestUpdateMe(t *testing.T) {
	t.Run("writes only patched columns", func(t *testing.T) {
		service, profiles := newProfileService(t)
		company := " Acme "
		visibility := models.ContactVisibilityPublic

		profiles.EXPECT().GetOneByID(gomock.Any(), voterID).Return(&models.Profile{ID: voterID, FullName: "Ada"}, nil)
		profiles.EXPECT().Update(gomock.Any(), gomock.Any(), "company", "contact_visibility", "updated_at").
			DoAndReturn(func(_ context.Context, p *models.Profile, _ ...string) (*models.Profile, error) {
				return p, nil
			})

		profile, err := service.UpdateMe(context.Background(), memberCaller, ProfilePatch{Company: &company, ContactVisibility: &visibility})
		require.NoError(t, err)
		assert.Equal(t, "Acme", profile.Company)
		assert.Equal(t, models.ContactVisibilityPublic, profile.ContactVisibility)
		assert.Equal(t, base, profile.UpdatedAt)
	})

	t.Run("rejects unknown visibility", func(t *testing.T) {
		service, profiles := newProfileService(t)
		visibility := models.ContactVisibility("friends")

		profiles.EXPECT().GetOneByID(gomock.Any(), voterID).Return(&models.Profile{ID: voterID}, nil)

		_, err := service.UpdateMe(context.Background(), memberCaller, ProfilePatch{ContactVisibility: &visibility})
		assert.ErrorIs(t, err, apperrors.ErrInvalidField)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		service, _ := newProfileService(t)

		_, err := service.UpdateMe(context.Background(), nil, ProfilePatch{})
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})
}

func TestAdminUpdate(t *testing.T) {
	t.Run("members cannot change roles", func(t *testing.T) {
		service, _ := newProfileService(t)
		role := models.ProfileRoleAdmin

		_, err := service.AdminUpdate(context.Background(), memberCaller, voterID, AdminProfilePatch{Role: &role})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("admin sets role and verification", func(t *testing.T) {
		service, profiles := newProfileService(t)
		role := models.ProfileRoleOrganizer
		verified := true

		profiles.EXPECT().GetOneByID(gomock.Any(), voterID).Return(&models.Profile{ID: voterID, Role: models.ProfileRoleMember}, nil)
		profiles.EXPECT().Update(gomock.Any(), gomock.Any(), "role", "verified", "updated_at").
			DoAndReturn(func(_ context.Context, p *models.Profile, _ ...string) (*models.Profile, error) {
				return p, nil
			})

		profile, err := service.AdminUpdate(context.Background(), adminCaller, voterID, AdminProfilePatch{Role: &role, Verified: &verified})
		require.NoError(t, err)
		assert.Equal(t, models.ProfileRoleOrganizer, profile.Role)
		assert.True(t, profile.Verified)
	})

	t.Run("invalid role", func(t *testing.T) {
		service, profiles := newProfileService(t)
		role := models.ProfileRole("owner")

		profiles.EXPECT().GetOneByID(gomock.Any(), voterID).Return(&models.Profile{ID: voterID}, nil)

		_, err := service.AdminUpdate(context.Background(), adminCaller, voterID, AdminProfilePatch{Role: &role})
		assert.ErrorIs(t, err, apperrors.ErrInvalidField)
	})
}

func TestAdminDelete(t *testing.T) {
	t.Run("admins cannot delete themselves", func(t *testing.T) {
		service, _ := newProfileService(t)

		err := service.AdminDelete(context.Background(), adminCaller, adminCaller.ProfileID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("admin deletes profile", func(t *testing.T) {
		service, profiles := newProfileService(t)
		profile := &models.Profile{ID: voterID}

		profiles.EXPECT().GetOneByID(gomock.Any(), voterID).Return(profile, nil)
		profiles.EXPECT().Delete(gomock.Any(), profile).Return(nil)

		assert.NoError(t, service.AdminDelete(context.Background(), adminCaller, voterID))
	})
}

func TestGrant(t *testing.T) {
	service, profiles := newProfileService(t)

	profiles.EXPECT().GetOneByEmail(gomock.Any(), "first@alumni.example").Return(&models.Profile{ID: voterID}, nil)
	profiles.EXPECT().GetOneByID(gomock.Any(), voterID).Return(&models.Profile{ID: voterID}, nil)
	profiles.EXPECT().Update(gomock.Any(), gomock.Any(), "role", "verified", "updated_at").
		DoAndReturn(func(_ context.Context, p *models.Profile, _ ...string) (*models.Profile, error) {
			return p, nil
		})

	profile, err := service.Grant(context.Background(), identity.Service(), " first@alumni.example ", models.ProfileRoleAdmin, true)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileRoleAdmin, profile.Role)
	assert.True(t, profile.Verified)
}
