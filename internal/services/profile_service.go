package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/policy"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ProfilePatch holds the self-service fields of a profile. Nil fields are left as they are.
type ProfilePatch struct {
	FullName          *string                   `json:"full_name"`
	GraduationYear    *int                      `json:"graduation_year"`
	Degree            *string                   `json:"degree"`
	Major             *string                   `json:"major"`
	Company           *string                   `json:"company"`
	JobTitle          *string                   `json:"job_title"`
	Location          *string                   `json:"location"`
	Bio               *string                   `json:"bio"`
	Phone             *string                   `json:"phone"`
	LinkedInURL       *string                   `json:"linkedin_url"`
	ContactVisibility *models.ContactVisibility `json:"contact_visibility"`
}

type AdminProfilePatch struct {
	Role     *models.ProfileRole `json:"role"`
	Verified *bool               `json:"verified"`
}

type ProfileService interface {
	Me(ctx context.Context, caller *identity.Identity) (*models.Profile, error)
	UpdateMe(ctx context.Context, caller *identity.Identity, patch ProfilePatch) (*models.Profile, error)
	// Directory searches profiles, hiding contact details the caller may not see.
	Directory(ctx context.Context, caller *identity.Identity, filter repositories.ProfileFilter) ([]*models.Profile, error)
	Get(ctx context.Context, caller *identity.Identity, profileID string) (*models.Profile, error)
	AdminUpdate(ctx context.Context, caller *identity.Identity, profileID string, patch AdminProfilePatch) (*models.Profile, error)
	AdminDelete(ctx context.Context, caller *identity.Identity, profileID string) error
	// Grant sets the role and verification of the profile with the given email.
	Grant(ctx context.Context, caller *identity.Identity, email string, role models.ProfileRole, verified bool) (*models.Profile, error)
}

type profileService struct {
	profiles repositories.ProfileRepository
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewProfileService(profiles repositories.ProfileRepository, logger *zap.SugaredLogger) ProfileService {
	return &profileService{
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *profileService) Me(ctx context.Context, caller *identity.Identity) (*models.Profile, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	return s.getOne(ctx, caller.ProfileID)
}

func (s *profileService) UpdateMe(ctx context.Context, caller *identity.Identity, patch ProfilePatch) (*models.Profile, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	profile, err := s.getOne(ctx, caller.ProfileID)
	if err != nil {
		return nil, err
	}

	if err = policy.Check(caller, policy.CanUpdateProfile(caller, profile)); err != nil {
		return nil, err
	}

	columns, err := applyProfilePatch(profile, patch)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return profile, nil
	}

	return s.update(ctx, profile, columns)
}

func (s *profileService) Directory(ctx context.Context, caller *identity.Identity, filter repositories.ProfileFilter) ([]*models.Profile, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	profiles, err := s.profiles.GetMany(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to search profiles", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	for _, profile := range profiles {
		if !policy.CanViewContact(caller, profile) {
			profile.HideContact()
		}
	}

	return profiles, nil
}

func (s *profileService) Get(ctx context.Context, caller *identity.Identity, profileID string) (*models.Profile, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	profile, err := s.getOne(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewContact(caller, profile) {
		profile.HideContact()
	}

	return profile, nil
}

func (s *profileService) AdminUpdate(ctx context.Context, caller *identity.Identity, profileID string, patch AdminProfilePatch) (*models.Profile, error) {
	if err := policy.Check(caller, policy.CanManageProfiles(caller)); err != nil {
		return nil, err
	}

	profile, err := s.getOne(ctx, profileID)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, 3)

	if patch.Role != nil {
		if !patch.Role.IsValid() {
			return nil, apperrors.InvalidField("role", "must be one of member, organizer, admin")
		}
		profile.Role = *patch.Role
		columns = append(columns, "role")
	}

	if patch.Verified != nil {
		profile.Verified = *patch.Verified
		columns = append(columns, "verified")
	}

	if len(columns) == 0 {
		return profile, nil
	}

	updated, err := s.update(ctx, profile, columns)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("profile access changed", "profileID", profileID, "role", updated.Role.CapitalizedString(), "verified", updated.Verified)
	return updated, nil
}

func (s *profileService) AdminDelete(ctx context.Context, caller *identity.Identity, profileID string) error {
	if err := policy.Check(caller, policy.CanManageProfiles(caller)); err != nil {
		return err
	}

	if caller.Is(profileID) {
		return apperrors.ErrForbidden
	}

	profile, err := s.getOne(ctx, profileID)
	if err != nil {
		return err
	}

	if err = s.profiles.Delete(ctx, profile); err != nil {
		s.logger.Errorw("failed to delete profile", "profileID", profileID, "error", err)
		return apperrors.FromStorage(err)
	}

	s.logger.Infow("profile deleted", "profileID", profileID)
	return nil
}

func (s *profileService) Grant(ctx context.Context, caller *identity.Identity, email string, role models.ProfileRole, verified bool) (*models.Profile, error) {
	if err := policy.Check(caller, policy.CanManageProfiles(caller)); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetOneByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	return s.AdminUpdate(ctx, caller, profile.ID, AdminProfilePatch{Role: &role, Verified: &verified})
}

func (s *profileService) getOne(ctx context.Context, profileID string) (*models.Profile, error) {
	if err := validateID(profileID); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetOneByID(ctx, profileID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	return profile, nil
}

func (s *profileService) update(ctx context.Context, profile *models.Profile, columns []string) (*models.Profile, error) {
	profile.UpdatedAt = s.now().UTC()
	columns = append(columns, "updated_at")

	updated, err := s.profiles.Update(ctx, profile, columns...)
	if err != nil {
		s.logger.Errorw("failed to update profile", "profileID", profile.ID, "error", err)
		return nil, apperrors.FromStorage(err)
	}

	return updated, nil
}

func applyProfilePatch(profile *models.Profile, patch ProfilePatch) ([]string, error) {
	columns := make([]string, 0, 12)

	text := func(column string, value *string, target *string) {
		if value == nil {
			return
		}
		*target = strings.TrimSpace(*value)
		columns = append(columns, column)
	}

	text("full_name", patch.FullName, &profile.FullName)
	text("degree", patch.Degree, &profile.Degree)
	text("major", patch.Major, &profile.Major)
	text("company", patch.Company, &profile.Company)
	text("job_title", patch.JobTitle, &profile.JobTitle)
	text("location", patch.Location, &profile.Location)
	text("bio", patch.Bio, &profile.Bio)
	text("phone", patch.Phone, &profile.Phone)
	text("linkedin_url", patch.LinkedInURL, &profile.LinkedInURL)

	if patch.FullName != nil && profile.FullName == "" {
		return nil, apperrors.MissingField("full_name")
	}

	if patch.GraduationYear != nil {
		year := *patch.GraduationYear
		if year < 1900 || year > 2200 {
			return nil, apperrors.InvalidField("graduation_year", "is out of range")
		}
		profile.GraduationYear = &year
		columns = append(columns, "graduation_year")
	}

	if patch.ContactVisibility != nil {
		if !patch.ContactVisibility.IsValid() {
			return nil, apperrors.InvalidField("contact_visibility", "must be one of public, members, private")
		}
		profile.ContactVisibility = *patch.ContactVisibility
		columns = append(columns, "contact_visibility")
	}

	return columns, nil
}
