package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	mock_repositories "alumni_portal/internal/db/repositories/mocks"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock_repositories.NewMockProfileRepository(ctrl)
	events := mock_repositories.NewMockEventRepository(ctrl)
	suggestions := mock_repositories.NewMockSuggestionRepository(ctrl)

	service := NewAnalyticsService(profiles, events, suggestions, zap.NewNop().Sugar()).(*analyticsService)
	service.now = func() time.Time { return base }

	y2016, y2018 := 2016, 2018
	profiles.EXPECT().GetMany(gomock.Any(), repositories.ProfileFilter{}).Return([]*models.Profile{
		{GraduationYear: &y2018, Company: "Acme", Role: models.ProfileRoleMember, Verified: true},
		{GraduationYear: &y2016, Company: "acme ", Role: models.ProfileRoleOrganizer},
		{GraduationYear: &y2018, Company: "Globex", Role: models.ProfileRoleAdmin, Verified: true},
		{Role: models.ProfileRoleMember},
	}, nil)

	past, future := at(-60), at(60)
	events.EXPECT().GetMany(gomock.Any()).Return([]*models.Event{
		{EventDate: &past}, {EventDate: &future}, {},
	}, nil)
	suggestions.EXPECT().Count(gomock.Any()).Return(2, nil)

	analytics, err := service.Dashboard(context.Background(), memberCaller)
	require.NoError(t, err)

	assert.Equal(t, 4, analytics.TotalProfiles)
	assert.Equal(t, 2, analytics.VerifiedProfiles)
	assert.Equal(t, []YearCount{{Year: 2016, Count: 1}, {Year: 2018, Count: 2}}, analytics.ByGraduationYear)
	assert.Equal(t, []CompanyCount{{Company: "Acme", Count: 2}, {Company: "Globex", Count: 1}}, analytics.TopCompanies)
	assert.Equal(t, map[string]int{"Member": 2, "Organizer": 1, "Admin": 1}, analytics.Roles)
	assert.Equal(t, 1, analytics.UpcomingEvents)
	assert.Equal(t, 2, analytics.OpenSuggestions)
}

func TestDashboard_CountFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mock_repositories.NewMockProfileRepository(ctrl)
	events := mock_repositories.NewMockEventRepository(ctrl)
	suggestions := mock_repositories.NewMockSuggestionRepository(ctrl)

	profiles.EXPECT().GetMany(gomock.Any(), repositories.ProfileFilter{}).Return([]*models.Profile{}, nil)
	events.EXPECT().GetMany(gomock.Any()).Return([]*models.Event{}, nil)
	suggestions.EXPECT().Count(gomock.Any()).Return(0, assert.AnError)

	service := NewAnalyticsService(profiles, events, suggestions, zap.NewNop().Sugar())

	_, err := service.Dashboard(context.Background(), memberCaller)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDashboard_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewAnalyticsService(
		mock_repositories.NewMockProfileRepository(ctrl),
		mock_repositories.NewMockEventRepository(ctrl),
		mock_repositories.NewMockSuggestionRepository(ctrl),
		zap.NewNop().Sugar(),
	)

	_, err := service.Dashboard(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestSummarizeProfiles_LimitsTopCompanies(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	profiles := make([]*models.Profile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, &models.Profile{Company: name, Role: models.ProfileRoleMember})
	}

	analytics := summarizeProfiles(profiles)
	assert.Len(t, analytics.TopCompanies, topCompaniesLimit)
	assert.Equal(t, "A", analytics.TopCompanies[0].Company)
}
