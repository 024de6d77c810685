package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/policy"
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

const topCompaniesLimit = 5

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

type Analytics struct {
	TotalProfiles    int            `json:"total_profiles"`
	VerifiedProfiles int            `json:"verified_profiles"`
	ByGraduationYear []YearCount    `json:"by_graduation_year"`
	TopCompanies     []CompanyCount `json:"top_companies"`
	Roles            map[string]int `json:"roles"`
	UpcomingEvents   int            `json:"upcoming_events"`
	OpenSuggestions  int            `json:"open_suggestions"`
}

type AnalyticsService interface {
	Dashboard(ctx context.Context, caller *identity.Identity) (*Analytics, error)
}

type analyticsService struct {
	profiles    repositories.ProfileRepository
	events      repositories.EventRepository
	suggestions repositories.SuggestionRepository
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func NewAnalyticsService(
	profiles repositories.ProfileRepository,
	events repositories.EventRepository,
	suggestions repositories.SuggestionRepository,
	logger *zap.SugaredLogger,
) AnalyticsService {
	return &analyticsService{
		profiles:    profiles,
		events:      events,
		suggestions: suggestions,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *analyticsService) Dashboard(ctx context.Context, caller *identity.Identity) (*Analytics, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	profiles, err := s.profiles.GetMany(ctx, repositories.ProfileFilter{})
	if err != nil {
		s.logger.Errorw("failed to get profiles", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	events, err := s.events.GetMany(ctx)
	if err != nil {
		s.logger.Errorw("failed to get events", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	openSuggestions, err := s.suggestions.Count(ctx)
	if err != nil {
		s.logger.Errorw("failed to count suggestions", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	analytics := summarizeProfiles(profiles)
	analytics.OpenSuggestions = openSuggestions

	now := s.now()
	for _, event := range events {
		if event.EventDate != nil && !event.EventDate.Before(now) {
			analytics.UpcomingEvents++
		}
	}

	return analytics, nil
}

func summarizeProfiles(profiles []*models.Profile) *Analytics {
	analytics := &Analytics{
		TotalProfiles:    len(profiles),
		ByGraduationYear: make([]YearCount, 0),
		TopCompanies:     make([]CompanyCount, 0),
		Roles:            make(map[string]int),
	}

	years := make(map[int]int)
	companies := make(map[string]int)
	companyNames := make(map[string]string)

	for _, profile := range profiles {
		if profile.Verified {
			analytics.VerifiedProfiles++
		}

		analytics.Roles[profile.Role.CapitalizedString()]++

		if profile.GraduationYear != nil {
			years[*profile.GraduationYear]++
		}

		if company := strings.TrimSpace(profile.Company); company != "" {
			key := strings.ToLower(company)
			companies[key]++
			if _, ok := companyNames[key]; !ok {
				companyNames[key] = company
			}
		}
	}

	for year, count := range years {
		analytics.ByGraduationYear = append(analytics.ByGraduationYear, YearCount{Year: year, Count: count})
	}
	sort.Slice(analytics.ByGraduationYear, func(i, j int) bool {
		return analytics.ByGraduationYear[i].Year < analytics.ByGraduationYear[j].Year
	})

	for key, count := range companies {
		analytics.TopCompanies = append(analytics.TopCompanies, CompanyCount{Company: companyNames[key], Count: count})
	}
	sort.Slice(analytics.TopCompanies, func(i, j int) bool {
		a, b := analytics.TopCompanies[i], analytics.TopCompanies[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Company < b.Company
	})
	if len(analytics.TopCompanies) > topCompaniesLimit {
		analytics.TopCompanies = analytics.TopCompanies[:topCompaniesLimit]
	}

	return analytics
}
