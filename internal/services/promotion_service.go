package services

import (
	"alumni_portal/configs"
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/notifier"
	"alumni_portal/internal/policy"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type PromotionService interface {
	// Run promotes every suggestion that reached the vote threshold and returns
	// the ids of the promoted suggestions, oldest first.
	Run(ctx context.Context, caller *identity.Identity) ([]string, error)
}

type promotionService struct {
	suggestions repositories.SuggestionRepository
	notifier    notifier.Notifier
	config      configs.Promotion
	logger      *zap.SugaredLogger
}

func NewPromotionService(
	suggestions repositories.SuggestionRepository,
	notifier notifier.Notifier,
	config configs.Promotion,
	logger *zap.SugaredLogger,
) PromotionService {
	return &promotionService{
		suggestions: suggestions,
		notifier:    notifier,
		config:      config,
		logger:      logger,
	}
}

// ValidatePromotionConfig reports a configuration error when the job has no
// elevated credential or an unusable threshold.
func ValidatePromotionConfig(config configs.Promotion) error {
	if config.ServiceKey == "" {
		return fmt.Errorf("%w: PROMOTION_SERVICE_KEY is not set", apperrors.ErrConfiguration)
	}

	if config.VoteThreshold < 1 {
		return fmt.Errorf("%w: PROMOTION_VOTE_THRESHOLD must be at least 1, got %d", apperrors.ErrConfiguration, config.VoteThreshold)
	}

	return nil
}

func (s *promotionService) Run(ctx context.Context, caller *identity.Identity) ([]string, error) {
	if err := ValidatePromotionConfig(s.config); err != nil {
		s.logger.Errorw("promotion job is not configured", "error", err)
		return nil, err
	}

	if err := policy.Check(caller, policy.CanPromote(caller)); err != nil {
		return nil, err
	}

	threshold := s.config.VoteThreshold

	s.logger.Info("getting promotion candidates")
	candidates, err := s.suggestions.GetPromotionCandidates(ctx)
	if err != nil {
		s.logger.Errorw("failed to get promotion candidates", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	promoted := make([]string, 0)

	for _, candidate := range candidates {
		if err = ctx.Err(); err != nil {
			s.logger.Warnw("promotion run interrupted", "promoted", promoted, "error", err)
			return promoted, apperrors.FromStorage(err)
		}

		if len(candidate.Votes) < threshold {
			continue
		}

		event, err := s.suggestions.Promote(ctx, candidate.ID, threshold)
		switch {
		case errors.Is(err, apperrors.ErrAlreadyPromoted), errors.Is(err, apperrors.ErrBelowThreshold):
			s.logger.Infow("skipping suggestion", "suggestionID", candidate.ID, "reason", err)
			continue
		case err != nil:
			s.logger.Errorw("failed to promote suggestion", "suggestionID", candidate.ID, "error", err)
			continue
		}

		s.logger.Infow("suggestion promoted", "suggestionID", candidate.ID, "eventID", event.ID, "votes", len(candidate.Votes))
		promoted = append(promoted, candidate.ID)

		if err = s.notifier.Notify(ctx, event); err != nil {
			s.logger.Errorw("could not announce event", "eventID", event.ID, "error", err)
		}
	}

	if len(promoted) == 0 {
		s.logger.Info("no suggestions to promote")
	}

	return promoted, nil
}
