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

type VoteResult int

const (
	VoteRemoved VoteResult = iota
	VoteAdded
)

func (r VoteResult) Voted() bool {
	return r == VoteAdded
}

func (r VoteResult) String() string {
	if r == VoteAdded {
		return "added"
	}
	return "removed"
}

type SuggestionInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     *string    `json:"location"`
	ProposedDate *time.Time `json:"proposed_date"`
}

type SuggestionService interface {
	Create(ctx context.Context, caller *identity.Identity, input SuggestionInput) (*SuggestionSummary, error)
	// CastVote toggles the caller's vote on a suggestion.
	CastVote(ctx context.Context, caller *identity.Identity, suggestionID string) (VoteResult, error)
	AddComment(ctx context.Context, caller *identity.Identity, suggestionID, content string) (*models.Comment, error)
	Feed(ctx context.Context, caller *identity.Identity) ([]SuggestionSummary, error)
}

type suggestionService struct {
	suggestions repositories.SuggestionRepository
	votes       repositories.VoteRepository
	comments    repositories.CommentRepository
	logger      *zap.SugaredLogger
}

func NewSuggestionService(
	suggestions repositories.SuggestionRepository,
	votes repositories.VoteRepository,
	comments repositories.CommentRepository,
	logger *zap.SugaredLogger,
) SuggestionService {
	return &suggestionService{
		suggestions: suggestions,
		votes:       votes,
		comments:    comments,
		logger:      logger,
	}
}

func (s *suggestionService) Create(ctx context.Context, caller *identity.Identity, input SuggestionInput) (*SuggestionSummary, error) {
	if err := policy.Check(caller, policy.CanCreateSuggestion(caller)); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.MissingField("title")
	}

	suggestion, err := s.suggestions.Create(ctx, &models.Suggestion{
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		Location:     optionalText(input.Location),
		ProposedDate: input.ProposedDate,
		CreatedBy:    caller.ProfileID,
	})
	if err != nil {
		s.logger.Errorw("failed to create suggestion", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	summary := Aggregate([]*models.Suggestion{suggestion}, caller)[0]
	return &summary, nil
}

func (s *suggestionService) CastVote(ctx context.Context, caller *identity.Identity, suggestionID string) (VoteResult, error) {
	if err := policy.Check(caller, policy.CanCastVote(caller)); err != nil {
		return VoteRemoved, err
	}

	if err := validateID(suggestionID); err != nil {
		return VoteRemoved, err
	}

	voted, err := s.votes.Toggle(ctx, suggestionID, caller.ProfileID)
	if err != nil {
		s.logger.Errorw("failed to toggle vote", "suggestionID", suggestionID, "voterID", caller.ProfileID, "error", err)
		return VoteRemoved, apperrors.FromStorage(err)
	}

	result := VoteRemoved
	if voted {
		result = VoteAdded
	}

	s.logger.Infow("vote toggled", "suggestionID", suggestionID, "voterID", caller.ProfileID, "result", result.String())
	return result, nil
}

func (s *suggestionService) AddComment(ctx context.Context, caller *identity.Identity, suggestionID, content string) (*models.Comment, error) {
	if err := policy.Check(caller, policy.CanComment(caller)); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyContent
	}

	if err := validateID(suggestionID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, &models.Comment{
		SuggestionID: suggestionID,
		CommenterID:  caller.ProfileID,
		Content:      content,
	})
	if err != nil {
		s.logger.Errorw("failed to add comment", "suggestionID", suggestionID, "error", err)
		return nil, apperrors.FromStorage(err)
	}

	return comment, nil
}

func (s *suggestionService) Feed(ctx context.Context, caller *identity.Identity) ([]SuggestionSummary, error) {
	if err := policy.Check(caller, policy.IsMember(caller)); err != nil {
		return nil, err
	}

	suggestions, err := s.suggestions.GetFeed(ctx)
	if err != nil {
		s.logger.Errorw("failed to get suggestions", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	return Aggregate(suggestions, caller), nil
}
