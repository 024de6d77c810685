package services

import (
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/identity"
	"sort"
)

// SuggestionSummary is a suggestion with its live vote and comment aggregates.
type SuggestionSummary struct {
	*models.Suggestion
	VoteCount     int               `json:"vote_count"`
	CommentCount  int               `json:"comment_count"`
	Comments      []*models.Comment `json:"comments"`
	VotedByViewer bool              `json:"voted_by_viewer"`
}

// Aggregate recomputes the counts of every suggestion from its loaded votes and
// comments. Suggestions come out newest-first and comments oldest-first.
func Aggregate(suggestions []*models.Suggestion, viewer *identity.Identity) []SuggestionSummary {
	summaries := make([]SuggestionSummary, 0, len(suggestions))

	for _, suggestion := range suggestions {
		comments := make([]*models.Comment, len(suggestion.Comments))
		copy(comments, suggestion.Comments)
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		})

		voted := false
		for _, vote := range suggestion.Votes {
			if viewer.Is(vote.VoterID) {
				voted = true
				break
			}
		}

		summaries = append(summaries, SuggestionSummary{
			Suggestion:    suggestion,
			VoteCount:     len(suggestion.Votes),
			CommentCount:  len(comments),
			Comments:      comments,
			VotedByViewer: voted,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries
}
