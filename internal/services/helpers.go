package services

import (
	"alumni_portal/internal/apperrors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// validateID rejects ids that cannot name a row, so they surface as not found
// instead of reaching the database.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", apperrors.ErrNotFound, id)
	}
	return nil
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
