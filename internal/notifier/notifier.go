package notifier

import (
	"alumni_portal/internal"
	"alumni_portal/internal/db/models"
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Notifier announces events promoted from suggestions.
type Notifier interface {
	Notify(ctx context.Context, event *models.Event) error
}

// Multi sends to every notifier and reports all failures together.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event *models.Event) error {
	var err error
	for _, n := range m {
		err = multierr.Append(err, n.Notify(ctx, event))
	}
	return err
}

func announcement(communityName string, event *models.Event) string {
	location := "location to be announced"
	if event.Location != nil && strings.TrimSpace(*event.Location) != "" {
		location = *event.Location
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New %s event: %s\n", communityName, event.Title)
	if description := strings.TrimSpace(event.Description); description != "" {
		fmt.Fprintf(&b, "\n%s\n\n", description)
	}
	fmt.Fprintf(&b, "When: %s\n", internal.FormatEventDate(event.EventDate))
	fmt.Fprintf(&b, "Where: %s", location)

	return b.String()
}
