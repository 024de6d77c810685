package realtime

import (
	"encoding/json"
	"fmt"
)

const (
	CollectionSuggestions = "suggestions"
	CollectionVotes       = "votes"
	CollectionComments    = "comments"
	CollectionEvents      = "events"
)

const (
	OperationInsert = "INSERT"
	OperationUpdate = "UPDATE"
	OperationDelete = "DELETE"
	// OperationResync is published after the listener reconnects, since
	// notifications sent while it was away are lost.
	OperationResync = "RESYNC"
)

// Collections lists every collection the change notification trigger covers.
var Collections = []string{
	CollectionSuggestions,
	CollectionVotes,
	CollectionComments,
	CollectionEvents,
}

type Change struct {
	Collection string `json:"collection"`
	Operation  string `json:"operation"`
	ID         string `json:"id"`
}

// DecodeChange parses the payload written by notify_portal_change().
func DecodeChange(payload string) (Change, error) {
	var change Change
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return Change{}, fmt.Errorf("failed to decode change: %w", err)
	}

	if change.Collection == "" || change.Operation == "" {
		return Change{}, fmt.Errorf("failed to decode change: incomplete payload %q", payload)
	}

	return change, nil
}
