package models

import "time"

type Vote struct {
	ID           string    `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	SuggestionID string    `json:"suggestion_id" pg:"type:uuid,notnull"`
	VoterID      string    `json:"voter_id" pg:"type:uuid,notnull"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}
