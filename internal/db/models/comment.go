package models

import "time"

type Comment struct {
	ID           string    `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	SuggestionID string    `json:"suggestion_id" pg:"type:uuid,notnull"`
	CommenterID  string    `json:"commenter_id" pg:"type:uuid,notnull"`
	Content      string    `json:"content" pg:",notnull"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}
