package models

import "time"

type Event struct {
	ID          string     `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Title       string     `json:"title" pg:",notnull"`
	Description string     `json:"description" pg:",notnull,use_zero"`
	Location    *string    `json:"location,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	OrganizerID *string    `json:"organizer_id,omitempty" pg:"type:uuid"`
	CreatedAt   time.Time  `json:"created_at" pg:"default:now()"`
	UpdatedAt   time.Time  `json:"updated_at" pg:"default:now()"`
}

func (e *Event) IsOrganizedBy(profileID string) bool {
	return e.OrganizerID != nil && *e.OrganizerID == profileID
}
