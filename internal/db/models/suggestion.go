package models

import "time"

type Suggestion struct {
	ID           string     `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Title        string     `json:"title" pg:",notnull"`
	Description  string     `json:"description" pg:",notnull,use_zero"`
	Location     *string    `json:"location,omitempty"`
	ProposedDate *time.Time `json:"proposed_date,omitempty"`
	CreatedBy    string     `json:"created_by" pg:"type:uuid,notnull"`
	CreatedAt    time.Time  `json:"created_at" pg:"default:now()"`
	Votes        []*Vote    `json:"-" pg:"rel:has-many"`
	Comments     []*Comment `json:"-" pg:"rel:has-many"`
}

// ToEvent builds the event a suggestion turns into once it is promoted.
func (s *Suggestion) ToEvent() *Event {
	event := &Event{
		Title:       s.Title,
		Description: s.Description,
		Location:    s.Location,
		EventDate:   s.ProposedDate,
	}

	if s.CreatedBy != "" {
		organizerID := s.CreatedBy
		event.OrganizerID = &organizerID
	}

	return event
}
