package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionToEvent(t *testing.T) {
	location := "Main Hall"
	proposedDate := time.Date(2026, time.November, 20, 18, 0, 0, 0, time.UTC)

	suggestion := &Suggestion{
		ID:           "a1",
		Title:        "Reunion",
		Description:  "Class of 2016 reunion",
		Location:     &location,
		ProposedDate: &proposedDate,
		CreatedBy:    "p1",
	}

	event := suggestion.ToEvent()

	assert.Equal(t, "Reunion", event.Title)
	assert.Equal(t, "Class of 2016 reunion", event.Description)
	assert.Equal(t, &location, event.Location)
	assert.Equal(t, &proposedDate, event.EventDate)
	require.NotNil(t, event.OrganizerID)
	assert.Equal(t, "p1", *event.OrganizerID)
	assert.Empty(t, event.ID)
	assert.True(t, event.IsOrganizedBy("p1"))
	assert.False(t, event.IsOrganizedBy("p2"))
}

func TestSuggestionToEvent_OptionalFieldsStayEmpty(t *testing.T) {
	event := (&Suggestion{Title: "Picnic"}).ToEvent()

	assert.Nil(t, event.Location)
	assert.Nil(t, event.EventDate)
	assert.Nil(t, event.OrganizerID)
}

func TestProfileRole(t *testing.T) {
	assert.Equal(t, "Organizer", ProfileRoleOrganizer.CapitalizedString())
	assert.True(t, ProfileRoleAdmin.IsValid())
	assert.False(t, ProfileRole("owner").IsValid())
	assert.True(t, ContactVisibilityMembers.IsValid())
	assert.False(t, ContactVisibility("friends").IsValid())
}

func TestProfileHideContact(t *testing.T) {
	profile := &Profile{Email: "a@b.c", Phone: "123", LinkedInURL: "https://linkedin.com/in/a", FullName: "A"}
	profile.HideContact()

	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Phone)
	assert.Empty(t, profile.LinkedInURL)
	assert.Equal(t, "A", profile.FullName)
}
