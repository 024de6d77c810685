package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	ProfileRole       string
	ContactVisibility string
)

const (
	ProfileRoleMember    ProfileRole = "member"
	ProfileRoleOrganizer ProfileRole = "organizer"
	ProfileRoleAdmin     ProfileRole = "admin"

	ContactVisibilityPublic  ContactVisibility = "public"
	ContactVisibilityMembers ContactVisibility = "members"
	ContactVisibilityPrivate ContactVisibility = "private"
)

func (r ProfileRole) String() string {
	return string(r)
}

func (r ProfileRole) CapitalizedString() string {
	return cases.Title(language.English).String(r.String())
}

func (r ProfileRole) IsValid() bool {
	switch r {
	case ProfileRoleMember, ProfileRoleOrganizer, ProfileRoleAdmin:
		return true
	}
	return false
}

func (v ContactVisibility) IsValid() bool {
	switch v {
	case ContactVisibilityPublic, ContactVisibilityMembers, ContactVisibilityPrivate:
		return true
	}
	return false
}

type Profile struct {
	ID                string            `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Email             string            `json:"email,omitempty" pg:",notnull,unique"`
	PasswordHash      string            `json:"-" pg:",notnull"`
	FullName          string            `json:"full_name" pg:",notnull,use_zero"`
	GraduationYear    *int              `json:"graduation_year,omitempty"`
	Degree            string            `json:"degree" pg:",notnull,use_zero"`
	Major             string            `json:"major" pg:",notnull,use_zero"`
	Company           string            `json:"company" pg:",notnull,use_zero"`
	JobTitle          string            `json:"job_title" pg:",notnull,use_zero"`
	Location          string            `json:"location" pg:",notnull,use_zero"`
	Bio               string            `json:"bio" pg:",notnull,use_zero"`
	Phone             string            `json:"phone,omitempty" pg:",notnull,use_zero"`
	LinkedInURL       string            `json:"linkedin_url,omitempty" pg:"linkedin_url,notnull,use_zero"`
	ContactVisibility ContactVisibility `json:"contact_visibility" pg:"type:contact_visibility,notnull,default:'members'"`
	Role              ProfileRole       `json:"role" pg:"type:profile_role,notnull,default:'member'"`
	Verified          bool              `json:"verified" pg:",notnull,use_zero"`
	CreatedAt         time.Time         `json:"created_at" pg:"default:now()"`
	UpdatedAt         time.Time         `json:"updated_at" pg:"default:now()"`
}

// HideContact clears the fields that contact visibility protects.
func (p *Profile) HideContact() {
	p.Email = ""
	p.Phone = ""
	p.LinkedInURL = ""
}
