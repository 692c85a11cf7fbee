package pax

import "time"

// Pax represents an F3 participant within a region.
//
// A pax always belongs to a primary org (orgId, the region) and may name a
// separate home AO (homeOrgId). The f3Name is the display name earned at the
// first post and is mandatory.
type Pax struct {
	ID            string         `json:"id"`
	OrgID         string         `json:"orgId"`
	F3Name        string         `json:"f3Name"`
	FirstName     *string        `json:"firstName,omitempty"`
	LastName      *string        `json:"lastName,omitempty"`
	Email         *string        `json:"email,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	AvatarURL     *string        `json:"avatarUrl,omitempty"`
	HomeOrgID     *string        `json:"homeOrgId,omitempty"`
	Status        *string        `json:"status,omitempty"`
	FirstPostDate *string        `json:"firstPostDate,omitempty"`
	LastPostDate  *string        `json:"lastPostDate,omitempty"`
	PostCount     int            `json:"postCount"`
	Meta          map[string]any `json:"meta,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     *time.Time     `json:"-"` // soft-delete tracker
}

// Global field names for validation
const (
	FieldID     = "id"
	FieldOrgID  = "orgId"
	FieldF3Name = "f3Name"
)
