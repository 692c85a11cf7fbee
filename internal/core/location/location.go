package location

import "time"

// Location is a physical spot owned by an org, typically where an AO meets.
// Lat and Lng are stored as strings to round-trip caller precision exactly.
type Location struct {
	ID          string         `json:"id"`
	OrgID       string         `json:"orgId"`
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Address     *string        `json:"address,omitempty"`
	City        *string        `json:"city,omitempty"`
	State       *string        `json:"state,omitempty"`
	PostalCode  *string        `json:"postalCode,omitempty"`
	Country     *string        `json:"country,omitempty"`
	Lat         *string        `json:"lat,omitempty"`
	Lng         *string        `json:"lng,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   *time.Time     `json:"-"` // soft-delete tracker
}

// Global field names for validation
const (
	FieldID    = "id"
	FieldOrgID = "orgId"
	FieldName  = "name"
)
