package series

import "time"

// Series is a recurring-schedule template (e.g. "Tuesday 0530 bootcamp at
// The Rock") owned by an org and optionally pinned to a location. Concrete
// occurrences are event instances and reference the series by id.
type Series struct {
	ID              string         `json:"id"`
	OrgID           string         `json:"orgId"`
	LocationID      *string        `json:"locationId,omitempty"`
	Name            string         `json:"name"`
	Description     *string        `json:"description,omitempty"`
	Type            *string        `json:"type,omitempty"`
	DayOfWeek       *string        `json:"dayOfWeek,omitempty"`
	StartTime       *string        `json:"startTime,omitempty"` // HH:MM
	DurationMinutes *int           `json:"durationMinutes,omitempty"`
	IsActive        bool           `json:"isActive"`
	Tags            []string       `json:"tags,omitempty"`
	Meta            map[string]any `json:"meta,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       *time.Time     `json:"-"` // soft-delete tracker
}

// Global field names for validation
const (
	FieldID    = "id"
	FieldOrgID = "orgId"
	FieldName  = "name"
)
