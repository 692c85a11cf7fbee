package event

import "time"

// Instance represents one concrete workout occurrence (a beatdown).
//
// StartDate is an ISO date string (YYYY-MM-DD); date-range queries compare it
// lexically, which is equivalent to chronological order for this format. The
// QPaxIds/CoQPaxIds/PaxIds arrays are caller-maintained convenience rollups
// and are not reconciled against attendance rows.
type Instance struct {
	ID            string         `json:"id"`
	OrgID         string         `json:"orgId"`
	LocationID    *string        `json:"locationId,omitempty"`
	SeriesID      *string        `json:"seriesId,omitempty"`
	Name          *string        `json:"name,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Type          *string        `json:"type,omitempty"`
	IsActive      bool           `json:"isActive"`
	Highlight     bool           `json:"highlight"`
	StartDate     string         `json:"startDate"`
	EndDate       *string        `json:"endDate,omitempty"`
	StartTime     *string        `json:"startTime,omitempty"`
	EndTime       *string        `json:"endTime,omitempty"`
	PaxCount      int            `json:"paxCount"`
	FngCount      int            `json:"fngCount"`
	Preblast      *string        `json:"preblast,omitempty"`
	Backblast     *string        `json:"backblast,omitempty"`
	PreblastRich  map[string]any `json:"preblastRich,omitempty"`
	BackblastRich map[string]any `json:"backblastRich,omitempty"`
	PreblastTs    *string        `json:"preblastTs,omitempty"`
	BackblastTs   *string        `json:"backblastTs,omitempty"`
	QPaxIds       []string       `json:"qPaxIds,omitempty"`
	CoQPaxIds     []string       `json:"coQPaxIds,omitempty"`
	PaxIds        []string       `json:"paxIds,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     *time.Time     `json:"-"` // soft-delete tracker
}

// DateRange bounds an event listing. Both bounds are inclusive ISO date
// strings; an empty string leaves that side unbounded.
type DateRange struct {
	From string
	To   string
}

// Global field names for validation
const (
	FieldID        = "id"
	FieldOrgID     = "orgId"
	FieldStartDate = "startDate"
)
