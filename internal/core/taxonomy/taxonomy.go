package taxonomy

import "time"

// Well-known term kinds. Kinds are open-ended; these are the ones the
// front-ends render today.
const (
	KindAOType    = "ao_type"
	KindEventType = "event_type"
	KindPaxStatus = "pax_status"
)

// Term is an org-scoped classification entry: a stable key plus a display
// label, grouped by kind. Each (orgId, kind, key) triple is unique, which
// lets regions customize their own vocabularies without code changes.
type Term struct {
	ID          string         `json:"id"`
	OrgID       string         `json:"orgId"`
	Kind        string         `json:"kind"`
	Key         string         `json:"key"`
	Label       string         `json:"label"`
	Description *string        `json:"description,omitempty"`
	SortOrder   int            `json:"sortOrder"`
	IsActive    bool           `json:"isActive"`
	Meta        map[string]any `json:"meta,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldID    = "id"
	FieldOrgID = "orgId"
	FieldKind  = "kind"
	FieldKey   = "key"
	FieldLabel = "label"
)
