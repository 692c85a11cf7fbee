package event

import "time"

// Attendance roles
const (
	AttendanceRolePax = "pax"
	AttendanceRoleQ   = "q"
	AttendanceRoleCoQ = "coq"
)

// Attendance is the join row recording that one pax posted at one event
// instance. Storage enforces at most one row per (eventInstanceId, paxId).
type Attendance struct {
	ID              string         `json:"id"`
	EventInstanceID string         `json:"eventInstanceId"`
	PaxID           string         `json:"paxId"`
	Role            *string        `json:"role,omitempty"`
	IsPlanned       bool           `json:"isPlanned"`
	Meta            map[string]any `json:"meta,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
