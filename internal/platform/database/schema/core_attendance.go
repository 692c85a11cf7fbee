package schema

// CoreAttendanceTable represents the 'core.attendance' table
type CoreAttendanceTable struct {
	Table           string
	ID              string
	EventInstanceID string
	PaxID           string
	Role            string
	IsPlanned       string
	Meta            string
	CreatedAt       string
	UpdatedAt       string
}

// CoreAttendance is the schema definition for core.attendance
var CoreAttendance = CoreAttendanceTable{
	Table:           "core.attendance",
	ID:              "id",
	EventInstanceID: "event_instance_id",
	PaxID:           "pax_id",
	Role:            "role",
	IsPlanned:       "is_planned",
	Meta:            "meta",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

func (t CoreAttendanceTable) Columns() []string {
	return []string{
		t.ID, t.EventInstanceID, t.PaxID, t.Role, t.IsPlanned,
		t.Meta, t.CreatedAt, t.UpdatedAt,
	}
}
