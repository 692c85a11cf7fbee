package schema

// CoreEventSeriesTable represents the 'core.event_series' table
type CoreEventSeriesTable struct {
	Table           string
	ID              string
	OrgID           string
	LocationID      string
	Name            string
	Description     string
	Type            string
	DayOfWeek       string
	StartTime       string
	DurationMinutes string
	IsActive        string
	Tags            string
	Meta            string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// CoreEventSeries is the schema definition for core.event_series
var CoreEventSeries = CoreEventSeriesTable{
	Table:           "core.event_series",
	ID:              "id",
	OrgID:           "org_id",
	LocationID:      "location_id",
	Name:            "name",
	Description:     "description",
	Type:            "type",
	DayOfWeek:       "day_of_week",
	StartTime:       "start_time",
	DurationMinutes: "duration_minutes",
	IsActive:        "is_active",
	Tags:            "tags",
	Meta:            "meta",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
	DeletedAt:       "deleted_at",
}

func (t CoreEventSeriesTable) Columns() []string {
	return []string{
		t.ID, t.OrgID, t.LocationID, t.Name, t.Description, t.Type,
		t.DayOfWeek, t.StartTime, t.DurationMinutes, t.IsActive,
		t.Tags, t.Meta, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
