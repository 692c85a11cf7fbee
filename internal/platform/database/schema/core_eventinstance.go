package schema

// CoreEventInstanceTable represents the 'core.event_instances' table
type CoreEventInstanceTable struct {
	Table         string
	ID            string
	OrgID         string
	LocationID    string
	SeriesID      string
	Name          string
	Description   string
	Type          string
	IsActive      string
	Highlight     string
	StartDate     string
	EndDate       string
	StartTime     string
	EndTime       string
	PaxCount      string
	FngCount      string
	Preblast      string
	Backblast     string
	PreblastRich  string
	BackblastRich string
	PreblastTs    string
	BackblastTs   string
	QPaxIds       string
	CoQPaxIds     string
	PaxIds        string
	Tags          string
	Meta          string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// CoreEventInstance is the schema definition for core.event_instances
var CoreEventInstance = CoreEventInstanceTable{
	Table:         "core.event_instances",
	ID:            "id",
	OrgID:         "org_id",
	LocationID:    "location_id",
	SeriesID:      "series_id",
	Name:          "name",
	Description:   "description",
	Type:          "type",
	IsActive:      "is_active",
	Highlight:     "highlight",
	StartDate:     "start_date",
	EndDate:       "end_date",
	StartTime:     "start_time",
	EndTime:       "end_time",
	PaxCount:      "pax_count",
	FngCount:      "fng_count",
	Preblast:      "preblast",
	Backblast:     "backblast",
	PreblastRich:  "preblast_rich",
	BackblastRich: "backblast_rich",
	PreblastTs:    "preblast_ts",
	BackblastTs:   "backblast_ts",
	QPaxIds:       "q_pax_ids",
	CoQPaxIds:     "co_q_pax_ids",
	PaxIds:        "pax_ids",
	Tags:          "tags",
	Meta:          "meta",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
	DeletedAt:     "deleted_at",
}

func (t CoreEventInstanceTable) Columns() []string {
	return []string{
		t.ID, t.OrgID, t.LocationID, t.SeriesID, t.Name, t.Description, t.Type,
		t.IsActive, t.Highlight, t.StartDate, t.EndDate, t.StartTime, t.EndTime,
		t.PaxCount, t.FngCount, t.Preblast, t.Backblast, t.PreblastRich,
		t.BackblastRich, t.PreblastTs, t.BackblastTs, t.QPaxIds, t.CoQPaxIds,
		t.PaxIds, t.Tags, t.Meta, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
