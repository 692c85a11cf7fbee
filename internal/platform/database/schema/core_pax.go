package schema

// CorePaxTable represents the 'core.pax' table
type CorePaxTable struct {
	Table         string
	ID            string
	OrgID         string
	F3Name        string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	AvatarURL     string
	HomeOrgID     string
	Status        string
	FirstPostDate string
	LastPostDate  string
	PostCount     string
	Meta          string
	CreatedAt     string
	UpdatedAt     string
	DeletedAt     string
}

// CorePax is the schema definition for core.pax
var CorePax = CorePaxTable{
	Table:         "core.pax",
	ID:            "id",
	OrgID:         "org_id",
	F3Name:        "f3_name",
	FirstName:     "first_name",
	LastName:      "last_name",
	Email:         "email",
	Phone:         "phone",
	AvatarURL:     "avatar_url",
	HomeOrgID:     "home_org_id",
	Status:        "status",
	FirstPostDate: "first_post_date",
	LastPostDate:  "last_post_date",
	PostCount:     "post_count",
	Meta:          "meta",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
	DeletedAt:     "deleted_at",
}

func (t CorePaxTable) Columns() []string {
	return []string{
		t.ID, t.OrgID, t.F3Name, t.FirstName, t.LastName, t.Email, t.Phone,
		t.AvatarURL, t.HomeOrgID, t.Status, t.FirstPostDate, t.LastPostDate,
		t.PostCount, t.Meta, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
