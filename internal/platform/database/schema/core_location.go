package schema

// CoreLocationTable represents the 'core.locations' table
type CoreLocationTable struct {
	Table       string
	ID          string
	OrgID       string
	Name        string
	Description string
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	Lat         string
	Lng         string
	Meta        string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CoreLocation is the schema definition for core.locations
var CoreLocation = CoreLocationTable{
	Table:       "core.locations",
	ID:          "id",
	OrgID:       "org_id",
	Name:        "name",
	Description: "description",
	Address:     "address",
	City:        "city",
	State:       "state",
	PostalCode:  "postal_code",
	Country:     "country",
	Lat:         "lat",
	Lng:         "lng",
	Meta:        "meta",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
	DeletedAt:   "deleted_at",
}

func (t CoreLocationTable) Columns() []string {
	return []string{
		t.ID, t.OrgID, t.Name, t.Description, t.Address, t.City, t.State,
		t.PostalCode, t.Country, t.Lat, t.Lng, t.Meta,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
