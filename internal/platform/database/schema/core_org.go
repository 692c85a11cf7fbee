package schema

// CoreOrgTable represents the 'core.orgs' table
type CoreOrgTable struct {
	Table             string
	ID                string
	OrgType           string
	ParentID          string
	Slug              string
	Name              string
	ShortName         string
	Description       string
	DefaultLocationID string
	Timezone          string
	CountryCode       string
	State             string
	WebsiteURL        string
	LogoURL           string
	Email             string
	Twitter           string
	Facebook          string
	Instagram         string
	IsActive          string
	Tags              string
	Meta              string
	CreatedAt         string
	UpdatedAt         string
	DeletedAt         string
}

// CoreOrg is the schema definition for core.orgs
var CoreOrg = CoreOrgTable{
	Table:             "core.orgs",
	ID:                "id",
	OrgType:           "org_type",
	ParentID:          "parent_id",
	Slug:              "slug",
	Name:              "name",
	ShortName:         "short_name",
	Description:       "description",
	DefaultLocationID: "default_location_id",
	Timezone:          "timezone",
	CountryCode:       "country_code",
	State:             "state",
	WebsiteURL:        "website_url",
	LogoURL:           "logo_url",
	Email:             "email",
	Twitter:           "twitter",
	Facebook:          "facebook",
	Instagram:         "instagram",
	IsActive:          "is_active",
	Tags:              "tags",
	Meta:              "meta",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
	DeletedAt:         "deleted_at",
}

func (t CoreOrgTable) Columns() []string {
	return []string{
		t.ID, t.OrgType, t.ParentID, t.Slug, t.Name, t.ShortName, t.Description,
		t.DefaultLocationID, t.Timezone, t.CountryCode, t.State, t.WebsiteURL,
		t.LogoURL, t.Email, t.Twitter, t.Facebook, t.Instagram, t.IsActive,
		t.Tags, t.Meta, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
