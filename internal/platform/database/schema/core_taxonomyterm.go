package schema

// CoreTaxonomyTermTable represents the 'core.taxonomy_terms' table
type CoreTaxonomyTermTable struct {
	Table       string
	ID          string
	OrgID       string
	Kind        string
	Key         string
	Label       string
	Description string
	SortOrder   string
	IsActive    string
	Meta        string
	CreatedAt   string
	UpdatedAt   string
}

// CoreTaxonomyTerm is the schema definition for core.taxonomy_terms
var CoreTaxonomyTerm = CoreTaxonomyTermTable{
	Table:       "core.taxonomy_terms",
	ID:          "id",
	OrgID:       "org_id",
	Kind:        "kind",
	Key:         "key",
	Label:       "label",
	Description: "description",
	SortOrder:   "sort_order",
	IsActive:    "is_active",
	Meta:        "meta",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CoreTaxonomyTermTable) Columns() []string {
	return []string{
		t.ID, t.OrgID, t.Kind, t.Key, t.Label, t.Description,
		t.SortOrder, t.IsActive, t.Meta, t.CreatedAt, t.UpdatedAt,
	}
}
