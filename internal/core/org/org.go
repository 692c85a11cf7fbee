package org

import "time"

// Org types, from the top of the hierarchy down
const (
	TypeNation = "nation"
	TypeSector = "sector"
	TypeArea   = "area"
	TypeRegion = "region"
	TypeAO     = "ao"
)

// Org is a hierarchical community unit. ParentID links an org to its parent
// (nil for top-level orgs); the service guards the link against self
// references and cycles on upsert.
type Org struct {
	ID                string         `json:"id"`
	OrgType           string         `json:"orgType"`
	ParentID          *string        `json:"parentId,omitempty"`
	Slug              *string        `json:"slug,omitempty"`
	Name              string         `json:"name"`
	ShortName         *string        `json:"shortName,omitempty"`
	Description       *string        `json:"description,omitempty"`
	DefaultLocationID *string        `json:"defaultLocationId,omitempty"`
	Timezone          *string        `json:"timezone,omitempty"`
	CountryCode       *string        `json:"countryCode,omitempty"`
	State             *string        `json:"state,omitempty"`
	WebsiteURL        *string        `json:"websiteUrl,omitempty"`
	LogoURL           *string        `json:"logoUrl,omitempty"`
	Email             *string        `json:"email,omitempty"`
	Twitter           *string        `json:"twitter,omitempty"`
	Facebook          *string        `json:"facebook,omitempty"`
	Instagram         *string        `json:"instagram,omitempty"`
	IsActive          bool           `json:"isActive"`
	Tags              []string       `json:"tags,omitempty"`
	Meta              map[string]any `json:"meta,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         *time.Time     `json:"-"` // soft-delete tracker
}

// ParentFilter narrows an org listing by parent. It is tri-state: not
// requested at all, explicitly "no parent" (top-level orgs), or one specific
// parent id. Collapsing the first two states would be a correctness bug, so
// the zero value means "any parent" and the other states have constructors.
type ParentFilter struct {
	set bool
	id  *string
}

// AnyParent places no constraint on the parent link.
func AnyParent() ParentFilter {
	return ParentFilter{}
}

// RootOnly matches orgs whose parent link is null.
func RootOnly() ParentFilter {
	return ParentFilter{set: true}
}

// ChildOf matches orgs whose parent is exactly id.
func ChildOf(id string) ParentFilter {
	return ParentFilter{set: true, id: &id}
}

// Requested reports whether the filter constrains the parent at all.
func (f ParentFilter) Requested() bool { return f.set }

// ParentID returns the specific parent id, or nil for the root-only state.
// Only meaningful when Requested is true.
func (f ParentFilter) ParentID() *string { return f.id }

// Global field names for validation
const (
	FieldID      = "id"
	FieldName    = "name"
	FieldOrgType = "orgType"
	FieldSlug    = "slug"
)
