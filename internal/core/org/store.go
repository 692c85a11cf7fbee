package org

import "context"

// Repository is the storage port for orgs.
//
// GetByID and GetBySlug return (nil, nil) when no live row matches. Upsert is
// idempotent on ID and must never overwrite CreatedAt on an existing row.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Org, error)
	GetBySlug(ctx context.Context, slug string) (*Org, error)
	ListByType(ctx context.Context, orgType string, parent ParentFilter) ([]*Org, error)
	Upsert(ctx context.Context, o *Org) error
}
