package pax

import "context"

// Repository is the storage port for pax records.
//
// GetByID returns (nil, nil) when no live row matches; absence is an ordinary
// outcome, not an error. Upsert is idempotent on ID and must never overwrite
// CreatedAt on an existing row.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Pax, error)
	ListByOrg(ctx context.Context, orgID string) ([]*Pax, error)
	Upsert(ctx context.Context, p *Pax) error
}
