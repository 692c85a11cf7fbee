package taxonomy

import "context"

// Repository is the storage port for taxonomy terms.
//
// GetByKey returns (nil, nil) when the triple has no live row. Upsert keys
// on id; the unique (org_id, kind, key) index rejects a second id claiming
// an existing triple, which surfaces as a duplicate-entry condition.
type Repository interface {
	List(ctx context.Context, orgID, kind string, activeOnly bool) ([]*Term, error)
	GetByKey(ctx context.Context, orgID, kind, key string) (*Term, error)
	Upsert(ctx context.Context, term *Term) error
}
