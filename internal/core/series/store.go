package series

import "context"

// Repository is the storage port for event series. GetByID returns
// (nil, nil) when no live row matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Series, error)
	ListByOrg(ctx context.Context, orgID string, activeOnly bool) ([]*Series, error)
	Upsert(ctx context.Context, s *Series) error
}
