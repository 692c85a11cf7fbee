package location

import "context"

// Repository is the storage port for locations. GetByID returns (nil, nil)
// when no live row matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Location, error)
	ListByOrg(ctx context.Context, orgID string) ([]*Location, error)
	Upsert(ctx context.Context, l *Location) error
}
