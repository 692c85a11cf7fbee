package event

import "context"

// Repository is the storage port for event instances.
//
// GetByID returns (nil, nil) when no live row matches. ListByOrg applies the
// inclusive date range and orders by start date ascending, id ascending as
// the deterministic tie-break.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Instance, error)
	ListByOrg(ctx context.Context, orgID string, dates DateRange) ([]*Instance, error)
	Create(ctx context.Context, instance *Instance) error
}

// AttendanceRepository is the storage port for attendance rows.
//
// AddMany upserts each row keyed on (eventInstanceId, paxId); an empty batch
// is a successful no-op. Rows are written sequentially and independently, so
// a mid-batch failure leaves earlier rows durable.
type AttendanceRepository interface {
	ListByEventInstance(ctx context.Context, eventInstanceID string) ([]*Attendance, error)
	AddMany(ctx context.Context, rows []*Attendance) error
}
