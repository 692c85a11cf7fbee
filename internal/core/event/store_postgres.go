package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/f3nation/f3api/internal/platform/database/schema"
	"github.com/f3nation/f3api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Instance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		eventSelectColumns(),
		schema.CoreEventInstance.Table, schema.CoreEventInstance.ID, schema.CoreEventInstance.DeletedAt,
	)

	instance := &Instance{}
	err := repository.db.QueryRow(ctx, query, id).Scan(eventScanTargets(instance)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}
	return instance, nil
}

func (repository *PostgresRepository) ListByOrg(ctx context.Context, orgID string, dates DateRange) ([]*Instance, error) {
	t := schema.CoreEventInstance

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		eventSelectColumns(),
		t.Table, t.OrgID, t.DeletedAt,
	)
	args := []any{orgID}

	// Inclusive bounds; ISO dates compare correctly as text
	if dates.From != "" {
		args = append(args, dates.From)
		query += fmt.Sprintf(" AND %s >= $%d", t.StartDate, len(args))
	}
	if dates.To != "" {
		args = append(args, dates.To)
		query += fmt.Sprintf(" AND %s <= $%d", t.StartDate, len(args))
	}

	// Id as tie-break keeps same-day orderings stable
	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC", t.StartDate, t.ID)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_events_by_org")
	}
	defer rows.Close()

	var list []*Instance
	for rows.Next() {
		instance := &Instance{}
		if err := rows.Scan(eventScanTargets(instance)...); err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		list = append(list, instance)
	}

	return list, dberr.Wrap(rows.Err(), "list_events_by_org")
}

func (repository *PostgresRepository) Create(ctx context.Context, instance *Instance) error {
	t := schema.CoreEventInstance

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`,
		t.Table, eventSelectColumns(),
	)

	_, err := repository.db.Exec(ctx, query,
		instance.ID, instance.OrgID, instance.LocationID, instance.SeriesID,
		instance.Name, instance.Description, instance.Type, instance.IsActive,
		instance.Highlight, instance.StartDate, instance.EndDate,
		instance.StartTime, instance.EndTime, instance.PaxCount, instance.FngCount,
		instance.Preblast, instance.Backblast, instance.PreblastRich,
		instance.BackblastRich, instance.PreblastTs, instance.BackblastTs,
		instance.QPaxIds, instance.CoQPaxIds, instance.PaxIds, instance.Tags,
		instance.Meta, instance.CreatedAt, instance.UpdatedAt,
	)
	return dberr.Wrap(err, "create_event")
}

func eventSelectColumns() string {
	t := schema.CoreEventInstance
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.OrgID, t.LocationID, t.SeriesID, t.Name, t.Description, t.Type,
		t.IsActive, t.Highlight, t.StartDate, t.EndDate, t.StartTime, t.EndTime,
		t.PaxCount, t.FngCount, t.Preblast, t.Backblast, t.PreblastRich,
		t.BackblastRich, t.PreblastTs, t.BackblastTs, t.QPaxIds, t.CoQPaxIds,
		t.PaxIds, t.Tags, t.Meta, t.CreatedAt, t.UpdatedAt,
	)
}

func eventScanTargets(instance *Instance) []any {
	return []any{
		&instance.ID, &instance.OrgID, &instance.LocationID, &instance.SeriesID,
		&instance.Name, &instance.Description, &instance.Type, &instance.IsActive,
		&instance.Highlight, &instance.StartDate, &instance.EndDate,
		&instance.StartTime, &instance.EndTime, &instance.PaxCount, &instance.FngCount,
		&instance.Preblast, &instance.Backblast, &instance.PreblastRich,
		&instance.BackblastRich, &instance.PreblastTs, &instance.BackblastTs,
		&instance.QPaxIds, &instance.CoQPaxIds, &instance.PaxIds, &instance.Tags,
		&instance.Meta, &instance.CreatedAt, &instance.UpdatedAt,
	}
}

// PostgresAttendanceRepository persists attendance join rows.
type PostgresAttendanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAttendanceRepository(db *pgxpool.Pool) *PostgresAttendanceRepository {
	return &PostgresAttendanceRepository{db: db}
}

func (repository *PostgresAttendanceRepository) ListByEventInstance(ctx context.Context, eventInstanceID string) ([]*Attendance, error) {
	t := schema.CoreAttendance

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		t.ID, t.EventInstanceID, t.PaxID, t.Role, t.IsPlanned, t.Meta,
		t.CreatedAt, t.UpdatedAt,
		t.Table, t.EventInstanceID, t.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, eventInstanceID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_attendance")
	}
	defer rows.Close()

	var list []*Attendance
	for rows.Next() {
		a := &Attendance{}
		if err := rows.Scan(
			&a.ID, &a.EventInstanceID, &a.PaxID, &a.Role, &a.IsPlanned, &a.Meta,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_attendance")
		}
		list = append(list, a)
	}

	return list, dberr.Wrap(rows.Err(), "list_attendance")
}

// AddMany upserts each row keyed on the (event_instance_id, pax_id) unique
// index. Writes are sequential and independent; there is no surrounding
// transaction, so a mid-batch failure leaves earlier rows committed.
func (repository *PostgresAttendanceRepository) AddMany(ctx context.Context, batch []*Attendance) error {
	if len(batch) == 0 {
		return nil
	}

	t := schema.CoreAttendance
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		t.Table, t.ID, t.EventInstanceID, t.PaxID, t.Role, t.IsPlanned, t.Meta,
		t.CreatedAt, t.UpdatedAt,
		t.EventInstanceID, t.PaxID,
		t.Role, t.Role, t.IsPlanned, t.IsPlanned, t.Meta, t.Meta,
		t.UpdatedAt, t.UpdatedAt,
	)

	for _, row := range batch {
		_, err := repository.db.Exec(ctx, query,
			row.ID, row.EventInstanceID, row.PaxID, row.Role, row.IsPlanned,
			row.Meta, row.CreatedAt, row.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "add_attendance")
		}
	}
	return nil
}
