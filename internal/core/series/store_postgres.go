package series

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

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Series, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		seriesSelectColumns(),
		schema.CoreEventSeries.Table, schema.CoreEventSeries.ID, schema.CoreEventSeries.DeletedAt,
	)

	s := &Series{}
	err := repository.db.QueryRow(ctx, query, id).Scan(seriesScanTargets(s)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_series")
	}
	return s, nil
}

func (repository *PostgresRepository) ListByOrg(ctx context.Context, orgID string, activeOnly bool) ([]*Series, error) {
	t := schema.CoreEventSeries

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		seriesSelectColumns(),
		t.Table, t.OrgID, t.DeletedAt,
	)
	if activeOnly {
		query += fmt.Sprintf(" AND %s = TRUE", t.IsActive)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", t.Name)

	rows, err := repository.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_series_by_org")
	}
	defer rows.Close()

	var list []*Series
	for rows.Next() {
		s := &Series{}
		if err := rows.Scan(seriesScanTargets(s)...); err != nil {
			return nil, dberr.Wrap(err, "scan_series")
		}
		list = append(list, s)
	}

	return list, dberr.Wrap(rows.Err(), "list_series_by_org")
}

func (repository *PostgresRepository) Upsert(ctx context.Context, s *Series) error {
	t := schema.CoreEventSeries

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		t.Table, seriesSelectColumns(),
		t.ID,
		t.OrgID, t.OrgID,
		t.LocationID, t.LocationID,
		t.Name, t.Name,
		t.Description, t.Description,
		t.Type, t.Type,
		t.DayOfWeek, t.DayOfWeek,
		t.StartTime, t.StartTime,
		t.DurationMinutes, t.DurationMinutes,
		t.IsActive, t.IsActive,
		t.Tags, t.Tags,
		t.Meta, t.Meta,
		t.UpdatedAt, t.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		s.ID, s.OrgID, s.LocationID, s.Name, s.Description, s.Type, s.DayOfWeek,
		s.StartTime, s.DurationMinutes, s.IsActive, s.Tags, s.Meta,
		s.CreatedAt, s.UpdatedAt,
	)
	return dberr.Wrap(err, "upsert_series")
}

func seriesSelectColumns() string {
	t := schema.CoreEventSeries
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.OrgID, t.LocationID, t.Name, t.Description, t.Type, t.DayOfWeek,
		t.StartTime, t.DurationMinutes, t.IsActive, t.Tags, t.Meta,
		t.CreatedAt, t.UpdatedAt,
	)
}

func seriesScanTargets(s *Series) []any {
	return []any{
		&s.ID, &s.OrgID, &s.LocationID, &s.Name, &s.Description, &s.Type,
		&s.DayOfWeek, &s.StartTime, &s.DurationMinutes, &s.IsActive, &s.Tags,
		&s.Meta, &s.CreatedAt, &s.UpdatedAt,
	}
}
