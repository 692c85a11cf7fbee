package location

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

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		locationSelectColumns(),
		schema.CoreLocation.Table, schema.CoreLocation.ID, schema.CoreLocation.DeletedAt,
	)

	l := &Location{}
	err := repository.db.QueryRow(ctx, query, id).Scan(locationScanTargets(l)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_location")
	}
	return l, nil
}

func (repository *PostgresRepository) ListByOrg(ctx context.Context, orgID string) ([]*Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s ASC
	`,
		locationSelectColumns(),
		schema.CoreLocation.Table, schema.CoreLocation.OrgID, schema.CoreLocation.DeletedAt,
		schema.CoreLocation.Name,
	)

	rows, err := repository.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_locations_by_org")
	}
	defer rows.Close()

	var list []*Location
	for rows.Next() {
		l := &Location{}
		if err := rows.Scan(locationScanTargets(l)...); err != nil {
			return nil, dberr.Wrap(err, "scan_location")
		}
		list = append(list, l)
	}

	return list, dberr.Wrap(rows.Err(), "list_locations_by_org")
}

func (repository *PostgresRepository) Upsert(ctx context.Context, l *Location) error {
	t := schema.CoreLocation

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		t.Table, locationSelectColumns(),
		t.ID,
		t.OrgID, t.OrgID,
		t.Name, t.Name,
		t.Description, t.Description,
		t.Address, t.Address,
		t.City, t.City,
		t.State, t.State,
		t.PostalCode, t.PostalCode,
		t.Country, t.Country,
		t.Lat, t.Lat,
		t.Lng, t.Lng,
		t.Meta, t.Meta,
		t.UpdatedAt, t.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		l.ID, l.OrgID, l.Name, l.Description, l.Address, l.City, l.State,
		l.PostalCode, l.Country, l.Lat, l.Lng, l.Meta, l.CreatedAt, l.UpdatedAt,
	)
	return dberr.Wrap(err, "upsert_location")
}

func locationSelectColumns() string {
	t := schema.CoreLocation
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.OrgID, t.Name, t.Description, t.Address, t.City, t.State,
		t.PostalCode, t.Country, t.Lat, t.Lng, t.Meta, t.CreatedAt, t.UpdatedAt,
	)
}

func locationScanTargets(l *Location) []any {
	return []any{
		&l.ID, &l.OrgID, &l.Name, &l.Description, &l.Address, &l.City, &l.State,
		&l.PostalCode, &l.Country, &l.Lat, &l.Lng, &l.Meta, &l.CreatedAt, &l.UpdatedAt,
	}
}
