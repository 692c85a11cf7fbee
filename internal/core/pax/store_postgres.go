package pax

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

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Pax, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		paxSelectColumns(),
		schema.CorePax.Table, schema.CorePax.ID, schema.CorePax.DeletedAt,
	)

	p := &Pax{}
	err := repository.db.QueryRow(ctx, query, id).Scan(paxScanTargets(p)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_pax")
	}
	return p, nil
}

func (repository *PostgresRepository) ListByOrg(ctx context.Context, orgID string) ([]*Pax, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s ASC
	`,
		paxSelectColumns(),
		schema.CorePax.Table, schema.CorePax.OrgID, schema.CorePax.DeletedAt,
		schema.CorePax.F3Name,
	)

	rows, err := repository.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pax_by_org")
	}
	defer rows.Close()

	var list []*Pax
	for rows.Next() {
		p := &Pax{}
		if err := rows.Scan(paxScanTargets(p)...); err != nil {
			return nil, dberr.Wrap(err, "scan_pax")
		}
		list = append(list, p)
	}

	return list, dberr.Wrap(rows.Err(), "list_pax_by_org")
}

func (repository *PostgresRepository) Upsert(ctx context.Context, p *Pax) error {
	// Insert-or-update keyed by id. Every column except created_at takes the
	// incoming value on conflict, so repeated upserts keep the original
	// creation stamp while the rest of the row converges on the last write.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		schema.CorePax.Table,
		schema.CorePax.ID, schema.CorePax.OrgID, schema.CorePax.F3Name,
		schema.CorePax.FirstName, schema.CorePax.LastName, schema.CorePax.Email,
		schema.CorePax.Phone, schema.CorePax.AvatarURL, schema.CorePax.HomeOrgID,
		schema.CorePax.Status, schema.CorePax.FirstPostDate, schema.CorePax.LastPostDate,
		schema.CorePax.PostCount, schema.CorePax.Meta,
		schema.CorePax.CreatedAt, schema.CorePax.UpdatedAt,
		schema.CorePax.ID,
		schema.CorePax.OrgID, schema.CorePax.OrgID,
		schema.CorePax.F3Name, schema.CorePax.F3Name,
		schema.CorePax.FirstName, schema.CorePax.FirstName,
		schema.CorePax.LastName, schema.CorePax.LastName,
		schema.CorePax.Email, schema.CorePax.Email,
		schema.CorePax.Phone, schema.CorePax.Phone,
		schema.CorePax.AvatarURL, schema.CorePax.AvatarURL,
		schema.CorePax.HomeOrgID, schema.CorePax.HomeOrgID,
		schema.CorePax.Status, schema.CorePax.Status,
		schema.CorePax.FirstPostDate, schema.CorePax.FirstPostDate,
		schema.CorePax.LastPostDate, schema.CorePax.LastPostDate,
		schema.CorePax.PostCount, schema.CorePax.PostCount,
		schema.CorePax.Meta, schema.CorePax.Meta,
		schema.CorePax.UpdatedAt, schema.CorePax.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		p.ID, p.OrgID, p.F3Name, p.FirstName, p.LastName, p.Email, p.Phone,
		p.AvatarURL, p.HomeOrgID, p.Status, p.FirstPostDate, p.LastPostDate,
		p.PostCount, p.Meta, p.CreatedAt, p.UpdatedAt,
	)
	return dberr.Wrap(err, "upsert_pax")
}

func paxSelectColumns() string {
	t := schema.CorePax
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.OrgID, t.F3Name, t.FirstName, t.LastName, t.Email, t.Phone,
		t.AvatarURL, t.HomeOrgID, t.Status, t.FirstPostDate, t.LastPostDate,
		t.PostCount, t.Meta, t.CreatedAt, t.UpdatedAt,
	)
}

func paxScanTargets(p *Pax) []any {
	return []any{
		&p.ID, &p.OrgID, &p.F3Name, &p.FirstName, &p.LastName, &p.Email,
		&p.Phone, &p.AvatarURL, &p.HomeOrgID, &p.Status, &p.FirstPostDate,
		&p.LastPostDate, &p.PostCount, &p.Meta, &p.CreatedAt, &p.UpdatedAt,
	}
}
