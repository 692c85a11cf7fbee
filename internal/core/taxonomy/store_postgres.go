package taxonomy

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

func (repository *PostgresRepository) List(ctx context.Context, orgID, kind string, activeOnly bool) ([]*Term, error) {
	t := schema.CoreTaxonomyTerm

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`,
		termSelectColumns(),
		t.Table, t.OrgID,
	)
	args := []any{orgID}

	if kind != "" {
		args = append(args, kind)
		query += fmt.Sprintf(" AND %s = $%d", t.Kind, len(args))
	}
	if activeOnly {
		query += fmt.Sprintf(" AND %s = TRUE", t.IsActive)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC, %s ASC", t.Kind, t.SortOrder, t.Key)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_taxonomy_terms")
	}
	defer rows.Close()

	var list []*Term
	for rows.Next() {
		term := &Term{}
		if err := rows.Scan(termScanTargets(term)...); err != nil {
			return nil, dberr.Wrap(err, "scan_taxonomy_term")
		}
		list = append(list, term)
	}

	return list, dberr.Wrap(rows.Err(), "list_taxonomy_terms")
}

func (repository *PostgresRepository) GetByKey(ctx context.Context, orgID, kind, key string) (*Term, error) {
	t := schema.CoreTaxonomyTerm

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s = $3
	`,
		termSelectColumns(),
		t.Table, t.OrgID, t.Kind, t.Key,
	)

	term := &Term{}
	err := repository.db.QueryRow(ctx, query, orgID, kind, key).Scan(termScanTargets(term)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_taxonomy_term")
	}
	return term, nil
}

func (repository *PostgresRepository) Upsert(ctx context.Context, term *Term) error {
	t := schema.CoreTaxonomyTerm

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		t.Table, termSelectColumns(),
		t.ID,
		t.OrgID, t.OrgID,
		t.Kind, t.Kind,
		t.Key, t.Key,
		t.Label, t.Label,
		t.Description, t.Description,
		t.SortOrder, t.SortOrder,
		t.IsActive, t.IsActive,
		t.Meta, t.Meta,
		t.UpdatedAt, t.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		term.ID, term.OrgID, term.Kind, term.Key, term.Label, term.Description,
		term.SortOrder, term.IsActive, term.Meta, term.CreatedAt, term.UpdatedAt,
	)
	return dberr.Wrap(err, "upsert_taxonomy_term")
}

func termSelectColumns() string {
	t := schema.CoreTaxonomyTerm
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.OrgID, t.Kind, t.Key, t.Label, t.Description, t.SortOrder,
		t.IsActive, t.Meta, t.CreatedAt, t.UpdatedAt,
	)
}

func termScanTargets(term *Term) []any {
	return []any{
		&term.ID, &term.OrgID, &term.Kind, &term.Key, &term.Label,
		&term.Description, &term.SortOrder, &term.IsActive, &term.Meta,
		&term.CreatedAt, &term.UpdatedAt,
	}
}
