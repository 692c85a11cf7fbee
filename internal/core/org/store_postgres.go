package org

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

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Org, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		orgSelectColumns(),
		schema.CoreOrg.Table, schema.CoreOrg.ID, schema.CoreOrg.DeletedAt,
	)

	o := &Org{}
	err := repository.db.QueryRow(ctx, query, id).Scan(orgScanTargets(o)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_org")
	}
	return o, nil
}

func (repository *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*Org, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		orgSelectColumns(),
		schema.CoreOrg.Table, schema.CoreOrg.Slug, schema.CoreOrg.DeletedAt,
	)

	o := &Org{}
	err := repository.db.QueryRow(ctx, query, slug).Scan(orgScanTargets(o)...)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_org_by_slug")
	}
	return o, nil
}

func (repository *PostgresRepository) ListByType(ctx context.Context, orgType string, parent ParentFilter) ([]*Org, error) {
	t := schema.CoreOrg

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		orgSelectColumns(),
		t.Table, t.OrgType, t.DeletedAt,
	)
	args := []any{orgType}

	// Tri-state parent filter: absent, explicitly null, or one specific id
	if parent.Requested() {
		if parent.ParentID() == nil {
			query += fmt.Sprintf(" AND %s IS NULL", t.ParentID)
		} else {
			args = append(args, *parent.ParentID())
			query += fmt.Sprintf(" AND %s = $%d", t.ParentID, len(args))
		}
	}

	query += fmt.Sprintf(" ORDER BY %s ASC", t.Name)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_orgs_by_type")
	}
	defer rows.Close()

	var list []*Org
	for rows.Next() {
		o := &Org{}
		if err := rows.Scan(orgScanTargets(o)...); err != nil {
			return nil, dberr.Wrap(err, "scan_org")
		}
		list = append(list, o)
	}

	return list, dberr.Wrap(rows.Err(), "list_orgs_by_type")
}

func (repository *PostgresRepository) Upsert(ctx context.Context, o *Org) error {
	t := schema.CoreOrg

	// Insert-or-update keyed by id; created_at survives conflicts
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s
	`,
		t.Table, orgSelectColumns(),
		t.ID,
		t.OrgType, t.OrgType,
		t.ParentID, t.ParentID,
		t.Slug, t.Slug,
		t.Name, t.Name,
		t.ShortName, t.ShortName,
		t.Description, t.Description,
		t.DefaultLocationID, t.DefaultLocationID,
		t.Timezone, t.Timezone,
		t.CountryCode, t.CountryCode,
		t.State, t.State,
		t.WebsiteURL, t.WebsiteURL,
		t.LogoURL, t.LogoURL,
		t.Email, t.Email,
		t.Twitter, t.Twitter,
		t.Facebook, t.Facebook,
		t.Instagram, t.Instagram,
		t.IsActive, t.IsActive,
		t.Tags, t.Tags,
		t.Meta, t.Meta,
		t.UpdatedAt, t.UpdatedAt,
	)

	_, err := repository.db.Exec(ctx, query,
		o.ID, o.OrgType, o.ParentID, o.Slug, o.Name, o.ShortName, o.Description,
		o.DefaultLocationID, o.Timezone, o.CountryCode, o.State, o.WebsiteURL,
		o.LogoURL, o.Email, o.Twitter, o.Facebook, o.Instagram, o.IsActive,
		o.Tags, o.Meta, o.CreatedAt, o.UpdatedAt,
	)
	return dberr.Wrap(err, "upsert_org")
}

func orgSelectColumns() string {
	t := schema.CoreOrg
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.OrgType, t.ParentID, t.Slug, t.Name, t.ShortName, t.Description,
		t.DefaultLocationID, t.Timezone, t.CountryCode, t.State, t.WebsiteURL,
		t.LogoURL, t.Email, t.Twitter, t.Facebook, t.Instagram, t.IsActive,
		t.Tags, t.Meta, t.CreatedAt, t.UpdatedAt,
	)
}

func orgScanTargets(o *Org) []any {
	return []any{
		&o.ID, &o.OrgType, &o.ParentID, &o.Slug, &o.Name, &o.ShortName,
		&o.Description, &o.DefaultLocationID, &o.Timezone, &o.CountryCode,
		&o.State, &o.WebsiteURL, &o.LogoURL, &o.Email, &o.Twitter, &o.Facebook,
		&o.Instagram, &o.IsActive, &o.Tags, &o.Meta, &o.CreatedAt, &o.UpdatedAt,
	}
}
