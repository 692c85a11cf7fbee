// Copyright (c) 2026 F3 Nation. All rights reserved.

// Package dberr bridges low-level PostgreSQL errors and domain errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/f3nation/f3api/internal/domain/result"
)

// Wrap classifies a database error.
//
// Unique-constraint violations become DUPLICATE_ENTRY (attendance per
// event+pax, taxonomy key per org+kind, org slug). Everything else is
// wrapped with the failing action and left unclassified, surfacing as a
// 500 with the cause kept server-side.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return result.Duplicate("Duplicate entry")
	}

	return fmt.Errorf("%s: %w", action, err)
}
