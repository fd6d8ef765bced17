// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapError(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"malformed id", &pgconn.PgError{Code: pgErrCodeInvalidTextRepresentation}, ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: pgErrCodeUniqueViolation}, ErrDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}, ErrForeignKeyViolation},
		{"other", boom, boom},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := mapError(test.err, "failed")

			if test.expected == nil {
				if err != nil {
					t.Errorf("expected nil, got %v", err)
				}
				return
			}

			if !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
		})
	}
}
