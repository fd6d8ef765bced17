// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/logging"
)

const defaultTxTimeout = 60 * time.Second

type lazyTxKey struct{}

// lazyTx begins its transaction on the first statement, so read-only paths that
// never touch the database do not pay for one.
type lazyTx struct {
	db     *sql.DB
	tx     *sql.Tx
	err    error
	cancel context.CancelFunc

	committed bool
	logger    logging.LoggerInterface
}

func (lt *lazyTx) get() (*sql.Tx, error) {
	if lt.err != nil || lt.tx != nil {
		return lt.tx, lt.err
	}

	// detached from the request so a client disconnect cannot abort a commit half way,
	// bounded so a stuck transaction cannot hold row locks forever
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)

	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		lt.err = fmt.Errorf("failed to begin transaction: %w", err)
		return nil, lt.err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

func (lt *lazyTx) finish() {
	if lt.started() && !lt.committed {
		if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			lt.logger.Errorf("failed to rollback transaction: %v", err)
		}
	}

	if lt.cancel != nil {
		lt.cancel()
	}
}

func (lt *lazyTx) commit() error {
	if !lt.started() {
		return nil
	}

	if err := lt.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	lt.committed = true
	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	lt, _ := ctx.Value(lazyTxKey{}).(*lazyTx)
	return lt
}

func contextWithLazyTx(ctx context.Context, lt *lazyTx) context.Context {
	return context.WithValue(ctx, lazyTxKey{}, lt)
}

// WithTx commits when fn returns nil and rolls back otherwise.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if lazyTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db, logger: d.logger}
	defer lt.finish()

	if err := fn(contextWithLazyTx(ctx, lt)); err != nil {
		return err
	}

	return lt.commit()
}

// failedRunner fails every statement of a transaction that could not begin.
// Running those statements on the pool instead would silently drop their row locks.
type failedRunner struct {
	err error
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...interface{}) error {
	return r.err
}

func (f failedRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return failedRow{err: f.err}
}
