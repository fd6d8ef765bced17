// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

var errRecorded = errors.New("statement recorded")

// recorder captures the last statement squirrel hands to the runner and fails it.
type recorder struct {
	query string
	args  []interface{}
}

func (r *recorder) record(query string, args []interface{}) {
	r.query = query
	r.args = args
}

func (r *recorder) Exec(query string, args ...interface{}) (sql.Result, error) {
	r.record(query, args)
	return nil, errRecorded
}

func (r *recorder) Query(query string, args ...interface{}) (*sql.Rows, error) {
	r.record(query, args)
	return nil, errRecorded
}

func (r *recorder) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	return r.Exec(query, args...)
}

func (r *recorder) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return r.Query(query, args...)
}

func (r *recorder) QueryRowContext(_ context.Context, query string, args ...interface{}) sq.RowScanner {
	r.record(query, args)
	return recordedRow{}
}

type recordedRow struct{}

func (recordedRow) Scan(...interface{}) error {
	return errRecorded
}

type recordingDB struct {
	runner *recorder
}

func (d *recordingDB) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.runner)
}

func (d *recordingDB) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (d *recordingDB) Ping(context.Context) error {
	return nil
}

func (d *recordingDB) Close() {}

func TestStorage_Statements(t *testing.T) {
	tests := []struct {
		name     string
		run      func(context.Context, *Storage) error
		prefix   string
		contains []string
		absent   []string
		args     []interface{}
	}{
		{
			name: "lock container",
			run: func(ctx context.Context, s *Storage) error {
				_, err := s.LockContainer(ctx, "w1")
				return err
			},
			prefix:   "SELECT c.id, c.kind, c.name,",
			contains: []string{"FROM containers c WHERE c.id = $1 FOR UPDATE"},
			args:     []interface{}{"w1"},
		},
		{
			name: "lock principal",
			run: func(ctx context.Context, s *Storage) error {
				_, err := s.LockPrincipal(ctx, "p1")
				return err
			},
			prefix:   "SELECT id, email, name,",
			contains: []string{"FROM principals WHERE id = $1 FOR UPDATE"},
			args:     []interface{}{"p1"},
		},
		{
			name: "get invite",
			run: func(ctx context.Context, s *Storage) error {
				_, err := s.GetInvite(ctx, "t1")
				return err
			},
			prefix:   "SELECT token, container_id, email, invited_by, expires_at, created_at FROM invites",
			contains: []string{"WHERE token = $1"},
			absent:   []string{"FOR UPDATE"},
			args:     []interface{}{"t1"},
		},
		{
			name: "consume invite",
			run: func(ctx context.Context, s *Storage) error {
				_, err := s.ConsumeInvite(ctx, "w1", "t1")
				return err
			},
			prefix: "DELETE FROM invites WHERE container_id = $1 AND token = $2",
			contains: []string{
				"RETURNING token, container_id, email, invited_by, expires_at, created_at",
			},
			args: []interface{}{"w1", "t1"},
		},
		{
			name: "list unlinked projects",
			run: func(ctx context.Context, s *Storage) error {
				_, err := s.ListUnlinkedProjects(ctx)
				return err
			},
			prefix: "SELECT c.id,",
			contains: []string{
				"LEFT JOIN container_children cc ON cc.child_id = c.id AND cc.parent_id = c.parent_id",
				"WHERE c.kind = $1 AND cc.child_id IS NULL",
				"ORDER BY c.created_at",
			},
			args: []interface{}{"project"},
		},
		{
			name: "delete principal",
			run: func(ctx context.Context, s *Storage) error {
				return s.DeletePrincipal(ctx, "p1")
			},
			prefix: "DELETE FROM principals WHERE id = $1",
			args:   []interface{}{"p1"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			runner := new(recorder)
			logger := logging.NewNoopLogger()
			s := NewStorage(&recordingDB{runner: runner}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			if err := test.run(context.Background(), s); !errors.Is(err, errRecorded) {
				t.Fatalf("expected the recorded error, got %v", err)
			}

			if !strings.HasPrefix(runner.query, test.prefix) {
				t.Errorf("expected statement to start with %q, got %q", test.prefix, runner.query)
			}

			for _, fragment := range test.contains {
				if !strings.Contains(runner.query, fragment) {
					t.Errorf("expected statement to contain %q, got %q", fragment, runner.query)
				}
			}

			for _, fragment := range test.absent {
				if strings.Contains(runner.query, fragment) {
					t.Errorf("expected statement not to contain %q, got %q", fragment, runner.query)
				}
			}

			if !reflect.DeepEqual(runner.args, test.args) {
				t.Errorf("expected args %v, got %v", test.args, runner.args)
			}
		})
	}
}
