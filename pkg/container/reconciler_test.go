// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package container

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

func TestReconciler_LinksOrphanedProjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.workspace(t, "W")

	// a project whose link step never ran
	orphan, err := f.store.CreateContainer(ctx, &types.Container{Kind: types.KindProject, Name: "P", ParentID: w.ID, CreatedBy: f.alice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.store.AddMember(ctx, orphan.ID, f.alice, types.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	projects, err := f.service.ListProjects(ctx, w.ID, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected the orphan to be hidden before reconciliation, got %+v", projects)
	}

	logger := logging.NewNoopLogger()
	r := NewReconciler(f.store, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	report, err := r.Reconcile(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Linked != 1 || report.Failed != 0 {
		t.Errorf("unexpected report %+v", report)
	}

	projects, err = f.service.ListProjects(ctx, w.ID, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != orphan.ID {
		t.Errorf("expected the orphan to be listed, got %+v", projects)
	}

	report, err = r.Reconcile(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Linked != 0 {
		t.Errorf("expected nothing left to link, got %+v", report)
	}
}

func TestReconciler_Reconcile(t *testing.T) {
	orphans := []*types.Container{
		{ID: "p1", Kind: types.KindProject, ParentID: "w1"},
		{ID: "p2", Kind: types.KindProject, ParentID: "w1"},
	}

	tests := []struct {
		name         string
		setupMocks   func(*MockStorageInterface, *MockInvitePrunerInterface, *MockLoggerInterface)
		expectErr    bool
		expectReport Report
	}{
		{
			name: "links and prunes",
			setupMocks: func(s *MockStorageInterface, p *MockInvitePrunerInterface, l *MockLoggerInterface) {
				s.EXPECT().ListUnlinkedProjects(gomock.Any()).Return(orphans, nil)
				s.EXPECT().LinkChild(gomock.Any(), "w1", "p1").Return(nil)
				s.EXPECT().LinkChild(gomock.Any(), "w1", "p2").Return(nil)
				p.EXPECT().PruneExpired(gomock.Any()).Return(int64(3), nil)
				l.EXPECT().Infof(gomock.Any(), 2, 0, int64(3))
			},
			expectReport: Report{Linked: 2, PrunedInvites: 3},
		},
		{
			name: "link failure continues",
			setupMocks: func(s *MockStorageInterface, p *MockInvitePrunerInterface, l *MockLoggerInterface) {
				s.EXPECT().ListUnlinkedProjects(gomock.Any()).Return(orphans, nil)
				s.EXPECT().LinkChild(gomock.Any(), "w1", "p1").Return(errors.New("connection reset"))
				s.EXPECT().LinkChild(gomock.Any(), "w1", "p2").Return(nil)
				p.EXPECT().PruneExpired(gomock.Any()).Return(int64(0), nil)
				l.EXPECT().Errorf(gomock.Any(), "p1", "w1", gomock.Any())
				l.EXPECT().Infof(gomock.Any(), 1, 1, int64(0))
			},
			expectReport: Report{Linked: 1, Failed: 1},
		},
		{
			name: "list failure",
			setupMocks: func(s *MockStorageInterface, _ *MockInvitePrunerInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListUnlinkedProjects(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectErr: true,
		},
		{
			name: "prune failure",
			setupMocks: func(s *MockStorageInterface, p *MockInvitePrunerInterface, _ *MockLoggerInterface) {
				s.EXPECT().ListUnlinkedProjects(gomock.Any()).Return(nil, nil)
				p.EXPECT().PruneExpired(gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockPruner := NewMockInvitePrunerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			test.setupMocks(mockStorage, mockPruner, mockLogger)

			monitor := monitoring.NewNoopMonitor("test", logging.NewNoopLogger())
			r := NewReconciler(mockStorage, mockPruner, tracing.NewNoopTracer(), monitor, mockLogger)

			report, err := r.Reconcile(context.Background())

			if test.expectErr {
				if err == nil {
					t.Errorf("expected an error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if *report != test.expectReport {
				t.Errorf("expected report %+v, got %+v", test.expectReport, *report)
			}
		})
	}
}

func TestReconciler_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListUnlinkedProjects(gomock.Any()).Return(nil, nil).MinTimes(1)

	logger := logging.NewNoopLogger()
	r := NewReconciler(mockStorage, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		r.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop after cancellation")
	}
}

func TestReconciler_RunDisabled(t *testing.T) {
	logger := logging.NewNoopLogger()
	r := NewReconciler(nil, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	// returns immediately without touching storage
	r.Run(context.Background(), 0)
}
