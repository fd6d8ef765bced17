// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package container

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage/memory"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package container -destination ./mock_container.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package container -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

type fixture struct {
	store   *memory.Storage
	service *Service

	alice, bob string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	f := new(fixture)
	f.store = memory.NewStorage(logger)
	f.service = NewService(f.store, authorization.NewGuard(tracer, monitor, logger), tracer, monitor, logger)

	for _, p := range []struct {
		id    *string
		email string
	}{{&f.alice, "alice@example.com"}, {&f.bob, "bob@example.com"}} {
		created, err := f.store.CreatePrincipal(context.Background(), &types.Principal{Email: p.email, Name: p.email})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		*p.id = created.ID
	}

	return f
}

func (f *fixture) workspace(t *testing.T, name string) *types.Container {
	t.Helper()

	w, err := f.service.CreateWorkspace(context.Background(), &types.ContainerInput{Name: name}, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func (f *fixture) project(t *testing.T, workspaceID, name string) *types.Container {
	t.Helper()

	p, err := f.service.CreateProject(context.Background(), workspaceID, &types.ContainerInput{Name: name}, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestService_CreateWorkspace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		input       *types.ContainerInput
		expectedErr error
	}{
		{"valid", &types.ContainerInput{Name: "  W  ", Description: "team"}, nil},
		{"empty name", &types.ContainerInput{Name: "   "}, apperrors.ErrValidation},
		{"missing input", nil, apperrors.ErrValidation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, err := f.service.CreateWorkspace(ctx, test.input, f.alice)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if w.Name != "W" || w.Kind != types.KindWorkspace || w.CreatedBy != f.alice {
				t.Errorf("unexpected workspace %+v", w)
			}

			members, err := f.store.ListMembers(ctx, w.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(members) != 1 || members[0].PrincipalID != f.alice || members[0].Role != types.RoleAdmin {
				t.Errorf("expected creator as sole Admin, got %+v", members)
			}
		})
	}
}

func TestService_CreateProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.workspace(t, "W")

	if err := f.store.AddMember(ctx, w.ID, f.bob, types.RoleMember); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.service.CreateProject(ctx, w.ID, &types.ContainerInput{Name: "P"}, f.bob); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if _, err := f.service.CreateProject(ctx, "missing", &types.ContainerInput{Name: "P"}, f.alice); !errors.Is(err, apperrors.ErrContainerNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrContainerNotFound, err)
	}

	p := f.project(t, w.ID, "P")

	if p.ParentID != w.ID || p.Kind != types.KindProject {
		t.Errorf("unexpected project %+v", p)
	}

	if _, err := f.service.CreateProject(ctx, p.ID, &types.ContainerInput{Name: "nested"}, f.alice); !errors.Is(err, apperrors.ErrContainerNotFound) {
		t.Errorf("projects cannot hold projects, got %v", err)
	}

	unlinked, err := f.store.ListUnlinkedProjects(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unlinked) != 0 {
		t.Errorf("expected the project to be linked, got %d unlinked", len(unlinked))
	}

	projects, err := f.service.ListProjects(ctx, w.ID, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != p.ID {
		t.Errorf("unexpected projects %+v", projects)
	}

	projects, err = f.service.ListProjects(ctx, w.ID, f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("bob is not a project member, got %+v", projects)
	}
}

func TestService_CreateProjectLinkFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	workspace := &types.Container{ID: "w1", Kind: types.KindWorkspace}
	members := []*types.Membership{{ContainerID: "w1", PrincipalID: "alice", Role: types.RoleAdmin}}
	project := &types.Container{ID: "p1", Kind: types.KindProject, ParentID: "w1", Name: "P", CreatedBy: "alice"}

	mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	)
	mockStorage.EXPECT().LockContainer(gomock.Any(), "w1").Return(workspace, nil)
	mockStorage.EXPECT().ListMembers(gomock.Any(), "w1").Return(members, nil)
	mockGuard.EXPECT().Check(gomock.Any(), "alice", authorization.CreateChildContainer, workspace, members).Return(nil)
	mockStorage.EXPECT().CreateContainer(gomock.Any(), gomock.Any()).Return(project, nil)
	mockStorage.EXPECT().AddMember(gomock.Any(), "p1", "alice", types.RoleAdmin).Return(nil)
	mockStorage.EXPECT().LinkChild(gomock.Any(), "w1", "p1").Return(errors.New("connection reset"))
	mockLogger.EXPECT().Errorf(gomock.Any(), "p1", "w1", gomock.Any())

	monitor := monitoring.NewNoopMonitor("test", logging.NewNoopLogger())
	svc := NewService(mockStorage, mockGuard, tracing.NewNoopTracer(), monitor, mockLogger)

	created, err := svc.CreateProject(context.Background(), "w1", &types.ContainerInput{Name: "P"}, "alice")
	if err != nil {
		t.Fatalf("a failed link must not fail creation, got %v", err)
	}

	if created.ID != "p1" {
		t.Errorf("expected project p1, got %+v", created)
	}
}

func TestService_Get(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.workspace(t, "W")
	p := f.project(t, w.ID, "P")

	for _, status := range []types.TaskStatus{types.TaskCompleted, types.TaskInProgress, types.TaskCompleted, types.TaskNotStarted} {
		if _, err := f.store.CreateTask(ctx, &types.Task{ProjectID: p.ID, Title: "t", Status: status, Priority: types.PriorityLow, CreatedBy: f.alice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := []struct {
		name        string
		kind        types.ContainerKind
		id          string
		requestedBy string
		expectedErr error
	}{
		{"workspace", types.KindWorkspace, w.ID, f.alice, nil},
		{"project", types.KindProject, p.ID, f.alice, nil},
		{"wrong kind", types.KindWorkspace, p.ID, f.alice, apperrors.ErrContainerNotFound},
		{"missing", types.KindProject, "missing", f.alice, apperrors.ErrContainerNotFound},
		{"non member", types.KindProject, p.ID, f.bob, apperrors.ErrAccessDenied},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			detail, err := f.service.Get(ctx, test.kind, test.id, test.requestedBy)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(detail.Members) != 1 {
				t.Errorf("expected 1 member, got %d", len(detail.Members))
			}

			if test.kind == types.KindWorkspace {
				if detail.Progress != nil {
					t.Errorf("workspaces carry no progress, got %+v", detail.Progress)
				}
				return
			}

			if detail.Progress == nil || detail.Progress.TotalTasks != 4 || detail.Progress.CompletedTasks != 2 || detail.Progress.Percentage != 50 {
				t.Errorf("unexpected progress %+v", detail.Progress)
			}
		})
	}
}

func TestService_ListWorkspaces(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w1 := f.workspace(t, "W1")
	w2 := f.workspace(t, "W2")
	f.project(t, w1.ID, "P")

	workspaces, err := f.service.ListWorkspaces(ctx, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(workspaces) != 2 || workspaces[0].ID != w1.ID || workspaces[1].ID != w2.ID {
		t.Errorf("unexpected workspaces %+v", workspaces)
	}

	workspaces, err = f.service.ListWorkspaces(ctx, f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(workspaces) != 0 {
		t.Errorf("expected no workspaces for bob, got %+v", workspaces)
	}
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.workspace(t, "W")

	if err := f.store.AddMember(ctx, w.ID, f.bob, types.RoleMember); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.service.Update(ctx, types.KindWorkspace, w.ID, &types.ContainerInput{Name: "X"}, f.bob); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if _, err := f.service.Update(ctx, types.KindWorkspace, w.ID, &types.ContainerInput{}, f.alice); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected %v, got %v", apperrors.ErrValidation, err)
	}

	updated, err := f.service.Update(ctx, types.KindWorkspace, w.ID, &types.ContainerInput{Name: "Renamed", Description: "d"}, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != "Renamed" || updated.Description != "d" {
		t.Errorf("unexpected container %+v", updated)
	}
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	w := f.workspace(t, "W")
	p := f.project(t, w.ID, "P")

	if err := f.store.AddMember(ctx, p.ID, f.bob, types.RoleMember); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.service.Delete(ctx, types.KindWorkspace, w.ID, f.alice); !errors.Is(err, apperrors.ErrContainerNotEmpty) {
		t.Errorf("expected %v, got %v", apperrors.ErrContainerNotEmpty, err)
	}

	if err := f.service.Delete(ctx, types.KindProject, p.ID, f.bob); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if err := f.service.Delete(ctx, types.KindProject, p.ID, f.alice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.store.GetContainer(ctx, p.ID); err == nil {
		t.Errorf("expected the project to be gone")
	}

	if err := f.service.Delete(ctx, types.KindWorkspace, w.ID, f.alice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.service.Delete(ctx, types.KindWorkspace, w.ID, f.alice); !errors.Is(err, apperrors.ErrContainerNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrContainerNotFound, err)
	}
}
