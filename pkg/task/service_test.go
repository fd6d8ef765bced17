// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage/memory"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package task -destination ./mock_task.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package task -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

type fixture struct {
	store   *memory.Storage
	service *Service

	alice, bob, carol string
	workspace         string
	project           string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	f := new(fixture)
	f.store = memory.NewStorage(logger)
	f.service = NewService(f.store, authorization.NewGuard(tracer, monitor, logger), tracer, monitor, logger)

	for _, p := range []struct {
		id   *string
		name string
	}{{&f.alice, "alice"}, {&f.bob, "bob"}, {&f.carol, "carol"}} {
		created, err := f.store.CreatePrincipal(ctx, &types.Principal{Email: p.name + "@example.com", Name: p.name})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		*p.id = created.ID
	}

	w, err := f.store.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: f.alice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.workspace = w.ID

	p, err := f.store.CreateContainer(ctx, &types.Container{Kind: types.KindProject, Name: "P", ParentID: w.ID, CreatedBy: f.alice})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.project = p.ID

	for _, m := range []struct {
		container, principal string
		role                 types.Role
	}{{w.ID, f.alice, types.RoleAdmin}, {p.ID, f.alice, types.RoleAdmin}, {p.ID, f.bob, types.RoleMember}} {
		if err := f.store.AddMember(ctx, m.container, m.principal, m.role); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	return f
}

func (f *fixture) task(t *testing.T, title, requestedBy string) *types.Task {
	t.Helper()

	created, err := f.service.Create(context.Background(), f.project, &types.TaskInput{Title: title}, requestedBy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return created
}

func (f *fixture) actions(t *testing.T, taskID string) []string {
	t.Helper()

	activity, err := f.store.ListActivity(context.Background(), taskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	actions := make([]string, 0, len(activity))
	for _, a := range activity {
		actions = append(actions, a.Action)
	}
	return actions
}

func TestService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		projectID   string
		input       *types.TaskInput
		requestedBy string
		expectedErr error
	}{
		{"member creates", f.project, &types.TaskInput{Title: " Write docs "}, f.bob, nil},
		{"assigned to member", f.project, &types.TaskInput{Title: "Review", AssigneeID: f.bob, Priority: types.PriorityHigh}, f.alice, nil},
		{"outsider", f.project, &types.TaskInput{Title: "x"}, f.carol, apperrors.ErrAccessDenied},
		{"unknown project", "missing", &types.TaskInput{Title: "x"}, f.alice, apperrors.ErrContainerNotFound},
		{"workspace is not a project", f.workspace, &types.TaskInput{Title: "x"}, f.alice, apperrors.ErrContainerNotFound},
		{"empty title", f.project, &types.TaskInput{Title: "  "}, f.alice, apperrors.ErrValidation},
		{"bad status", f.project, &types.TaskInput{Title: "x", Status: "Done"}, f.alice, apperrors.ErrValidation},
		{"assignee outside project", f.project, &types.TaskInput{Title: "x", AssigneeID: f.carol}, f.alice, apperrors.ErrMemberNotFound},
		{"missing input", f.project, nil, f.alice, apperrors.ErrValidation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			created, err := f.service.Create(ctx, test.projectID, test.input, test.requestedBy)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if created.Status != types.TaskNotStarted {
				t.Errorf("expected default status, got %q", created.Status)
			}

			if test.input.Priority == "" && created.Priority != types.PriorityMedium {
				t.Errorf("expected default priority, got %q", created.Priority)
			}

			if created.CreatedBy != test.requestedBy || created.ProjectID != f.project {
				t.Errorf("unexpected task %+v", created)
			}

			if actions := f.actions(t, created.ID); len(actions) != 1 || actions[0] != "Task created" {
				t.Errorf("unexpected activity %v", actions)
			}
		})
	}
}

func TestService_GetAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.task(t, "first", f.alice)
	f.task(t, "second", f.bob)

	if _, err := f.service.AddComment(ctx, first.ID, "looks good", f.bob); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	detail, err := f.service.Get(ctx, first.ID, f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Title != "first" || len(detail.Comments) != 1 || len(detail.Activity) != 2 {
		t.Errorf("unexpected detail %+v", detail)
	}

	if _, err := f.service.Get(ctx, first.ID, f.carol); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if _, err := f.service.Get(ctx, "missing", f.alice); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrNotFound, err)
	}

	tasks, err := f.service.ListByProject(ctx, f.project, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 2 || tasks[0].ID != first.ID {
		t.Errorf("unexpected tasks %+v", tasks)
	}

	if _, err := f.service.ListByProject(ctx, f.project, f.carol); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.task(t, "task", f.alice)

	completed := types.TaskCompleted
	high := types.PriorityHigh
	bogus := types.TaskStatus("Done")
	same := "task"
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	if _, err := f.service.Update(ctx, created.ID, &types.TaskUpdate{Status: &completed}, f.carol); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if _, err := f.service.Update(ctx, created.ID, &types.TaskUpdate{Status: &bogus}, f.bob); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected %v, got %v", apperrors.ErrValidation, err)
	}

	updated, err := f.service.Update(ctx, created.ID, &types.TaskUpdate{Status: &completed, Priority: &high, DueDate: &due}, f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != completed || updated.Priority != high || updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("unexpected task %+v", updated)
	}

	if _, err := f.service.Update(ctx, created.ID, &types.TaskUpdate{Title: &same}, f.bob); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"Task created", "Status changed to Completed", "Priority changed to High", "Due date updated"}
	actions := f.actions(t, created.ID)
	if len(actions) != len(expected) {
		t.Fatalf("expected activity %v, got %v", expected, actions)
	}
	for i := range expected {
		if actions[i] != expected[i] {
			t.Errorf("expected activity %v, got %v", expected, actions)
		}
	}
}

func TestService_Assign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.task(t, "task", f.alice)

	if _, err := f.service.Assign(ctx, created.ID, f.carol, f.alice); !errors.Is(err, apperrors.ErrMemberNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrMemberNotFound, err)
	}

	assigned, err := f.service.Assign(ctx, created.ID, f.bob, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assigned.AssigneeID != f.bob {
		t.Errorf("expected assignee %s, got %s", f.bob, assigned.AssigneeID)
	}

	tasks, err := f.service.ListAssigned(ctx, f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Errorf("unexpected assigned tasks %+v", tasks)
	}

	cleared, err := f.service.Assign(ctx, created.ID, "", f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared.AssigneeID != "" {
		t.Errorf("expected no assignee, got %s", cleared.AssigneeID)
	}

	actions := f.actions(t, created.ID)
	if len(actions) != 3 || actions[1] != "Assigned to bob" || actions[2] != "Unassigned" {
		t.Errorf("unexpected activity %v", actions)
	}
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	byAlice := f.task(t, "alice's", f.alice)
	byBob := f.task(t, "bob's", f.bob)
	another := f.task(t, "bob's too", f.bob)

	tests := []struct {
		name        string
		taskID      string
		requestedBy string
		expectedErr error
	}{
		{"member cannot delete others", byAlice.ID, f.bob, apperrors.ErrAccessDenied},
		{"outsider", byBob.ID, f.carol, apperrors.ErrAccessDenied},
		{"creator deletes", byBob.ID, f.bob, nil},
		{"admin deletes", another.ID, f.alice, nil},
		{"already gone", byBob.ID, f.bob, apperrors.ErrNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := f.service.Delete(ctx, test.taskID, test.requestedBy)
			if !errors.Is(err, test.expectedErr) {
				t.Errorf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestService_Comments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.task(t, "task", f.alice)

	if _, err := f.service.AddComment(ctx, created.ID, "hi", f.carol); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if _, err := f.service.AddComment(ctx, created.ID, "   ", f.bob); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected %v, got %v", apperrors.ErrValidation, err)
	}

	fromBob, err := f.service.AddComment(ctx, created.ID, "needs tests", f.bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromBob.Status != types.CommentPending {
		t.Errorf("expected a pending comment, got %q", fromBob.Status)
	}

	fromAlice, err := f.service.AddComment(ctx, created.ID, "agreed", f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resolved, err := f.service.SetCommentStatus(ctx, created.ID, fromBob.ID, types.CommentResolved, f.alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Status != types.CommentResolved {
		t.Errorf("expected a resolved comment, got %q", resolved.Status)
	}

	if _, err := f.service.SetCommentStatus(ctx, created.ID, fromBob.ID, "Closed", f.alice); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected %v, got %v", apperrors.ErrValidation, err)
	}

	if _, err := f.service.SetCommentStatus(ctx, created.ID, "missing", types.CommentResolved, f.alice); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrNotFound, err)
	}

	if err := f.service.DeleteComment(ctx, created.ID, fromAlice.ID, f.bob); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}

	if err := f.service.DeleteComment(ctx, created.ID, fromBob.ID, f.alice); err != nil {
		t.Errorf("admins may delete any comment, got %v", err)
	}

	if err := f.service.DeleteComment(ctx, created.ID, fromBob.ID, f.bob); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected %v, got %v", apperrors.ErrNotFound, err)
	}

	comments, err := f.store.ListComments(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != fromAlice.ID {
		t.Errorf("unexpected comments %+v", comments)
	}
}

func TestService_DeleteDeniedIsAudited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockGuard := NewMockGuardInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	project := &types.Container{ID: "p1", Kind: types.KindProject}
	members := []*types.Membership{
		{ContainerID: "p1", PrincipalID: "alice", Role: types.RoleAdmin},
		{ContainerID: "p1", PrincipalID: "bob", Role: types.RoleMember},
	}

	mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	)
	mockStorage.EXPECT().GetTask(gomock.Any(), "t1").Return(&types.Task{ID: "t1", ProjectID: "p1", CreatedBy: "alice"}, nil)
	mockStorage.EXPECT().LockContainer(gomock.Any(), "p1").Return(project, nil)
	mockStorage.EXPECT().ListMembers(gomock.Any(), "p1").Return(members, nil)
	mockGuard.EXPECT().Check(gomock.Any(), "bob", authorization.ModifyTask, project, members).Return(nil)
	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthzFailure("bob", "delete_task task:t1")

	monitor := monitoring.NewNoopMonitor("test", logging.NewNoopLogger())
	svc := NewService(mockStorage, mockGuard, tracing.NewNoopTracer(), monitor, mockLogger)

	if err := svc.Delete(context.Background(), "t1", "bob"); !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected %v, got %v", apperrors.ErrAccessDenied, err)
	}
}
