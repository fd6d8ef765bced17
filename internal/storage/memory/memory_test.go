// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, *types.Principal) {
	t.Helper()

	s := NewStorage(logging.NewNoopLogger())

	p, err := s.CreatePrincipal(context.Background(), &types.Principal{Email: "Alice@Example.com", Name: "Alice", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("unexpected error creating principal: %v", err)
	}

	return s, p
}

func TestCreatePrincipalDuplicateEmail(t *testing.T) {
	s, p := newTestStorage(t)

	if p.Email != "alice@example.com" {
		t.Errorf("expected lower cased email, got %s", p.Email)
	}

	_, err := s.CreatePrincipal(context.Background(), &types.Principal{Email: "ALICE@example.com", Name: "Other"})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(ctx context.Context) error {
		c, err := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
		if err != nil {
			return err
		}
		if err := s.AddMember(ctx, c.ID, p.ID, types.RoleAdmin); err != nil {
			return err
		}
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	containers, _ := s.ListContainersByPrincipal(ctx, p.ID, "")
	if len(containers) != 0 {
		t.Errorf("expected rollback to discard the container, got %d", len(containers))
	}
}

func TestWithTxNested(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(ctx context.Context) error {
		return s.WithTx(ctx, func(ctx context.Context) error {
			_, err := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
			return err
		})
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	func() {
		defer func() { _ = recover() }()

		_ = s.WithTx(ctx, func(ctx context.Context) error {
			if _, err := s.UpdatePrincipal(ctx, p.ID, "Changed", ""); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	got, err := s.GetPrincipalByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("expected name to be rolled back, got %s", got.Name)
	}
}

func TestAddMemberConstraints(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	c, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})

	tests := []struct {
		name        string
		containerID string
		principalID string
		expected    error
	}{
		{"first insert", c.ID, p.ID, nil},
		{"duplicate", c.ID, p.ID, storage.ErrDuplicateKey},
		{"missing container", "missing", p.ID, storage.ErrForeignKeyViolation},
		{"missing principal", c.ID, "missing", storage.ErrForeignKeyViolation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := s.AddMember(ctx, test.containerID, test.principalID, types.RoleAdmin)
			if !errors.Is(err, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, err)
			}
		})
	}
}

func TestDeleteContainer(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
	pr, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindProject, Name: "P", CreatedBy: p.ID, ParentID: w.ID})
	_ = s.AddMember(ctx, pr.ID, p.ID, types.RoleAdmin)
	_ = s.LinkChild(ctx, w.ID, pr.ID)

	task, err := s.CreateTask(ctx, &types.Task{ProjectID: pr.ID, Title: "T", CreatedBy: p.ID, Status: types.TaskNotStarted, Priority: types.PriorityMedium})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteContainer(ctx, w.ID); !errors.Is(err, storage.ErrForeignKeyViolation) {
		t.Errorf("expected workspace with projects to be restricted, got %v", err)
	}

	if err := s.DeleteContainer(ctx, pr.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.GetTask(ctx, task.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected task to be cascaded, got %v", err)
	}

	if projects, _ := s.ListProjectsByWorkspace(ctx, w.ID, p.ID); len(projects) != 0 {
		t.Errorf("expected link to be cascaded, got %d projects", len(projects))
	}

	if err := s.DeleteContainer(ctx, w.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := s.DeleteContainer(ctx, w.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListUnlinkedProjects(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
	pr, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindProject, Name: "P", CreatedBy: p.ID, ParentID: w.ID})

	unlinked, _ := s.ListUnlinkedProjects(ctx)
	if len(unlinked) != 1 || unlinked[0].ID != pr.ID {
		t.Fatalf("expected project to be unlinked, got %v", unlinked)
	}

	for i := 0; i < 2; i++ {
		if err := s.LinkChild(ctx, w.ID, pr.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if unlinked, _ := s.ListUnlinkedProjects(ctx); len(unlinked) != 0 {
		t.Errorf("expected no unlinked projects, got %d", len(unlinked))
	}
}

func TestInvites(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()
	now := time.Now()

	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})

	_, _ = s.CreateInvite(ctx, &types.Invite{Token: "live", ContainerID: w.ID, Email: "Bob@example.com", InvitedBy: p.ID, ExpiresAt: now.Add(time.Hour)})
	_, _ = s.CreateInvite(ctx, &types.Invite{Token: "stale", ContainerID: w.ID, Email: "bob@example.com", InvitedBy: p.ID, ExpiresAt: now.Add(-time.Hour)})

	if _, err := s.CreateInvite(ctx, &types.Invite{Token: "live", ContainerID: w.ID, Email: "x@example.com", InvitedBy: p.ID, ExpiresAt: now}); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	pending, _ := s.ListInvitesByEmail(ctx, "BOB@example.com", now)
	if len(pending) != 1 || pending[0].Token != "live" || pending[0].ContainerName != "W" {
		t.Errorf("expected only the live invite, got %v", pending)
	}

	n, _ := s.DeleteExpiredInvites(ctx, now)
	if n != 1 {
		t.Errorf("expected 1 pruned invite, got %d", n)
	}

	if err := s.DeleteInvite(ctx, "other", "live"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign container, got %v", err)
	}
}

func TestConsumeInviteConcurrent(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
	_, _ = s.CreateInvite(ctx, &types.Invite{Token: "t", ContainerID: w.ID, Email: "b@example.com", InvitedBy: p.ID, ExpiresAt: time.Now().Add(time.Hour)})

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ConsumeInvite(ctx, w.ID, "t"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if successes != 1 {
		t.Errorf("expected exactly one successful consume, got %d", successes)
	}
}

func TestConsumeInviteScopedToContainer(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
	other, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "O", CreatedBy: p.ID})
	_, _ = s.CreateInvite(ctx, &types.Invite{Token: "t", ContainerID: w.ID, Email: "b@example.com", InvitedBy: p.ID, ExpiresAt: time.Now().Add(time.Hour)})

	got, err := s.GetInvite(ctx, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ContainerID != w.ID {
		t.Errorf("expected container %s, got %s", w.ID, got.ContainerID)
	}

	if _, err := s.ConsumeInvite(ctx, other.ID, "t"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign container, got %v", err)
	}

	if _, err := s.ConsumeInvite(ctx, w.ID, "t"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.GetInvite(ctx, "t"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after consume, got %v", err)
	}
}

func TestTasksAndComments(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: p.ID})
	pr, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindProject, Name: "P", CreatedBy: p.ID, ParentID: w.ID})

	t1, _ := s.CreateTask(ctx, &types.Task{ProjectID: pr.ID, Title: "a", CreatedBy: p.ID, Status: types.TaskCompleted})
	_, _ = s.CreateTask(ctx, &types.Task{ProjectID: pr.ID, Title: "b", CreatedBy: p.ID, Status: types.TaskInProgress})

	total, completed, _ := s.CountTasks(ctx, pr.ID)
	if total != 2 || completed != 1 {
		t.Errorf("expected 2/1, got %d/%d", total, completed)
	}

	c1, _ := s.CreateComment(ctx, &types.Comment{TaskID: t1.ID, AuthorID: p.ID, Message: "one"})
	c2, _ := s.CreateComment(ctx, &types.Comment{TaskID: t1.ID, AuthorID: p.ID, Message: "two"})

	if c1.Status != types.CommentPending {
		t.Errorf("expected default status Pending, got %s", c1.Status)
	}

	if _, err := s.UpdateCommentStatus(ctx, t1.ID, c2.ID, types.CommentResolved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteComment(ctx, t1.ID, c1.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comments, _ := s.ListComments(ctx, t1.ID)
	if len(comments) != 1 || comments[0].ID != c2.ID || comments[0].Status != types.CommentResolved {
		t.Errorf("unexpected comments %v", comments)
	}

	if _, err := s.GetComment(ctx, "other", c2.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePrincipal(t *testing.T) {
	s, p := newTestStorage(t)
	ctx := context.Background()

	bob, _ := s.CreatePrincipal(ctx, &types.Principal{Email: "bob@example.com", Name: "Bob"})
	w, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindWorkspace, Name: "W", CreatedBy: bob.ID})
	pr, _ := s.CreateContainer(ctx, &types.Container{Kind: types.KindProject, Name: "P", CreatedBy: p.ID, ParentID: w.ID})
	_ = s.AddMember(ctx, w.ID, p.ID, types.RoleAdmin)
	_ = s.AddMember(ctx, w.ID, bob.ID, types.RoleMember)
	_ = s.AddMember(ctx, pr.ID, bob.ID, types.RoleAdmin)

	task, _ := s.CreateTask(ctx, &types.Task{ProjectID: pr.ID, Title: "a", CreatedBy: bob.ID, AssigneeID: bob.ID, Status: types.TaskInProgress})
	comment, _ := s.CreateComment(ctx, &types.Comment{TaskID: task.ID, AuthorID: bob.ID, Message: "one"})

	memberships, err := s.ListMembershipsByPrincipal(ctx, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memberships) != 2 {
		t.Fatalf("expected 2 memberships, got %d", len(memberships))
	}

	if err := s.DeletePrincipal(ctx, bob.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeletePrincipal(ctx, bob.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	if _, err := s.GetPrincipalByEmail(ctx, "bob@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected email to be released, got %v", err)
	}

	if memberships, _ := s.ListMembershipsByPrincipal(ctx, bob.ID); len(memberships) != 0 {
		t.Errorf("expected memberships to cascade, got %d", len(memberships))
	}

	if members, _ := s.ListMembers(ctx, w.ID); len(members) != 1 || members[0].PrincipalID != p.ID {
		t.Errorf("expected only the remaining admin, got %v", members)
	}

	if c, _ := s.GetContainer(ctx, w.ID); c == nil || c.CreatedBy != "" {
		t.Errorf("expected container creator to be cleared, got %v", c)
	}

	if got, _ := s.GetTask(ctx, task.ID); got == nil || got.CreatedBy != "" || got.AssigneeID != "" {
		t.Errorf("expected task author and assignee to be cleared, got %v", got)
	}

	if got, _ := s.GetComment(ctx, task.ID, comment.ID); got == nil || got.AuthorID != "" {
		t.Errorf("expected comment author to be cleared, got %v", got)
	}
}
