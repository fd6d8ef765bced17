// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"

	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

func (s *Storage) checkTaskRefs(t *types.Task) error {
	if _, ok := s.state.containers[t.ProjectID]; !ok {
		return storage.ErrForeignKeyViolation
	}
	if _, ok := s.state.principals[t.CreatedBy]; !ok {
		return storage.ErrForeignKeyViolation
	}
	if t.AssigneeID != "" {
		if _, ok := s.state.principals[t.AssigneeID]; !ok {
			return storage.ErrForeignKeyViolation
		}
	}
	return nil
}

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	defer s.lock(ctx)()

	if err := s.checkTaskRefs(t); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := *t
	created.ID = id
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt

	s.state.tasks[id] = row[types.Task]{v: created, seq: s.state.next()}

	return &created, nil
}

func (s *Storage) GetTask(ctx context.Context, id string) (*types.Task, error) {
	defer s.lock(ctx)()

	r, ok := s.state.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	t := r.v
	return &t, nil
}

func (s *Storage) ListTasksByProject(ctx context.Context, projectID string) ([]*types.Task, error) {
	defer s.lock(ctx)()

	rows := make([]row[types.Task], 0)
	for _, r := range s.state.tasks {
		if r.v.ProjectID == projectID {
			rows = append(rows, r)
		}
	}

	tasks := make([]*types.Task, 0, len(rows))
	for _, r := range sorted(rows) {
		t := r.v
		tasks = append(tasks, &t)
	}

	return tasks, nil
}

func (s *Storage) ListTasksByAssignee(ctx context.Context, principalID string) ([]*types.Task, error) {
	defer s.lock(ctx)()

	rows := make([]row[types.Task], 0)
	for _, r := range s.state.tasks {
		if r.v.AssigneeID == principalID {
			rows = append(rows, r)
		}
	}

	tasks := make([]*types.Task, 0, len(rows))
	for _, r := range sorted(rows) {
		t := r.v
		tasks = append(tasks, &t)
	}

	return tasks, nil
}

func (s *Storage) UpdateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	defer s.lock(ctx)()

	r, ok := s.state.tasks[t.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if t.AssigneeID != "" {
		if _, ok := s.state.principals[t.AssigneeID]; !ok {
			return nil, storage.ErrForeignKeyViolation
		}
	}

	r.v.Title = t.Title
	r.v.Description = t.Description
	r.v.Status = t.Status
	r.v.Priority = t.Priority
	r.v.AssigneeID = t.AssigneeID
	r.v.DueDate = t.DueDate
	r.v.UpdatedAt = s.now()
	s.state.tasks[t.ID] = r

	updated := r.v
	return &updated, nil
}

func (s *Storage) DeleteTask(ctx context.Context, id string) error {
	defer s.lock(ctx)()

	if _, ok := s.state.tasks[id]; !ok {
		return storage.ErrNotFound
	}

	s.deleteTask(id)

	return nil
}

func (s *Storage) deleteTask(id string) {
	delete(s.state.tasks, id)
	delete(s.state.activity, id)
	delete(s.state.comments, id)
}

// clearTaskAuthor unsets the principal on tasks, activity and comments, as ON DELETE SET NULL does.
func (s *Storage) clearTaskAuthor(principalID string) {
	for id, r := range s.state.tasks {
		changed := false
		if r.v.CreatedBy == principalID {
			r.v.CreatedBy = ""
			changed = true
		}
		if r.v.AssigneeID == principalID {
			r.v.AssigneeID = ""
			changed = true
		}
		if changed {
			s.state.tasks[id] = r
		}
	}

	for _, entries := range s.state.activity {
		for i := range entries {
			if entries[i].PrincipalID == principalID {
				entries[i].PrincipalID = ""
			}
		}
	}

	for _, comments := range s.state.comments {
		for i := range comments {
			if comments[i].v.AuthorID == principalID {
				comments[i].v.AuthorID = ""
			}
		}
	}
}

func (s *Storage) CountTasks(ctx context.Context, projectID string) (int, int, error) {
	defer s.lock(ctx)()

	total, completed := 0, 0
	for _, r := range s.state.tasks {
		if r.v.ProjectID != projectID {
			continue
		}
		total++
		if r.v.Status == types.TaskCompleted {
			completed++
		}
	}

	return total, completed, nil
}

func (s *Storage) AddActivity(ctx context.Context, a *types.Activity) error {
	defer s.lock(ctx)()

	if _, ok := s.state.tasks[a.TaskID]; !ok {
		return storage.ErrForeignKeyViolation
	}

	id, err := newID()
	if err != nil {
		return err
	}

	entry := *a
	entry.ID = id
	entry.CreatedAt = s.now()

	s.state.activity[a.TaskID] = append(s.state.activity[a.TaskID], entry)

	return nil
}

func (s *Storage) ListActivity(ctx context.Context, taskID string) ([]*types.Activity, error) {
	defer s.lock(ctx)()

	activity := make([]*types.Activity, 0, len(s.state.activity[taskID]))
	for _, a := range s.state.activity[taskID] {
		entry := a
		activity = append(activity, &entry)
	}

	return activity, nil
}

func (s *Storage) CreateComment(ctx context.Context, c *types.Comment) (*types.Comment, error) {
	defer s.lock(ctx)()

	if _, ok := s.state.tasks[c.TaskID]; !ok {
		return nil, storage.ErrForeignKeyViolation
	}
	if _, ok := s.state.principals[c.AuthorID]; !ok {
		return nil, storage.ErrForeignKeyViolation
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := *c
	created.ID = id
	if created.Status == "" {
		created.Status = types.CommentPending
	}
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt

	s.state.comments[c.TaskID] = append(s.state.comments[c.TaskID], row[types.Comment]{v: created, seq: s.state.next()})

	return &created, nil
}

func (s *Storage) findComment(taskID, commentID string) int {
	for i, r := range s.state.comments[taskID] {
		if r.v.ID == commentID {
			return i
		}
	}
	return -1
}

func (s *Storage) GetComment(ctx context.Context, taskID, commentID string) (*types.Comment, error) {
	defer s.lock(ctx)()

	idx := s.findComment(taskID, commentID)
	if idx < 0 {
		return nil, storage.ErrNotFound
	}

	c := s.state.comments[taskID][idx].v
	return &c, nil
}

func (s *Storage) UpdateCommentStatus(ctx context.Context, taskID, commentID string, status types.CommentStatus) (*types.Comment, error) {
	defer s.lock(ctx)()

	idx := s.findComment(taskID, commentID)
	if idx < 0 {
		return nil, storage.ErrNotFound
	}

	r := s.state.comments[taskID][idx]
	r.v.Status = status
	r.v.UpdatedAt = s.now()
	s.state.comments[taskID][idx] = r

	c := r.v
	return &c, nil
}

func (s *Storage) DeleteComment(ctx context.Context, taskID, commentID string) error {
	defer s.lock(ctx)()

	idx := s.findComment(taskID, commentID)
	if idx < 0 {
		return storage.ErrNotFound
	}

	comments := s.state.comments[taskID]
	s.state.comments[taskID] = append(comments[:idx:idx], comments[idx+1:]...)

	return nil
}

func (s *Storage) ListComments(ctx context.Context, taskID string) ([]*types.Comment, error) {
	defer s.lock(ctx)()

	comments := make([]*types.Comment, 0, len(s.state.comments[taskID]))
	for _, r := range s.state.comments[taskID] {
		c := r.v
		comments = append(comments, &c)
	}

	return comments, nil
}
