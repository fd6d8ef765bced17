// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var (
	taskFields    = []string{"id", "project_id", "title", "description", "status", "priority", "assignee_id", "created_by", "due_date", "created_at", "updated_at"}
	commentFields = []string{"id", "task_id", "author_id", "message", "status", "created_at", "updated_at"}
)

func scanTask(row scanner) (*types.Task, error) {
	var t types.Task
	var assignee, createdBy sql.NullString

	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &assignee, &createdBy, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	t.AssigneeID = fromNull(assignee)
	t.CreatedBy = fromNull(createdBy)

	return &t, nil
}

func scanComment(row scanner) (*types.Comment, error) {
	var c types.Comment
	var author sql.NullString

	if err := row.Scan(&c.ID, &c.TaskID, &author, &c.Message, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.AuthorID = fromNull(author)

	return &c, nil
}

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tasks").
		Columns("id", "project_id", "title", "description", "status", "priority", "assignee_id", "created_by", "due_date").
		Values(id, t.ProjectID, t.Title, t.Description, string(t.Status), string(t.Priority), nullable(t.AssigneeID), t.CreatedBy, t.DueDate).
		Suffix("RETURNING " + strings.Join(taskFields, ", ")).
		QueryRowContext(ctx)

	created, err := scanTask(row)
	if err != nil {
		return nil, mapError(err, "failed to insert task")
	}

	return created, nil
}

func (s *Storage) GetTask(ctx context.Context, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTask")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(taskFields...).
		From("tasks").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	t, err := scanTask(row)
	if err != nil {
		return nil, mapError(err, "failed to get task")
	}

	return t, nil
}

func (s *Storage) ListTasksByProject(ctx context.Context, projectID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasksByProject")
	defer span.End()

	return s.queryTasks(ctx, s.db.Statement(ctx).
		Select(taskFields...).
		From("tasks").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at"))
}

// ListTasksByAssignee lists the tasks assigned to the principal across all projects
func (s *Storage) ListTasksByAssignee(ctx context.Context, principalID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasksByAssignee")
	defer span.End()

	return s.queryTasks(ctx, s.db.Statement(ctx).
		Select(taskFields...).
		From("tasks").
		Where(sq.Eq{"assignee_id": principalID}).
		OrderBy("created_at"))
}

func (s *Storage) queryTasks(ctx context.Context, query sq.SelectBuilder) ([]*types.Task, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list tasks")
	}
	defer rows.Close()

	tasks := make([]*types.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

func (s *Storage) UpdateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTask")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("tasks").
		SetMap(map[string]interface{}{
			"title":       t.Title,
			"description": t.Description,
			"status":      string(t.Status),
			"priority":    string(t.Priority),
			"assignee_id": nullable(t.AssigneeID),
			"due_date":    t.DueDate,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING " + strings.Join(taskFields, ", ")).
		QueryRowContext(ctx)

	updated, err := scanTask(row)
	if err != nil {
		return nil, mapError(err, "failed to update task")
	}

	return updated, nil
}

func (s *Storage) DeleteTask(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTask")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tasks").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to delete task")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

// CountTasks returns the total and completed task counts of a project
func (s *Storage) CountTasks(ctx context.Context, projectID string) (int, int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTasks")
	defer span.End()

	var total, completed int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		Column(sq.Expr("COUNT(*) FILTER (WHERE status = ?)", string(types.TaskCompleted))).
		From("tasks").
		Where(sq.Eq{"project_id": projectID}).
		QueryRowContext(ctx).
		Scan(&total, &completed)
	if err != nil {
		return 0, 0, mapError(err, "failed to count tasks")
	}

	return total, completed, nil
}

func (s *Storage) AddActivity(ctx context.Context, a *types.Activity) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddActivity")
	defer span.End()

	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("task_activity").
		Columns("id", "task_id", "principal_id", "action").
		Values(id, a.TaskID, a.PrincipalID, a.Action).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to record activity")
	}

	return nil
}

func (s *Storage) ListActivity(ctx context.Context, taskID string) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivity")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "task_id", "principal_id", "action", "created_at").
		From("task_activity").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list activity")
	}
	defer rows.Close()

	activity := make([]*types.Activity, 0)
	for rows.Next() {
		var a types.Activity
		var principal sql.NullString
		if err := rows.Scan(&a.ID, &a.TaskID, &principal, &a.Action, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.PrincipalID = fromNull(principal)
		activity = append(activity, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activity, nil
}

func (s *Storage) CreateComment(ctx context.Context, c *types.Comment) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateComment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("task_comments").
		Columns("id", "task_id", "author_id", "message", "status").
		Values(id, c.TaskID, c.AuthorID, c.Message, string(c.Status)).
		Suffix("RETURNING " + strings.Join(commentFields, ", ")).
		QueryRowContext(ctx)

	created, err := scanComment(row)
	if err != nil {
		return nil, mapError(err, "failed to insert comment")
	}

	return created, nil
}

func (s *Storage) GetComment(ctx context.Context, taskID, commentID string) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetComment")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(commentFields...).
		From("task_comments").
		Where(sq.Eq{"id": commentID, "task_id": taskID}).
		QueryRowContext(ctx)

	c, err := scanComment(row)
	if err != nil {
		return nil, mapError(err, "failed to get comment")
	}

	return c, nil
}

func (s *Storage) UpdateCommentStatus(ctx context.Context, taskID, commentID string, status types.CommentStatus) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCommentStatus")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("task_comments").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": commentID, "task_id": taskID}).
		Suffix("RETURNING " + strings.Join(commentFields, ", ")).
		QueryRowContext(ctx)

	c, err := scanComment(row)
	if err != nil {
		return nil, mapError(err, "failed to update comment")
	}

	return c, nil
}

func (s *Storage) DeleteComment(ctx context.Context, taskID, commentID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteComment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("task_comments").
		Where(sq.Eq{"id": commentID, "task_id": taskID}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to delete comment")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListComments(ctx context.Context, taskID string) ([]*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListComments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(commentFields...).
		From("task_comments").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list comments")
	}
	defer rows.Close()

	comments := make([]*types.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return comments, nil
}
