// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

var (
	errTaskNotFound    = apperrors.New(apperrors.KindNotFound, "task not found")
	errCommentNotFound = apperrors.New(apperrors.KindNotFound, "comment not found")
	errNotAssignable   = apperrors.New(apperrors.KindMemberNotFound, "assignee is not a project member")
)

type comment struct {
	Message string `validate:"required,max=2000"`
}

type Service struct {
	storage StorageInterface
	guard   GuardInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// project loads a project with its members, lock takes the project row lock.
func (s *Service) project(ctx context.Context, projectID string, lock bool) (*types.Container, []*types.Membership, error) {
	get := s.storage.GetContainer
	if lock {
		get = s.storage.LockContainer
	}

	p, err := get(ctx, projectID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, apperrors.New(apperrors.KindContainerNotFound, "project not found")
		}
		return nil, nil, fmt.Errorf("failed to get project: %w", err)
	}

	if !p.IsProject() {
		return nil, nil, apperrors.New(apperrors.KindContainerNotFound, "project not found")
	}

	members, err := s.storage.ListMembers(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}

	return p, members, nil
}

// task loads a task and its project, checking op against the project members.
func (s *Service) task(ctx context.Context, taskID, requestedBy string, op authorization.Operation, lock bool) (*types.Task, *types.Container, []*types.Membership, error) {
	t, err := s.storage.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, errTaskNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to get task: %w", err)
	}

	p, members, err := s.project(ctx, t.ProjectID, lock)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := s.guard.Check(ctx, requestedBy, op, p, members); err != nil {
		return nil, nil, nil, err
	}

	return t, p, members, nil
}

func (s *Service) record(ctx context.Context, taskID, principalID, action string) error {
	if err := s.storage.AddActivity(ctx, &types.Activity{TaskID: taskID, PrincipalID: principalID, Action: action}); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ownerOrAdmin allows the owner of a resource or an Admin of its project.
func (s *Service) ownerOrAdmin(requestedBy, owner string, members []*types.Membership, action, resource string) error {
	if requestedBy == owner {
		return nil
	}

	if role, _ := authorization.RoleOf(requestedBy, members); role == types.RoleAdmin {
		return nil
	}

	s.logger.Security().AuthzFailure(requestedBy, action+" "+resource)

	return apperrors.ErrAccessDenied
}

func isMember(principalID string, members []*types.Membership) bool {
	_, ok := authorization.RoleOf(principalID, members)
	return ok
}

func (s *Service) Create(ctx context.Context, projectID string, in *types.TaskInput, requestedBy string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.Create")
	defer span.End()

	if in == nil {
		return nil, apperrors.Validation("missing task input")
	}

	t := &types.Task{
		ProjectID:   projectID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		AssigneeID:  in.AssigneeID,
		CreatedBy:   requestedBy,
		DueDate:     in.DueDate,
	}

	if t.Status == "" {
		t.Status = types.TaskNotStarted
	}
	if t.Priority == "" {
		t.Priority = types.PriorityMedium
	}

	if err := s.validate.Struct(types.TaskInput{Title: t.Title, Description: t.Description, Status: t.Status, Priority: t.Priority}); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var created *types.Task

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		p, members, err := s.project(ctx, projectID, true)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.CreateTask, p, members); err != nil {
			return err
		}

		if t.AssigneeID != "" && !isMember(t.AssigneeID, members) {
			return errNotAssignable
		}

		created, err = s.storage.CreateTask(ctx, t)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		return s.record(ctx, created.ID, requestedBy, "Task created")
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, taskID, requestedBy string) (*types.TaskDetail, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.Get")
	defer span.End()

	var detail *types.TaskDetail

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		t, _, _, err := s.task(ctx, taskID, requestedBy, authorization.ViewContainer, false)
		if err != nil {
			return err
		}

		activity, err := s.storage.ListActivity(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to list activity: %w", err)
		}

		comments, err := s.storage.ListComments(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}

		detail = &types.TaskDetail{Task: *t, Activity: activity, Comments: comments}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID, requestedBy string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.ListByProject")
	defer span.End()

	var tasks []*types.Task

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		p, members, err := s.project(ctx, projectID, false)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.ViewContainer, p, members); err != nil {
			return err
		}

		tasks, err = s.storage.ListTasksByProject(ctx, projectID)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// ListAssigned returns the tasks assigned to the principal across every project.
func (s *Service) ListAssigned(ctx context.Context, principalID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.ListAssigned")
	defer span.End()

	tasks, err := s.storage.ListTasksByAssignee(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (s *Service) Update(ctx context.Context, taskID string, in *types.TaskUpdate, requestedBy string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.Update")
	defer span.End()

	if in == nil {
		return nil, apperrors.Validation("missing task update")
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var updated *types.Task

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		t, _, _, err := s.task(ctx, taskID, requestedBy, authorization.ModifyTask, true)
		if err != nil {
			return err
		}

		changes := applyUpdate(t, in)
		if len(changes) == 0 {
			updated = t
			return nil
		}

		updated, err = s.storage.UpdateTask(ctx, t)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errTaskNotFound
			}
			return fmt.Errorf("failed to update task: %w", err)
		}

		for _, change := range changes {
			if err := s.record(ctx, taskID, requestedBy, change); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyUpdate mutates t with the set fields of in and describes each change.
func applyUpdate(t *types.Task, in *types.TaskUpdate) []string {
	changes := make([]string, 0)

	if in.Title != nil && strings.TrimSpace(*in.Title) != t.Title {
		t.Title = strings.TrimSpace(*in.Title)
		changes = append(changes, "Title changed")
	}

	if in.Description != nil && *in.Description != t.Description {
		t.Description = *in.Description
		changes = append(changes, "Description updated")
	}

	if in.Status != nil && *in.Status != t.Status {
		t.Status = *in.Status
		changes = append(changes, "Status changed to "+string(t.Status))
	}

	if in.Priority != nil && *in.Priority != t.Priority {
		t.Priority = *in.Priority
		changes = append(changes, "Priority changed to "+string(t.Priority))
	}

	if in.DueDate != nil && (t.DueDate == nil || !in.DueDate.Equal(*t.DueDate)) {
		due := *in.DueDate
		t.DueDate = &due
		changes = append(changes, "Due date updated")
	}

	return changes
}

// Assign sets the task assignee, an empty assignee clears it.
func (s *Service) Assign(ctx context.Context, taskID, assigneeID, requestedBy string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.Assign")
	defer span.End()

	var updated *types.Task

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		t, _, members, err := s.task(ctx, taskID, requestedBy, authorization.ModifyTask, true)
		if err != nil {
			return err
		}

		action := "Unassigned"
		if assigneeID != "" {
			var assignee *types.Membership
			for _, m := range members {
				if m.PrincipalID == assigneeID {
					assignee = m
				}
			}
			if assignee == nil {
				return errNotAssignable
			}
			action = "Assigned to " + assignee.Name
		}

		t.AssigneeID = assigneeID

		updated, err = s.storage.UpdateTask(ctx, t)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errTaskNotFound
			}
			return fmt.Errorf("failed to assign task: %w", err)
		}

		return s.record(ctx, taskID, requestedBy, action)
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the task, allowed to its creator and project Admins.
func (s *Service) Delete(ctx context.Context, taskID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "task.Service.Delete")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		t, _, members, err := s.task(ctx, taskID, requestedBy, authorization.ModifyTask, true)
		if err != nil {
			return err
		}

		if err := s.ownerOrAdmin(requestedBy, t.CreatedBy, members, "delete_task", "task:"+t.ID); err != nil {
			return err
		}

		if err := s.storage.DeleteTask(ctx, taskID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errTaskNotFound
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}

		return nil
	})
}

func (s *Service) AddComment(ctx context.Context, taskID, message, requestedBy string) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.AddComment")
	defer span.End()

	message = strings.TrimSpace(message)

	if err := s.validate.Struct(comment{Message: message}); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var created *types.Comment

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, _, _, err := s.task(ctx, taskID, requestedBy, authorization.ModifyTask, false); err != nil {
			return err
		}

		var err error
		created, err = s.storage.CreateComment(ctx, &types.Comment{
			TaskID:   taskID,
			AuthorID: requestedBy,
			Message:  message,
			Status:   types.CommentPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		return s.record(ctx, taskID, requestedBy, "Added comment")
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) SetCommentStatus(ctx context.Context, taskID, commentID string, status types.CommentStatus, requestedBy string) (*types.Comment, error) {
	ctx, span := s.tracer.Start(ctx, "task.Service.SetCommentStatus")
	defer span.End()

	if status != types.CommentPending && status != types.CommentResolved {
		return nil, apperrors.Validation(fmt.Sprintf("invalid comment status %q", status))
	}

	var updated *types.Comment

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, _, _, err := s.task(ctx, taskID, requestedBy, authorization.ModifyTask, false); err != nil {
			return err
		}

		var err error
		updated, err = s.storage.UpdateCommentStatus(ctx, taskID, commentID, status)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errCommentNotFound
			}
			return fmt.Errorf("failed to update comment: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteComment removes the comment, allowed to its author and project Admins.
func (s *Service) DeleteComment(ctx context.Context, taskID, commentID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "task.Service.DeleteComment")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		_, _, members, err := s.task(ctx, taskID, requestedBy, authorization.ModifyTask, false)
		if err != nil {
			return err
		}

		c, err := s.storage.GetComment(ctx, taskID, commentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errCommentNotFound
			}
			return fmt.Errorf("failed to get comment: %w", err)
		}

		if err := s.ownerOrAdmin(requestedBy, c.AuthorID, members, "delete_comment", "comment:"+c.ID); err != nil {
			return err
		}

		if err := s.storage.DeleteComment(ctx, taskID, commentID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return errCommentNotFound
			}
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		return nil
	})
}

func NewService(
	storage StorageInterface,
	guard GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.guard = guard
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
