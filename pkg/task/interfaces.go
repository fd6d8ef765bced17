// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"context"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, projectID string, in *types.TaskInput, requestedBy string) (*types.Task, error)
	Get(ctx context.Context, taskID, requestedBy string) (*types.TaskDetail, error)
	ListByProject(ctx context.Context, projectID, requestedBy string) ([]*types.Task, error)
	ListAssigned(ctx context.Context, principalID string) ([]*types.Task, error)
	Update(ctx context.Context, taskID string, in *types.TaskUpdate, requestedBy string) (*types.Task, error)
	Assign(ctx context.Context, taskID, assigneeID, requestedBy string) (*types.Task, error)
	Delete(ctx context.Context, taskID, requestedBy string) error
	AddComment(ctx context.Context, taskID, message, requestedBy string) (*types.Comment, error)
	SetCommentStatus(ctx context.Context, taskID, commentID string, status types.CommentStatus, requestedBy string) (*types.Comment, error)
	DeleteComment(ctx context.Context, taskID, commentID, requestedBy string) error
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetContainer(ctx context.Context, id string) (*types.Container, error)
	LockContainer(ctx context.Context, id string) (*types.Container, error)
	ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error)
	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTask(ctx context.Context, id string) (*types.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]*types.Task, error)
	ListTasksByAssignee(ctx context.Context, principalID string) ([]*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddActivity(ctx context.Context, a *types.Activity) error
	ListActivity(ctx context.Context, taskID string) ([]*types.Activity, error)
	CreateComment(ctx context.Context, c *types.Comment) (*types.Comment, error)
	GetComment(ctx context.Context, taskID, commentID string) (*types.Comment, error)
	UpdateCommentStatus(ctx context.Context, taskID, commentID string, status types.CommentStatus) (*types.Comment, error)
	DeleteComment(ctx context.Context, taskID, commentID string) error
	ListComments(ctx context.Context, taskID string) ([]*types.Comment, error)
}

type GuardInterface interface {
	Check(ctx context.Context, principalID string, op authorization.Operation, container *types.Container, members []*types.Membership) error
}
