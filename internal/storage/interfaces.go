// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/types"
)

type TxManagerInterface interface {
	// WithTx runs fn in a single transaction, nested calls join the outer one
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type PrincipalStorageInterface interface {
	CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error)
	UpdatePrincipal(ctx context.Context, id, name, profileURL string) (*types.Principal, error)
	ListPrincipals(ctx context.Context) ([]*types.Principal, error)
	// LockPrincipal returns the principal holding its row lock until the transaction ends
	LockPrincipal(ctx context.Context, id string) (*types.Principal, error)
	DeletePrincipal(ctx context.Context, id string) error
}

type ContainerStorageInterface interface {
	CreateContainer(ctx context.Context, c *types.Container) (*types.Container, error)
	GetContainer(ctx context.Context, id string) (*types.Container, error)
	// LockContainer returns the container holding its row lock until the transaction ends
	LockContainer(ctx context.Context, id string) (*types.Container, error)
	UpdateContainer(ctx context.Context, c *types.Container) (*types.Container, error)
	DeleteContainer(ctx context.Context, id string) error
	ListContainersByPrincipal(ctx context.Context, principalID string, kind types.ContainerKind) ([]*types.Container, error)
	ListProjectsByWorkspace(ctx context.Context, workspaceID, principalID string) ([]*types.Container, error)
	CountProjects(ctx context.Context, workspaceID string) (int, error)
	// LinkChild is idempotent
	LinkChild(ctx context.Context, parentID, childID string) error
	ListUnlinkedProjects(ctx context.Context) ([]*types.Container, error)
}

type MembershipStorageInterface interface {
	AddMember(ctx context.Context, containerID, principalID string, role types.Role) error
	ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, containerID, principalID string, role types.Role) error
	RemoveMember(ctx context.Context, containerID, principalID string) error
	ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error)
}

type InviteStorageInterface interface {
	CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error)
	GetInvite(ctx context.Context, token string) (*types.Invite, error)
	// ConsumeInvite atomically deletes and returns the invite of the container, ErrNotFound when absent
	ConsumeInvite(ctx context.Context, containerID, token string) (*types.Invite, error)
	ListInvitesByEmail(ctx context.Context, email string, now time.Time) ([]*types.PendingInvite, error)
	ListInvitesByContainer(ctx context.Context, containerID string) ([]*types.Invite, error)
	DeleteInvite(ctx context.Context, containerID, token string) error
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}

type TaskStorageInterface interface {
	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTask(ctx context.Context, id string) (*types.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]*types.Task, error)
	ListTasksByAssignee(ctx context.Context, principalID string) ([]*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CountTasks(ctx context.Context, projectID string) (int, int, error)
	AddActivity(ctx context.Context, a *types.Activity) error
	ListActivity(ctx context.Context, taskID string) ([]*types.Activity, error)
	CreateComment(ctx context.Context, c *types.Comment) (*types.Comment, error)
	GetComment(ctx context.Context, taskID, commentID string) (*types.Comment, error)
	UpdateCommentStatus(ctx context.Context, taskID, commentID string, status types.CommentStatus) (*types.Comment, error)
	DeleteComment(ctx context.Context, taskID, commentID string) error
	ListComments(ctx context.Context, taskID string) ([]*types.Comment, error)
}

type StorageInterface interface {
	TxManagerInterface
	PrincipalStorageInterface
	ContainerStorageInterface
	MembershipStorageInterface
	InviteStorageInterface
	TaskStorageInterface
}
