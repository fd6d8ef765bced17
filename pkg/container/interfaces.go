// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package container

import (
	"context"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	CreateWorkspace(ctx context.Context, in *types.ContainerInput, creator string) (*types.Container, error)
	CreateProject(ctx context.Context, workspaceID string, in *types.ContainerInput, creator string) (*types.Container, error)
	Get(ctx context.Context, kind types.ContainerKind, id, requestedBy string) (*types.ContainerDetail, error)
	ListWorkspaces(ctx context.Context, requestedBy string) ([]*types.Container, error)
	ListProjects(ctx context.Context, workspaceID, requestedBy string) ([]*types.Container, error)
	Update(ctx context.Context, kind types.ContainerKind, id string, in *types.ContainerInput, requestedBy string) (*types.Container, error)
	Delete(ctx context.Context, kind types.ContainerKind, id, requestedBy string) error
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateContainer(ctx context.Context, c *types.Container) (*types.Container, error)
	GetContainer(ctx context.Context, id string) (*types.Container, error)
	LockContainer(ctx context.Context, id string) (*types.Container, error)
	UpdateContainer(ctx context.Context, c *types.Container) (*types.Container, error)
	DeleteContainer(ctx context.Context, id string) error
	ListContainersByPrincipal(ctx context.Context, principalID string, kind types.ContainerKind) ([]*types.Container, error)
	ListProjectsByWorkspace(ctx context.Context, workspaceID, principalID string) ([]*types.Container, error)
	CountProjects(ctx context.Context, workspaceID string) (int, error)
	LinkChild(ctx context.Context, parentID, childID string) error
	ListUnlinkedProjects(ctx context.Context) ([]*types.Container, error)
	AddMember(ctx context.Context, containerID, principalID string, role types.Role) error
	ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error)
	CountTasks(ctx context.Context, projectID string) (int, int, error)
}

type GuardInterface interface {
	Check(ctx context.Context, principalID string, op authorization.Operation, container *types.Container, members []*types.Membership) error
}

// InvitePrunerInterface removes expired invites.
type InvitePrunerInterface interface {
	PruneExpired(ctx context.Context) (int64, error)
}

type ReconcilerInterface interface {
	Reconcile(ctx context.Context) (*Report, error)
}
