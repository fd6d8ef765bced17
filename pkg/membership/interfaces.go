// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	AddMember(ctx context.Context, containerID, principalID string, role types.Role, requestedBy string) (*types.Membership, error)
	Join(ctx context.Context, containerID, principalID string, role types.Role) error
	RemoveMember(ctx context.Context, containerID, principalID, requestedBy string) error
	Promote(ctx context.Context, containerID, principalID, requestedBy string) error
	Demote(ctx context.Context, containerID, principalID, requestedBy string) error
	Leave(ctx context.Context, containerID, principalID string) error
	ListMembers(ctx context.Context, containerID, requestedBy string) ([]*types.Membership, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetContainer(ctx context.Context, id string) (*types.Container, error)
	LockContainer(ctx context.Context, id string) (*types.Container, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
	ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error)
	AddMember(ctx context.Context, containerID, principalID string, role types.Role) error
	UpdateMemberRole(ctx context.Context, containerID, principalID string, role types.Role) error
	RemoveMember(ctx context.Context, containerID, principalID string) error
}

type GuardInterface interface {
	Check(ctx context.Context, principalID string, op authorization.Operation, container *types.Container, members []*types.Membership) error
}
