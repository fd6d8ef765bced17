// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	Issue(ctx context.Context, containerID, email, requestedBy string) (*types.Invite, error)
	Consume(ctx context.Context, token, principalID string) (string, error)
	ListPendingForEmail(ctx context.Context, email string) ([]*types.PendingInvite, error)
	ListForContainer(ctx context.Context, containerID, requestedBy string) ([]*types.Invite, error)
	Revoke(ctx context.Context, containerID, token, requestedBy string) error
	PruneExpired(ctx context.Context) (int64, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetContainer(ctx context.Context, id string) (*types.Container, error)
	LockContainer(ctx context.Context, id string) (*types.Container, error)
	ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error)
	CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error)
	GetInvite(ctx context.Context, token string) (*types.Invite, error)
	ConsumeInvite(ctx context.Context, containerID, token string) (*types.Invite, error)
	ListInvitesByEmail(ctx context.Context, email string, now time.Time) ([]*types.PendingInvite, error)
	ListInvitesByContainer(ctx context.Context, containerID string) ([]*types.Invite, error)
	DeleteInvite(ctx context.Context, containerID, token string) error
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}

// MembershipInterface adds the consumer of an invite to the container.
type MembershipInterface interface {
	Join(ctx context.Context, containerID, principalID string, role types.Role) error
}

type GuardInterface interface {
	Check(ctx context.Context, principalID string, op authorization.Operation, container *types.Container, members []*types.Membership) error
}
