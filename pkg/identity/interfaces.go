// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type ServiceInterface interface {
	Register(ctx context.Context, email, password, name string) (*types.Principal, error)
	Authenticate(ctx context.Context, email, password string) (string, *types.Principal, error)
	IssueToken(ctx context.Context, principalID, email string, role types.Role) (string, error)
	ResolveToken(ctx context.Context, token string) (*types.Claims, error)
	GetPrincipal(ctx context.Context, id string) (*types.Principal, error)
	UpdateProfile(ctx context.Context, id, name, profileURL string) (*types.Principal, error)
	VerifyPassword(ctx context.Context, id, password string) error
	ListPrincipals(ctx context.Context, requestedBy string) ([]*types.Principal, error)
	LookupPrincipal(ctx context.Context, id, requestedBy string) (*types.Principal, error)
	DeletePrincipal(ctx context.Context, id, requestedBy string) error
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error)
	UpdatePrincipal(ctx context.Context, id, name, profileURL string) (*types.Principal, error)
	ListPrincipals(ctx context.Context) ([]*types.Principal, error)
	LockPrincipal(ctx context.Context, id string) (*types.Principal, error)
	DeletePrincipal(ctx context.Context, id string) error
	ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error)
	LockContainer(ctx context.Context, id string) (*types.Container, error)
	ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error)
}

type HasherInterface interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

type SignerInterface interface {
	Sign(principalID, email string, role types.Role) (string, error)
	Parse(token string) (*types.Claims, error)
}
