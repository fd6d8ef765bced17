// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type TokenResolverInterface interface {
	// ResolveToken verifies a raw session token and returns its claims
	ResolveToken(ctx context.Context, token string) (*types.Claims, error)
}
