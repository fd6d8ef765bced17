// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

type GuardInterface interface {
	// Check returns apperrors.ErrAccessDenied when the principal may not perform op on the container
	Check(ctx context.Context, principalID string, op Operation, container *types.Container, members []*types.Membership) error
}
