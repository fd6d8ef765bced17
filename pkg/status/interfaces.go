// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// HealthCheckerInterface is satisfied by the database client
type HealthCheckerInterface interface {
	Ping(context.Context) error
}
