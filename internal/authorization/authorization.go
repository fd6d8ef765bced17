// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

// RoleOf returns the role of the principal in members, false when not a member.
func RoleOf(principalID string, members []*types.Membership) (types.Role, bool) {
	for _, m := range members {
		if m.PrincipalID == principalID {
			return m.Role, true
		}
	}
	return "", false
}

// Can decides whether the principal may perform op given the container members.
// CreateChildContainer is evaluated against the members of the parent.
func Can(principalID string, op Operation, members []*types.Membership) bool {
	role, ok := RoleOf(principalID, members)
	if !ok {
		return false
	}

	if op.RequiresAdmin() {
		return role == types.RoleAdmin
	}

	return true
}

// CountAdmins returns the number of members holding the Admin role.
func CountAdmins(members []*types.Membership) int {
	n := 0
	for _, m := range members {
		if m.Role == types.RoleAdmin {
			n++
		}
	}
	return n
}

type Guard struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (g *Guard) Check(ctx context.Context, principalID string, op Operation, container *types.Container, members []*types.Membership) error {
	_, span := g.tracer.Start(ctx, "authorization.Guard.Check")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", op.String()),
		attribute.String("container", container.ID),
	)

	if Can(principalID, op, members) {
		return nil
	}

	resource := ContainerResource(string(container.Kind), container.ID)

	g.logger.Security().AuthzFailure(principalID, op.String()+" "+resource)
	span.AddEvent("access denied")

	return apperrors.ErrAccessDenied
}

func NewGuard(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
