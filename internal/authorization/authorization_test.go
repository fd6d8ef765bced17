// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go

var members = []*types.Membership{
	{PrincipalID: "alice", Role: types.RoleAdmin},
	{PrincipalID: "bob", Role: types.RoleMember},
}

func TestCan(t *testing.T) {
	adminOnly := []Operation{
		ModifyContainer, DeleteContainer, CreateChildContainer, InviteMember,
		ManageInvites, AddMember, RemoveMember, PromoteMember, DemoteMember,
	}
	anyMember := []Operation{ViewContainer, CreateTask, ModifyTask}

	for _, op := range adminOnly {
		t.Run(op.String(), func(t *testing.T) {
			if !Can("alice", op, members) {
				t.Errorf("expected admin to be allowed")
			}
			if Can("bob", op, members) {
				t.Errorf("expected member to be denied")
			}
			if Can("carol", op, members) {
				t.Errorf("expected non member to be denied")
			}
		})
	}

	for _, op := range anyMember {
		t.Run(op.String(), func(t *testing.T) {
			if !Can("alice", op, members) || !Can("bob", op, members) {
				t.Errorf("expected members to be allowed")
			}
			if Can("carol", op, members) {
				t.Errorf("expected non member to be denied")
			}
		})
	}
}

func TestCanEmptyMembers(t *testing.T) {
	if Can("alice", ViewContainer, nil) {
		t.Errorf("expected denial with no members")
	}
}

func TestCountAdmins(t *testing.T) {
	tests := []struct {
		name     string
		members  []*types.Membership
		expected int
	}{
		{"none", nil, 0},
		{"one", members, 1},
		{"two", append([]*types.Membership{{PrincipalID: "carol", Role: types.RoleAdmin}}, members...), 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if n := CountAdmins(test.members); n != test.expected {
				t.Errorf("expected %d admins, got %d", test.expected, n)
			}
		})
	}
}

func TestGuardCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	container := &types.Container{ID: "w1", Kind: types.KindWorkspace}
	guard := NewGuard(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logging.NewNoopLogger()), mockLogger)

	if err := guard.Check(context.TODO(), "alice", DeleteContainer, container, members); err != nil {
		t.Errorf("expected admin to pass, got %v", err)
	}

	mockLogger.EXPECT().Security().Return(mockSecurity)
	mockSecurity.EXPECT().AuthzFailure("bob", "delete_container workspace:w1")

	err := guard.Check(context.TODO(), "bob", DeleteContainer, container, members)
	if !errors.Is(err, apperrors.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}
