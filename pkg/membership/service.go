// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

type Service struct {
	storage StorageInterface
	guard   GuardInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// locked loads the container holding its row lock, with the current member list.
func (s *Service) locked(ctx context.Context, containerID string) (*types.Container, []*types.Membership, error) {
	c, err := s.storage.LockContainer(ctx, containerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, apperrors.ErrContainerNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock container: %w", err)
	}

	members, err := s.storage.ListMembers(ctx, containerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}

	return c, members, nil
}

func find(principalID string, members []*types.Membership) *types.Membership {
	for _, m := range members {
		if m.PrincipalID == principalID {
			return m
		}
	}
	return nil
}

// lastAdmin reports whether removing the Admin role from target would leave the container without admins.
func lastAdmin(target *types.Membership, members []*types.Membership) bool {
	return target.Role == types.RoleAdmin && authorization.CountAdmins(members) <= 1
}

func (s *Service) AddMember(ctx context.Context, containerID, principalID string, role types.Role, requestedBy string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.AddMember")
	defer span.End()

	if role == "" {
		role = types.RoleMember
	}

	if !role.Valid() {
		return nil, apperrors.Validation(fmt.Sprintf("invalid role %q", role))
	}

	var added *types.Membership

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.AddMember, c, members); err != nil {
			return err
		}

		p, err := s.storage.GetPrincipalByID(ctx, principalID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindNotFound, "principal not found")
			}
			return fmt.Errorf("failed to get principal: %w", err)
		}

		if find(principalID, members) != nil {
			return apperrors.ErrAlreadyMember
		}

		if err := s.storage.AddMember(ctx, containerID, principalID, role); err != nil {
			return s.mapAddError(err)
		}

		added = &types.Membership{
			ContainerID: containerID,
			PrincipalID: principalID,
			Role:        role,
			Email:       p.Email,
			Name:        p.Name,
		}

		s.logger.Security().AdminAction(requestedBy, "add_member", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})

	if err != nil {
		return nil, err
	}

	return added, nil
}

// Join adds the principal to the container without an authorization check.
// It joins the caller's transaction when there is one.
func (s *Service) Join(ctx context.Context, containerID, principalID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Join")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		_, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if find(principalID, members) != nil {
			return apperrors.ErrAlreadyMember
		}

		if err := s.storage.AddMember(ctx, containerID, principalID, role); err != nil {
			return s.mapAddError(err)
		}

		return nil
	})
}

func (s *Service) mapAddError(err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		return apperrors.ErrAlreadyMember
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return apperrors.New(apperrors.KindNotFound, "principal not found")
	default:
		return fmt.Errorf("failed to add member: %w", err)
	}
}

func (s *Service) RemoveMember(ctx context.Context, containerID, principalID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RemoveMember")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.RemoveMember, c, members); err != nil {
			return err
		}

		target := find(principalID, members)
		if target == nil {
			return apperrors.ErrMemberNotFound
		}

		if lastAdmin(target, members) {
			return apperrors.ErrLastAdminProtected
		}

		if err := s.remove(ctx, containerID, principalID); err != nil {
			return err
		}

		s.logger.Security().AdminAction(requestedBy, "remove_member", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})
}

func (s *Service) Promote(ctx context.Context, containerID, principalID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Promote")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.PromoteMember, c, members); err != nil {
			return err
		}

		target := find(principalID, members)
		if target == nil {
			return apperrors.ErrMemberNotFound
		}

		if target.Role == types.RoleAdmin {
			return apperrors.ErrAlreadyAdmin
		}

		if err := s.setRole(ctx, containerID, principalID, types.RoleAdmin); err != nil {
			return err
		}

		s.logger.Security().AdminAction(requestedBy, "promote_member", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})
}

func (s *Service) Demote(ctx context.Context, containerID, principalID, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Demote")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.DemoteMember, c, members); err != nil {
			return err
		}

		target := find(principalID, members)
		if target == nil {
			return apperrors.ErrMemberNotFound
		}

		if target.Role != types.RoleAdmin {
			return apperrors.ErrNotAdmin
		}

		if lastAdmin(target, members) {
			return apperrors.ErrLastAdminProtected
		}

		if err := s.setRole(ctx, containerID, principalID, types.RoleMember); err != nil {
			return err
		}

		s.logger.Security().AdminAction(requestedBy, "demote_member", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})
}

func (s *Service) Leave(ctx context.Context, containerID, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Leave")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		_, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		target := find(principalID, members)
		if target == nil {
			return apperrors.ErrMemberNotFound
		}

		if lastAdmin(target, members) {
			return apperrors.ErrLastAdminProtected
		}

		return s.remove(ctx, containerID, principalID)
	})
}

func (s *Service) ListMembers(ctx context.Context, containerID, requestedBy string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListMembers")
	defer span.End()

	var members []*types.Membership

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, err := s.storage.GetContainer(ctx, containerID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.ErrContainerNotFound
			}
			return fmt.Errorf("failed to get container: %w", err)
		}

		members, err = s.storage.ListMembers(ctx, containerID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		return s.guard.Check(ctx, requestedBy, authorization.ViewContainer, c, members)
	})

	if err != nil {
		return nil, err
	}

	return members, nil
}

func (s *Service) remove(ctx context.Context, containerID, principalID string) error {
	if err := s.storage.RemoveMember(ctx, containerID, principalID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *Service) setRole(ctx context.Context, containerID, principalID string, role types.Role) error {
	if err := s.storage.UpdateMemberRole(ctx, containerID, principalID, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to update member role: %w", err)
	}
	return nil
}

func NewService(
	storage StorageInterface,
	guard GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.guard = guard

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
