// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

const principalsResource = "principals"

// requireAdmin checks the stored global role of the caller, so a demotion applies before
// the session token carrying the old role expires.
func (s *Service) requireAdmin(ctx context.Context, requestedBy, resource string) error {
	actor, err := s.storage.GetPrincipalByID(ctx, requestedBy)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get principal: %w", err)
	}

	if actor == nil || actor.Role != types.RoleAdmin {
		s.logger.Security().AuthzFailure(requestedBy, resource)
		return apperrors.ErrAccessDenied
	}

	return nil
}

func (s *Service) ListPrincipals(ctx context.Context, requestedBy string) ([]*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.ListPrincipals")
	defer span.End()

	if err := s.requireAdmin(ctx, requestedBy, principalsResource); err != nil {
		return nil, err
	}

	principals, err := s.storage.ListPrincipals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list principals: %w", err)
	}

	return principals, nil
}

// LookupPrincipal returns any principal to a global Admin, and the caller's own record to anyone.
func (s *Service) LookupPrincipal(ctx context.Context, id, requestedBy string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.LookupPrincipal")
	defer span.End()

	if id != requestedBy {
		if err := s.requireAdmin(ctx, requestedBy, principalsResource+"/"+id); err != nil {
			return nil, err
		}
	}

	return s.GetPrincipal(ctx, id)
}

// DeletePrincipal removes the principal and its memberships. The caller must be the principal
// or a global Admin, and the principal must not be the only Admin of any container.
func (s *Service) DeletePrincipal(ctx context.Context, id, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "identity.Service.DeletePrincipal")
	defer span.End()

	if id != requestedBy {
		if err := s.requireAdmin(ctx, requestedBy, principalsResource+"/"+id); err != nil {
			return err
		}
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		checked := make(map[string]struct{})

		memberships, err := s.storage.ListMembershipsByPrincipal(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list memberships: %w", err)
		}

		// container locks first, as every membership mutation takes them
		if err := s.guardLastAdmin(ctx, id, memberships, checked); err != nil {
			return err
		}

		if _, err := s.storage.LockPrincipal(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindNotFound, "principal not found")
			}
			return fmt.Errorf("failed to lock principal: %w", err)
		}

		// memberships committed between the first listing and the principal lock
		memberships, err = s.storage.ListMembershipsByPrincipal(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list memberships: %w", err)
		}

		if err := s.guardLastAdmin(ctx, id, memberships, checked); err != nil {
			return err
		}

		if err := s.storage.DeletePrincipal(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindNotFound, "principal not found")
			}
			return fmt.Errorf("failed to delete principal: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Security().UserDeleted(id, requestedBy)

	return nil
}

// guardLastAdmin locks each container where the principal is an Admin and rejects the
// deletion when it holds the only Admin membership there.
func (s *Service) guardLastAdmin(ctx context.Context, principalID string, memberships []*types.Membership, checked map[string]struct{}) error {
	for _, m := range memberships {
		if m.Role != types.RoleAdmin {
			continue
		}
		if _, ok := checked[m.ContainerID]; ok {
			continue
		}

		if _, err := s.storage.LockContainer(ctx, m.ContainerID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				checked[m.ContainerID] = struct{}{}
				continue
			}
			return fmt.Errorf("failed to lock container: %w", err)
		}

		members, err := s.storage.ListMembers(ctx, m.ContainerID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		role, ok := authorization.RoleOf(principalID, members)
		if ok && role == types.RoleAdmin && authorization.CountAdmins(members) <= 1 {
			return apperrors.ErrLastAdminProtected
		}

		checked[m.ContainerID] = struct{}{}
	}

	return nil
}
