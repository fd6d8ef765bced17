// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

const DefaultLifetime = 24 * time.Hour

type recipient struct {
	Email string `validate:"required,email,max=254"`
}

type Service struct {
	storage StorageInterface
	members MembershipInterface
	guard   GuardInterface

	lifetime time.Duration
	now      func() time.Time
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Issue(ctx context.Context, containerID, email, requestedBy string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Issue")
	defer span.End()

	email = strings.TrimSpace(strings.ToLower(email))

	if err := s.validate.Struct(recipient{Email: email}); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var invite *types.Invite

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.InviteMember, c, members); err != nil {
			return err
		}

		token, err := newToken()
		if err != nil {
			return err
		}

		invite, err = s.storage.CreateInvite(ctx, &types.Invite{
			Token:       token,
			ContainerID: containerID,
			Email:       email,
			InvitedBy:   requestedBy,
			ExpiresAt:   s.now().Add(s.lifetime),
		})
		if err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}

		s.logger.Security().AdminAction(requestedBy, "issue_invite", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})

	if err != nil {
		return nil, err
	}

	return invite, nil
}

// Consume redeems the invite token for the principal and returns the container it grants access to.
// An expired invite is deleted and reported as ExpiredInvite.
func (s *Service) Consume(ctx context.Context, token, principalID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Consume")
	defer span.End()

	if token == "" {
		return "", apperrors.ErrInvalidToken
	}

	var containerID string
	expired := false

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		pending, err := s.storage.GetInvite(ctx, token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindInvalidToken, "invalid invite token")
			}
			return fmt.Errorf("failed to get invite: %w", err)
		}

		// container before invite row, the order Revoke and container deletion lock in
		if _, err := s.storage.LockContainer(ctx, pending.ContainerID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindInvalidToken, "invalid invite token")
			}
			return fmt.Errorf("failed to lock container: %w", err)
		}

		invite, err := s.storage.ConsumeInvite(ctx, pending.ContainerID, token)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindInvalidToken, "invalid invite token")
			}
			return fmt.Errorf("failed to consume invite: %w", err)
		}

		if invite.Expired(s.now()) {
			expired = true
			return nil
		}

		err = s.members.Join(ctx, invite.ContainerID, principalID, types.RoleMember)
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyMember) {
			return err
		}

		containerID = invite.ContainerID

		return nil
	})

	if err != nil {
		return "", err
	}

	if expired {
		s.logger.Debugf("pruned expired invite on consumption by %s", principalID)
		return "", apperrors.ErrExpiredInvite
	}

	span.SetAttributes(attribute.String("container.id", containerID))

	return containerID, nil
}

func (s *Service) ListPendingForEmail(ctx context.Context, email string) ([]*types.PendingInvite, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ListPendingForEmail")
	defer span.End()

	invites, err := s.storage.ListInvitesByEmail(ctx, strings.ToLower(email), s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	return invites, nil
}

// ListForContainer returns the unexpired invites of the container.
func (s *Service) ListForContainer(ctx context.Context, containerID, requestedBy string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ListForContainer")
	defer span.End()

	var pending []*types.Invite

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, err := s.storage.GetContainer(ctx, containerID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.ErrContainerNotFound
			}
			return fmt.Errorf("failed to get container: %w", err)
		}

		members, err := s.storage.ListMembers(ctx, containerID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.ManageInvites, c, members); err != nil {
			return err
		}

		invites, err := s.storage.ListInvitesByContainer(ctx, containerID)
		if err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		now := s.now()
		pending = make([]*types.Invite, 0, len(invites))
		for _, i := range invites {
			if !i.Expired(now) {
				pending = append(pending, i)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return pending, nil
}

func (s *Service) Revoke(ctx context.Context, containerID, token, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Revoke")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.locked(ctx, containerID)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.ManageInvites, c, members); err != nil {
			return err
		}

		if err := s.storage.DeleteInvite(ctx, containerID, token); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.New(apperrors.KindNotFound, "invite not found")
			}
			return fmt.Errorf("failed to delete invite: %w", err)
		}

		s.logger.Security().AdminAction(requestedBy, "revoke_invite", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})
}

// PruneExpired deletes every invite past its expiry and returns how many were removed.
func (s *Service) PruneExpired(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.PruneExpired")
	defer span.End()

	n, err := s.storage.DeleteExpiredInvites(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to prune invites: %w", err)
	}

	span.SetAttributes(attribute.Int64("invites.pruned", n))

	return n, nil
}

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

func NewService(
	storage StorageInterface,
	members MembershipInterface,
	guard GuardInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.members = members
	s.guard = guard

	s.lifetime = lifetime
	if s.lifetime <= 0 {
		s.lifetime = DefaultLifetime
	}
	s.now = time.Now
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
