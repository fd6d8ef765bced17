// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var inviteFields = []string{"token", "container_id", "email", "invited_by", "expires_at", "created_at"}

func scanInvite(row scanner) (*types.Invite, error) {
	var i types.Invite
	var invitedBy sql.NullString

	if err := row.Scan(&i.Token, &i.ContainerID, &i.Email, &invitedBy, &i.ExpiresAt, &i.CreatedAt); err != nil {
		return nil, err
	}

	i.InvitedBy = fromNull(invitedBy)

	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	row := s.db.Statement(ctx).
		Insert("invites").
		Columns("token", "container_id", "email", "invited_by", "expires_at").
		Values(i.Token, i.ContainerID, strings.ToLower(i.Email), i.InvitedBy, i.ExpiresAt).
		Suffix("RETURNING " + strings.Join(inviteFields, ", ")).
		QueryRowContext(ctx)

	created, err := scanInvite(row)
	if err != nil {
		return nil, mapError(err, "failed to insert invite")
	}

	return created, nil
}

// GetInvite reads the invite without locking it
func (s *Storage) GetInvite(ctx context.Context, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvite")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(inviteFields...).
		From("invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx)

	i, err := scanInvite(row)
	if err != nil {
		return nil, mapError(err, "failed to get invite")
	}

	return i, nil
}

// ConsumeInvite deletes the invite row of the container and returns it, concurrent callers
// race on the delete so at most one of them gets the row back
func (s *Storage) ConsumeInvite(ctx context.Context, containerID, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeInvite")
	defer span.End()

	row := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"container_id": containerID, "token": token}).
		Suffix("RETURNING " + strings.Join(inviteFields, ", ")).
		QueryRowContext(ctx)

	i, err := scanInvite(row)
	if err != nil {
		return nil, mapError(err, "failed to consume invite")
	}

	return i, nil
}

func (s *Storage) ListInvitesByEmail(ctx context.Context, email string, now time.Time) ([]*types.PendingInvite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByEmail")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(append(qualify("i", inviteFields), "c.name", "c.kind")...).
		From("invites i").
		Join("containers c ON c.id = i.container_id").
		Where(sq.Eq{"i.email": strings.ToLower(email)}).
		Where(sq.GtOrEq{"i.expires_at": now}).
		OrderBy("i.created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list invites")
	}
	defer rows.Close()

	invites := make([]*types.PendingInvite, 0)
	for rows.Next() {
		var p types.PendingInvite
		var invitedBy sql.NullString
		if err := rows.Scan(&p.Token, &p.ContainerID, &p.Email, &invitedBy, &p.ExpiresAt, &p.CreatedAt, &p.ContainerName, &p.ContainerKind); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		p.InvitedBy = fromNull(invitedBy)
		invites = append(invites, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) ListInvitesByContainer(ctx context.Context, containerID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInvitesByContainer")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(inviteFields...).
		From("invites").
		Where(sq.Eq{"container_id": containerID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list invites")
	}
	defer rows.Close()

	invites := make([]*types.Invite, 0)
	for rows.Next() {
		i, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

func (s *Storage) DeleteInvite(ctx context.Context, containerID, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"container_id": containerID, "token": token}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to delete invite")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredInvites")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Lt{"expires_at": now}).
		ExecContext(ctx)
	if err != nil {
		return 0, mapError(err, "failed to prune invites")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}
