// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

func (s *Storage) AddMember(ctx context.Context, containerID, principalID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("memberships").
		Columns("container_id", "principal_id", "role").
		Values(containerID, principalID, string(role)).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// ListMembers returns the members of a container in join order, with their display data
func (s *Storage) ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.container_id", "m.principal_id", "m.role", "p.email", "p.name", "m.created_at").
		From("memberships m").
		Join("principals p ON p.id = m.principal_id").
		Where(sq.Eq{"m.container_id": containerID}).
		OrderBy("m.created_at", "m.principal_id").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list members")
	}
	defer rows.Close()

	members := make([]*types.Membership, 0)
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ContainerID, &m.PrincipalID, &m.Role, &m.Email, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, containerID, principalID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", string(role)).
		Where(sq.Eq{
			"container_id": containerID,
			"principal_id": principalID,
		}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to update member")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, containerID, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"container_id": containerID,
			"principal_id": principalID,
		}).
		ExecContext(ctx)

	if err != nil {
		return mapError(err, "failed to remove member")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListMembershipsByPrincipal returns the memberships of the principal ordered by container id
func (s *Storage) ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByPrincipal")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.container_id", "m.principal_id", "m.role", "p.email", "p.name", "m.created_at").
		From("memberships m").
		Join("principals p ON p.id = m.principal_id").
		Where(sq.Eq{"m.principal_id": principalID}).
		OrderBy("m.container_id").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list memberships")
	}
	defer rows.Close()

	memberships := make([]*types.Membership, 0)
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ContainerID, &m.PrincipalID, &m.Role, &m.Email, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}
