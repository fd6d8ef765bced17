// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var principalColumns = []string{"id", "email", "name", "password_hash", "role", "profile_url", "created_at", "updated_at"}

func scanPrincipal(row scanner) (*types.Principal, error) {
	var p types.Principal
	if err := row.Scan(&p.ID, &p.Email, &p.Name, &p.PasswordHash, &p.Role, &p.ProfileURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePrincipal")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("principals").
		Columns("id", "email", "name", "password_hash", "role", "profile_url").
		Values(id, strings.ToLower(p.Email), p.Name, p.PasswordHash, p.Role, p.ProfileURL).
		Suffix("RETURNING " + strings.Join(principalColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanPrincipal(row)
	if err != nil {
		return nil, mapError(err, "failed to insert principal")
	}

	return created, nil
}

func (s *Storage) GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(principalColumns...).
		From("principals").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanPrincipal(row)
	if err != nil {
		return nil, mapError(err, "failed to get principal")
	}

	return p, nil
}

func (s *Storage) GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByEmail")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(principalColumns...).
		From("principals").
		Where(sq.Eq{"email": strings.ToLower(email)}).
		QueryRowContext(ctx)

	p, err := scanPrincipal(row)
	if err != nil {
		return nil, mapError(err, "failed to get principal by email")
	}

	return p, nil
}

func (s *Storage) UpdatePrincipal(ctx context.Context, id, name, profileURL string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePrincipal")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("principals").
		Set("name", name).
		Set("profile_url", profileURL).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(principalColumns, ", ")).
		QueryRowContext(ctx)

	p, err := scanPrincipal(row)
	if err != nil {
		return nil, mapError(err, "failed to update principal")
	}

	return p, nil
}

func (s *Storage) ListPrincipals(ctx context.Context) ([]*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPrincipals")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(principalColumns...).
		From("principals").
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list principals")
	}
	defer rows.Close()

	principals := make([]*types.Principal, 0)
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan principal: %w", err)
		}
		principals = append(principals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return principals, nil
}

// LockPrincipal holds the principal row until the transaction ends, membership inserts
// referencing it block on the lock
func (s *Storage) LockPrincipal(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockPrincipal")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(principalColumns...).
		From("principals").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	p, err := scanPrincipal(row)
	if err != nil {
		return nil, mapError(err, "failed to lock principal")
	}

	return p, nil
}

// DeletePrincipal removes the principal and its memberships, authored records keep a null author
func (s *Storage) DeletePrincipal(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePrincipal")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("principals").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to delete principal")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
