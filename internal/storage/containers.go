// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/workspace-service/internal/types"
)

var (
	containerFields  = []string{"id", "kind", "name", "description", "created_by", "parent_id", "due_date", "created_at", "updated_at"}
	containerColumns = qualify("c", containerFields)
)

func qualify(alias string, fields []string) []string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, alias+"."+f)
	}
	return cols
}

func scanContainer(row scanner) (*types.Container, error) {
	var c types.Container
	var createdBy, parentID sql.NullString

	if err := row.Scan(&c.ID, &c.Kind, &c.Name, &c.Description, &createdBy, &parentID, &c.DueDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.CreatedBy = fromNull(createdBy)
	c.ParentID = fromNull(parentID)

	return &c, nil
}

func (s *Storage) queryContainers(ctx context.Context, query sq.SelectBuilder, msg string) ([]*types.Container, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, mapError(err, msg)
	}
	defer rows.Close()

	containers := make([]*types.Container, 0)
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan container: %w", err)
		}
		containers = append(containers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return containers, nil
}

func (s *Storage) CreateContainer(ctx context.Context, c *types.Container) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContainer")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("containers").
		Columns("id", "kind", "name", "description", "created_by", "parent_id", "due_date").
		Values(id, string(c.Kind), c.Name, c.Description, c.CreatedBy, nullable(c.ParentID), c.DueDate).
		Suffix("RETURNING " + strings.Join(containerFields, ", ")).
		QueryRowContext(ctx)

	created, err := scanContainer(row)
	if err != nil {
		return nil, mapError(err, "failed to insert container")
	}

	return created, nil
}

func (s *Storage) GetContainer(ctx context.Context, id string) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetContainer")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(containerColumns...).
		From("containers c").
		Where(sq.Eq{"c.id": id}).
		QueryRowContext(ctx)

	c, err := scanContainer(row)
	if err != nil {
		return nil, mapError(err, "failed to get container")
	}

	return c, nil
}

func (s *Storage) LockContainer(ctx context.Context, id string) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockContainer")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(containerColumns...).
		From("containers c").
		Where(sq.Eq{"c.id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx)

	c, err := scanContainer(row)
	if err != nil {
		return nil, mapError(err, "failed to lock container")
	}

	return c, nil
}

func (s *Storage) UpdateContainer(ctx context.Context, c *types.Container) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateContainer")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("containers").
		SetMap(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"due_date":    c.DueDate,
			"updated_at":  sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(containerFields, ", ")).
		QueryRowContext(ctx)

	updated, err := scanContainer(row)
	if err != nil {
		return nil, mapError(err, "failed to update container")
	}

	return updated, nil
}

// DeleteContainer removes the container, memberships, invites, tasks and links go with it
func (s *Storage) DeleteContainer(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteContainer")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("containers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to delete container")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListContainersByPrincipal(ctx context.Context, principalID string, kind types.ContainerKind) ([]*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListContainersByPrincipal")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(containerColumns...).
		From("containers c").
		Join("memberships m ON c.id = m.container_id").
		Where(sq.Eq{"m.principal_id": principalID}).
		OrderBy("c.created_at")

	if kind != "" {
		query = query.Where(sq.Eq{"c.kind": string(kind)})
	}

	return s.queryContainers(ctx, query, "failed to list containers")
}

// ListProjectsByWorkspace lists the linked projects of a workspace that the principal belongs to
func (s *Storage) ListProjectsByWorkspace(ctx context.Context, workspaceID, principalID string) ([]*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectsByWorkspace")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(containerColumns...).
		From("containers c").
		Join("container_children cc ON cc.child_id = c.id").
		Join("memberships m ON c.id = m.container_id").
		Where(sq.Eq{"cc.parent_id": workspaceID, "m.principal_id": principalID}).
		OrderBy("c.created_at")

	return s.queryContainers(ctx, query, "failed to list projects")
}

func (s *Storage) CountProjects(ctx context.Context, workspaceID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountProjects")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("containers").
		Where(sq.Eq{"parent_id": workspaceID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, mapError(err, "failed to count projects")
	}

	return count, nil
}

func (s *Storage) LinkChild(ctx context.Context, parentID, childID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkChild")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("container_children").
		Columns("parent_id", "child_id").
		Values(parentID, childID).
		Suffix("ON CONFLICT (parent_id, child_id) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return mapError(err, "failed to link child container")
	}

	return nil
}

func (s *Storage) ListUnlinkedProjects(ctx context.Context) ([]*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnlinkedProjects")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(containerColumns...).
		From("containers c").
		LeftJoin("container_children cc ON cc.child_id = c.id AND cc.parent_id = c.parent_id").
		Where(sq.Eq{"c.kind": string(types.KindProject), "cc.child_id": nil}).
		OrderBy("c.created_at")

	return s.queryContainers(ctx, query, "failed to list unlinked projects")
}
