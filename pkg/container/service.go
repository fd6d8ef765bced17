// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package container

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

type Service struct {
	storage StorageInterface
	guard   GuardInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) input(in *types.ContainerInput) (*types.ContainerInput, error) {
	if in == nil {
		return nil, apperrors.Validation("missing container input")
	}

	clean := *in
	clean.Name = strings.TrimSpace(clean.Name)

	if err := s.validate.Struct(clean); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	return &clean, nil
}

func notFound(kind types.ContainerKind) error {
	return apperrors.New(apperrors.KindContainerNotFound, string(kind)+" not found")
}

// load fetches the container of the expected kind with its members, lock takes the row lock.
func (s *Service) load(ctx context.Context, kind types.ContainerKind, id string, lock bool) (*types.Container, []*types.Membership, error) {
	get := s.storage.GetContainer
	if lock {
		get = s.storage.LockContainer
	}

	c, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, notFound(kind)
		}
		return nil, nil, fmt.Errorf("failed to get container: %w", err)
	}

	if c.Kind != kind {
		return nil, nil, notFound(kind)
	}

	members, err := s.storage.ListMembers(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list members: %w", err)
	}

	return c, members, nil
}

// create inserts the container with the creator as its first Admin
func (s *Service) create(ctx context.Context, c *types.Container) (*types.Container, error) {
	created, err := s.storage.CreateContainer(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	if err := s.storage.AddMember(ctx, created.ID, c.CreatedBy, types.RoleAdmin); err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, apperrors.New(apperrors.KindNotFound, "principal not found")
		}
		return nil, fmt.Errorf("failed to add creator: %w", err)
	}

	return created, nil
}

func (s *Service) CreateWorkspace(ctx context.Context, in *types.ContainerInput, creator string) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "container.Service.CreateWorkspace")
	defer span.End()

	in, err := s.input(in)
	if err != nil {
		return nil, err
	}

	var workspace *types.Container

	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error
		workspace, err = s.create(ctx, &types.Container{
			Kind:        types.KindWorkspace,
			Name:        in.Name,
			Description: in.Description,
			CreatedBy:   creator,
			DueDate:     in.DueDate,
		})
		return err
	})

	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("container.id", workspace.ID))

	return workspace, nil
}

// CreateProject creates the project inside the workspace, then links it to the workspace.
// A failed link is left for the reconciler.
func (s *Service) CreateProject(ctx context.Context, workspaceID string, in *types.ContainerInput, creator string) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "container.Service.CreateProject")
	defer span.End()

	in, err := s.input(in)
	if err != nil {
		return nil, err
	}

	var project *types.Container

	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		w, members, err := s.load(ctx, types.KindWorkspace, workspaceID, true)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, creator, authorization.CreateChildContainer, w, members); err != nil {
			return err
		}

		project, err = s.create(ctx, &types.Container{
			Kind:        types.KindProject,
			Name:        in.Name,
			Description: in.Description,
			CreatedBy:   creator,
			ParentID:    w.ID,
			DueDate:     in.DueDate,
		})
		return err
	})

	if err != nil {
		return nil, err
	}

	if err := s.storage.LinkChild(ctx, workspaceID, project.ID); err != nil {
		s.logger.Errorf("failed to link project %s to workspace %s: %v", project.ID, workspaceID, err)
	}

	span.SetAttributes(attribute.String("container.id", project.ID))

	return project, nil
}

func (s *Service) Get(ctx context.Context, kind types.ContainerKind, id, requestedBy string) (*types.ContainerDetail, error) {
	ctx, span := s.tracer.Start(ctx, "container.Service.Get")
	defer span.End()

	var detail *types.ContainerDetail

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.load(ctx, kind, id, false)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.ViewContainer, c, members); err != nil {
			return err
		}

		detail = &types.ContainerDetail{Container: *c, Members: members}

		if c.IsProject() {
			total, completed, err := s.storage.CountTasks(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("failed to count tasks: %w", err)
			}
			detail.Progress = types.NewProgress(total, completed)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *Service) ListWorkspaces(ctx context.Context, requestedBy string) ([]*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "container.Service.ListWorkspaces")
	defer span.End()

	workspaces, err := s.storage.ListContainersByPrincipal(ctx, requestedBy, types.KindWorkspace)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return workspaces, nil
}

// ListProjects returns the projects of the workspace the principal is a member of.
func (s *Service) ListProjects(ctx context.Context, workspaceID, requestedBy string) ([]*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "container.Service.ListProjects")
	defer span.End()

	var projects []*types.Container

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		w, members, err := s.load(ctx, types.KindWorkspace, workspaceID, false)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.ViewContainer, w, members); err != nil {
			return err
		}

		projects, err = s.storage.ListProjectsByWorkspace(ctx, workspaceID, requestedBy)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *Service) Update(ctx context.Context, kind types.ContainerKind, id string, in *types.ContainerInput, requestedBy string) (*types.Container, error) {
	ctx, span := s.tracer.Start(ctx, "container.Service.Update")
	defer span.End()

	in, err := s.input(in)
	if err != nil {
		return nil, err
	}

	var updated *types.Container

	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.load(ctx, kind, id, true)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.ModifyContainer, c, members); err != nil {
			return err
		}

		c.Name = in.Name
		c.Description = in.Description
		c.DueDate = in.DueDate

		updated, err = s.storage.UpdateContainer(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to update container: %w", err)
		}

		s.logger.Security().AdminAction(requestedBy, "update_container", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the container. Workspaces must have no projects left.
func (s *Service) Delete(ctx context.Context, kind types.ContainerKind, id, requestedBy string) error {
	ctx, span := s.tracer.Start(ctx, "container.Service.Delete")
	defer span.End()

	return s.storage.WithTx(ctx, func(ctx context.Context) error {
		c, members, err := s.load(ctx, kind, id, true)
		if err != nil {
			return err
		}

		if err := s.guard.Check(ctx, requestedBy, authorization.DeleteContainer, c, members); err != nil {
			return err
		}

		if c.Kind == types.KindWorkspace {
			n, err := s.storage.CountProjects(ctx, c.ID)
			if err != nil {
				return fmt.Errorf("failed to count projects: %w", err)
			}
			if n > 0 {
				return apperrors.ErrContainerNotEmpty
			}
		}

		if err := s.storage.DeleteContainer(ctx, c.ID); err != nil {
			switch {
			case errors.Is(err, storage.ErrForeignKeyViolation):
				return apperrors.ErrContainerNotEmpty
			case errors.Is(err, storage.ErrNotFound):
				return notFound(kind)
			default:
				return fmt.Errorf("failed to delete container: %w", err)
			}
		}

		s.logger.Security().AdminAction(requestedBy, "delete_container", authorization.ContainerResource(string(c.Kind), c.ID))

		return nil
	})
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
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
