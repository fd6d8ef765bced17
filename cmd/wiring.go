// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/db"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/storage/memory"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/container"
	"github.com/canonical/workspace-service/pkg/identity"
	"github.com/canonical/workspace-service/pkg/invitation"
	"github.com/canonical/workspace-service/pkg/membership"
	"github.com/canonical/workspace-service/pkg/status"
	"github.com/canonical/workspace-service/pkg/task"
	"github.com/canonical/workspace-service/pkg/web"
)

type backend struct {
	storage storage.StorageInterface
	checker status.HealthCheckerInterface
	close   func()
}

func newBackend(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*backend, error) {
	if specs.StorageBackend == config.BackendMemory {
		logger.Info("Using in-memory storage, data is lost on restart")
		return &backend{storage: memory.NewStorage(logger), close: func() {}}, nil
	}

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}

	return &backend{
		storage: storage.NewStorage(dbClient, tracer, monitor, logger),
		checker: dbClient,
		close:   dbClient.Close,
	}, nil
}

func newServices(specs *config.EnvSpec, s storage.StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (web.Services, *invitation.Service) {
	guard := authorization.NewGuard(tracer, monitor, logger)

	members := membership.NewService(s, guard, tracer, monitor, logger)
	invites := invitation.NewService(s, members, guard, specs.InvitationLifetime, tracer, monitor, logger)

	services := web.Services{
		Identity: identity.NewService(
			s,
			identity.NewBcryptHasher(specs.BcryptCost),
			identity.NewJWTSigner(specs.JWTSecret, specs.JWTIssuer, specs.SessionLifetime),
			specs.AdminEmails,
			tracer,
			monitor,
			logger,
		),
		Membership: members,
		Invitation: invites,
		Container:  container.NewService(s, guard, tracer, monitor, logger),
		Task:       task.NewService(s, guard, tracer, monitor, logger),
	}

	return services, invites
}
