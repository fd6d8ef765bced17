// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
	"github.com/canonical/workspace-service/pkg/container"
	"github.com/canonical/workspace-service/pkg/identity"
	"github.com/canonical/workspace-service/pkg/invitation"
	"github.com/canonical/workspace-service/pkg/membership"
	"github.com/canonical/workspace-service/pkg/metrics"
	"github.com/canonical/workspace-service/pkg/status"
	"github.com/canonical/workspace-service/pkg/task"
)

const apiPrefix = "/api/v0"

// Services groups the domain services exposed over HTTP
type Services struct {
	Identity   identity.ServiceInterface
	Membership membership.ServiceInterface
	Invitation invitation.ServiceInterface
	Container  container.ServiceInterface
	Task       task.ServiceInterface
}

func NewRouter(
	services Services,
	checker status.HealthCheckerInterface,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(checker, tracer, logger).RegisterEndpoints(router)

	identityAPI := identity.NewAPI(services.Identity, tracer, logger)
	authn := authentication.NewMiddleware(services.Identity, tracer, monitor, logger)

	router.Route(apiPrefix, func(r chi.Router) {
		identityAPI.RegisterPublicEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(authn.Authenticate())

			identityAPI.RegisterEndpoints(r)
			membership.NewAPI(services.Membership, tracer, logger).RegisterEndpoints(r)
			invitation.NewAPI(services.Invitation, tracer, logger).RegisterEndpoints(r)
			container.NewAPI(services.Container, tracer, logger).RegisterEndpoints(r)
			task.NewAPI(services.Task, tracer, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
