// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string `json:"status"`
	Database  string `json:"database,omitempty"`
	Version   string `json:"version"`
	BuildInfo string `json:"build_info,omitempty"`
}

type API struct {
	checker HealthCheckerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/api/v0/status", a.status)
	r.Get("/api/v0/version", a.version)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	s := Status{Status: "ok", Version: version.Version}
	code := http.StatusOK

	if a.checker != nil {
		s.Database = "ok"

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := a.checker.Ping(pingCtx); err != nil {
			a.logger.Errorf("database health check failed: %v", err)
			s.Status = "degraded"
			s.Database = "unavailable"
			code = http.StatusServiceUnavailable
		}
	}

	types.WriteJSON(w, code, s, "status")
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	s := Status{Status: "ok", Version: version.Version}

	if info, ok := debug.ReadBuildInfo(); ok {
		s.BuildInfo = info.GoVersion
	}

	types.WriteJSON(w, http.StatusOK, s, "version")
}

// NewAPI builds the status endpoints, a nil checker skips the database ping
func NewAPI(checker HealthCheckerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checker = checker

	a.tracer = tracer
	a.logger = logger

	return a
}
