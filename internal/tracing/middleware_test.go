// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
)

func TestOpenTelemetryPassesThrough(t *testing.T) {
	mdw := NewMiddleware(monitoring.NewNoopMonitor("workspace-service", logging.NewNoopLogger()), logging.NewNoopLogger())

	handler := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	for _, path := range []string{"/api/v0/workspaces", "/api/v0/status"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if rr.Code != http.StatusTeapot {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusTeapot, rr.Code)
		}
	}
}
