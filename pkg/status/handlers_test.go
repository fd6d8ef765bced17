// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go

type envelope struct {
	Data   Status `json:"data"`
	Status int    `json:"status"`
}

func TestAPI_Status(t *testing.T) {
	tests := []struct {
		name             string
		pingErr          error
		withChecker      bool
		expectedStatus   int
		expectedDatabase string
	}{
		{
			name:             "database available",
			withChecker:      true,
			expectedStatus:   http.StatusOK,
			expectedDatabase: "ok",
		},
		{
			name:             "database unavailable",
			withChecker:      true,
			pingErr:          errors.New("connection refused"),
			expectedStatus:   http.StatusServiceUnavailable,
			expectedDatabase: "unavailable",
		},
		{
			name:           "no database",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var checker HealthCheckerInterface
			if tt.withChecker {
				mockChecker := NewMockHealthCheckerInterface(ctrl)
				mockChecker.EXPECT().Ping(gomock.Any()).Return(tt.pingErr)
				checker = mockChecker
			}

			r := chi.NewRouter()
			NewAPI(checker, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(r)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var body envelope
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Data.Database != tt.expectedDatabase {
				t.Errorf("expected database %q, got %q", tt.expectedDatabase, body.Data.Database)
			}
			if body.Data.Version != version.Version {
				t.Errorf("expected version %q, got %q", version.Version, body.Data.Version)
			}
		})
	}
}

func TestAPI_Version(t *testing.T) {
	r := chi.NewRouter()
	NewAPI(nil, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(r)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body envelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Data.Version != version.Version {
		t.Errorf("expected version %q, got %q", version.Version, body.Data.Version)
	}
}
