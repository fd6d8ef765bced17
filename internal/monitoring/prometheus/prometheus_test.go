// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/workspace-service/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := NewMonitor("workspace-service-test", logging.NewNoopLogger())

	if m.GetService() != "workspace-service-test" {
		t.Errorf("unexpected service %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/workspaces", "status": "OK"}, 0.2); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"unknown": "label"}, 1); err == nil {
		t.Errorf("expected an error for unknown labels")
	}
}

func TestMonitorUninstantiated(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Errorf("expected an error")
	}

	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Errorf("expected an error")
	}
}
