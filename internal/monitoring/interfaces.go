// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// MonitorInterface records request latency per route pattern and the availability of
// backing dependencies (1 up, 0 down)
type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(tags map[string]string, seconds float64) error
	SetDependencyAvailability(tags map[string]string, value float64) error
}
