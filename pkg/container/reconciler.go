// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package container

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

// Report summarizes a reconciliation pass.
type Report struct {
	Linked        int   `json:"linked"`
	Failed        int   `json:"failed"`
	PrunedInvites int64 `json:"pruned_invites"`
}

// Reconciler repairs projects whose workspace link was never written and prunes expired invites.
type Reconciler struct {
	storage StorageInterface
	invites InvitePrunerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Reconciler) Reconcile(ctx context.Context) (*Report, error) {
	ctx, span := r.tracer.Start(ctx, "container.Reconciler.Reconcile")
	defer span.End()

	projects, err := r.storage.ListUnlinkedProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlinked projects: %w", err)
	}

	report := new(Report)

	for _, p := range projects {
		if err := r.storage.LinkChild(ctx, p.ParentID, p.ID); err != nil {
			r.logger.Errorf("failed to link project %s to workspace %s: %v", p.ID, p.ParentID, err)
			report.Failed++
			continue
		}
		report.Linked++
	}

	if r.invites != nil {
		report.PrunedInvites, err = r.invites.PruneExpired(ctx)
		if err != nil {
			return report, err
		}
	}

	span.SetAttributes(
		attribute.Int("projects.linked", report.Linked),
		attribute.Int("projects.failed", report.Failed),
		attribute.Int64("invites.pruned", report.PrunedInvites),
	)

	if report.Linked > 0 || report.Failed > 0 || report.PrunedInvites > 0 {
		r.logger.Infof("reconciled %d projects (%d failed), pruned %d invites", report.Linked, report.Failed, report.PrunedInvites)
	}

	return report, nil
}

// Run reconciles once, then on every tick until the context is cancelled.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	if _, err := r.Reconcile(ctx); err != nil {
		r.logger.Errorf("reconciliation failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Reconcile(ctx); err != nil {
				r.logger.Errorf("reconciliation failed: %v", err)
			}
		}
	}
}

func NewReconciler(
	storage StorageInterface,
	invites InvitePrunerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Reconciler {
	r := new(Reconciler)

	r.storage = storage
	r.invites = invites

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
