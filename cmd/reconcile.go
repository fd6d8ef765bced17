// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/container"
)

// reconcileCmd repairs missing project links and prunes expired invites once
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Repair workspace-project links and prune expired invites",
	Long:  `Link every project missing from its workspace's child list and delete expired invitations, then exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := config.Load(envFile)
		if err != nil {
			return err
		}

		if specs.StorageBackend == config.BackendMemory {
			return fmt.Errorf("reconcile needs the %s storage backend", config.BackendPostgres)
		}

		logger := logging.NewLogger(specs.LogLevel)
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor("workspace-service", logger)

		b, err := newBackend(specs, tracer, monitor, logger)
		if err != nil {
			return err
		}
		defer b.close()

		_, invites := newServices(specs, b.storage, tracer, monitor, logger)

		report, err := container.NewReconciler(b.storage, invites, tracer, monitor, logger).Reconcile(cmd.Context())
		if err != nil {
			return err
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
