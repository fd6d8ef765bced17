// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/types"
)

var containerDescription string

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage workspaces and their projects",
}

var createWorkspaceCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ws types.Container
		in := types.ContainerInput{Name: args[0], Description: containerDescription}
		if err := getClient().do(cmd.Context(), http.MethodPost, "/workspaces", in, &ws); err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Workspace created: %s (ID: %s)\n", ws.Name, ws.ID)
		return nil
	},
}

var listWorkspacesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the workspaces of the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var workspaces []*types.Container
		if err := getClient().do(cmd.Context(), http.MethodGet, "/workspaces", nil, &workspaces); err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}

		printContainers(cmd, workspaces)
		return nil
	},
}

var deleteWorkspaceCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an empty workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/workspaces/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Workspace deleted: %s\n", args[0])
		return nil
	},
}

var createProjectCmd = &cobra.Command{
	Use:   "add-project [workspace-id] [name]",
	Short: "Create a project inside a workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p types.Container
		in := types.ContainerInput{Name: args[1], Description: containerDescription}
		if err := getClient().do(cmd.Context(), http.MethodPost, "/workspaces/"+args[0]+"/projects", in, &p); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Project created: %s (ID: %s)\n", p.Name, p.ID)
		return nil
	},
}

var listProjectsCmd = &cobra.Command{
	Use:   "projects [workspace-id]",
	Short: "List the projects of a workspace visible to the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var projects []*types.Container
		if err := getClient().do(cmd.Context(), http.MethodGet, "/workspaces/"+args[0]+"/projects", nil, &projects); err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		printContainers(cmd, projects)
		return nil
	},
}

func printContainers(cmd *cobra.Command, containers []*types.Container) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tNAME\tCREATED_AT")
	for _, c := range containers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Kind, c.Name, c.CreatedAt.Format(time.RFC3339))
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(createWorkspaceCmd)
	workspaceCmd.AddCommand(listWorkspacesCmd)
	workspaceCmd.AddCommand(deleteWorkspaceCmd)
	workspaceCmd.AddCommand(createProjectCmd)
	workspaceCmd.AddCommand(listProjectsCmd)

	createWorkspaceCmd.Flags().StringVar(&containerDescription, "description", "", "Workspace description")
	createProjectCmd.Flags().StringVar(&containerDescription, "description", "", "Project description")
}
