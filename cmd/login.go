// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/pkg/identity"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Get a session token for the given credentials",
	Long:  `Print a session token, export it as WORKSPACE_TOKEN to use the other client commands`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp identity.LoginResponse
		err := getClient().do(cmd.Context(), http.MethodPost, "/auth/login", identity.LoginRequest{
			Email:    loginEmail,
			Password: loginPassword,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")

	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
