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
	"github.com/canonical/workspace-service/pkg/invitation"
)

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage invitations",
}

var issueInviteCmd = &cobra.Command{
	Use:   "issue [container-id] [email]",
	Short: "Invite an email address to a workspace or project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var invite types.Invite
		err := getClient().do(cmd.Context(), http.MethodPost, "/containers/"+args[0]+"/invites", invitation.IssueRequest{Email: args[1]}, &invite)
		if err != nil {
			return fmt.Errorf("failed to issue invite: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invite issued to %s, token %s, expires %s\n", invite.Email, invite.Token, invite.ExpiresAt.Format(time.RFC3339))
		return nil
	},
}

var acceptInviteCmd = &cobra.Command{
	Use:   "accept [token]",
	Short: "Accept an invitation as the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp invitation.ConsumeResponse
		if err := getClient().do(cmd.Context(), http.MethodPost, "/invites/consume", invitation.ConsumeRequest{Token: args[0]}, &resp); err != nil {
			return fmt.Errorf("failed to accept invite: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Joined container %s\n", resp.ContainerID)
		return nil
	},
}

var listInvitesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the pending invitations of the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var invites []*types.PendingInvite
		if err := getClient().do(cmd.Context(), http.MethodGet, "/invites", nil, &invites); err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TOKEN\tKIND\tNAME\tEXPIRES_AT")
		for _, i := range invites {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.Token, i.ContainerKind, i.ContainerName, i.ExpiresAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var revokeInviteCmd = &cobra.Command{
	Use:   "revoke [container-id] [token]",
	Short: "Revoke an outstanding invitation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/containers/"+args[0]+"/invites/"+args[1], nil, nil); err != nil {
			return fmt.Errorf("failed to revoke invite: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Invite revoked: %s\n", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inviteCmd)
	inviteCmd.AddCommand(issueInviteCmd)
	inviteCmd.AddCommand(acceptInviteCmd)
	inviteCmd.AddCommand(listInvitesCmd)
	inviteCmd.AddCommand(revokeInviteCmd)
}
