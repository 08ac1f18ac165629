// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"identikit/cli/internal/auth"
	"identikit/cli/internal/keychain"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd ends the current session. The remote logout is best-effort; the
// local session cookie and state are cleared regardless of whether the
// server answered.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and remove stored credentials",
	Long: `The logout command invalidates the current session on the identity
server (best-effort) and clears all local session data.

This command removes:
- The session cookie from the OS keychain
- The recorded authentication state
- Any cached session information`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Try to logout from the server (best effort - don't fail if offline)
		if sess, err := newSession(); err == nil {
			_ = sess.svc.Logout(cmd.Context()) // Ignore error - best effort
			_ = sess.jar.Clear()
		}

		// Always clear local session data regardless of server response
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearAll()
		}
		_ = auth.ClearState()

		pterm.Println("✅ Signed out; session cookie and state removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
