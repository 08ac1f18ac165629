// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"identikit/cli/internal/errs"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// statusCmd reports whether the session is live right now. It always does a
// full round trip; the point of the command is truth, not the cache.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the current session is live",
	Long: `The status command asks the identity server whether the stored
session cookie still represents a live session. It never trusts locally
recorded state: the answer is always the result of a fresh round trip.

When the session is not live, the failure category (unreachable server,
rejected session, malformed response) is shown to help tell an expired
login apart from a network problem.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Checking session", spinnerFrames, 120*time.Millisecond)
		ok, cause := sess.svc.IsAuthenticated(cmd.Context())
		stopSpinner()

		if ok {
			pterm.Printf("✅ Authenticated as %s\n", sess.svc.Current().Email())
			return nil
		}

		pterm.Println("🔒 Not authenticated")
		switch errs.KindOf(cause) {
		case errs.Transport:
			pterm.Println("   The identity server could not be reached.")
		case errs.UnexpectedStatus:
			pterm.Printf("   The server rejected the session (HTTP %d).\n", errs.StatusOf(cause))
		case errs.MalformedResponse:
			pterm.Println("   The server's response could not be understood.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
