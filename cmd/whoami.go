package cmd

import (
	"identikit/cli/internal/auth"
	"identikit/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd displays the current authenticated identity. It validates the
// session with the identity server and renders the resulting principal's
// claims; local state is only a fast path for the signed-out message.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated identity",
	Long: `The whoami command displays the identity behind the current session.
It performs a full state fetch against the identity server and shows the
principal's claims (name, email, extras, roles) when the session is live.

If no valid session exists, it will indicate that you are not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Fast path: no recorded login means no session to validate
		if !auth.IsLoggedIn() {
			pterm.Println("🔒 You're not logged in yet!")
			pterm.Println("   Run 'identikit login' to get started.")
			return nil
		}

		sess, err := newSession()
		if err != nil {
			return err
		}

		p, cause := sess.svc.FetchState(cmd.Context())
		if !p.IsAuthenticated() {
			// Recorded state is stale; a fetch said no
			pterm.Println("🔒 Your session is no longer valid.")
			pterm.Println("   Run 'identikit login' to sign in again.")
			if cause != nil {
				// Masked so an error echoing a request never leaks credentials
				pterm.Debug.Println(logging.PresentError("cause", cause))
			}
			return nil
		}

		pterm.Println(greeting(p.Email()))
		pterm.Println()
		renderClaimsTable(p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
