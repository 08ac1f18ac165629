// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"identikit/cli/internal/auth"
	"identikit/cli/internal/errs"
	"identikit/cli/internal/httperrors"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var loginEmail string

// loginCmd signs in against the identity server with cookie-session
// issuance. The session cookie is persisted through the OS keychain, so
// subsequent commands stay signed in until logout or expiry.
//
// The command subscribes to the service's state-change notification and
// renders from the notified principal, the same way a UI frontend would.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in and store the session cookie",
	Long: `The login command authenticates with an email address and password,
requesting a cookie-based session from the identity server. On success the
session cookie is stored in the OS keychain and reused by every identikit
command until 'identikit logout' or server-side expiry.

If already signed in with a live session, the flow is skipped.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sess, err := newSession()
		if err != nil {
			return err
		}

		// Short-circuit when the persisted cookie still carries a session
		if p, _ := sess.svc.FetchState(ctx); p.IsAuthenticated() {
			pterm.Printf("Already logged in as %s\n", p.Email())
			return nil
		}

		email := loginEmail
		if email == "" {
			if email, err = promptEmail(); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		// Render from the notification like a subscribed frontend would
		unsubscribe := sess.svc.Subscribe(func(p *auth.Principal) {
			if p.IsAuthenticated() {
				_ = auth.SaveState(auth.State{LoggedIn: true, Email: p.Email()})
				pterm.Println(greeting(p.Email()))
			} else {
				pterm.Println("Signed in, but the session could not be confirmed yet.")
			}
		})
		defer unsubscribe()

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", spinnerFrames, 120*time.Millisecond)
		result, cause := sess.svc.Login(ctx, email, password)
		stopSpinner()
		cursor.Show()

		if result.Succeeded {
			return nil
		}

		pterm.Println("❌ Login failed")
		renderFormErrors(result)
		if errs.KindOf(cause) == errs.Transport {
			return httperrors.FormatNetworkError(cause, "signing in")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address to sign in with")
	rootCmd.AddCommand(loginCmd)
}
