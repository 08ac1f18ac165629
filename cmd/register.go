// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"identikit/cli/internal/errs"
	"identikit/cli/internal/httperrors"

	"github.com/go-playground/validator/v10"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var registerEmail string

// registerCmd creates a new account on the identity server. Validation
// messages from the server are shown verbatim, in the order the server sent
// them; everything else collapses to a generic failure.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the identity server",
	Long: `The register command creates a new account with an email address and
password. The email format is checked locally before the request; password
rules live on the server and its validation messages are shown as returned.

Registration does not sign you in. Run 'identikit login' afterwards.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		email := registerEmail
		if email == "" {
			if email, err = promptEmail(); err != nil {
				return err
			}
		}
		// Catch obvious typos before a round trip; the server still owns
		// the authoritative validation.
		if err := validator.New().Var(email, "required,email"); err != nil {
			pterm.Println("❌ That doesn't look like an email address")
			return nil
		}

		password, err := promptPassword("Password")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Creating account", spinnerFrames, 120*time.Millisecond)
		result, cause := sess.svc.Register(cmd.Context(), email, password)
		stopSpinner()

		if result.Succeeded {
			pterm.Printf("✅ Account created for %s\n", email)
			pterm.Println("   Run 'identikit login' to sign in.")
			return nil
		}

		pterm.Println("❌ Registration failed")
		renderFormErrors(result)
		if errs.KindOf(cause) == errs.Transport {
			return httperrors.FormatNetworkError(cause, "registering the account")
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address for the new account")
	rootCmd.AddCommand(registerCmd)
}
