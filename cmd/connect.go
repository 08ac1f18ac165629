// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"identikit/cli/internal/config"
	"identikit/cli/internal/httperrors"
	"identikit/cli/internal/identity"
	"identikit/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// connectCmd persists the identity server base URL used by all other
// commands. It probes the server before saving so a typo is caught here
// rather than on the next login.
var connectCmd = &cobra.Command{
	Use:   "connect <url>",
	Short: "Set and verify the identity server base URL",
	Long: `The connect command stores the base URL of the identity server in the
identikit config file after verifying the server is reachable. Any HTTP
response counts as reachable; an unauthenticated rejection still proves a
live server.

The URL must include a scheme, e.g. https://id.example.com.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.TrimRight(strings.TrimSpace(args[0]), "/")
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid server URL %q (expected e.g. https://id.example.com)", raw)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logging.Init(cfg.LogLevel)

		// Probe without a jar; connect must not touch an existing session.
		api := identity.New(raw, endpointsFromConfig(cfg.Endpoints), nil)

		stopSpinner := startInlineSpinner(os.Stdout, "Checking "+u.Host, spinnerFrames, 120*time.Millisecond)
		err = api.Ping(cmd.Context())
		stopSpinner()
		if err != nil {
			return httperrors.FormatNetworkError(err, "connecting to "+u.Host)
		}

		cfg.Server = raw
		if err := config.Save(cfg); err != nil {
			return err
		}

		pterm.Printf("✅ Connected to %s\n", u.Host)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
