// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the identikit CLI.
// It implements subcommands for account registration, cookie-session login
// and logout, and authentication state queries against a configured identity
// server, using the Cobra CLI framework. The package handles command
// parsing, execution, and a terminal UI with spinners and claim tables.
package cmd

import (
	"fmt"
	"net/url"
	"os"

	"identikit/cli/internal/auth"
	"identikit/cli/internal/config"
	"identikit/cli/internal/cookies"
	"identikit/cli/internal/identity"
	"identikit/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the identikit CLI application.
var rootCmd = &cobra.Command{
	Use:           "identikit",
	Short:         "Identikit CLI for cookie-session identity servers",
	Long:          `Identikit is a command-line client for identity servers that issue cookie-based sessions. It registers accounts, logs in and out, and inspects the authenticated identity's claims and roles.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("identikit %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}

// session bundles everything a command needs to talk to the identity server.
type session struct {
	svc *auth.Service
	jar *cookies.Jar
	cfg config.Config
}

// newSession loads configuration, initializes logging, restores the
// persisted cookie jar and wires up the auth service.
func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logging.Init(cfg.LogLevel)

	if cfg.Server == "" {
		return nil, fmt.Errorf("no identity server configured; run 'identikit connect <url>' first")
	}
	origin, err := url.Parse(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.Server, err)
	}

	jar, err := cookies.New(origin, cookies.KeychainStore{})
	if err != nil {
		return nil, err
	}

	api := identity.New(cfg.Server, endpointsFromConfig(cfg.Endpoints), jar)
	return &session{
		svc: auth.NewService(api),
		jar: jar,
		cfg: cfg,
	}, nil
}

// endpointsFromConfig maps config path overrides onto the wire client's
// endpoint set; empty overrides keep the standard paths.
func endpointsFromConfig(e config.Endpoints) identity.Endpoints {
	return identity.Endpoints{
		Register: e.Register,
		Login:    e.Login,
		Info:     e.Info,
		Roles:    e.Roles,
		Logout:   e.Logout,
	}
}
