// Package main is the entry point for the identikit CLI application.
// It provides a command-line client for cookie-session identity servers.
package main

import (
	"identikit/cli/cmd"
)

// main is the entry point for the identikit CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
