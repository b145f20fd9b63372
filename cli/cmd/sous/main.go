// Sous - cooking-assistant chat backend command-line interface.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/petal-labs/sous/cli/commands"
)

// ExitCoder is an interface for errors that have an exit code.
type ExitCoder interface {
	ExitCode() int
}

func main() {
	// Optional .env file for local development.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		if ec, ok := err.(ExitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}
