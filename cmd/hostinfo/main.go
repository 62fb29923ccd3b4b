// Package main is the entry point for the hostinfo CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/hostinfo/cmd/hostinfo/commands"
	cliErrors "github.com/thoreinstein/hostinfo/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *cliErrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(cliErrors.ExitUser)
}
