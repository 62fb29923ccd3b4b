package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hostinfo/pkg/platform"
)

// shellElements holds the value of the --elements flag.
var shellElements bool

func init() {
	shellCmd.Flags().BoolVar(&shellElements, "elements", false,
		"print the command argument list, one element per line")
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Show the default interactive shell invocation",
	Long: `Show the default interactive shell invocation for this platform:
cmd.exe on Windows, /bin/sh with interactive and login flags elsewhere.

With --elements the exec-ready argument list is printed one element per
line, suitable for consumption by scripts.`,
	RunE: runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	return writeShell(os.Stdout, platform.Default())
}

// writeShell allows injecting a writer and facade for testing.
func writeShell(w io.Writer, pc *platform.Context) error {
	if shellElements {
		for _, el := range pc.DefaultInteractiveCommandElements() {
			if _, err := fmt.Fprintln(w, el); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := fmt.Fprintln(w, pc.DefaultInteractiveShellCommand())
	return err
}
