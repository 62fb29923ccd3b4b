package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/hostinfo/pkg/platform"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <path>",
	Short: "Normalize a path for comparison on this platform",
	Long: `Normalize a path so it can be compared with another one with the
case sensitivity of the underlying OS taken into account: paths are
lower-cased on Windows and returned unchanged elsewhere.`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func runPath(_ *cobra.Command, args []string) error {
	return writePath(os.Stdout, platform.Default(), args[0])
}

// writePath allows injecting a writer and facade for testing.
func writePath(w io.Writer, pc *platform.Context, path string) error {
	_, err := fmt.Fprintln(w, pc.ComparablePath(path))
	return err
}
