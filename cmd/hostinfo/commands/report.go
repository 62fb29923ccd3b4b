package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	cliErrors "github.com/thoreinstein/hostinfo/internal/errors"
	"github.com/thoreinstein/hostinfo/internal/logging"
	"github.com/thoreinstein/hostinfo/pkg/platform"
)

// reportOutput holds the value of the --output flag.
var reportOutput string

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		"output format: text, json, yaml (default from config)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the full platform report",
	Long: `Show everything the facade can resolve about the current platform:
OS type and family classification, runtime flags, current user,
runtime version, working directory, and the default interactive shell.

Output formats:
  text   Human-readable key/value listing (default)
  json   Machine-readable JSON
  yaml   Machine-readable YAML`,
	RunE: runReport,
}

// Report is the serializable snapshot of the resolved platform state.
type Report struct {
	OSType             string   `json:"os_type" yaml:"os_type"`
	Family             string   `json:"family" yaml:"family"`
	ConstrainedRuntime bool     `json:"constrained_runtime" yaml:"constrained_runtime"`
	AlternateVM        bool     `json:"alternate_vm" yaml:"alternate_vm"`
	User               string   `json:"user" yaml:"user"`
	RuntimeVersion     string   `json:"runtime_version" yaml:"runtime_version"`
	WorkingDir         string   `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
	ShellCommand       string   `json:"shell_command" yaml:"shell_command"`
	ShellElements      []string `json:"shell_elements" yaml:"shell_elements"`
}

func runReport(cmd *cobra.Command, _ []string) error {
	return writeReport(cmd, os.Stdout, platform.Default())
}

// writeReport allows injecting a writer and facade for testing.
func writeReport(cmd *cobra.Command, w io.Writer, pc *platform.Context) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := logging.FromContext(ctx)

	report, err := buildReport(pc)
	if err != nil {
		return err
	}

	format := reportOutput
	if format == "" {
		format = viper.GetString("output")
	}

	log.Debug("rendering report", "format", format)

	switch format {
	case "", "text":
		return renderText(w, report)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding report")
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return errors.Wrap(err, "encoding report")
		}
		_, err = w.Write(out)
		return errors.Wrap(err, "writing report")
	default:
		return cliErrors.NewUserError(
			errors.Wrapf(cliErrors.ErrUnknownFormat, "%q", format),
			"valid formats: text, json, yaml")
	}
}

// buildReport resolves every facade value into a serializable snapshot.
func buildReport(pc *platform.Context) (*Report, error) {
	user, err := pc.CurrentUser()
	if err != nil {
		return nil, cliErrors.NewSystemError(err,
			"Set HOSTINFO_CURRENT_USER or the current.user config key")
	}

	version, err := pc.RuntimeVersion()
	if err != nil {
		return nil, cliErrors.NewSystemError(err,
			"Set HOSTINFO_RUNTIME_VERSION or the runtime.version config key")
	}

	report := &Report{
		OSType:             pc.OSType(),
		Family:             familyOf(pc),
		ConstrainedRuntime: pc.IsConstrainedRuntime(),
		AlternateVM:        pc.IsAlternateVM(),
		User:               user,
		RuntimeVersion:     version.String(),
		ShellCommand:       pc.DefaultInteractiveShellCommand(),
		ShellElements:      pc.DefaultInteractiveCommandElements(),
	}

	if wd, ok := pc.WorkingDir(); ok {
		report.WorkingDir = wd
	}

	return report, nil
}

// familyOf names the OS family classification.
func familyOf(pc *platform.Context) string {
	switch {
	case pc.IsWindows():
		return "windows"
	case pc.IsMacOS():
		return "macos"
	default:
		return "unix"
	}
}

// renderText writes the human-readable report.
func renderText(w io.Writer, r *Report) error {
	key := color.New(color.FgCyan)
	if !logging.SupportsColor(w) {
		key.DisableColor()
	}

	rows := []struct {
		label string
		value string
	}{
		{"OS Type", r.OSType},
		{"Family", r.Family},
		{"Constrained Runtime", fmt.Sprintf("%v", r.ConstrainedRuntime)},
		{"Alternate VM", fmt.Sprintf("%v", r.AlternateVM)},
		{"User", r.User},
		{"Runtime Version", r.RuntimeVersion},
		{"Working Dir", r.WorkingDir},
		{"Shell Command", r.ShellCommand},
		{"Shell Elements", strings.Join(r.ShellElements, " ")},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", key.Sprint(row.label), row.value); err != nil {
			return errors.Wrap(err, "writing report")
		}
	}

	return nil
}
