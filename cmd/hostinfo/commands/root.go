// Package commands implements the CLI commands for hostinfo.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/hostinfo/cmd"
	"github.com/thoreinstein/hostinfo/internal/config"
	cliErrors "github.com/thoreinstein/hostinfo/internal/errors"
	"github.com/thoreinstein/hostinfo/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// loadedConfig holds the configuration loaded at startup.
var loadedConfig *config.Config

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("hostinfo version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "hostinfo",
	Short: "Inspect the platform the current process runs on",
	Long: `hostinfo reports what platform the current process runs on and what
its conventions are: operating system family, current user identity,
runtime version, default interactive shell, and working directory.

Every reported value can be overridden through the configuration file
(~/.config/hostinfo/config.yaml) or HOSTINFO_* environment variables,
e.g. HOSTINFO_OS_TYPE=windows or HOSTINFO_CURRENT_USER=svc-deploy.
Detected values are cached for the lifetime of the process.`,
	Example: `  # Full platform report
  hostinfo report

  # Machine-readable output
  hostinfo report --output json

  # Default interactive shell invocation
  hostinfo shell

  # Normalize a path per the host's case sensitivity
  hostinfo path /Foo/Bar`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return cliErrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("HOSTINFO_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load and validation problems before any
// command runs.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return cliErrors.NewConfigError(configLoadErr)
	}

	if errs := config.Validate(loadedConfig); len(errs) > 0 {
		return cliErrors.NewConfigError(errors.Join(errs...))
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
