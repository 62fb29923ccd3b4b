// Package config provides configuration management for hostinfo using Viper.
package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "hostinfo"

// Config represents the top-level configuration structure. The nested
// override sections share their key paths with the platform facade's
// override properties, so anything set here is visible through
// props.Viper without further plumbing.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	Output  string `mapstructure:"output" yaml:"output"`

	OS      OSOverride      `mapstructure:"os" yaml:"os"`
	Current CurrentOverride `mapstructure:"current" yaml:"current"`
	Runtime RuntimeOverride `mapstructure:"runtime" yaml:"runtime"`
}

// OSOverride carries the OS-type override property.
type OSOverride struct {
	Type string `mapstructure:"type" yaml:"type"`
}

// CurrentOverride carries the current-user override property.
type CurrentOverride struct {
	User string `mapstructure:"user" yaml:"user"`
}

// RuntimeOverride carries the runtime-version override property.
type RuntimeOverride struct {
	Version string `mapstructure:"version" yaml:"version"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support: os.type becomes HOSTINFO_OS_TYPE
	viper.SetEnvPrefix(strings.ToUpper(AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("output", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
