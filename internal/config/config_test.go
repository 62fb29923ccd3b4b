package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	// Reset viper state
	viper.Reset()

	Init()

	// Check defaults are set
	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetString("output") != "text" {
		t.Errorf("expected output default %q, got %q", "text", viper.GetString("output"))
	}
}

func TestInit_EnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("HOSTINFO_OS_TYPE", "windows")

	Init()

	if got := viper.GetString("os.type"); got != "windows" {
		t.Errorf("os.type = %q, want %q from HOSTINFO_OS_TYPE", got, "windows")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Run from a temp dir so a developer's config.yaml is not picked up
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatal(err)
		}
	})

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.Output != "text" {
		t.Errorf("Output = %q, want default %q", cfg.Output, "text")
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	// Create temp config file
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("output: json\nos:\n  type: windows\ncurrent:\n  user: svc-deploy\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "json")
	}
	if cfg.OS.Type != "windows" {
		t.Errorf("OS.Type = %q, want %q", cfg.OS.Type, "windows")
	}
	if cfg.Current.User != "svc-deploy" {
		t.Errorf("Current.User = %q, want %q", cfg.Current.User, "svc-deploy")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	// Load with non-existent config file should error
	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg:  &Config{Version: 1, Output: "text"},
		},
		{
			name: "unset output is valid",
			cfg:  &Config{Version: 1},
		},
		{
			name: "legacy runtime version override is valid",
			cfg:  &Config{Version: 1, Runtime: RuntimeOverride{Version: "1.8.0_362-b09"}},
		},
		{
			name:    "version too low",
			cfg:     &Config{Version: 0, Output: "text"},
			wantErr: ErrVersionTooLow,
		},
		{
			name:    "bad output",
			cfg:     &Config{Version: 1, Output: "xml"},
			wantErr: ErrInvalidOutput,
		},
		{
			name:    "unparsable runtime version override",
			cfg:     &Config{Version: 1, Runtime: RuntimeOverride{Version: "stable"}},
			wantErr: ErrInvalidRuntimeVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)

			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}

			found := false
			for _, err := range errs {
				if errors.Is(err, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	if errs := Validate(nil); len(errs) == 0 {
		t.Error("Validate(nil) should report an error")
	}
}
