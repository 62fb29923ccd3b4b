// Package config provides configuration management for the hostinfo CLI.
//
// This package handles loading and validating the tool's own
// configuration file. The override sections deliberately share their
// key paths with the platform facade's override properties, so a
// config file (or a HOSTINFO_* environment variable) is all it takes
// to steer detection.
//
// # Configuration File
//
// The default configuration file location is
// ~/.config/hostinfo/config.yaml; a config.yaml in the current
// directory takes precedence. The file uses YAML format:
//
//	version: 1
//	output: text          # text, json or yaml
//	os:
//	  type: windows       # optional OS-type override
//	current:
//	  user: svc-deploy    # optional current-user override
//	runtime:
//	  version: 1.25.5     # optional runtime-version override
//
// # Environment Variables
//
// Every key is also reachable through the environment with the
// HOSTINFO_ prefix and dots replaced by underscores, e.g.
// HOSTINFO_OS_TYPE=windows.
//
// # Validation
//
// Loaded configurations can be checked with [Validate], which reports
// all problems at once:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
