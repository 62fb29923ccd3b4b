package props

import (
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Names of the process-provided properties served by [Process].
const (
	// OSNameProp is the operating system name as reported by the Go
	// runtime (runtime.GOOS), e.g. "linux", "darwin", "windows".
	OSNameProp = "os.name"

	// UserNameProp is the login name from the USER or USERNAME
	// environment variable.
	UserNameProp = "user.name"

	// GoVersionProp is the Go toolchain version with the leading "go"
	// prefix removed, e.g. "1.25.5".
	GoVersionProp = "go.version"

	// GoCompilerProp is the name of the compiler toolchain that built
	// the running binary (runtime.Compiler), e.g. "gc" or "gccgo".
	GoCompilerProp = "go.compiler"

	// UserDirProp is the process working directory.
	UserDirProp = "user.dir"
)

// envPropPrefix routes "env.NAME" lookups to the environment variable NAME.
const envPropPrefix = "env."

// Source answers property lookups by name. The boolean result reports
// whether the source knows the property at all; a known property may
// still carry a blank value.
type Source interface {
	Lookup(name string) (string, bool)
}

// Value resolves a property through the override-then-fallback rule:
// the override property's value is returned when it is present and
// non-blank after trimming; otherwise the fallback property's value is
// returned when present; otherwise the property is absent.
func Value(src Source, override, fallback string) (string, bool) {
	if v, ok := src.Lookup(override); ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	return src.Lookup(fallback)
}

// processSource serves the properties the running process can report
// about itself.
type processSource struct{}

// Process returns the process-provided property source.
func Process() Source {
	return processSource{}
}

func (processSource) Lookup(name string) (string, bool) {
	switch name {
	case OSNameProp:
		return runtime.GOOS, true
	case UserNameProp:
		if v, ok := os.LookupEnv("USER"); ok && v != "" {
			return v, true
		}
		return os.LookupEnv("USERNAME")
	case GoVersionProp:
		return strings.TrimPrefix(runtime.Version(), "go"), true
	case GoCompilerProp:
		return runtime.Compiler, true
	case UserDirProp:
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		return wd, true
	}

	if env, ok := strings.CutPrefix(name, envPropPrefix); ok && env != "" {
		return os.LookupEnv(env)
	}

	return "", false
}

// viperSource adapts a viper instance to the Source interface.
type viperSource struct {
	v *viper.Viper
}

// Viper returns a source backed by the given viper instance. A nil
// instance falls back to the global viper. Properties are viper keys,
// so config-file values and bound environment variables both answer.
func Viper(v *viper.Viper) Source {
	if v == nil {
		v = viper.GetViper()
	}
	return viperSource{v: v}
}

func (s viperSource) Lookup(name string) (string, bool) {
	val := s.v.GetString(name)
	if val == "" {
		return "", false
	}
	return val, true
}

// Static is a fixed property table. It satisfies Source directly and
// is the usual source for tests and programmatic overrides.
type Static map[string]string

// Lookup returns the mapped value. Mapped blank values are reported as
// present, which lets tests model a property that exists but is empty.
func (s Static) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// chain is a layered source; earlier sources shadow later ones.
type chain []Source

// Chain combines sources so that the first one that knows a property
// answers for it.
func Chain(sources ...Source) Source {
	return chain(sources)
}

func (c chain) Lookup(name string) (string, bool) {
	for _, src := range c {
		if v, ok := src.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// Default returns the production source: the global viper configuration
// layered over the process-provided properties.
func Default() Source {
	return Chain(Viper(nil), Process())
}
