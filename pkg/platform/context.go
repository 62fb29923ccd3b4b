package platform

import (
	"log/slog"
	"sync"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

// Override property names consulted before their process-provided
// equivalents. Values land here through the configuration file or the
// corresponding HOSTINFO_* environment variables.
const (
	// OSTypeOverrideProp overrides the value reported by OSType.
	// If not set, the props.OSNameProp property is used.
	OSTypeOverrideProp = "os.type"

	// CurrentUserOverrideProp overrides the value reported by
	// CurrentUser. If not set, the props.UserNameProp property is used.
	CurrentUserOverrideProp = "current.user"

	// RuntimeVersionOverrideProp overrides the value reported by
	// RuntimeVersion. If not set, the props.GoVersionProp property is
	// used.
	RuntimeVersionOverrideProp = "runtime.version"

	// ConstrainedRuntimeOverrideProp overrides the value reported by
	// IsConstrainedRuntime. If not set, ConstrainedRuntimeDetectionProps
	// are consulted in order. Otherwise it must contain the string
	// "android" (case-insensitive) to count as a match.
	ConstrainedRuntimeOverrideProp = "constrained.runtime"

	// AlternateVMOverrideProp overrides the value reported by
	// IsAlternateVM. If not set, AlternateVMDetectionProps are consulted
	// in order. Otherwise it must contain the string "gccgo"
	// (case-insensitive) to count as a match.
	AlternateVMOverrideProp = "alternate.vm"
)

// Context holds the lazily resolved platform state. Each field is
// cached independently under its own lock; see the package comment for
// the resolution precedence and concurrency guarantees.
//
// The zero value is not usable; construct instances with New or use
// the shared Default instance.
type Context struct {
	src props.Source
	log *slog.Logger

	osType      cell[string]
	constrained cell[bool]
	alternateVM cell[bool]
	user        cell[string]
	version     cell[VersionInfo]

	cwdMu  sync.Mutex
	cwdSrc WorkingDirSource
}

// Option configures a Context.
type Option func(*Context)

// WithSource sets the property source consulted during resolution.
// The default is props.Default().
func WithSource(src props.Source) Option {
	return func(c *Context) {
		if src != nil {
			c.src = src
		}
	}
}

// WithLogger sets the logger used to report resolutions at debug
// level. The default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Context with all fields unresolved.
func New(opts ...Option) *Context {
	c := &Context{
		src: props.Default(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the shared process-wide Context. It is created on
// first use and lives for the process lifetime; tests that need
// isolation should use New instead.
func Default() *Context {
	defaultOnce.Do(func() {
		defaultCtx = New()
	})
	return defaultCtx
}
