// Package platform answers what platform the process is running on and
// what its conventions are: operating system family, current user
// identity, runtime version, default interactive shell, and working
// directory.
//
// The entry point is [Context], which resolves each answer lazily, at
// most once, from layered property sources (see
// github.com/thoreinstein/hostinfo/pkg/props). Every cached field has
// an explicit setter and reset so callers and tests can force a value
// or force re-detection. [Default] returns the shared process-wide
// instance; [New] builds isolated instances for tests.
//
// Resolution precedence is uniform across all fields: explicit
// in-process override, then the override-named configuration property,
// then the process-provided equivalent, then a hardcoded default.
//
// A Context is safe for concurrent use. Each field is guarded by its
// own lock, and reads take the lock even when the field is already
// resolved, so an explicit override and a concurrent lazy resolution
// are always totally ordered.
package platform
