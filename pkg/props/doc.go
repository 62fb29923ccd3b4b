// Package props resolves named platform properties from layered sources.
//
// A property is a plain string identified by a dotted name such as
// "os.name" or "current.user". Sources answer lookups; the [Chain]
// combinator layers them so that configuration overrides shadow
// process-provided values.
//
// # Sources
//
// [Process] serves the values the running process itself can report
// (GOOS, the login name, the Go toolchain version, the working
// directory) plus an "env.NAME" passthrough to environment variables.
//
// [Viper] serves values from a viper instance, which gives callers a
// config-file and environment-variable override surface without this
// package knowing about either.
//
// [Static] is a fixed map, used for tests and programmatic overrides.
//
// # Resolution
//
// [Value] implements the override-then-fallback rule used throughout
// the platform facade: an override property wins only when present and
// non-blank; otherwise the fallback property is consulted as-is.
package props
