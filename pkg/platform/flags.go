package platform

import "strings"

// Properties consulted, in order, to detect a constrained mobile
// runtime when ConstrainedRuntimeOverrideProp is not set. GOOS is
// "android" on Android builds, and the GOOS environment variable
// carries the same value under cross-compilation tooling.
var ConstrainedRuntimeDetectionProps = []string{
	"os.name",
	"env.GOOS",
}

// Properties consulted, in order, to detect an alternate toolchain VM
// when AlternateVMOverrideProp is not set. runtime.Compiler reports
// "gccgo" under the gccgo toolchain, and the GCCGO environment
// variable names its driver binary.
var AlternateVMDetectionProps = []string{
	"go.compiler",
	"env.GCCGO",
}

// ConstrainedRuntimeMatcher reports whether a property value indicates
// a constrained mobile runtime.
func ConstrainedRuntimeMatcher(v string) bool {
	return containsFold(v, "android")
}

// AlternateVMMatcher reports whether a property value indicates an
// alternate toolchain VM.
func AlternateVMMatcher(v string) bool {
	return containsFold(v, "gccgo")
}

func containsFold(v, substr string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(v)), substr)
}

// IsConstrainedRuntime reports whether the process runs on a
// constrained mobile runtime (Android). Note that IsUnix is probably
// true as well, so code that consults both must take care.
//
// The answer is detected once and cached: the override property is
// tested first, then ConstrainedRuntimeDetectionProps in order,
// short-circuiting on the first match. No match caches a permanent
// negative until ResetConstrainedRuntime.
func (c *Context) IsConstrainedRuntime() bool {
	return c.resolveFlag(&c.constrained, "constrained runtime",
		ConstrainedRuntimeOverrideProp, ConstrainedRuntimeDetectionProps, ConstrainedRuntimeMatcher)
}

// SetConstrainedRuntime overrides the value reported by
// IsConstrainedRuntime.
func (c *Context) SetConstrainedRuntime(v bool) {
	c.constrained.set(v)
}

// ResetConstrainedRuntime discards the cached flag so the next read
// re-runs detection.
func (c *Context) ResetConstrainedRuntime() {
	c.constrained.reset()
}

// IsAlternateVM reports whether the binary was produced by an
// alternate toolchain VM (gccgo) rather than the standard gc
// toolchain. Detection follows the same override-then-signals rule as
// IsConstrainedRuntime, against AlternateVMDetectionProps.
func (c *Context) IsAlternateVM() bool {
	return c.resolveFlag(&c.alternateVM, "alternate vm",
		AlternateVMOverrideProp, AlternateVMDetectionProps, AlternateVMMatcher)
}

// SetAlternateVM overrides the value reported by IsAlternateVM.
func (c *Context) SetAlternateVM(v bool) {
	c.alternateVM.set(v)
}

// ResetAlternateVM discards the cached flag so the next read re-runs
// detection.
func (c *Context) ResetAlternateVM() {
	c.alternateVM.reset()
}

// resolveFlag runs one full detection pass for a boolean platform
// flag: the override property first, then the detection properties in
// declared order, short-circuiting on the first value the matcher
// accepts.
func (c *Context) resolveFlag(cl *cell[bool], flag, overrideProp string, detectionProps []string, match func(string) bool) bool {
	v, _ := cl.resolve(func() (bool, error) {
		if raw, ok := c.src.Lookup(overrideProp); ok && match(raw) {
			c.log.Debug("flag set by override property", "flag", flag, "property", overrideProp)
			return true, nil
		}

		for _, prop := range detectionProps {
			if raw, ok := c.src.Lookup(prop); ok && match(raw) {
				c.log.Debug("flag detected", "flag", flag, "property", prop)
				return true, nil
			}
		}

		c.log.Debug("flag not detected", "flag", flag)
		return false, nil
	})
	return v
}
