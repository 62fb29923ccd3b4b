package platform

import (
	"strings"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

// OSType returns the normalized (trimmed, lower-cased) operating
// system type string. It is resolved once from OSTypeOverrideProp,
// falling back to the process-provided OS name, and cached for the
// lifetime of the Context unless replaced via SetOSType.
func (c *Context) OSType() string {
	v, _ := c.osType.resolve(func() (string, error) {
		raw, _ := props.Value(c.src, OSTypeOverrideProp, props.OSNameProp)
		osType := strings.ToLower(strings.TrimSpace(raw))
		c.log.Debug("resolved os type", "type", osType)
		return osType, nil
	})
	return v
}

// SetOSType replaces the cached OS type unconditionally. It can be
// used to enforce a Windows or Unix report from IsWindows, IsMacOS and
// IsUnix.
func (c *Context) SetOSType(osType string) {
	c.osType.set(strings.ToLower(strings.TrimSpace(osType)))
}

// ResetOSType discards the cached OS type so the next read re-runs
// detection.
func (c *Context) ResetOSType() {
	c.osType.reset()
}

// IsWindows reports whether the host is Windows.
func (c *Context) IsWindows() bool {
	return strings.Contains(c.OSType(), "windows")
}

// IsMacOS reports whether the host is macOS. The Go runtime spells the
// OS name "darwin", so both spellings classify as macOS.
func (c *Context) IsMacOS() bool {
	osType := c.OSType()
	return strings.Contains(osType, "mac") || strings.Contains(osType, "darwin")
}

// IsUnix reports whether the host is a Unix-like system. This is the
// residual classification: anything that is neither Windows nor macOS.
// Note that IsConstrainedRuntime may be true as well, so code that
// consults both must take care.
func (c *Context) IsUnix() bool {
	return !c.IsWindows() && !c.IsMacOS()
}
