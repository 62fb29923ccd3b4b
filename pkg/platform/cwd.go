package platform

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

// WorkingDirSource supplies the current working directory. Returning
// false means the directory is unknown.
type WorkingDirSource func() (string, bool)

// WorkingDir returns the current working directory. A registered
// WorkingDirSource is invoked on every call and its answer returned
// verbatim; the result is never cached because the source is allowed
// to be dynamic. With no source registered the props.UserDirProp
// property is consulted instead, and a blank value means unknown.
func (c *Context) WorkingDir() (string, bool) {
	c.cwdMu.Lock()
	src := c.cwdSrc
	c.cwdMu.Unlock()

	if src != nil {
		return src()
	}

	raw, ok := c.src.Lookup(props.UserDirProp)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return filepath.Clean(raw), true
}

// SetWorkingDirSource registers a pluggable working-directory source.
// A nil source reverts WorkingDir to the property fallback.
func (c *Context) SetWorkingDirSource(src WorkingDirSource) {
	c.cwdMu.Lock()
	defer c.cwdMu.Unlock()
	c.cwdSrc = src
}
