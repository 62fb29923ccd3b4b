package platform

import "strings"

// Fixed shell command names per OS family.
const (
	// WindowsShellCommandName is the Windows command interpreter.
	WindowsShellCommandName = "cmd.exe"

	// UnixShellCommandName is the standard Unix shell path.
	UnixShellCommandName = "/bin/sh"
)

// DefaultInteractiveShellCommand returns the default interactive shell
// invocation as a single string: the Windows command interpreter, or
// the Unix shell with interactive and login flags appended.
func DefaultInteractiveShellCommand(windows bool) string {
	if windows {
		return WindowsShellCommandName
	}
	return UnixShellCommandName + " -i -l"
}

// DefaultInteractiveCommandElements returns the default interactive
// shell invocation as an ordered argument list: a single Windows
// element, or the Unix shell path plus its interactive and login
// flags. The returned slice is a fresh copy.
func DefaultInteractiveCommandElements(windows bool) []string {
	if windows {
		return []string{WindowsShellCommandName}
	}
	return []string{UnixShellCommandName, "-i", "-l"}
}

// DefaultInteractiveShellCommand returns the default interactive shell
// invocation for this context's OS classification.
func (c *Context) DefaultInteractiveShellCommand() string {
	return DefaultInteractiveShellCommand(c.IsWindows())
}

// DefaultInteractiveCommandElements returns the default interactive
// command argument list for this context's OS classification.
func (c *Context) DefaultInteractiveCommandElements() []string {
	return DefaultInteractiveCommandElements(c.IsWindows())
}

// ComparablePath returns a path that can be compared with another one
// with the case sensitivity of the underlying OS taken into account:
// lower-cased on Windows, unchanged elsewhere.
func (c *Context) ComparablePath(path string) string {
	if c.IsWindows() {
		return strings.ToLower(path)
	}
	return path
}
