package platform

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

// RootUser is the conventional superuser name on Unix-like systems.
const RootUser = "root"

// ErrMissingIdentity indicates that no username could be resolved from
// the override property or the process environment. This is a
// configuration error, not a transient condition; supply
// CurrentUserOverrideProp or call SetCurrentUser before retrying.
var ErrMissingIdentity = errors.New("no username available")

// CurrentUser returns the canonical current user name. It is resolved
// once from CurrentUserOverrideProp, falling back to the
// process-provided login name, canonicalized via CanonicalUser, and
// cached. A blank result fails with ErrMissingIdentity and leaves the
// cache unresolved, so a later call can succeed once an override is
// supplied.
func (c *Context) CurrentUser() (string, error) {
	return c.user.resolve(func() (string, error) {
		raw, _ := props.Value(c.src, CurrentUserOverrideProp, props.UserNameProp)
		user := c.CanonicalUser(raw)
		if strings.TrimSpace(user) == "" {
			return "", errors.Wrap(ErrMissingIdentity, "resolving current user")
		}
		c.log.Debug("resolved current user", "user", user)
		return user, nil
	})
}

// SetCurrentUser overrides the value reported by CurrentUser.
func (c *Context) SetCurrentUser(user string) {
	c.user.set(user)
}

// ResetCurrentUser discards the cached user so the next read re-runs
// resolution.
func (c *Context) ResetCurrentUser() {
	c.user.reset()
}

// CanonicalUser strips OS-specific decorations from a username. On
// Windows the owner sometimes has the domain or machine prepended
// ("DOMAIN\jdoe") and a parenthesized group appended
// ("jdoe (Remote Users)"); both are removed. On other systems the
// input is returned unchanged, as is a blank input.
func (c *Context) CanonicalUser(user string) string {
	if user == "" {
		return user
	}

	if c.IsWindows() {
		if pos := strings.LastIndexByte(user, '\\'); pos > 0 {
			user = user[pos+1:]
		}
		if pos := strings.IndexByte(user, ' '); pos > 0 {
			user = strings.TrimSpace(user[:pos])
		}
	}

	return user
}

// ResolveCanonicalGroup attempts to resolve the canonical group name
// for Windows, where the owner name sometimes carries the group as a
// domain prefix. On Unix-like systems group is returned unchanged. A
// blank group is derived from the text preceding the last backslash of
// user, if any; a non-blank group is truncated at its first space.
func (c *Context) ResolveCanonicalGroup(group, user string) string {
	if c.IsUnix() {
		return group
	}

	if group == "" {
		pos := strings.LastIndexByte(user, '\\')
		if pos > 0 {
			return user[:pos]
		}
		return group
	}

	pos := strings.IndexByte(group, ' ')
	if pos < 0 {
		return group
	}
	return strings.TrimSpace(group[:pos])
}
