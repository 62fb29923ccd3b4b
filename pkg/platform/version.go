package platform

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

// Version resolution errors. Both are configuration errors, not
// transient conditions; supply RuntimeVersionOverrideProp or call
// SetRuntimeVersion before retrying.
var (
	// ErrMissingVersion indicates that no runtime version string could
	// be resolved at all.
	ErrMissingVersion = errors.New("no runtime version value")

	// ErrUnparsableVersion indicates that the resolved version string
	// yields no numeric components after sanitization.
	ErrUnparsableVersion = errors.New("unparsable runtime version")
)

// VersionInfo is an immutable ordered sequence of non-negative integer
// version components, e.g. [1 8 0 362] for "1.8.0_362-b09".
type VersionInfo struct {
	components []int
}

// ParseVersion parses a dotted digit string into a VersionInfo. Empty
// segments are skipped; a string that yields no components, or any
// non-numeric segment, is an error.
func ParseVersion(s string) (VersionInfo, error) {
	var components []int
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			continue
		}
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return VersionInfo{}, errors.Newf("invalid version component %q in %q", seg, s)
		}
		components = append(components, n)
	}

	if len(components) == 0 {
		return VersionInfo{}, errors.Newf("no version components in %q", s)
	}

	return VersionInfo{components: components}, nil
}

// MakeVersion builds a VersionInfo from explicit components. It is the
// programmatic counterpart of ParseVersion for use with
// SetRuntimeVersion.
func MakeVersion(components ...int) VersionInfo {
	c := make([]int, len(components))
	copy(c, components)
	return VersionInfo{components: c}
}

// Components returns a copy of the version component sequence.
func (v VersionInfo) Components() []int {
	c := make([]int, len(v.components))
	copy(c, v.components)
	return c
}

// IsZero reports whether v carries no components, i.e. was never
// parsed or built.
func (v VersionInfo) IsZero() bool {
	return len(v.components) == 0
}

// Equal reports whether two versions have identical component
// sequences.
func (v VersionInfo) Equal(o VersionInfo) bool {
	if len(v.components) != len(o.components) {
		return false
	}
	for i, n := range v.components {
		if n != o.components[i] {
			return false
		}
	}
	return true
}

// Compare orders versions component-wise, treating missing trailing
// components as zero. It returns -1, 0, or 1.
func (v VersionInfo) Compare(o VersionInfo) int {
	n := len(v.components)
	if len(o.components) > n {
		n = len(o.components)
	}
	for i := 0; i < n; i++ {
		var a, b int
		if i < len(v.components) {
			a = v.components[i]
		}
		if i < len(o.components) {
			b = o.components[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the version in dotted form.
func (v VersionInfo) String() string {
	parts := make([]string, len(v.components))
	for i, n := range v.components {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// RuntimeVersion returns the structured runtime version. It is
// resolved once from RuntimeVersionOverrideProp, falling back to the
// process-provided toolchain version, and cached. The raw string is
// normalized before parsing: underscores become dots (legacy
// "major.minor.patch_update" formats) and the string is truncated at
// the first character that is neither a digit nor a dot, which strips
// build and pre-release suffixes such as "-b09". Absence fails with
// ErrMissingVersion, an empty parse with ErrUnparsableVersion; neither
// caches anything.
func (c *Context) RuntimeVersion() (VersionInfo, error) {
	return c.version.resolve(func() (VersionInfo, error) {
		raw, ok := props.Value(c.src, RuntimeVersionOverrideProp, props.GoVersionProp)
		if !ok || strings.TrimSpace(raw) == "" {
			return VersionInfo{}, errors.Wrap(ErrMissingVersion, "resolving runtime version")
		}

		v, err := ParseRuntimeVersion(raw)
		if err != nil {
			return VersionInfo{}, err
		}

		c.log.Debug("resolved runtime version", "version", v.String())
		return v, nil
	})
}

// SetRuntimeVersion overrides the value reported by RuntimeVersion.
func (c *Context) SetRuntimeVersion(v VersionInfo) {
	c.version.set(v)
}

// ResetRuntimeVersion discards the cached version so the next read
// re-runs resolution.
func (c *Context) ResetRuntimeVersion() {
	c.version.reset()
}

// ParseRuntimeVersion parses a raw runtime version string after
// normalizing it: underscores become dots and the string is truncated
// at the first character that is neither a digit nor a dot. An empty
// parse yields ErrUnparsableVersion.
func ParseRuntimeVersion(raw string) (VersionInfo, error) {
	v, err := ParseVersion(sanitizeVersion(raw))
	if err != nil {
		return VersionInfo{}, errors.Wrapf(ErrUnparsableVersion, "%q", raw)
	}
	return v, nil
}

// sanitizeVersion maps underscores to dots, then truncates at the
// first character that is neither a digit nor a dot.
func sanitizeVersion(s string) string {
	s = strings.ReplaceAll(s, "_", ".")
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '.' || (ch >= '0' && ch <= '9') {
			continue
		}
		return s[:i]
	}
	return s
}
