package platform

import (
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

func newTestContext(src props.Source) *Context {
	return New(WithSource(src))
}

func TestOSType_Normalizes(t *testing.T) {
	c := newTestContext(props.Static{"os.name": "  Windows Server 2022  "})

	if got := c.OSType(); got != "windows server 2022" {
		t.Errorf("OSType() = %q, want %q", got, "windows server 2022")
	}
}

func TestOSType_OverridePropertyWins(t *testing.T) {
	c := newTestContext(props.Static{
		OSTypeOverrideProp: "Windows 11",
		"os.name":          "linux",
	})

	if got := c.OSType(); got != "windows 11" {
		t.Errorf("OSType() = %q, want %q", got, "windows 11")
	}
	if !c.IsWindows() {
		t.Error("IsWindows() = false, want true")
	}
}

func TestOSType_DefaultsToRuntime(t *testing.T) {
	c := New(WithSource(props.Process()))

	if got := c.OSType(); got != runtime.GOOS {
		t.Errorf("OSType() = %q, want %q", got, runtime.GOOS)
	}
}

func TestOSType_Cached(t *testing.T) {
	src := props.Static{"os.name": "linux"}
	c := newTestContext(src)

	if got := c.OSType(); got != "linux" {
		t.Fatalf("OSType() = %q, want %q", got, "linux")
	}

	// Changing the source after resolution must not be observed.
	src["os.name"] = "windows"
	if got := c.OSType(); got != "linux" {
		t.Errorf("OSType() after source change = %q, want cached %q", got, "linux")
	}
}

func TestSetOSType_ReplacesCache(t *testing.T) {
	c := newTestContext(props.Static{"os.name": "linux"})
	_ = c.OSType()

	c.SetOSType("Windows 10")

	if got := c.OSType(); got != "windows 10" {
		t.Errorf("OSType() = %q, want %q", got, "windows 10")
	}
}

func TestResetOSType_ForcesRedetection(t *testing.T) {
	src := props.Static{"os.name": "linux"}
	c := newTestContext(src)
	_ = c.OSType()

	src["os.name"] = "windows"
	c.ResetOSType()

	if got := c.OSType(); got != "windows" {
		t.Errorf("OSType() after reset = %q, want %q", got, "windows")
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		osName  string
		windows bool
		macOS   bool
		unix    bool
	}{
		{osName: "windows", windows: true},
		{osName: "Windows Server 2019", windows: true},
		{osName: "darwin", macOS: true},
		{osName: "Mac OS X", macOS: true},
		{osName: "linux", unix: true},
		{osName: "freebsd", unix: true},
		{osName: "android", unix: true},
		{osName: "", unix: true},
	}

	for _, tt := range tests {
		name := tt.osName
		if name == "" {
			name = "unresolvable"
		}
		t.Run(name, func(t *testing.T) {
			c := newTestContext(props.Static{"os.name": tt.osName})

			if got := c.IsWindows(); got != tt.windows {
				t.Errorf("IsWindows() = %v, want %v", got, tt.windows)
			}
			if got := c.IsMacOS(); got != tt.macOS {
				t.Errorf("IsMacOS() = %v, want %v", got, tt.macOS)
			}
			if got := c.IsUnix(); got != tt.unix {
				t.Errorf("IsUnix() = %v, want %v", got, tt.unix)
			}
		})
	}
}

func TestClassification_IndependentOfFlags(t *testing.T) {
	// An Android host is a constrained runtime and Unix-like at once.
	c := newTestContext(props.Static{"os.name": "android"})

	if !c.IsConstrainedRuntime() {
		t.Error("IsConstrainedRuntime() = false, want true")
	}
	if !c.IsUnix() {
		t.Error("IsUnix() = false, want true")
	}
	if c.IsWindows() || c.IsMacOS() {
		t.Error("android host misclassified as windows or macOS")
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same instance")
	}

	if got := Default().OSType(); !strings.Contains(got, runtime.GOOS) {
		t.Errorf("Default().OSType() = %q, want it to contain %q", got, runtime.GOOS)
	}
}
