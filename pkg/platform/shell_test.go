package platform

import (
	"reflect"
	"testing"

	"github.com/thoreinstein/hostinfo/pkg/props"
)

func TestDefaultInteractiveShellCommand(t *testing.T) {
	if got := DefaultInteractiveShellCommand(true); got != "cmd.exe" {
		t.Errorf("DefaultInteractiveShellCommand(true) = %q, want %q", got, "cmd.exe")
	}
	if got := DefaultInteractiveShellCommand(false); got != "/bin/sh -i -l" {
		t.Errorf("DefaultInteractiveShellCommand(false) = %q, want %q", got, "/bin/sh -i -l")
	}
}

func TestDefaultInteractiveCommandElements(t *testing.T) {
	if got := DefaultInteractiveCommandElements(true); !reflect.DeepEqual(got, []string{"cmd.exe"}) {
		t.Errorf("DefaultInteractiveCommandElements(true) = %v, want [cmd.exe]", got)
	}

	want := []string{"/bin/sh", "-i", "-l"}
	got := DefaultInteractiveCommandElements(false)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultInteractiveCommandElements(false) = %v, want %v", got, want)
	}

	// Callers may mutate the result without affecting later calls.
	got[0] = "/bin/bash"
	if again := DefaultInteractiveCommandElements(false); !reflect.DeepEqual(again, want) {
		t.Errorf("shared command table mutated: %v", again)
	}
}

func TestContext_DefaultInteractiveCommands(t *testing.T) {
	win := newTestContext(props.Static{"os.name": "windows"})
	unix := newTestContext(props.Static{"os.name": "linux"})

	if got := win.DefaultInteractiveShellCommand(); got != "cmd.exe" {
		t.Errorf("windows shell command = %q, want cmd.exe", got)
	}
	if got := unix.DefaultInteractiveShellCommand(); got != "/bin/sh -i -l" {
		t.Errorf("unix shell command = %q, want /bin/sh -i -l", got)
	}
	if got := unix.DefaultInteractiveCommandElements(); len(got) != 3 {
		t.Errorf("unix command elements = %v, want 3 elements", got)
	}
}

func TestComparablePath(t *testing.T) {
	win := newTestContext(props.Static{"os.name": "windows"})
	unix := newTestContext(props.Static{"os.name": "linux"})

	if win.ComparablePath("/Foo/Bar") != win.ComparablePath("/foo/bar") {
		t.Error("windows comparable paths should be case-insensitive")
	}
	if unix.ComparablePath("/Foo/Bar") == unix.ComparablePath("/foo/bar") {
		t.Error("unix comparable paths should be case-sensitive")
	}
	if got := win.ComparablePath(""); got != "" {
		t.Errorf("ComparablePath(\"\") = %q, want empty", got)
	}
}
