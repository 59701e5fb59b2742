package env

import (
	"os"
	"os/exec"
	"testing"

	"github.com/denv-tools/denv/pkg/platform"
)

func TestExportsOrderAndLookup(t *testing.T) {
	e := New()
	e.Set("LD_LIBRARY_PATH", "/a/lib:/b/lib")
	e.Set("PKG_CONFIG_PATH", "/a/lib/pkgconfig")
	e.Set("LD_LIBRARY_PATH", "/c/lib") // replace, keep position

	pairs := e.Pairs()
	want := []string{
		"LD_LIBRARY_PATH=/c/lib",
		"PKG_CONFIG_PATH=/a/lib/pkgconfig",
	}
	if len(pairs) != len(want) {
		t.Fatalf("len(pairs) = %d, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pairs[%d] = %q, want %q", i, pairs[i], want[i])
		}
	}

	if v, ok := e.Get("LD_LIBRARY_PATH"); !ok || v != "/c/lib" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
}

func TestShellLines(t *testing.T) {
	e := New()
	e.Set("LD_LIBRARY_PATH", "/nix/store/xxx-udev/lib")

	lines := e.ShellLines()
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d", len(lines))
	}
	if lines[0] != `export LD_LIBRARY_PATH="/nix/store/xxx-udev/lib"` {
		t.Errorf("line = %q", lines[0])
	}
}

func TestApplyIsScoped(t *testing.T) {
	e := New()
	e.Set("DENV_TEST_MARKER", "set")

	cmd := exec.Command("true")
	e.Apply(cmd)

	found := false
	for _, pair := range cmd.Env {
		if pair == "DENV_TEST_MARKER=set" {
			found = true
		}
	}
	if !found {
		t.Error("exported variable missing from command environment")
	}

	// The variable must not leak into the test process itself
	if _, ok := os.LookupEnv("DENV_TEST_MARKER"); ok {
		t.Error("Apply() mutated the process environment")
	}
}

func TestAssemble(t *testing.T) {
	searchPath := "/nix/store/xxx-udev/lib:/nix/store/yyy-alsa-lib/lib"
	e := Assemble(platform.PlatformX8664Linux, searchPath)

	if v, _ := e.Get("LD_LIBRARY_PATH"); v != searchPath {
		t.Errorf("LD_LIBRARY_PATH = %q", v)
	}
	wantPC := "/nix/store/xxx-udev/lib/pkgconfig:/nix/store/yyy-alsa-lib/lib/pkgconfig"
	if v, _ := e.Get("PKG_CONFIG_PATH"); v != wantPC {
		t.Errorf("PKG_CONFIG_PATH = %q, want %q", v, wantPC)
	}
}

func TestAssembleDarwin(t *testing.T) {
	e := Assemble(platform.PlatformAarch64Darwin, "/opt/store/aaa-libpng/lib")
	if _, ok := e.Get("DYLD_LIBRARY_PATH"); !ok {
		t.Error("expected DYLD_LIBRARY_PATH on darwin")
	}
	if _, ok := e.Get("LD_LIBRARY_PATH"); ok {
		t.Error("unexpected LD_LIBRARY_PATH on darwin")
	}
}

func TestAssembleCompilerFlags(t *testing.T) {
	searchPath := "/nix/store/xxx-udev-255/lib:/nix/store/ccc-gcc-13.2.0/lib64"
	e := Assemble(platform.PlatformX8664Linux, searchPath)

	wantLD := "-L/nix/store/xxx-udev-255/lib -L/nix/store/ccc-gcc-13.2.0/lib64"
	if v, _ := e.Get("LDFLAGS"); v != wantLD {
		t.Errorf("LDFLAGS = %q, want %q", v, wantLD)
	}

	wantC := "-I/nix/store/xxx-udev-255/include -I/nix/store/ccc-gcc-13.2.0/include"
	if v, _ := e.Get("CFLAGS"); v != wantC {
		t.Errorf("CFLAGS = %q, want %q", v, wantC)
	}
}

func TestAssembleEmptySearchPath(t *testing.T) {
	e := Assemble(platform.PlatformX8664Linux, "")
	if len(e.Pairs()) != 0 {
		t.Errorf("empty search path produced exports: %v", e.Pairs())
	}
}

func TestFlagsForDirs(t *testing.T) {
	flags := FlagsForDirs([]string{
		"/nix/store/xxx-udev-255/lib",
		"/nix/store/ccc-gcc-13.2.0/lib64",
		"",
	})

	wantL := []string{
		"-L/nix/store/xxx-udev-255/lib",
		"-L/nix/store/ccc-gcc-13.2.0/lib64",
	}
	if len(flags.LibraryFlags) != len(wantL) {
		t.Fatalf("LibraryFlags = %v", flags.LibraryFlags)
	}
	for i := range wantL {
		if flags.LibraryFlags[i] != wantL[i] {
			t.Errorf("LibraryFlags[%d] = %q, want %q", i, flags.LibraryFlags[i], wantL[i])
		}
	}

	wantI := []string{
		"-I/nix/store/xxx-udev-255/include",
		"-I/nix/store/ccc-gcc-13.2.0/include",
	}
	if len(flags.IncludeFlags) != len(wantI) {
		t.Fatalf("IncludeFlags = %v", flags.IncludeFlags)
	}
	for i := range wantI {
		if flags.IncludeFlags[i] != wantI[i] {
			t.Errorf("IncludeFlags[%d] = %q, want %q", i, flags.IncludeFlags[i], wantI[i])
		}
	}
}
