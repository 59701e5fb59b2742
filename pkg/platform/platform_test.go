package platform

import (
	"runtime"
	"testing"
)

func TestDetectMatchesRuntime(t *testing.T) {
	p, err := Detect()
	if err != nil {
		t.Skipf("platform not supported in this test environment: %v", err)
	}

	if !p.IsValid() {
		t.Errorf("Detect() returned invalid platform %q", p)
	}

	if got := p.OS(); got != runtime.GOOS {
		t.Errorf("OS() = %q, want %q", got, runtime.GOOS)
	}
}

func TestListSeparator(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{PlatformX8664Linux, ":"},
		{PlatformAarch64Linux, ":"},
		{PlatformX8664Darwin, ":"},
		{PlatformAarch64Darwin, ":"},
		{PlatformX8664Windows, ";"},
		{PlatformAarch64Windows, ";"},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			if got := tt.platform.ListSeparator(); got != tt.want {
				t.Errorf("ListSeparator() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLibraryPathVar(t *testing.T) {
	tests := []struct {
		platform Platform
		want     string
	}{
		{PlatformX8664Linux, "LD_LIBRARY_PATH"},
		{PlatformArmv7lLinux, "LD_LIBRARY_PATH"},
		{PlatformX8664Darwin, "DYLD_LIBRARY_PATH"},
		{PlatformAarch64Darwin, "DYLD_LIBRARY_PATH"},
		{PlatformX8664Windows, "PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			if got := tt.platform.LibraryPathVar(); got != tt.want {
				t.Errorf("LibraryPathVar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if Platform("mips64-linux").IsValid() {
		t.Error("unexpected platform reported as valid")
	}
	if !PlatformX8664Linux.IsValid() {
		t.Error("x86_64-linux should be valid")
	}
}
