// pkg/platform/platform.go
package platform

import (
	"fmt"
	"runtime"
)

// Platform represents a Nix-style platform double (arch-os)
type Platform string

const (
	// Linux platforms
	PlatformX8664Linux   Platform = "x86_64-linux"
	PlatformI686Linux    Platform = "i686-linux"
	PlatformAarch64Linux Platform = "aarch64-linux"
	PlatformArmv7lLinux  Platform = "armv7l-linux"

	// macOS platforms
	PlatformX8664Darwin   Platform = "x86_64-darwin"
	PlatformAarch64Darwin Platform = "aarch64-darwin"

	// Windows platforms
	PlatformX8664Windows   Platform = "x86_64-windows"
	PlatformAarch64Windows Platform = "aarch64-windows"
)

// AllPlatforms contains the platforms denv knows how to provision
var AllPlatforms = []Platform{
	PlatformX8664Linux,
	PlatformI686Linux,
	PlatformAarch64Linux,
	PlatformArmv7lLinux,
	PlatformX8664Darwin,
	PlatformAarch64Darwin,
	PlatformX8664Windows,
	PlatformAarch64Windows,
}

// Detect automatically detects the current platform
func Detect() (Platform, error) {
	goos := runtime.GOOS
	goarch := runtime.GOARCH

	switch goos {
	case "linux":
		switch goarch {
		case "amd64":
			return PlatformX8664Linux, nil
		case "386":
			return PlatformI686Linux, nil
		case "arm64":
			return PlatformAarch64Linux, nil
		case "arm":
			return PlatformArmv7lLinux, nil
		default:
			return "", fmt.Errorf("unsupported Linux architecture: %s", goarch)
		}

	case "darwin":
		switch goarch {
		case "amd64":
			return PlatformX8664Darwin, nil
		case "arm64":
			return PlatformAarch64Darwin, nil
		default:
			return "", fmt.Errorf("unsupported Darwin architecture: %s", goarch)
		}

	case "windows":
		switch goarch {
		case "amd64":
			return PlatformX8664Windows, nil
		case "arm64":
			return PlatformAarch64Windows, nil
		default:
			return "", fmt.Errorf("unsupported Windows architecture: %s", goarch)
		}

	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the platform is a known valid platform
func (p Platform) IsValid() bool {
	for _, valid := range AllPlatforms {
		if p == valid {
			return true
		}
	}
	return false
}

// OS returns the operating system part of the platform double
func (p Platform) OS() string {
	switch p {
	case PlatformX8664Linux, PlatformI686Linux, PlatformAarch64Linux, PlatformArmv7lLinux:
		return "linux"
	case PlatformX8664Darwin, PlatformAarch64Darwin:
		return "darwin"
	case PlatformX8664Windows, PlatformAarch64Windows:
		return "windows"
	default:
		return ""
	}
}

// ListSeparator returns the search-path list separator for the platform:
// ":" on POSIX-like systems, ";" on Windows
func (p Platform) ListSeparator() string {
	if p.OS() == "windows" {
		return ";"
	}
	return ":"
}

// LibraryPathVar returns the environment variable consulted by the
// platform's dynamic linker when locating shared libraries
func (p Platform) LibraryPathVar() string {
	switch p.OS() {
	case "darwin":
		return "DYLD_LIBRARY_PATH"
	case "windows":
		// Windows has no dedicated linker path variable; DLL lookup
		// walks PATH
		return "PATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}
