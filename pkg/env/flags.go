// pkg/env/flags.go
package env

import (
	"path/filepath"
	"strings"
)

// CompilerFlags holds linker and include flags derived from resolved
// library directories
type CompilerFlags struct {
	LibraryFlags []string // -L flags
	IncludeFlags []string // -I flags
}

// FlagsForDirs derives compiler flags from library directories. The
// include directory is assumed to sit next to lib/ or lib64/ in the
// same store entry, which is how cache-built packages are laid out.
func FlagsForDirs(libDirs []string) CompilerFlags {
	var flags CompilerFlags
	for _, dir := range libDirs {
		if dir == "" {
			continue
		}
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+dir)

		base := filepath.Base(dir)
		if strings.HasPrefix(base, "lib") {
			include := filepath.Join(filepath.Dir(dir), "include")
			flags.IncludeFlags = append(flags.IncludeFlags, "-I"+include)
		}
	}
	return flags
}
