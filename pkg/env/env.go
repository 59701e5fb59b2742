// pkg/env/env.go
package env

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/denv-tools/denv/pkg/platform"
)

// Exports is an ordered set of environment variables describing a
// provisioned environment. It is applied to individual commands rather
// than the denv process itself, so nothing leaks across invocations or
// tests.
type Exports struct {
	names  []string
	values map[string]string
}

// New creates an empty export set
func New() *Exports {
	return &Exports{
		values: make(map[string]string),
	}
}

// Set adds or replaces a variable
func (e *Exports) Set(name, value string) {
	if _, ok := e.values[name]; !ok {
		e.names = append(e.names, name)
	}
	e.values[name] = value
}

// Get returns a variable's value
func (e *Exports) Get(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Pairs returns the variables as NAME=value strings in insertion order
func (e *Exports) Pairs() []string {
	pairs := make([]string, 0, len(e.names))
	for _, name := range e.names {
		pairs = append(pairs, name+"="+e.values[name])
	}
	return pairs
}

// ShellLines renders the variables as POSIX shell export statements,
// suitable for eval in the caller's shell
func (e *Exports) ShellLines() []string {
	lines := make([]string, 0, len(e.names))
	for _, name := range e.names {
		lines = append(lines, fmt.Sprintf("export %s=%q", name, e.values[name]))
	}
	return lines
}

// Apply configures cmd to run with the exports layered over the current
// process environment. The denv process environment itself is never
// mutated.
func (e *Exports) Apply(cmd *exec.Cmd) {
	base := cmd.Env
	if base == nil {
		base = os.Environ()
	}
	cmd.Env = append(base, e.Pairs()...)
}

// Assemble builds the export set for a resolved library search path.
// An empty search path yields an empty export set: declaring no native
// libraries is a valid environment, not an error.
func Assemble(p platform.Platform, searchPath string) *Exports {
	e := New()
	if searchPath == "" {
		return e
	}

	e.Set(p.LibraryPathVar(), searchPath)

	dirs := strings.Split(searchPath, p.ListSeparator())
	if pcPath := pkgConfigPath(dirs, p.ListSeparator()); pcPath != "" {
		e.Set("PKG_CONFIG_PATH", pcPath)
	}

	flags := FlagsForDirs(dirs)
	if len(flags.IncludeFlags) > 0 {
		e.Set("CFLAGS", strings.Join(flags.IncludeFlags, " "))
	}
	if len(flags.LibraryFlags) > 0 {
		e.Set("LDFLAGS", strings.Join(flags.LibraryFlags, " "))
	}

	return e
}

// pkgConfigPath derives the pkg-config search path from library
// directories. Directories that lack a pkgconfig subdirectory are
// harmless: pkg-config ignores missing entries.
func pkgConfigPath(libDirs []string, sep string) string {
	entries := make([]string, 0, len(libDirs))
	for _, dir := range libDirs {
		if dir == "" {
			continue
		}
		entries = append(entries, dir+"/pkgconfig")
	}
	return strings.Join(entries, sep)
}
