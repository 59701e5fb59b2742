// pkg/searchpath/builder.go
package searchpath

import (
	"fmt"
	"strings"

	"github.com/denv-tools/denv/pkg/platform"
)

// ResolutionError reports that the resolver could not produce a directory
// list for a declared package. It aborts the whole build: silently skipping
// a package would surface later as a confusing dynamic-link failure instead
// of a clear configuration error.
type ResolutionError struct {
	Package PackageRef
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %s: %v", e.Package, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Builder assembles a dynamic-linker search path from declared packages.
// The zero value is not usable; use NewBuilder or NewBuilderWithSeparator.
type Builder struct {
	sep string
}

// NewBuilder creates a Builder joining entries with the current
// platform's list separator (":" on POSIX, ";" on Windows). If the
// platform cannot be detected it falls back to ":".
func NewBuilder() *Builder {
	sep := ":"
	if p, err := platform.Detect(); err == nil {
		sep = p.ListSeparator()
	}
	return &Builder{sep: sep}
}

// NewBuilderWithSeparator creates a Builder with an explicit separator
func NewBuilderWithSeparator(sep string) *Builder {
	return &Builder{sep: sep}
}

// Build resolves each package in declaration order and joins the resulting
// directories into a single search-path string.
//
// The resolver is invoked exactly once per package, strictly in input
// order: the first-declared package's directories come first, so it wins
// in a linker that scans left to right. The first resolver error aborts
// the build with a *ResolutionError naming the package; no further
// resolver calls are made. Empty-string entries returned by the resolver
// are dropped. Duplicate directories are preserved.
//
// An empty package list is valid and yields the empty string.
func (b *Builder) Build(packages []PackageRef, resolver Resolver) (string, error) {
	var dirs []string
	for _, ref := range packages {
		entries, err := resolver.Resolve(ref)
		if err != nil {
			return "", &ResolutionError{Package: ref, Err: err}
		}
		for _, dir := range entries {
			if dir == "" {
				continue
			}
			dirs = append(dirs, dir)
		}
	}
	return strings.Join(dirs, b.sep), nil
}

// Build is a convenience wrapper using the platform default separator
func Build(packages []PackageRef, resolver Resolver) (string, error) {
	return NewBuilder().Build(packages, resolver)
}
