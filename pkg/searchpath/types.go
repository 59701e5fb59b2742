// pkg/searchpath/types.go
package searchpath

// PackageRef identifies a declared native-library dependency.
// It is a plain value: created when the environment is declared and
// never mutated afterwards.
type PackageRef struct {
	Name    string // Package name (e.g., "alsa-lib")
	Version string // Optional: specific version pin
	Output  string // Optional: which package output holds the libraries (lib, out, ...)
}

// String returns the canonical form used in error messages and logs
func (r PackageRef) String() string {
	s := r.Name
	if r.Version != "" {
		s += "-" + r.Version
	}
	if r.Output != "" {
		s += ":" + r.Output
	}
	return s
}

// Resolver maps a PackageRef to the filesystem directories containing its
// shared libraries on the current target platform. Zero, one, or many
// directories per package. Resolution is expected to be pure: the same
// ref yields the same directories within a single program run.
type Resolver interface {
	Resolve(ref PackageRef) ([]string, error)
}

// ResolverFunc adapts a plain function to the Resolver interface
type ResolverFunc func(ref PackageRef) ([]string, error)

// Resolve calls f(ref)
func (f ResolverFunc) Resolve(ref PackageRef) ([]string, error) {
	return f(ref)
}
