// pkg/manifest/types.go
package manifest

import "github.com/denv-tools/denv/pkg/searchpath"

// Manifest is the declarative environment descriptor: everything a
// project needs to build and run its native application, declared once
// and checked into the repository.
type Manifest struct {
	// Name identifies the environment (usually the project name)
	Name string `yaml:"name"`

	// Toolchain pins the compiler toolchain. Pure data: denv records it
	// for the provisioning layer but attaches no behavior to it.
	Toolchain Toolchain `yaml:"toolchain,omitempty"`

	// Editor lists editor tooling to provision. Pure data, like Toolchain.
	Editor Editor `yaml:"editor,omitempty"`

	// BuildInputs are tools needed at build time only (pkg-config, cmake, ...).
	// They are materialized into the store but contribute nothing to the
	// linker search path.
	BuildInputs []string `yaml:"build_inputs,omitempty"`

	// Libraries are the native shared-library packages the built
	// application loads at runtime. Order matters: earlier entries take
	// precedence in a linker that scans the search path left to right.
	Libraries []Library `yaml:"libraries"`
}

// Toolchain pins a compiler toolchain version
type Toolchain struct {
	Name       string   `yaml:"name"`
	Channel    string   `yaml:"channel,omitempty"`
	Version    string   `yaml:"version,omitempty"`
	Components []string `yaml:"components,omitempty"`
}

// Editor declares editor tooling for the environment
type Editor struct {
	Extensions []string `yaml:"extensions,omitempty"`
}

// Library declares one runtime native-library dependency
type Library struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// Ref converts the declaration to a searchpath.PackageRef
func (l Library) Ref() searchpath.PackageRef {
	return searchpath.PackageRef{
		Name:    l.Name,
		Version: l.Version,
		Output:  l.Output,
	}
}

// LibraryRefs returns the declared libraries as PackageRefs in
// declaration order
func (m *Manifest) LibraryRefs() []searchpath.PackageRef {
	refs := make([]searchpath.PackageRef, len(m.Libraries))
	for i, lib := range m.Libraries {
		refs[i] = lib.Ref()
	}
	return refs
}
