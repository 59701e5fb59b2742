// pkg/manifest/manifest.go
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the manifest file denv looks for in the project root
const DefaultFileName = "denv.yaml"

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates manifest bytes
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Save writes the manifest to path
func Save(m *Manifest, path string) error {
	if path == "" {
		path = DefaultFileName
	}

	if err := m.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

// Validate checks the manifest for declaration errors
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}

	seen := make(map[string]bool)
	for i, lib := range m.Libraries {
		if lib.Name == "" {
			return fmt.Errorf("manifest: library %d has no name", i)
		}
		key := lib.Ref().String()
		if seen[key] {
			return fmt.Errorf("manifest: library '%s' declared twice", key)
		}
		seen[key] = true
	}

	for i, tool := range m.BuildInputs {
		if tool == "" {
			return fmt.Errorf("manifest: build input %d is empty", i)
		}
	}

	return nil
}
