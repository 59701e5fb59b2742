// pkg/lockfile/lockfile.go
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the lockfile written next to the manifest
const DefaultFileName = "denv.lock"

// Version is the current lockfile format version
const Version = 1

// Pin records where one declared package was resolved to. A pinned
// package always resolves to the same store path, which is what makes
// the environment reproducible across machines.
type Pin struct {
	StoreHash string `toml:"store_hash"`
	StorePath string `toml:"store_path"`
	NarURL    string `toml:"nar_url,omitempty"`
	FileHash  string `toml:"file_hash,omitempty"`
}

// Lockfile is the on-disk pin set for one platform
type Lockfile struct {
	Version  int            `toml:"version"`
	Platform string         `toml:"platform"`
	Packages map[string]Pin `toml:"packages"`
}

// New creates an empty lockfile for a platform
func New(platform string) *Lockfile {
	return &Lockfile{
		Version:  Version,
		Platform: platform,
		Packages: make(map[string]Pin),
	}
}

// Load reads a lockfile from path. A missing file is not an error: it
// returns nil so callers can distinguish "never synced" from a corrupt
// lockfile.
func Load(path string) (*Lockfile, error) {
	if path == "" {
		path = DefaultFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var lf Lockfile
	if _, err := toml.DecodeFile(path, &lf); err != nil {
		return nil, fmt.Errorf("parsing lockfile: %w", err)
	}

	if lf.Version > Version {
		return nil, fmt.Errorf("lockfile version %d is newer than supported version %d", lf.Version, Version)
	}
	if lf.Packages == nil {
		lf.Packages = make(map[string]Pin)
	}

	return &lf, nil
}

// Save writes the lockfile to path
func (lf *Lockfile) Save(path string) error {
	if path == "" {
		path = DefaultFileName
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating lockfile directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating lockfile: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(lf); err != nil {
		return fmt.Errorf("encoding lockfile: %w", err)
	}

	return nil
}

// Pin records a resolution for a package key (PackageRef canonical form)
func (lf *Lockfile) Pin(key string, pin Pin) {
	lf.Packages[key] = pin
}

// Lookup returns the pin for a package key, if present
func (lf *Lockfile) Lookup(key string) (Pin, bool) {
	pin, ok := lf.Packages[key]
	return pin, ok
}
