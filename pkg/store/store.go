// pkg/store/store.go
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/denv-tools/denv/pkg/lockfile"
	"github.com/denv-tools/denv/pkg/searchpath"
)

var (
	// ErrNotInstalled indicates the package has no entry in the store
	ErrNotInstalled = errors.New("package not installed in store")

	// ErrNoLibraries indicates the store entry contains no library directories
	ErrNoLibraries = errors.New("package provides no library directories")
)

// libraryDirs are the directories inside a store entry that hold shared
// libraries. Package outputs are merged into a single entry at sync time,
// so lib and lib64 are the only places to look.
var libraryDirs = []string{"lib", "lib64"}

// Store resolves declared packages against a local store directory laid
// out as <root>/<hash>-<name>-<version>/. It implements
// searchpath.Resolver and performs only read-only filesystem access.
type Store struct {
	root string
	lock *lockfile.Lockfile // optional: pins take precedence over scanning
}

// New creates a Store over root. lock may be nil, in which case every
// resolution falls back to scanning the store directory.
func New(root string, lock *lockfile.Lockfile) *Store {
	return &Store{
		root: root,
		lock: lock,
	}
}

// Root returns the store root directory
func (s *Store) Root() string {
	return s.root
}

// EntryDir returns the store directory a package would occupy, whether
// or not it exists yet
func (s *Store) EntryDir(storeHash string, ref searchpath.PackageRef) string {
	name := ref.Name
	if ref.Version != "" {
		name += "-" + ref.Version
	}
	return filepath.Join(s.root, storeHash+"-"+name)
}

// Resolve returns the library directories for a declared package, in a
// stable order. The lockfile pin is consulted first; otherwise the store
// is scanned for a matching entry.
func (s *Store) Resolve(ref searchpath.PackageRef) ([]string, error) {
	entry, err := s.findEntry(ref)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, sub := range libraryDirs {
		dir := filepath.Join(entry, sub)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, dir)
	}

	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLibraries, entry)
	}

	return dirs, nil
}

// findEntry locates the store directory for a package
func (s *Store) findEntry(ref searchpath.PackageRef) (string, error) {
	if s.lock != nil {
		if pin, ok := s.lock.Lookup(ref.String()); ok {
			path := pin.StorePath
			if path == "" {
				path = s.EntryDir(pin.StoreHash, ref)
			}
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return path, nil
			}
			return "", fmt.Errorf("%w: pinned path %s is missing, run sync", ErrNotInstalled, path)
		}
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: store %s does not exist", ErrNotInstalled, s.root)
		}
		return "", fmt.Errorf("reading store: %w", err)
	}

	var matches []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if entryMatches(e.Name(), ref) {
			matches = append(matches, e.Name())
		}
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotInstalled, ref)
	}

	// More than one hash can match an unpinned name; sort so resolution
	// stays deterministic between runs
	sort.Strings(matches)
	return filepath.Join(s.root, matches[0]), nil
}

// entryMatches reports whether a store directory name of the form
// <hash>-<name>[-<version>] matches the declaration. The Output
// qualifier is ignored here: outputs are merged into one entry at sync
// time.
func entryMatches(entry string, ref searchpath.PackageRef) bool {
	i := strings.Index(entry, "-")
	if i < 0 {
		return false
	}
	rest := entry[i+1:]

	want := ref.Name
	if ref.Version != "" {
		want += "-" + ref.Version
	}

	if rest == want {
		return true
	}

	// A trailing version segment starts with a digit; this keeps "alsa"
	// from matching an entry for "alsa-lib"
	if strings.HasPrefix(rest, want+"-") && len(rest) > len(want)+1 {
		c := rest[len(want)+1]
		return c >= '0' && c <= '9'
	}

	return false
}
