// denv.go
package denv

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/denv-tools/denv/pkg/config"
	"github.com/denv-tools/denv/pkg/env"
	"github.com/denv-tools/denv/pkg/lockfile"
	"github.com/denv-tools/denv/pkg/manifest"
	"github.com/denv-tools/denv/pkg/nixcache"
	"github.com/denv-tools/denv/pkg/platform"
	"github.com/denv-tools/denv/pkg/searchpath"
	"github.com/denv-tools/denv/pkg/store"
)

// Re-export types for convenience
type (
	PackageRef = searchpath.PackageRef
	Resolver   = searchpath.Resolver
	Manifest   = manifest.Manifest
	Config     = config.Config
	Exports    = env.Exports
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *config.Config {
	return config.DefaultConfig()
}

// Options configures a Manager
type Options struct {
	ManifestPath string         // Default: denv.yaml
	LockfilePath string         // Default: denv.lock
	Config       *config.Config // Default: config.DefaultConfig()
	Logger       *log.Logger    // Default: discard unless Config.Debug
}

// PackageInfo describes a resolvable package
type PackageInfo struct {
	Name        string
	NameVersion string
	Outputs     map[string]string // output name -> store hash
	Platform    string
	Pinned      bool
}

// Manager ties the manifest, lockfile, store, and binary cache together
// and exposes the environment operations the CLI runs.
type Manager struct {
	manifest *manifest.Manifest
	platform platform.Platform
	cfg      *config.Config
	store    *store.Store
	fetcher  *nixcache.Fetcher
	lock     *lockfile.Lockfile
	lockPath string
	logger   *log.Logger
}

// NewManager loads the manifest and lockfile and wires up a Manager
func NewManager(opts *Options) (*Manager, error) {
	if opts == nil {
		opts = &Options{}
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	logger := opts.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[denv] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return nil, &Error{Op: "loading manifest", Err: err}
	}

	plat, err := platform.Detect()
	if err != nil {
		return nil, &Error{Op: "detecting platform", Err: fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)}
	}

	lockPath := opts.LockfilePath
	if lockPath == "" {
		lockPath = lockfile.DefaultFileName
	}

	lock, err := lockfile.Load(lockPath)
	if err != nil {
		return nil, &Error{Op: "loading lockfile", Err: err}
	}
	if lock != nil && lock.Platform != plat.String() {
		logger.Printf("Lockfile pins %s, current platform is %s; ignoring pins", lock.Platform, plat)
		lock = nil
	}
	if lock == nil {
		lock = lockfile.New(plat.String())
	}

	fetcher := nixcache.NewFetcher(&nixcache.Config{
		CacheURL: cfg.CacheURL,
		HydraURL: cfg.HydraURL,
		Timeout:  cfg.Timeout(),
		Debug:    cfg.Debug,
		Logger:   logger,
	})

	return &Manager{
		manifest: m,
		platform: plat,
		cfg:      cfg,
		store:    store.New(cfg.StoreRoot, lock),
		fetcher:  fetcher,
		lock:     lock,
		lockPath: lockPath,
		logger:   logger,
	}, nil
}

// Manifest returns the loaded environment manifest
func (m *Manager) Manifest() *manifest.Manifest {
	return m.manifest
}

// Platform returns the detected target platform
func (m *Manager) Platform() platform.Platform {
	return m.platform
}

// SearchPath builds the dynamic-linker search path for the declared
// runtime libraries, resolving each against the local store in
// declaration order.
func (m *Manager) SearchPath() (string, error) {
	builder := searchpath.NewBuilderWithSeparator(m.platform.ListSeparator())
	return builder.Build(m.manifest.LibraryRefs(), m.store)
}

// Environment assembles the scoped environment exports for the manifest
func (m *Manager) Environment() (*env.Exports, error) {
	sp, err := m.SearchPath()
	if err != nil {
		return nil, &Error{Op: "building search path", Err: err}
	}
	return env.Assemble(m.platform, sp), nil
}

// Run executes a command with the environment exports applied. The
// exports are scoped to the child process; the denv process environment
// is untouched.
func (m *Manager) Run(ctx context.Context, name string, args ...string) error {
	exports, err := m.Environment()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	exports.Apply(cmd)

	return cmd.Run()
}

// Sync materializes every declared package into the local store and
// writes the lockfile. Already-pinned packages whose store entries are
// present are skipped.
func (m *Manager) Sync(ctx context.Context) error {
	refs := m.manifest.LibraryRefs()
	for _, tool := range m.manifest.BuildInputs {
		refs = append(refs, searchpath.PackageRef{Name: tool})
	}

	for _, ref := range refs {
		if err := m.syncPackage(ctx, ref); err != nil {
			return &Error{Op: "syncing", Package: ref.String(), Err: err}
		}
	}

	if err := m.lock.Save(m.lockPath); err != nil {
		return &Error{Op: "writing lockfile", Err: err}
	}

	return nil
}

func (m *Manager) syncPackage(ctx context.Context, ref searchpath.PackageRef) error {
	key := ref.String()

	if pin, ok := m.lock.Lookup(key); ok {
		if info, err := os.Stat(pin.StorePath); err == nil && info.IsDir() {
			m.logger.Printf("✓ %s already synced (%s)", key, pin.StorePath)
			return nil
		}
		m.logger.Printf("Pinned entry for %s is missing, refetching", key)
	}

	outputs, nameVersion, err := m.fetcher.ResolveLatest(ctx, ref.Name, m.platform)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPackageNotFound, err)
	}

	if ref.Output != "" {
		hash, ok := outputs[ref.Output]
		if !ok {
			return fmt.Errorf("package has no output %q", ref.Output)
		}
		outputs = map[string]string{ref.Output: hash}
	}

	primary := outputs["out"]
	names := make([]string, 0, len(outputs))
	for name := range outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	if primary == "" {
		primary = outputs[names[0]]
	}

	// All outputs merge into one store entry, keyed by the primary hash
	entryDir := filepath.Join(m.store.Root(), primary+"-"+nameVersion)

	var pin lockfile.Pin
	for _, outputName := range names {
		hash := outputs[outputName]
		info, err := m.fetcher.NARInfo(ctx, hash)
		if err != nil {
			return err
		}
		if err := m.fetcher.Fetch(ctx, info, entryDir); err != nil {
			return err
		}
		if hash == primary {
			pin = lockfile.Pin{
				StoreHash: primary,
				StorePath: entryDir,
				NarURL:    info.URL,
				FileHash:  info.FileHash,
			}
		}
	}

	m.lock.Pin(key, pin)
	m.logger.Printf("✓ Synced %s into %s", key, entryDir)
	return nil
}

// Info resolves a package against the binary cache and reports its
// outputs and pin state
func (m *Manager) Info(ctx context.Context, name string) (*PackageInfo, error) {
	outputs, nameVersion, err := m.fetcher.ResolveLatest(ctx, name, m.platform)
	if err != nil {
		return nil, &Error{Op: "resolving", Package: name, Err: fmt.Errorf("%w: %v", ErrPackageNotFound, err)}
	}

	_, pinned := m.lock.Lookup(name)

	return &PackageInfo{
		Name:        name,
		NameVersion: nameVersion,
		Outputs:     outputs,
		Platform:    m.platform.String(),
		Pinned:      pinned,
	}, nil
}
