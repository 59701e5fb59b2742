// pkg/nixcache/fetcher.go
package nixcache

import (
	"bufio"
	"compress/bzip2"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ulikunitz/xz"
	"zombiezen.com/go/nix/nar"
)

// Config configures the binary cache fetcher
type Config struct {
	CacheURL string        // Default: https://cache.nixos.org
	HydraURL string        // Default: https://hydra.nixos.org
	Timeout  time.Duration // Network timeout
	Debug    bool          // Enable debug logging
	Logger   *log.Logger   // Custom logger (optional)
}

// Fetcher downloads store paths from a Nix binary cache and unpacks
// them into local store entries
type Fetcher struct {
	client   *Client
	cacheURL string
	hydraURL string
	logger   *log.Logger
}

// NewFetcher creates a Fetcher for the configured cache
func NewFetcher(cfg *Config) *Fetcher {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.CacheURL == "" {
		cfg.CacheURL = DefaultCacheURL
	}
	if cfg.HydraURL == "" {
		cfg.HydraURL = DefaultHydraURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[DEBUG] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Fetcher{
		client:   NewClientWithTimeout(cfg.Timeout),
		cacheURL: cfg.CacheURL,
		hydraURL: cfg.HydraURL,
		logger:   logger,
	}
}

// NARInfo retrieves metadata for a store hash
func (f *Fetcher) NARInfo(ctx context.Context, storeHash string) (*NARInfo, error) {
	url := fmt.Sprintf("%s/%s.narinfo", f.cacheURL, storeHash)
	f.logger.Printf("Fetching NAR info from: %s", url)

	content, err := f.client.GetString(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching narinfo: %w", err)
	}

	info, err := ParseNARInfo(content)
	if err != nil {
		return nil, fmt.Errorf("parsing narinfo: %w", err)
	}

	return info, nil
}

// Fetch downloads, verifies, and unpacks one store path into destDir.
// Multiple outputs of the same package can be fetched into the same
// destDir to merge them.
func (f *Fetcher) Fetch(ctx context.Context, info *NARInfo, destDir string) error {
	tmpDir, err := os.MkdirTemp("", "denv-nar-")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	narPath := filepath.Join(tmpDir, "archive.nar."+info.Compression)
	if err := f.downloadNAR(ctx, info, narPath); err != nil {
		return err
	}

	if info.FileHash != "" {
		if err := verifyFileHash(narPath, info.FileHash); err != nil {
			return fmt.Errorf("hash verification failed: %w", err)
		}
		f.logger.Printf("✓ Hash verified for %s", info.StorePath)
	}

	if err := ExtractNAR(narPath, destDir, info.Compression); err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	f.logger.Printf("✓ Unpacked %s into %s", info.StorePath, destDir)
	return nil
}

// downloadNAR downloads the NAR archive to destPath
func (f *Fetcher) downloadNAR(ctx context.Context, info *NARInfo, destPath string) error {
	url := fmt.Sprintf("%s/%s", f.cacheURL, info.URL)
	f.logger.Printf("Downloading NAR from: %s", url)

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer out.Close()

	if err := f.client.Download(ctx, url, out); err != nil {
		return fmt.Errorf("downloading: %w", err)
	}

	return nil
}

// verifyFileHash checks the SHA-256 of a file against the expected
// nix-base32 digest
func verifyFileHash(path, expected string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return fmt.Errorf("computing hash: %w", err)
	}

	actual := toNixBase32(hasher.Sum(nil))
	if actual != expected {
		return fmt.Errorf("hash mismatch: expected %s, got %s", expected, actual)
	}

	return nil
}

// ExtractNAR extracts a NAR archive (optionally compressed) into destDir
func ExtractNAR(narPath, destDir, compression string) error {
	f, err := os.Open(narPath)
	if err != nil {
		return fmt.Errorf("opening NAR file: %w", err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	switch compression {
	case CompressionNone, "":
	case CompressionXZ:
		r, err = xz.NewReader(r)
		if err != nil {
			return fmt.Errorf("creating xz reader: %w", err)
		}
	case CompressionBZip2:
		r = bzip2.NewReader(r)
	default:
		return fmt.Errorf("unsupported compression: %s", compression)
	}

	return extractPlainNAR(r, destDir)
}

// extractPlainNAR unpacks an uncompressed NAR stream
func extractPlainNAR(r io.Reader, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	nr := nar.NewReader(r)
	for {
		hdr, err := nr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading NAR entry: %w", err)
		}

		targetPath := filepath.Join(destDir, filepath.FromSlash(hdr.Path))

		switch hdr.Mode.Type() {
		case os.ModeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}
		case os.ModeSymlink:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}
			if err := os.Symlink(hdr.LinkTarget, targetPath); err != nil {
				return fmt.Errorf("creating symlink: %w", err)
			}
		case 0: // regular file
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}

			perm := os.FileMode(0644)
			if hdr.Mode&0111 != 0 {
				perm = 0755
			}

			out, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
			if err != nil {
				return fmt.Errorf("creating file %s: %w", targetPath, err)
			}

			written, err := io.Copy(out, nr)
			out.Close()
			if err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			if written != hdr.Size {
				return fmt.Errorf("size mismatch extracting %s", hdr.Path)
			}

		default:
			// ignore other types
		}
	}

	return nil
}
