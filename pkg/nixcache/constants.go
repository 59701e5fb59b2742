// pkg/nixcache/constants.go
package nixcache

const (
	// DefaultCacheURL is the official Nix binary cache
	DefaultCacheURL = "https://cache.nixos.org"

	// CompressionXZ uses xz compression
	CompressionXZ = "xz"

	// CompressionBZip2 uses bzip2 compression
	CompressionBZip2 = "bzip2"

	// CompressionNone uses no compression
	CompressionNone = "none"
)
