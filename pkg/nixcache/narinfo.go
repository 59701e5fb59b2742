// pkg/nixcache/narinfo.go
package nixcache

import (
	"fmt"
	"strconv"
	"strings"
)

// NARInfo contains the binary cache metadata for one store path
type NARInfo struct {
	StorePath   string
	URL         string
	Compression string
	FileHash    string
	FileSize    int64
	NarHash     string
	NarSize     int64
	References  []string
	Deriver     string
	Signature   string
}

// ParseNARInfo parses the key: value format of a .narinfo file
func ParseNARInfo(content string) (*NARInfo, error) {
	info := &NARInfo{}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "StorePath":
			info.StorePath = value
		case "URL":
			info.URL = value
		case "Compression":
			info.Compression = value
		case "FileHash":
			info.FileHash = strings.TrimPrefix(value, "sha256:")
		case "FileSize":
			size, _ := strconv.ParseInt(value, 10, 64)
			info.FileSize = size
		case "NarHash":
			info.NarHash = strings.TrimPrefix(value, "sha256:")
		case "NarSize":
			size, _ := strconv.ParseInt(value, 10, 64)
			info.NarSize = size
		case "References":
			if value != "" {
				info.References = strings.Fields(value)
			}
		case "Deriver":
			info.Deriver = value
		case "Sig":
			info.Signature = value
		}
	}

	if info.StorePath == "" {
		return nil, fmt.Errorf("missing StorePath in narinfo")
	}
	if info.URL == "" {
		return nil, fmt.Errorf("missing URL in narinfo")
	}
	if info.Compression == "" {
		info.Compression = CompressionNone
	}

	return info, nil
}

// StoreHash returns the hash part of the store path
func (i *NARInfo) StoreHash() string {
	base := i.StorePath
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.Index(base, "-"); idx >= 0 {
		return base[:idx]
	}
	return base
}
