// pkg/nixcache/hydra.go
package nixcache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/denv-tools/denv/pkg/platform"
)

// DefaultHydraURL is the public Hydra instance building nixpkgs
const DefaultHydraURL = "https://hydra.nixos.org"

// hydraBuildInfo is the JSON response for a Hydra build
type hydraBuildInfo struct {
	ID           int `json:"id"`
	BuildStatus  int `json:"buildstatus"` // 0 = succeeded
	Buildoutputs map[string]struct {
		Path string `json:"path"`
	} `json:"buildoutputs"`
}

// ResolveLatest queries Hydra for the latest build of a package and
// returns its outputs as a map of output name to store hash, plus the
// resolved name-version string.
func (f *Fetcher) ResolveLatest(ctx context.Context, packageName string, plat platform.Platform) (map[string]string, string, error) {
	url := fmt.Sprintf("%s/job/nixos/trunk-combined/nixpkgs.%s.%s/latest", f.hydraURL, packageName, plat)
	f.logger.Printf("Resolving package '%s' via Hydra: %s", packageName, url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating hydra request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.client.userAgent)

	resp, err := f.client.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("hydra request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("package '%s' not found on Hydra for platform '%s' (status: %d)", packageName, plat, resp.StatusCode)
	}

	var buildInfo hydraBuildInfo
	if err := json.NewDecoder(resp.Body).Decode(&buildInfo); err != nil {
		return nil, "", fmt.Errorf("parsing hydra response: %w", err)
	}

	if buildInfo.BuildStatus != 0 {
		f.logger.Printf("Warning: latest build for '%s' has status %d", packageName, buildInfo.BuildStatus)
	}
	if len(buildInfo.Buildoutputs) == 0 {
		return nil, "", fmt.Errorf("no outputs found in hydra response for '%s'", packageName)
	}

	outputs := make(map[string]string)
	var nameVersion string

	for outputName, outputData := range buildInfo.Buildoutputs {
		hash, rest, ok := splitStorePath(outputData.Path)
		if !ok {
			f.logger.Printf("Skipping invalid store path: %s", outputData.Path)
			continue
		}
		outputs[outputName] = hash

		// Prefer the "out" output when deriving name-version; other
		// outputs usually carry a -<output> suffix
		if nameVersion == "" || outputName == "out" {
			suffix := "-" + outputName
			if outputName != "out" && strings.HasSuffix(rest, suffix) {
				rest = strings.TrimSuffix(rest, suffix)
			}
			nameVersion = rest
		}
	}

	if len(outputs) == 0 {
		return nil, "", fmt.Errorf("no usable outputs for '%s'", packageName)
	}

	f.logger.Printf("✓ Resolved '%s' to %s with %d outputs", packageName, nameVersion, len(outputs))
	return outputs, nameVersion, nil
}

// splitStorePath splits /nix/store/<hash>-<name>-<version> into hash
// and the name-version remainder
func splitStorePath(path string) (hash, rest string, ok bool) {
	base := path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	hash, rest, found := strings.Cut(base, "-")
	if !found || hash == "" || rest == "" {
		return "", "", false
	}
	return hash, rest, true
}
