// internal/cli/sync.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Materialize declared packages into the local store",
	Long: `Resolve every declared library and build input against the binary
cache, download and unpack the missing ones into the local store, and
pin the resolved store paths in the lockfile.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	fmt.Printf("Syncing environment '%s' for %s...\n", m.Manifest().Name, m.Platform())

	if err := m.Sync(context.Background()); err != nil {
		return err
	}

	fmt.Println("✓ Environment synced")
	return nil
}
