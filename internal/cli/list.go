// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the packages declared in the manifest",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	manifest := m.Manifest()

	fmt.Printf("Environment: %s (%s)\n", manifest.Name, m.Platform())

	if len(manifest.Libraries) > 0 {
		fmt.Printf("\nRuntime libraries (in linker precedence order):\n")
		for _, lib := range manifest.Libraries {
			fmt.Printf("  %s\n", lib.Ref())
		}
	}

	if len(manifest.BuildInputs) > 0 {
		fmt.Printf("\nBuild inputs:\n")
		for _, tool := range manifest.BuildInputs {
			fmt.Printf("  %s\n", tool)
		}
	}

	if manifest.Toolchain.Name != "" {
		tc := manifest.Toolchain
		fmt.Printf("\nToolchain: %s", tc.Name)
		if tc.Channel != "" {
			fmt.Printf(" (%s)", tc.Channel)
		}
		if tc.Version != "" {
			fmt.Printf(" %s", tc.Version)
		}
		fmt.Println()
	}

	return nil
}
