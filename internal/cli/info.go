// internal/cli/info.go
package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show information about a package",
	Long:  `Resolve a package against the binary cache and display its outputs.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	info, err := m.Info(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Package: %s\n", info.Name)
	fmt.Printf("Resolved: %s\n", info.NameVersion)
	fmt.Printf("Platform: %s\n", info.Platform)
	fmt.Printf("Pinned: %v\n", info.Pinned)

	outputs := make([]string, 0, len(info.Outputs))
	for name := range info.Outputs {
		outputs = append(outputs, name)
	}
	sort.Strings(outputs)

	fmt.Printf("Outputs:\n")
	for _, name := range outputs {
		fmt.Printf("  %-8s %s\n", name, info.Outputs[name])
	}

	return nil
}
