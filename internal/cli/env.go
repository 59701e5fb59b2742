// internal/cli/env.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the environment exports for this project",
	Long: `Build the dynamic-linker search path for the declared libraries and
print the resulting exports as shell statements.

Typical usage:
  eval "$(denv env)"`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	exports, err := m.Environment()
	if err != nil {
		return err
	}

	for _, line := range exports.ShellLines() {
		fmt.Println(line)
	}

	return nil
}
