// internal/cli/run.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run -- command [args...]",
	Short: "Run a command inside the declared environment",
	Long: `Run a command with the environment exports applied to it, and only
to it: the invoking shell is never modified.

Examples:
  denv run -- cargo build
  denv run -- ./target/debug/synthi`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	if err := m.Run(context.Background(), args[0], args[1:]...); err != nil {
		return fmt.Errorf("running %s: %w", args[0], err)
	}

	return nil
}
