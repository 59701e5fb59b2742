// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/denv-tools/denv"
	"github.com/denv-tools/denv/pkg/config"
)

var (
	cfgFile      string
	manifestFile string
	lockFile     string
	debug        bool
	cfg          *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "denv",
	Short: "Declarative native development environments",
	Long: `denv - Declarative native development environments

Declare your project's native library dependencies once in denv.yaml,
sync them from a binary cache into a local store, and run builds and
tools with the right dynamic-linker search path, without touching
your shell's global environment.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/denv/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "manifest", "m", "", "environment manifest (default is ./denv.yaml)")
	rootCmd.PersistentFlags().StringVar(&lockFile, "lockfile", "", "lockfile path (default is ./denv.lock)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if debug {
		cfg.Debug = true
	}
}

// newManager builds a Manager from the global flags and config
func newManager() (*denv.Manager, error) {
	return denv.NewManager(&denv.Options{
		ManifestPath: manifestFile,
		LockfilePath: lockFile,
		Config:       cfg,
	})
}
