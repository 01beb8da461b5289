// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grbtools/grblocate/pkg/core"
)

var (
	cfgFile  string
	homeFlag string
	debug    bool
	config   *core.Config
)

// rootCmd represents the base command. Invoked without a subcommand it
// behaves as a build script: directives on stdout, one error line on stderr.
var rootCmd = &cobra.Command{
	Use:   "grblocate",
	Short: "Gurobi installation locator",
	Long: `grblocate - Gurobi installation locator

Locates a Gurobi Optimizer installation via GUROBI_HOME, probes its version
with bin/gurobi_cl, and prints the Cargo linker directives for the matching
shared library.`,
	Version: "0.1.0",
	Args:    cobra.NoArgs,
	RunE:    runEmit,
	// The binary's stderr contract is a single line holding the error text.
	// Cobra's own error and usage output would break that.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/grblocate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "installation root (overrides GUROBI_HOME)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if homeFlag != "" {
		config.Home = homeFlag
	}
	if debug {
		config.Debug = true
	}
}
