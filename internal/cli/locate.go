// internal/cli/locate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grbtools/grblocate"
	"github.com/grbtools/grblocate/pkg/gurobi"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the resolved Gurobi installation",
	Long:  `Resolve and display the Gurobi installation root, its version and the derived link name.`,
	Args:  cobra.NoArgs,
	RunE:  runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	installation, err := grblocate.Locate(&gurobi.Options{
		Home:  config.Home,
		Debug: config.Debug,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Home: %s\n", installation.Home)
	fmt.Printf("Version: %s\n", installation.Version)
	fmt.Printf("Library: %s\n", installation.Library())
	fmt.Printf("Link path: %s\n", installation.LibPath())

	return nil
}
