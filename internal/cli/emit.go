// internal/cli/emit.go
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grbtools/grblocate"
	"github.com/grbtools/grblocate/pkg/gurobi"
)

// runEmit is the default action: locate the installation and write the two
// linker directives to stdout. Any stage failure surfaces as the returned
// error with nothing written.
func runEmit(cmd *cobra.Command, args []string) error {
	return grblocate.EmitDirectives(os.Stdout, &gurobi.Options{
		Home:  config.Home,
		Debug: config.Debug,
	})
}
