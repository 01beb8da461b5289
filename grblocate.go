// grblocate.go
package grblocate

import (
	"io"

	"github.com/grbtools/grblocate/pkg/cargo"
	"github.com/grbtools/grblocate/pkg/gurobi"
)

// Re-export gurobi types for convenience
type (
	Installation = gurobi.Installation
	Version      = gurobi.Version
	Library      = gurobi.Library
	Options      = gurobi.Options
	Runner       = gurobi.Runner
)

// Locate resolves GUROBI_HOME, verifies the installation layout, and probes
// the library version with bin/gurobi_cl.
func Locate(opts *Options) (*Installation, error) {
	return gurobi.NewLocator(opts).Locate()
}

// EmitDirectives locates the installation and writes the two Cargo linker
// directives to w: the native search path for <home>/lib and the dynamic
// link name derived from the probed version. On failure nothing is written.
func EmitDirectives(w io.Writer, opts *Options) error {
	installation, err := Locate(opts)
	if err != nil {
		return err
	}

	return cargo.Emit(w, installation.LibPath(), installation.Library())
}
