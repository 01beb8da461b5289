// errors.go
package grblocate

import "github.com/grbtools/grblocate/pkg/gurobi"

// Re-export gurobi errors so callers can match failures without importing
// the subpackage.
var (
	// ErrHomeNotSet indicates GUROBI_HOME is unset or empty
	ErrHomeNotSet = gurobi.ErrHomeNotSet

	// ErrProbeNotFound indicates bin/gurobi_cl is missing from the installation
	ErrProbeNotFound = gurobi.ErrProbeNotFound

	// ErrVersionUnreadable indicates the gurobi_cl version banner could not be read
	ErrVersionUnreadable = gurobi.ErrVersionUnreadable
)

// NotFoundError indicates the configured installation root does not exist.
type NotFoundError = gurobi.NotFoundError
