// errors.go
package gurobi

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrHomeNotSet indicates GUROBI_HOME is unset or empty. An empty value
	// counts as unset because some build configuration files cannot unset
	// environment variables, only blank them.
	ErrHomeNotSet = errors.New("GUROBI_HOME not set")

	// ErrProbeNotFound indicates bin/gurobi_cl is absent from the installation.
	ErrProbeNotFound = errors.New("gurobi_cl not found")

	// ErrVersionUnreadable indicates the version banner could not be obtained
	// or parsed from gurobi_cl output.
	ErrVersionUnreadable = errors.New("Cannot get Gurobi version")
)

// NotFoundError indicates the configured installation root does not resolve
// to an existing path. Path is the original, non-canonicalized value so the
// message can show what the user actually configured.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("GUROBI_HOME is set to %q but %q does not exist (or is not a directory)",
		filepath.Dir(e.Path), e.Path)
}
