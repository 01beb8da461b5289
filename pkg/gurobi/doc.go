// pkg/gurobi/doc.go
package gurobi

/*
Package gurobi locates a Gurobi Optimizer installation and probes its
version.

The installation root comes from the GUROBI_HOME environment variable (or an
explicit override) and is canonicalized before use. The version is read by
running bin/gurobi_cl --version and matching its banner; major and minor are
kept as literal digit strings because the link name is built by
concatenation ("gurobi" + major + minor).

Basic Usage:

    import "github.com/grbtools/grblocate/pkg/gurobi"

    locator := gurobi.NewLocator(nil)
    installation, err := locator.Locate()
    if err != nil {
        // ErrHomeNotSet, *NotFoundError, ErrProbeNotFound or ErrVersionUnreadable
    }

    fmt.Println(installation.LibPath())   // /opt/gurobi952/lib
    fmt.Println(installation.Library())   // gurobi95

Every stage returns a structured error instead of aborting; only the binary
entry point turns a failure into a diagnostic line and an exit code. The
probe subprocess is injectable through the Runner interface so the pipeline
tests without spawning real processes.
*/
