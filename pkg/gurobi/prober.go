// prober.go
package gurobi

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner spawns the probe executable and returns its captured stdout.
// The default implementation shells out; tests inject a fake so the
// pipeline is exercised without real processes.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// execRunner runs the probe with os/exec. Stdout is captured, stderr and
// stdin are left alone, and a non-zero exit status is not an error: only
// the banner on stdout matters.
type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}

	return stdout.Bytes(), nil
}

// Prober queries an installation for its version via bin/gurobi_cl.
type Prober struct {
	runner Runner
}

// NewProber creates a Prober. A nil runner uses the real subprocess runner.
func NewProber(runner Runner) *Prober {
	if runner == nil {
		runner = execRunner{}
	}
	return &Prober{runner: runner}
}

// Probe invokes <home>/bin/gurobi_cl --version and parses the banner.
// The executable is stat'd before spawning so a missing tool is reported
// as ErrProbeNotFound rather than an opaque spawn failure. The spawn blocks
// until the child exits; there is no timeout.
func (p *Prober) Probe(home string) (Version, error) {
	probe := filepath.Join(home, BinDir, ProbeExecutable())

	if _, err := os.Stat(probe); err != nil {
		return Version{}, ErrProbeNotFound
	}

	output, err := p.runner.Output(probe, VersionFlag)
	if err != nil {
		return Version{}, ErrVersionUnreadable
	}

	return ParseVersion(output)
}
