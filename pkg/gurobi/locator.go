// locator.go
package gurobi

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// Options configures a Locator.
type Options struct {
	Home   string                      // Explicit installation root; takes precedence over GUROBI_HOME
	Runner Runner                      // Subprocess runner; nil uses os/exec
	Env    func(string) (string, bool) // Environment lookup; nil uses os.LookupEnv
	Debug  bool                        // Enable debug logging
	Logger *log.Logger                 // Destination for debug logging; nil picks a default
}

// Locator resolves a Gurobi installation root and probes its version.
type Locator struct {
	home   string
	env    func(string) (string, bool)
	prober *Prober
	logger *log.Logger
}

// NewLocator creates a Locator with the given options. A nil opts uses
// defaults throughout.
func NewLocator(opts *Options) *Locator {
	if opts == nil {
		opts = &Options{}
	}

	env := opts.Env
	if env == nil {
		env = os.LookupEnv
	}

	logger := opts.Logger
	if logger == nil {
		if opts.Debug {
			// Debug output goes to stderr: stdout is reserved for the
			// directives the build tool reads.
			logger = log.New(os.Stderr, "[GRB] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Locator{
		home:   opts.Home,
		env:    env,
		prober: NewProber(opts.Runner),
		logger: logger,
	}
}

// Home resolves the installation root and canonicalizes it. The raw value
// comes from the explicit override if set, otherwise from GUROBI_HOME. An
// unset or empty variable fails before any filesystem access.
func (l *Locator) Home() (string, error) {
	raw := l.home
	if raw == "" {
		value, ok := l.env(EnvHome)
		if !ok || value == "" {
			return "", ErrHomeNotSet
		}
		raw = value
	}

	l.logger.Printf("resolving installation root: %s", raw)

	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", &NotFoundError{Path: raw}
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &NotFoundError{Path: raw}
	}

	l.logger.Printf("canonical root: %s", canonical)

	return canonical, nil
}

// Locate runs the full chain: resolve the root, canonicalize it, probe the
// version. The first failing stage short-circuits the rest.
func (l *Locator) Locate() (*Installation, error) {
	home, err := l.Home()
	if err != nil {
		return nil, err
	}

	version, err := l.prober.Probe(home)
	if err != nil {
		return nil, err
	}

	l.logger.Printf("found Gurobi %s (library %s)", version, version.Library())

	return &Installation{
		Home:    home,
		Version: version,
	}, nil
}
