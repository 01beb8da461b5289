// emitter.go

// Package cargo formats build-tool directives in the Cargo build-script
// protocol: lines on stdout that the build orchestrator parses to decide
// how to link a native library.
package cargo

import (
	"fmt"
	"io"
)

// LinkSearch returns the directive adding dir to the native library search
// path.
func LinkSearch(dir string) string {
	return linkSearchPrefix + dir
}

// LinkLib returns the directive linking the named dynamic library.
func LinkLib(name string) string {
	return linkLibPrefix + name
}

// Directives returns the two lines needed to link a library living in dir.
// Inputs are assumed validated; this is pure formatting.
func Directives(dir, name string) []string {
	return []string{
		LinkSearch(dir),
		LinkLib(name),
	}
}

// Emit writes the link directives for a library to w, one per line.
// Nothing is written if an earlier stage failed: callers only reach Emit
// with fully validated inputs.
func Emit(w io.Writer, dir, name string) error {
	for _, directive := range Directives(dir, name) {
		if _, err := fmt.Fprintln(w, directive); err != nil {
			return err
		}
	}
	return nil
}
