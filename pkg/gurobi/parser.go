// parser.go
package gurobi

import (
	"regexp"
	"unicode/utf8"
)

var versionRe = regexp.MustCompile(versionPattern)

// ParseVersion extracts the version triple from gurobi_cl output. The banner
// may appear anywhere in the output; anything around it is ignored. A missing
// or truncated banner is a recoverable ErrVersionUnreadable, never a panic —
// the output comes from an external tool and is untrusted.
func ParseVersion(output []byte) (Version, error) {
	if !utf8.Valid(output) {
		return Version{}, ErrVersionUnreadable
	}

	m := versionRe.FindSubmatch(output)
	if m == nil {
		return Version{}, ErrVersionUnreadable
	}

	return Version{
		Major: string(m[1]),
		Minor: string(m[2]),
		Patch: string(m[3]),
	}, nil
}
