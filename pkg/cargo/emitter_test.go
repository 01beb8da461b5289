// emitter_test.go
package cargo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectives(t *testing.T) {
	got := Directives("/opt/gurobi952/lib", "gurobi95")

	assert.Equal(t, []string{
		"cargo:rustc-link-search=native=/opt/gurobi952/lib",
		"cargo:rustc-link-lib=dylib=gurobi95",
	}, got)
}

func TestEmit(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Emit(&buf, "/opt/gurobi952/lib", "gurobi95"))

	assert.Equal(t,
		"cargo:rustc-link-search=native=/opt/gurobi952/lib\n"+
			"cargo:rustc-link-lib=dylib=gurobi95\n",
		buf.String())
}
