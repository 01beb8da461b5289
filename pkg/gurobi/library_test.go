// library_test.go
package gurobi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLibraries(t *testing.T) {
	home := t.TempDir()
	lib := filepath.Join(home, LibDir)
	require.NoError(t, os.MkdirAll(lib, 0755))

	ext := SharedLibraryExtensions()[0]
	for _, name := range []string{
		"libgurobi95" + ext,
		"libgurobi95" + ext + ".1",
		"libgurobi_g++5.2" + ext,
		"README.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(lib, name), nil, 0644))
	}

	libraries := FindLibraries(home)

	names := make([]string, 0, len(libraries))
	for _, l := range libraries {
		names = append(names, l.Name)
		assert.Equal(t, ext, l.Type)
		assert.FileExists(t, l.Path)
	}
	assert.ElementsMatch(t, []string{"gurobi95", "gurobi95", "gurobi_g++5.2"}, names)
}

func TestFindLibrariesNoLibDir(t *testing.T) {
	assert.Empty(t, FindLibraries(t.TempDir()))
}

func TestHasLibrary(t *testing.T) {
	home := t.TempDir()
	lib := filepath.Join(home, LibDir)
	require.NoError(t, os.MkdirAll(lib, 0755))

	ext := SharedLibraryExtensions()[0]
	require.NoError(t, os.WriteFile(filepath.Join(lib, "libgurobi100"+ext), nil, 0644))

	assert.True(t, HasLibrary(home, "gurobi100"))
	assert.False(t, HasLibrary(home, "gurobi95"))
}
