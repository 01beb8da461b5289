// library.go
package gurobi

import (
	"os"
	"path/filepath"
	"strings"
)

// Library represents a shared library file found under <home>/lib.
type Library struct {
	Name string // Link name (e.g., "gurobi95")
	Path string // Absolute path to the library file
	Type string // Extension: ".so", ".dylib", ".dll"
}

// FindLibraries lists the Gurobi shared libraries under the installation's
// lib directory. Diagnostic only: directive emission deliberately leaves the
// lib directory unchecked and lets the downstream linker report its absence.
func FindLibraries(home string) []Library {
	libDir := filepath.Join(home, LibDir)

	entries, err := os.ReadDir(libDir)
	if err != nil {
		return nil
	}

	var libraries []Library
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.Contains(name, LibraryPrefix) {
			continue
		}

		for _, ext := range SharedLibraryExtensions() {
			if strings.HasSuffix(name, ext) || strings.Contains(name, ext+".") {
				libraries = append(libraries, Library{
					Name: linkName(name, ext),
					Path: filepath.Join(libDir, name),
					Type: ext,
				})
				break
			}
		}
	}

	return libraries
}

// HasLibrary reports whether the lib directory holds a shared library with
// the given link name (e.g., libgurobi95.so or a versioned variant).
func HasLibrary(home, name string) bool {
	for _, lib := range FindLibraries(home) {
		if lib.Name == name {
			return true
		}
	}
	return false
}

// linkName strips the "lib" prefix, the extension and any trailing version
// from a library file name: "libgurobi95.so.1" -> "gurobi95".
func linkName(filename, ext string) string {
	name := strings.TrimPrefix(filename, "lib")
	if i := strings.Index(name, ext); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSuffix(name, ".")
}
