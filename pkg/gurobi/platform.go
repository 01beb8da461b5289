// platform.go
package gurobi

import "runtime"

// ProbeExecutable returns the platform file name of the version probe tool.
func ProbeExecutable() string {
	if runtime.GOOS == "windows" {
		return ProbeName + ".exe"
	}
	return ProbeName
}

// SharedLibraryExtensions returns the shared library suffixes for the
// current platform, most common first.
func SharedLibraryExtensions() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{".dylib", ".so"}
	case "windows":
		return []string{".dll", ".lib"}
	default:
		return []string{".so"}
	}
}
