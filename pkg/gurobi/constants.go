// constants.go
package gurobi

const (
	// EnvHome is the environment variable naming the installation root.
	EnvHome = "GUROBI_HOME"

	// ProbeName is the vendor command-line tool queried for version output.
	ProbeName = "gurobi_cl"

	// VersionFlag asks the probe executable to print its version banner.
	VersionFlag = "--version"

	// LibraryPrefix is the link-name prefix for the Gurobi shared library.
	LibraryPrefix = "gurobi"

	// BinDir is the subdirectory holding vendor executables.
	BinDir = "bin"

	// LibDir is the subdirectory holding the shared libraries to link.
	LibDir = "lib"
)

// versionPattern matches the version banner printed by gurobi_cl,
// e.g. "Gurobi Optimizer version 9.5.2 build v9.5.2rc0".
const versionPattern = `Gurobi Optimizer version (\d+)\.(\d+)\.(\d+)`
