// types.go
package gurobi

import "path/filepath"

// Version is the version triple reported by gurobi_cl. Components are kept
// as the literal digit sequences captured from the banner: the link name is
// built by string concatenation, and "10"+"1" must stay distinguishable from
// a numeric rendering that could collapse it.
type Version struct {
	Major string // e.g. "9"
	Minor string // e.g. "5"
	Patch string // e.g. "2", unused for linking
}

// String returns the dotted form, e.g. "9.5.2".
func (v Version) String() string {
	return v.Major + "." + v.Minor + "." + v.Patch
}

// Library returns the platform link name, e.g. "gurobi95".
func (v Version) Library() string {
	return LibraryPrefix + v.Major + v.Minor
}

// Installation describes a located Gurobi distribution.
type Installation struct {
	Home    string  // Canonical absolute installation root
	Version Version // Version reported by gurobi_cl
}

// Library returns the link name for the installed shared library.
func (i *Installation) Library() string {
	return i.Version.Library()
}

// LibPath returns the absolute lib subdirectory, the native search path
// handed to the linker.
func (i *Installation) LibPath() string {
	return filepath.Join(i.Home, LibDir)
}

// BinPath returns the absolute bin subdirectory holding vendor executables.
func (i *Installation) BinPath() string {
	return filepath.Join(i.Home, BinDir)
}
