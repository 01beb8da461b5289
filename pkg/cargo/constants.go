// constants.go
package cargo

const (
	// linkSearchPrefix is the Cargo directive adding a native library
	// search path for the downstream crate.
	linkSearchPrefix = "cargo:rustc-link-search=native="

	// linkLibPrefix is the Cargo directive naming a dynamic library to link.
	linkLibPrefix = "cargo:rustc-link-lib=dylib="
)
