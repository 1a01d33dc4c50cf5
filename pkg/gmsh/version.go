package gmsh

import "github.com/meshforge/gmsh-go/internal/bindings"

var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version of this wrapper, populated at
// build time via ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// APIVersion returns the Gmsh API version the bindings were generated
// against. The version of the native library actually loaded at runtime is
// reported by Session.Version and may be newer.
func APIVersion() string {
	return bindings.APIVersion
}
