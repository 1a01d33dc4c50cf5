// Package gmsh exposes a safe Go API over the Gmsh meshing and CAD kernel.
// The exported types compile without the native library so that downstream
// projects can adopt the package (and test against it) without pulling in
// cgo immediately; binaries built without cgo report ErrNotBuilt or
// ErrCGONotEnabled when a Session is created.
//
// The package enforces the lifecycle the C library assumes but does not
// check: one Session at a time per process, every call serialized against
// the shared native context, and no call reaching native code after the
// Session is finalized.
package gmsh
