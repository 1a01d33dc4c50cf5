package gmsh

import (
	"errors"
	"fmt"

	"github.com/meshforge/gmsh-go/internal/bindings"
)

// Usage errors are detected in Go, before any native call is made. They all
// match ErrUsage via errors.Is.
var (
	ErrUsage              = errors.New("gmsh: usage error")
	ErrAlreadyInitialized = fmt.Errorf("%w: another session is already active in this process", ErrUsage)
	ErrFinalized          = fmt.Errorf("%w: session has been finalized", ErrUsage)
	ErrModelRemoved       = fmt.Errorf("%w: model has been removed", ErrUsage)
	ErrInvalidArgument    = fmt.Errorf("%w: invalid argument", ErrUsage)
)

// Errors reported by the native library. ErrNative matches every one of
// them; the narrower sentinels identify the failure the ierr code decodes
// to. A native failure never matches ErrUsage, and vice versa.
var (
	ErrNative         = bindings.ErrNative
	ErrNotInitialized = bindings.ErrNotInitialized
	ErrExecution      = bindings.ErrExecution
	ErrModelMutation  = bindings.ErrModelMutation
	ErrModelLookup    = bindings.ErrModelLookup
	ErrModelBadInput  = bindings.ErrModelBadInput
	ErrMeshQuery      = bindings.ErrMeshQuery
	ErrUnknownOption  = bindings.ErrUnknownOption
)

// Build-related errors: the binary does not carry the native library at all.
var (
	ErrNotBuilt      = bindings.ErrNotBuilt
	ErrCGONotEnabled = bindings.ErrCGONotEnabled
)

// remapError converts bindings layer errors to public API errors. A string
// that cannot cross into C is the caller's mistake, not the library's.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrStringNUL) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return err
}
