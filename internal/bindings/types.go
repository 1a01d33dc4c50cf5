package bindings

import (
	"errors"
	"fmt"
)

// Class identifies which family of Gmsh C entry points reported an error.
// The native library reuses the same small integer codes with different
// meanings per family, so the class is needed to decode a code.
type Class int

const (
	// ClassMain covers the top-level entry points: initialize, finalize,
	// open, write, merge and the GUI calls.
	ClassMain Class = iota
	// ClassModel covers gmshModel*, including the geo/occ kernels and mesh
	// operations.
	ClassModel
	// ClassOption covers gmshOption*.
	ClassOption
)

func (c Class) String() string {
	switch c {
	case ClassMain:
		return "main"
	case ClassModel:
		return "model"
	case ClassOption:
		return "option"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. CI and downstream callers can use this to fall back to
	// safer defaults.
	ErrNotBuilt = errors.New("gmsh/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("gmsh/internal/bindings: cgo not enabled")

	// ErrNative is the root of every error reported by the native library.
	// Each CallError matches it via errors.Is.
	ErrNative = errors.New("gmsh: native call failed")

	// ErrStringNUL reports a Go string that cannot cross into C because it
	// contains an interior NUL byte.
	ErrStringNUL = errors.New("gmsh: string contains interior NUL byte")
)

// Per-class decodings of the ierr out-parameter. Code -1 means the same thing
// everywhere; the positive codes change meaning with the class.
var (
	ErrNotInitialized = errors.New("gmsh context not initialized")
	ErrExecution      = errors.New("execution failed")
	ErrModelMutation  = errors.New("could not modify model")
	ErrModelLookup    = errors.New("could not get model data")
	ErrModelBadInput  = errors.New("bad model input data")
	ErrMeshQuery      = errors.New("invalid parallel mesh query")
	ErrUnknownOption  = errors.New("unknown option")
	ErrUnknownCode    = errors.New("unknown error code")
)

// CallError is the error returned when a native call sets ierr to a non-zero
// value. It records the C function and the raw code so callers can log exactly
// what failed, while errors.Is still matches the coarse sentinels.
type CallError struct {
	Func string
	Code int

	class Class
}

// NewCallError builds the error for a native call that set ierr to code.
func NewCallError(class Class, fn string, code int) *CallError {
	return &CallError{Func: fn, Code: code, class: class}
}

// Class reports which entry-point family produced the error.
func (e *CallError) Class() Class { return e.class }

// Reason returns the per-class sentinel the raw code decodes to.
func (e *CallError) Reason() error {
	if e.Code == -1 {
		return ErrNotInitialized
	}
	switch e.class {
	case ClassMain:
		if e.Code == 1 {
			return ErrExecution
		}
	case ClassModel:
		switch e.Code {
		case 1:
			return ErrModelMutation
		case 2:
			return ErrModelLookup
		case 3:
			return ErrModelBadInput
		case 4:
			return ErrMeshQuery
		}
	case ClassOption:
		if e.Code == 1 {
			return ErrUnknownOption
		}
	}
	return ErrUnknownCode
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v (ierr=%d)", e.Func, e.Reason(), e.Code)
}

// Is lets errors.Is match a CallError against ErrNative and against the
// decoded per-class sentinel.
func (e *CallError) Is(target error) bool {
	if target == ErrNative {
		return true
	}
	return target == e.Reason()
}
