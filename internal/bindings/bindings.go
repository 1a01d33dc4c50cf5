//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../gmsh-sdk/include
#cgo LDFLAGS: -L${SRCDIR}/../../gmsh-sdk/lib -lgmsh
#include <stdlib.h>
#include <gmshc.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// Marshaling helpers shared by the generated wrappers in
// bindings_generated.go.
//
// Memory ownership follows the Gmsh C API contract: every buffer the library
// hands back (strings, vectors, vectors of strings) was allocated on the C
// heap and must be released with gmshFree. The take* helpers copy the data
// into Go-owned memory and free the native buffer in one step, so no native
// allocation outlives the wrapper call that produced it.

func toCString(s string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrStringNUL, s)
	}
	return C.CString(s), nil
}

func freeCString(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

func toCStrings(v []string) ([]*C.char, error) {
	out := make([]*C.char, len(v))
	for i, s := range v {
		cs, err := toCString(s)
		if err != nil {
			freeCStrings(out[:i])
			return nil, err
		}
		out[i] = cs
	}
	return out, nil
}

func freeCStrings(v []*C.char) {
	for _, p := range v {
		freeCString(p)
	}
}

func strPtr(v []*C.char) **C.char {
	if len(v) == 0 {
		return nil
	}
	return (**C.char)(unsafe.Pointer(&v[0]))
}

func toCInts(v []int) []C.int {
	out := make([]C.int, len(v))
	for i, x := range v {
		out[i] = C.int(x)
	}
	return out
}

func intPtr(v []C.int) *C.int {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func toCDoubles(v []float64) []C.double {
	out := make([]C.double, len(v))
	for i, x := range v {
		out[i] = C.double(x)
	}
	return out
}

func doublePtr(v []C.double) *C.double {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// takeString copies a library-allocated C string into Go memory and frees the
// original.
func takeString(p *C.char) string {
	if p == nil {
		return ""
	}
	s := C.GoString(p)
	C.gmshFree(unsafe.Pointer(p))
	return s
}

// takeInts copies a library-allocated int vector into Go memory and frees the
// original.
func takeInts(p *C.int, n C.size_t) []int {
	if p == nil {
		return nil
	}
	out := make([]int, int(n))
	for i, v := range unsafe.Slice(p, int(n)) {
		out[i] = int(v)
	}
	C.gmshFree(unsafe.Pointer(p))
	return out
}

// takeDoubles copies a library-allocated double vector into Go memory and
// frees the original.
func takeDoubles(p *C.double, n C.size_t) []float64 {
	if p == nil {
		return nil
	}
	out := make([]float64, int(n))
	for i, v := range unsafe.Slice(p, int(n)) {
		out[i] = float64(v)
	}
	C.gmshFree(unsafe.Pointer(p))
	return out
}

// takeStrings copies a library-allocated vector of C strings into Go memory,
// freeing each element and then the vector itself.
func takeStrings(p **C.char, n C.size_t) []string {
	if p == nil {
		return nil
	}
	out := make([]string, int(n))
	for i, cs := range unsafe.Slice(p, int(n)) {
		out[i] = C.GoString(cs)
		C.gmshFree(unsafe.Pointer(cs))
	}
	C.gmshFree(unsafe.Pointer(p))
	return out
}
