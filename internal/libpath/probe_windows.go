//go:build windows

package libpath

import "errors"

// Probe is not implemented on Windows; the cgo bindings are not built there
// either.
func Probe(string) error {
	return errors.New("library probing is not supported on windows")
}
