//go:build !windows

package libpath

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Probe dlopens the library at path and resolves the gmshInitialize symbol,
// verifying that the file is a loadable Gmsh build. The library is closed
// again before returning; no native state is initialized.
func Probe(path string) error {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return fmt.Errorf("dlopen %s: %w", path, err)
	}
	defer purego.Dlclose(h)

	if _, err := purego.Dlsym(h, "gmshInitialize"); err != nil {
		return fmt.Errorf("%s does not export gmshInitialize: %w", path, err)
	}
	return nil
}
