// Package libpath locates the Gmsh shared library for diagnostics. The cgo
// layer links against the SDK at build time; this package exists so tooling
// can explain a missing or broken installation before a build fails
// obscurely.
package libpath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Environment variables honored by Candidates, most specific first.
const (
	// EnvLibPath points directly at the gmsh shared library file.
	EnvLibPath = "GMSH_LIB_PATH"
	// EnvSDK names the root of an unpacked Gmsh SDK, expected to contain
	// include/ and lib/ directories.
	EnvSDK = "GMSH_SDK"
)

var systemDirs = []string{"/usr/local/lib", "/usr/lib", "/opt/gmsh/lib"}

func libName() string {
	if runtime.GOOS == "darwin" {
		return "libgmsh.dylib"
	}
	return "libgmsh.so"
}

// Candidates returns the paths that Locate will try, in order.
func Candidates() []string {
	var out []string
	if p := os.Getenv(EnvLibPath); p != "" {
		out = append(out, p)
	}
	if sdk := os.Getenv(EnvSDK); sdk != "" {
		out = append(out, filepath.Join(sdk, "lib", libName()))
	}
	for _, dir := range systemDirs {
		out = append(out, filepath.Join(dir, libName()))
	}
	return out
}

// Locate returns the first candidate that exists on disk.
func Locate() (string, error) {
	candidates := Candidates()
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("libgmsh not found (set %s or %s); tried %s",
		EnvLibPath, EnvSDK, strings.Join(candidates, ", "))
}
