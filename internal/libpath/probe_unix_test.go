//go:build !windows

package libpath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProbeMissingFile(t *testing.T) {
	if err := Probe(filepath.Join(t.TempDir(), "libgmsh.so")); err == nil {
		t.Fatal("expected an error probing a missing file")
	}
}

func TestProbeNotALibrary(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "libgmsh.so")
	if err := os.WriteFile(p, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Probe(p); err == nil {
		t.Fatal("expected an error probing a non-library file")
	}
}
