package apigen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func repoDescriptor(t *testing.T) *API {
	t.Helper()
	api, err := Load(filepath.Join("..", "..", "api", "gmsh_api.json"))
	require.NoError(t, err)
	return api
}

func TestParseRepoDescriptor(t *testing.T) {
	api := repoDescriptor(t)

	require.Equal(t, "4.4.3", api.Version)
	require.Len(t, api.Functions, 46)
	require.Len(t, api.Checksum, 64)

	byName := make(map[string]Function, len(api.Functions))
	for _, f := range api.Functions {
		byName[f.CName] = f
	}

	init, ok := byName["gmshInitialize"]
	require.True(t, ok)
	require.Equal(t, "Initialize", init.GoName)
	require.Equal(t, "main", init.Class)
	require.Equal(t, "argcargv", init.Params[0].Type)

	bbox, ok := byName["gmshModelGetBoundingBox"]
	require.True(t, ok)
	outs := 0
	for _, p := range bbox.Params {
		if p.Out {
			outs++
		}
	}
	require.Equal(t, 6, outs)
}

func TestSortedIsStable(t *testing.T) {
	api := repoDescriptor(t)

	sorted := api.Sorted()
	for i := 1; i < len(sorted); i++ {
		require.Less(t, sorted[i-1].CName, sorted[i].CName)
	}
	// Sorted must not reorder the parsed slice itself.
	require.Equal(t, "gmshInitialize", api.Functions[0].CName)
}

func TestChecksumTracksBytes(t *testing.T) {
	a, err := Parse([]byte(minimalDescriptor(`"gmshClear"`)))
	require.NoError(t, err)
	b, err := Parse([]byte(minimalDescriptor(`"gmshFinalize"`)))
	require.NoError(t, err)
	require.NotEqual(t, a.Checksum, b.Checksum)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing version": `{"functions": [{"c_name": "gmshClear", "class": "main", "doc": "d", "params": []}]}`,
		"bad version":     `{"api_version": "4.4", "functions": [{"c_name": "gmshClear", "class": "main", "doc": "d", "params": []}]}`,
		"no functions":    `{"api_version": "4.4.3", "functions": []}`,
		"bad prefix":      minimalDescriptor(`"mshClear"`),
		"bad class":       `{"api_version": "4.4.3", "functions": [{"c_name": "gmshClear", "class": "misc", "doc": "d", "params": []}]}`,
		"unknown field":   `{"api_version": "4.4.3", "extras": true, "functions": [{"c_name": "gmshClear", "class": "main", "doc": "d", "params": []}]}`,
		"bad returns":     `{"api_version": "4.4.3", "functions": [{"c_name": "gmshClear", "class": "main", "doc": "d", "params": [], "returns": "double"}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidDescriptor)
		})
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	doc := `{
  "api_version": "4.4.3",
  "functions": [
    {"c_name": "gmshClear", "class": "main", "doc": "d", "params": []},
    {"c_name": "gmshClear", "class": "main", "doc": "d", "params": []}
  ]
}`
	_, err := Parse([]byte(doc))
	require.ErrorIs(t, err, ErrInvalidDescriptor)
	require.ErrorContains(t, err, "duplicate function gmshClear")

	doc = `{
  "api_version": "4.4.3",
  "functions": [
    {"c_name": "gmshOpen", "class": "main", "doc": "d", "params": [
      {"name": "fileName", "type": "string"},
      {"name": "fileName", "type": "string"}
    ]}
  ]
}`
	_, err = Parse([]byte(doc))
	require.ErrorIs(t, err, ErrInvalidDescriptor)
	require.ErrorContains(t, err, "duplicate param fileName")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func minimalDescriptor(cName string) string {
	return `{"api_version": "4.4.3", "functions": [{"c_name": ` + cName + `, "class": "main", "doc": "d", "params": []}]}`
}
