// Package apigen turns the checked-in Gmsh API descriptor into the cgo
// wrappers and build stubs under internal/bindings. It is only used by the
// gmshgen command; nothing in the runtime path depends on it.
package apigen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalidDescriptor reports a descriptor that failed schema or semantic
// validation. The wrapped message lists every violation found.
var ErrInvalidDescriptor = errors.New("apigen: invalid descriptor")

// API is the parsed descriptor: the Gmsh API version it was extracted from
// and one entry per wrapped C function.
type API struct {
	Version   string
	Functions []Function

	// Checksum is the hex sha256 of the raw descriptor bytes. It is baked
	// into the generated file headers so a stale generate run is visible in
	// review.
	Checksum string
}

// Function describes one C entry point. GoName is derived from CName by
// stripping the gmsh prefix, so gmshModelGeoAddPoint becomes
// ModelGeoAddPoint.
type Function struct {
	CName   string
	GoName  string
	Class   string
	Doc     string
	Params  []Param
	Returns string
}

// Param describes one C parameter. Out parameters become Go return values;
// the others become Go arguments.
type Param struct {
	Name string
	Type string
	Out  bool
}

type jsonDescriptor struct {
	APIVersion string         `json:"api_version"`
	Functions  []jsonFunction `json:"functions"`
}

type jsonFunction struct {
	CName   string      `json:"c_name"`
	Class   string      `json:"class"`
	Doc     string      `json:"doc"`
	Params  []jsonParam `json:"params"`
	Returns string      `json:"returns"`
}

type jsonParam struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Out  bool   `json:"out"`
}

// Load reads and parses the descriptor at path.
func Load(path string) (*API, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("apigen: read descriptor: %w", err)
	}
	api, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return api, nil
}

// Parse validates data against the descriptor schema and returns the typed
// form. Validation failures are collected into a single error so a broken
// descriptor surfaces every problem at once.
func Parse(data []byte) (*API, error) {
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if !res.Valid() {
		var b strings.Builder
		for _, e := range res.Errors() {
			fmt.Fprintf(&b, "\n  %s: %s", e.Field(), e.Description())
		}
		return nil, fmt.Errorf("%w:%s", ErrInvalidDescriptor, b.String())
	}

	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	var raw jsonDescriptor
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	sum := sha256.Sum256(data)
	api := &API{
		Version:  raw.APIVersion,
		Checksum: hex.EncodeToString(sum[:]),
	}
	for _, f := range raw.Functions {
		fn := Function{
			CName:   f.CName,
			GoName:  goName(f.CName),
			Class:   f.Class,
			Doc:     f.Doc,
			Returns: f.Returns,
		}
		for _, p := range f.Params {
			fn.Params = append(fn.Params, Param{Name: p.Name, Type: p.Type, Out: p.Out})
		}
		api.Functions = append(api.Functions, fn)
	}

	if err := api.check(); err != nil {
		return nil, err
	}
	return api, nil
}

// check enforces the constraints the JSON schema cannot express.
func (a *API) check() error {
	var problems []string

	seen := make(map[string]bool, len(a.Functions))
	for _, f := range a.Functions {
		if seen[f.CName] {
			problems = append(problems, fmt.Sprintf("duplicate function %s", f.CName))
		}
		seen[f.CName] = true

		if f.GoName == "" || !unicode.IsUpper(rune(f.GoName[0])) {
			problems = append(problems, fmt.Sprintf("function %s: name must be gmsh followed by an exported identifier", f.CName))
		}

		names := make(map[string]bool, len(f.Params))
		for _, p := range f.Params {
			if names[p.Name] {
				problems = append(problems, fmt.Sprintf("function %s: duplicate param %s", f.CName, p.Name))
			}
			names[p.Name] = true
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n  %s", ErrInvalidDescriptor, strings.Join(problems, "\n  "))
}

// Sorted returns the functions ordered by C name. Generation always walks
// this order so descriptor edits never reshuffle the output.
func (a *API) Sorted() []Function {
	out := make([]Function, len(a.Functions))
	copy(out, a.Functions)
	sort.Slice(out, func(i, j int) bool { return out[i].CName < out[j].CName })
	return out
}

func goName(cName string) string {
	return strings.TrimPrefix(cName, "gmsh")
}
