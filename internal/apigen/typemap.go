package apigen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// kind enumerates the C type shapes the renderer knows how to marshal. Each
// descriptor type string resolves to exactly one kind.
type kind int

const (
	kindInt kind = iota
	kindDouble
	kindBool
	kindString
	kindVectorInt
	kindVectorDouble
	kindVectorString
	kindVectorPair
	kindArgcArgv
)

// builtinKinds maps the type names the descriptor uses natively. A typemap
// file can only alias onto these; it cannot invent new marshaling.
var builtinKinds = map[string]kind{
	"int":           kindInt,
	"double":        kindDouble,
	"bool":          kindBool,
	"string":        kindString,
	"vector_int":    kindVectorInt,
	"vector_double": kindVectorDouble,
	"vector_string": kindVectorString,
	"vector_pair":   kindVectorPair,
	"argcargv":      kindArgcArgv,
}

// goType is the public Go type a kind surfaces as.
func (k kind) goType() string {
	switch k {
	case kindInt:
		return "int"
	case kindDouble:
		return "float64"
	case kindBool:
		return "bool"
	case kindString:
		return "string"
	case kindVectorInt, kindVectorPair:
		return "[]int"
	case kindVectorDouble:
		return "[]float64"
	case kindVectorString, kindArgcArgv:
		return "[]string"
	default:
		panic(fmt.Sprintf("apigen: unknown kind %d", k))
	}
}

// zero is the literal returned for this kind on the error path.
func (k kind) zero() string {
	switch k {
	case kindInt, kindDouble:
		return "0"
	case kindBool:
		return "false"
	case kindString:
		return `""`
	default:
		return "nil"
	}
}

// supportsOut reports whether the kind can be written through a C out
// parameter.
func (k kind) supportsOut() bool {
	switch k {
	case kindBool, kindArgcArgv:
		return false
	default:
		return true
	}
}

// UnmappedTypeError aborts generation when the descriptor names a C type
// the type map cannot resolve. It pinpoints the function and parameter so
// the fix is a one-line typemap or descriptor edit.
type UnmappedTypeError struct {
	Function string
	Param    string
	Type     string
}

func (e *UnmappedTypeError) Error() string {
	return fmt.Sprintf("apigen: function %s: param %s: no Go mapping for C type %q", e.Function, e.Param, e.Type)
}

// TypeMap resolves descriptor type names to marshaling kinds.
type TypeMap struct {
	kinds map[string]kind
}

// NewTypeMap returns the built-in mappings.
func NewTypeMap() *TypeMap {
	m := make(map[string]kind, len(builtinKinds))
	for name, k := range builtinKinds {
		m[name] = k
	}
	return &TypeMap{kinds: m}
}

type typeMapFile struct {
	Mappings map[string]string `yaml:"mappings"`
}

// LoadTypeMap returns the built-in mappings extended with the aliases in
// the YAML file at path. An empty path means built-ins only. Each alias
// maps a descriptor type name onto a built-in one, e.g. "size: int".
func LoadTypeMap(path string) (*TypeMap, error) {
	tm := NewTypeMap()
	if path == "" {
		return tm, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("apigen: read typemap: %w", err)
	}
	var file typeMapFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("apigen: parse typemap %s: %w", path, err)
	}

	for alias, target := range file.Mappings {
		k, ok := builtinKinds[target]
		if !ok {
			return nil, fmt.Errorf("apigen: typemap %s: alias %q targets unknown type %q", path, alias, target)
		}
		tm.kinds[alias] = k
	}
	return tm, nil
}

// resolve maps one parameter's type, honoring its direction.
func (tm *TypeMap) resolve(fn Function, p Param) (kind, error) {
	k, ok := tm.kinds[p.Type]
	if !ok {
		return 0, &UnmappedTypeError{Function: fn.CName, Param: p.Name, Type: p.Type}
	}
	if p.Out && !k.supportsOut() {
		return 0, fmt.Errorf("apigen: function %s: param %s: type %q cannot be an out parameter", fn.CName, p.Name, p.Type)
	}
	return k, nil
}

// Check resolves every parameter of every function, reporting the first
// failure. Generate runs this before rendering anything so an unmapped
// type never produces partial output.
func (tm *TypeMap) Check(api *API) error {
	for _, fn := range api.Functions {
		for _, p := range fn.Params {
			if _, err := tm.resolve(fn, p); err != nil {
				return err
			}
		}
	}
	return nil
}
