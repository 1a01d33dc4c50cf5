package apigen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// docWidth is the column generated doc comments wrap at, excluding the
// "// " marker.
const docWidth = 75

const (
	cgoFileName  = "bindings_generated.go"
	stubFileName = "bindings_generated_stub.go"

	cgoTemplate  = "bindings.go.tmpl"
	stubTemplate = "bindings_stub.go.tmpl"
)

// Options configures one generation run.
type Options struct {
	// Source is the descriptor path recorded in the generated headers,
	// normally relative to the repository root.
	Source string

	// OutDir is the directory the generated files are written to.
	OutDir string
}

// File is one rendered output file.
type File struct {
	Path string
	Data []byte
}

type renderData struct {
	Source    string
	Checksum  string
	Version   string
	Functions []renderFunc
}

type renderFunc struct {
	CName         string
	GoName        string
	DocLines      []string
	ParamList     string
	StubParamList string
	ResultList    string
	BodyLines     []string
	StubReturn    string
}

// Generate renders the cgo wrappers and the stub file for api. Everything
// is resolved and rendered in memory; nothing touches the filesystem, so a
// failure can never leave partial output behind.
func Generate(api *API, tm *TypeMap, opts Options) ([]File, error) {
	if err := tm.Check(api); err != nil {
		return nil, err
	}

	fns := api.Sorted()
	rfs := make([]renderFunc, 0, len(fns))
	for _, fn := range fns {
		rf, err := buildFunc(fn, tm)
		if err != nil {
			return nil, err
		}
		rfs = append(rfs, rf)
	}

	data := renderData{
		Source:    filepath.ToSlash(opts.Source),
		Checksum:  api.Checksum,
		Version:   api.Version,
		Functions: rfs,
	}

	var cgoSrc, stubSrc []byte
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		cgoSrc, err = renderFile(cgoTemplate, cgoFileName, data)
		return err
	})
	g.Go(func() error {
		var err error
		stubSrc, err = renderFile(stubTemplate, stubFileName, data)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return []File{
		{Path: filepath.Join(opts.OutDir, cgoFileName), Data: cgoSrc},
		{Path: filepath.Join(opts.OutDir, stubFileName), Data: stubSrc},
	}, nil
}

func renderFile(tmplName, fileName string, data renderData) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+tmplName)
	if err != nil {
		return nil, fmt.Errorf("apigen: parse template %s: %w", tmplName, err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return nil, fmt.Errorf("apigen: render %s: %w", fileName, err)
	}
	out, err := imports.Process(fileName, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("apigen: format %s: %w", fileName, err)
	}
	return out, nil
}

// buildFunc translates one descriptor function into its rendered form: Go
// signature, marshaling body and stub.
func buildFunc(fn Function, tm *TypeMap) (renderFunc, error) {
	classConst, err := classConstant(fn.Class)
	if err != nil {
		return renderFunc{}, err
	}

	rf := renderFunc{
		CName:    fn.CName,
		GoName:   fn.GoName,
		DocLines: wrapDoc(fn.Doc, docWidth),
	}

	// The C return value leads the result list, followed by the out
	// parameters in declaration order.
	var results, zeros, retVals []string
	if fn.Returns == "int" {
		results = append(results, "int")
		zeros = append(zeros, "0")
		retVals = append(retVals, "int(r)")
	}
	for _, p := range fn.Params {
		if !p.Out {
			continue
		}
		k, err := tm.resolve(fn, p)
		if err != nil {
			return renderFunc{}, err
		}
		results = append(results, k.goType())
		zeros = append(zeros, k.zero())
	}

	if len(results) == 0 {
		rf.ResultList = "error"
	} else {
		rf.ResultList = "(" + strings.Join(results, ", ") + ", error)"
	}
	errPrefix := ""
	if len(zeros) > 0 {
		errPrefix = strings.Join(zeros, ", ") + ", "
	}

	var params, stubParams, prolog, outDecls, args []string
	for _, p := range fn.Params {
		k, err := tm.resolve(fn, p)
		if err != nil {
			return renderFunc{}, err
		}

		if p.Out {
			switch k {
			case kindInt:
				outDecls = append(outDecls, "var "+p.Name+"C C.int")
				args = append(args, "&"+p.Name+"C")
				retVals = append(retVals, "int("+p.Name+"C)")
			case kindDouble:
				outDecls = append(outDecls, "var "+p.Name+"C C.double")
				args = append(args, "&"+p.Name+"C")
				retVals = append(retVals, "float64("+p.Name+"C)")
			case kindString:
				outDecls = append(outDecls, "var "+p.Name+"C *C.char")
				args = append(args, "&"+p.Name+"C")
				retVals = append(retVals, "takeString("+p.Name+"C)")
			case kindVectorInt, kindVectorPair:
				outDecls = append(outDecls, "var "+p.Name+"C *C.int", "var "+p.Name+"N C.size_t")
				args = append(args, "&"+p.Name+"C", "&"+p.Name+"N")
				retVals = append(retVals, "takeInts("+p.Name+"C, "+p.Name+"N)")
			case kindVectorDouble:
				outDecls = append(outDecls, "var "+p.Name+"C *C.double", "var "+p.Name+"N C.size_t")
				args = append(args, "&"+p.Name+"C", "&"+p.Name+"N")
				retVals = append(retVals, "takeDoubles("+p.Name+"C, "+p.Name+"N)")
			case kindVectorString:
				outDecls = append(outDecls, "var "+p.Name+"C **C.char", "var "+p.Name+"N C.size_t")
				args = append(args, "&"+p.Name+"C", "&"+p.Name+"N")
				retVals = append(retVals, "takeStrings("+p.Name+"C, "+p.Name+"N)")
			}
			continue
		}

		params = append(params, p.Name+" "+k.goType())
		stubParams = append(stubParams, k.goType())
		switch k {
		case kindInt:
			args = append(args, "C.int("+p.Name+")")
		case kindDouble:
			args = append(args, "C.double("+p.Name+")")
		case kindBool:
			args = append(args, "cbool("+p.Name+")")
		case kindString:
			prolog = append(prolog,
				p.Name+"C, err := toCString("+p.Name+")",
				"if err != nil {",
				"\treturn "+errPrefix+"err",
				"}",
				"defer freeCString("+p.Name+"C)",
			)
			args = append(args, p.Name+"C")
		case kindVectorInt, kindVectorPair:
			prolog = append(prolog, p.Name+"C := toCInts("+p.Name+")")
			args = append(args, "intPtr("+p.Name+"C)", "C.size_t(len("+p.Name+"C))")
		case kindVectorDouble:
			prolog = append(prolog, p.Name+"C := toCDoubles("+p.Name+")")
			args = append(args, "doublePtr("+p.Name+"C)", "C.size_t(len("+p.Name+"C))")
		case kindVectorString:
			prolog = append(prolog,
				p.Name+"C, err := toCStrings("+p.Name+")",
				"if err != nil {",
				"\treturn "+errPrefix+"err",
				"}",
				"defer freeCStrings("+p.Name+"C)",
			)
			args = append(args, "strPtr("+p.Name+"C)", "C.size_t(len("+p.Name+"))")
		case kindArgcArgv:
			prolog = append(prolog,
				p.Name+"C, err := toCStrings("+p.Name+")",
				"if err != nil {",
				"\treturn "+errPrefix+"err",
				"}",
				"defer freeCStrings("+p.Name+"C)",
			)
			args = append(args, "C.int(len("+p.Name+"))", "strPtr("+p.Name+"C)")
		}
	}

	rf.ParamList = strings.Join(params, ", ")
	rf.StubParamList = strings.Join(stubParams, ", ")
	rf.StubReturn = errPrefix + "ErrNotBuilt"

	body := append([]string{}, prolog...)
	body = append(body, outDecls...)
	body = append(body, "var ierr C.int")

	call := "C." + fn.CName + "(" + strings.Join(append(args, "&ierr"), ", ") + ")"
	if fn.Returns == "int" {
		call = "r := " + call
	}
	body = append(body, call)

	body = append(body,
		"if ierr != 0 {",
		"\treturn "+errPrefix+"NewCallError("+classConst+", \""+fn.CName+"\", int(ierr))",
		"}",
	)
	if len(retVals) == 0 {
		body = append(body, "return nil")
	} else {
		body = append(body, "return "+strings.Join(retVals, ", ")+", nil")
	}
	rf.BodyLines = body

	return rf, nil
}

func classConstant(class string) (string, error) {
	switch class {
	case "main":
		return "ClassMain", nil
	case "model":
		return "ClassModel", nil
	case "option":
		return "ClassOption", nil
	default:
		return "", fmt.Errorf("apigen: unknown error class %q", class)
	}
}

// wrapDoc greedily fills words into lines of at most width characters.
func wrapDoc(text string, width int) []string {
	var lines []string
	cur := ""
	for _, w := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) > width:
			lines = append(lines, cur)
			cur = w
		default:
			cur += " " + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// Write writes every rendered file.
func Write(files []File) error {
	for _, f := range files {
		if err := os.WriteFile(f.Path, f.Data, 0o644); err != nil {
			return fmt.Errorf("apigen: write %s: %w", f.Path, err)
		}
	}
	return nil
}

// Check compares rendered output against the files on disk and returns the
// paths that differ. CI runs generate --check to catch descriptor edits
// that were not followed by a generate run.
func Check(files []File) ([]string, error) {
	var stale []string
	for _, f := range files {
		existing, err := os.ReadFile(f.Path)
		if err != nil {
			if os.IsNotExist(err) {
				stale = append(stale, f.Path)
				continue
			}
			return nil, fmt.Errorf("apigen: read %s: %w", f.Path, err)
		}
		if !bytes.Equal(existing, f.Data) {
			stale = append(stale, f.Path)
		}
	}
	return stale, nil
}
