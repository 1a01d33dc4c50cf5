package gmsh

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/meshforge/gmsh-go/internal/bindings"
)

// fakeNative is an in-memory nativeAPI used to exercise the session and
// model layers without the native library. It keeps just enough state to
// answer queries consistently and records every call in order so tests can
// assert on sequencing.
type fakeNative struct {
	mu    sync.Mutex
	trace []string

	// errs injects a failure for the named method.
	errs map[string]error

	initialized   bool
	finalizeCalls int

	numberOpts map[string]float64
	stringOpts map[string]string

	models  map[string]*fakeModel
	current string
	nextTag int

	logging  bool
	logLines []string
}

type fakeModel struct {
	entities [][2]int
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		errs:       map[string]error{},
		numberOpts: map[string]float64{},
		stringOpts: map[string]string{"General.Version": "4.4.3"},
		models:     map[string]*fakeModel{},
	}
}

func (f *fakeNative) record(format string, args ...any) {
	f.trace = append(f.trace, fmt.Sprintf(format, args...))
}

// fail returns the injected error for name, if any.
func (f *fakeNative) fail(name string) error {
	return f.errs[name]
}

// calls returns a snapshot of the recorded trace.
func (f *fakeNative) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *fakeNative) allocTag() int {
	f.nextTag++
	return f.nextTag
}

func (f *fakeNative) currentModel() *fakeModel {
	return f.models[f.current]
}

func (f *fakeNative) addEntity(dim int) int {
	tag := f.allocTag()
	if m := f.currentModel(); m != nil {
		m.entities = append(m.entities, [2]int{dim, tag})
	}
	return tag
}

func (f *fakeNative) Initialize(argv []string, readConfigFiles bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Initialize(%s)", strings.Join(argv, " "))
	if err := f.fail("Initialize"); err != nil {
		return err
	}
	f.initialized = true
	return nil
}

func (f *fakeNative) Finalize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Finalize")
	if err := f.fail("Finalize"); err != nil {
		return err
	}
	f.initialized = false
	f.finalizeCalls++
	return nil
}

func (f *fakeNative) Open(fileName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Open(%s)", fileName)
	return f.fail("Open")
}

func (f *fakeNative) Merge(fileName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Merge(%s)", fileName)
	return f.fail("Merge")
}

func (f *fakeNative) Write(fileName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Write(%s)", fileName)
	return f.fail("Write")
}

func (f *fakeNative) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Clear")
	if err := f.fail("Clear"); err != nil {
		return err
	}
	f.models = map[string]*fakeModel{}
	f.current = ""
	return nil
}

func (f *fakeNative) OptionSetNumber(name string, value float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("OptionSetNumber(%s=%g)", name, value)
	if err := f.fail("OptionSetNumber"); err != nil {
		return err
	}
	f.numberOpts[name] = value
	return nil
}

func (f *fakeNative) OptionGetNumber(name string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("OptionGetNumber(%s)", name)
	if err := f.fail("OptionGetNumber"); err != nil {
		return 0, err
	}
	v, ok := f.numberOpts[name]
	if !ok {
		return 0, bindings.NewCallError(bindings.ClassOption, "gmshOptionGetNumber", 1)
	}
	return v, nil
}

func (f *fakeNative) OptionSetString(name string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("OptionSetString(%s=%s)", name, value)
	if err := f.fail("OptionSetString"); err != nil {
		return err
	}
	f.stringOpts[name] = value
	return nil
}

func (f *fakeNative) OptionGetString(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("OptionGetString(%s)", name)
	if err := f.fail("OptionGetString"); err != nil {
		return "", err
	}
	v, ok := f.stringOpts[name]
	if !ok {
		return "", bindings.NewCallError(bindings.ClassOption, "gmshOptionGetString", 1)
	}
	return v, nil
}

func (f *fakeNative) ModelAdd(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelAdd(%s)", name)
	if err := f.fail("ModelAdd"); err != nil {
		return err
	}
	f.models[name] = &fakeModel{}
	f.current = name
	return nil
}

func (f *fakeNative) ModelRemove() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelRemove")
	if err := f.fail("ModelRemove"); err != nil {
		return err
	}
	delete(f.models, f.current)
	f.current = ""
	return nil
}

func (f *fakeNative) ModelList() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelList")
	if err := f.fail("ModelList"); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(f.models))
	for name := range f.models {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeNative) ModelGetCurrent() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGetCurrent")
	if err := f.fail("ModelGetCurrent"); err != nil {
		return "", err
	}
	return f.current, nil
}

func (f *fakeNative) ModelSetCurrent(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelSetCurrent(%s)", name)
	if err := f.fail("ModelSetCurrent"); err != nil {
		return err
	}
	if _, ok := f.models[name]; !ok {
		return bindings.NewCallError(bindings.ClassModel, "gmshModelSetCurrent", 2)
	}
	f.current = name
	return nil
}

func (f *fakeNative) ModelGetDimension() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGetDimension")
	if err := f.fail("ModelGetDimension"); err != nil {
		return 0, err
	}
	dim := 0
	if m := f.currentModel(); m != nil {
		for _, e := range m.entities {
			if e[0] > dim {
				dim = e[0]
			}
		}
	}
	return dim, nil
}

func (f *fakeNative) ModelGetEntities(dim int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGetEntities(%d)", dim)
	if err := f.fail("ModelGetEntities"); err != nil {
		return nil, err
	}
	var flat []int
	if m := f.currentModel(); m != nil {
		for _, e := range m.entities {
			if dim == -1 || e[0] == dim {
				flat = append(flat, e[0], e[1])
			}
		}
	}
	return flat, nil
}

func (f *fakeNative) ModelAddPhysicalGroup(dim int, tags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelAddPhysicalGroup(dim=%d, tags=%v)", dim, tags)
	if err := f.fail("ModelAddPhysicalGroup"); err != nil {
		return 0, err
	}
	return f.allocTag(), nil
}

func (f *fakeNative) ModelSetPhysicalName(dim int, tag int, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelSetPhysicalName(dim=%d, tag=%d, name=%s)", dim, tag, name)
	return f.fail("ModelSetPhysicalName")
}

func (f *fakeNative) ModelGetBoundingBox(dim int, tag int) (float64, float64, float64, float64, float64, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGetBoundingBox(dim=%d, tag=%d)", dim, tag)
	if err := f.fail("ModelGetBoundingBox"); err != nil {
		return 0, 0, 0, 0, 0, 0, err
	}
	return 0, 0, 0, 1, 1, 1, nil
}

func (f *fakeNative) ModelGeoAddPoint(x, y, z, meshSize float64, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoAddPoint")
	if err := f.fail("ModelGeoAddPoint"); err != nil {
		return 0, err
	}
	return f.addEntity(0), nil
}

func (f *fakeNative) ModelGeoAddLine(startTag, endTag, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoAddLine(%d, %d)", startTag, endTag)
	if err := f.fail("ModelGeoAddLine"); err != nil {
		return 0, err
	}
	return f.addEntity(1), nil
}

func (f *fakeNative) ModelGeoAddCurveLoop(curveTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoAddCurveLoop(%v)", curveTags)
	if err := f.fail("ModelGeoAddCurveLoop"); err != nil {
		return 0, err
	}
	return f.allocTag(), nil
}

func (f *fakeNative) ModelGeoAddPlaneSurface(wireTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoAddPlaneSurface(%v)", wireTags)
	if err := f.fail("ModelGeoAddPlaneSurface"); err != nil {
		return 0, err
	}
	return f.addEntity(2), nil
}

func (f *fakeNative) ModelGeoAddSurfaceLoop(surfaceTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoAddSurfaceLoop(%v)", surfaceTags)
	if err := f.fail("ModelGeoAddSurfaceLoop"); err != nil {
		return 0, err
	}
	return f.allocTag(), nil
}

func (f *fakeNative) ModelGeoAddVolume(shellTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoAddVolume(%v)", shellTags)
	if err := f.fail("ModelGeoAddVolume"); err != nil {
		return 0, err
	}
	return f.addEntity(3), nil
}

func (f *fakeNative) ModelGeoRemove(dimTags []int, recursive bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoRemove(%v, recursive=%t)", dimTags, recursive)
	return f.fail("ModelGeoRemove")
}

func (f *fakeNative) ModelGeoSynchronize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelGeoSynchronize")
	return f.fail("ModelGeoSynchronize")
}

func (f *fakeNative) ModelOccAddPoint(x, y, z, meshSize float64, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddPoint")
	if err := f.fail("ModelOccAddPoint"); err != nil {
		return 0, err
	}
	return f.addEntity(0), nil
}

func (f *fakeNative) ModelOccAddLine(startTag, endTag, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddLine(%d, %d)", startTag, endTag)
	if err := f.fail("ModelOccAddLine"); err != nil {
		return 0, err
	}
	return f.addEntity(1), nil
}

func (f *fakeNative) ModelOccAddCurveLoop(curveTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddCurveLoop(%v)", curveTags)
	if err := f.fail("ModelOccAddCurveLoop"); err != nil {
		return 0, err
	}
	return f.allocTag(), nil
}

func (f *fakeNative) ModelOccAddPlaneSurface(wireTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddPlaneSurface(%v)", wireTags)
	if err := f.fail("ModelOccAddPlaneSurface"); err != nil {
		return 0, err
	}
	return f.addEntity(2), nil
}

func (f *fakeNative) ModelOccAddSurfaceLoop(surfaceTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddSurfaceLoop(%v)", surfaceTags)
	if err := f.fail("ModelOccAddSurfaceLoop"); err != nil {
		return 0, err
	}
	return f.allocTag(), nil
}

func (f *fakeNative) ModelOccAddVolume(shellTags []int, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddVolume(%v)", shellTags)
	if err := f.fail("ModelOccAddVolume"); err != nil {
		return 0, err
	}
	return f.addEntity(3), nil
}

func (f *fakeNative) ModelOccAddBox(x, y, z, dx, dy, dz float64, tag int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddBox(%g, %g, %g, %g, %g, %g)", x, y, z, dx, dy, dz)
	if err := f.fail("ModelOccAddBox"); err != nil {
		return 0, err
	}
	return f.addEntity(3), nil
}

func (f *fakeNative) ModelOccAddSphere(xc, yc, zc, radius float64, tag int, angle1, angle2, angle3 float64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddSphere(r=%g, angles=%g:%g:%g)", radius, angle1, angle2, angle3)
	if err := f.fail("ModelOccAddSphere"); err != nil {
		return 0, err
	}
	return f.addEntity(3), nil
}

func (f *fakeNative) ModelOccAddTorus(x, y, z, r1, r2 float64, tag int, angle float64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccAddTorus(r1=%g, r2=%g, angle=%g)", r1, r2, angle)
	if err := f.fail("ModelOccAddTorus"); err != nil {
		return 0, err
	}
	return f.addEntity(3), nil
}

func (f *fakeNative) ModelOccRemove(dimTags []int, recursive bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccRemove(%v, recursive=%t)", dimTags, recursive)
	return f.fail("ModelOccRemove")
}

func (f *fakeNative) ModelOccSynchronize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelOccSynchronize")
	return f.fail("ModelOccSynchronize")
}

func (f *fakeNative) ModelMeshGenerate(dim int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelMeshGenerate(%d)", dim)
	return f.fail("ModelMeshGenerate")
}

func (f *fakeNative) ModelMeshRefine() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ModelMeshRefine")
	return f.fail("ModelMeshRefine")
}

func (f *fakeNative) FltkInitialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("FltkInitialize")
	return f.fail("FltkInitialize")
}

func (f *fakeNative) FltkRun() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("FltkRun")
	return f.fail("FltkRun")
}

func (f *fakeNative) LoggerStart() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoggerStart")
	if err := f.fail("LoggerStart"); err != nil {
		return err
	}
	f.logging = true
	return nil
}

func (f *fakeNative) LoggerGet() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoggerGet")
	if err := f.fail("LoggerGet"); err != nil {
		return nil, err
	}
	out := make([]string, len(f.logLines))
	copy(out, f.logLines)
	return out, nil
}

func (f *fakeNative) LoggerStop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LoggerStop")
	if err := f.fail("LoggerStop"); err != nil {
		return err
	}
	f.logging = false
	return nil
}

// newTestSession initializes a session over a fresh fake and arranges for it
// to be finalized when the test ends, releasing the process-wide slot.
func newTestSession(t *testing.T) (*Session, *fakeNative) {
	t.Helper()
	f := newFakeNative()
	s, err := initialize(f, Config{})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { _ = s.Finalize() })
	return s, f
}

// traceContains reports whether want occurs as a subsequence of calls.
func traceContains(calls []string, want ...string) bool {
	i := 0
	for _, c := range calls {
		if i < len(want) && c == want[i] {
			i++
		}
	}
	return i == len(want)
}
