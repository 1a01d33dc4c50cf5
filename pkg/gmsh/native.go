package gmsh

import "github.com/meshforge/gmsh-go/internal/bindings"

// nativeAPI mirrors the generated wrappers in internal/bindings, one method
// per wrapped C entry point. Session and Model dispatch through this
// interface so the lifecycle and marshaling logic can be exercised against
// an in-memory implementation in tests; the only production implementation
// forwards every call unchanged.
type nativeAPI interface {
	Initialize(argv []string, readConfigFiles bool) error
	Finalize() error
	Open(fileName string) error
	Merge(fileName string) error
	Write(fileName string) error
	Clear() error

	OptionSetNumber(name string, value float64) error
	OptionGetNumber(name string) (float64, error)
	OptionSetString(name string, value string) error
	OptionGetString(name string) (string, error)

	ModelAdd(name string) error
	ModelRemove() error
	ModelList() ([]string, error)
	ModelGetCurrent() (string, error)
	ModelSetCurrent(name string) error
	ModelGetDimension() (int, error)
	ModelGetEntities(dim int) ([]int, error)
	ModelAddPhysicalGroup(dim int, tags []int, tag int) (int, error)
	ModelSetPhysicalName(dim int, tag int, name string) error
	ModelGetBoundingBox(dim int, tag int) (float64, float64, float64, float64, float64, float64, error)

	ModelGeoAddPoint(x, y, z, meshSize float64, tag int) (int, error)
	ModelGeoAddLine(startTag, endTag, tag int) (int, error)
	ModelGeoAddCurveLoop(curveTags []int, tag int) (int, error)
	ModelGeoAddPlaneSurface(wireTags []int, tag int) (int, error)
	ModelGeoAddSurfaceLoop(surfaceTags []int, tag int) (int, error)
	ModelGeoAddVolume(shellTags []int, tag int) (int, error)
	ModelGeoRemove(dimTags []int, recursive bool) error
	ModelGeoSynchronize() error

	ModelOccAddPoint(x, y, z, meshSize float64, tag int) (int, error)
	ModelOccAddLine(startTag, endTag, tag int) (int, error)
	ModelOccAddCurveLoop(curveTags []int, tag int) (int, error)
	ModelOccAddPlaneSurface(wireTags []int, tag int) (int, error)
	ModelOccAddSurfaceLoop(surfaceTags []int, tag int) (int, error)
	ModelOccAddVolume(shellTags []int, tag int) (int, error)
	ModelOccAddBox(x, y, z, dx, dy, dz float64, tag int) (int, error)
	ModelOccAddSphere(xc, yc, zc, radius float64, tag int, angle1, angle2, angle3 float64) (int, error)
	ModelOccAddTorus(x, y, z, r1, r2 float64, tag int, angle float64) (int, error)
	ModelOccRemove(dimTags []int, recursive bool) error
	ModelOccSynchronize() error

	ModelMeshGenerate(dim int) error
	ModelMeshRefine() error

	FltkInitialize() error
	FltkRun() error

	LoggerStart() error
	LoggerGet() ([]string, error)
	LoggerStop() error
}

type libGmsh struct{}

var _ nativeAPI = libGmsh{}

func (libGmsh) Initialize(argv []string, readConfigFiles bool) error {
	return bindings.Initialize(argv, readConfigFiles)
}

func (libGmsh) Finalize() error { return bindings.Finalize() }

func (libGmsh) Open(fileName string) error { return bindings.Open(fileName) }

func (libGmsh) Merge(fileName string) error { return bindings.Merge(fileName) }

func (libGmsh) Write(fileName string) error { return bindings.Write(fileName) }

func (libGmsh) Clear() error { return bindings.Clear() }

func (libGmsh) OptionSetNumber(name string, value float64) error {
	return bindings.OptionSetNumber(name, value)
}

func (libGmsh) OptionGetNumber(name string) (float64, error) {
	return bindings.OptionGetNumber(name)
}

func (libGmsh) OptionSetString(name string, value string) error {
	return bindings.OptionSetString(name, value)
}

func (libGmsh) OptionGetString(name string) (string, error) {
	return bindings.OptionGetString(name)
}

func (libGmsh) ModelAdd(name string) error { return bindings.ModelAdd(name) }

func (libGmsh) ModelRemove() error { return bindings.ModelRemove() }

func (libGmsh) ModelList() ([]string, error) { return bindings.ModelList() }

func (libGmsh) ModelGetCurrent() (string, error) { return bindings.ModelGetCurrent() }

func (libGmsh) ModelSetCurrent(name string) error { return bindings.ModelSetCurrent(name) }

func (libGmsh) ModelGetDimension() (int, error) { return bindings.ModelGetDimension() }

func (libGmsh) ModelGetEntities(dim int) ([]int, error) { return bindings.ModelGetEntities(dim) }

func (libGmsh) ModelAddPhysicalGroup(dim int, tags []int, tag int) (int, error) {
	return bindings.ModelAddPhysicalGroup(dim, tags, tag)
}

func (libGmsh) ModelSetPhysicalName(dim int, tag int, name string) error {
	return bindings.ModelSetPhysicalName(dim, tag, name)
}

func (libGmsh) ModelGetBoundingBox(dim int, tag int) (float64, float64, float64, float64, float64, float64, error) {
	return bindings.ModelGetBoundingBox(dim, tag)
}

func (libGmsh) ModelGeoAddPoint(x, y, z, meshSize float64, tag int) (int, error) {
	return bindings.ModelGeoAddPoint(x, y, z, meshSize, tag)
}

func (libGmsh) ModelGeoAddLine(startTag, endTag, tag int) (int, error) {
	return bindings.ModelGeoAddLine(startTag, endTag, tag)
}

func (libGmsh) ModelGeoAddCurveLoop(curveTags []int, tag int) (int, error) {
	return bindings.ModelGeoAddCurveLoop(curveTags, tag)
}

func (libGmsh) ModelGeoAddPlaneSurface(wireTags []int, tag int) (int, error) {
	return bindings.ModelGeoAddPlaneSurface(wireTags, tag)
}

func (libGmsh) ModelGeoAddSurfaceLoop(surfaceTags []int, tag int) (int, error) {
	return bindings.ModelGeoAddSurfaceLoop(surfaceTags, tag)
}

func (libGmsh) ModelGeoAddVolume(shellTags []int, tag int) (int, error) {
	return bindings.ModelGeoAddVolume(shellTags, tag)
}

func (libGmsh) ModelGeoRemove(dimTags []int, recursive bool) error {
	return bindings.ModelGeoRemove(dimTags, recursive)
}

func (libGmsh) ModelGeoSynchronize() error { return bindings.ModelGeoSynchronize() }

func (libGmsh) ModelOccAddPoint(x, y, z, meshSize float64, tag int) (int, error) {
	return bindings.ModelOccAddPoint(x, y, z, meshSize, tag)
}

func (libGmsh) ModelOccAddLine(startTag, endTag, tag int) (int, error) {
	return bindings.ModelOccAddLine(startTag, endTag, tag)
}

func (libGmsh) ModelOccAddCurveLoop(curveTags []int, tag int) (int, error) {
	return bindings.ModelOccAddCurveLoop(curveTags, tag)
}

func (libGmsh) ModelOccAddPlaneSurface(wireTags []int, tag int) (int, error) {
	return bindings.ModelOccAddPlaneSurface(wireTags, tag)
}

func (libGmsh) ModelOccAddSurfaceLoop(surfaceTags []int, tag int) (int, error) {
	return bindings.ModelOccAddSurfaceLoop(surfaceTags, tag)
}

func (libGmsh) ModelOccAddVolume(shellTags []int, tag int) (int, error) {
	return bindings.ModelOccAddVolume(shellTags, tag)
}

func (libGmsh) ModelOccAddBox(x, y, z, dx, dy, dz float64, tag int) (int, error) {
	return bindings.ModelOccAddBox(x, y, z, dx, dy, dz, tag)
}

func (libGmsh) ModelOccAddSphere(xc, yc, zc, radius float64, tag int, angle1, angle2, angle3 float64) (int, error) {
	return bindings.ModelOccAddSphere(xc, yc, zc, radius, tag, angle1, angle2, angle3)
}

func (libGmsh) ModelOccAddTorus(x, y, z, r1, r2 float64, tag int, angle float64) (int, error) {
	return bindings.ModelOccAddTorus(x, y, z, r1, r2, tag, angle)
}

func (libGmsh) ModelOccRemove(dimTags []int, recursive bool) error {
	return bindings.ModelOccRemove(dimTags, recursive)
}

func (libGmsh) ModelOccSynchronize() error { return bindings.ModelOccSynchronize() }

func (libGmsh) ModelMeshGenerate(dim int) error { return bindings.ModelMeshGenerate(dim) }

func (libGmsh) ModelMeshRefine() error { return bindings.ModelMeshRefine() }

func (libGmsh) FltkInitialize() error { return bindings.FltkInitialize() }

func (libGmsh) FltkRun() error { return bindings.FltkRun() }

func (libGmsh) LoggerStart() error { return bindings.LoggerStart() }

func (libGmsh) LoggerGet() ([]string, error) { return bindings.LoggerGet() }

func (libGmsh) LoggerStop() error { return bindings.LoggerStop() }
