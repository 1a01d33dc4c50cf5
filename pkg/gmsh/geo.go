package gmsh

// geoKernel routes shape construction to the built-in geometry kernel.
type geoKernel struct{}

func (geoKernel) addPoint(api nativeAPI, x, y, z, meshSize float64, tag int) (int, error) {
	return api.ModelGeoAddPoint(x, y, z, meshSize, tag)
}

func (geoKernel) addLine(api nativeAPI, startTag, endTag, tag int) (int, error) {
	return api.ModelGeoAddLine(startTag, endTag, tag)
}

func (geoKernel) addCurveLoop(api nativeAPI, curveTags []int, tag int) (int, error) {
	return api.ModelGeoAddCurveLoop(curveTags, tag)
}

func (geoKernel) addPlaneSurface(api nativeAPI, wireTags []int, tag int) (int, error) {
	return api.ModelGeoAddPlaneSurface(wireTags, tag)
}

func (geoKernel) addSurfaceLoop(api nativeAPI, surfaceTags []int, tag int) (int, error) {
	return api.ModelGeoAddSurfaceLoop(surfaceTags, tag)
}

func (geoKernel) addVolume(api nativeAPI, shellTags []int, tag int) (int, error) {
	return api.ModelGeoAddVolume(shellTags, tag)
}

func (geoKernel) remove(api nativeAPI, dimTags []int, recursive bool) error {
	return api.ModelGeoRemove(dimTags, recursive)
}

func (geoKernel) synchronize(api nativeAPI) error {
	return api.ModelGeoSynchronize()
}

// GeoModel is a Model backed by the built-in geometry kernel. The built-in
// kernel covers the classic bottom-up workflow: points, lines, loops,
// surfaces, shells, volumes.
type GeoModel struct {
	*Model
}

// NewGeoModel adds a named model to the session and binds it to the
// built-in geometry kernel.
func NewGeoModel(s *Session, name string) (*GeoModel, error) {
	m, err := newModel(s, name, geoKernel{})
	if err != nil {
		return nil, err
	}
	return &GeoModel{Model: m}, nil
}
