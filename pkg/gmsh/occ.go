package gmsh

// occKernel routes shape construction to the OpenCASCADE kernel.
type occKernel struct{}

func (occKernel) addPoint(api nativeAPI, x, y, z, meshSize float64, tag int) (int, error) {
	return api.ModelOccAddPoint(x, y, z, meshSize, tag)
}

func (occKernel) addLine(api nativeAPI, startTag, endTag, tag int) (int, error) {
	return api.ModelOccAddLine(startTag, endTag, tag)
}

func (occKernel) addCurveLoop(api nativeAPI, curveTags []int, tag int) (int, error) {
	return api.ModelOccAddCurveLoop(curveTags, tag)
}

func (occKernel) addPlaneSurface(api nativeAPI, wireTags []int, tag int) (int, error) {
	return api.ModelOccAddPlaneSurface(wireTags, tag)
}

func (occKernel) addSurfaceLoop(api nativeAPI, surfaceTags []int, tag int) (int, error) {
	return api.ModelOccAddSurfaceLoop(surfaceTags, tag)
}

func (occKernel) addVolume(api nativeAPI, shellTags []int, tag int) (int, error) {
	return api.ModelOccAddVolume(shellTags, tag)
}

func (occKernel) remove(api nativeAPI, dimTags []int, recursive bool) error {
	return api.ModelOccRemove(dimTags, recursive)
}

func (occKernel) synchronize(api nativeAPI) error {
	return api.ModelOccSynchronize()
}

// OccModel is a Model backed by the OpenCASCADE kernel. On top of the
// bottom-up workflow shared with GeoModel it offers solid primitives that
// the built-in kernel has no equivalent for.
type OccModel struct {
	*Model
}

// NewOccModel adds a named model to the session and binds it to the
// OpenCASCADE kernel. The native library must have been built with
// OpenCASCADE support; without it every kernel operation fails.
func NewOccModel(s *Session, name string) (*OccModel, error) {
	m, err := newModel(s, name, occKernel{})
	if err != nil {
		return nil, err
	}
	return &OccModel{Model: m}, nil
}

// AddBox adds an axis-aligned solid box.
func (m *OccModel) AddBox(b Box) (VolumeTag, error) {
	var t VolumeTag
	err := m.do(func(api nativeAPI) error {
		tag, err := api.ModelOccAddBox(b.Corner.X, b.Corner.Y, b.Corner.Z, b.DX, b.DY, b.DZ, -1)
		if err != nil {
			return err
		}
		t = VolumeTag{tag: tag}
		return nil
	})
	if err != nil {
		return VolumeTag{}, err
	}
	return t, nil
}

// AddSphere adds a full solid sphere.
func (m *OccModel) AddSphere(sp Sphere) (VolumeTag, error) {
	var t VolumeTag
	err := m.do(func(api nativeAPI) error {
		tag, err := api.ModelOccAddSphere(sp.Center.X, sp.Center.Y, sp.Center.Z, sp.Radius, -1,
			sphereAngle1, sphereAngle2, sphereAngle3)
		if err != nil {
			return err
		}
		t = VolumeTag{tag: tag}
		return nil
	})
	if err != nil {
		return VolumeTag{}, err
	}
	return t, nil
}

// AddTorus adds a full solid torus in the z = Center.Z plane.
func (m *OccModel) AddTorus(to Torus) (VolumeTag, error) {
	var t VolumeTag
	err := m.do(func(api nativeAPI) error {
		tag, err := api.ModelOccAddTorus(to.Center.X, to.Center.Y, to.Center.Z,
			to.MajorRadius, to.MinorRadius, -1, torusAngle)
		if err != nil {
			return err
		}
		t = VolumeTag{tag: tag}
		return nil
	})
	if err != nil {
		return VolumeTag{}, err
	}
	return t, nil
}
