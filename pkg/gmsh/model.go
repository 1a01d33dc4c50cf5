package gmsh

import "fmt"

// kernelOps is the slice of the native API that differs between the built-in
// geometry kernel and OpenCASCADE. Model implements everything else once and
// dispatches shape construction through this interface.
type kernelOps interface {
	addPoint(api nativeAPI, x, y, z, meshSize float64, tag int) (int, error)
	addLine(api nativeAPI, startTag, endTag, tag int) (int, error)
	addCurveLoop(api nativeAPI, curveTags []int, tag int) (int, error)
	addPlaneSurface(api nativeAPI, wireTags []int, tag int) (int, error)
	addSurfaceLoop(api nativeAPI, surfaceTags []int, tag int) (int, error)
	addVolume(api nativeAPI, shellTags []int, tag int) (int, error)
	remove(api nativeAPI, dimTags []int, recursive bool) error
	synchronize(api nativeAPI) error
}

// ModelNames lists the names of all models in the session, including ones
// created natively by Session.Open.
func (s *Session) ModelNames() ([]string, error) {
	done, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer done()
	names, err := s.api.ModelList()
	if err != nil {
		return nil, remapError(err)
	}
	return names, nil
}

// CurrentModelName reports which model the native library considers
// current. Model operations re-select their own model, so the value only
// matters to code driving the session directly.
func (s *Session) CurrentModelName() (string, error) {
	done, err := s.begin()
	if err != nil {
		return "", err
	}
	defer done()
	name, err := s.api.ModelGetCurrent()
	if err != nil {
		return "", remapError(err)
	}
	return name, nil
}

// Model is a named model inside a Session. The native library keeps a single
// "current" model; Model hides that by re-selecting itself before every
// operation, so multiple Model handles can be used interleaved without
// manual bookkeeping.
//
// Construct models with NewGeoModel or NewOccModel, which also pick the
// geometry kernel the model builds shapes with.
type Model struct {
	s      *Session
	name   string
	kernel kernelOps

	// removed is only touched while holding the session lock.
	removed bool
}

func newModel(s *Session, name string, kernel kernelOps) (*Model, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: model name must not be empty", ErrInvalidArgument)
	}

	done, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer done()

	if err := s.api.ModelAdd(name); err != nil {
		return nil, remapError(err)
	}
	return &Model{s: s, name: name, kernel: kernel}, nil
}

// do runs fn against the native API with the session lock held and this
// model selected as current. Every Model operation funnels through here.
func (m *Model) do(fn func(api nativeAPI) error) error {
	if m == nil {
		return ErrModelRemoved
	}
	done, err := m.s.begin()
	if err != nil {
		return err
	}
	defer done()

	if m.removed {
		return ErrModelRemoved
	}
	if err := m.s.api.ModelSetCurrent(m.name); err != nil {
		return remapError(err)
	}
	return remapError(fn(m.s.api))
}

// Name returns the name the model was created with.
func (m *Model) Name() string { return m.name }

// SetCurrent selects the model as the native library's current model. Model
// operations do this implicitly; the method exists for interop with code
// that drives the session directly, such as Session.Open.
func (m *Model) SetCurrent() error {
	return m.do(func(nativeAPI) error { return nil })
}

// Remove destroys the model. The handle is unusable afterwards and every
// subsequent operation fails with ErrModelRemoved.
func (m *Model) Remove() error {
	return m.do(func(api nativeAPI) error {
		if err := api.ModelRemove(); err != nil {
			return err
		}
		m.removed = true
		return nil
	})
}

// Dimension reports the highest dimension of any entity in the model.
func (m *Model) Dimension() (int, error) {
	var dim int
	err := m.do(func(api nativeAPI) error {
		var err error
		dim, err = api.ModelGetDimension()
		return err
	})
	if err != nil {
		return 0, err
	}
	return dim, nil
}

// Entities lists the model's entities of the given dimension; dim -1 lists
// all of them. Only synchronized entities are visible, see Synchronize.
func (m *Model) Entities(dim int) ([]DimTag, error) {
	if dim < -1 || dim > 3 {
		return nil, fmt.Errorf("%w: dimension %d out of range [-1, 3]", ErrInvalidArgument, dim)
	}

	var flat []int
	err := m.do(func(api nativeAPI) error {
		var err error
		flat, err = api.ModelGetEntities(dim)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]DimTag, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, DimTag{Dim: flat[i], Tag: flat[i+1]})
	}
	return out, nil
}

// BoundingBox computes the axis-aligned bounding box of one entity, or of
// the whole model when e is nil.
func (m *Model) BoundingBox(e Entity) (BoundingBox, error) {
	dim, tag := -1, -1
	if e != nil {
		dt := e.dimTag()
		dim, tag = dt.Dim, dt.Tag
	}

	var box BoundingBox
	err := m.do(func(api nativeAPI) error {
		xmin, ymin, zmin, xmax, ymax, zmax, err := api.ModelGetBoundingBox(dim, tag)
		if err != nil {
			return err
		}
		box = BoundingBox{
			Min: Point{X: xmin, Y: ymin, Z: zmin},
			Max: Point{X: xmax, Y: ymax, Z: zmax},
		}
		return nil
	})
	if err != nil {
		return BoundingBox{}, err
	}
	return box, nil
}

// AddPhysicalGroup groups entities of equal dimension under a fresh
// physical tag. Mixing dimensions is rejected with ErrInvalidArgument; the
// native API would silently drop the strays.
func (m *Model) AddPhysicalGroup(entities ...Entity) (PhysicalGroupTag, error) {
	if len(entities) == 0 {
		return PhysicalGroupTag{}, fmt.Errorf("%w: physical group needs at least one entity", ErrInvalidArgument)
	}

	dim := entities[0].dimTag().Dim
	tags := make([]int, len(entities))
	for i, e := range entities {
		dt := e.dimTag()
		if dt.Dim != dim {
			return PhysicalGroupTag{}, fmt.Errorf("%w: mixed dimensions %d and %d in physical group", ErrInvalidArgument, dim, dt.Dim)
		}
		tags[i] = dt.Tag
	}

	var group PhysicalGroupTag
	err := m.do(func(api nativeAPI) error {
		tag, err := api.ModelAddPhysicalGroup(dim, tags, -1)
		if err != nil {
			return err
		}
		group = PhysicalGroupTag{dim: dim, tag: tag}
		return nil
	})
	if err != nil {
		return PhysicalGroupTag{}, err
	}
	return group, nil
}

// SetPhysicalName labels a physical group. Mesh formats that support names
// (MSH, UNV, ...) carry the label through to solver input.
func (m *Model) SetPhysicalName(group PhysicalGroupTag, name string) error {
	return m.do(func(api nativeAPI) error {
		return api.ModelSetPhysicalName(group.dim, group.tag, name)
	})
}

// Synchronize pushes the model's pending kernel operations into the native
// model database. Queries such as Entities and BoundingBox only see
// synchronized geometry. GenerateMesh synchronizes on its own.
func (m *Model) Synchronize() error {
	return m.do(m.kernel.synchronize)
}

// GenerateMesh meshes the model up to the given dimension, synchronizing
// the kernel first so no staged geometry is left behind.
func (m *Model) GenerateMesh(dim int) error {
	if dim < 0 || dim > 3 {
		return fmt.Errorf("%w: mesh dimension %d out of range [0, 3]", ErrInvalidArgument, dim)
	}
	return m.do(func(api nativeAPI) error {
		if err := m.kernel.synchronize(api); err != nil {
			return err
		}
		return api.ModelMeshGenerate(dim)
	})
}

// RefineMesh uniformly refines the current mesh by splitting every element.
func (m *Model) RefineMesh() error {
	return m.do(func(api nativeAPI) error {
		return api.ModelMeshRefine()
	})
}

// AddPoint adds a geometrical point at p with the default mesh size.
func (m *Model) AddPoint(p Point) (PointTag, error) {
	return m.addPoint(p, 0)
}

// AddPointWithMeshSize adds a geometrical point and prescribes the target
// size of the mesh elements around it.
func (m *Model) AddPointWithMeshSize(p Point, meshSize float64) (PointTag, error) {
	return m.addPoint(p, meshSize)
}

func (m *Model) addPoint(p Point, meshSize float64) (PointTag, error) {
	var t PointTag
	err := m.do(func(api nativeAPI) error {
		tag, err := m.kernel.addPoint(api, p.X, p.Y, p.Z, meshSize, -1)
		if err != nil {
			return err
		}
		t = PointTag{tag: tag}
		return nil
	})
	if err != nil {
		return PointTag{}, err
	}
	return t, nil
}

// AddPoints adds one point per coordinate, in order, selecting the model
// only once. Handy for building polygon outlines.
func (m *Model) AddPoints(pts []Point) ([]PointTag, error) {
	out := make([]PointTag, 0, len(pts))
	err := m.do(func(api nativeAPI) error {
		for _, p := range pts {
			tag, err := m.kernel.addPoint(api, p.X, p.Y, p.Z, 0, -1)
			if err != nil {
				return err
			}
			out = append(out, PointTag{tag: tag})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddLine adds a straight line segment between two points.
func (m *Model) AddLine(start, end PointTag) (CurveTag, error) {
	var t CurveTag
	err := m.do(func(api nativeAPI) error {
		tag, err := m.kernel.addLine(api, start.tag, end.tag, -1)
		if err != nil {
			return err
		}
		t = CurveTag{tag: tag}
		return nil
	})
	if err != nil {
		return CurveTag{}, err
	}
	return t, nil
}

// AddCurveLoop adds a closed loop of curves. The curves must chain up; use
// CurveTag.Reversed to traverse a curve against its orientation.
func (m *Model) AddCurveLoop(curves ...CurveTag) (WireTag, error) {
	if len(curves) == 0 {
		return WireTag{}, fmt.Errorf("%w: curve loop needs at least one curve", ErrInvalidArgument)
	}

	tags := make([]int, len(curves))
	for i, c := range curves {
		tags[i] = c.tag
	}

	var t WireTag
	err := m.do(func(api nativeAPI) error {
		tag, err := m.kernel.addCurveLoop(api, tags, -1)
		if err != nil {
			return err
		}
		t = WireTag{tag: tag}
		return nil
	})
	if err != nil {
		return WireTag{}, err
	}
	return t, nil
}

// AddPlaneSurface adds a planar surface bounded by the first loop; any
// further loops cut holes into it.
func (m *Model) AddPlaneSurface(wires ...WireTag) (SurfaceTag, error) {
	if len(wires) == 0 {
		return SurfaceTag{}, fmt.Errorf("%w: plane surface needs at least one curve loop", ErrInvalidArgument)
	}

	tags := make([]int, len(wires))
	for i, w := range wires {
		tags[i] = w.tag
	}

	var t SurfaceTag
	err := m.do(func(api nativeAPI) error {
		tag, err := m.kernel.addPlaneSurface(api, tags, -1)
		if err != nil {
			return err
		}
		t = SurfaceTag{tag: tag}
		return nil
	})
	if err != nil {
		return SurfaceTag{}, err
	}
	return t, nil
}

// AddSurfaceLoop adds a closed shell of surfaces, ready to bound a volume.
func (m *Model) AddSurfaceLoop(surfaces ...SurfaceTag) (ShellTag, error) {
	if len(surfaces) == 0 {
		return ShellTag{}, fmt.Errorf("%w: surface loop needs at least one surface", ErrInvalidArgument)
	}

	tags := make([]int, len(surfaces))
	for i, s := range surfaces {
		tags[i] = s.tag
	}

	var t ShellTag
	err := m.do(func(api nativeAPI) error {
		tag, err := m.kernel.addSurfaceLoop(api, tags, -1)
		if err != nil {
			return err
		}
		t = ShellTag{tag: tag}
		return nil
	})
	if err != nil {
		return ShellTag{}, err
	}
	return t, nil
}

// AddVolume adds a volume bounded by the first shell; any further shells
// cut cavities into it.
func (m *Model) AddVolume(shells ...ShellTag) (VolumeTag, error) {
	if len(shells) == 0 {
		return VolumeTag{}, fmt.Errorf("%w: volume needs at least one surface loop", ErrInvalidArgument)
	}

	tags := make([]int, len(shells))
	for i, sh := range shells {
		tags[i] = sh.tag
	}

	var t VolumeTag
	err := m.do(func(api nativeAPI) error {
		tag, err := m.kernel.addVolume(api, tags, -1)
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

// RemoveEntities deletes entities from the model. With recursive set, all
// entities on their boundaries go too, down to the points.
func (m *Model) RemoveEntities(recursive bool, entities ...Entity) error {
	if len(entities) == 0 {
		return nil
	}

	flat := make([]int, 0, 2*len(entities))
	for _, e := range entities {
		dt := e.dimTag()
		flat = append(flat, dt.Dim, dt.Tag)
	}
	return m.do(func(api nativeAPI) error {
		return m.kernel.remove(api, flat, recursive)
	})
}
