package gmsh

import "math"

// Point is a location in 3D space.
type Point struct {
	X, Y, Z float64
}

// Box is an axis-aligned parallelepiped defined by a corner and its extents
// along the three axes.
type Box struct {
	Corner     Point
	DX, DY, DZ float64
}

// Sphere is a full sphere around Center. The OpenCASCADE kernel also
// supports angular sections; the wrapper always builds the full solid.
type Sphere struct {
	Center Point
	Radius float64
}

// Torus is a full torus around Center, lying in the plane z = Center.Z.
// MajorRadius is the distance from the center to the middle of the pipe,
// MinorRadius the pipe radius.
type Torus struct {
	Center      Point
	MajorRadius float64
	MinorRadius float64
}

// BoundingBox is the axis-aligned extent of a model entity.
type BoundingBox struct {
	Min Point
	Max Point
}

// Sphere section defaults: full polar range and full azimuthal turn.
const (
	sphereAngle1 = -math.Pi / 2
	sphereAngle2 = math.Pi / 2
	sphereAngle3 = 2 * math.Pi

	torusAngle = 2 * math.Pi
)
