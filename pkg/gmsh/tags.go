package gmsh

import "fmt"

// DimTag identifies a model entity by dimension and tag, the way the Gmsh
// API addresses geometry. Values are returned by queries such as
// Model.Entities; typed handles (PointTag, CurveTag, ...) are the preferred
// currency for entities this package created itself.
type DimTag struct {
	Dim int
	Tag int
}

func (d DimTag) String() string { return fmt.Sprintf("(%d, %d)", d.Dim, d.Tag) }

func (d DimTag) dimTag() DimTag { return d }

// Entity is implemented by DimTag and by the typed entity handles. It is
// deliberately unimplementable outside this package so that a handle always
// traces back to an API call on a live session.
type Entity interface {
	dimTag() DimTag
}

// PointTag identifies a point (dimension 0). Tags are only obtained from
// API calls; the zero value is not valid.
type PointTag struct {
	tag int
}

func (t PointTag) dimTag() DimTag { return DimTag{Dim: 0, Tag: t.tag} }

func (t PointTag) String() string { return fmt.Sprintf("Point(%d)", t.tag) }

// CurveTag identifies a curve (dimension 1). The sign of the underlying tag
// encodes orientation: curve loops treat a negative tag as the curve
// traversed end to start.
type CurveTag struct {
	tag int
}

func (t CurveTag) dimTag() DimTag { return DimTag{Dim: 1, Tag: t.tag} }

func (t CurveTag) String() string { return fmt.Sprintf("Curve(%d)", t.tag) }

// Reversed returns the same curve with opposite orientation.
func (t CurveTag) Reversed() CurveTag { return CurveTag{tag: -t.tag} }

// WireTag identifies a curve loop. Curve loops live in their own tag space
// and are not model entities; they only serve as surface boundaries.
type WireTag struct {
	tag int
}

func (t WireTag) String() string { return fmt.Sprintf("Wire(%d)", t.tag) }

// SurfaceTag identifies a surface (dimension 2).
type SurfaceTag struct {
	tag int
}

func (t SurfaceTag) dimTag() DimTag { return DimTag{Dim: 2, Tag: t.tag} }

func (t SurfaceTag) String() string { return fmt.Sprintf("Surface(%d)", t.tag) }

// ShellTag identifies a surface loop. Like curve loops, surface loops live
// in their own tag space and only serve as volume boundaries.
type ShellTag struct {
	tag int
}

func (t ShellTag) String() string { return fmt.Sprintf("Shell(%d)", t.tag) }

// VolumeTag identifies a volume (dimension 3).
type VolumeTag struct {
	tag int
}

func (t VolumeTag) dimTag() DimTag { return DimTag{Dim: 3, Tag: t.tag} }

func (t VolumeTag) String() string { return fmt.Sprintf("Volume(%d)", t.tag) }

// PhysicalGroupTag identifies a physical group. Physical groups carry their
// own dimension, independent of the entity tag spaces.
type PhysicalGroupTag struct {
	dim int
	tag int
}

// Dim reports the dimension of the grouped entities.
func (t PhysicalGroupTag) Dim() int { return t.dim }

func (t PhysicalGroupTag) String() string {
	return fmt.Sprintf("PhysicalGroup(dim=%d, tag=%d)", t.dim, t.tag)
}
