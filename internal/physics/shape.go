package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType identifies the narrowphase routine for a shape.
type ShapeType int

const (
	ShapeStaticPlane ShapeType = iota
	ShapeBox
)

// String returns the string representation of a ShapeType.
func (t ShapeType) String() string {
	switch t {
	case ShapeStaticPlane:
		return "static_plane"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// infinity bounds unbounded shapes.
const infinity = 1e30

// Shape is a collision shape in body-local coordinates.
type Shape interface {
	Type() ShapeType
	// AABB returns the world-space bounds of the shape under t.
	AABB(t Transform) (min, max mgl64.Vec3)
	// CalculateLocalInertia returns the diagonal of the inertia tensor for mass.
	CalculateLocalInertia(mass float64) mgl64.Vec3
}

// StaticPlaneShape is the infinite plane {p : Normal·p = Constant}.
// Only static bodies may use it.
type StaticPlaneShape struct {
	Normal   mgl64.Vec3
	Constant float64
}

// NewStaticPlaneShape creates a plane; normal is normalized.
func NewStaticPlaneShape(normal mgl64.Vec3, constant float64) *StaticPlaneShape {
	return &StaticPlaneShape{Normal: normal.Normalize(), Constant: constant}
}

// Type implements Shape.
func (s *StaticPlaneShape) Type() ShapeType { return ShapeStaticPlane }

// AABB implements Shape. Planes are unbounded.
func (s *StaticPlaneShape) AABB(Transform) (mgl64.Vec3, mgl64.Vec3) {
	return mgl64.Vec3{-infinity, -infinity, -infinity}, mgl64.Vec3{infinity, infinity, infinity}
}

// CalculateLocalInertia implements Shape. A plane has no finite inertia.
func (s *StaticPlaneShape) CalculateLocalInertia(float64) mgl64.Vec3 {
	return mgl64.Vec3{}
}

// WorldPlane returns the plane normal and constant under t.
func (s *StaticPlaneShape) WorldPlane(t Transform) (mgl64.Vec3, float64) {
	n := t.ApplyVector(s.Normal)
	point := t.Apply(s.Normal.Mul(s.Constant))
	return n, n.Dot(point)
}

// BoxShape is an oriented box centred on the body origin.
type BoxShape struct {
	HalfExtents mgl64.Vec3
}

// NewBoxShape creates a box with the given half extents.
func NewBoxShape(halfExtents mgl64.Vec3) *BoxShape {
	return &BoxShape{HalfExtents: halfExtents}
}

// Type implements Shape.
func (s *BoxShape) Type() ShapeType { return ShapeBox }

// AABB implements Shape.
func (s *BoxShape) AABB(t Transform) (mgl64.Vec3, mgl64.Vec3) {
	rot := t.Rotation()
	var extent mgl64.Vec3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			extent[i] += math.Abs(rot.At(i, j)) * s.HalfExtents[j]
		}
	}
	return t.Origin.Sub(extent), t.Origin.Add(extent)
}

// CalculateLocalInertia implements Shape.
func (s *BoxShape) CalculateLocalInertia(mass float64) mgl64.Vec3 {
	x, y, z := s.HalfExtents[0], s.HalfExtents[1], s.HalfExtents[2]
	return mgl64.Vec3{
		mass / 3 * (y*y + z*z),
		mass / 3 * (x*x + z*z),
		mass / 3 * (x*x + y*y),
	}
}

// Corners returns the eight vertices of the box under t.
func (s *BoxShape) Corners(t Transform) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	h := s.HalfExtents
	for i := 0; i < 8; i++ {
		local := mgl64.Vec3{h[0], h[1], h[2]}
		if i&1 != 0 {
			local[0] = -local[0]
		}
		if i&2 != 0 {
			local[1] = -local[1]
		}
		if i&4 != 0 {
			local[2] = -local[2]
		}
		out[i] = t.Apply(local)
	}
	return out
}
