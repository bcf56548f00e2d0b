package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid transform: rotation followed by translation.
type Transform struct {
	Basis  mgl64.Quat
	Origin mgl64.Vec3
}

// IdentityTransform returns the transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{Basis: mgl64.QuatIdent()}
}

// NewTransform returns a transform with rotation q and translation origin.
func NewTransform(q mgl64.Quat, origin mgl64.Vec3) Transform {
	return Transform{Basis: q.Normalize(), Origin: origin}
}

// Apply maps a point from local to world space.
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Basis.Rotate(p).Add(t.Origin)
}

// ApplyVector rotates a direction from local to world space.
func (t Transform) ApplyVector(v mgl64.Vec3) mgl64.Vec3 {
	return t.Basis.Rotate(v)
}

// Rotation returns the rotation as a 3x3 matrix.
func (t Transform) Rotation() mgl64.Mat3 {
	return t.Basis.Mat4().Mat3()
}
