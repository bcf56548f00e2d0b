package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RigidBodyConstructionInfo holds the parameters of a new rigid body.
// A zero Mass makes the body static: it never moves and has infinite mass.
type RigidBodyConstructionInfo struct {
	Mass         float64
	MotionState  MotionState
	Shape        Shape
	LocalInertia mgl64.Vec3

	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
}

// NewRigidBodyConstructionInfo fills in default material parameters.
func NewRigidBodyConstructionInfo(mass float64, ms MotionState, shape Shape, localInertia mgl64.Vec3) RigidBodyConstructionInfo {
	return RigidBodyConstructionInfo{
		Mass:         mass,
		MotionState:  ms,
		Shape:        shape,
		LocalInertia: localInertia,
		Friction:     0.5,
	}
}

// RigidBody is a simulated body.
type RigidBody struct {
	shape       Shape
	motionState MotionState

	transform       Transform
	linearVelocity  mgl64.Vec3
	angularVelocity mgl64.Vec3

	inverseMass         float64
	inverseInertiaLocal mgl64.Vec3
	gravity             mgl64.Vec3

	friction       float64
	restitution    float64
	linearDamping  float64
	angularDamping float64

	inWorld  bool
	released bool
}

func newRigidBody(info RigidBodyConstructionInfo) *RigidBody {
	b := &RigidBody{
		shape:          info.Shape,
		motionState:    info.MotionState,
		transform:      IdentityTransform(),
		friction:       info.Friction,
		restitution:    info.Restitution,
		linearDamping:  clamp01(info.LinearDamping),
		angularDamping: clamp01(info.AngularDamping),
	}
	if info.MotionState != nil {
		b.transform = info.MotionState.WorldTransform()
	}

	if info.Mass > 0 {
		b.inverseMass = 1 / info.Mass
		for i := 0; i < 3; i++ {
			if info.LocalInertia[i] > 0 {
				b.inverseInertiaLocal[i] = 1 / info.LocalInertia[i]
			}
		}
	}
	return b
}

// IsStatic reports whether the body has infinite mass.
func (b *RigidBody) IsStatic() bool {
	return b.inverseMass == 0
}

// Shape returns the body's collision shape.
func (b *RigidBody) Shape() Shape {
	return b.shape
}

// MotionState returns the body's motion state, or nil.
func (b *RigidBody) MotionState() MotionState {
	return b.motionState
}

// WorldTransform returns the body's simulated transform.
func (b *RigidBody) WorldTransform() Transform {
	return b.transform
}

// SetWorldTransform teleports the body.
func (b *RigidBody) SetWorldTransform(t Transform) {
	b.transform = t
	if b.motionState != nil {
		b.motionState.SetWorldTransform(t)
	}
}

// LinearVelocity returns the velocity of the centre of mass.
func (b *RigidBody) LinearVelocity() mgl64.Vec3 {
	return b.linearVelocity
}

// AngularVelocity returns the angular velocity in world space.
func (b *RigidBody) AngularVelocity() mgl64.Vec3 {
	return b.angularVelocity
}

// ApplyImpulse changes momentum by impulse applied at rel, an offset from
// the centre of mass.
func (b *RigidBody) ApplyImpulse(impulse, rel mgl64.Vec3) {
	if b.IsStatic() {
		return
	}
	b.linearVelocity = b.linearVelocity.Add(impulse.Mul(b.inverseMass))
	b.angularVelocity = b.angularVelocity.Add(b.inverseInertiaWorld().Mul3x1(rel.Cross(impulse)))
}

// VelocityAt returns the velocity of the body point at offset rel.
func (b *RigidBody) VelocityAt(rel mgl64.Vec3) mgl64.Vec3 {
	return b.linearVelocity.Add(b.angularVelocity.Cross(rel))
}

// InverseMass returns 1/mass, or 0 for static bodies.
func (b *RigidBody) InverseMass() float64 {
	return b.inverseMass
}

func (b *RigidBody) inverseInertiaWorld() mgl64.Mat3 {
	rot := b.transform.Rotation()
	return rot.Mul3(mgl64.Diag3(b.inverseInertiaLocal)).Mul3(rot.Transpose())
}

// Release detaches the body from its shape and motion state.
func (b *RigidBody) Release() {
	b.shape = nil
	b.motionState = nil
	b.released = true
}

// Released reports whether the owning world has released the body.
func (b *RigidBody) Released() bool {
	return b.released
}

// integrateVelocities applies gravity and damping over dt.
func (b *RigidBody) integrateVelocities(dt float64) {
	if b.IsStatic() {
		return
	}
	b.linearVelocity = b.linearVelocity.Add(b.gravity.Mul(dt))

	b.linearVelocity = b.linearVelocity.Mul(pow1m(b.linearDamping, dt))
	b.angularVelocity = b.angularVelocity.Mul(pow1m(b.angularDamping, dt))
}

// integrateTransform advances position and orientation over dt.
func (b *RigidBody) integrateTransform(dt float64) {
	if b.IsStatic() {
		return
	}
	b.transform.Origin = b.transform.Origin.Add(b.linearVelocity.Mul(dt))

	w := b.angularVelocity
	if w.Len() > 0 {
		spin := mgl64.Quat{W: 0, V: w}.Mul(b.transform.Basis).Scale(0.5 * dt)
		b.transform.Basis = b.transform.Basis.Add(spin).Normalize()
	}
}

func (b *RigidBody) syncMotionState() {
	if b.motionState != nil && !b.IsStatic() {
		b.motionState.SetWorldTransform(b.transform)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// pow1m returns (1-d)^dt, the per-step damping factor.
func pow1m(d, dt float64) float64 {
	if d == 0 {
		return 1
	}
	return math.Pow(1-d, dt)
}
