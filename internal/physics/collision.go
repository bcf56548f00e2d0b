package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CollisionConfiguration holds the tolerances shared by the dispatcher
// and the solver.
type CollisionConfiguration struct {
	// ContactMargin is the separation below which a contact is generated.
	ContactMargin float64
	// LinearSlop is the penetration tolerated without correction.
	LinearSlop float64
	// Baumgarte is the fraction of penetration corrected per step.
	Baumgarte float64
}

// NewDefaultCollisionConfiguration returns the default tolerances.
func NewDefaultCollisionConfiguration() *CollisionConfiguration {
	return &CollisionConfiguration{
		ContactMargin: 0.04,
		LinearSlop:    0.005,
		Baumgarte:     0.2,
	}
}

// Contact is a single contact point between two bodies.
// Normal points from B towards A; Depth is positive when penetrating.
type Contact struct {
	A, B   *RigidBody
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Depth  float64

	normalImpulse   float64
	tangentImpulses [2]float64
}

// Dispatcher runs the narrowphase for broadphase pairs.
type Dispatcher struct {
	config   *CollisionConfiguration
	contacts []Contact
}

// NewDispatcher creates a dispatcher using cfg's tolerances.
func NewDispatcher(cfg *CollisionConfiguration) *Dispatcher {
	return &Dispatcher{config: cfg}
}

// DispatchAllCollisionPairs replaces the contact list with the contacts of pairs.
func (d *Dispatcher) DispatchAllCollisionPairs(pairs []Pair) []Contact {
	d.contacts = d.contacts[:0]
	for _, p := range pairs {
		d.contacts = d.collide(p.A, p.B, d.contacts)
	}
	return d.contacts
}

// Release drops the contact cache.
func (d *Dispatcher) Release() {
	d.contacts = nil
}

func (d *Dispatcher) collide(a, b *RigidBody, out []Contact) []Contact {
	ta, tb := a.shape.Type(), b.shape.Type()
	switch {
	case ta == ShapeBox && tb == ShapeStaticPlane:
		return d.boxPlane(a, b, out)
	case ta == ShapeStaticPlane && tb == ShapeBox:
		return d.boxPlane(b, a, out)
	case ta == ShapeBox && tb == ShapeBox:
		return d.boxBox(a, b, out)
	default:
		return out
	}
}

// boxPlane emits one contact per box corner within the margin of the plane.
func (d *Dispatcher) boxPlane(box, plane *RigidBody, out []Contact) []Contact {
	ps := plane.shape.(*StaticPlaneShape)
	bs := box.shape.(*BoxShape)

	n, c := ps.WorldPlane(plane.transform)
	for _, corner := range bs.Corners(box.transform) {
		dist := n.Dot(corner) - c
		if dist > d.config.ContactMargin {
			continue
		}
		out = append(out, Contact{
			A:      box,
			B:      plane,
			Point:  corner.Sub(n.Mul(dist)),
			Normal: n,
			Depth:  -dist,
		})
	}
	return out
}

// boxBox treats both boxes by their world bounds and emits the four
// corners of the overlap face along the axis of least penetration.
func (d *Dispatcher) boxBox(a, b *RigidBody, out []Contact) []Contact {
	amin, amax := a.shape.AABB(a.transform)
	bmin, bmax := b.shape.AABB(b.transform)

	best := math.Inf(1)
	axis := -1
	sign := 1.0
	for i := 0; i < 3; i++ {
		pos := bmax[i] - amin[i] // push a towards +i
		neg := amax[i] - bmin[i] // push a towards -i
		if pos < -d.config.ContactMargin || neg < -d.config.ContactMargin {
			return out
		}
		if pos < best {
			best, axis, sign = pos, i, 1
		}
		if neg < best {
			best, axis, sign = neg, i, -1
		}
	}

	var n, lo, hi mgl64.Vec3
	n[axis] = sign
	for i := 0; i < 3; i++ {
		lo[i] = math.Max(amin[i], bmin[i])
		hi[i] = math.Min(amax[i], bmax[i])
	}
	u, v := (axis+1)%3, (axis+2)%3
	for k := 0; k < 4; k++ {
		var p mgl64.Vec3
		p[axis] = (lo[axis] + hi[axis]) / 2
		p[u], p[v] = hi[u], hi[v]
		if k&1 != 0 {
			p[u] = lo[u]
		}
		if k&2 != 0 {
			p[v] = lo[v]
		}
		out = append(out, Contact{A: a, B: b, Point: p, Normal: n, Depth: best})
	}
	return out
}
