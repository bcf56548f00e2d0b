package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SequentialImpulseSolver resolves contacts by iterating impulses over them.
type SequentialImpulseSolver struct {
	Iterations int
	config     *CollisionConfiguration
}

// NewSequentialImpulseSolver creates a solver running iterations passes per step.
func NewSequentialImpulseSolver(iterations int) *SequentialImpulseSolver {
	if iterations < 1 {
		iterations = 1
	}
	return &SequentialImpulseSolver{Iterations: iterations}
}

// Release drops the solver's reference to the collision configuration.
func (s *SequentialImpulseSolver) Release() {
	s.config = nil
}

// SolveGroup applies contact impulses to the bodies involved over dt.
func (s *SequentialImpulseSolver) SolveGroup(contacts []Contact, dt float64) {
	if len(contacts) == 0 {
		return
	}
	cfg := s.config
	if cfg == nil {
		cfg = NewDefaultCollisionConfiguration()
	}

	for iter := 0; iter < s.Iterations; iter++ {
		for i := range contacts {
			s.solveContact(&contacts[i], cfg, dt)
		}
	}
}

func (s *SequentialImpulseSolver) solveContact(c *Contact, cfg *CollisionConfiguration, dt float64) {
	ra := c.Point.Sub(c.A.transform.Origin)
	rb := c.Point.Sub(c.B.transform.Origin)

	vn := relativeVelocity(c, ra, rb).Dot(c.Normal)
	k := effectiveMass(c.A, c.B, ra, rb, c.Normal)
	if k == 0 {
		return
	}

	// target separating velocity: push out penetration beyond the slop,
	// allow approach up to the remaining gap
	var bias float64
	switch {
	case c.Depth > cfg.LinearSlop:
		bias = cfg.Baumgarte * (c.Depth - cfg.LinearSlop) / dt
	case c.Depth < 0:
		bias = c.Depth / dt
	}
	restitution := math.Max(c.A.restitution, c.B.restitution)
	if vn < 0 && restitution > 0 {
		bias = math.Max(bias, -restitution*vn)
	}

	lambda := (bias - vn) / k
	old := c.normalImpulse
	c.normalImpulse = math.Max(old+lambda, 0)
	lambda = c.normalImpulse - old
	applyPair(c, c.Normal.Mul(lambda), ra, rb)

	friction := math.Sqrt(c.A.friction * c.B.friction)
	if friction == 0 || c.normalImpulse == 0 {
		return
	}
	t1, t2 := tangents(c.Normal)
	for i, t := range [2]mgl64.Vec3{t1, t2} {
		vt := relativeVelocity(c, ra, rb).Dot(t)
		kt := effectiveMass(c.A, c.B, ra, rb, t)
		if kt == 0 {
			continue
		}
		limit := friction * c.normalImpulse
		old := c.tangentImpulses[i]
		c.tangentImpulses[i] = math.Max(-limit, math.Min(limit, old-vt/kt))
		applyPair(c, t.Mul(c.tangentImpulses[i]-old), ra, rb)
	}
}

func relativeVelocity(c *Contact, ra, rb mgl64.Vec3) mgl64.Vec3 {
	return c.A.VelocityAt(ra).Sub(c.B.VelocityAt(rb))
}

func effectiveMass(a, b *RigidBody, ra, rb, dir mgl64.Vec3) float64 {
	k := a.inverseMass + b.inverseMass
	if !a.IsStatic() {
		k += a.inverseInertiaWorld().Mul3x1(ra.Cross(dir)).Cross(ra).Dot(dir)
	}
	if !b.IsStatic() {
		k += b.inverseInertiaWorld().Mul3x1(rb.Cross(dir)).Cross(rb).Dot(dir)
	}
	return k
}

func applyPair(c *Contact, impulse, ra, rb mgl64.Vec3) {
	c.A.ApplyImpulse(impulse, ra)
	c.B.ApplyImpulse(impulse.Mul(-1), rb)
}

// tangents returns two unit vectors orthogonal to n and to each other.
func tangents(n mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var t1 mgl64.Vec3
	if math.Abs(n[0]) > 0.57735 {
		t1 = mgl64.Vec3{n[1], -n[0], 0}
	} else {
		t1 = mgl64.Vec3{0, n[2], -n[1]}
	}
	t1 = t1.Normalize()
	return t1, n.Cross(t1)
}
