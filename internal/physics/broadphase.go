package physics

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Pair is a candidate collision pair produced by a Broadphase.
type Pair struct {
	A, B *RigidBody
}

// Broadphase culls body pairs whose bounds cannot overlap.
type Broadphase interface {
	// Add registers a body.
	Add(b *RigidBody)
	// Remove unregisters a body.
	Remove(b *RigidBody)
	// Pairs recomputes bounds and returns every overlapping pair.
	Pairs() []Pair
}

type proxy struct {
	body     *RigidBody
	min, max mgl64.Vec3
}

// SweepBroadphase is a sort-and-sweep broadphase along the x axis.
type SweepBroadphase struct {
	proxies []*proxy
}

// NewSweepBroadphase creates an empty broadphase.
func NewSweepBroadphase() *SweepBroadphase {
	return &SweepBroadphase{}
}

// Add implements Broadphase.
func (s *SweepBroadphase) Add(b *RigidBody) {
	for _, p := range s.proxies {
		if p.body == b {
			return
		}
	}
	s.proxies = append(s.proxies, &proxy{body: b})
}

// Remove implements Broadphase.
func (s *SweepBroadphase) Remove(b *RigidBody) {
	for i, p := range s.proxies {
		if p.body == b {
			s.proxies = append(s.proxies[:i], s.proxies[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered bodies.
func (s *SweepBroadphase) Len() int {
	return len(s.proxies)
}

// Pairs implements Broadphase.
func (s *SweepBroadphase) Pairs() []Pair {
	for _, p := range s.proxies {
		p.min, p.max = p.body.shape.AABB(p.body.transform)
	}
	sort.SliceStable(s.proxies, func(i, j int) bool {
		return s.proxies[i].min[0] < s.proxies[j].min[0]
	})

	var pairs []Pair
	for i, a := range s.proxies {
		for _, b := range s.proxies[i+1:] {
			if b.min[0] > a.max[0] {
				break
			}
			if a.body.IsStatic() && b.body.IsStatic() {
				continue
			}
			if overlaps(a, b) {
				pairs = append(pairs, Pair{A: a.body, B: b.body})
			}
		}
	}
	return pairs
}

// Release drops every proxy.
func (s *SweepBroadphase) Release() {
	s.proxies = nil
}

func overlaps(a, b *proxy) bool {
	for i := 0; i < 3; i++ {
		if a.max[i] < b.min[i] || b.max[i] < a.min[i] {
			return false
		}
	}
	return true
}
