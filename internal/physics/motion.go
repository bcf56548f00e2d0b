package physics

// MotionState synchronizes a body's transform with an external representation.
type MotionState interface {
	// WorldTransform returns the last transform written by the world.
	WorldTransform() Transform
	// SetWorldTransform is called by the world after each step.
	SetWorldTransform(t Transform)
}

// DefaultMotionState stores the transform written by the world.
type DefaultMotionState struct {
	graphicsWorldTrans Transform
	startWorldTrans    Transform
}

// NewDefaultMotionState creates a motion state starting at start.
func NewDefaultMotionState(start Transform) *DefaultMotionState {
	return &DefaultMotionState{
		graphicsWorldTrans: start,
		startWorldTrans:    start,
	}
}

// WorldTransform implements MotionState.
func (m *DefaultMotionState) WorldTransform() Transform {
	return m.graphicsWorldTrans
}

// SetWorldTransform implements MotionState.
func (m *DefaultMotionState) SetWorldTransform(t Transform) {
	m.graphicsWorldTrans = t
}

// StartTransform returns the transform the state was created with.
func (m *DefaultMotionState) StartTransform() Transform {
	return m.startWorldTrans
}
