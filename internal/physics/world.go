package physics

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrWorldClosed is returned by operations on a closed world.
var ErrWorldClosed = errors.New("physics: world is closed")

// Releaser is implemented by objects that hold resources the world must
// drop when it is closed.
type Releaser interface {
	Release()
}

// DiscreteDynamicsWorld steps rigid bodies with a fixed internal time step.
//
// The world owns its dispatcher, broadphase, solver and collision
// configuration, plus every shape, motion state and body created with
// CreateRigidBody. Close releases them all in reverse construction order.
type DiscreteDynamicsWorld struct {
	dispatcher *Dispatcher
	broadphase Broadphase
	solver     *SequentialImpulseSolver
	config     *CollisionConfiguration

	gravity   mgl64.Vec3
	bodies    []*RigidBody
	localTime float64

	owned  []any
	closed bool
}

// NewDiscreteDynamicsWorld combines the four subsystems into one world and
// takes ownership of them.
func NewDiscreteDynamicsWorld(dispatcher *Dispatcher, broadphase Broadphase, solver *SequentialImpulseSolver, config *CollisionConfiguration) *DiscreteDynamicsWorld {
	solver.config = config
	if dispatcher.config == nil {
		dispatcher.config = config
	}

	w := &DiscreteDynamicsWorld{
		dispatcher: dispatcher,
		broadphase: broadphase,
		solver:     solver,
		config:     config,
		gravity:    mgl64.Vec3{0, -10, 0},
	}
	w.Own(broadphase, config, dispatcher, solver)
	return w
}

// Own hands objects to the world. They are released, last owned first,
// when the world is closed. Objects that are not Releasers are simply
// dropped.
func (w *DiscreteDynamicsWorld) Own(objs ...any) {
	w.owned = append(w.owned, objs...)
}

// SetGravity sets the acceleration applied to every dynamic body.
func (w *DiscreteDynamicsWorld) SetGravity(g mgl64.Vec3) {
	w.gravity = g
	for _, b := range w.bodies {
		b.gravity = g
	}
}

// Gravity returns the world gravity.
func (w *DiscreteDynamicsWorld) Gravity() mgl64.Vec3 {
	return w.gravity
}

// CreateRigidBody builds a body from info. The world takes ownership of
// the shape, the motion state and the body; the body is not added to the
// simulation until AddRigidBody.
func (w *DiscreteDynamicsWorld) CreateRigidBody(info RigidBodyConstructionInfo) (*RigidBody, error) {
	if w.closed {
		return nil, ErrWorldClosed
	}
	if info.Shape == nil {
		return nil, errors.New("physics: rigid body needs a shape")
	}
	if info.Mass < 0 || math.IsNaN(info.Mass) {
		return nil, errors.New("physics: rigid body mass must not be negative")
	}
	if info.Mass > 0 && info.Shape.Type() == ShapeStaticPlane {
		return nil, errors.New("physics: static plane shapes need zero mass")
	}

	body := newRigidBody(info)
	w.Own(info.Shape)
	if info.MotionState != nil {
		w.Own(info.MotionState)
	}
	w.Own(body)
	return body, nil
}

// AddRigidBody adds body to the simulation.
func (w *DiscreteDynamicsWorld) AddRigidBody(body *RigidBody) error {
	if w.closed {
		return ErrWorldClosed
	}
	if body.inWorld {
		return nil
	}
	body.gravity = w.gravity
	body.inWorld = true
	w.bodies = append(w.bodies, body)
	w.broadphase.Add(body)
	return nil
}

// RemoveRigidBody takes body out of the simulation. The world keeps
// ownership of it.
func (w *DiscreteDynamicsWorld) RemoveRigidBody(body *RigidBody) {
	for i, b := range w.bodies {
		if b == body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.broadphase.Remove(body)
	body.inWorld = false
}

// NumRigidBodies returns the number of bodies in the simulation.
func (w *DiscreteDynamicsWorld) NumRigidBodies() int {
	return len(w.bodies)
}

// StepSimulation advances the world by timeStep seconds using internal
// steps of fixedTimeStep, taking at most maxSubSteps of them. Time left
// over is carried to the next call. With maxSubSteps <= 0 a single
// variable step of timeStep is taken. Returns the number of internal steps.
func (w *DiscreteDynamicsWorld) StepSimulation(timeStep float64, maxSubSteps int, fixedTimeStep float64) (int, error) {
	if w.closed {
		return 0, ErrWorldClosed
	}

	steps := 0
	if maxSubSteps > 0 {
		w.localTime += timeStep
		if w.localTime >= fixedTimeStep {
			steps = int(w.localTime / fixedTimeStep)
			w.localTime -= float64(steps) * fixedTimeStep
		}
		if steps > maxSubSteps {
			steps = maxSubSteps
		}
	} else {
		fixedTimeStep = timeStep
		if timeStep > 0 {
			steps = 1
		}
	}

	for i := 0; i < steps; i++ {
		w.internalSingleStep(fixedTimeStep)
	}
	for _, b := range w.bodies {
		b.syncMotionState()
	}
	return steps, nil
}

func (w *DiscreteDynamicsWorld) internalSingleStep(dt float64) {
	for _, b := range w.bodies {
		b.integrateVelocities(dt)
	}

	contacts := w.dispatcher.DispatchAllCollisionPairs(w.broadphase.Pairs())
	w.solver.SolveGroup(contacts, dt)

	for _, b := range w.bodies {
		b.integrateTransform(dt)
	}
}

// Close removes every body and releases all owned objects in reverse
// construction order. Calling Close more than once is a no-op.
func (w *DiscreteDynamicsWorld) Close() {
	if w.closed {
		return
	}
	for i := len(w.bodies) - 1; i >= 0; i-- {
		w.RemoveRigidBody(w.bodies[i])
	}
	for i := len(w.owned) - 1; i >= 0; i-- {
		if r, ok := w.owned[i].(Releaser); ok {
			r.Release()
		}
	}
	w.owned = nil
	w.dispatcher = nil
	w.solver = nil
	w.config = nil
	w.closed = true
}

// Closed reports whether Close has been called.
func (w *DiscreteDynamicsWorld) Closed() bool {
	return w.closed
}
