package preflight

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Aman-CERP/libcheck/internal/config"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/physics"
)

// PhysicsCheck drops a box onto a static plane and samples its height.
type PhysicsCheck struct{}

// NewPhysicsCheck returns the physics check.
func NewPhysicsCheck() *PhysicsCheck { return &PhysicsCheck{} }

func (c *PhysicsCheck) Name() string   { return "physics" }
func (c *PhysicsCheck) Title() string  { return "Physics engine" }
func (c *PhysicsCheck) Required() bool { return true }

// Sample is the box height after a given step.
type Sample struct {
	Step   int
	Height float64
}

// Run implements Check.
func (c *PhysicsCheck) Run(ctx context.Context, env *Env) CheckResult {
	samples, err := Simulate(ctx, env.Config.Physics, func(s Sample) {
		env.Out.Linef("Physics: box height: %.6g", s.Height)
	})
	if err != nil {
		return fail(env, c.Name(), err)
	}

	first, last := samples[0], samples[len(samples)-1]
	if len(samples) > 1 && last.Height >= first.Height {
		return fail(env, c.Name(), errs.New(errs.ErrCodeSimulation,
			fmt.Sprintf("box did not fall: height %g at step %d, %g at step %d",
				first.Height, first.Step, last.Height, last.Step), nil))
	}

	env.Out.Line("Physics engine is working.")
	return pass(fmt.Sprintf("box fell from %.3f to %.3f", first.Height, last.Height))
}

// Simulate builds the ground-and-box world from cfg, steps it cfg.Steps
// times and calls sample every cfg.SampleEvery steps. The world and
// everything it owns is released before Simulate returns.
func Simulate(ctx context.Context, cfg config.PhysicsConfig, sample func(Sample)) ([]Sample, error) {
	collisionConfig := physics.NewDefaultCollisionConfiguration()
	world := physics.NewDiscreteDynamicsWorld(
		physics.NewDispatcher(collisionConfig),
		physics.NewSweepBroadphase(),
		physics.NewSequentialImpulseSolver(cfg.SolverIterations),
		collisionConfig,
	)
	defer world.Close()

	world.SetGravity(mgl64.Vec3(cfg.Gravity))

	groundShape := physics.NewStaticPlaneShape(mgl64.Vec3(cfg.Ground.Normal), cfg.Ground.Constant)
	ground, err := world.CreateRigidBody(physics.NewRigidBodyConstructionInfo(0,
		physics.NewDefaultMotionState(physics.NewTransform(mgl64.QuatIdent(), mgl64.Vec3(cfg.Ground.Origin))),
		groundShape, mgl64.Vec3{}))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeSimulation, err)
	}

	boxShape := physics.NewBoxShape(mgl64.Vec3(cfg.Box.HalfExtents))
	box, err := world.CreateRigidBody(physics.NewRigidBodyConstructionInfo(cfg.Box.Mass,
		physics.NewDefaultMotionState(physics.NewTransform(mgl64.QuatIdent(), mgl64.Vec3(cfg.Box.Origin))),
		boxShape, boxShape.CalculateLocalInertia(cfg.Box.Mass)))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeSimulation, err)
	}

	for _, b := range []*physics.RigidBody{ground, box} {
		if err := world.AddRigidBody(b); err != nil {
			return nil, errs.Wrap(errs.ErrCodeSimulation, err)
		}
	}

	var samples []Sample
	for i := 0; i < cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return samples, errs.New(errs.ErrCodeCancelled, "simulation cancelled", err)
		}
		if _, err := world.StepSimulation(cfg.TimeStep, cfg.MaxSubSteps, cfg.TimeStep); err != nil {
			return samples, errs.Wrap(errs.ErrCodeSimulation, err)
		}

		if i%cfg.SampleEvery == 0 {
			s := Sample{Step: i, Height: box.MotionState().WorldTransform().Origin.Y()}
			samples = append(samples, s)
			if sample != nil {
				sample(s)
			}
		}
	}

	if len(samples) == 0 {
		return nil, errs.New(errs.ErrCodeSimulation, "no samples taken", nil)
	}
	return samples, nil
}
