package preflight

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/libcheck/internal/config"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/logging"
)

func TestSimulate_BoxFalls(t *testing.T) {
	// Given: the default world
	cfg := config.MustDefault().Physics

	// When: simulating
	samples, err := Simulate(context.Background(), cfg, nil)

	// Then: five samples at 0, 20, 40, 60, 80 with the box falling
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for i, s := range samples {
		assert.Equal(t, i*20, s.Step)
	}
	assert.Greater(t, samples[0].Height, samples[4].Height)
	assert.InDelta(t, 50-10.0/3600, samples[0].Height, 1e-9)
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, config.MustDefault().Physics, nil)

	assert.Equal(t, errs.ErrCodeCancelled, errs.GetCode(err))
}

func TestSimulate_InvalidBody(t *testing.T) {
	cfg := config.MustDefault().Physics
	cfg.Box.Mass = -1

	_, err := Simulate(context.Background(), cfg, nil)

	assert.Equal(t, errs.ErrCodeSimulation, errs.GetCode(err))
}

func TestPhysicsCheck_PrintsHeights(t *testing.T) {
	env := newTestEnv(t)

	res := NewPhysicsCheck().Run(context.Background(), env.Env)

	require.Equal(t, StatusPass, res.Status, res.Message)
	lines := strings.Split(strings.TrimSpace(env.stdout.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Physics: box height: 49.9972", lines[0])
	for _, l := range lines[:5] {
		assert.True(t, strings.HasPrefix(l, "Physics: box height: "), l)
	}
	assert.Equal(t, "Physics engine is working.", lines[5])
}

func TestPhysicsCheck_BoxThatCannotFallFails(t *testing.T) {
	env := newTestEnv(t)
	env.Config.Physics.Gravity = [3]float64{0, 0, 0}

	res := NewPhysicsCheck().Run(context.Background(), env.Env)

	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, errs.ErrCodeSimulation, res.Code)
}

func TestPhysicsCheck_FailureIsCritical(t *testing.T) {
	// Given: a world without gravity, run through the checker
	cfg := config.MustDefault()
	cfg.Physics.Gravity = [3]float64{0, 0, 0}
	var stdout, stderr bytes.Buffer
	c := New(
		WithChecks(NewPhysicsCheck()),
		WithConfig(cfg),
		WithOutput(&stdout),
		WithLogger(logging.New(logging.Config{Level: "error", Output: &stderr, OmitTime: true})),
	)

	// When: running it
	results, err := c.RunAll(context.Background())

	// Then: the failed required check is critical
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Required)
	assert.True(t, results[0].IsCritical())
	assert.True(t, c.HasCriticalFailures(results))
}
