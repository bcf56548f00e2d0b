package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DecodesEmbeddedDefaults(t *testing.T) {
	// When: decoding the embedded defaults
	cfg, err := Default()

	// Then: every check gets its fixed parameters
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "warn", cfg.Logging.Level)

	assert.Equal(t, 10, cfg.GUI.Iterations)
	assert.Equal(t, 100*time.Millisecond, cfg.GUI.Interval)

	assert.Equal(t, 640, cfg.Graphics.Width)
	assert.Equal(t, 480, cfg.Graphics.Height)
	assert.Equal(t, 3, cfg.Graphics.ContextMajor)
	assert.Equal(t, 3, cfg.Graphics.ContextMinor)
	assert.True(t, cfg.Graphics.CoreProfile)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.4, 1}, cfg.Graphics.ClearColor)
	assert.Equal(t, 500*time.Millisecond, cfg.Graphics.WaitTimeout)

	assert.Equal(t, [3]float64{0, -10, 0}, cfg.Physics.Gravity)
	assert.InDelta(t, 1.0/60, cfg.Physics.TimeStep, 1e-12)
	assert.Equal(t, 10, cfg.Physics.MaxSubSteps)
	assert.Equal(t, 100, cfg.Physics.Steps)
	assert.Equal(t, 20, cfg.Physics.SampleEvery)
	assert.Equal(t, [3]float64{0, 50, 0}, cfg.Physics.Box.Origin)
	assert.Equal(t, [3]float64{0, -1, 0}, cfg.Physics.Ground.Origin)

	assert.Equal(t, "ply", cfg.Assets.Hint)
	assert.True(t, cfg.Assets.Triangulate)
	assert.True(t, cfg.Assets.JoinIdenticalVertices)
}

func TestLibraries_ForOS(t *testing.T) {
	libs := Libraries{
		runtime.GOOS: {"libfoo.so.1", "libfoo.so"},
		"plan9":      {"foo"},
	}

	assert.Equal(t, []string{"libfoo.so.1", "libfoo.so"}, libs.ForOS())
	assert.Nil(t, Libraries{}.ForOS())
}

func TestDefault_ListsLibrariesForSupportedOS(t *testing.T) {
	cfg := MustDefault()

	for _, goos := range []string{"linux", "darwin"} {
		assert.NotEmpty(t, cfg.Filesystem.Libraries[goos], "filesystem %s", goos)
		assert.NotEmpty(t, cfg.Graphics.Libraries[goos], "graphics %s", goos)
		assert.NotEmpty(t, cfg.Assets.Libraries[goos], "assets %s", goos)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nbogus: true\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero buffer", func(c *Config) { c.Filesystem.BufferSize = 0 }},
		{"zero gui width", func(c *Config) { c.GUI.Width = 0 }},
		{"zero gui iterations", func(c *Config) { c.GUI.Iterations = 0 }},
		{"zero gui interval", func(c *Config) { c.GUI.Interval = 0 }},
		{"negative graphics height", func(c *Config) { c.Graphics.Height = -1 }},
		{"negative wait timeout", func(c *Config) { c.Graphics.WaitTimeout = -time.Second }},
		{"zero time step", func(c *Config) { c.Physics.TimeStep = 0 }},
		{"zero solver iterations", func(c *Config) { c.Physics.SolverIterations = 0 }},
		{"zero sample period", func(c *Config) { c.Physics.SampleEvery = 0 }},
		{"massless box", func(c *Config) { c.Physics.Box.Mass = 0 }},
		{"zero ground normal", func(c *Config) { c.Physics.Ground.Normal = [3]float64{} }},
		{"empty hint", func(c *Config) { c.Assets.Hint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: valid defaults with one bad value
			cfg := MustDefault()
			tt.mutate(cfg)

			// Then: validation fails
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, MustDefault().Validate())
}
