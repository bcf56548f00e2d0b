package config

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/libcheck/configs"
)

// Config holds the fixed parameters of every check.
// It is decoded from the embedded configs/defaults.yaml.
type Config struct {
	Version    int              `yaml:"version" json:"version"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
	Filesystem FilesystemConfig `yaml:"filesystem" json:"filesystem"`
	GUI        GUIConfig        `yaml:"gui" json:"gui"`
	Graphics   GraphicsConfig   `yaml:"graphics" json:"graphics"`
	Physics    PhysicsConfig    `yaml:"physics" json:"physics"`
	Assets     AssetsConfig     `yaml:"assets" json:"assets"`
}

// Libraries maps a GOOS value to the candidate names or paths of a native
// library, tried in order.
type Libraries map[string][]string

// ForOS returns the candidates for the running OS.
func (l Libraries) ForOS() []string {
	return l[runtime.GOOS]
}

// LoggingConfig configures the stderr diagnostic logger.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
}

// FilesystemConfig configures the libc working-directory check.
type FilesystemConfig struct {
	BufferSize int       `yaml:"buffer_size" json:"buffer_size"`
	Libraries  Libraries `yaml:"libraries" json:"libraries"`
}

// GUIConfig configures the terminal window check.
type GUIConfig struct {
	Title  string `yaml:"title" json:"title"`
	Label  string `yaml:"label" json:"label"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`

	// Iterations is the number of event-loop waits before the window closes.
	Iterations int           `yaml:"iterations" json:"iterations"`
	Interval   time.Duration `yaml:"interval" json:"interval"`
}

// GraphicsConfig configures the GLFW/OpenGL context check.
type GraphicsConfig struct {
	Title        string        `yaml:"title" json:"title"`
	Width        int           `yaml:"width" json:"width"`
	Height       int           `yaml:"height" json:"height"`
	ContextMajor int           `yaml:"context_major" json:"context_major"`
	ContextMinor int           `yaml:"context_minor" json:"context_minor"`
	CoreProfile  bool          `yaml:"core_profile" json:"core_profile"`
	ClearColor   [4]float32    `yaml:"clear_color" json:"clear_color"`
	WaitTimeout  time.Duration `yaml:"wait_timeout" json:"wait_timeout"`
	Libraries    Libraries     `yaml:"libraries" json:"libraries"`
}

// PhysicsConfig configures the rigid-body world of the physics check.
type PhysicsConfig struct {
	Gravity          [3]float64  `yaml:"gravity" json:"gravity"`
	TimeStep         float64     `yaml:"time_step" json:"time_step"`
	MaxSubSteps      int         `yaml:"max_sub_steps" json:"max_sub_steps"`
	SolverIterations int         `yaml:"solver_iterations" json:"solver_iterations"`
	Steps            int         `yaml:"steps" json:"steps"`
	SampleEvery      int         `yaml:"sample_every" json:"sample_every"`
	Ground           PlaneConfig `yaml:"ground" json:"ground"`
	Box              BoxConfig   `yaml:"box" json:"box"`
}

// PlaneConfig describes the static ground plane.
type PlaneConfig struct {
	Normal   [3]float64 `yaml:"normal" json:"normal"`
	Constant float64    `yaml:"constant" json:"constant"`
	Origin   [3]float64 `yaml:"origin" json:"origin"`
}

// BoxConfig describes the falling box.
type BoxConfig struct {
	HalfExtents [3]float64 `yaml:"half_extents" json:"half_extents"`
	Mass        float64    `yaml:"mass" json:"mass"`
	Origin      [3]float64 `yaml:"origin" json:"origin"`
}

// AssetsConfig configures the asset-import check.
type AssetsConfig struct {
	Hint                  string    `yaml:"hint" json:"hint"`
	Triangulate           bool      `yaml:"triangulate" json:"triangulate"`
	JoinIdenticalVertices bool      `yaml:"join_identical_vertices" json:"join_identical_vertices"`
	Libraries             Libraries `yaml:"libraries" json:"libraries"`
}

// Default decodes the embedded defaults and validates them.
func Default() (*Config, error) {
	return Parse(configs.Defaults)
}

// Parse decodes a YAML document into a Config and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustDefault is like Default but panics on error.
// The embedded document is covered by tests, so a failure is a build defect.
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the configuration for values the checks cannot run with.
func (c *Config) Validate() error {
	if c.Filesystem.BufferSize <= 0 {
		return fmt.Errorf("filesystem.buffer_size must be positive, got %d", c.Filesystem.BufferSize)
	}

	if c.GUI.Width <= 0 || c.GUI.Height <= 0 {
		return fmt.Errorf("gui size must be positive, got %dx%d", c.GUI.Width, c.GUI.Height)
	}
	if c.GUI.Iterations <= 0 {
		return fmt.Errorf("gui.iterations must be positive, got %d", c.GUI.Iterations)
	}
	if c.GUI.Interval <= 0 {
		return fmt.Errorf("gui.interval must be positive, got %s", c.GUI.Interval)
	}

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.WaitTimeout < 0 {
		return fmt.Errorf("graphics.wait_timeout must not be negative, got %s", c.Graphics.WaitTimeout)
	}

	p := c.Physics
	if p.TimeStep <= 0 {
		return fmt.Errorf("physics.time_step must be positive, got %v", p.TimeStep)
	}
	if p.MaxSubSteps <= 0 || p.SolverIterations <= 0 {
		return fmt.Errorf("physics.max_sub_steps and physics.solver_iterations must be positive")
	}
	if p.Steps <= 0 || p.SampleEvery <= 0 {
		return fmt.Errorf("physics.steps and physics.sample_every must be positive")
	}
	if p.Box.Mass <= 0 {
		return fmt.Errorf("physics.box.mass must be positive, got %v", p.Box.Mass)
	}
	if p.Ground.Normal == [3]float64{} {
		return fmt.Errorf("physics.ground.normal must not be zero")
	}

	if c.Assets.Hint == "" {
		return fmt.Errorf("assets.hint must not be empty")
	}

	return nil
}
