package preflight

import (
	"context"
	"log/slog"

	"github.com/Aman-CERP/libcheck/internal/glcontext"
	"github.com/Aman-CERP/libcheck/internal/native"
)

// GraphicsCheck opens a window with an OpenGL context and draws one frame.
type GraphicsCheck struct {
	load   func(reg *native.Registry, candidates []string) (glcontext.Library, error)
	loader glcontext.Loader
}

// NewGraphicsCheck returns the check backed by the system GLFW.
func NewGraphicsCheck() *GraphicsCheck {
	return &GraphicsCheck{
		load: func(reg *native.Registry, candidates []string) (glcontext.Library, error) {
			return glcontext.LoadGLFW(reg, candidates)
		},
	}
}

func (c *GraphicsCheck) Name() string   { return "graphics" }
func (c *GraphicsCheck) Title() string  { return "OpenGL/GLFW" }
func (c *GraphicsCheck) Required() bool { return false }

// Run implements Check.
func (c *GraphicsCheck) Run(ctx context.Context, env *Env) CheckResult {
	cfg := env.Config.Graphics

	lib, err := c.load(env.Libraries, cfg.Libraries.ForOS())
	if err != nil {
		return warn(env, c.Name(), err)
	}

	opts := glcontext.Options{
		Title:        cfg.Title,
		Width:        int32(cfg.Width),
		Height:       int32(cfg.Height),
		ContextMajor: int32(cfg.ContextMajor),
		ContextMinor: int32(cfg.ContextMinor),
		CoreProfile:  cfg.CoreProfile,
		ClearColor:   cfg.ClearColor,
		WaitTimeout:  cfg.WaitTimeout,
	}

	rep, err := glcontext.NewRenderer(lib, c.loader, env.Logger.With(slog.String("check", c.Name()))).Run(ctx, opts)
	if err != nil {
		return fail(env, c.Name(), err)
	}

	env.Out.Linef("OpenGL version: %s", rep.Version)
	env.Out.Line("GLFW and GL loader are working.")
	return pass(rep.Version)
}
