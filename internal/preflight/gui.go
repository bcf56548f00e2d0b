package preflight

import (
	"context"
	"fmt"
	"io"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/gui"
)

// GUICheck shows the terminal window for a fixed number of ticks.
type GUICheck struct {
	isTTY func(w io.Writer) bool
	show  func(ctx context.Context, opts gui.Options, out io.Writer) (gui.Result, error)
}

// NewGUICheck returns the check drawing to the checker's output.
func NewGUICheck() *GUICheck {
	return &GUICheck{isTTY: gui.IsTTY, show: gui.Show}
}

func (c *GUICheck) Name() string   { return "gui" }
func (c *GUICheck) Title() string  { return "GUI toolkit" }
func (c *GUICheck) Required() bool { return false }

// Run implements Check.
func (c *GUICheck) Run(ctx context.Context, env *Env) CheckResult {
	term := env.Out.Raw()
	if !c.isTTY(term) {
		return warn(env, c.Name(), errs.New(errs.ErrCodeNotApplicable,
			"GUI check not applicable: output is not a terminal", nil))
	}

	cfg := env.Config.GUI
	opts := gui.Options{
		Title:      cfg.Title,
		Label:      cfg.Label,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Iterations: cfg.Iterations,
		Interval:   cfg.Interval,
		NoColor:    gui.DetectNoColor(),
	}

	res, err := c.show(ctx, opts, term)
	if err != nil {
		return fail(env, c.Name(), err)
	}
	if !res.Completed {
		return warn(env, c.Name(), errs.New(errs.ErrCodeWindowFailed,
			fmt.Sprintf("window closed after %d of %d iterations", res.Iterations, cfg.Iterations), nil))
	}

	env.Out.Line("GUI toolkit is working.")
	return pass(fmt.Sprintf("window shown for %d iterations", res.Iterations))
}
