package preflight

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Aman-CERP/libcheck/internal/config"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/native"
	"github.com/Aman-CERP/libcheck/internal/output"
)

// registrySize bounds the number of native libraries open at once.
const registrySize = 8

// ErrPanic matches the error RunAll returns when a check panics.
var ErrPanic = errs.New(errs.ErrCodeInternal, "check panicked", nil)

// CheckStatus represents the result of a check.
type CheckStatus int

const (
	// StatusPass indicates the check passed successfully.
	StatusPass CheckStatus = iota
	// StatusWarn indicates the check could not run here, or ran partially.
	StatusWarn
	// StatusFail indicates the check failed.
	StatusFail
)

// String returns the string representation of a CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string        `json:"name"`
	Status   CheckStatus   `json:"status"`
	Message  string        `json:"message"`
	Details  string        `json:"details,omitempty"`
	Code     string        `json:"code,omitempty"`
	Required bool          `json:"required"`
	Duration time.Duration `json:"duration"`
}

// IsCritical returns true if this is a required check that failed.
func (r CheckResult) IsCritical() bool {
	return r.Required && r.Status == StatusFail
}

// Env is what a check may use while it runs.
type Env struct {
	Out       *output.Writer
	Logger    *slog.Logger
	Config    *config.Config
	Libraries *native.Registry
}

// Check is one library check.
type Check interface {
	// Name is the short identifier used in logs and the summary.
	Name() string
	// Title is the human-readable name in "Testing <Title>...".
	Title() string
	// Required reports whether a failure makes the summary "failed".
	Required() bool
	Run(ctx context.Context, env *Env) CheckResult
}

// pass, warn and fail build results; warn and fail also log err to stderr.
func pass(msg string) CheckResult {
	return CheckResult{Status: StatusPass, Message: msg}
}

func warn(env *Env, check string, err error) CheckResult {
	return failure(env, check, StatusWarn, err)
}

func fail(env *Env, check string, err error) CheckResult {
	return failure(env, check, StatusFail, err)
}

func failure(env *Env, check string, status CheckStatus, err error) CheckResult {
	msg := err.Error()
	if ce, ok := err.(*errs.CheckError); ok {
		msg = ce.Message
	}

	attrs := append([]any{"check", check}, errs.LogAttrs(err)...)
	if status == StatusWarn {
		env.Logger.Warn(msg, attrs...)
	} else {
		env.Logger.Error(msg, attrs...)
	}

	return CheckResult{
		Status:  status,
		Message: msg,
		Details: errs.FormatForUser(err),
		Code:    errs.GetCode(err),
	}
}

// Checker runs checks in order.
type Checker struct {
	output   io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	cfg      *config.Config
	checks   []Check
	registry *native.Registry
}

// Option configures a Checker.
type Option func(*Checker)

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.output = w
	}
}

// WithErrorOutput sets where "Test failed" is printed.
func WithErrorOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.errOut = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = l
	}
}

// WithConfig overrides the embedded defaults.
func WithConfig(cfg *config.Config) Option {
	return func(c *Checker) {
		c.cfg = cfg
	}
}

// WithChecks replaces the default check list.
func WithChecks(checks ...Check) Option {
	return func(c *Checker) {
		c.checks = checks
	}
}

// WithRegistry supplies the native library registry. The caller keeps
// ownership and must close it.
func WithRegistry(r *native.Registry) Option {
	return func(c *Checker) {
		c.registry = r
	}
}

// DefaultChecks returns the five checks in run order.
func DefaultChecks() []Check {
	return []Check{
		NewFilesystemCheck(),
		NewGUICheck(),
		NewGraphicsCheck(),
		NewPhysicsCheck(),
		NewAssetCheck(),
	}
}

// New creates a new Checker with the given options.
func New(opts ...Option) *Checker {
	c := &Checker{
		output: os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.cfg == nil {
		c.cfg = config.MustDefault()
	}
	if c.checks == nil {
		c.checks = DefaultChecks()
	}
	return c
}

// RunAll runs every check and returns their results. It returns an error
// only when a check panics or ctx is cancelled; the remaining checks are
// then skipped.
func (c *Checker) RunAll(ctx context.Context) ([]CheckResult, error) {
	out := output.New(c.output)
	out.Line("Starting library tests...")

	reg := c.registry
	if reg == nil {
		var err error
		reg, err = native.NewRegistry(registrySize, c.logger)
		if err != nil {
			return nil, errs.InternalError("failed to create library registry", err)
		}
		defer reg.Close()
	}

	env := &Env{
		Out:       out,
		Logger:    c.logger,
		Config:    c.cfg,
		Libraries: reg,
	}

	results := make([]CheckResult, 0, len(c.checks))
	for _, chk := range c.checks {
		if err := ctx.Err(); err != nil {
			return results, errs.New(errs.ErrCodeCancelled, "run cancelled", err)
		}

		out.Section(fmt.Sprintf("Testing %s...", chk.Title()))

		res, err := c.runGuarded(ctx, chk, env)
		if err != nil {
			_, _ = fmt.Fprintf(c.errOut, "Test failed: %s\n", err.Message)
			return results, err
		}
		results = append(results, res)
	}

	out.Section("All tests completed successfully!")
	return results, nil
}

// runGuarded runs one check, converting a panic into an ErrPanic error.
func (c *Checker) runGuarded(ctx context.Context, chk Check, env *Env) (res CheckResult, err *errs.CheckError) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = errs.New(errs.ErrCodeInternal, fmt.Sprint(r), nil).
				WithDetail("check", chk.Name())
			c.logger.Error("Check panicked", errs.LogAttrs(err)...)
		}
	}()

	res = chk.Run(ctx, env)
	res.Name = chk.Name()
	res.Required = chk.Required()
	res.Duration = time.Since(start)
	c.logger.Debug("Check finished",
		slog.String("check", res.Name),
		slog.String("status", res.Status.String()),
		slog.Duration("duration", res.Duration))
	return res, nil
}

// HasCriticalFailures returns true if any required check failed.
func (c *Checker) HasCriticalFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.IsCritical() {
			return true
		}
	}
	return false
}

// SummaryStatus returns a summary status string for the results.
func (c *Checker) SummaryStatus(results []CheckResult) string {
	if c.HasCriticalFailures(results) {
		return "failed"
	}
	for _, r := range results {
		if r.Status != StatusPass {
			return "ready_with_warnings"
		}
	}
	return "ready"
}

// PrintResults prints the summary table to the configured output.
// Details are shown under every result that did not pass.
func (c *Checker) PrintResults(results []CheckResult) {
	out := output.New(c.output)
	out.Newline()
	out.Line("Library Check Summary")
	out.Line("=====================")

	for _, r := range results {
		out.Linef("[%s] %s: %s", r.Status, r.Name, r.Message)
		if r.Status != StatusPass && r.Details != "" && r.Details != r.Message {
			out.Linef("      %s", strings.ReplaceAll(r.Details, "\n", "\n      "))
		}
	}

	out.Newline()
	summary := c.SummaryStatus(results)
	status := "Status: " + strings.ToUpper(summary)
	switch summary {
	case "failed":
		out.Error(status)
	case "ready_with_warnings":
		out.Warning(status)
	default:
		out.Success(status)
	}

	var warnings, failures []string
	for _, r := range results {
		switch {
		case r.IsCritical():
			failures = append(failures, r.Name+": "+r.Message)
		case r.Status != StatusPass:
			warnings = append(warnings, r.Name+": "+r.Message)
		}
	}

	if len(failures) > 0 {
		out.Newline()
		out.Error(fmt.Sprintf("%d error(s):", len(failures)))
		for _, e := range failures {
			out.Status("", "- "+e)
		}
	}

	if len(warnings) > 0 {
		out.Newline()
		out.Warning(fmt.Sprintf("%d warning(s):", len(warnings)))
		for _, w := range warnings {
			out.Status("", "- "+w)
		}
	}
}
