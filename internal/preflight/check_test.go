package preflight

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/libcheck/internal/config"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/logging"
)

// stubCheck is a Check with a scripted outcome.
type stubCheck struct {
	name     string
	required bool
	status   CheckStatus
	panicMsg string
	ran      *[]string
	onRun    func()
}

func (s stubCheck) Name() string   { return s.name }
func (s stubCheck) Title() string  { return strings.ToUpper(s.name[:1]) + s.name[1:] }
func (s stubCheck) Required() bool { return s.required }

func (s stubCheck) Run(_ context.Context, env *Env) CheckResult {
	*s.ran = append(*s.ran, s.name)
	if s.onRun != nil {
		s.onRun()
	}
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	env.Out.Linef("%s ran", s.name)
	return CheckResult{Status: s.status, Message: s.name + " done"}
}

func newStubChecker(stdout, stderr *bytes.Buffer, checks ...Check) *Checker {
	return New(
		WithOutput(stdout),
		WithErrorOutput(stderr),
		WithLogger(logging.New(logging.Config{Level: "error", Output: stderr, OmitTime: true})),
		WithChecks(checks...),
	)
}

func TestCheckStatus_String(t *testing.T) {
	tests := []struct {
		status CheckStatus
		want   string
	}{
		{StatusPass, "PASS"},
		{StatusWarn, "WARN"},
		{StatusFail, "FAIL"},
		{CheckStatus(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestCheckResult_IsCritical(t *testing.T) {
	tests := []struct {
		name     string
		result   CheckResult
		expected bool
	}{
		{"required pass is not critical", CheckResult{Status: StatusPass, Required: true}, false},
		{"required fail is critical", CheckResult{Status: StatusFail, Required: true}, true},
		{"optional fail is not critical", CheckResult{Status: StatusFail, Required: false}, false},
		{"required warn is not critical", CheckResult{Status: StatusWarn, Required: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.IsCritical())
		})
	}
}

func TestChecker_New(t *testing.T) {
	// Given: default options
	checker := New()

	// Then: the five checks run in fixed order with embedded defaults
	require.Len(t, checker.checks, 5)
	var names []string
	for _, c := range checker.checks {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"filesystem", "gui", "graphics", "physics", "asset"}, names)
	assert.Equal(t, config.MustDefault(), checker.cfg)
}

func TestChecker_NewWithOptions(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.MustDefault()
	cfg.Physics.Steps = 5

	checker := New(WithOutput(buf), WithConfig(cfg))

	assert.Equal(t, buf, checker.output)
	assert.Same(t, cfg, checker.cfg)
}

func TestChecker_RunAll_RunsChecksInOrder(t *testing.T) {
	// Given: three checks, one failing without panicking
	var ran []string
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	checker := newStubChecker(stdout, stderr,
		stubCheck{name: "first", required: true, status: StatusPass, ran: &ran},
		stubCheck{name: "second", status: StatusFail, ran: &ran},
		stubCheck{name: "third", required: true, status: StatusWarn, ran: &ran},
	)

	// When: running
	results, err := checker.RunAll(context.Background())

	// Then: every check ran, in order, and the run completed
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, ran)
	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Name)
	assert.True(t, results[0].Required)
	assert.Equal(t, StatusFail, results[1].Status)
	assert.False(t, results[1].Required)

	want := "Starting library tests...\n" +
		"\nTesting First...\nfirst ran\n" +
		"\nTesting Second...\nsecond ran\n" +
		"\nTesting Third...\nthird ran\n" +
		"\nAll tests completed successfully!\n"
	assert.Equal(t, want, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestChecker_RunAll_PanicAbortsRemainingChecks(t *testing.T) {
	// Given: a check that panics in the middle
	var ran []string
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	checker := newStubChecker(stdout, stderr,
		stubCheck{name: "first", status: StatusPass, ran: &ran},
		stubCheck{name: "boom", panicMsg: "native call crashed", ran: &ran},
		stubCheck{name: "last", status: StatusPass, ran: &ran},
	)

	// When: running
	results, err := checker.RunAll(context.Background())

	// Then: the run stops with an internal error and reports it
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPanic))
	assert.Equal(t, errs.ErrCodeInternal, errs.GetCode(err))
	assert.Equal(t, []string{"first", "boom"}, ran)
	assert.Len(t, results, 1)
	assert.Contains(t, stderr.String(), "Test failed: native call crashed\n")
	assert.NotContains(t, stdout.String(), "All tests completed successfully!")
}

func TestChecker_RunAll_StopsWhenCancelled(t *testing.T) {
	var ran []string
	ctx, cancel := context.WithCancel(context.Background())
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	checker := newStubChecker(stdout, stderr,
		stubCheck{name: "first", status: StatusPass, ran: &ran, onRun: cancel},
		stubCheck{name: "second", status: StatusPass, ran: &ran},
	)

	results, err := checker.RunAll(ctx)

	assert.Equal(t, errs.ErrCodeCancelled, errs.GetCode(err))
	assert.Equal(t, []string{"first"}, ran)
	assert.Len(t, results, 1)
}

func TestChecker_RunAll_RecordsDuration(t *testing.T) {
	var ran []string
	checker := newStubChecker(&bytes.Buffer{}, &bytes.Buffer{},
		stubCheck{name: "slow", status: StatusPass, ran: &ran, onRun: func() { time.Sleep(2 * time.Millisecond) }},
	)

	results, err := checker.RunAll(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, results[0].Duration, 2*time.Millisecond)
}

func TestChecker_HasCriticalFailures(t *testing.T) {
	checker := New()

	tests := []struct {
		name     string
		results  []CheckResult
		expected bool
	}{
		{"no results", []CheckResult{}, false},
		{"all pass", []CheckResult{{Status: StatusPass, Required: true}, {Status: StatusPass, Required: true}}, false},
		{"warning only", []CheckResult{{Status: StatusPass, Required: true}, {Status: StatusWarn}}, false},
		{"optional failure", []CheckResult{{Status: StatusPass, Required: true}, {Status: StatusFail}}, false},
		{"required failure", []CheckResult{{Status: StatusPass, Required: true}, {Status: StatusFail, Required: true}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.HasCriticalFailures(tt.results))
		})
	}
}

func TestChecker_SummaryStatus(t *testing.T) {
	checker := New()

	tests := []struct {
		name     string
		results  []CheckResult
		expected string
	}{
		{"all pass", []CheckResult{{Status: StatusPass}, {Status: StatusPass}}, "ready"},
		{"with warnings", []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}, "ready_with_warnings"},
		{"with critical failure", []CheckResult{{Status: StatusPass}, {Status: StatusFail, Required: true}}, "failed"},
		{"with optional failure", []CheckResult{{Status: StatusPass}, {Status: StatusFail}}, "ready_with_warnings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.SummaryStatus(tt.results))
		})
	}
}

func TestChecker_PrintResults(t *testing.T) {
	// Given: some check results
	results := []CheckResult{
		{Name: "filesystem", Status: StatusPass, Message: "/tmp (50.0 GB free)"},
		{Name: "gui", Status: StatusWarn, Message: "not a terminal", Details: "Error: not a terminal\n\n[ERR_204_NOT_APPLICABLE]"},
		{Name: "asset", Status: StatusFail, Message: "Asset import error: bad", Required: true},
	}

	buf := &bytes.Buffer{}
	checker := New(WithOutput(buf))

	// When: printing results
	checker.PrintResults(results)

	// Then: output contains the table, status and issue lists
	out := buf.String()
	assert.Contains(t, out, "[PASS] filesystem: /tmp (50.0 GB free)")
	assert.Contains(t, out, "[WARN] gui: not a terminal")
	assert.Contains(t, out, "[FAIL] asset: Asset import error: bad")
	assert.Contains(t, out, "      [ERR_204_NOT_APPLICABLE]")
	assert.Contains(t, out, "❌ Status: FAILED\n")
	assert.Contains(t, out, "❌ 1 error(s):\n   - asset: Asset import error: bad\n")
	assert.Contains(t, out, "⚠️  1 warning(s):\n   - gui: not a terminal\n")
}

func TestChecker_PrintResults_StatusIcon(t *testing.T) {
	tests := []struct {
		name    string
		results []CheckResult
		want    string
	}{
		{"ready", []CheckResult{{Name: "physics", Status: StatusPass}}, "✅ Status: READY\n"},
		{"warnings", []CheckResult{{Name: "gui", Status: StatusWarn}}, "⚠️  Status: READY_WITH_WARNINGS\n"},
		{"optional failure", []CheckResult{{Name: "graphics", Status: StatusFail}}, "⚠️  Status: READY_WITH_WARNINGS\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			New(WithOutput(buf)).PrintResults(tt.results)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
