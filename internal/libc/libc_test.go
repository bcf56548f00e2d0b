package libc

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/libcheck/internal/config"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/native"
)

func loadLibc(t *testing.T) *Libc {
	t.Helper()
	if !native.Supported {
		t.Skipf("run-time loading unsupported on %s", runtime.GOOS)
	}

	reg, err := native.NewRegistry(2, nil)
	require.NoError(t, err)
	t.Cleanup(reg.Close)

	c, err := Load(reg, config.MustDefault().Filesystem.Libraries.ForOS())
	if err != nil {
		t.Skipf("libc not loadable: %v", err)
	}
	return c
}

func TestGetwd_MatchesOS(t *testing.T) {
	// Given: the bound C library
	c := loadLibc(t)

	// When: asking for the working directory
	got, err := c.Getwd(4096)

	// Then: it matches what the Go runtime reports
	require.NoError(t, err)
	want, err := os.Getwd()
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, want, got)
	assert.NotEmpty(t, c.Path())
}

func TestGetwd_BufferTooSmall(t *testing.T) {
	// Given: a buffer that cannot hold any absolute path plus NUL
	c := loadLibc(t)

	// When: calling getcwd with it
	_, err := c.Getwd(1)

	// Then: the errno is surfaced as a runtime error
	require.Error(t, err)
	assert.Equal(t, errs.ErrCodeCallFailed, errs.GetCode(err))

	var ce *errs.CheckError
	require.ErrorAs(t, err, &ce)
	assert.NotEmpty(t, ce.Details["errno"])
}
