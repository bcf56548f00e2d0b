package preflight

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/libcheck/internal/config"
	"github.com/Aman-CERP/libcheck/internal/logging"
	"github.com/Aman-CERP/libcheck/internal/native"
	"github.com/Aman-CERP/libcheck/internal/output"
)

// testEnv collects what a check writes to stdout and stderr.
type testEnv struct {
	*Env
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	reg, err := native.NewRegistry(registrySize, nil)
	require.NoError(t, err)
	t.Cleanup(reg.Close)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Env: &Env{
			Out:       output.New(stdout),
			Logger:    logging.New(logging.Config{Level: "warn", Output: stderr, OmitTime: true}),
			Config:    config.MustDefault(),
			Libraries: reg,
		},
		stdout: stdout,
		stderr: stderr,
	}
}
