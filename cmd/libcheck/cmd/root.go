// Package cmd provides the CLI command for libcheck.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/libcheck/internal/config"
	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/logging"
	"github.com/Aman-CERP/libcheck/internal/preflight"
	"github.com/Aman-CERP/libcheck/pkg/version"
)

// NewRootCmd creates the root command for the libcheck CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd()
}

// newRootCmd builds the command; extra options are applied after the
// defaults so tests can swap the check list.
func newRootCmd(opts ...preflight.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libcheck",
		Short: "Smoke-test the native libraries this machine provides",
		Long: `libcheck verifies that five capabilities are present and minimally
functional: the C library's filesystem calls, a terminal GUI toolkit,
an OpenGL context through GLFW, a rigid-body physics engine and a 3D
asset importer.

Each check prints its own result. Handled failures are reported and do
not change the exit status; only a crashed check exits with status 1.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChecks(cmd, opts)
		},
	}

	cmd.SetVersionTemplate(version.String() + "\n")

	return cmd
}

func runChecks(cmd *cobra.Command, extra []preflight.Option) error {
	cfg, err := config.Default()
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Output = cmd.ErrOrStderr()
	logger, restore := logging.Setup(logCfg)
	defer restore()
	info := version.GetInfo()
	logger.Debug("Starting libcheck",
		slog.String("version", info.Version),
		slog.String("commit", info.Commit),
		slog.String("platform", info.OS+"/"+info.Arch))

	opts := append([]preflight.Option{
		preflight.WithOutput(cmd.OutOrStdout()),
		preflight.WithErrorOutput(cmd.ErrOrStderr()),
		preflight.WithLogger(logger),
		preflight.WithConfig(cfg),
	}, extra...)
	checker := preflight.New(opts...)

	results, err := checker.RunAll(cmd.Context())
	if err != nil {
		if errs.GetCode(err) != errs.ErrCodeInternal {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), errs.FormatForCLI(err))
		}
		return err
	}

	checker.PrintResults(results)
	return nil
}

// Execute runs the root command. An interrupt cancels the run before the
// next check starts.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
