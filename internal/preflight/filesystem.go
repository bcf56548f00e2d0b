package preflight

import (
	"context"
	"fmt"

	"github.com/Aman-CERP/libcheck/internal/libc"
	"github.com/Aman-CERP/libcheck/internal/native"
)

// Workdir resolves the current working directory.
type Workdir interface {
	Getwd(bufSize int) (string, error)
}

// VolumeStats is the space of one mounted filesystem.
type VolumeStats struct {
	Available uint64
	Total     uint64
}

// FilesystemCheck resolves the working directory through the C library
// and queries the volume it lives on.
type FilesystemCheck struct {
	load   func(reg *native.Registry, candidates []string) (Workdir, error)
	statfs func(path string) (VolumeStats, error)
}

// NewFilesystemCheck returns the check backed by the system libc.
func NewFilesystemCheck() *FilesystemCheck {
	return &FilesystemCheck{
		load: func(reg *native.Registry, candidates []string) (Workdir, error) {
			return libc.Load(reg, candidates)
		},
		statfs: statVolume,
	}
}

func (c *FilesystemCheck) Name() string   { return "filesystem" }
func (c *FilesystemCheck) Title() string  { return "Filesystem" }
func (c *FilesystemCheck) Required() bool { return true }

// Run implements Check.
func (c *FilesystemCheck) Run(_ context.Context, env *Env) CheckResult {
	cfg := env.Config.Filesystem

	wd, err := c.load(env.Libraries, cfg.Libraries.ForOS())
	if err != nil {
		return fail(env, c.Name(), err)
	}

	dir, err := wd.Getwd(cfg.BufferSize)
	if err != nil {
		return fail(env, c.Name(), err)
	}
	env.Out.Linef("Filesystem is working. Current directory: %s", dir)
	env.Out.Line("System layer is working.")

	vol, err := c.statfs(dir)
	if err != nil {
		return warn(env, c.Name(), err)
	}
	env.Logger.Debug("Volume queried",
		"path", dir,
		"available", formatBytes(vol.Available),
		"total", formatBytes(vol.Total))

	return pass(fmt.Sprintf("%s (%s free)", dir, formatBytes(vol.Available)))
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1f TB", float64(bytes)/TB)
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
