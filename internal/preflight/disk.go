//go:build darwin || linux || freebsd

package preflight

import (
	"syscall"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

// statVolume reports the space of the filesystem holding path.
func statVolume(path string) (VolumeStats, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return VolumeStats{}, errs.RuntimeError("failed to query volume", err).
			WithDetail("path", path)
	}

	return VolumeStats{
		Available: uint64(stat.Bavail) * uint64(stat.Bsize),
		Total:     uint64(stat.Blocks) * uint64(stat.Bsize),
	}, nil
}
