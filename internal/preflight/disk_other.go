//go:build !(darwin || linux || freebsd)

package preflight

import (
	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

func statVolume(string) (VolumeStats, error) {
	return VolumeStats{}, errs.New(errs.ErrCodeUnsupportedOS, "volume query not supported on this platform", nil)
}
