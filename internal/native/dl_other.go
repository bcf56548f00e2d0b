//go:build !(darwin || linux || freebsd)

package native

import (
	"errors"
	"runtime"
)

// Supported reports whether run-time library loading works on this platform.
const Supported = false

var errUnsupported = errors.New("run-time library loading is not supported on " + runtime.GOOS)

func openLibrary(string) (uintptr, error) {
	return 0, errUnsupported
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, errUnsupported
}

func closeLibrary(uintptr) error {
	return nil
}

func bindFunc(any, uintptr) {
	panic(errUnsupported)
}
