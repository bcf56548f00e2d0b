// Package libc binds the few C library calls the filesystem check needs.
package libc

import (
	"fmt"
	"runtime"
	"unsafe"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/native"
)

// errnoSymbol is the per-OS accessor for the thread-local errno.
var errnoSymbol = map[string]string{
	"linux":   "__errno_location",
	"darwin":  "__error",
	"freebsd": "__error",
}

// Libc is a bound subset of the C library.
type Libc struct {
	lib *native.Library

	getcwd   func(buf unsafe.Pointer, size uintptr) unsafe.Pointer
	errno    func() unsafe.Pointer
	strerror func(errnum int32) string
}

// Load opens the C library through reg and binds getcwd, errno and strerror.
func Load(reg *native.Registry, candidates []string) (*Libc, error) {
	lib, err := reg.Load("libc", candidates)
	if err != nil {
		return nil, err
	}

	sym, ok := errnoSymbol[runtime.GOOS]
	if !ok {
		return nil, errs.New(errs.ErrCodeUnsupportedOS,
			fmt.Sprintf("errno accessor unknown on %s", runtime.GOOS), nil)
	}

	c := &Libc{lib: lib}
	for _, b := range []struct {
		fptr any
		name string
	}{
		{&c.getcwd, "getcwd"},
		{&c.errno, sym},
		{&c.strerror, "strerror"},
	} {
		if err := lib.Bind(b.fptr, b.name); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Path returns the path the library was loaded from.
func (c *Libc) Path() string {
	return c.lib.Path
}

// Getwd returns the current working directory via getcwd(3).
// getcwd reports failure out of band: it returns NULL and sets errno,
// which is read on the same OS thread and turned into a CheckError.
func (c *Libc) Getwd(bufSize int) (string, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	buf := make([]byte, bufSize)
	ret := c.getcwd(unsafe.Pointer(&buf[0]), uintptr(len(buf)))
	if ret == nil {
		code := *(*int32)(c.errno())
		msg := c.strerror(code)
		return "", errs.RuntimeError(fmt.Sprintf("getcwd failed: %s", msg), nil).
			WithDetail("errno", fmt.Sprint(code))
	}

	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}
