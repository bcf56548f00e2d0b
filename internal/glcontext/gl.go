package glcontext

import (
	"fmt"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/native"
)

// GL is the handful of OpenGL calls needed to clear and identify the driver.
type GL interface {
	GetString(name uint32) string
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetError() uint32
}

// Loader resolves GL entry points with the given address lookup.
type Loader func(getProcAddress func(name string) uintptr) (GL, error)

type glFuncs struct {
	getString  func(name uint32) string
	clearColor func(r, g, b, a float32)
	clear      func(mask uint32)
	getError   func() uint32
}

func (f *glFuncs) GetString(name uint32) string  { return f.getString(name) }
func (f *glFuncs) ClearColor(r, g, b, a float32) { f.clearColor(r, g, b, a) }
func (f *glFuncs) Clear(mask uint32)             { f.clear(mask) }
func (f *glFuncs) GetError() uint32              { return f.getError() }

// LoadGL binds the GL calls through getProcAddress. A context must be
// current on the calling thread.
func LoadGL(getProcAddress func(name string) uintptr) (GL, error) {
	f := &glFuncs{}
	for _, b := range []struct {
		fptr any
		name string
	}{
		{&f.getString, "glGetString"},
		{&f.clearColor, "glClearColor"},
		{&f.clear, "glClear"},
		{&f.getError, "glGetError"},
	} {
		addr := getProcAddress(b.name)
		if addr == 0 {
			return nil, errs.New(errs.ErrCodeLoaderFailed,
				fmt.Sprintf("GL entry point %s not found", b.name), nil)
		}
		native.BindAddr(b.fptr, addr)
	}
	return f, nil
}
