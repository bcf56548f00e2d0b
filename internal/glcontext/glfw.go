package glcontext

import (
	"time"
	"unsafe"

	"github.com/Aman-CERP/libcheck/internal/native"
)

// GLFW is the system GLFW library bound through the native registry.
type GLFW struct {
	lib *native.Library

	init               func() int32
	windowHint         func(hint, value int32)
	createWindow       func(width, height int32, title string, monitor, share uintptr) uintptr
	destroyWindow      func(w uintptr)
	makeContextCurrent func(w uintptr)
	getProcAddress     func(name string) uintptr
	swapBuffers        func(w uintptr)
	pollEvents         func()
	waitEventsTimeout  func(timeout float64)
	terminate          func()
	getError           func(description unsafe.Pointer) int32
}

// LoadGLFW opens GLFW through reg and binds its entry points.
func LoadGLFW(reg *native.Registry, candidates []string) (*GLFW, error) {
	lib, err := reg.Load("glfw", candidates)
	if err != nil {
		return nil, err
	}

	g := &GLFW{lib: lib}
	for _, b := range []struct {
		fptr any
		name string
	}{
		{&g.init, "glfwInit"},
		{&g.windowHint, "glfwWindowHint"},
		{&g.createWindow, "glfwCreateWindow"},
		{&g.destroyWindow, "glfwDestroyWindow"},
		{&g.makeContextCurrent, "glfwMakeContextCurrent"},
		{&g.getProcAddress, "glfwGetProcAddress"},
		{&g.swapBuffers, "glfwSwapBuffers"},
		{&g.pollEvents, "glfwPollEvents"},
		{&g.waitEventsTimeout, "glfwWaitEventsTimeout"},
		{&g.terminate, "glfwTerminate"},
		{&g.getError, "glfwGetError"},
	} {
		if err := lib.Bind(b.fptr, b.name); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Path returns the path the library was loaded from.
func (g *GLFW) Path() string { return g.lib.Path }

func (g *GLFW) Init() bool                   { return g.init() != 0 }
func (g *GLFW) WindowHint(hint, value int32) { g.windowHint(hint, value) }

func (g *GLFW) CreateWindow(width, height int32, title string) Window {
	return Window(g.createWindow(width, height, title, 0, 0))
}

func (g *GLFW) DestroyWindow(w Window)             { g.destroyWindow(uintptr(w)) }
func (g *GLFW) MakeContextCurrent(w Window)        { g.makeContextCurrent(uintptr(w)) }
func (g *GLFW) GetProcAddress(name string) uintptr { return g.getProcAddress(name) }
func (g *GLFW) SwapBuffers(w Window)               { g.swapBuffers(uintptr(w)) }
func (g *GLFW) PollEvents()                        { g.pollEvents() }
func (g *GLFW) WaitEventsTimeout(d time.Duration)  { g.waitEventsTimeout(d.Seconds()) }
func (g *GLFW) Terminate()                         { g.terminate() }

func (g *GLFW) LastError() string {
	var desc uintptr
	if g.getError(unsafe.Pointer(&desc)) == 0 {
		return ""
	}
	return native.GoString(desc)
}
