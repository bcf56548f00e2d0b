package glcontext

import "time"

// Window hint and value constants from the context library.
const (
	HintContextVersionMajor int32 = 0x00022002
	HintContextVersionMinor int32 = 0x00022003
	HintOpenGLForwardCompat int32 = 0x00022006
	HintOpenGLProfile       int32 = 0x00022008
	HintVisible             int32 = 0x00020004

	ProfileCore int32 = 0x00032001
	True        int32 = 1
	False       int32 = 0
)

// GL enum values.
const (
	GLVendor         uint32 = 0x1F00
	GLRenderer       uint32 = 0x1F01
	GLVersion        uint32 = 0x1F02
	GLColorBufferBit uint32 = 0x00004000
	GLNoError        uint32 = 0
)

// Window is an opaque window handle. Zero means no window.
type Window uintptr

// Library is the subset of the context library the check drives.
type Library interface {
	Init() bool
	WindowHint(hint, value int32)
	CreateWindow(width, height int32, title string) Window
	DestroyWindow(w Window)
	MakeContextCurrent(w Window)
	GetProcAddress(name string) uintptr
	SwapBuffers(w Window)
	PollEvents()
	WaitEventsTimeout(timeout time.Duration)
	Terminate()

	// LastError returns the description of the most recent library error.
	LastError() string
}
