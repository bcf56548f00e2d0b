package native

import (
	"unsafe"
)

// BindAddr binds a function address obtained outside the registry (for
// example from glfwGetProcAddress) to the function pointed to by fptr.
func BindAddr(fptr any, addr uintptr) {
	bindFunc(fptr, addr)
}

// GoString copies a NUL-terminated C string into a Go string.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	ptr := unsafe.Pointer(p) //nolint:govet // C memory, not Go heap
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
