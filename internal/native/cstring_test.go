package native

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	buf := []byte("4.6.0 NVIDIA 550.54\x00")

	got := GoString(uintptr(unsafe.Pointer(&buf[0])))

	assert.Equal(t, "4.6.0 NVIDIA 550.54", got)
	assert.Equal(t, "", GoString(0))
}
