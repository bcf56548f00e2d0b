package asset

import (
	"runtime"
	"unsafe"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
	"github.com/Aman-CERP/libcheck/internal/native"
)

// Field offsets into the C structs on 64-bit targets.
const (
	sceneFlagsOffset     = 0
	sceneRootNodeOffset  = 8
	sceneNumMeshesOffset = 16
	sceneMeshesOffset    = 24

	meshNumVerticesOffset = 4
	meshNumFacesOffset    = 8
)

// NativeImporter drives the system Assimp library through its C API.
type NativeImporter struct {
	lib *native.Library

	importFromMemory func(buf unsafe.Pointer, n uint32, flags uint32, hint string) unsafe.Pointer
	releaseImport    func(scene unsafe.Pointer)
	errorString      func() string
}

// LoadNative opens Assimp through reg and binds the import entry points.
func LoadNative(reg *native.Registry, candidates []string) (*NativeImporter, error) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		return nil, errs.New(errs.ErrCodeUnsupportedOS, "native importer requires a 64-bit target", nil)
	}

	lib, err := reg.Load("assimp", candidates)
	if err != nil {
		return nil, err
	}

	im := &NativeImporter{lib: lib}
	for _, b := range []struct {
		fptr any
		name string
	}{
		{&im.importFromMemory, "aiImportFileFromMemory"},
		{&im.releaseImport, "aiReleaseImport"},
		{&im.errorString, "aiGetErrorString"},
	} {
		if err := lib.Bind(b.fptr, b.name); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// Path returns the path the library was loaded from.
func (im *NativeImporter) Path() string {
	return im.lib.Path
}

// ReadFileFromMemory imports data and returns the scene summary. The
// native scene is released before returning.
func (im *NativeImporter) ReadFileFromMemory(data []byte, flags PostProcess, hint string) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, errs.New(errs.ErrCodeImportFailed, "empty input buffer", nil)
	}

	scene := im.importFromMemory(unsafe.Pointer(&data[0]), uint32(len(data)), uint32(flags), hint)
	runtime.KeepAlive(data)
	if scene == nil {
		return Summary{}, errs.New(errs.ErrCodeImportFailed, im.errorString(), nil).
			WithDetail("library", im.lib.Path)
	}
	defer im.releaseImport(scene)

	sum := Summary{
		Flags:     SceneFlags(*(*uint32)(unsafe.Add(scene, sceneFlagsOffset))),
		HasRoot:   *(*uintptr)(unsafe.Add(scene, sceneRootNodeOffset)) != 0,
		NumMeshes: int(*(*uint32)(unsafe.Add(scene, sceneNumMeshesOffset))),
	}
	if sum.NumMeshes > 0 {
		meshes := *(*unsafe.Pointer)(unsafe.Add(scene, sceneMeshesOffset))
		first := *(*unsafe.Pointer)(meshes)
		sum.FirstMeshVertices = int(*(*uint32)(unsafe.Add(first, meshNumVerticesOffset)))
		sum.FirstMeshFaces = int(*(*uint32)(unsafe.Add(first, meshNumFacesOffset)))
	}
	return sum, nil
}
