package asset

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

// Reader parses one file format into a scene.
type Reader interface {
	// CanRead reports whether data looks like this format.
	CanRead(data []byte) bool
	Read(data []byte) (*Scene, error)
}

// Importer reads files from memory and owns the resulting scene.
type Importer struct {
	readers  map[string]Reader
	scene    *Scene
	errorStr string
}

// NewImporter creates an importer that knows PLY and OBJ.
func NewImporter() *Importer {
	return &Importer{
		readers: map[string]Reader{
			"ply": plyReader{},
			"obj": objReader{},
		},
	}
}

// RegisterReader adds or replaces the reader for an extension hint.
func (im *Importer) RegisterReader(hint string, r Reader) {
	im.readers[strings.TrimPrefix(strings.ToLower(hint), ".")] = r
}

// Formats lists the known extension hints.
func (im *Importer) Formats() []string {
	out := make([]string, 0, len(im.readers))
	for k := range im.readers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ReadFileFromMemory parses data with the reader for hint (or the first
// reader that recognises data when hint is empty) and runs the requested
// post-processing. The returned scene is owned by the importer.
func (im *Importer) ReadFileFromMemory(data []byte, flags PostProcess, hint string) (*Scene, error) {
	im.FreeScene()

	scene, err := im.read(data, flags, hint)
	if err != nil {
		im.errorStr = err.Error()
		if ce, ok := err.(*errs.CheckError); ok {
			im.errorStr = ce.Message
		}
		return nil, err
	}

	im.scene = scene
	return scene, nil
}

func (im *Importer) read(data []byte, flags PostProcess, hint string) (*Scene, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errs.New(errs.ErrCodeImportFailed, "empty input buffer", nil)
	}

	reader, err := im.pick(data, hint)
	if err != nil {
		return nil, err
	}

	scene, err := reader.Read(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeImportFailed, err).WithDetail("hint", hint)
	}

	if flags&Triangulate != 0 {
		for _, m := range scene.Meshes {
			triangulate(m)
		}
	}
	if flags&JoinIdenticalVertices != 0 {
		for _, m := range scene.Meshes {
			joinIdenticalVertices(m)
		}
	}

	markIncomplete(scene)
	if flags&ValidateDataStructure != 0 {
		if err := validate(scene); err != nil {
			return nil, err
		}
		scene.Flags |= SceneValidated
	}
	return scene, nil
}

func (im *Importer) pick(data []byte, hint string) (Reader, error) {
	hint = strings.TrimPrefix(strings.ToLower(hint), ".")
	if hint != "" {
		if r, ok := im.readers[hint]; ok {
			return r, nil
		}
	}
	for _, name := range im.Formats() {
		if r := im.readers[name]; r.CanRead(data) {
			return r, nil
		}
	}
	return nil, errs.New(errs.ErrCodeImportFailed,
		fmt.Sprintf("no suitable reader found for the file format of file %q", hint), nil)
}

// Scene returns the scene from the last successful import, or nil.
func (im *Importer) Scene() *Scene {
	return im.scene
}

// ErrorString returns the message of the last failed import.
func (im *Importer) ErrorString() string {
	return im.errorStr
}

// FreeScene drops the owned scene and clears the last error.
func (im *Importer) FreeScene() {
	im.scene = nil
	im.errorStr = ""
}

// markIncomplete flags scenes without a root or without any faces.
func markIncomplete(s *Scene) {
	if s.RootNode == nil || len(s.Meshes) == 0 {
		s.Flags |= SceneIncomplete
		return
	}
	for _, m := range s.Meshes {
		if len(m.Faces) == 0 {
			s.Flags |= SceneIncomplete
			return
		}
	}
}

func validate(s *Scene) error {
	for mi, m := range s.Meshes {
		if len(m.Vertices) == 0 {
			return errs.ValidationError(fmt.Sprintf("mesh %d has no vertices", mi), nil)
		}
		for fi, f := range m.Faces {
			if len(f.Indices) == 0 {
				return errs.ValidationError(fmt.Sprintf("mesh %d face %d is empty", mi, fi), nil)
			}
			for _, idx := range f.Indices {
				if int(idx) >= len(m.Vertices) {
					return errs.ValidationError(
						fmt.Sprintf("mesh %d face %d index %d out of range", mi, fi, idx), nil)
				}
			}
		}
	}
	var walk func(n *Node) error
	walk = func(n *Node) error {
		for _, i := range n.Meshes {
			if i < 0 || i >= len(s.Meshes) {
				return errs.ValidationError(
					fmt.Sprintf("node %q references missing mesh %d", n.Name, i), nil)
			}
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if s.RootNode != nil {
		return walk(s.RootNode)
	}
	return nil
}
