package asset

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type plyProperty struct {
	name   string
	isList bool
}

type plyElement struct {
	name  string
	count int
	props []plyProperty
}

type plyReader struct{}

func (plyReader) CanRead(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("ply"))
}

// Read parses an ASCII PLY file. Every face corner becomes its own vertex.
func (plyReader) Read(data []byte) (*Scene, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Split(bufio.ScanLines)

	elements, err := readPLYHeader(sc)
	if err != nil {
		return nil, err
	}

	var positions []Vertex
	mesh := &Mesh{Name: "ply"}

	for _, el := range elements {
		for i := 0; i < el.count; i++ {
			fields, err := nextFields(sc)
			if err != nil {
				return nil, fmt.Errorf("ply: element %s %d: %w", el.name, i, err)
			}
			switch el.name {
			case "vertex":
				v, err := parsePLYVertex(el, fields)
				if err != nil {
					return nil, fmt.Errorf("ply: vertex %d: %w", i, err)
				}
				positions = append(positions, v)
			case "face":
				idx, err := parsePLYFace(el, fields)
				if err != nil {
					return nil, fmt.Errorf("ply: face %d: %w", i, err)
				}
				if err := appendCorners(mesh, positions, idx); err != nil {
					return nil, fmt.Errorf("ply: face %d: %w", i, err)
				}
			}
		}
	}

	return singleMeshScene(mesh), nil
}

func readPLYHeader(sc *bufio.Scanner) ([]plyElement, error) {
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "ply" {
		return nil, fmt.Errorf("ply: missing magic")
	}

	var elements []plyElement
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			if len(fields) < 2 || fields[1] != "ascii" {
				return nil, fmt.Errorf("ply: unsupported format %q", strings.Join(fields[1:], " "))
			}
		case "comment", "obj_info":
		case "element":
			if len(fields) != 3 {
				return nil, fmt.Errorf("ply: malformed element line %q", sc.Text())
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("ply: bad element count %q", fields[2])
			}
			elements = append(elements, plyElement{name: fields[1], count: n})
		case "property":
			if len(elements) == 0 {
				return nil, fmt.Errorf("ply: property before element")
			}
			el := &elements[len(elements)-1]
			if len(fields) >= 5 && fields[1] == "list" {
				el.props = append(el.props, plyProperty{name: fields[4], isList: true})
			} else if len(fields) == 3 {
				el.props = append(el.props, plyProperty{name: fields[2]})
			} else {
				return nil, fmt.Errorf("ply: malformed property line %q", sc.Text())
			}
		case "end_header":
			return elements, nil
		default:
			return nil, fmt.Errorf("ply: unknown header keyword %q", fields[0])
		}
	}
	return nil, fmt.Errorf("ply: header not terminated")
}

func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("unexpected end of data")
}

func parsePLYVertex(el plyElement, fields []string) (Vertex, error) {
	var v Vertex
	pos := 0
	for _, p := range el.props {
		if p.isList {
			n, err := strconv.Atoi(fieldAt(fields, pos))
			if err != nil {
				return v, err
			}
			if n < 0 {
				return v, fmt.Errorf("property %s: negative list length %d", p.name, n)
			}
			pos += 1 + n
			continue
		}
		f, err := strconv.ParseFloat(fieldAt(fields, pos), 32)
		if err != nil {
			return v, fmt.Errorf("property %s: %w", p.name, err)
		}
		switch p.name {
		case "x":
			v[0] = float32(f)
		case "y":
			v[1] = float32(f)
		case "z":
			v[2] = float32(f)
		}
		pos++
	}
	return v, nil
}

func parsePLYFace(el plyElement, fields []string) ([]int, error) {
	pos := 0
	for _, p := range el.props {
		if !p.isList {
			pos++
			continue
		}
		n, err := strconv.Atoi(fieldAt(fields, pos))
		if err != nil {
			return nil, fmt.Errorf("list length: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative list length %d", n)
		}
		if p.name != "vertex_indices" && p.name != "vertex_index" {
			pos += 1 + n
			continue
		}
		if pos+1+n > len(fields) {
			return nil, fmt.Errorf("expected %d indices, got %d", n, len(fields)-pos-1)
		}
		idx := make([]int, n)
		for k := 0; k < n; k++ {
			if idx[k], err = strconv.Atoi(fields[pos+1+k]); err != nil {
				return nil, err
			}
		}
		return idx, nil
	}
	return nil, fmt.Errorf("no vertex_indices property")
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// appendCorners adds one vertex per corner and a face over them.
func appendCorners(m *Mesh, positions []Vertex, idx []int) error {
	face := Face{Indices: make([]uint32, len(idx))}
	for k, i := range idx {
		if i < 0 || i >= len(positions) {
			return fmt.Errorf("vertex index %d out of range", i)
		}
		face.Indices[k] = uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, positions[i])
	}
	m.Faces = append(m.Faces, face)
	m.PrimitiveTypes |= primitiveFor(len(idx))
	return nil
}

func singleMeshScene(m *Mesh) *Scene {
	s := &Scene{RootNode: &Node{Name: "<root>"}}
	if len(m.Faces) > 0 {
		s.Meshes = []*Mesh{m}
		s.RootNode.Meshes = []int{0}
	}
	return s
}
