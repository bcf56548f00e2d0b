package asset

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type objReader struct{}

func (objReader) CanRead(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.HasPrefix(line, "v ") || strings.HasPrefix(line, "o ") || strings.HasPrefix(line, "g ")
	}
	return false
}

// Read parses positions and faces of a Wavefront OBJ file. Texture and
// normal references in face corners are ignored.
func (objReader) Read(data []byte) (*Scene, error) {
	var positions []Vertex
	mesh := &Mesh{Name: "obj"}

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: line %d: vertex needs 3 coordinates", line)
			}
			var v Vertex
			for k := 0; k < 3; k++ {
				f, err := strconv.ParseFloat(fields[k+1], 32)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				v[k] = float32(f)
			}
			positions = append(positions, v)
		case "f":
			idx := make([]int, 0, len(fields)-1)
			for _, c := range fields[1:] {
				ref, _, _ := strings.Cut(c, "/")
				i, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("obj: line %d: %w", line, err)
				}
				if i < 0 {
					i = len(positions) + i
				} else {
					i--
				}
				idx = append(idx, i)
			}
			if err := appendCorners(mesh, positions, idx); err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", line, err)
			}
		case "o":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return singleMeshScene(mesh), nil
}
