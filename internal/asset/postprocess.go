package asset

// triangulate splits every polygon with more than three corners into a
// triangle fan around its first corner.
func triangulate(m *Mesh) {
	if m.PrimitiveTypes&PrimitivePolygon == 0 {
		return
	}

	faces := make([]Face, 0, len(m.Faces))
	var types PrimitiveType
	for _, f := range m.Faces {
		n := len(f.Indices)
		if n <= 3 {
			faces = append(faces, f)
			types |= primitiveFor(n)
			continue
		}
		for i := 1; i+1 < n; i++ {
			faces = append(faces, Face{Indices: []uint32{f.Indices[0], f.Indices[i], f.Indices[i+1]}})
		}
		types |= PrimitiveTriangle
	}
	m.Faces = faces
	m.PrimitiveTypes = types
}

// joinIdenticalVertices merges vertices with equal positions and rewrites
// face indices to match. Order of first occurrence is kept.
func joinIdenticalVertices(m *Mesh) {
	seen := make(map[Vertex]uint32, len(m.Vertices))
	remap := make([]uint32, len(m.Vertices))
	unique := make([]Vertex, 0, len(m.Vertices))

	for i, v := range m.Vertices {
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(unique))
			seen[v] = idx
			unique = append(unique, v)
		}
		remap[i] = idx
	}

	for fi := range m.Faces {
		for k, old := range m.Faces[fi].Indices {
			if int(old) < len(remap) {
				m.Faces[fi].Indices[k] = remap[old]
			}
		}
	}
	m.Vertices = unique
}
