package asset

// Summary is the part of a scene the import check reports.
type Summary struct {
	Flags             SceneFlags
	HasRoot           bool
	NumMeshes         int
	FirstMeshVertices int
	FirstMeshFaces    int
}

// Usable reports whether the scene has a root and is not flagged incomplete.
func (s Summary) Usable() bool {
	return s.HasRoot && s.Flags&SceneIncomplete == 0
}

// Summarize extracts a Summary from s. A nil scene yields the zero value.
func Summarize(s *Scene) Summary {
	if s == nil {
		return Summary{}
	}
	sum := Summary{
		Flags:     s.Flags,
		HasRoot:   s.RootNode != nil,
		NumMeshes: len(s.Meshes),
	}
	if len(s.Meshes) > 0 {
		sum.FirstMeshVertices = s.Meshes[0].NumVertices()
		sum.FirstMeshFaces = s.Meshes[0].NumFaces()
	}
	return sum
}
