package asset

// PostProcess selects the steps run after a file is read.
// Values match the native importer's flags so they can be passed through.
type PostProcess uint32

const (
	JoinIdenticalVertices PostProcess = 0x2
	Triangulate           PostProcess = 0x8
	ValidateDataStructure PostProcess = 0x400
)

// SceneFlags describe the state of an imported scene.
type SceneFlags uint32

const (
	// SceneIncomplete marks a scene that lacks renderable data.
	SceneIncomplete SceneFlags = 0x1
	// SceneValidated marks a scene that passed ValidateDataStructure.
	SceneValidated SceneFlags = 0x2
)

// PrimitiveType is a bit set of the face kinds present in a mesh.
type PrimitiveType uint32

const (
	PrimitivePoint    PrimitiveType = 0x1
	PrimitiveLine     PrimitiveType = 0x2
	PrimitiveTriangle PrimitiveType = 0x4
	PrimitivePolygon  PrimitiveType = 0x8
)

// Vertex is a position in model space.
type Vertex [3]float32

// Face is a list of indices into Mesh.Vertices.
type Face struct {
	Indices []uint32
}

// Mesh is a single vertex/face list.
type Mesh struct {
	Name           string
	Vertices       []Vertex
	Faces          []Face
	PrimitiveTypes PrimitiveType
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Node is an element of the scene hierarchy referencing meshes by index.
type Node struct {
	Name     string
	Meshes   []int
	Children []*Node
}

// Scene is the root of an imported file.
type Scene struct {
	Flags    SceneFlags
	RootNode *Node
	Meshes   []*Mesh
}

// NumMeshes returns the mesh count.
func (s *Scene) NumMeshes() int { return len(s.Meshes) }

// Incomplete reports whether SceneIncomplete is set.
func (s *Scene) Incomplete() bool { return s.Flags&SceneIncomplete != 0 }

func primitiveFor(n int) PrimitiveType {
	switch n {
	case 1:
		return PrimitivePoint
	case 2:
		return PrimitiveLine
	case 3:
		return PrimitiveTriangle
	default:
		return PrimitivePolygon
	}
}
