package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

const quadCubeOBJ = `# cube as quads
o cube
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3 4
f 2 6 7 3
f 6 5 8 7
f 5 1 4 8
f 4 3 7 8
f 1 5 6 2
`

func TestReadFileFromMemory_UnitCube(t *testing.T) {
	// Given: the twelve-triangle cube
	im := NewImporter()

	// When: importing with triangulation and vertex joining
	scene, err := im.ReadFileFromMemory([]byte(UnitCubePLY), Triangulate|JoinIdenticalVertices, "ply")

	// Then: one mesh of 8 vertices and 12 faces
	require.NoError(t, err)
	require.NotNil(t, scene)
	assert.False(t, scene.Incomplete())
	require.NotNil(t, scene.RootNode)
	assert.Equal(t, []int{0}, scene.RootNode.Meshes)
	require.Equal(t, 1, scene.NumMeshes())
	assert.Equal(t, 8, scene.Meshes[0].NumVertices())
	assert.Equal(t, 12, scene.Meshes[0].NumFaces())
	assert.Equal(t, PrimitiveTriangle, scene.Meshes[0].PrimitiveTypes)
	assert.Same(t, scene, im.Scene())
}

func TestReadFileFromMemory_WithoutJoinKeepsCorners(t *testing.T) {
	im := NewImporter()

	scene, err := im.ReadFileFromMemory([]byte(UnitCubePLY), Triangulate, "ply")

	require.NoError(t, err)
	assert.Equal(t, 36, scene.Meshes[0].NumVertices())
	assert.Equal(t, 12, scene.Meshes[0].NumFaces())
}

func TestReadFileFromMemory_JoinPreservesGeometry(t *testing.T) {
	im := NewImporter()

	scene, err := im.ReadFileFromMemory([]byte(UnitCubePLY), JoinIdenticalVertices, "ply")
	require.NoError(t, err)

	m := scene.Meshes[0]
	// Face 0 of the input is 0 1 2
	f := m.Faces[0].Indices
	assert.Equal(t, Vertex{-1, -1, -1}, m.Vertices[f[0]])
	assert.Equal(t, Vertex{1, -1, -1}, m.Vertices[f[1]])
	assert.Equal(t, Vertex{1, 1, -1}, m.Vertices[f[2]])
}

func TestReadFileFromMemory_TriangulatesQuads(t *testing.T) {
	tests := []struct {
		name      string
		flags     PostProcess
		wantFaces int
		wantVerts int
		wantTypes PrimitiveType
	}{
		{"raw", 0, 6, 24, PrimitivePolygon},
		{"triangulate", Triangulate, 12, 24, PrimitiveTriangle},
		{"triangulate and join", Triangulate | JoinIdenticalVertices, 12, 8, PrimitiveTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewImporter()

			scene, err := im.ReadFileFromMemory([]byte(quadCubeOBJ), tt.flags, "obj")

			require.NoError(t, err)
			m := scene.Meshes[0]
			assert.Equal(t, "cube", m.Name)
			assert.Equal(t, tt.wantFaces, m.NumFaces())
			assert.Equal(t, tt.wantVerts, m.NumVertices())
			assert.Equal(t, tt.wantTypes, m.PrimitiveTypes)
		})
	}
}

func TestReadFileFromMemory_DetectsFormatWithoutHint(t *testing.T) {
	im := NewImporter()

	ply, err := im.ReadFileFromMemory([]byte(UnitCubePLY), 0, "")
	require.NoError(t, err)
	assert.Equal(t, "ply", ply.Meshes[0].Name)

	obj, err := im.ReadFileFromMemory([]byte(quadCubeOBJ), 0, "")
	require.NoError(t, err)
	assert.Equal(t, "cube", obj.Meshes[0].Name)
}

func TestReadFileFromMemory_Failures(t *testing.T) {
	tests := []struct {
		name string
		data string
		hint string
	}{
		{"empty", "", "ply"},
		{"whitespace", " \n\t", "ply"},
		{"unknown format", "solid cube\nendsolid\n", "stl"},
		{"binary ply", "ply\nformat binary_little_endian 1.0\nend_header\n", "ply"},
		{"truncated body", "ply\nformat ascii 1.0\nelement vertex 2\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n", "ply"},
		{"bad index", "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nproperty float z\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n3 0 1 2\n", "ply"},
		{"negative face list", "ply\nformat ascii 1.0\nelement vertex 3\nproperty float x\nproperty float y\nproperty float z\nelement face 1\nproperty list uchar int vertex_indices\nend_header\n0 0 0\n1 0 0\n0 1 0\n-1 0 1\n", "ply"},
		{"negative vertex list", "ply\nformat ascii 1.0\nelement vertex 1\nproperty list uchar int tags\nproperty float x\nproperty float y\nproperty float z\nend_header\n-2 0 0 0\n", "ply"},
		{"missing end_header", "ply\nformat ascii 1.0\nelement vertex 0\n", "ply"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewImporter()

			scene, err := im.ReadFileFromMemory([]byte(tt.data), Triangulate, tt.hint)

			require.Error(t, err)
			assert.Nil(t, scene)
			assert.Nil(t, im.Scene())
			assert.NotEmpty(t, im.ErrorString())
			assert.Equal(t, errs.ErrCodeImportFailed, errs.GetCode(err))
		})
	}
}

func TestReadFileFromMemory_NoFacesIsIncomplete(t *testing.T) {
	im := NewImporter()
	data := "ply\nformat ascii 1.0\nelement vertex 1\nproperty float x\nproperty float y\nproperty float z\nend_header\n0 0 0\n"

	scene, err := im.ReadFileFromMemory([]byte(data), Triangulate, "ply")

	require.NoError(t, err)
	assert.True(t, scene.Incomplete())
	assert.Equal(t, 0, scene.NumMeshes())
	assert.False(t, Summarize(scene).Usable())
}

func TestReadFileFromMemory_ReplacesOwnedScene(t *testing.T) {
	im := NewImporter()

	first, err := im.ReadFileFromMemory([]byte(UnitCubePLY), 0, "ply")
	require.NoError(t, err)

	_, err = im.ReadFileFromMemory(nil, 0, "ply")
	require.Error(t, err)
	assert.Nil(t, im.Scene())

	second, err := im.ReadFileFromMemory([]byte(UnitCubePLY), 0, "ply")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Empty(t, im.ErrorString())

	im.FreeScene()
	assert.Nil(t, im.Scene())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		scene   *Scene
		wantErr bool
	}{
		{
			name: "valid",
			scene: &Scene{
				RootNode: &Node{Meshes: []int{0}},
				Meshes:   []*Mesh{{Vertices: make([]Vertex, 3), Faces: []Face{{Indices: []uint32{0, 1, 2}}}}},
			},
		},
		{
			name: "index out of range",
			scene: &Scene{
				RootNode: &Node{},
				Meshes:   []*Mesh{{Vertices: make([]Vertex, 3), Faces: []Face{{Indices: []uint32{0, 1, 3}}}}},
			},
			wantErr: true,
		},
		{
			name: "node references missing mesh",
			scene: &Scene{
				RootNode: &Node{Children: []*Node{{Name: "child", Meshes: []int{2}}}},
				Meshes:   []*Mesh{{Vertices: make([]Vertex, 1), Faces: []Face{{Indices: []uint32{0}}}}},
			},
			wantErr: true,
		},
		{
			name:    "mesh without vertices",
			scene:   &Scene{RootNode: &Node{}, Meshes: []*Mesh{{}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.scene)
			if tt.wantErr {
				assert.Equal(t, errs.ErrCodeInvalidInput, errs.GetCode(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReadFileFromMemory_ValidateSetsFlag(t *testing.T) {
	im := NewImporter()

	scene, err := im.ReadFileFromMemory([]byte(UnitCubePLY), Triangulate|ValidateDataStructure, "ply")

	require.NoError(t, err)
	assert.NotZero(t, scene.Flags&SceneValidated)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	im := NewImporter()
	scene, err := im.ReadFileFromMemory([]byte(UnitCubePLY), Triangulate|JoinIdenticalVertices, "ply")
	require.NoError(t, err)

	sum := Summarize(scene)
	assert.True(t, sum.Usable())
	assert.Equal(t, Summary{HasRoot: true, NumMeshes: 1, FirstMeshVertices: 8, FirstMeshFaces: 12}, sum)
}

func TestFormats(t *testing.T) {
	im := NewImporter()
	im.RegisterReader(".STL", plyReader{})
	assert.Equal(t, []string{"obj", "ply", "stl"}, im.Formats())
}
