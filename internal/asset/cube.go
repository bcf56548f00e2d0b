package asset

// UnitCubePLY is a cube spanning [-1, 1] on each axis, as twelve triangles.
const UnitCubePLY = "ply\n" +
	"format ascii 1.0\n" +
	"element vertex 8\n" +
	"property float x\n" +
	"property float y\n" +
	"property float z\n" +
	"element face 12\n" +
	"property list uchar int vertex_indices\n" +
	"end_header\n" +
	"-1 -1 -1\n1 -1 -1\n1 1 -1\n-1 1 -1\n-1 -1 1\n1 -1 1\n1 1 1\n-1 1 1\n" +
	"3 0 1 2\n3 0 2 3\n3 1 5 6\n3 1 6 2\n3 5 4 7\n3 5 7 6\n3 4 0 3\n3 4 3 7\n" +
	"3 3 2 6\n3 3 6 7\n3 0 4 5\n3 0 5 1\n"
