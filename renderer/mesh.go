package renderer

// cubeVertices holds 36 vertices (12 triangles), interleaved position (xyz)
// and colour (rgb). Each face has a single colour.
var cubeVertices = []float32{
	// -Z
	-1, -1, -1, 1.0, 0.3, 0.3,
	1, 1, -1, 1.0, 0.3, 0.3,
	1, -1, -1, 1.0, 0.3, 0.3,
	1, 1, -1, 1.0, 0.3, 0.3,
	-1, -1, -1, 1.0, 0.3, 0.3,
	-1, 1, -1, 1.0, 0.3, 0.3,

	// +Z
	-1, -1, 1, 0.3, 1.0, 0.3,
	1, -1, 1, 0.3, 1.0, 0.3,
	1, 1, 1, 0.3, 1.0, 0.3,
	1, 1, 1, 0.3, 1.0, 0.3,
	-1, 1, 1, 0.3, 1.0, 0.3,
	-1, -1, 1, 0.3, 1.0, 0.3,

	// -X
	-1, 1, 1, 0.3, 0.3, 1.0,
	-1, 1, -1, 0.3, 0.3, 1.0,
	-1, -1, -1, 0.3, 0.3, 1.0,
	-1, -1, -1, 0.3, 0.3, 1.0,
	-1, -1, 1, 0.3, 0.3, 1.0,
	-1, 1, 1, 0.3, 0.3, 1.0,

	// +X
	1, 1, 1, 1.0, 1.0, 0.3,
	1, -1, -1, 1.0, 1.0, 0.3,
	1, 1, -1, 1.0, 1.0, 0.3,
	1, -1, -1, 1.0, 1.0, 0.3,
	1, 1, 1, 1.0, 1.0, 0.3,
	1, -1, 1, 1.0, 1.0, 0.3,

	// -Y
	-1, -1, -1, 0.3, 1.0, 1.0,
	1, -1, -1, 0.3, 1.0, 1.0,
	1, -1, 1, 0.3, 1.0, 1.0,
	1, -1, 1, 0.3, 1.0, 1.0,
	-1, -1, 1, 0.3, 1.0, 1.0,
	-1, -1, -1, 0.3, 1.0, 1.0,

	// +Y
	-1, 1, -1, 1.0, 0.3, 1.0,
	1, 1, 1, 1.0, 0.3, 1.0,
	1, 1, -1, 1.0, 0.3, 1.0,
	1, 1, 1, 1.0, 0.3, 1.0,
	-1, 1, -1, 1.0, 0.3, 1.0,
	-1, 1, 1, 1.0, 0.3, 1.0,
}

const (
	floatSize    = 4
	vertexFloats = 6
	vertexStride = vertexFloats * floatSize
)

func cubeVertexCount() int32 {
	return int32(len(cubeVertices) / vertexFloats)
}
