package triangle

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// PositionAttrib is the vertex shader input fed from the vertex buffer.
const PositionAttrib = "aPosition"

const coordsPerVertex = 2

var triangleVertices = []float32{
	0.0, 0.5, // top
	-0.5, -0.5, // bottom left
	0.5, -0.5, // bottom right
}

var triangleVertexData = f32.Bytes(binary.LittleEndian, triangleVertices...)

// VertexCount is the number of vertices uploaded and drawn.
func VertexCount() int {
	return len(triangleVertices) / coordsPerVertex
}

// Vertices returns a copy of the triangle's vertex positions, two
// coordinates per vertex.
func Vertices() []float32 {
	return append([]float32(nil), triangleVertices...)
}
