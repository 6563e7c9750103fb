package render

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

// CoordsPerVertex is the item size of every buffer in the scene (x, y, z).
const CoordsPerVertex = 3

// TriangleVertices are the corners of the triangle, drawn as gl.TRIANGLES.
var TriangleVertices = []float32{
	0.0, 1.0, 0.0, // top
	-1.0, -1.0, 0.0, // bottom left
	1.0, -1.0, 0.0, // bottom right
}

// SquareVertices are the corners of the square in gl.TRIANGLE_STRIP order.
var SquareVertices = []float32{
	1.0, 1.0, 0.0, // top right
	-1.0, 1.0, 0.0, // top left
	1.0, -1.0, 0.0, // bottom right
	-1.0, -1.0, 0.0, // bottom left
}

// VertexBuffer is an array buffer holding NumItems vertices of ItemSize
// float32 components each.
type VertexBuffer struct {
	gl.Buffer
	ItemSize int
	NumItems int
}

// InitBuffer uploads vertices into a new static array buffer. The length of
// vertices must be a non-zero multiple of itemSize.
func (c *Context) InitBuffer(vertices []float32, itemSize int) (*VertexBuffer, error) {
	if itemSize <= 0 || len(vertices) == 0 || len(vertices)%itemSize != 0 {
		return nil, fmt.Errorf("%w: %d floats, item size %d", ErrBufferLayout, len(vertices), itemSize)
	}

	buf := c.GL.CreateBuffer()
	if buf.Value == 0 {
		return nil, ErrNoBuffer
	}
	b := &VertexBuffer{
		Buffer:   buf,
		ItemSize: itemSize,
		NumItems: len(vertices) / itemSize,
	}
	c.GL.BindBuffer(gl.ARRAY_BUFFER, b.Buffer)
	c.GL.BufferData(gl.ARRAY_BUFFER, f32.Bytes(binary.LittleEndian, vertices...), gl.STATIC_DRAW)
	return b, nil
}
