package render

import (
	"github.com/bmatsuo/mobile-gl-lesson1/f32hack"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

// Projection describes a perspective camera. FovY is in degrees.
type Projection struct {
	FovY float32
	Near float32
	Far  float32
}

// Matrix sets m to the projection for a viewport with the given aspect ratio.
func (p Projection) Matrix(m *f32.Mat4, aspect float32) {
	f32hack.SetPerspective(m, f32hack.Radians(p.FovY), aspect, p.Near, p.Far)
}

// Object is a vertex buffer placed in the scene.
type Object struct {
	Name   string
	Buffer *VertexBuffer
	Mode   gl.Enum

	// Translations are composed in order, starting from the identity, to
	// produce the object's model-view matrix.
	Translations []f32.Vec3
}

// ModelView sets m to the model-view matrix of o.
func (o *Object) ModelView(m *f32.Mat4) {
	m.Identity()
	for _, v := range o.Translations {
		f32hack.Translate(m, v)
	}
}

// Scene is the set of objects drawn by a single call to DrawScene.
type Scene struct {
	Projection Projection
	Objects    []Object
}

// NewLessonScene returns the triangle and square scene. The square is placed
// relative to the triangle, 3 units to its right.
func NewLessonScene(proj Projection, triangle, square *VertexBuffer) *Scene {
	triangleAt := f32.Vec3{-1.5, 0.0, -7.0}
	return &Scene{
		Projection: proj,
		Objects: []Object{
			{
				Name:         "triangle",
				Buffer:       triangle,
				Mode:         gl.TRIANGLES,
				Translations: []f32.Vec3{triangleAt},
			},
			{
				Name:         "square",
				Buffer:       square,
				Mode:         gl.TRIANGLE_STRIP,
				Translations: []f32.Vec3{triangleAt, {3.0, 0.0, 0.0}},
			},
		},
	}
}

// DrawScene clears the viewport and draws each object in s using p.
func (c *Context) DrawScene(p *Program, s *Scene) {
	c.GL.Viewport(0, 0, c.Width, c.Height)
	c.GL.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	var (
		projection f32.Mat4
		modelView  f32.Mat4
		pMatrix    [16]float32
		mvMatrix   [16]float32
	)
	s.Projection.Matrix(&projection, c.Surface().Aspect())
	f32hack.Serialize4(pMatrix[:], &projection)

	for i := range s.Objects {
		obj := &s.Objects[i]
		obj.ModelView(&modelView)
		f32hack.Serialize4(mvMatrix[:], &modelView)

		c.GL.BindBuffer(gl.ARRAY_BUFFER, obj.Buffer.Buffer)
		c.GL.VertexAttribPointer(p.VertexPosition, obj.Buffer.ItemSize, gl.FLOAT, false, 0, 0)
		c.GL.UniformMatrix4fv(p.ProjectionMatrix, pMatrix[:])
		c.GL.UniformMatrix4fv(p.ModelViewMatrix, mvMatrix[:])
		c.GL.DrawArrays(obj.Mode, 0, obj.Buffer.NumItems)
	}
}
