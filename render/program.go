package render

import (
	"fmt"

	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

const vertexShader = `#version 100

attribute vec3 vertexPosition;

uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;

void main() {
	gl_Position = projectionMatrix * modelViewMatrix * vec4(vertexPosition, 1.0);
}`

const fragmentShader = `#version 100
precision mediump float;

void main() {
	gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}`

// Program is a linked shader program along with the locations of its
// inputs.
type Program struct {
	gl.Program

	VertexPosition   gl.Attrib
	ProjectionMatrix gl.Uniform
	ModelViewMatrix  gl.Uniform
}

// InitShaders compiles and links the scene's shaders, makes the resulting
// program current, and enables its vertex position attribute. Any compile or
// link failure is returned wrapping ErrShaders and the program is not used.
func (c *Context) InitShaders() (*Program, error) {
	program, err := glutil.CreateProgram(c.GL, vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaders, err)
	}

	c.GL.UseProgram(program)

	p := &Program{Program: program}
	p.VertexPosition = c.GL.GetAttribLocation(program, "vertexPosition")
	c.GL.EnableVertexAttribArray(p.VertexPosition)
	p.ProjectionMatrix = c.GL.GetUniformLocation(program, "projectionMatrix")
	p.ModelViewMatrix = c.GL.GetUniformLocation(program, "modelViewMatrix")
	return p, nil
}
