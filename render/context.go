/*
Package render draws the lesson 1 scene, a white triangle and a white square
in front of a perspective camera, into a gl.Context from golang.org/x/mobile/gl.

All GL state the renderer depends on is carried explicitly. The Context holds
the GL handle and viewport, the Program holds its attribute and uniform
locations, and each VertexBuffer records its own layout.

	r, err := render.New(glctx, render.Surface{sz.WidthPx, sz.HeightPx}, cfg)
	if err != nil {
		log.Printf("unable to initialize scene: %v", err)
		return
	}
	r.Draw()
*/
package render

import (
	"errors"

	"golang.org/x/mobile/gl"
)

// Errors returned during setup. They are wrapped with additional detail so
// callers should test for them with errors.Is.
var (
	ErrNoSurface    = errors.New("no drawing surface")
	ErrNoContext    = errors.New("unable to initialize gl context")
	ErrShaders      = errors.New("unable to initialize shaders")
	ErrNoBuffer     = errors.New("unable to create buffer")
	ErrBufferLayout = errors.New("vertex data does not match item size")
)

// Surface describes the pixel dimensions of the window being drawn into.
type Surface struct {
	WidthPx  int
	HeightPx int
}

// Valid returns true if s has a positive area.
func (s Surface) Valid() bool {
	return s.WidthPx > 0 && s.HeightPx > 0
}

// Aspect returns the width/height ratio of s.
func (s Surface) Aspect() float32 {
	return float32(float64(s.WidthPx) / float64(s.HeightPx))
}

// Context is the handle through which all GL calls are made. It remembers
// the viewport dimensions of the surface it was created for.
type Context struct {
	GL     gl.Context
	Width  int
	Height int
}

// NewContext binds glctx to the surface s. The surface is checked before
// glctx so that an invalid surface never results in a GL call.
func NewContext(glctx gl.Context, s Surface) (*Context, error) {
	if !s.Valid() {
		return nil, ErrNoSurface
	}
	if glctx == nil {
		return nil, ErrNoContext
	}
	return &Context{
		GL:     glctx,
		Width:  s.WidthPx,
		Height: s.HeightPx,
	}, nil
}

// Surface returns the surface dimensions c was created with.
func (c *Context) Surface() Surface {
	return Surface{WidthPx: c.Width, HeightPx: c.Height}
}
