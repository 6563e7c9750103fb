package render

import (
	"fmt"
	"log"

	"golang.org/x/mobile/gl"
)

// Renderer owns the GL resources of the lesson scene. Resources are never
// released; they live as long as the gl.Context they were created in.
type Renderer struct {
	ctx     *Context
	program *Program
	scene   *Scene
}

// New initializes the context, shaders and vertex buffers needed to draw the
// scene on s. Setup stops at the first failure and nothing is drawn.
func New(glctx gl.Context, s Surface, cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, err := NewContext(glctx, s)
	if err != nil {
		return nil, err
	}
	program, err := ctx.InitShaders()
	if err != nil {
		return nil, err
	}
	triangle, err := ctx.InitBuffer(TriangleVertices, CoordsPerVertex)
	if err != nil {
		return nil, fmt.Errorf("triangle: %w", err)
	}
	square, err := ctx.InitBuffer(SquareVertices, CoordsPerVertex)
	if err != nil {
		return nil, fmt.Errorf("square: %w", err)
	}

	c := cfg.ClearColor
	ctx.GL.ClearColor(c[0], c[1], c[2], c[3])
	ctx.GL.Enable(gl.DEPTH_TEST)

	log.Printf("render: initialized %dx%d surface", ctx.Width, ctx.Height)

	return &Renderer{
		ctx:     ctx,
		program: program,
		scene:   NewLessonScene(cfg.Projection(), triangle, square),
	}, nil
}

// Scene returns the scene drawn by r.
func (r *Renderer) Scene() *Scene {
	return r.scene
}

// Draw renders the scene once.
func (r *Renderer) Draw() {
	r.ctx.DrawScene(r.program, r.scene)
}

// Run initializes a Renderer and draws its scene a single time.
func Run(glctx gl.Context, s Surface, cfg Config) error {
	r, err := New(glctx, s, cfg)
	if err != nil {
		return err
	}
	r.Draw()
	return nil
}
