package main

import (
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"
)

// oneShot gates the single draw of the scene. Platforms deliver the draw
// context and the first window size in either order, so the draw is held
// until both are known.
type oneShot struct {
	glctx gl.Context
	sz    size.Event
	done  bool
}

// setContext records the draw context and reports whether the scene is ready
// to be drawn.
func (o *oneShot) setContext(glctx gl.Context) bool {
	o.glctx = glctx
	return o.ready()
}

// setSize records the window size and reports whether the scene is ready to
// be drawn.
func (o *oneShot) setSize(sz size.Event) bool {
	o.sz = sz
	return o.ready()
}

func (o *oneShot) ready() bool {
	return !o.done && o.glctx != nil && o.sz.WidthPx > 0 && o.sz.HeightPx > 0
}

// take returns the context and size to draw with. It returns false if the
// scene is not ready or has already been taken.
func (o *oneShot) take() (gl.Context, size.Event, bool) {
	if !o.ready() {
		return nil, size.Event{}, false
	}
	o.done = true
	return o.glctx, o.sz, true
}
