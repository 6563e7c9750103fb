//go:build darwin || linux || windows
// +build darwin linux windows

// Lesson 1 draws a white triangle and a white square, once, with a
// perspective camera.
//
// See http://godoc.org/golang.org/x/mobile/cmd/gomobile to install gomobile.
//
//   $ gomobile build github.com/bmatsuo/mobile-gl-lesson1/lesson1 # will build an APK
//   $ gomobile install github.com/bmatsuo/mobile-gl-lesson1/lesson1
//
// You can also run the application on your desktop.
//
//   $ go install github.com/bmatsuo/mobile-gl-lesson1/lesson1 && lesson1
//
// The camera and clear color can be changed by editing assets/lesson1.toml.
package main

import (
	"log"

	"github.com/bmatsuo/mobile-gl-lesson1/render"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/gl"
)

func main() {
	app.Main(func(a app.App) {
		var draw oneShot
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						log.Printf("unable to draw scene: %v", render.ErrNoContext)
					}
					if draw.setContext(glctx) {
						a.Send(paint.Event{})
					}
				case lifecycle.CrossOff:
					draw.setContext(nil)
				}
			case size.Event:
				if draw.setSize(e) {
					a.Send(paint.Event{})
				}
			case paint.Event:
				// The scene is drawn exactly once, after both the draw
				// context and the window size are known. Paint events sent
				// by the system are ignored.
				if e.External {
					continue
				}
				glctx, sz, ok := draw.take()
				if !ok {
					continue
				}
				if r := onStart(glctx, sz); r != nil {
					onPaint(r)
					a.Publish()
				}
			}
		}
	})
}

// onStart initializes the scene for the window described by sz. Any failure
// is reported and nil is returned.
func onStart(glctx gl.Context, sz size.Event) *render.Renderer {
	cfg, err := render.LoadConfigAsset(render.ConfigAsset)
	if err != nil {
		log.Printf("error loading %s, using defaults: %v", render.ConfigAsset, err)
	}

	surface := render.Surface{WidthPx: sz.WidthPx, HeightPx: sz.HeightPx}
	r, err := render.New(glctx, surface, cfg)
	if err != nil {
		log.Printf("unable to initialize scene: %v", err)
		return nil
	}
	return r
}

func onPaint(r *render.Renderer) {
	r.Draw()
}
