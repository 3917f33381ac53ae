//go:build darwin || linux || windows

// Command rotatedtriangle draws a single triangle rotated 90 degrees about
// the Z axis by a matrix uniform.  The frame is drawn once; there is no
// animation.
//
// On a desktop run it directly:
//
//	$ go install github.com/aaronkistenmacher/MultiPoint/rotatedtriangle && rotatedtriangle -v
//
// or build an APK with gomobile:
//
//	$ gomobile build github.com/aaronkistenmacher/MultiPoint/rotatedtriangle
package main

import (
	"flag"
	"log/slog"
	"os"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/gl"

	"github.com/aaronkistenmacher/MultiPoint/triangle"
)

var verbose = flag.Bool("v", false, "log renderer state transitions")

func main() {
	flag.Parse()
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	triangle.SetLogger(logger)

	variant := triangle.Rotated{Angle: triangle.DefaultAngle}

	app.Main(func(a app.App) {
		var glctx gl.Context
		var r *triangle.Renderer
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					r = onStart(glctx, variant)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					if r != nil {
						r.Release()
					}
					r = nil
					glctx = nil
				}
			case paint.Event:
				if r == nil || r.State() != triangle.ContextAcquired {
					// The frame is drawn once.  Later paint events,
					// including those sent by the system, are ignored.
					continue
				}
				if err := r.Render(); err != nil {
					slog.Error("rendering failed", "err", err)
					continue
				}
				a.Publish()
			}
		}
	})
}

func onStart(glctx gl.Context, variant triangle.Variant) *triangle.Renderer {
	r, err := triangle.New(glctx, variant)
	if err != nil {
		slog.Error("unable to initialize GL", "err", err)
		return nil
	}
	return r
}
