// Package gui shows the circle layer in a native window.
package gui

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bgcircles/internal/host"
	"github.com/san-kum/bgcircles/internal/scene"
	"github.com/san-kum/bgcircles/internal/viz"
)

const (
	initialWidth  = 1280
	initialHeight = 720
	targetFPS     = 60
)

type window struct {
	snap   scene.Snapshot
	smooth *viz.ScaleSmoother
	fill   rl.Color
	bg     rl.Color
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}

func (w *window) render(s scene.Snapshot) {
	w.snap = s
}

func (w *window) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(w.bg)
	for _, c := range w.snap.Circles {
		scale := w.smooth.Next(c.ID, c.Scale)
		center := rl.NewVector2(float32(c.X), float32(c.Y))
		rl.DrawCircleV(center, float32(c.Size*scale/2), rl.ColorAlpha(w.fill, float32(c.Opacity)))
	}
	rl.EndDrawing()
}

// Run opens a resizable window and drives the component from the window's
// frame loop until the window is closed. Space toggles animation.
func Run(opts scene.Options, seed int64, logger *slog.Logger) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(initialWidth, initialHeight, "bgcircles")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(rl.KeyQ)

	w := &window{
		smooth: viz.NewScaleSmoother(targetFPS),
		fill:   toColor(viz.ParseColor(opts.Color, scene.DefaultColor)),
		bg:     toColor(viz.ParseColor(opts.Background, scene.DefaultBackground)),
	}

	h := host.NewManual(screenViewport(), time.Now())
	comp := scene.NewComponent(h, opts, w.render,
		scene.WithRand(rand.New(rand.NewSource(seed))),
		scene.WithLogger(logger),
	)
	if err := comp.Mount(); err != nil {
		return err
	}
	defer comp.Unmount()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			vp := screenViewport()
			h.Resize(vp.Width, vp.Height)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			comp.SetAnimated(!comp.Options().Animated)
		}
		h.FrameAt(time.Now())
		w.draw()
	}
	return nil
}

func screenViewport() scene.Viewport {
	return scene.Viewport{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
}
