package app

import (
	"sketchbox/internal/core"
	"sketchbox/internal/host"
)

// Reloader is the part of host.Reloader the window drives.
type Reloader interface {
	Current() *host.Instance
	Poll() (bool, error)
	Reloads() int
}

var _ Reloader = (*host.Reloader)(nil)

const hudWidth = 260

func canvasSize(inst *host.Instance) (int, int) {
	if inst == nil {
		return core.CanvasWidth, core.CanvasHeight
	}
	if w, h, ok := inst.Surface().Size(); ok {
		return w, h
	}
	return core.CanvasWidth, core.CanvasHeight
}

// WindowSize is the window size for a canvas of w×h at scale, with room for
// the HUD panel when enabled.
func WindowSize(w, h, scale int, hud bool) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	ww := w * scale
	if hud {
		ww += hudWidth
	}
	return ww, h * scale
}

func screenSize(inst *host.Instance, scale int, showHUD bool) (int, int) {
	w, h := canvasSize(inst)
	return WindowSize(w, h, scale, showHUD)
}
