package core

import (
	"sort"

	"sketchbox/internal/canvas"
)

// Size describes canvas dimensions in pixels.
type Size struct {
	W int
	H int
}

const (
	// CanvasWidth and CanvasHeight are the default canvas dimensions.
	CanvasWidth  = 640
	CanvasHeight = 640
	// MountID is the default mount point sketches parent their canvas to.
	MountID = "app"
)

// DefaultSize returns the default canvas dimensions.
func DefaultSize() Size { return Size{W: CanvasWidth, H: CanvasHeight} }

// Sketch is the frame lifecycle every variant implements. Initialize runs
// once per mount and must create the canvas; RenderFrame runs once per frame
// while the host keeps drawing.
type Sketch interface {
	Name() string
	Initialize(c canvas.Canvas)
	RenderFrame(c canvas.Canvas)
}

// Factory constructs a Sketch using an optional configuration map.
type Factory func(cfg map[string]string) Sketch

var sketches = map[string]Factory{}

// Register adds a sketch factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Sketches exposes the registry of available sketch factories.
func Sketches() map[string]Factory {
	return sketches
}

// Names lists registered sketches in lexical order.
func Names() []string {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
