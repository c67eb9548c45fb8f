// Package canvas defines the drawing surface sketches paint on. The API
// mirrors a small immediate-mode 2D library: a transform and style stack,
// filled and stroked primitives, and a per-primitive blend mode.
package canvas

import (
	"fmt"
	"image/color"
	"strings"
)

// BlendMode selects how a primitive is composited onto the pixels below it.
type BlendMode int

const (
	// BlendNormal is plain source-over compositing.
	BlendNormal BlendMode = iota
	// BlendAdd sums colour channels, clamping at white.
	BlendAdd
	// BlendMultiply darkens: result = backdrop * source.
	BlendMultiply
	// BlendScreen lightens: result = 1 - (1-backdrop)*(1-source).
	BlendScreen
	// BlendDarkest keeps the darker channel.
	BlendDarkest
	// BlendLightest keeps the lighter channel.
	BlendLightest
	// BlendDifference subtracts the darker channel from the lighter one.
	BlendDifference
	// BlendExclusion is a lower contrast difference.
	BlendExclusion
	// BlendOverlay multiplies or screens depending on the backdrop.
	BlendOverlay
)

var blendNames = map[BlendMode]string{
	BlendNormal:     "blend",
	BlendAdd:        "add",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendDarkest:    "darkest",
	BlendLightest:   "lightest",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendOverlay:    "overlay",
}

func (m BlendMode) String() string {
	if name, ok := blendNames[m]; ok {
		return name
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode resolves a blend mode by name.
func ParseBlendMode(name string) (BlendMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for mode, n := range blendNames {
		if n == name {
			return mode, nil
		}
	}
	return BlendNormal, fmt.Errorf("unknown blend mode %q", name)
}

// RectMode controls how Rect interprets its x and y arguments.
type RectMode int

const (
	// RectCorner treats (x, y) as the top-left corner.
	RectCorner RectMode = iota
	// RectCenter treats (x, y) as the centre.
	RectCenter
)

// ArcMode controls how an arc outline is closed.
type ArcMode int

const (
	// ArcOpen leaves the outline open.
	ArcOpen ArcMode = iota
	// ArcChord closes the outline with a straight line between the endpoints.
	ArcChord
	// ArcPie closes the outline through the centre.
	ArcPie
)

// Element is the handle returned by CreateCanvas.
type Element interface {
	// Parent attaches the canvas to the mount point with the given id.
	Parent(id string)
}

// Canvas is the drawing API exposed to sketches.
type Canvas interface {
	CreateCanvas(w, h int) Element

	Background(c color.Color)

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	Fill(c color.Color)
	NoFill()
	Stroke(c color.Color)
	NoStroke()
	StrokeWeight(w float64)
	BlendMode(m BlendMode)
	RectMode(m RectMode)

	// Circle draws a circle with diameter d centred on (x, y).
	Circle(x, y, d float64)
	// Ellipse draws an ellipse with the given width and height centred on (x, y).
	Ellipse(x, y, w, h float64)
	Rect(x, y, w, h float64)
	// Arc draws the part of the ellipse (x, y, w, h) between start and stop,
	// measured in radians clockwise from the positive x axis.
	Arc(x, y, w, h, start, stop float64, mode ArcMode)
	Triangle(x1, y1, x2, y2, x3, y3 float64)

	// NoLoop asks the host to stop calling the frame callback after the
	// next draw. Loop undoes it.
	NoLoop()
	Loop()
}

// Surface is a Canvas as seen by the host that owns it.
type Surface interface {
	Canvas

	Looping() bool
	// MountID is the id passed to Element.Parent, empty until parented.
	MountID() string
	// Size reports the canvas dimensions and whether CreateCanvas was called.
	Size() (w, h int, ok bool)
	Release()
}

// Gray returns an opaque grey, the equivalent of background(255) style calls.
func Gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
