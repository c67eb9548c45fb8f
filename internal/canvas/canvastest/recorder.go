// Package canvastest provides a canvas.Surface that records calls instead of
// drawing, for asserting what a sketch asked the canvas to do.
package canvastest

import (
	"image/color"

	"sketchbox/internal/canvas"
)

// Call is a single recorded canvas operation.
type Call struct {
	Op   string
	Args []any
}

// Recorder implements canvas.Surface by appending every call to Calls.
type Recorder struct {
	Calls []Call

	w, h    int
	created bool
	mount   string
	noLoop  bool
	depth   int
	// MaxDepth is the deepest Push nesting observed.
	MaxDepth int
}

// New returns an empty recorder.
func New() *Recorder { return &Recorder{} }

var _ canvas.Surface = (*Recorder)(nil)

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Find returns the calls to op in order.
func (r *Recorder) Find(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps canvas state.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Depth is the current Push nesting.
func (r *Recorder) Depth() int { return r.depth }

type element struct{ r *Recorder }

func (e element) Parent(id string) {
	e.r.mount = id
	e.r.record("parent", id)
}

func (r *Recorder) CreateCanvas(w, h int) canvas.Element {
	r.w, r.h, r.created = w, h, true
	r.record("createCanvas", w, h)
	return element{r: r}
}

func (r *Recorder) Background(c color.Color) { r.record("background", c) }

func (r *Recorder) Push() {
	r.depth++
	if r.depth > r.MaxDepth {
		r.MaxDepth = r.depth
	}
	r.record("push")
}

func (r *Recorder) Pop() {
	r.depth--
	r.record("pop")
}

func (r *Recorder) Translate(x, y float64)       { r.record("translate", x, y) }
func (r *Recorder) Rotate(angle float64)         { r.record("rotate", angle) }
func (r *Recorder) Fill(c color.Color)           { r.record("fill", c) }
func (r *Recorder) NoFill()                      { r.record("noFill") }
func (r *Recorder) Stroke(c color.Color)         { r.record("stroke", c) }
func (r *Recorder) NoStroke()                    { r.record("noStroke") }
func (r *Recorder) StrokeWeight(w float64)       { r.record("strokeWeight", w) }
func (r *Recorder) BlendMode(m canvas.BlendMode) { r.record("blendMode", m) }
func (r *Recorder) RectMode(m canvas.RectMode)   { r.record("rectMode", m) }
func (r *Recorder) Circle(x, y, d float64)       { r.record("circle", x, y, d) }
func (r *Recorder) Ellipse(x, y, w, h float64)   { r.record("ellipse", x, y, w, h) }
func (r *Recorder) Rect(x, y, w, h float64)      { r.record("rect", x, y, w, h) }

func (r *Recorder) Triangle(x1, y1, x2, y2, x3, y3 float64) {
	r.record("triangle", x1, y1, x2, y2, x3, y3)
}

func (r *Recorder) Arc(x, y, w, h, start, stop float64, mode canvas.ArcMode) {
	r.record("arc", x, y, w, h, start, stop, mode)
}

func (r *Recorder) NoLoop() {
	r.noLoop = true
	r.record("noLoop")
}

func (r *Recorder) Loop() {
	r.noLoop = false
	r.record("loop")
}

func (r *Recorder) Looping() bool   { return !r.noLoop }
func (r *Recorder) MountID() string { return r.mount }

func (r *Recorder) Size() (int, int, bool) { return r.w, r.h, r.created }

func (r *Recorder) Release() {
	r.created = false
	r.mount = ""
	r.record("remove")
}
