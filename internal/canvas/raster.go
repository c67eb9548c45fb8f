package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type style struct {
	fill      color.NRGBA
	hasFill   bool
	stroke    color.NRGBA
	hasStroke bool
	weight    float64
	blend     BlendMode
	rectMode  RectMode
}

func defaultStyle() style {
	return style{
		fill:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		hasFill:   true,
		stroke:    color.NRGBA{A: 255},
		hasStroke: true,
		weight:    1,
	}
}

// Raster is a Surface backed by an in-memory RGBA image. Primitives in the
// normal blend mode are drawn straight onto the image; other modes are drawn
// onto a scratch layer and composited over the primitive's bounding box.
type Raster struct {
	img   *image.RGBA
	dc    *gg.Context
	layer *image.RGBA
	lc    *gg.Context

	st     style
	stack  []style
	loop   bool
	mount  string
	active bool
}

// NewRaster returns an empty surface. The image is allocated by CreateCanvas.
func NewRaster() *Raster {
	return &Raster{st: defaultStyle(), loop: true}
}

type rasterElement struct{ r *Raster }

func (e rasterElement) Parent(id string) { e.r.mount = id }

// CreateCanvas allocates a w*h image, replacing any previous one.
func (r *Raster) CreateCanvas(w, h int) Element {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.layer = image.NewRGBA(r.img.Bounds())
	r.dc = gg.NewContextForRGBA(r.img)
	r.lc = gg.NewContextForRGBA(r.layer)
	r.st = defaultStyle()
	r.stack = r.stack[:0]
	r.active = true
	return rasterElement{r: r}
}

// Image exposes the composited canvas. It is nil before CreateCanvas.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size reports the canvas dimensions.
func (r *Raster) Size() (int, int, bool) {
	if r.img == nil {
		return 0, 0, false
	}
	b := r.img.Bounds()
	return b.Dx(), b.Dy(), true
}

// MountID returns the id the canvas was parented to.
func (r *Raster) MountID() string { return r.mount }

// Looping reports whether the frame callback should keep running.
func (r *Raster) Looping() bool { return r.loop }

// NoLoop stops the frame loop after the next draw.
func (r *Raster) NoLoop() { r.loop = false }

// Loop resumes the frame loop.
func (r *Raster) Loop() { r.loop = true }

// Release drops the image buffers and detaches from the mount point.
func (r *Raster) Release() {
	r.img, r.layer, r.dc, r.lc = nil, nil, nil, nil
	r.mount = ""
	r.active = false
}

// Background clears the whole canvas to c regardless of transform or blend.
func (r *Raster) Background(c color.Color) {
	if !r.active {
		return
	}
	r.dc.Push()
	r.dc.Identity()
	r.dc.SetColor(c)
	r.dc.Clear()
	r.dc.Pop()
}

func (r *Raster) Push() {
	r.stack = append(r.stack, r.st)
	if r.active {
		r.dc.Push()
		r.lc.Push()
	}
}

func (r *Raster) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.st = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	if r.active {
		r.dc.Pop()
		r.lc.Pop()
	}
}

func (r *Raster) Translate(x, y float64) {
	if r.active {
		r.dc.Translate(x, y)
		r.lc.Translate(x, y)
	}
}

func (r *Raster) Rotate(angle float64) {
	if r.active {
		r.dc.Rotate(angle)
		r.lc.Rotate(angle)
	}
}

func (r *Raster) Fill(c color.Color) {
	r.st.fill = color.NRGBAModel.Convert(c).(color.NRGBA)
	r.st.hasFill = true
}

func (r *Raster) NoFill() { r.st.hasFill = false }

func (r *Raster) Stroke(c color.Color) {
	r.st.stroke = color.NRGBAModel.Convert(c).(color.NRGBA)
	r.st.hasStroke = true
}

func (r *Raster) NoStroke() { r.st.hasStroke = false }

func (r *Raster) StrokeWeight(w float64) {
	if w < 0 {
		w = 0
	}
	r.st.weight = w
}

func (r *Raster) BlendMode(m BlendMode) { r.st.blend = m }

func (r *Raster) RectMode(m RectMode) { r.st.rectMode = m }

func (r *Raster) Circle(x, y, d float64) {
	r.Ellipse(x, y, d, d)
}

func (r *Raster) Ellipse(x, y, w, h float64) {
	rx, ry := math.Abs(w)/2, math.Abs(h)/2
	r.paint(x-rx, y-ry, x+rx, y+ry, func(dc *gg.Context) {
		dc.DrawEllipse(x, y, rx, ry)
	})
}

func (r *Raster) Rect(x, y, w, h float64) {
	if r.st.rectMode == RectCenter {
		x -= w / 2
		y -= h / 2
	}
	r.paint(math.Min(x, x+w), math.Min(y, y+h), math.Max(x, x+w), math.Max(y, y+h), func(dc *gg.Context) {
		dc.DrawRectangle(x, y, w, h)
	})
}

func (r *Raster) Arc(x, y, w, h, start, stop float64, mode ArcMode) {
	rx, ry := math.Abs(w)/2, math.Abs(h)/2
	if stop < start {
		stop += 2 * math.Pi
	}
	r.paint(x-rx, y-ry, x+rx, y+ry, func(dc *gg.Context) {
		if mode == ArcPie {
			dc.MoveTo(x, y)
		}
		dc.DrawEllipticalArc(x, y, rx, ry, start, stop)
		if mode != ArcOpen {
			dc.ClosePath()
		}
	})
}

func (r *Raster) Triangle(x1, y1, x2, y2, x3, y3 float64) {
	minX := math.Min(x1, math.Min(x2, x3))
	minY := math.Min(y1, math.Min(y2, y3))
	maxX := math.Max(x1, math.Max(x2, x3))
	maxY := math.Max(y1, math.Max(y2, y3))
	r.paint(minX, minY, maxX, maxY, func(dc *gg.Context) {
		dc.MoveTo(x1, y1)
		dc.LineTo(x2, y2)
		dc.LineTo(x3, y3)
		dc.ClosePath()
	})
}

// paint fills and strokes the path built by trace. The local bounds are only
// used to find the pixels a non-normal blend has to composite.
func (r *Raster) paint(minX, minY, maxX, maxY float64, trace func(dc *gg.Context)) {
	if !r.active || (!r.st.hasFill && !r.st.hasStroke) {
		return
	}
	dc := r.dc
	if r.st.blend != BlendNormal {
		dc = r.lc
	}

	trace(dc)
	if r.st.hasFill {
		dc.SetColor(r.st.fill)
		dc.FillPreserve()
	}
	if r.st.hasStroke && r.st.weight > 0 {
		dc.SetColor(r.st.stroke)
		dc.SetLineWidth(r.st.weight)
		dc.StrokePreserve()
	}
	dc.ClearPath()

	if dc == r.lc {
		pad := r.st.weight/2 + 2
		compositeRect(r.img, r.layer, r.deviceBounds(minX-pad, minY-pad, maxX+pad, maxY+pad), r.st.blend)
	}
}

func (r *Raster) deviceBounds(minX, minY, maxX, maxY float64) image.Rectangle {
	corners := [4][2]float64{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		tx, ty := r.lc.TransformPoint(c[0], c[1])
		x0, y0 = math.Min(x0, tx), math.Min(y0, ty)
		x1, y1 = math.Max(x1, tx), math.Max(y1, ty)
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}
