// Package martens draws a single print of overlapping translucent circles and
// squares, finished with a handful of heavy outlines.
package martens

import (
	"image/color"

	"sketchbox/internal/canvas"
	"sketchbox/internal/core"
	"sketchbox/internal/palette"
)

// Kind is the outline of a shape.
type Kind uint8

const (
	Rect Kind = iota
	Circle
)

func (k Kind) String() string {
	if k == Circle {
		return "circle"
	}
	return "rect"
}

// Shape is one filled element of the print. Stroked shapes get a faint
// hairline.
type Shape struct {
	Kind    Kind
	X, Y    float64
	Size    float64
	Color   color.NRGBA
	Alpha   float64
	Stroked bool
}

// Outline is an unfilled element drawn above the shapes.
type Outline struct {
	Kind   Kind
	X, Y   float64
	Size   float64
	Color  color.NRGBA
	Weight float64
}

// Config holds parameters for the print.
type Config struct {
	Width, Height int
	Seed          int64
	Palette       string
	Mount         string
	MinShapes     int
	MaxShapes     int
	Outlines      int
}

// DefaultConfig returns the standard print.
func DefaultConfig() Config {
	return Config{
		Width:     core.CanvasWidth,
		Height:    core.CanvasHeight,
		Seed:      42,
		Palette:   palette.Martens.Name(),
		Mount:     core.MountID,
		MinShapes: 30,
		MaxShapes: 50,
		Outlines:  10,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.PositiveInt(cfg, "w", &c.Width)
	core.PositiveInt(cfg, "h", &c.Height)
	core.Int64(cfg, "seed", &c.Seed)
	core.String(cfg, "palette", &c.Palette)
	core.String(cfg, "mount", &c.Mount)
	core.PositiveInt(cfg, "min_shapes", &c.MinShapes)
	core.PositiveInt(cfg, "max_shapes", &c.MaxShapes)
	core.PositiveInt(cfg, "outlines", &c.Outlines)
	if c.MaxShapes < c.MinShapes {
		c.MaxShapes = c.MinShapes
	}
	return c
}

const (
	circleChance  = 0.6
	strokeChance  = 0.7
	outlineChance = 0.5
	outlineAlpha  = 180
	hairlineAlpha = 20
)

var (
	shapeSize   = [2]float64{40, 180}
	shapeAlpha  = [2]float64{0.4, 0.85}
	outlineSize = [2]float64{80, 200}
	outlineW    = [2]float64{2, 6}
)

// Martens is the static print sketch.
type Martens struct {
	cfg      Config
	pal      palette.Palette
	shapes   []Shape
	outlines []Outline
}

// New creates a print with the given configuration.
func New(cfg Config) *Martens {
	pal, err := palette.Lookup(cfg.Palette)
	if err != nil {
		pal = palette.Martens
		cfg.Palette = pal.Name()
	}
	return &Martens{cfg: cfg, pal: pal}
}

// Name identifies the sketch.
func (m *Martens) Name() string { return "martens" }

// Initialize creates the canvas, stops the loop and generates the print.
func (m *Martens) Initialize(c canvas.Canvas) {
	c.CreateCanvas(m.cfg.Width, m.cfg.Height).Parent(m.cfg.Mount)
	c.NoLoop()
	m.generate(core.NewRNG(m.cfg.Seed))
}

func (m *Martens) generate(rng *core.RNG) {
	w, h := float64(m.cfg.Width), float64(m.cfg.Height)
	n := rng.IntRange(m.cfg.MinShapes, m.cfg.MaxShapes)
	m.shapes = make([]Shape, n)
	for i := range m.shapes {
		s := Shape{Kind: Rect}
		if rng.Float64() > circleChance {
			s.Kind = Circle
		}
		s.X = rng.Uniform(0, w)
		s.Y = rng.Uniform(0, h)
		s.Size = rng.Uniform(shapeSize[0], shapeSize[1])
		s.Color = core.Pick(rng, m.pal.Colors())
		s.Alpha = rng.Uniform(shapeAlpha[0], shapeAlpha[1])
		s.Stroked = rng.Float64() > strokeChance
		m.shapes[i] = s
	}

	m.outlines = make([]Outline, m.cfg.Outlines)
	for i := range m.outlines {
		o := Outline{Kind: Rect}
		o.X = rng.Uniform(0, w)
		o.Y = rng.Uniform(0, h)
		o.Size = rng.Uniform(outlineSize[0], outlineSize[1])
		o.Color = core.Pick(rng, m.pal.Colors())
		o.Weight = rng.Uniform(outlineW[0], outlineW[1])
		if rng.Float64() > outlineChance {
			o.Kind = Circle
		}
		m.outlines[i] = o
	}
}

// RenderFrame paints the print. It draws the same picture every call.
func (m *Martens) RenderFrame(c canvas.Canvas) {
	c.Background(canvas.Gray(255))

	for _, s := range m.shapes {
		c.Push()
		c.Fill(canvas.WithAlpha(s.Color, uint8(s.Alpha*255)))
		if s.Stroked {
			c.Stroke(canvas.WithAlpha(canvas.Gray(0), hairlineAlpha))
			c.StrokeWeight(1)
		} else {
			c.NoStroke()
		}
		drawKind(c, s.Kind, s.X, s.Y, s.Size)
		c.Pop()
	}

	c.Push()
	c.NoFill()
	for _, o := range m.outlines {
		c.Stroke(canvas.WithAlpha(o.Color, outlineAlpha))
		c.StrokeWeight(o.Weight)
		drawKind(c, o.Kind, o.X, o.Y, o.Size)
	}
	c.Pop()
}

func drawKind(c canvas.Canvas, k Kind, x, y, size float64) {
	if k == Circle {
		c.Circle(x, y, size)
		return
	}
	c.RectMode(canvas.RectCenter)
	c.Rect(x, y, size, size)
}

// Shapes exposes the generated fills.
func (m *Martens) Shapes() []Shape { return m.shapes }

// Outlines exposes the generated outlines.
func (m *Martens) Outlines() []Outline { return m.outlines }

// Parameters describes the sketch.
func (m *Martens) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				core.IntParam("w", "Width", m.cfg.Width),
				core.IntParam("h", "Height", m.cfg.Height),
				core.StringParam("mount", "Mount point", m.cfg.Mount),
			},
		},
		{
			Name: "Composition",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", m.cfg.Seed),
				core.StringParam("palette", "Palette", m.pal.Name()),
				core.IntParam("min_shapes", "Min shapes", m.cfg.MinShapes),
				core.IntParam("max_shapes", "Max shapes", m.cfg.MaxShapes),
				core.IntParam("outlines", "Outlines", m.cfg.Outlines),
				core.IntParam("shapes", "Shapes drawn", len(m.shapes)),
			},
		},
	}}
}

func init() {
	core.Register("martens", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
