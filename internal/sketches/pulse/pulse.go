// Package pulse draws an animated grid of soft circles whose radii breathe
// with a noise field.
package pulse

import (
	"image/color"

	"sketchbox/internal/canvas"
	"sketchbox/internal/core"
	"sketchbox/internal/palette"
)

// Config holds parameters for the pulse grid.
type Config struct {
	Width, Height int
	Cols, Rows    int
	Seed          int64
	Octaves       int
	Falloff       float64
	Palette       string
	Mount         string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   core.CanvasWidth,
		Height:  core.CanvasHeight,
		Cols:    8,
		Rows:    8,
		Seed:    1,
		Octaves: 4,
		Falloff: 0.5,
		Palette: palette.Nocturne.Name(),
		Mount:   core.MountID,
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
	core.PositiveInt(cfg, "cols", &c.Cols)
	core.PositiveInt(cfg, "rows", &c.Rows)
	core.Int64(cfg, "seed", &c.Seed)
	core.PositiveInt(cfg, "octaves", &c.Octaves)
	core.NonNegativeFloat(cfg, "falloff", &c.Falloff)
	core.String(cfg, "palette", &c.Palette)
	core.String(cfg, "mount", &c.Mount)
	return c
}

const (
	tickStep   = 0.01
	noiseScale = 0.2
	baseSize   = 0.35
	noiseSize  = 0.15
	ringScale  = 1.4
)

var (
	background = palette.MustHex("#030712")
	ringColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 35}
)

// Pulse implements the breathing circle grid.
type Pulse struct {
	cfg   Config
	pal   palette.Palette
	grid  core.Grid
	noise *core.Noise
	tick  float64
}

// New creates a Pulse sketch.
func New(cfg Config) *Pulse {
	pal, err := palette.Lookup(cfg.Palette)
	if err != nil {
		pal = palette.Nocturne
		cfg.Palette = pal.Name()
	}
	return &Pulse{
		cfg:  cfg,
		pal:  pal,
		grid: core.NewGrid(core.Size{W: cfg.Width, H: cfg.Height}, cfg.Cols, cfg.Rows),
	}
}

// Name identifies the sketch.
func (p *Pulse) Name() string { return "pulse" }

// Initialize creates the canvas and seeds the noise field.
func (p *Pulse) Initialize(c canvas.Canvas) {
	c.CreateCanvas(p.cfg.Width, p.cfg.Height).Parent(p.cfg.Mount)
	p.noise = core.NewNoise(p.cfg.Seed)
	p.noise.Detail(p.cfg.Octaves, p.cfg.Falloff)
	p.tick = 0
	c.NoStroke()
}

// RenderFrame advances the tick and draws the grid.
func (p *Pulse) RenderFrame(c canvas.Canvas) {
	c.Background(background)
	p.tick += tickStep

	cell := p.grid.CellW
	for y := 0; y < p.grid.Rows; y++ {
		for x := 0; x < p.grid.Cols; x++ {
			col := p.pal.At((x + y) % p.pal.Len())
			cx, cy := p.grid.Center(x, y)
			n := p.noise.At(float64(x)*noiseScale, float64(y)*noiseScale, p.tick)
			d := cell*baseSize + n*cell*noiseSize

			c.Push()
			c.BlendMode(canvas.BlendScreen)
			c.Fill(col)
			c.Circle(cx, cy, d)
			c.Pop()

			c.Push()
			c.Stroke(ringColor)
			c.NoFill()
			c.Circle(cx, cy, d*ringScale)
			c.Pop()
		}
	}
}

// Grid exposes the cell layout.
func (p *Pulse) Grid() core.Grid { return p.grid }

// Tick returns the animation counter.
func (p *Pulse) Tick() float64 { return p.tick }

// Parameters describes the sketch.
func (p *Pulse) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				core.IntParam("w", "Width", p.cfg.Width),
				core.IntParam("h", "Height", p.cfg.Height),
				core.StringParam("mount", "Mount point", p.cfg.Mount),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", p.cfg.Cols),
				core.IntParam("rows", "Rows", p.cfg.Rows),
				core.Int64Param("seed", "Noise seed", p.cfg.Seed),
				core.IntParam("octaves", "Noise octaves", p.cfg.Octaves),
				core.FloatParam("falloff", "Octave falloff", p.cfg.Falloff),
				core.StringParam("palette", "Palette", p.pal.Name()),
				core.FloatParam("tick", "Tick", p.tick),
			},
		},
	}}
}

func init() {
	core.Register("pulse", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}
