// Package glyphs renders a grid of procedurally configured symmetric glyphs.
// The "glyphs" variant is a single static print composited with multiply;
// "spin" slowly turns every cell on a dark ground with screen blending.
package glyphs

import (
	"image/color"

	"sketchbox/internal/canvas"
	"sketchbox/internal/composition"
	"sketchbox/internal/core"
	"sketchbox/internal/palette"
)

// Config holds parameters for a glyph grid.
type Config struct {
	Width, Height int
	Cols, Rows    int
	Seed          int64
	Palette       string
	Background    string
	Blend         canvas.BlendMode
	Extended      bool
	Animate       bool
	// Speed is the phase advance per frame when animating.
	Speed float64
	Mount string
}

// DefaultConfig returns the static print configuration.
func DefaultConfig() Config {
	return Config{
		Width:      core.CanvasWidth,
		Height:     core.CanvasHeight,
		Cols:       4,
		Rows:       4,
		Seed:       42,
		Palette:    palette.Martens.Name(),
		Background: "#F4F1EA",
		Blend:      canvas.BlendMultiply,
		Extended:   true,
		Mount:      core.MountID,
	}
}

// SpinConfig returns the animated configuration.
func SpinConfig() Config {
	c := DefaultConfig()
	c.Seed = 7
	c.Palette = palette.Nocturne.Name()
	c.Background = "#030712"
	c.Blend = canvas.BlendScreen
	c.Extended = false
	c.Animate = true
	c.Speed = 0.01
	return c
}

// FromMap overlays flag-style key/value pairs onto base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	core.PositiveInt(cfg, "w", &c.Width)
	core.PositiveInt(cfg, "h", &c.Height)
	core.PositiveInt(cfg, "cols", &c.Cols)
	core.PositiveInt(cfg, "rows", &c.Rows)
	core.Int64(cfg, "seed", &c.Seed)
	core.String(cfg, "palette", &c.Palette)
	core.String(cfg, "background", &c.Background)
	core.Bool(cfg, "extended", &c.Extended)
	core.Bool(cfg, "animate", &c.Animate)
	core.NonNegativeFloat(cfg, "speed", &c.Speed)
	core.String(cfg, "mount", &c.Mount)
	if v, ok := cfg["blend"]; ok {
		if mode, err := canvas.ParseBlendMode(v); err == nil {
			c.Blend = mode
		}
	}
	return c
}

// Glyphs is a grid sketch. Configuration is generated in Initialize and never
// changes afterwards; only the phase advances between frames.
type Glyphs struct {
	name  string
	cfg   Config
	pal   palette.Palette
	bg    color.NRGBA
	grid  core.Grid
	cells []composition.CellConfig
	phase float64
}

// New creates a glyph sketch. Unknown palettes fall back to the base one.
func New(name string, cfg Config) *Glyphs {
	pal, err := palette.Lookup(cfg.Palette)
	if err != nil {
		pal = palette.Martens
		cfg.Palette = pal.Name()
	}
	bg, err := palette.Parse("background", cfg.Background)
	if err != nil {
		bg = palette.MustParse("background", "#FFFFFF")
	}
	return &Glyphs{
		name: name,
		cfg:  cfg,
		pal:  pal,
		bg:   bg.At(0),
		grid: core.NewGrid(core.Size{W: cfg.Width, H: cfg.Height}, cfg.Cols, cfg.Rows),
	}
}

// Name returns the sketch identifier.
func (g *Glyphs) Name() string { return g.name }

// Initialize creates the canvas and generates one configuration per cell.
func (g *Glyphs) Initialize(c canvas.Canvas) {
	c.CreateCanvas(g.cfg.Width, g.cfg.Height).Parent(g.cfg.Mount)
	if !g.cfg.Animate {
		c.NoLoop()
	}
	c.NoStroke()
	g.phase = 0
	g.cells = composition.Generate(core.NewRNG(g.cfg.Seed), g.pal, g.grid.Len(), composition.Options{Extended: g.cfg.Extended})
}

// RenderFrame clears the canvas and draws every cell.
func (g *Glyphs) RenderFrame(c canvas.Canvas) {
	if g.cfg.Animate {
		g.phase += g.cfg.Speed
	}
	c.Background(g.bg)
	c.Push()
	c.BlendMode(g.cfg.Blend)
	size := g.grid.CellSize()
	for i, cell := range g.cells {
		x, y := g.grid.Coords(i)
		cx, cy := g.grid.Center(x, y)
		composition.RenderCell(c, cell, cx, cy, size, g.rotation(x, y))
	}
	c.Pop()
}

// Neighbouring cells turn in opposite directions.
func (g *Glyphs) rotation(x, y int) float64 {
	if (x+y)%2 == 0 {
		return g.phase
	}
	return -g.phase
}

// Cells exposes the generated configuration.
func (g *Glyphs) Cells() []composition.CellConfig { return g.cells }

// Grid exposes the cell layout.
func (g *Glyphs) Grid() core.Grid { return g.grid }

// Phase returns the animation counter.
func (g *Glyphs) Phase() float64 { return g.phase }

// Parameters describes the sketch for the HUD and the describe command.
func (g *Glyphs) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.cfg.Width),
				core.IntParam("h", "Height", g.cfg.Height),
				core.StringParam("mount", "Mount point", g.cfg.Mount),
				core.StringParam("background", "Background", palette.Hex(g.bg)),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", g.cfg.Cols),
				core.IntParam("rows", "Rows", g.cfg.Rows),
				core.Int64Param("seed", "Seed", g.cfg.Seed),
				core.BoolParam("extended", "Per-shape detail", g.cfg.Extended),
			},
		},
		{
			Name: "Colour",
			Params: []core.Parameter{
				core.StringParam("palette", "Palette", g.pal.Name()),
				core.StringParam("blend", "Blend mode", g.cfg.Blend.String()),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.BoolParam("animate", "Animated", g.cfg.Animate),
				core.FloatParam("speed", "Phase per frame", g.cfg.Speed),
				core.FloatParam("phase", "Phase", g.phase),
			},
		},
	}}
}

func init() {
	core.Register("glyphs", func(cfg map[string]string) core.Sketch {
		return New("glyphs", FromMap(DefaultConfig(), cfg))
	})
	core.Register("spin", func(cfg map[string]string) core.Sketch {
		return New("spin", FromMap(SpinConfig(), cfg))
	})
}
