package composition

import (
	"math"

	"sketchbox/internal/canvas"
)

const (
	defaultCircleCount = 3
	defaultArcAngle    = math.Pi / 2
	defaultWedgeAngle  = math.Pi / 4

	circleShrink = 0.7
)

// RenderCell draws cfg centred on (cx, cy). Every shape is repeated
// cfg.Symmetry times at evenly spaced rotations; rotation offsets all of
// them. Style state other than fill is left to the caller.
func RenderCell(c canvas.Canvas, cfg CellConfig, cx, cy, cellSize, rotation float64) {
	if cfg.Symmetry <= 0 {
		return
	}
	step := 2 * math.Pi / float64(cfg.Symmetry)
	for i, kind := range cfg.Shapes {
		size := cellSize * at(cfg.Sizes, i, 1)
		if len(cfg.Colors) > 0 {
			c.Fill(cfg.Colors[i%len(cfg.Colors)])
		}
		for r := 0; r < cfg.Symmetry; r++ {
			c.Push()
			c.Translate(cx, cy)
			c.Rotate(rotation + float64(r)*step)
			drawShape(c, kind, size, cfg, i)
			c.Pop()
		}
	}
}

func drawShape(c canvas.Canvas, kind ShapeKind, size float64, cfg CellConfig, slot int) {
	switch kind {
	case Circles:
		count := defaultCircleCount
		if len(cfg.CircleCounts) > 0 {
			count = cfg.CircleCounts[slot%len(cfg.CircleCounts)]
		}
		d := size
		for j := 0; j < count; j++ {
			c.Circle(size/4, 0, d)
			d *= circleShrink
		}
	case Bars:
		c.RectMode(canvas.RectCorner)
		c.Rect(-size*0.075, 0, size*0.15, size)
	case Arcs:
		c.Arc(0, 0, size, size, 0, at(cfg.ArcAngles, slot, defaultArcAngle), canvas.ArcPie)
	case Wedges:
		w := at(cfg.WedgeAngles, slot, defaultWedgeAngle)
		c.Arc(0, 0, size, size, -w/2, w/2, canvas.ArcPie)
	case Spokes:
		c.RectMode(canvas.RectCorner)
		c.Rect(0, -size*0.05, size*0.8, size*0.1)
	case Cross:
		c.RectMode(canvas.RectCenter)
		c.Rect(0, 0, size*0.6, size*0.15)
		c.Rect(0, 0, size*0.15, size*0.6)
	}
}

// at cycles through values by index, falling back to def when empty.
func at(values []float64, i int, def float64) float64 {
	if len(values) == 0 {
		return def
	}
	return values[i%len(values)]
}
