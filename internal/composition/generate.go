// Package composition generates per-cell glyph configurations for grid
// sketches and renders them with rotational symmetry.
package composition

import (
	"fmt"
	"image/color"
	"math"

	"sketchbox/internal/core"
	"sketchbox/internal/palette"
)

// ShapeKind tags one of the primitives a cell can be built from.
type ShapeKind uint8

const (
	Circles ShapeKind = iota
	Bars
	Arcs
	Wedges
	Spokes
	Cross
)

// ShapeKinds is the full tag set in draw-order.
var ShapeKinds = []ShapeKind{Circles, Bars, Arcs, Wedges, Spokes, Cross}

var shapeNames = [...]string{"circles", "bars", "arcs", "wedges", "spokes", "cross"}

func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

var (
	// SymmetryOrders are the rotational orders a cell may use.
	SymmetryOrders = []int{4, 6, 8}
	// ArcAngles are the sweeps available to arcs in the extended variant.
	ArcAngles = []float64{math.Pi / 2, math.Pi / 3, math.Pi / 4}
	// WedgeAngles are the spans available to wedges in the extended variant.
	WedgeAngles = []float64{math.Pi / 3, math.Pi / 4, math.Pi / 6}
)

// sizeRanges bound the three size ratios, as fractions of the cell size.
var sizeRanges = [3][2]float64{{0.3, 0.8}, {0.4, 0.7}, {0.2, 0.6}}

const (
	minShapes, maxShapes   = 2, 5
	minColors, maxColors   = 2, 4
	minCircles, maxCircles = 2, 5
)

// CellConfig is the drawing recipe for one grid cell. The auxiliary slices
// are empty unless the cell was generated in extended mode.
type CellConfig struct {
	Symmetry int
	Shapes   []ShapeKind
	Sizes    []float64
	Colors   []color.NRGBA

	CircleCounts []int
	ArcAngles    []float64
	WedgeAngles  []float64
}

// Options tunes generation.
type Options struct {
	// Extended additionally draws per-shape circle counts and arc/wedge angles.
	Extended bool
}

// Generate produces n independent cell configurations. The result depends only
// on the state of rng, so a freshly seeded source always yields the same
// sequence. pal must not be empty.
func Generate(rng core.Random, pal palette.Palette, n int, opts Options) []CellConfig {
	if pal.Len() == 0 {
		panic("composition: empty palette")
	}
	cells := make([]CellConfig, n)
	for i := range cells {
		cells[i] = GenerateCell(rng, pal, opts)
	}
	return cells
}

// GenerateCell draws a single configuration from rng.
func GenerateCell(rng core.Random, pal palette.Palette, opts Options) CellConfig {
	cfg := CellConfig{Symmetry: core.Pick(rng, SymmetryOrders)}

	k := rng.IntRange(minShapes, maxShapes)
	cfg.Shapes = make([]ShapeKind, k)
	for i := range cfg.Shapes {
		cfg.Shapes[i] = core.Pick(rng, ShapeKinds)
	}

	cfg.Sizes = make([]float64, len(sizeRanges))
	for i, r := range sizeRanges {
		cfg.Sizes[i] = rng.Uniform(r[0], r[1])
	}

	c := rng.IntRange(minColors, maxColors)
	cfg.Colors = make([]color.NRGBA, c)
	for i := range cfg.Colors {
		cfg.Colors[i] = pal.At(rng.IntN(pal.Len()))
	}

	if !opts.Extended {
		return cfg
	}
	cfg.CircleCounts = make([]int, k)
	for i := range cfg.CircleCounts {
		cfg.CircleCounts[i] = rng.IntRange(minCircles, maxCircles)
	}
	cfg.ArcAngles = make([]float64, k)
	for i := range cfg.ArcAngles {
		cfg.ArcAngles[i] = core.Pick(rng, ArcAngles)
	}
	cfg.WedgeAngles = make([]float64, k)
	for i := range cfg.WedgeAngles {
		cfg.WedgeAngles[i] = core.Pick(rng, WedgeAngles)
	}
	return cfg
}
