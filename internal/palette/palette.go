// Package palette holds the fixed colour sets sketches draw from.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrEmpty is returned when a palette would contain no colours.
var ErrEmpty = errors.New("palette: no colours")

// Palette is an ordered, read-only list of colours.
type Palette struct {
	name   string
	colors []color.NRGBA
}

// Parse builds a palette from hex strings such as "#E63946".
func Parse(name string, hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return Palette{}, ErrEmpty
	}
	colors := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(strings.TrimSpace(h))
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", name, err)
		}
		r, g, b := c.RGB255()
		colors = append(colors, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return Palette{name: name, colors: colors}, nil
}

// MustParse is Parse for package-level presets.
func MustParse(name string, hexes ...string) Palette {
	p, err := Parse(name, hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the palette name.
func (p Palette) Name() string { return p.name }

// Len returns the number of colours.
func (p Palette) Len() int { return len(p.colors) }

// At returns the i-th colour.
func (p Palette) At(i int) color.NRGBA { return p.colors[i] }

// Colors returns a copy of the colours.
func (p Palette) Colors() []color.NRGBA {
	return append([]color.NRGBA(nil), p.colors...)
}

// Contains reports whether c is one of the palette colours.
func (p Palette) Contains(c color.NRGBA) bool {
	for _, pc := range p.colors {
		if pc == c {
			return true
		}
	}
	return false
}

// Hex formats a colour as "#rrggbb".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MustHex parses a single colour.
func MustHex(h string) color.NRGBA {
	return MustParse(h, h).At(0)
}
