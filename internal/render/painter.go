//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads canvas pixels to an ebiten image and blits them scaled.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a w×h canvas.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
	fillSolidRGBA(p.buf, color.Black)
	return p
}

// Blit draws src onto screen at the given integer scale. A nil src or one of
// a different size repaints the last uploaded pixels.
func (p *Painter) Blit(screen *ebiten.Image, src *image.RGBA, scale int) {
	if scale <= 0 {
		scale = 1
	}
	if src != nil && src.Bounds().Dx() == p.w && src.Bounds().Dy() == p.h {
		fillRGBA(p.buf, src)
	}
	p.img.WritePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(p.img, op)
}

// Size returns the canvas dimensions the painter was built for.
func (p *Painter) Size() (int, int) { return p.w, p.h }
