package render

import (
	"image"
	"image/color"
)

// Frame is a surface whose pixels can be read back.
type Frame interface {
	Image() *image.RGBA
}

// fillRGBA copies src into buf as tightly packed RGBA rows. buf must hold
// 4*w*h bytes for the bounds of src.
func fillRGBA(buf []byte, src *image.RGBA) {
	b := src.Bounds()
	row := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(buf[y*row:(y+1)*row], src.Pix[off:off+row])
	}
}

// fillSolidRGBA clears buf to a single colour, used before the first frame.
func fillSolidRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
