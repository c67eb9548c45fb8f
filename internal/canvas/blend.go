package canvas

import (
	"image"
	"math"
)

// blendChannel applies the separable blend function B(cb, cs) to normalised,
// non-premultiplied channel values.
func blendChannel(mode BlendMode, cb, cs float64) float64 {
	switch mode {
	case BlendMultiply:
		return cb * cs
	case BlendScreen:
		return cb + cs - cb*cs
	case BlendDarkest:
		return math.Min(cb, cs)
	case BlendLightest:
		return math.Max(cb, cs)
	case BlendDifference:
		return math.Abs(cb - cs)
	case BlendExclusion:
		return cb + cs - 2*cb*cs
	case BlendOverlay:
		// Overlay is hard-light with the layers swapped.
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	default:
		return cs
	}
}

// compositeRect blends the premultiplied pixels of src inside rect onto dst
// and clears them from src. Both images must share bounds. Add follows the
// "lighter" compositing operator rather than a separable blend.
func compositeRect(dst, src *image.RGBA, rect image.Rectangle, mode BlendMode) {
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := dst.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x, off = x+1, off+4 {
			s := src.Pix[off : off+4 : off+4]
			if s[3] == 0 {
				continue
			}
			d := dst.Pix[off : off+4 : off+4]
			blendPixel(d, s, mode)
			s[0], s[1], s[2], s[3] = 0, 0, 0, 0
		}
	}
}

// blendPixel composites one premultiplied source pixel onto a premultiplied
// backdrop pixel in place.
//
//	co = as*(1-ab)*Cs + as*ab*B(Cb, Cs) + (1-as)*ab*Cb
//	ao = as + ab*(1-as)
func blendPixel(d, s []uint8, mode BlendMode) {
	as := float64(s[3]) / 255
	ab := float64(d[3]) / 255
	ao := as + ab*(1-as)
	if mode == BlendAdd {
		ao = math.Min(as+ab, 1)
	}

	for i := 0; i < 3; i++ {
		ps := float64(s[i]) / 255
		pb := float64(d[i]) / 255

		var co float64
		if mode == BlendAdd {
			co = ps + pb
		} else {
			cs := unpremultiply(ps, as)
			cb := unpremultiply(pb, ab)
			co = as*(1-ab)*cs + as*ab*blendChannel(mode, cb, cs) + (1-as)*pb
		}
		if co > ao {
			co = ao
		}
		d[i] = toByte(co)
	}
	d[3] = toByte(ao)
}

func unpremultiply(c, a float64) float64 {
	if a <= 0 {
		return 0
	}
	v := c / a
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
