package core

import "math"

const (
	noiseYWrapB = 4
	noiseYWrap  = 1 << noiseYWrapB
	noiseZWrapB = 8
	noiseZWrap  = 1 << noiseZWrapB
	noiseSize   = 4095
)

// Noise is layered value noise in the style of Processing's noise():
// smooth in every axis, roughly in [0, 1), and fully determined by its seed.
type Noise struct {
	table   [noiseSize + 1]float64
	octaves int
	falloff float64
}

// NewNoise builds a noise field from seed with 4 octaves and 0.5 falloff.
func NewNoise(seed int64) *Noise {
	n := &Noise{octaves: 4, falloff: 0.5}
	rng := NewRNG(seed)
	for i := range n.table {
		n.table[i] = rng.Float64()
	}
	return n
}

// Detail changes the number of octaves and the per-octave amplitude falloff.
func (n *Noise) Detail(octaves int, falloff float64) {
	if octaves > 0 {
		n.octaves = octaves
	}
	if falloff > 0 {
		n.falloff = falloff
	}
}

func scaledCosine(i float64) float64 {
	return 0.5 * (1 - math.Cos(i*math.Pi))
}

// At samples the field at (x, y, z). Negative coordinates are mirrored.
func (n *Noise) At(x, y, z float64) float64 {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)

	xi, yi, zi := int(x), int(y), int(z)
	xf, yf, zf := x-float64(xi), y-float64(yi), z-float64(zi)

	r := 0.0
	ampl := 0.5
	for o := 0; o < n.octaves; o++ {
		of := xi + (yi << noiseYWrapB) + (zi << noiseZWrapB)

		rxf := scaledCosine(xf)
		ryf := scaledCosine(yf)

		n1 := n.table[of&noiseSize]
		n1 += rxf * (n.table[(of+1)&noiseSize] - n1)
		n2 := n.table[(of+noiseYWrap)&noiseSize]
		n2 += rxf * (n.table[(of+noiseYWrap+1)&noiseSize] - n2)
		n1 += ryf * (n2 - n1)

		of += noiseZWrap
		n2 = n.table[of&noiseSize]
		n2 += rxf * (n.table[(of+1)&noiseSize] - n2)
		n3 := n.table[(of+noiseYWrap)&noiseSize]
		n3 += rxf * (n.table[(of+noiseYWrap+1)&noiseSize] - n3)
		n2 += ryf * (n3 - n2)

		n1 += scaledCosine(zf) * (n2 - n1)

		r += n1 * ampl
		ampl *= n.falloff

		xi, yi, zi = xi<<1, yi<<1, zi<<1
		xf, yf, zf = xf*2, yf*2, zf*2
		if xf >= 1 {
			xi++
			xf--
		}
		if yf >= 1 {
			yi++
			yf--
		}
		if zf >= 1 {
			zi++
			zf--
		}
	}
	return r
}
