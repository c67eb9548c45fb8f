//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sketchbox/internal/core"
)

type gridProvider interface {
	Grid() core.Grid
}

// Overlay draws optional guides on top of the canvas.
type Overlay struct {
	scale      int
	showGuides bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles guides on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGuides = !o.showGuides
	}
}

// Draw renders the overlay for sketch onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, sketch core.Sketch, w, h int) {
	if !o.showGuides || w <= 0 || h <= 0 {
		return
	}
	scale := float64(o.scale)
	if scale <= 0 {
		scale = 1
	}
	fw, fh := float64(w)*scale, float64(h)*scale

	if provider, ok := sketch.(gridProvider); ok {
		xs, ys := guideLines(provider.Grid())
		for _, x := range xs {
			o.drawLine(screen, x*scale, 0, x*scale, fh, 1, guideColor)
		}
		for _, y := range ys {
			o.drawLine(screen, 0, y*scale, fw, y*scale, 1, guideColor)
		}
	}
	o.drawLine(screen, fw/2, fh/2-crossArm, fw/2, fh/2+crossArm, 1, centerColor)
	o.drawLine(screen, fw/2-crossArm, fh/2, fw/2+crossArm, fh/2, 1, centerColor)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const crossArm = 6

var (
	guideColor  = color.NRGBA{R: 255, G: 64, B: 128, A: 160}
	centerColor = color.NRGBA{R: 64, G: 200, B: 255, A: 200}
)
