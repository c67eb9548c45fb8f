//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sketchbox/internal/core"
)

// HUD renders the parameter panel to the right of the canvas.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []line
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the panel contents from sketch and st.
func (h *HUD) Update(sketch core.Sketch, st Status) {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := sketch.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = panelLines(snap, st)
}

// Draw paints the panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for i, l := range h.lines {
		if i > 0 {
			y += lineHeight
			if l.kind == lineGroup || (l.kind == lineStatus && h.lines[i-1].kind != lineStatus) ||
				(l.kind == lineHelp && h.lines[i-1].kind != lineHelp) {
				y += sectionGap
			}
		}
		switch l.kind {
		case lineTitle:
			text.Draw(h.panel, l.label, face, panelPadding, y, titleColor)
		case lineGroup:
			text.Draw(h.panel, l.label, face, panelPadding, y, groupColor)
		case lineHelp:
			text.Draw(h.panel, l.label, face, panelPadding, y, mutedColor)
		default:
			text.Draw(h.panel, l.label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, l.value)
			text.Draw(h.panel, l.value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
		}
	}
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	mutedColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
	sectionGap     = 8
	indent         = 8
)
