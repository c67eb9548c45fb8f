package ui

import (
	"fmt"
	"strings"

	"sketchbox/internal/core"
)

// Status is the host-side state shown under the parameters.
type Status struct {
	Sketch  string
	State   string
	Frames  int
	Reloads int
	Paused  bool
}

type lineKind uint8

const (
	lineTitle lineKind = iota
	lineGroup
	lineParam
	lineStatus
	lineHelp
)

type line struct {
	kind  lineKind
	label string
	value string
}

var helpLines = []string{
	"R redraw  SPACE pause",
	"H panel  G guides  Q quit",
}

func title(name string) string {
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// panelLines lays out the HUD text top to bottom.
func panelLines(snap core.ParameterSnapshot, st Status) []line {
	lines := []line{{kind: lineTitle, label: title(st.Sketch)}}
	for _, group := range snap.Groups {
		lines = append(lines, line{kind: lineGroup, label: group.Name})
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, line{kind: lineParam, label: label, value: p.Value})
		}
	}
	state := st.State
	if st.Paused {
		state += " (paused)"
	}
	lines = append(lines,
		line{kind: lineStatus, label: "State", value: state},
		line{kind: lineStatus, label: "Frames", value: fmt.Sprint(st.Frames)},
		line{kind: lineStatus, label: "Reloads", value: fmt.Sprint(st.Reloads)},
	)
	for _, h := range helpLines {
		lines = append(lines, line{kind: lineHelp, label: h})
	}
	return lines
}

// guideLines returns the x and y positions of interior cell borders.
func guideLines(g core.Grid) (xs, ys []float64) {
	for x := 1; x < g.Cols; x++ {
		xs = append(xs, float64(x)*g.CellW)
	}
	for y := 1; y < g.Rows; y++ {
		ys = append(ys, float64(y)*g.CellH)
	}
	return xs, ys
}
