package core

// Grid lays out Cols*Rows equally sized cells over a canvas in row-major
// order.
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64
}

// NewGrid divides a canvas of the given size into cols*rows cells.
func NewGrid(size Size, cols, rows int) Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return Grid{
		Cols:  cols,
		Rows:  rows,
		CellW: float64(size.W) / float64(cols),
		CellH: float64(size.H) / float64(rows),
	}
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.Cols * g.Rows }

// Index returns the linear cell index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.Cols + x }

// Coords is the inverse of Index.
func (g Grid) Coords(i int) (x, y int) { return i % g.Cols, i / g.Cols }

// Center returns the pixel centre of cell (x, y).
func (g Grid) Center(x, y int) (float64, float64) {
	return float64(x)*g.CellW + g.CellW/2, float64(y)*g.CellH + g.CellH/2
}

// CellSize is the shorter side of a cell.
func (g Grid) CellSize() float64 {
	if g.CellH < g.CellW {
		return g.CellH
	}
	return g.CellW
}
