package render

import (
	"math"

	"github.com/lixenwraith/monster-shooter/constant"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// Layout maps terminal cells to field units
// The play field fills every row except the status rows at the bottom
type Layout struct {
	Cols, Rows int
	CellW      float64
	CellH      float64
}

// NewLayout builds a layout for a terminal of cols x rows
func NewLayout(cols, rows int, cellW, cellH float64) Layout {
	if cellW <= 0 {
		cellW = constant.CellWidth
	}
	if cellH <= 0 {
		cellH = constant.CellHeight
	}
	return Layout{Cols: max(cols, 0), Rows: max(rows, 0), CellW: cellW, CellH: cellH}
}

// FieldRows is the number of rows available to the play field
func (l Layout) FieldRows() int {
	return max(l.Rows-constant.StatusRows, 0)
}

// StatusRow is the first row below the field
func (l Layout) StatusRow() int {
	return l.FieldRows()
}

// FieldSize returns the play field extent in field units
func (l Layout) FieldSize() (w, h float64) {
	return float64(l.Cols) * l.CellW, float64(l.FieldRows()) * l.CellH
}

// CellCenter converts a cell to the field point at its center
func (l Layout) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V((float64(x)+0.5)*l.CellW, (float64(y)+0.5)*l.CellH)
}

// FieldToCell returns the cell containing p
func (l Layout) FieldToCell(p vmath.Vec2) (x, y int) {
	return int(math.Floor(p.X / l.CellW)), int(math.Floor(p.Y / l.CellH))
}

// InField reports whether the cell lies inside the play field
func (l Layout) InField(x, y int) bool {
	return x >= 0 && x < l.Cols && y >= 0 && y < l.FieldRows()
}

// Span returns the cell rectangle covered by an extent of w x h centered on p
// Extents always cover at least one cell
func (l Layout) Span(p vmath.Vec2, w, h float64) (x0, y0, cols, rows int) {
	cols = max(int(math.Round(w/l.CellW)), 1)
	rows = max(int(math.Round(h/l.CellH)), 1)
	spanW := float64(cols) * l.CellW
	spanH := float64(rows) * l.CellH
	x0 = int(math.Floor((p.X-spanW/2)/l.CellW + 0.5))
	y0 = int(math.Floor((p.Y-spanH/2)/l.CellH + 0.5))
	return x0, y0, cols, rows
}
