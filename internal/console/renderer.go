package console

import (
	"fmt"
	"strings"

	"tableside/internal/domain/floor"

	"github.com/fatih/color"
)

// Room extent in layout pixels, matching the coordinate space the backend
// stores table and zone positions in.
const (
	roomWidth  = 750
	roomHeight = 450
)

var (
	availableColor = color.New(color.FgGreen)
	reservedColor  = color.New(color.FgYellow)
	occupiedColor  = color.New(color.FgRed)

	glassColor   = color.New(color.FgBlue)
	terraceColor = color.New(color.FgMagenta)
	greenColor   = color.New(color.FgHiGreen)
)

func statusColor(s floor.Status) *color.Color {
	switch s {
	case floor.StatusAvailable:
		return availableColor
	case floor.StatusReserved:
		return reservedColor
	default:
		return occupiedColor
	}
}

func zoneColor(t floor.ZoneType) *color.Color {
	switch t {
	case floor.ZoneGlass:
		return glassColor
	case floor.ZoneTerrace:
		return terraceColor
	default:
		return greenColor
	}
}

func zoneFill(t floor.ZoneType) rune {
	switch t {
	case floor.ZoneGlass:
		return '~'
	case floor.ZoneTerrace:
		return ':'
	default:
		return '"'
	}
}

// FloorRenderer projects the floor plan onto a character grid. It is a pure
// function of the table and zone collections; it holds no state of its own.
type FloorRenderer struct {
	cols int
	rows int
}

func NewFloorRenderer(cols, rows int) *FloorRenderer {
	if cols <= 0 {
		cols = 75
	}
	if rows <= 0 {
		rows = 18
	}
	return &FloorRenderer{cols: cols, rows: rows}
}

type cell struct {
	ch rune
	co *color.Color
}

func (r *FloorRenderer) scale(left, top int) (col, row int) {
	col = left * r.cols / roomWidth
	row = top * r.rows / roomHeight
	if col < 0 {
		col = 0
	}
	if col >= r.cols {
		col = r.cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= r.rows {
		row = r.rows - 1
	}
	return col, row
}

// Render draws zones beneath tables and returns the bordered grid. Table
// markers encode shape by bracket style and status by color.
func (r *FloorRenderer) Render(tables []floor.Table, zones []floor.Zone) string {
	grid := make([][]cell, r.rows)
	for i := range grid {
		grid[i] = make([]cell, r.cols)
		for j := range grid[i] {
			grid[i][j] = cell{ch: ' '}
		}
	}

	for _, z := range zones {
		c0, r0 := r.scale(z.Left, z.Top)
		c1, r1 := r.scale(z.Left+z.Width, z.Top+z.Height)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				grid[row][col] = cell{ch: zoneFill(z.Type), co: zoneColor(z.Type)}
			}
		}
	}

	for _, t := range tables {
		col, row := r.scale(t.Left, t.Top)
		r.place(grid, row, col, tableMarker(t), statusColor(t.Status))
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", r.cols) + "+\n")
	for _, rowCells := range grid {
		b.WriteString("|")
		for _, c := range rowCells {
			if c.co != nil {
				b.WriteString(c.co.Sprint(string(c.ch)))
			} else {
				b.WriteRune(c.ch)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", r.cols) + "+\n")
	return b.String()
}

func (r *FloorRenderer) place(grid [][]cell, row, col int, marker string, co *color.Color) {
	if col+len(marker) > r.cols {
		col = r.cols - len(marker)
	}
	for i, ch := range marker {
		grid[row][col+i] = cell{ch: ch, co: co}
	}
}

func tableMarker(t floor.Table) string {
	switch t.Shape() {
	case floor.ShapeRound:
		return fmt.Sprintf("(%d)", t.Number)
	case floor.ShapeRect:
		return fmt.Sprintf("[ %d ]", t.Number)
	default:
		return fmt.Sprintf("[%d]", t.Number)
	}
}

// Legend lines printed under the floor grid.
func Legend() string {
	return fmt.Sprintf("%s available  %s reserved  %s occupied  |  %s glass  %s terrace  %s green\n",
		availableColor.Sprint("[n]"),
		reservedColor.Sprint("[n]"),
		occupiedColor.Sprint("[n]"),
		glassColor.Sprint("~"),
		terraceColor.Sprint(":"),
		greenColor.Sprint(`"`),
	)
}
