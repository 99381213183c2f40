package graphics

import (
	"github.com/gdamore/tcell/v2"

	"github.com/notargets/gotrimesh/geometry2D"
)

func toCell(pt geometry2D.Point, cols, rows int) (col, row int) {
	col = int(pt.X[0]*float64(cols-1) + 0.5)
	row = int((1-pt.X[1])*float64(rows-1) + 0.5)
	return
}

func edgeGlyph(dc, dr int) rune {
	switch {
	case dr == 0:
		return '-'
	case dc == 0:
		return '|'
	case (dc > 0) == (dr > 0):
		return '\\'
	default:
		return '/'
	}
}

// drawLine rasterizes the segment c0,r0 - c1,r1 with Bresenham's algorithm
func drawLine(grid [][]rune, c0, r0, c1, r1 int) {
	var (
		dc, dr = c1 - c0, r1 - r0
		glyph  = edgeGlyph(dc, dr)
		sc, sr = 1, 1
	)
	if dc < 0 {
		dc, sc = -dc, -1
	}
	if dr < 0 {
		dr, sr = -dr, -1
	}
	e := dc - dr
	for {
		grid[r0][c0] = glyph
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 > -dr {
			e -= dr
			c0 += sc
		}
		if e2 < dc {
			e += dc
			r0 += sr
		}
	}
}

// Rasterize draws the mesh on a cols x rows character grid, edges as line
// glyphs and vertices as '+'
func Rasterize(rm *geometry2D.RectMesh, cols, rows int) (grid [][]rune) {
	if cols < 1 || rows < 1 {
		return
	}
	grid = make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	for k := 0; k < rm.NumTriangles(); k++ {
		pts := rm.TriangleVertices(k)
		for n := 0; n < 3; n++ {
			c0, r0 := toCell(pts[n], cols, rows)
			c1, r1 := toCell(pts[(n+1)%3], cols, rows)
			drawLine(grid, c0, r0, c1, r1)
		}
	}
	for i := 0; i < rm.NumVertices(); i++ {
		c, r := toCell(rm.Vertex(i), cols, rows)
		grid[r][c] = '+'
	}
	return
}

func drawScreen(screen tcell.Screen, rm *geometry2D.RectMesh) {
	var (
		cols, rows = screen.Size()
		edgeStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
		vertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	)
	screen.Clear()
	if rows < 1 {
		screen.Show()
		return
	}
	// Leave the last row for the status line
	grid := Rasterize(rm, cols, rows-1)
	for r, line := range grid {
		for c, ch := range line {
			style := edgeStyle
			if ch == '+' {
				style = vertStyle
			}
			screen.SetContent(c, r, ch, nil, style)
		}
	}
	for c, ch := range "Triangulation - press any key to exit" {
		if c < cols {
			screen.SetContent(c, rows-1, ch, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}

// ShowTerminal draws the mesh on an initialized screen and blocks until a key
// is pressed, redrawing on resize
func ShowTerminal(screen tcell.Screen, rm *geometry2D.RectMesh) {
	drawScreen(screen, rm)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			drawScreen(screen, rm)
		}
	}
}

func RunTerminal(rm *geometry2D.RectMesh) (err error) {
	var (
		screen tcell.Screen
	)
	if screen, err = tcell.NewScreen(); err != nil {
		return
	}
	if err = screen.Init(); err != nil {
		return
	}
	defer screen.Fini()
	ShowTerminal(screen, rm)
	return
}
