// Package render draws the page into a grid of styled terminal cells and
// turns the grid into a string for bubbletea.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. A wide glyph occupies its own cell plus a
// continuation cell to its right.
type Cell struct {
	Glyph string
	FG    colorful.Color
	BG    colorful.Color
	Bold  bool
	cont  bool
}

// Canvas is a fixed-size cell grid, flat in row-major order.
type Canvas struct {
	w, h  int
	bg    colorful.Color
	cells []Cell
}

// NewCanvas allocates a canvas cleared to bg.
func NewCanvas(w, h int, bg colorful.Color) *Canvas {
	c := &Canvas{bg: bg}
	c.Resize(w, h)
	return c
}

// Resize changes the grid size and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	if cap(c.cells) >= n {
		c.cells = c.cells[:n]
	} else {
		c.cells = make([]Cell, n)
	}
	c.w, c.h = w, h
	c.Clear()
}

// Clear resets every cell to a blank on the background colour.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Glyph: " ", FG: c.bg, BG: c.bg}
	}
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Background returns the base colour.
func (c *Canvas) Background() colorful.Color { return c.bg }

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// At returns the cell at (x, y), or a blank cell outside the grid.
func (c *Canvas) At(x, y int) Cell {
	if !c.in(x, y) {
		return Cell{Glyph: " ", FG: c.bg, BG: c.bg}
	}
	return c.cells[y*c.w+x]
}

// SetBG paints the background of a cell without touching its glyph.
func (c *Canvas) SetBG(x, y int, bg colorful.Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y*c.w+x].BG = bg
}

// Put writes a single glyph and returns how many cells it used. Glyphs that
// would be cut at the right edge are dropped.
func (c *Canvas) Put(x, y int, glyph string, fg colorful.Color, bold bool) int {
	if !c.in(x, y) {
		return 0
	}
	width := runewidth.StringWidth(glyph)
	if width == 0 {
		return 0
	}
	if width > 1 && !c.in(x+width-1, y) {
		return 0
	}
	c.release(x, y)
	for i := 1; i < width; i++ {
		c.release(x+i, y)
	}

	i := y*c.w + x
	c.cells[i].Glyph = glyph
	c.cells[i].FG = fg
	c.cells[i].Bold = bold
	c.cells[i].cont = false
	for k := 1; k < width; k++ {
		cell := &c.cells[i+k]
		cell.Glyph = ""
		cell.cont = true
	}
	return width
}

// release blanks whatever wide glyph currently covers (x, y).
func (c *Canvas) release(x, y int) {
	i := y*c.w + x
	if c.cells[i].cont {
		head := x
		for head > 0 && c.cells[y*c.w+head].cont {
			head--
		}
		c.blankRun(head, y)
		return
	}
	if runewidth.StringWidth(c.cells[i].Glyph) > 1 {
		c.blankRun(x, y)
	}
}

func (c *Canvas) blankRun(x, y int) {
	i := y*c.w + x
	c.cells[i].Glyph = " "
	c.cells[i].cont = false
	for k := x + 1; k < c.w && c.cells[y*c.w+k].cont; k++ {
		c.cells[y*c.w+k].Glyph = " "
		c.cells[y*c.w+k].cont = false
	}
}

// Text writes s starting at (x, y) and returns the number of cells used.
func (c *Canvas) Text(x, y int, s string, fg colorful.Color, bold bool) int {
	used := 0
	for _, r := range s {
		n := c.Put(x+used, y, string(r), fg, bold)
		if n == 0 {
			n = runewidth.RuneWidth(r)
		}
		used += n
	}
	return used
}

// TextCentered writes s centred on column cx.
func (c *Canvas) TextCentered(cx, y int, s string, fg colorful.Color, bold bool) {
	c.Text(cx-runewidth.StringWidth(s)/2, y, s, fg, bold)
}

// FillRect paints a rectangle opaque: glyphs underneath are blanked.
func (c *Canvas) FillRect(x, y, w, h int, bg colorful.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if !c.in(xx, yy) {
				continue
			}
			c.release(xx, yy)
			cell := &c.cells[yy*c.w+xx]
			cell.Glyph = " "
			cell.BG = bg
		}
	}
}

// Box draws a border using the glyphs of b.
func (c *Canvas) Box(x, y, w, h int, b lipgloss.Border, fg colorful.Color) {
	if w < 2 || h < 2 {
		return
	}
	for xx := x + 1; xx < x+w-1; xx++ {
		c.Put(xx, y, b.Top, fg, false)
		c.Put(xx, y+h-1, b.Bottom, fg, false)
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		c.Put(x, yy, b.Left, fg, false)
		c.Put(x+w-1, yy, b.Right, fg, false)
	}
	c.Put(x, y, b.TopLeft, fg, false)
	c.Put(x+w-1, y, b.TopRight, fg, false)
	c.Put(x, y+h-1, b.BottomLeft, fg, false)
	c.Put(x+w-1, y+h-1, b.BottomRight, fg, false)
}

// PlainRow returns the glyphs of row y without styling.
func (c *Canvas) PlainRow(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		cell := c.cells[y*c.w+x]
		if cell.cont {
			continue
		}
		b.WriteString(cell.Glyph)
	}
	return b.String()
}

type runStyle struct {
	fg, bg string
	bold   bool
}

// String renders the canvas. Neighbouring cells sharing a style are emitted
// as one lipgloss run.
func (c *Canvas) String() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		var cur runStyle
		open := false
		flush := func() {
			if !open {
				return
			}
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(cur.fg)).
				Background(lipgloss.Color(cur.bg)).
				Bold(cur.bold)
			out.WriteString(st.Render(run.String()))
			run.Reset()
			open = false
		}
		for x := 0; x < c.w; x++ {
			cell := c.cells[y*c.w+x]
			if cell.cont {
				continue
			}
			s := runStyle{fg: cell.FG.Hex(), bg: cell.BG.Hex(), bold: cell.Bold}
			if open && s != cur {
				flush()
			}
			cur = s
			open = true
			run.WriteString(cell.Glyph)
		}
		flush()
		if y < c.h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
