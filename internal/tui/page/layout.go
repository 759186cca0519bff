package page

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/valentine/internal/decline"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && y >= r.y && x < r.x+r.w && y < r.y+r.h
}

// layout is the proposal screen's row plan for the current viewport.
type layout struct {
	heading  int
	question int
	card     rect
	lines    [][]string
	hearts   int
	caption  int
	buttons  int
	accept   rect
	home     decline.Point
	advisory int
	footer   int
	help     int
}

const (
	maxCardWidth = 64
	buttonGap    = 4
)

func (m *Model) layout() layout {
	w, h := m.width, m.height
	var l layout

	cardW := min(w-4, maxCardWidth)
	inner := max(cardW-4, 1)
	for i := 0; i < m.writer.Len(); i++ {
		l.lines = append(l.lines, wrap(m.writer.Full(i), inner))
	}
	textRows := 0
	for _, wrapped := range l.lines {
		textRows += len(wrapped)
	}
	cardH := textRows + 3 // border plus the hearts row

	total := 1 + 1 + 1 + cardH + 1 + 1 + int(declineFootprint.Height) + 1
	top := max((h-2-total)/2, 0)

	l.heading = top
	l.question = top + 1
	l.card = rect{x: (w - cardW) / 2, y: top + 3, w: cardW, h: cardH}
	l.hearts = l.card.y + cardH - 2
	l.caption = l.card.y + cardH + 1
	l.buttons = l.caption + 1
	l.advisory = l.buttons + int(declineFootprint.Height)
	l.footer = h - 2
	l.help = h - 1

	acceptW := m.acceptWidth()
	declineW := int(declineFootprint.Width)
	rowW := acceptW + buttonGap + declineW
	left := (w - rowW) / 2
	l.accept = rect{x: left, y: l.buttons, w: acceptW, h: 3}
	l.home = decline.Point{
		X: float64(left+acceptW+buttonGap) + declineFootprint.Width/2,
		Y: float64(l.buttons) + declineFootprint.Height/2,
	}
	return l
}

// acceptWidth grows the accept control's horizontal padding with its scale.
func (m *Model) acceptWidth() int {
	label := runewidth.StringWidth(m.accept.Label())
	pad := 2 + int(math.Round((m.accept.DisplayScale()-1)*6))
	pad = max(pad, 1)
	return label + 2*pad + 2
}

// declineRect is the decline control's current hit box.
func (m *Model) declineRect() rect {
	pos := m.decline.Position()
	s := m.decline.DisplayScale()
	w := max(int(math.Round(declineFootprint.Width*s)), 3)
	h := 3
	if s < 0.7 {
		h = 1
	}
	return rect{
		x: int(math.Round(pos.X - float64(w)/2)),
		y: int(math.Round(pos.Y - float64(h)/2)),
		w: w,
		h: h,
	}
}

// wrap breaks text into lines no wider than width. Joining the result with
// single spaces gives back text when it is single-spaced.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	cur := ""
	for _, word := range words {
		switch {
		case cur == "":
			cur = word
		case runewidth.StringWidth(cur)+1+runewidth.StringWidth(word) <= width:
			cur += " " + word
		default:
			out = append(out, cur)
			cur = word
		}
	}
	return append(out, cur)
}

// revealRows splits the first n runes of a wrapped line across its rows.
// The space consumed by each break counts as one rune.
func revealRows(rows []string, n int) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		r := []rune(row)
		if n <= 0 {
			break
		}
		take := min(n, len(r))
		out[i] = string(r[:take])
		n -= take + 1
	}
	return out
}
