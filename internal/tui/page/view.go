package page

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/valentine/internal/celebration"
	"github.com/alexisbeaulieu97/valentine/internal/decline"
	"github.com/alexisbeaulieu97/valentine/internal/particles"
	"github.com/alexisbeaulieu97/valentine/internal/render"
	"github.com/alexisbeaulieu97/valentine/internal/stage"
	"github.com/alexisbeaulieu97/valentine/internal/typewriter"
)

// particleGain lifts the page's very faint particle alphas to something
// visible on a terminal.
const particleGain = 4

// View renders the current screen.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := m.canvas
	c.Clear()

	switch m.stage.State() {
	case stage.StateCelebration:
		m.drawCelebration(c)
	default:
		c.PaintBackdrop(render.Glows)
		m.drawLayers(c)
		m.drawProposal(c)
		m.drawOverlay(c)
	}
	return c.String()
}

func fadeIn(now, delay, dur time.Duration) float64 {
	t := now - delay
	if t <= 0 {
		return 0
	}
	if t >= dur {
		return 1
	}
	return float64(t) / float64(dur)
}

func (m *Model) drawLayers(c *render.Canvas) {
	now := m.sched.Now()
	for _, l := range m.layers {
		for _, p := range l.particles {
			drawParticle(c, p, particles.Sample(l.field, p, now))
		}
	}
}

func particleColour(p particles.Particle, f particles.Frame, bg colorful.Color) colorful.Color {
	alpha := math.Min(1, p.Colour.A*particleGain) * f.Opacity * p.Opacity
	if p.Blur > 0 && p.Kind == particles.KindHeart {
		alpha *= 0.5
	}
	return render.Fade(render.RGB(p.Colour.R, p.Colour.G, p.Colour.B), bg, alpha)
}

func drawParticle(c *render.Canvas, p particles.Particle, f particles.Frame) {
	if !f.Visible || f.Opacity <= 0 {
		return
	}
	w, h := float64(c.Width()), float64(c.Height())
	x := int(math.Round(f.X / 100 * w))
	y := int(math.Round(f.Y / 100 * h))
	bg := c.At(x, y).BG

	switch p.Kind {
	case particles.KindOrb:
		// Orbs are soft glows: tint the background around the centre.
		rx := p.Size / 16 * f.Scale
		ry := rx / 2
		for yy := y - int(ry); yy <= y+int(ry); yy++ {
			for xx := x - int(rx); xx <= x+int(rx); xx++ {
				weight := render.Radial(float64(xx), float64(yy), float64(x), float64(y), rx, ry)
				if weight <= 0 {
					continue
				}
				cell := c.At(xx, yy)
				tint := render.Fade(render.RGB(p.Colour.R, p.Colour.G, p.Colour.B), cell.BG,
					math.Min(1, p.Colour.A*particleGain)*weight*f.Opacity)
				c.SetBG(xx, yy, tint)
			}
		}
	case particles.KindStreak:
		n := max(int(p.Size/24), 1)
		col := particleColour(p, f, bg)
		for i := 0; i < n; i++ {
			c.Put(x, y+i, "╎", col, false)
		}
	default:
		c.Put(x, y, particleGlyph(p.Kind, p.Size*f.Scale), particleColour(p, f, bg), false)
	}
}

func particleGlyph(k particles.Kind, size float64) string {
	switch k {
	case particles.KindHeart:
		if size > 24 {
			return "❤"
		}
		return "♥"
	case particles.KindRing:
		return "○"
	case particles.KindDiamond:
		return "◆"
	default:
		if size > 6 {
			return "•"
		}
		return "·"
	}
}

func (m *Model) drawProposal(c *render.Canvas) {
	now := m.sched.Now()
	content := m.stage.ContentOpacity()
	bg := render.Background
	l := m.layout()
	cx := c.Width() / 2

	if a := fadeIn(now, headingDelay, revealFade) * content; a > 0 {
		c.TextCentered(cx, l.heading, m.cfg.Heading, render.Fade(render.Gray400, bg, a), false)
	}
	if a := fadeIn(now, questionDelay, revealFade) * content; a > 0 {
		drawGradientText(c, cx, l.question, m.cfg.Question, a, true, render.Pink400, render.Rose400, render.Rose300)
	}
	if a := fadeIn(now, cardDelay, revealFade) * content; a > 0 {
		m.drawCard(c, l, a)
	}
	if a := fadeIn(now, buttonsDelay, revealFade) * content; a > 0 {
		if n := m.decline.Attempts(); n > 0 {
			c.TextCentered(cx, l.caption, decline.Caption(n, m.cfg.Recipient), render.Fade(render.Rose400, bg, a*0.8), false)
		}
		m.drawAccept(c, l, a)
		m.drawTrail(c, a)
		m.drawDecline(c, a)
		if msg, ok := m.decline.Advisory(); ok {
			c.TextCentered(cx, l.advisory, msg, render.Fade(render.Pink300, bg, a), false)
		}
	}
	if a := fadeIn(now, footerDelay, time.Second) * content; a > 0 && m.cfg.Footer != "" {
		c.TextCentered(cx, l.footer, strings.ToUpper(m.cfg.Footer), render.Fade(render.Gray600, bg, a), false)
	}
	if content > 0 {
		c.TextCentered(cx, l.help, m.help.View(m.keys), render.Fade(render.Gray700, bg, content), false)
	}
}

func drawGradientText(c *render.Canvas, cx, y int, s string, alpha float64, bold bool, stops ...colorful.Color) {
	width := runewidth.StringWidth(s)
	x := cx - width/2
	used := 0
	for _, r := range s {
		t := 0.0
		if width > 1 {
			t = float64(used) / float64(width-1)
		}
		col := render.Fade(render.Gradient(t, stops...), c.At(x+used, y).BG, alpha)
		n := c.Put(x+used, y, string(r), col, bold)
		if n == 0 {
			n = runewidth.RuneWidth(r)
		}
		used += n
	}
}

func (m *Model) drawCard(c *render.Canvas, l layout, alpha float64) {
	bg := render.Background
	card := l.card
	c.FillRect(card.x, card.y, card.w, card.h, render.Fade(render.CardFill, bg, alpha))
	c.Box(card.x, card.y, card.w, card.h, lipgloss.RoundedBorder(), render.Fade(render.Pink400, bg, alpha*0.3))

	cx := card.x + card.w/2
	row := card.y + 1
	for i, rows := range l.lines {
		text, opened := m.writer.Visible(i)
		if !opened {
			row += len(rows)
			continue
		}
		shown := revealRows(rows, len([]rune(text)))
		cursorRow := -1
		if m.writer.Typing(i) {
			cursorRow = 0
			for k := range shown {
				if shown[k] != "" {
					cursorRow = k
				}
			}
		}
		for k, full := range rows {
			y := row + k
			x := cx - runewidth.StringWidth(full)/2
			var used int
			switch m.writer.Style(i) {
			case typewriter.StyleHighlight:
				used = drawGradientRun(c, x, y, shown[k], alpha, render.Pink400, render.Rose400)
			case typewriter.StyleDim:
				used = c.Text(x, y, shown[k], render.Fade(render.Gray500, bg, alpha), false)
			default:
				used = c.Text(x, y, shown[k], render.Fade(render.Gray300, bg, alpha), false)
			}
			if k == cursorRow && m.cursorOn() {
				c.Put(x+used, y, "▏", render.Fade(render.Pink400, bg, alpha*0.6), false)
			}
		}
		row += len(rows)
	}

	if m.writer.Done() {
		hearts := []float64{0.25, 0.35, 0.45}
		x := cx - 2
		for i, h := range hearts {
			c.Put(x+i*2, l.hearts, "♥", render.Fade(render.Pink400, bg, math.Min(1, h*2)*alpha), false)
		}
	}
}

func drawGradientRun(c *render.Canvas, x, y int, s string, alpha float64, from, to colorful.Color) int {
	width := runewidth.StringWidth(s)
	used := 0
	for _, r := range s {
		t := 0.0
		if width > 1 {
			t = float64(used) / float64(width-1)
		}
		n := c.Put(x+used, y, string(r), render.Fade(render.Gradient(t, from, to), c.At(x+used, y).BG, alpha), true)
		if n == 0 {
			n = runewidth.RuneWidth(r)
		}
		used += n
	}
	return used
}

// cursorOn blinks the typing cursor at 1 Hz.
func (m *Model) cursorOn() bool {
	return (m.sched.Now()/(500*time.Millisecond))%2 == 0
}

func (m *Model) drawAccept(c *render.Canvas, l layout, alpha float64) {
	r := l.accept
	bg := render.Background
	for x := r.x; x < r.x+r.w; x++ {
		t := float64(x-r.x) / math.Max(float64(r.w-1), 1)
		fill := render.Fade(render.Gradient(t, render.Pink500, render.Rose500), bg, alpha)
		for y := r.y; y < r.y+r.h; y++ {
			c.SetBG(x, y, fill)
		}
	}
	c.Box(r.x, r.y, r.w, r.h, lipgloss.RoundedBorder(), render.Fade(render.Pink300, bg, alpha))
	label := m.accept.Label()
	c.Text(r.x+(r.w-runewidth.StringWidth(label))/2, r.y+1, label, render.Fade(colorful.Color{R: 1, G: 1, B: 1}, bg, alpha), true)
}

// shear maps the decline control's rotation onto a horizontal offset per
// row; terminals cannot rotate glyphs.
func shear(rotation float64) int {
	return int(math.Round(math.Sin(rotation*math.Pi/180) * 2))
}

func (m *Model) drawDecline(c *render.Canvas, alpha float64) {
	r := m.declineRect()
	bg := render.Background
	a := alpha * m.decline.Opacity()
	fg := render.Fade(render.Gray300, bg, a)
	border := render.Fade(render.Gray500, bg, a)
	fill := render.Fade(render.Gray700, bg, a*0.5)

	label := runewidth.Truncate(m.decline.Label(), max(r.w-2, 1), "")
	if r.h == 1 {
		c.FillRect(r.x, r.y, r.w, 1, fill)
		c.Text(r.x+(r.w-runewidth.StringWidth(label))/2, r.y, label, fg, false)
		return
	}

	k := shear(m.decline.Rotation())
	b := lipgloss.RoundedBorder()
	c.FillRect(r.x, r.y+1, r.w, 1, fill)
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		c.Put(x-k, r.y, b.Top, border, false)
		c.Put(x+k, r.y+2, b.Bottom, border, false)
	}
	c.Put(r.x-k, r.y, b.TopLeft, border, false)
	c.Put(r.x+r.w-1-k, r.y, b.TopRight, border, false)
	c.Put(r.x, r.y+1, b.Left, border, false)
	c.Put(r.x+r.w-1, r.y+1, b.Right, border, false)
	c.Put(r.x+k, r.y+2, b.BottomLeft, border, false)
	c.Put(r.x+r.w-1+k, r.y+2, b.BottomRight, border, false)
	c.Text(r.x+(r.w-runewidth.StringWidth(label))/2, r.y+1, label, fg, false)
}

func (m *Model) drawTrail(c *render.Canvas, alpha float64) {
	now := m.sched.Now()
	bg := render.Background
	for _, e := range m.decline.Trail() {
		age := now - e.CreatedAt
		if age >= decline.DefaultTrailFade {
			continue
		}
		f := float64(age) / float64(decline.DefaultTrailFade)
		a := 0.4 * (1 - f) * alpha
		s := e.Scale * (1 - 0.5*f)
		w := max(int(math.Round(declineFootprint.Width*s)), 3)
		x := int(math.Round(e.Pos.X - float64(w)/2))
		y := int(math.Round(e.Pos.Y - 1.5))
		c.Box(x, y, w, 3, lipgloss.RoundedBorder(), render.Fade(render.Gray500, bg, a))
	}
}

// heartShape reports whether (x, y), in units of the heart's half width, is
// inside the classic implicit heart curve.
func heartShape(x, y float64) bool {
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}

func (m *Model) drawOverlay(c *render.Canvas) {
	ov := m.stage.Overlay()
	if !ov.Active {
		return
	}
	w, h := c.Width(), c.Height()
	cx, cy := float64(w)/2, float64(h)/2
	// An 80px heart is about ten cells wide; cells are twice as tall as wide.
	rx := 5 * ov.HeartScale
	ry := rx / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := c.At(x, y)
			bg := cell.BG
			if ov.WashOpacity > 0 {
				weight := render.Radial(float64(x), float64(y), cx, cy, float64(w)*0.7, float64(h)*0.7)
				wash := render.Gradient(1-weight, render.Fade(render.Pink500, render.Background, 0.4), render.Background)
				bg = render.Fade(wash, bg, ov.WashOpacity)
			}
			if ov.HeartOpacity > 0 {
				hx := (float64(x) - cx) / rx * 1.2
				hy := -(float64(y) - cy) / ry * 1.2
				if heartShape(hx, hy) {
					t := (float64(x) - (cx - rx)) / math.Max(2*rx, 1)
					bg = render.Fade(render.Gradient(t, render.Pink500, render.Rose500), bg, ov.HeartOpacity)
				}
			}
			c.SetBG(x, y, bg)
		}
	}
}

func (m *Model) drawCelebration(c *render.Canvas) {
	s := m.celebration
	if s == nil {
		return
	}
	w, h := c.Width(), c.Height()
	c.PaintBackdrop([]render.Glow{{CX: 0.5, CY: 0.4, RX: 0.6, RY: 0.6, Colour: render.Pink500, Strength: 0.08}})

	field, hearts := s.Hearts()
	for _, p := range hearts {
		drawParticle(c, p, particles.Sample(field, p, s.Elapsed()))
	}

	m.drawCelebrationContent(c, s)

	if b := s.Burst(); b != nil {
		for _, p := range b.Pieces() {
			x, y := int(p.X), int(p.Y)
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			c.Put(x, y, string(p.Glyph), render.Fade(render.Hex(p.Colour), c.At(x, y).BG, b.Opacity()), false)
		}
	}
}

func (m *Model) drawCelebrationContent(c *render.Canvas, s *celebration.Screen) {
	content := s.Content()
	w, h := c.Width(), c.Height()
	cx := w / 2
	bg := render.Background

	cardW := min(w-4, 60)
	inner := max(cardW-4, 1)
	var body [][]string
	bodyRows := 0
	for _, p := range content.Body {
		rows := wrap(p, inner)
		body = append(body, rows)
		bodyRows += len(rows)
	}
	note := wrap(content.Note, inner)
	cardH := 2 + bodyRows + len(body) + len(note) + 2

	total := 2 + 2 + 2 + cardH + 1 + 2
	y := max((h-total)/2, 0)

	if a := s.Opacity(celebration.BlockHeart); a > 0 {
		pulse := 0.5 + 0.5*math.Sin(float64(s.Elapsed())/float64(1500*time.Millisecond)*2*math.Pi)
		col := render.Gradient(pulse, render.Pink500, render.Rose500)
		c.TextCentered(cx, y, "❤", render.Fade(col, bg, a), true)
	}
	y += 2
	if a := s.Opacity(celebration.BlockTitle); a > 0 {
		drawGradientText(c, cx, y, content.Title, a, true, render.Pink400, render.Rose400, render.Rose300)
	}
	y += 2
	if a := s.Opacity(celebration.BlockSubtitle); a > 0 {
		c.TextCentered(cx, y, content.Subtitle, render.Fade(render.Gray400, bg, a), false)
	}
	y += 2

	if a := s.Opacity(celebration.BlockCard); a > 0 {
		x0 := (w - cardW) / 2
		c.FillRect(x0, y, cardW, cardH, render.Fade(render.CardFill, bg, a))
		c.Box(x0, y, cardW, cardH, lipgloss.RoundedBorder(), render.Fade(render.Pink400, bg, a*0.3))
		row := y + 1
		for i, rows := range body {
			for _, r := range rows {
				if i == len(body)-1 {
					drawNameHighlighted(c, cx, row, r, m.cfg.Recipient, a)
				} else {
					c.TextCentered(cx, row, r, render.Fade(render.Gray300, bg, a), false)
				}
				row++
			}
			row++
		}
		for _, r := range note {
			c.TextCentered(cx, row, r, render.Fade(render.Gray500, bg, a), false)
			row++
		}
		row++
		for i := 0; i < 5; i++ {
			alpha := math.Min(1, (0.3+float64(i)*0.12)*1.5) * a
			c.Put(cx-4+i*2, row, "♥", render.Fade(render.Pink400, bg, alpha), false)
		}
	}
	y += cardH + 1

	if a := s.Opacity(celebration.BlockClosing); a > 0 {
		breathe := 0.85 + 0.15*math.Sin(float64(s.Elapsed())/float64(3*time.Second)*2*math.Pi)
		drawGradientText(c, cx, y, content.Closing, a*breathe, false, render.Gray300, render.Gray400)
	}
	if a := s.Opacity(celebration.BlockSignature); a > 0 {
		c.TextCentered(cx, y+1, content.Signature, render.Fade(render.Pink400, bg, a), false)
	}
}

// drawNameHighlighted renders a centred row, colouring the recipient's name.
func drawNameHighlighted(c *render.Canvas, cx, y int, row, name string, alpha float64) {
	bg := render.Background
	x := cx - runewidth.StringWidth(row)/2
	i := strings.LastIndex(row, name)
	if name == "" || i < 0 {
		c.Text(x, y, row, render.Fade(render.Gray300, bg, alpha), false)
		return
	}
	x += c.Text(x, y, row[:i], render.Fade(render.Gray300, bg, alpha), false)
	x += drawGradientRun(c, x, y, name, alpha, render.Pink500, render.Rose500)
	c.Text(x, y, row[i+len(name):], render.Fade(render.Gray300, bg, alpha), false)
}
