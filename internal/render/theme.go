package render

import "github.com/lucasb-eyer/go-colorful"

// Palette used across both screens.
var (
	Background = Hex("#0a0a0a")

	Pink400  = Hex("#f472b6")
	Pink500  = Hex("#ec4899")
	Pink300  = Hex("#f9a8d4")
	Rose400  = Hex("#fb7185")
	Rose500  = Hex("#f43f5e")
	Rose300  = Hex("#fda4af")
	Rose700  = Hex("#be123c")
	Purple   = Hex("#a855f7")
	Amber    = Hex("#fbbf24")
	Gray300  = Hex("#d1d5db")
	Gray400  = Hex("#9ca3af")
	Gray500  = Hex("#6b7280")
	Gray600  = Hex("#4b5563")
	Gray700  = Hex("#374151")
	CardFill = Hex("#151015")
)

// Glows are the soft radial tints painted behind the proposal page.
type Glow struct {
	CX, CY   float64 // fraction of the viewport
	RX, RY   float64 // fraction of the viewport
	Colour   colorful.Color
	Strength float64
}

var Glows = []Glow{
	{CX: 0.2, CY: 0, RX: 0.5, RY: 0.5, Colour: RGB(190, 24, 93), Strength: 0.12},
	{CX: 0.8, CY: 0.1, RX: 0.5, RY: 0.5, Colour: RGB(244, 63, 94), Strength: 0.08},
	{CX: 0.5, CY: 1, RX: 0.5, RY: 0.5, Colour: RGB(236, 72, 153), Strength: 0.10},
}

// PaintBackdrop fills the canvas background with the page glows.
func (c *Canvas) PaintBackdrop(glows []Glow) {
	w, h := float64(c.w), float64(c.h)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			bg := c.bg
			for _, g := range glows {
				weight := Radial(float64(x), float64(y), g.CX*w, g.CY*h, g.RX*w, g.RY*h)
				if weight > 0 {
					bg = Fade(g.Colour, bg, weight*g.Strength)
				}
			}
			c.SetBG(x, y, bg)
		}
	}
}
