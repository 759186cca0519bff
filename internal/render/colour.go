package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a #rrggbb colour. Invalid input yields black.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Fade blends fg toward bg; alpha 1 keeps fg, alpha 0 yields bg. Terminals
// have no transparency, so opacity is expressed this way.
func Fade(fg, bg colorful.Color, alpha float64) colorful.Color {
	alpha = clamp01(alpha)
	return bg.BlendRgb(fg, alpha).Clamped()
}

// Gradient returns the colour at t in [0, 1] along evenly spaced stops,
// blended in Lab space.
func Gradient(t float64, stops ...colorful.Color) colorful.Color {
	switch len(stops) {
	case 0:
		return colorful.Color{}
	case 1:
		return stops[0]
	}
	t = clamp01(t)
	pos := t * float64(len(stops)-1)
	i := int(math.Floor(pos))
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], pos-float64(i)).Clamped()
}

// Radial returns the weight in [0, 1] of a glow centred on (cx, cy) with the
// given radii, falling off linearly to zero at the ellipse edge.
func Radial(x, y, cx, cy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 0
	}
	dx := (x - cx) / rx
	dy := (y - cy) / ry
	return clamp01(1 - math.Sqrt(dx*dx+dy*dy))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
