// Package confetti simulates the full-screen particle burst shown when the
// proposal is accepted.
package confetti

import (
	"math"
	"math/rand/v2"
	"time"
)

// DefaultPalette is the burst palette, as hex strings.
var DefaultPalette = []string{
	"#f472b6", "#fb7185", "#ec4899", "#f43f5e",
	"#f9a8d4", "#fda4af", "#a855f7", "#fbbf24",
}

var glyphs = []rune{'▪', '▫', '•', '◆', '▴', '✦', '❤', '*'}

// Options parameterise a burst. Physics values are in cells per second
// (squared for accelerations).
type Options struct {
	Width    int
	Height   int
	Count    int
	Palette  []string
	Recycle  bool
	Gravity  float64
	Wind     float64
	Opacity  float64
	MaxSpeed float64
}

// DefaultOptions mirrors the stock burst: 250 pieces, recycled, light
// gravity and wind, 0.8 opacity.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:    width,
		Height:   height,
		Count:    250,
		Palette:  DefaultPalette,
		Recycle:  true,
		Gravity:  18,
		Wind:     4.5,
		Opacity:  0.8,
		MaxSpeed: 14,
	}
}

// Piece is one confetti particle.
type Piece struct {
	X, Y   float64
	VX, VY float64
	Colour string
	Glyph  rune
}

// Burst is the running effect.
type Burst struct {
	opts    Options
	rng     *rand.Rand
	pieces  []Piece
	enabled bool
}

// New creates an enabled burst with all pieces spawned above the top edge.
func New(opts Options, rng *rand.Rand) *Burst {
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}
	if opts.Count < 0 {
		opts.Count = 0
	}
	if opts.MaxSpeed <= 0 {
		opts.MaxSpeed = 14
	}
	b := &Burst{opts: opts, rng: rng, enabled: true}
	b.pieces = make([]Piece, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		p := b.spawn()
		// Stagger the first wave so the pieces do not arrive as one line.
		p.Y = -b.rng.Float64() * float64(max(opts.Height, 1))
		b.pieces = append(b.pieces, p)
	}
	return b
}

func (b *Burst) spawn() Piece {
	return Piece{
		X:      b.rng.Float64() * float64(b.opts.Width),
		Y:      -1,
		VX:     (b.rng.Float64()*2 - 1) * 3,
		VY:     2 + b.rng.Float64()*4,
		Colour: b.opts.Palette[b.rng.IntN(len(b.opts.Palette))],
		Glyph:  glyphs[b.rng.IntN(len(glyphs))],
	}
}

// Step advances the simulation by dt. Disabled bursts do nothing.
func (b *Burst) Step(dt time.Duration) {
	if !b.enabled || dt <= 0 {
		return
	}
	s := dt.Seconds()
	w, h := float64(b.opts.Width), float64(b.opts.Height)

	out := b.pieces[:0]
	for _, p := range b.pieces {
		p.VY = math.Min(p.VY+b.opts.Gravity*s, b.opts.MaxSpeed)
		p.VX = math.Max(math.Min(p.VX+b.opts.Wind*s, b.opts.MaxSpeed), -b.opts.MaxSpeed)
		p.X += p.VX * s
		p.Y += p.VY * s

		if w > 0 {
			p.X = math.Mod(p.X, w)
			if p.X < 0 {
				p.X += w
			}
			if p.X >= w {
				p.X = 0
			}
		}
		if p.Y >= h {
			if !b.opts.Recycle {
				continue
			}
			p = b.spawn()
		}
		out = append(out, p)
	}
	b.pieces = out
}

// Resize updates the bounds used for wrapping and respawning.
func (b *Burst) Resize(width, height int) {
	b.opts.Width = width
	b.opts.Height = height
}

// SetEnabled toggles the effect. A disabled burst renders nothing.
func (b *Burst) SetEnabled(on bool) {
	b.enabled = on
}

// Enabled reports whether the burst is running.
func (b *Burst) Enabled() bool {
	return b.enabled
}

// Opacity returns the configured piece opacity.
func (b *Burst) Opacity() float64 {
	return b.opts.Opacity
}

// Pieces returns the visible pieces. It is empty while disabled.
func (b *Burst) Pieces() []Piece {
	if !b.enabled {
		return nil
	}
	return b.pieces
}
