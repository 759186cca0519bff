// Package particles generates the decorative particle layers. Generation is
// a pure function of a random source and a field description; the result is
// never mutated afterwards, and Sample turns a particle plus a point in time
// into the frame to draw.
package particles

import (
	"math/rand/v2"
	"time"
)

// Kind distinguishes how a particle is drawn.
type Kind int

const (
	KindHeart Kind = iota
	KindOrb
	KindDot
	KindRing
	KindDiamond
	KindStreak
)

func (k Kind) String() string {
	switch k {
	case KindHeart:
		return "heart"
	case KindOrb:
		return "orb"
	case KindDot:
		return "dot"
	case KindRing:
		return "ring"
	case KindDiamond:
		return "diamond"
	case KindStreak:
		return "streak"
	default:
		return "unknown"
	}
}

// Motion names the looping animation a field uses.
type Motion int

const (
	MotionDriftUp Motion = iota
	MotionFloat
	MotionTwinkle
	MotionFall
	MotionRise
)

// Range is an inclusive-exclusive span [Min, Min+Span).
type Range struct {
	Min  float64
	Span float64
}

func (r Range) draw(rng *rand.Rand) float64 {
	if r.Span <= 0 {
		return r.Min
	}
	return r.Min + rng.Float64()*r.Span
}

// Contains reports whether v could have been drawn from r.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Min+r.Span
}

// Colour is an RGBA colour with alpha in [0, 1].
type Colour struct {
	R, G, B uint8
	A       float64
}

// Field describes one particle layer.
type Field struct {
	Name     string
	Count    int
	Motion   Motion
	Kinds    []Kind
	Left     Range // percent of viewport width
	Top      Range // percent of viewport height
	Size     Range
	Width    Range
	Duration Range // seconds
	Delay    Range // seconds
	Opacity  Range
	Angle    Range // degrees
	Blur     Range
	Binary   bool // blur is either 0 or 1
	Palette  []Colour
	Pause    time.Duration // idle time between loops
}

// Particle is one generated element. Index is its only identity.
type Particle struct {
	Index    int
	Kind     Kind
	Left     float64
	Top      float64
	Size     float64
	Width    float64
	Duration time.Duration
	Delay    time.Duration
	Opacity  float64
	Angle    float64
	Blur     float64
	Colour   Colour
}

// Generate draws field.Count particles from rng. The same source state and
// field always yield the same ordered sequence.
func Generate(rng *rand.Rand, field Field) []Particle {
	if field.Count <= 0 {
		return nil
	}
	out := make([]Particle, field.Count)
	for i := range out {
		p := Particle{
			Index:    i,
			Left:     field.Left.draw(rng),
			Top:      field.Top.draw(rng),
			Size:     field.Size.draw(rng),
			Width:    field.Width.draw(rng),
			Duration: seconds(field.Duration.draw(rng)),
			Delay:    seconds(field.Delay.draw(rng)),
			Opacity:  field.Opacity.draw(rng),
			Angle:    field.Angle.draw(rng),
		}
		if len(field.Kinds) > 0 {
			p.Kind = field.Kinds[rng.IntN(len(field.Kinds))]
		}
		if len(field.Palette) > 0 {
			p.Colour = field.Palette[rng.IntN(len(field.Palette))]
		}
		if field.Binary {
			if rng.Float64() > 0.5 {
				p.Blur = 1
			}
		} else {
			p.Blur = field.Blur.draw(rng)
		}
		out[i] = p
	}
	return out
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
