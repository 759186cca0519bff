package particles

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/alexisbeaulieu97/valentine/internal/anim"
)

// Frame is what to draw for one particle at one instant. Positions are in
// percent of the viewport.
type Frame struct {
	X       float64
	Y       float64
	Opacity float64
	Scale   float64
	Visible bool
}

// loop is the normalised timeline length the motion tracks are built on; a
// sample maps the particle's phase in [0, 1] onto it.
const loop = time.Second

// motionTracks holds the keyframed channels of one motion. Nil channels are
// constant.
type motionTracks struct {
	rise    *anim.Track
	opacity *anim.Track
	scale   *anim.Track
}

func linear(values ...float64) *anim.Track {
	return anim.NewTrack(loop, ease.Linear, values, nil)
}

// tracksFor builds the keyframe channels for a motion. Tracks carry gween
// tween state, so each sample gets its own.
func tracksFor(m Motion) motionTracks {
	switch m {
	case MotionDriftUp:
		return motionTracks{opacity: linear(0, 1, 1, 1, 1, 0)}
	case MotionTwinkle:
		return motionTracks{
			rise:    linear(0, 3, 6),
			opacity: linear(0, 1, 0.6, 0),
			scale:   linear(0.5, 1.2, 1, 0.5),
		}
	case MotionFall:
		return motionTracks{opacity: linear(0, 1, 0)}
	case MotionRise:
		return motionTracks{
			rise:    linear(0, 7.5, 15),
			opacity: linear(0, 1, 0),
			scale:   linear(0, 1, 0.8),
		}
	default:
		return motionTracks{}
	}
}

func at(t *anim.Track, phase, fallback float64) float64 {
	if t == nil {
		return fallback
	}
	return t.At(time.Duration(phase * float64(loop)))
}

// Sample evaluates the field's looping animation for p at time t since the
// layer was mounted.
func Sample(field Field, p Particle, t time.Duration) Frame {
	local := t - p.Delay
	if local < 0 || p.Duration <= 0 {
		return Frame{}
	}
	cycle := p.Duration + field.Pause
	local %= cycle
	if local >= p.Duration {
		return Frame{}
	}
	phase := float64(local) / float64(p.Duration)
	tr := tracksFor(field.Motion)

	switch field.Motion {
	case MotionDriftUp:
		return Frame{
			X:       p.Left + math.Sin(phase*4*math.Pi)*3,
			Y:       105 - phase*115,
			Opacity: at(tr.opacity, phase, 1),
			Scale:   1,
			Visible: true,
		}
	case MotionFloat:
		angle := phase * 2 * math.Pi
		return Frame{
			X:       p.Left + math.Sin(angle)*5,
			Y:       p.Top + math.Cos(angle)*4 - 4,
			Opacity: 1,
			Scale:   1 + 0.1*math.Sin(angle),
			Visible: true,
		}
	case MotionTwinkle, MotionRise:
		return Frame{
			X:       p.Left,
			Y:       p.Top - at(tr.rise, phase, 0),
			Opacity: at(tr.opacity, phase, 1),
			Scale:   at(tr.scale, phase, 1),
			Visible: true,
		}
	case MotionFall:
		return Frame{
			X:       p.Left,
			Y:       -20 + phase*140,
			Opacity: at(tr.opacity, phase, 1),
			Scale:   1,
			Visible: true,
		}
	default:
		return Frame{X: p.Left, Y: p.Top, Opacity: 1, Scale: 1, Visible: true}
	}
}
