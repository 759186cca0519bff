// Package decline implements the evasive "No" control: every interaction
// relocates it to a random spot, shrinks it, fades it and swaps its label.
package decline

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

const (
	scaleStep    = 0.07
	scaleFloor   = 0.4
	opacityStep  = 0.06
	opacityFloor = 0.3

	rotationBase = 5.0
	rotationStep = 2.0

	// DefaultTrailLimit caps the ghost trail left behind by the control.
	DefaultTrailLimit = 6
	// DefaultTrailFade is how long a ghost stays visible.
	DefaultTrailFade = 800 * time.Millisecond
	// DefaultAdvisoryDuration is how long the touch advisory stays up.
	DefaultAdvisoryDuration = 2000 * time.Millisecond

	springFrequency = 20.0
	springDamping   = 0.625
)

// DefaultLabels is the cyclic label list the control walks through.
var DefaultLabels = []string{
	"No", "Nope", "Hmm...", "😢", "...", "🥺", "Fine, No", "💔", "Still no?", "😭",
}

// DefaultMessages is the cyclic advisory list shown on touch-primary devices.
var DefaultMessages = []string{
	"Are you sure?",
	"Really? Think again!",
	"Please? Pretty please?",
	"Don't do this to me!",
	"I'll be sad forever!",
	"You're breaking my heart!",
	"Noooo! Try again!",
	"The right answer is Yes!",
	"Just click Yes already!",
	"I won't give up!",
}

// Point is a position in viewport cells.
type Point struct {
	X float64
	Y float64
}

// Viewport is the drawable area in cells.
type Viewport struct {
	Width  int
	Height int
}

// Footprint is the nominal size of the control in cells.
type Footprint struct {
	Width  float64
	Height float64
}

// TrailEntry is a ghost of a previous position.
type TrailEntry struct {
	ID        int
	Pos       Point
	Scale     float64
	CreatedAt time.Duration
}

// Options configure a Control. Zero values fall back to defaults.
type Options struct {
	Labels           []string
	Messages         []string
	Footprint        Footprint
	Margin           float64
	TrailLimit       int
	AdvisoryDuration time.Duration
	FPS              int
}

// Control is the decline-control state machine.
type Control struct {
	opts   Options
	rng    *rand.Rand
	timers scheduler.Timers

	attempts int
	scale    float64
	opacity  float64
	rotation float64
	label    string

	moved   bool
	home    Point
	target  Point
	trail   []TrailEntry
	trailID int

	advisory      string
	advisoryTimer scheduler.TimerID

	spring  harmonica.Spring
	shown   Point
	velX    float64
	velY    float64
	shownSc float64
	velSc   float64
}

// New creates a control in its initial state.
func New(opts Options, rng *rand.Rand, timers scheduler.Timers) *Control {
	if len(opts.Labels) == 0 {
		opts.Labels = DefaultLabels
	}
	if len(opts.Messages) == 0 {
		opts.Messages = DefaultMessages
	}
	if opts.Footprint.Width <= 0 || opts.Footprint.Height <= 0 {
		opts.Footprint = Footprint{Width: 12, Height: 3}
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.TrailLimit <= 0 {
		opts.TrailLimit = DefaultTrailLimit
	}
	if opts.AdvisoryDuration <= 0 {
		opts.AdvisoryDuration = DefaultAdvisoryDuration
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	return &Control{
		opts:    opts,
		rng:     rng,
		timers:  timers,
		scale:   1,
		opacity: 1,
		label:   opts.Labels[0],
		spring:  harmonica.NewSpring(harmonica.FPS(opts.FPS), springFrequency, springDamping),
		shownSc: 1,
	}
}

// ScaleFor returns the scale after n attempts.
func ScaleFor(n int) float64 {
	return math.Max(1-float64(n)*scaleStep, scaleFloor)
}

// OpacityFor returns the opacity after n attempts.
func OpacityFor(n int) float64 {
	return math.Max(1-float64(n)*opacityStep, opacityFloor)
}

// Bounds returns the range the control's centre may be placed in along one
// axis. When the viewport is too small the range collapses to its centre.
func Bounds(extent, margin, size float64) (lo, hi float64) {
	lo = margin + size/2
	hi = extent - margin - size/2
	if hi < lo {
		mid := extent / 2
		return mid, mid
	}
	return lo, hi
}

// OnInteract applies one interaction: hover entry on pointer devices,
// activation on touch devices. It never fails.
func (c *Control) OnInteract(vp Viewport, touchPrimary bool) {
	c.attempts++
	n := c.attempts

	c.scale = ScaleFor(n)
	c.opacity = OpacityFor(n)

	sign := 1.0
	if c.rng.Float64() <= 0.5 {
		sign = -1
	}
	c.rotation += sign * (rotationBase + float64(n)*rotationStep)
	c.label = c.opts.Labels[n%len(c.opts.Labels)]

	if touchPrimary {
		c.showAdvisory(c.opts.Messages[n%len(c.opts.Messages)])
	}

	c.relocate(vp)
}

func (c *Control) relocate(vp Viewport) {
	fp := c.opts.Footprint
	minX, maxX := Bounds(float64(vp.Width), c.opts.Margin, fp.Width)
	minY, maxY := Bounds(float64(vp.Height), c.opts.Margin, fp.Height)

	next := Point{
		X: minX + c.rng.Float64()*(maxX-minX),
		Y: minY + c.rng.Float64()*(maxY-minY),
	}

	if c.moved {
		c.trailID++
		c.trail = append(c.trail, TrailEntry{
			ID:        c.trailID,
			Pos:       c.target,
			Scale:     c.scale,
			CreatedAt: c.timers.Now(),
		})
		if over := len(c.trail) - c.opts.TrailLimit; over > 0 {
			c.trail = append(c.trail[:0], c.trail[over:]...)
		}
	} else {
		c.shown = c.home
	}

	c.target = next
	c.moved = true
}

func (c *Control) showAdvisory(msg string) {
	if c.advisoryTimer != 0 {
		c.timers.Cancel(c.advisoryTimer)
	}
	c.advisory = msg
	c.advisoryTimer = c.timers.After(c.opts.AdvisoryDuration, func() {
		c.advisory = ""
		c.advisoryTimer = 0
	})
}

// SetHome sets the in-layout resting position used until the first move.
func (c *Control) SetHome(p Point) {
	c.home = p
	if !c.moved {
		c.shown = p
	}
}

// Update advances the spring that carries the displayed position and scale
// toward their targets. Call once per frame.
func (c *Control) Update() {
	if !c.moved {
		c.shown = c.home
		return
	}
	c.shown.X, c.velX = c.spring.Update(c.shown.X, c.velX, c.target.X)
	c.shown.Y, c.velY = c.spring.Update(c.shown.Y, c.velY, c.target.Y)
	c.shownSc, c.velSc = c.spring.Update(c.shownSc, c.velSc, c.scale)
}

// Attempts returns the number of interactions so far.
func (c *Control) Attempts() int { return c.attempts }

// Scale returns the target scale.
func (c *Control) Scale() float64 { return c.scale }

// DisplayScale returns the spring-animated scale.
func (c *Control) DisplayScale() float64 { return c.shownSc }

// Opacity returns the current opacity.
func (c *Control) Opacity() float64 { return c.opacity }

// Rotation returns the accumulated rotation in degrees.
func (c *Control) Rotation() float64 { return c.rotation }

// Label returns the current label.
func (c *Control) Label() string { return c.label }

// Moved reports whether the control has left its home position.
func (c *Control) Moved() bool { return c.moved }

// Target returns the position the control is heading to.
func (c *Control) Target() Point { return c.target }

// Position returns the displayed (spring-animated) centre.
func (c *Control) Position() Point { return c.shown }

// Footprint returns the nominal footprint used for placement.
func (c *Control) Footprint() Footprint { return c.opts.Footprint }

// Trail returns a copy of the ghost trail, oldest first.
func (c *Control) Trail() []TrailEntry {
	out := make([]TrailEntry, len(c.trail))
	copy(out, c.trail)
	return out
}

// Advisory returns the active advisory message and whether one is shown.
func (c *Control) Advisory() (string, bool) {
	return c.advisory, c.advisory != ""
}
