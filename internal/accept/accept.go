// Package accept implements the single-shot affirmative control.
package accept

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/alexisbeaulieu97/valentine/internal/anim"
	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

const (
	DefaultLabel   = "Yes, I'd love to"
	ActivatedLabel = "♥"
	DefaultDelay   = 200 * time.Millisecond

	GrowStep = 0.12
	MaxScale = 1.8

	morphDuration = 500 * time.Millisecond
)

// Control is the accept button. It can be activated once.
type Control struct {
	timers scheduler.Timers
	delay  time.Duration
	label  string

	scale       float64
	activated   bool
	completed   bool
	activatedAt time.Duration
	morph       *anim.Track
}

// New creates an idle control. A zero delay uses DefaultDelay; an empty
// label uses DefaultLabel.
func New(label string, delay time.Duration, timers scheduler.Timers) *Control {
	if label == "" {
		label = DefaultLabel
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Control{timers: timers, delay: delay, label: label, scale: 1}
}

// Grow enlarges the control after a decline interaction and returns the new
// scale. It has no effect once activated.
func (c *Control) Grow() float64 {
	if c.activated {
		return c.scale
	}
	c.scale = math.Min(c.scale+GrowStep, MaxScale)
	return c.scale
}

// OnActivate marks the control activated and invokes onComplete once after
// the configured delay. Later calls return false and change nothing.
func (c *Control) OnActivate(onComplete func()) bool {
	if c.activated {
		return false
	}
	c.activated = true
	c.activatedAt = c.timers.Now()
	c.morph = anim.NewTrack(morphDuration, ease.OutQuint,
		[]float64{c.scale, 1.3 * c.scale, 0.9 * c.scale}, nil)

	c.timers.After(c.delay, func() {
		c.completed = true
		if onComplete != nil {
			onComplete()
		}
	})
	return true
}

// Activated reports whether the control has been pressed.
func (c *Control) Activated() bool {
	return c.activated
}

// Completed reports whether the completion callback has run.
func (c *Control) Completed() bool {
	return c.completed
}

// Label is the text currently shown on the control.
func (c *Control) Label() string {
	if c.activated {
		return ActivatedLabel
	}
	return c.label
}

// Scale is the resting scale.
func (c *Control) Scale() float64 {
	return c.scale
}

// DisplayScale includes the activation pulse.
func (c *Control) DisplayScale() float64 {
	if c.morph == nil {
		return c.scale
	}
	return c.morph.At(c.timers.Now() - c.activatedAt)
}
