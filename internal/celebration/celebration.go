// Package celebration is the screen shown after the proposal is accepted.
// Mounting it generates the heart field and starts a confetti burst that is
// switched off after a fixed time; unmounting cancels that timer.
package celebration

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/alexisbeaulieu97/valentine/internal/confetti"
	"github.com/alexisbeaulieu97/valentine/internal/particles"
	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

// DefaultBurstDuration is how long the confetti runs after mount.
const DefaultBurstDuration = 8 * time.Second

// Content is the text shown on the screen.
type Content struct {
	Title     string
	Subtitle  string
	Body      []string
	Note      string
	Closing   string
	Signature string
}

// DefaultContent builds the stock message for a recipient and sender.
func DefaultContent(recipient, sender string) Content {
	return Content{
		Title:    "She said yes!",
		Subtitle: "I always knew it would be you",
		Body: []string{
			"You know that feeling when everything finally makes sense?",
			fmt.Sprintf("That's what it felt like the day I met you, %s", recipient),
		},
		Note:      "I don't need a special day to tell you this — but I'll take any excuse to remind you that my favourite place in the world is wherever you are.",
		Closing:   "Yours, always.",
		Signature: "— " + sender,
	}
}

// Block identifies a part of the screen that fades in on its own schedule.
type Block int

const (
	BlockHeart Block = iota
	BlockTitle
	BlockSubtitle
	BlockCard
	BlockClosing
	BlockSignature
)

type reveal struct {
	delay    time.Duration
	duration time.Duration
	peak     float64
}

var reveals = map[Block]reveal{
	BlockHeart:     {delay: 200 * time.Millisecond, duration: 600 * time.Millisecond, peak: 1},
	BlockTitle:     {delay: 500 * time.Millisecond, duration: 800 * time.Millisecond, peak: 1},
	BlockSubtitle:  {delay: time.Second, duration: 800 * time.Millisecond, peak: 1},
	BlockCard:      {delay: 1500 * time.Millisecond, duration: 800 * time.Millisecond, peak: 1},
	BlockClosing:   {delay: 2500 * time.Millisecond, duration: time.Second, peak: 1},
	BlockSignature: {delay: 3500 * time.Millisecond, duration: time.Second, peak: 0.5},
}

// Options configure a screen.
type Options struct {
	Width         int
	Height        int
	BurstDuration time.Duration
	Content       Content
}

// Screen is the mounted celebration.
type Screen struct {
	opts   Options
	rng    *rand.Rand
	timers *scheduler.Group

	mounted   bool
	mountedAt time.Duration
	field     particles.Field
	hearts    []particles.Particle
	burst     *confetti.Burst

	onBurstEnd func()
}

// New prepares a screen. Nothing is generated until Mount.
func New(opts Options, rng *rand.Rand, timers *scheduler.Group) *Screen {
	if opts.BurstDuration <= 0 {
		opts.BurstDuration = DefaultBurstDuration
	}
	return &Screen{opts: opts, rng: rng, timers: timers, field: particles.CelebrationHearts()}
}

// OnBurstEnd registers a hook run when the confetti is switched off.
func (s *Screen) OnBurstEnd(fn func()) {
	s.onBurstEnd = fn
}

// Mount generates the hearts, starts the burst and schedules its end.
// Mounting twice is a no-op.
func (s *Screen) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.mountedAt = s.timers.Now()
	s.hearts = particles.Generate(s.rng, s.field)
	s.burst = confetti.New(confetti.DefaultOptions(s.opts.Width, s.opts.Height), s.rng)
	s.timers.After(s.opts.BurstDuration, func() {
		s.burst.SetEnabled(false)
		if s.onBurstEnd != nil {
			s.onBurstEnd()
		}
	})
}

// Unmount cancels pending timers. The screen is inert afterwards.
func (s *Screen) Unmount() {
	s.timers.CancelAll()
	s.mounted = false
}

// Mounted reports whether the screen is live.
func (s *Screen) Mounted() bool {
	return s.mounted
}

// Step advances the confetti simulation.
func (s *Screen) Step(dt time.Duration) {
	if s.mounted && s.burst != nil {
		s.burst.Step(dt)
	}
}

// Resize updates the viewport used by the burst.
func (s *Screen) Resize(width, height int) {
	s.opts.Width, s.opts.Height = width, height
	if s.burst != nil {
		s.burst.Resize(width, height)
	}
}

// Content returns the text to draw.
func (s *Screen) Content() Content {
	return s.opts.Content
}

// Elapsed is the time since Mount.
func (s *Screen) Elapsed() time.Duration {
	if !s.mounted {
		return 0
	}
	return s.timers.Now() - s.mountedAt
}

// Hearts returns the generated background hearts and their field.
func (s *Screen) Hearts() (particles.Field, []particles.Particle) {
	return s.field, s.hearts
}

// Burst returns the confetti, or nil before Mount.
func (s *Screen) Burst() *confetti.Burst {
	return s.burst
}

// Opacity is the fade-in progress of a block.
func (s *Screen) Opacity(b Block) float64 {
	r, ok := reveals[b]
	if !ok || !s.mounted {
		return 0
	}
	t := s.Elapsed() - r.delay
	if t <= 0 {
		return 0
	}
	if t >= r.duration {
		return r.peak
	}
	return r.peak * float64(t) / float64(r.duration)
}
