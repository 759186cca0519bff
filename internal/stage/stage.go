// Package stage owns the screen state machine: Proposal, then a timed
// Transitioning overlay, then Celebration. There is no way back.
package stage

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/alexisbeaulieu97/valentine/internal/anim"
	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

// DefaultTransition is how long the overlay plays before the celebration
// screen replaces the proposal.
const DefaultTransition = 1400 * time.Millisecond

const contentFade = 400 * time.Millisecond

// State is the screen currently shown.
type State int

const (
	StateProposal State = iota
	StateTransitioning
	StateCelebration
)

func (s State) String() string {
	switch s {
	case StateProposal:
		return "proposal"
	case StateTransitioning:
		return "transitioning"
	case StateCelebration:
		return "celebration"
	default:
		return "unknown"
	}
}

// Overlay is the heart-morph frame drawn while transitioning.
type Overlay struct {
	Active       bool
	HeartScale   float64
	HeartOpacity float64
	WashOpacity  float64
}

// Orchestrator drives the screen state.
type Orchestrator struct {
	timers   scheduler.Timers
	duration time.Duration

	state     State
	begunAt   time.Duration
	settled   bool
	settledAt time.Duration

	onCelebrate func()
	onChange    func(from, to State)

	heartScale   *anim.Track
	heartOpacity *anim.Track
	wash         *anim.Track
}

// New creates an orchestrator in StateProposal. A non-positive duration
// uses DefaultTransition.
func New(duration time.Duration, timers scheduler.Timers) *Orchestrator {
	if duration <= 0 {
		duration = DefaultTransition
	}
	return &Orchestrator{
		timers:   timers,
		duration: duration,
		heartScale: anim.NewTrack(duration, ease.OutQuint,
			[]float64{0.3, 1.8, 40}, []float64{0, 0.5, 1}),
		heartOpacity: anim.NewTrack(duration, ease.Linear,
			[]float64{1, 1, 0}, []float64{0, 0.6, 1}),
		wash: anim.NewTrack(duration, ease.Linear,
			[]float64{0, 0, 0.6, 0}, []float64{0, 0.5, 0.8, 1}),
	}
}

// OnCelebrate registers the hook run once when the celebration screen is
// entered.
func (o *Orchestrator) OnCelebrate(fn func()) {
	o.onCelebrate = fn
}

// OnChange registers a hook observing every state change.
func (o *Orchestrator) OnChange(fn func(from, to State)) {
	o.onChange = fn
}

// Begin starts the transition. It only has an effect in StateProposal.
func (o *Orchestrator) Begin() bool {
	if o.state != StateProposal {
		return false
	}
	o.begunAt = o.timers.Now()
	o.set(StateTransitioning)
	o.timers.After(o.duration, o.celebrate)
	return true
}

func (o *Orchestrator) celebrate() {
	if o.state != StateTransitioning {
		return
	}
	o.set(StateCelebration)
	if o.onCelebrate != nil {
		o.onCelebrate()
	}
}

func (o *Orchestrator) set(to State) {
	from := o.state
	o.state = to
	if o.onChange != nil {
		o.onChange(from, to)
	}
}

// Settle records that the accept control finished. The proposal content
// fades out from this point.
func (o *Orchestrator) Settle() {
	if o.settled {
		return
	}
	o.settled = true
	o.settledAt = o.timers.Now()
}

// Settled reports whether Settle has been called.
func (o *Orchestrator) Settled() bool {
	return o.settled
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Duration returns the configured transition length.
func (o *Orchestrator) Duration() time.Duration {
	return o.duration
}

// Elapsed is the time since Begin, or zero before it.
func (o *Orchestrator) Elapsed() time.Duration {
	if o.state == StateProposal {
		return 0
	}
	return o.timers.Now() - o.begunAt
}

// ContentOpacity is the opacity of the proposal content.
func (o *Orchestrator) ContentOpacity() float64 {
	if o.state == StateCelebration {
		return 0
	}
	if !o.settled {
		return 1
	}
	f := float64(o.timers.Now()-o.settledAt) / float64(contentFade)
	return math.Max(0, 1-f)
}

// Overlay samples the transition overlay for the current time.
func (o *Orchestrator) Overlay() Overlay {
	if o.state != StateTransitioning {
		return Overlay{}
	}
	t := o.Elapsed()
	return Overlay{
		Active:       true,
		HeartScale:   o.heartScale.At(t),
		HeartOpacity: o.heartOpacity.At(t),
		WashOpacity:  o.wash.At(t),
	}
}
