// Package page is the bubbletea program for the proposal and celebration
// screens. A frame tick advances one virtual clock; every component's
// deferred work runs off that clock.
package page

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/valentine/internal/accept"
	"github.com/alexisbeaulieu97/valentine/internal/celebration"
	"github.com/alexisbeaulieu97/valentine/internal/config"
	"github.com/alexisbeaulieu97/valentine/internal/decline"
	"github.com/alexisbeaulieu97/valentine/internal/device"
	"github.com/alexisbeaulieu97/valentine/internal/logger"
	"github.com/alexisbeaulieu97/valentine/internal/particles"
	"github.com/alexisbeaulieu97/valentine/internal/render"
	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
	"github.com/alexisbeaulieu97/valentine/internal/stage"
	"github.com/alexisbeaulieu97/valentine/internal/typewriter"
)

// Reveal delays for the proposal screen, measured from mount.
const (
	headingDelay  = 300 * time.Millisecond
	questionDelay = 1200 * time.Millisecond
	cardDelay     = 2 * time.Second
	buttonsDelay  = 4 * time.Second
	footerDelay   = 5 * time.Second
	revealFade    = 800 * time.Millisecond
)

// declineFootprint is the resting size of the decline control in cells.
var declineFootprint = decline.Footprint{Width: 14, Height: 3}

// Options wires a Model.
type Options struct {
	Config *config.Config
	Logger *logger.Logger
	Rand   *rand.Rand
}

type layer struct {
	field     particles.Field
	particles []particles.Particle
}

// Model is the page state.
type Model struct {
	cfg    *config.Config
	log    *logger.Logger
	rng    *rand.Rand
	timing config.Durations
	fps    int

	sched          *scheduler.Scheduler
	proposalTimers *scheduler.Group

	detector    *device.Detector
	decline     *decline.Control
	accept      *accept.Control
	writer      *typewriter.Sequencer
	stage       *stage.Orchestrator
	celebration *celebration.Screen
	layers      []layer

	keys   keyMap
	help   help.Model
	canvas *render.Canvas

	width     int
	height    int
	lastFrame time.Time
	hovering  bool
	quitting  bool
}

// NewModel creates the page in the proposal state. Typing starts on the
// first frame's clock.
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}

	timing := cfg.Timing.Parse()
	sched := scheduler.New()
	proposalTimers := sched.Group()

	h := help.New()
	h.Styles = help.Styles{}

	m := &Model{
		cfg:            cfg,
		log:            log,
		rng:            rng,
		timing:         timing,
		fps:            fps,
		sched:          sched,
		proposalTimers: proposalTimers,
		detector: device.NewDetector(device.Policy{
			TouchCapable: cfg.Device.Touch,
			BreakpointPx: cfg.Device.BreakpointPx,
			CellWidthPx:  cfg.Device.CellWidthPx,
		}, 0),
		decline: decline.New(decline.Options{
			Labels:           cfg.DeclineLabels,
			Messages:         cfg.AdvisoryMessages,
			Footprint:        declineFootprint,
			Margin:           2,
			AdvisoryDuration: timing.AdvisoryDuration,
			FPS:              fps,
		}, rng, proposalTimers),
		accept: accept.New(cfg.AcceptLabel, timing.AcceptDelay, proposalTimers),
		stage:  stage.New(timing.TransitionDuration, sched),
		keys:   defaultKeyMap(),
		help:   h,
		canvas: render.NewCanvas(0, 0, render.Background),
	}

	lines := make([]typewriter.Line, 0, len(cfg.Lines))
	for _, l := range cfg.Lines {
		style := typewriter.Style(l.Style)
		if style == "" {
			style = typewriter.StyleNormal
		}
		lines = append(lines, typewriter.Line{Text: l.Text, Style: style})
	}
	m.writer = typewriter.New(lines, typewriter.Timing{
		StartDelay:     timing.StartDelay,
		FirstCharDelay: timing.FirstCharDelay,
		JitterMin:      timing.JitterMin,
		JitterMax:      timing.JitterMax,
	}, rng, proposalTimers)
	m.writer.OnFinish(func() {
		m.log.Debug("typewriter finished")
	})

	for _, field := range particles.ProposalLayers() {
		m.layers = append(m.layers, layer{field: field, particles: particles.Generate(rng, field)})
	}

	m.stage.OnChange(func(from, to stage.State) {
		m.log.WithFields(map[string]any{"from": from.String(), "to": to.String()}).Info("screen state changed")
	})
	m.stage.OnCelebrate(m.mountCelebration)

	m.writer.Start()
	return m
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// State returns the current screen state.
func (m *Model) State() stage.State {
	return m.stage.State()
}

// mountCelebration tears the proposal down and mounts the celebration.
// The proposal particle layers are dropped and never regenerated.
func (m *Model) mountCelebration() {
	m.proposalTimers.CancelAll()
	m.layers = nil
	m.hovering = false

	m.celebration = celebration.New(celebration.Options{
		Width:         m.width,
		Height:        m.height,
		BurstDuration: m.timing.BurstDuration,
		Content:       celebration.DefaultContent(m.cfg.Recipient, m.cfg.Sender),
	}, m.rng, m.sched.Group())
	m.celebration.OnBurstEnd(func() {
		m.log.Info("confetti burst finished")
	})
	m.celebration.Mount()
}

func (m *Model) touchPrimary() bool {
	return m.detector.TouchPrimary()
}

func (m *Model) buttonsLive() bool {
	return m.stage.State() == stage.StateProposal && m.sched.Now() >= buttonsDelay
}

// interact applies one decline interaction.
func (m *Model) interact() {
	if !m.buttonsLive() {
		return
	}
	m.decline.OnInteract(decline.Viewport{Width: m.width, Height: m.height}, m.touchPrimary())
	m.accept.Grow()
	m.log.WithFields(map[string]any{
		"attempts": m.decline.Attempts(),
		"label":    m.decline.Label(),
	}).Debug("decline attempt")
}

// activate presses the accept control and starts the transition.
func (m *Model) activate() {
	if !m.buttonsLive() {
		return
	}
	if !m.accept.OnActivate(m.stage.Settle) {
		return
	}
	m.stage.Begin()
	m.log.With("attempts", m.decline.Attempts()).Info("proposal accepted")
}

// advance moves the virtual clock and every per-frame simulation.
func (m *Model) advance(dt time.Duration) {
	m.sched.Advance(dt)
	if m.stage.State() != stage.StateCelebration {
		m.decline.Update()
	}
	if m.celebration != nil {
		m.celebration.Step(dt)
	}
}

func (m *Model) quit() tea.Cmd {
	if m.celebration != nil {
		m.celebration.Unmount()
	}
	cancelled := m.sched.CancelAll()
	m.quitting = true
	m.log.With("cancelled_timers", cancelled).Info("shutting down")
	return tea.Quit
}
