// Package typewriter reveals a fixed script one character at a time.
package typewriter

import (
	"math/rand/v2"
	"time"

	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

// Style tags how a line is drawn.
type Style string

const (
	StyleNormal    Style = "normal"
	StyleHighlight Style = "highlight"
	StyleDim       Style = "dim"
)

// Line is one scripted line.
type Line struct {
	Text  string
	Style Style
}

// Timing controls the reveal cadence.
type Timing struct {
	StartDelay     time.Duration
	FirstCharDelay time.Duration
	JitterMin      time.Duration
	JitterMax      time.Duration
}

// DefaultTiming returns the stock cadence: start after 3s, open each line
// after 400ms, then 28–46ms per character.
func DefaultTiming() Timing {
	return Timing{
		StartDelay:     3000 * time.Millisecond,
		FirstCharDelay: 400 * time.Millisecond,
		JitterMin:      28 * time.Millisecond,
		JitterMax:      46 * time.Millisecond,
	}
}

// Sequencer is the typewriter state machine. Each step is scheduled by the
// previous one; nothing advances it except its own timers.
type Sequencer struct {
	lines  [][]rune
	styles []Style
	timing Timing
	rng    *rand.Rand
	timers scheduler.Timers

	line     int
	char     int
	opened   int
	started  bool
	done     bool
	pending  scheduler.TimerID
	onFinish func()
}

// New builds a sequencer for the given script. It does nothing until Start.
func New(lines []Line, timing Timing, rng *rand.Rand, timers scheduler.Timers) *Sequencer {
	s := &Sequencer{
		lines:  make([][]rune, len(lines)),
		styles: make([]Style, len(lines)),
		timing: timing,
		rng:    rng,
		timers: timers,
	}
	for i, l := range lines {
		s.lines[i] = []rune(l.Text)
		s.styles[i] = l.Style
	}
	if s.timing.JitterMax < s.timing.JitterMin {
		s.timing.JitterMax = s.timing.JitterMin
	}
	return s
}

// OnFinish registers a callback invoked once when the last line completes.
func (s *Sequencer) OnFinish(fn func()) {
	s.onFinish = fn
}

// Start arms the initial delay. Calling it more than once has no effect.
func (s *Sequencer) Start() {
	if s.pending != 0 || s.started || s.done {
		return
	}
	s.pending = s.timers.After(s.timing.StartDelay, func() {
		s.pending = 0
		s.started = true
		s.schedule()
	})
}

func (s *Sequencer) schedule() {
	if s.line >= len(s.lines) {
		s.finish()
		return
	}
	delay := s.nextDelay()
	s.pending = s.timers.After(delay, s.step)
}

func (s *Sequencer) nextDelay() time.Duration {
	if s.opened <= s.line {
		return s.timing.FirstCharDelay
	}
	span := s.timing.JitterMax - s.timing.JitterMin
	if span <= 0 {
		return s.timing.JitterMin
	}
	return s.timing.JitterMin + time.Duration(s.rng.Int64N(int64(span)+1))
}

func (s *Sequencer) step() {
	s.pending = 0
	if s.opened <= s.line {
		s.opened = s.line + 1
	} else {
		s.char++
	}

	if s.char >= len(s.lines[s.line]) {
		s.line++
		s.char = 0
	}
	s.schedule()
}

func (s *Sequencer) finish() {
	if s.done {
		return
	}
	s.done = true
	if s.onFinish != nil {
		s.onFinish()
	}
}

// Started reports whether the initial delay has elapsed.
func (s *Sequencer) Started() bool { return s.started }

// Done reports whether every line has been revealed.
func (s *Sequencer) Done() bool { return s.done }

// CurrentLine returns the index of the line being typed. It equals the
// number of lines once done.
func (s *Sequencer) CurrentLine() int { return s.line }

// Len returns the number of scripted lines.
func (s *Sequencer) Len() int { return len(s.lines) }

// Style returns the style tag of line i.
func (s *Sequencer) Style(i int) Style {
	if i < 0 || i >= len(s.styles) {
		return StyleNormal
	}
	return s.styles[i]
}

// Full returns the complete text of line i.
func (s *Sequencer) Full(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return string(s.lines[i])
}

// Visible returns the revealed prefix of line i and whether the line has
// been opened at all.
func (s *Sequencer) Visible(i int) (string, bool) {
	switch {
	case i < 0 || i >= len(s.lines):
		return "", false
	case i < s.line:
		return string(s.lines[i]), true
	case i == s.line && s.opened > i:
		return string(s.lines[i][:s.char]), true
	default:
		return "", false
	}
}

// Typing reports whether line i is the active, incomplete line, which is
// where the cursor is drawn.
func (s *Sequencer) Typing(i int) bool {
	return !s.done && i == s.line && s.opened > i && s.char < len(s.lines[i])
}
