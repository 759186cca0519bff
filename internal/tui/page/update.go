package page

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/valentine/internal/stage"
)

// Update handles incoming messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.advance(m.frameDelta(time.Time(msg)))
		if m.quitting {
			return m, nil
		}
		return m, frameCmd(m.fps)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.canvas.Resize(width, height)
	m.help.Width = width

	if m.detector.Resize(width) {
		m.log.With("touch_primary", m.detector.TouchPrimary()).Info("device class changed")
	}
	m.decline.SetHome(m.layout().home)
	if m.celebration != nil {
		m.celebration.Resize(width, height)
	}
}

// frameDelta converts a tick timestamp into a clock step, clamped so a
// stalled terminal does not fast-forward the animation.
func (m *Model) frameDelta(now time.Time) time.Duration {
	dt := time.Second / time.Duration(m.fps)
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		m.log.With("stall_ms", dt.Milliseconds()).Warn("frame stalled, clock step clamped")
		dt = maxFrameDelta
	}
	return dt
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.stage.State() != stage.StateProposal {
		return
	}
	onDecline := m.declineRect().contains(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		entered := onDecline && !m.hovering
		m.hovering = onDecline
		if entered && !m.touchPrimary() {
			m.interact()
			m.hovering = m.declineRect().contains(msg.X, msg.Y)
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch {
		case onDecline:
			m.interact()
		case m.layout().accept.contains(msg.X, msg.Y):
			m.activate()
		}
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Accept):
		m.activate()
	case key.Matches(msg, m.keys.Decline):
		m.interact()
	}
	return m, nil
}
