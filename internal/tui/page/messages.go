package page

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives the animation clock.
type frameMsg time.Time

// maxFrameDelta caps the clock step after a stall so timers do not jump.
const maxFrameDelta = 100 * time.Millisecond

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
