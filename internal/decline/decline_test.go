package decline

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

func newControl(t *testing.T, seed uint64) (*Control, *scheduler.Scheduler) {
	t.Helper()
	sched := scheduler.New()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	c := New(Options{Footprint: Footprint{Width: 12, Height: 3}, Margin: 2}, rng, sched)
	return c, sched
}

func TestScaleAndOpacityFormula(t *testing.T) {
	t.Parallel()

	prevScale, prevOpacity := ScaleFor(0), OpacityFor(0)
	require.Equal(t, 1.0, prevScale)
	require.Equal(t, 1.0, prevOpacity)

	for n := 1; n <= 40; n++ {
		s, o := ScaleFor(n), OpacityFor(n)
		assert.InDelta(t, max(1-0.07*float64(n), 0.4), s, 1e-9, "scale at %d", n)
		assert.InDelta(t, max(1-0.06*float64(n), 0.3), o, 1e-9, "opacity at %d", n)
		assert.LessOrEqual(t, s, prevScale)
		assert.LessOrEqual(t, o, prevOpacity)
		assert.GreaterOrEqual(t, s, 0.4)
		assert.GreaterOrEqual(t, o, 0.3)
		prevScale, prevOpacity = s, o
	}
}

func TestInteractionUpdatesState(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, 1)
	vp := Viewport{Width: 120, Height: 40}

	for n := 1; n <= 12; n++ {
		before := c.Rotation()
		c.OnInteract(vp, false)

		require.Equal(t, n, c.Attempts())
		require.InDelta(t, ScaleFor(n), c.Scale(), 1e-9)
		require.InDelta(t, OpacityFor(n), c.Opacity(), 1e-9)
		require.Equal(t, DefaultLabels[n%len(DefaultLabels)], c.Label())

		delta := c.Rotation() - before
		magnitude := 5 + 2*float64(n)
		require.True(t, delta == magnitude || delta == -magnitude, "rotation delta %v at attempt %d", delta, n)
	}
}

func TestTargetStaysWithinSafeBounds(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, 7)
	vp := Viewport{Width: 100, Height: 30}
	fp := c.Footprint()

	for i := 0; i < 500; i++ {
		c.OnInteract(vp, false)
		p := c.Target()
		require.GreaterOrEqual(t, p.X, 2+fp.Width/2)
		require.LessOrEqual(t, p.X, float64(vp.Width)-2-fp.Width/2)
		require.GreaterOrEqual(t, p.Y, 2+fp.Height/2)
		require.LessOrEqual(t, p.Y, float64(vp.Height)-2-fp.Height/2)
	}
}

func TestDegenerateViewportCollapsesToCentre(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, 3)
	c.OnInteract(Viewport{Width: 8, Height: 2}, false)
	require.Equal(t, Point{X: 4, Y: 1}, c.Target())
}

func TestTrailIsBoundedAndDropsOldest(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, 11)
	vp := Viewport{Width: 120, Height: 40}

	c.OnInteract(vp, false)
	require.Empty(t, c.Trail(), "first move leaves no ghost")

	var targets []Point
	for i := 0; i < 6; i++ {
		targets = append(targets, c.Target())
		c.OnInteract(vp, false)
	}
	trail := c.Trail()
	require.Len(t, trail, 6)
	for i, entry := range trail {
		require.Equal(t, targets[i], entry.Pos)
		require.Equal(t, i+1, entry.ID)
	}

	// A seventh ghost evicts the oldest one.
	targets = append(targets, c.Target())
	c.OnInteract(vp, false)
	trail = c.Trail()
	require.Len(t, trail, 6)
	require.Equal(t, 2, trail[0].ID)
	require.Equal(t, targets[1], trail[0].Pos)
	require.Equal(t, 7, trail[5].ID)
	require.Equal(t, targets[6], trail[5].Pos)
}

func TestFiveAttemptLabelAndAdvisorySequence(t *testing.T) {
	t.Parallel()

	c, sched := newControl(t, 5)
	vp := Viewport{Width: 60, Height: 20}

	for n := 1; n <= 5; n++ {
		c.OnInteract(vp, true)
		require.Equal(t, DefaultLabels[n%len(DefaultLabels)], c.Label())

		msg, ok := c.Advisory()
		require.True(t, ok)
		require.Equal(t, DefaultMessages[n%len(DefaultMessages)], msg)
		sched.Advance(100 * time.Millisecond)
	}

	require.Equal(t, []string{"Nope", "Hmm...", "😢", "...", "🥺"}, DefaultLabels[1:6])
}

func TestAdvisoryClearsAfterTwoSeconds(t *testing.T) {
	t.Parallel()

	c, sched := newControl(t, 9)
	vp := Viewport{Width: 60, Height: 20}

	c.OnInteract(vp, true)
	sched.Advance(1999 * time.Millisecond)
	_, ok := c.Advisory()
	require.True(t, ok)

	sched.Advance(time.Millisecond)
	_, ok = c.Advisory()
	require.False(t, ok)
}

func TestNewerAdvisoryRestartsTimer(t *testing.T) {
	t.Parallel()

	c, sched := newControl(t, 13)
	vp := Viewport{Width: 60, Height: 20}

	c.OnInteract(vp, true)
	sched.Advance(1500 * time.Millisecond)
	c.OnInteract(vp, true)
	sched.Advance(1000 * time.Millisecond)

	msg, ok := c.Advisory()
	require.True(t, ok, "second advisory should outlive the first timer")
	require.Equal(t, DefaultMessages[2], msg)
	require.Equal(t, 1, sched.Pending())
}

func TestPointerDevicesGetNoAdvisory(t *testing.T) {
	t.Parallel()

	c, sched := newControl(t, 17)
	c.OnInteract(Viewport{Width: 120, Height: 40}, false)

	_, ok := c.Advisory()
	require.False(t, ok)
	require.Zero(t, sched.Pending())
}

func TestSpringCarriesDisplayedPositionToTarget(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, 21)
	c.SetHome(Point{X: 60, Y: 20})
	require.Equal(t, Point{X: 60, Y: 20}, c.Position())

	c.OnInteract(Viewport{Width: 120, Height: 40}, false)
	require.Equal(t, Point{X: 60, Y: 20}, c.Position(), "motion starts from home")

	for i := 0; i < 120; i++ {
		c.Update()
	}
	require.InDelta(t, c.Target().X, c.Position().X, 0.05)
	require.InDelta(t, c.Target().Y, c.Position().Y, 0.05)
	require.InDelta(t, c.Scale(), c.DisplayScale(), 0.01)
}

func TestFloorsKeepControlInteractive(t *testing.T) {
	t.Parallel()

	c, _ := newControl(t, 23)
	for i := 0; i < 100; i++ {
		c.OnInteract(Viewport{Width: 120, Height: 40}, false)
	}
	require.Equal(t, 0.4, c.Scale())
	require.Equal(t, 0.3, c.Opacity())
	require.NotEmpty(t, c.Label())
}

func TestCaption(t *testing.T) {
	t.Parallel()

	require.Empty(t, Caption(0, "Khushi"))
	require.Equal(t, "Hmm... the No button seems scared of you", Caption(1, "Khushi"))
	require.Equal(t, "You can't escape love, Khushi", Caption(3, "Khushi"))
	require.Equal(t, "You can't escape love", Caption(3, ""))
	require.Equal(t, "It's almost invisible now... take the hint?", Caption(5, ""))
	require.Equal(t, "9 attempts — the No button is begging for mercy", Caption(9, ""))
}
