package typewriter

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/valentine/internal/scheduler"
)

var script = []Line{
	{Text: "Every moment", Style: StyleNormal},
	{Text: "heart 💓 beat", Style: StyleHighlight},
	{Text: "So here I am...", Style: StyleDim},
}

func newSequencer(seed uint64) (*Sequencer, *scheduler.Scheduler) {
	sched := scheduler.New()
	rng := rand.New(rand.NewPCG(seed, 42))
	return New(script, DefaultTiming(), rng, sched), sched
}

func TestNothingHappensBeforeStartDelay(t *testing.T) {
	t.Parallel()

	s, sched := newSequencer(1)
	s.Start()

	sched.Advance(2999 * time.Millisecond)
	require.False(t, s.Started())
	_, opened := s.Visible(0)
	require.False(t, opened)

	sched.Advance(time.Millisecond)
	require.True(t, s.Started())
	_, opened = s.Visible(0)
	require.False(t, opened, "line opens only after the first-character delay")

	sched.Advance(400 * time.Millisecond)
	text, opened := s.Visible(0)
	require.True(t, opened)
	require.Empty(t, text)
	require.True(t, s.Typing(0))
}

func TestCharacterCadenceIsJittered(t *testing.T) {
	t.Parallel()

	s, sched := newSequencer(2)
	s.Start()
	sched.Advance(3400 * time.Millisecond)

	text, opened := s.Visible(0)
	require.True(t, opened)
	require.Empty(t, text)

	last := sched.Now()
	prev := 0
	target := len([]rune(script[0].Text))
	for prev < target {
		sched.Advance(time.Millisecond)
		text, _ = s.Visible(0)
		n := len([]rune(text))
		if n == prev {
			continue
		}
		require.Equal(t, prev+1, n)
		gap := sched.Now() - last
		require.GreaterOrEqual(t, gap, 28*time.Millisecond)
		require.LessOrEqual(t, gap, 46*time.Millisecond)
		last = sched.Now()
		prev = n
	}
}

func TestFixedJitterGivesExactCadence(t *testing.T) {
	t.Parallel()

	sched := scheduler.New()
	timing := Timing{StartDelay: 0, FirstCharDelay: 400 * time.Millisecond, JitterMin: 30 * time.Millisecond, JitterMax: 30 * time.Millisecond}
	s := New([]Line{{Text: "abc"}, {Text: "de"}}, timing, rand.New(rand.NewPCG(1, 2)), sched)
	s.Start()

	sched.Advance(400 * time.Millisecond)
	text, _ := s.Visible(0)
	require.Equal(t, "", text)

	sched.Advance(30 * time.Millisecond)
	text, _ = s.Visible(0)
	require.Equal(t, "a", text)

	sched.Advance(60 * time.Millisecond)
	text, _ = s.Visible(0)
	require.Equal(t, "abc", text)
	require.Equal(t, 1, s.CurrentLine())

	_, opened := s.Visible(1)
	require.False(t, opened)
	sched.Advance(400 * time.Millisecond)
	_, opened = s.Visible(1)
	require.True(t, opened)

	sched.Advance(60 * time.Millisecond)
	require.True(t, s.Done())
}

func TestRevealIsAlwaysAPrefix(t *testing.T) {
	t.Parallel()

	s, sched := newSequencer(3)
	s.Start()

	lengths := make([]int, len(script))
	for step := 0; step < 2000 && !s.Done(); step++ {
		sched.Advance(5 * time.Millisecond)
		for i, line := range script {
			text, opened := s.Visible(i)
			if !opened {
				require.Empty(t, text)
				continue
			}
			require.True(t, strings.HasPrefix(line.Text, text), "line %d shows %q", i, text)
			n := len([]rune(text))
			require.GreaterOrEqual(t, n, lengths[i], "reveal never shrinks")
			require.LessOrEqual(t, n, lengths[i]+1, "at most one new character per 5ms")
			lengths[i] = n
		}
	}

	require.True(t, s.Done())
	for i, line := range script {
		text, opened := s.Visible(i)
		require.True(t, opened)
		require.Equal(t, line.Text, text)
		require.False(t, s.Typing(i))
	}
}

func TestLinesAdvanceOnlyWhenComplete(t *testing.T) {
	t.Parallel()

	s, sched := newSequencer(4)
	s.Start()

	for !s.Done() {
		sched.Advance(time.Millisecond)
		cur := s.CurrentLine()
		for i := 0; i < cur && i < s.Len(); i++ {
			text, _ := s.Visible(i)
			require.Equal(t, s.Full(i), text)
		}
		for i := cur + 1; i < s.Len(); i++ {
			_, opened := s.Visible(i)
			require.False(t, opened)
		}
	}
	require.Equal(t, s.Len(), s.CurrentLine())
}

func TestTotalDurationIsBounded(t *testing.T) {
	t.Parallel()

	s, sched := newSequencer(5)
	s.Start()

	chars := 0
	for _, l := range script {
		chars += len([]rune(l.Text))
	}
	minTotal := 3*time.Second + time.Duration(len(script))*400*time.Millisecond + time.Duration(chars)*28*time.Millisecond
	maxTotal := 3*time.Second + time.Duration(len(script))*400*time.Millisecond + time.Duration(chars)*46*time.Millisecond

	sched.Advance(minTotal - time.Millisecond)
	require.False(t, s.Done())

	sched.Advance(maxTotal - minTotal + time.Millisecond)
	require.True(t, s.Done())
}

func TestFinishCallbackRunsOnce(t *testing.T) {
	t.Parallel()

	s, sched := newSequencer(6)
	calls := 0
	s.OnFinish(func() { calls++ })
	s.Start()
	s.Start()

	sched.Advance(time.Minute)
	sched.Advance(time.Minute)
	require.Equal(t, 1, calls)
	require.Zero(t, sched.Pending(), "no further mutation is scheduled")
}

func TestEmptyScriptFinishesAfterStartDelay(t *testing.T) {
	t.Parallel()

	sched := scheduler.New()
	s := New(nil, DefaultTiming(), rand.New(rand.NewPCG(1, 1)), sched)
	s.Start()
	sched.Advance(3 * time.Second)
	require.True(t, s.Done())
}

func TestGroupTeardownStopsTyping(t *testing.T) {
	t.Parallel()

	sched := scheduler.New()
	group := sched.Group()
	s := New(script, DefaultTiming(), rand.New(rand.NewPCG(7, 7)), group)
	s.Start()
	sched.Advance(3500 * time.Millisecond)
	before, _ := s.Visible(0)

	group.CancelAll()
	sched.Advance(time.Minute)

	after, _ := s.Visible(0)
	require.Equal(t, before, after)
	require.False(t, s.Done())
}

func TestStyleAndFullAccessors(t *testing.T) {
	t.Parallel()

	s, _ := newSequencer(8)
	require.Equal(t, StyleHighlight, s.Style(1))
	require.Equal(t, StyleNormal, s.Style(99))
	require.Equal(t, "So here I am...", s.Full(2))
	require.Empty(t, s.Full(-1))
}
