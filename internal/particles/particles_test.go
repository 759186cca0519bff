package particles

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	for _, field := range append(ProposalLayers(), CelebrationHearts()) {
		a := Generate(rand.New(rand.NewPCG(99, 1)), field)
		b := Generate(rand.New(rand.NewPCG(99, 1)), field)
		require.Equal(t, a, b, field.Name)
		require.Len(t, a, field.Count, field.Name)
	}
}

func TestGeneratedValuesRespectFieldRanges(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	for _, field := range append(ProposalLayers(), CelebrationHearts()) {
		for i, p := range Generate(rng, field) {
			require.Equal(t, i, p.Index)
			assert.True(t, field.Left.Contains(p.Left), "%s left %v", field.Name, p.Left)
			assert.True(t, field.Top.Contains(p.Top), "%s top %v", field.Name, p.Top)
			assert.True(t, field.Size.Contains(p.Size), "%s size %v", field.Name, p.Size)
			assert.True(t, field.Opacity.Contains(p.Opacity), "%s opacity %v", field.Name, p.Opacity)
			assert.True(t, field.Angle.Contains(p.Angle), "%s angle %v", field.Name, p.Angle)
			assert.True(t, field.Duration.Contains(p.Duration.Seconds()), "%s duration %v", field.Name, p.Duration)
			assert.True(t, field.Delay.Contains(p.Delay.Seconds()), "%s delay %v", field.Name, p.Delay)
			assert.Contains(t, field.Kinds, p.Kind)
			assert.Contains(t, field.Palette, p.Colour)
			if field.Binary {
				assert.Contains(t, []float64{0, 1}, p.Blur)
			} else {
				assert.True(t, field.Blur.Contains(p.Blur))
			}
		}
	}
}

func TestFieldCounts(t *testing.T) {
	t.Parallel()

	require.Equal(t, 14, Hearts().Count)
	require.Equal(t, 8, Orbs().Count)
	require.Equal(t, 18, Sparkles().Count)
	require.Equal(t, 8, Streaks().Count)
	require.Equal(t, 20, CelebrationHearts().Count)
	require.Len(t, ProposalLayers(), 4)
}

func TestGenerateZeroCount(t *testing.T) {
	t.Parallel()

	require.Nil(t, Generate(rand.New(rand.NewPCG(1, 1)), Field{}))
}

func TestSampleHiddenDuringDelay(t *testing.T) {
	t.Parallel()

	p := Particle{Left: 50, Top: 50, Duration: 4 * time.Second, Delay: 2 * time.Second}
	require.False(t, Sample(Hearts(), p, time.Second).Visible)
	require.True(t, Sample(Hearts(), p, 2*time.Second).Visible)
}

func TestSampleLoops(t *testing.T) {
	t.Parallel()

	field := Streaks()
	p := Particle{Left: 10, Duration: 10 * time.Second}
	first := Sample(field, p, 3*time.Second)
	again := Sample(field, p, 13*time.Second)
	require.InDelta(t, first.Y, again.Y, 1e-9)
	require.InDelta(t, first.Opacity, again.Opacity, 1e-9)
}

func TestSampleRespectsPauseBetweenLoops(t *testing.T) {
	t.Parallel()

	field := CelebrationHearts()
	p := Particle{Left: 10, Top: 60, Duration: 4 * time.Second}
	require.True(t, Sample(field, p, 2*time.Second).Visible)
	require.False(t, Sample(field, p, 5*time.Second).Visible, "idle between loops")
	require.True(t, Sample(field, p, 8*time.Second).Visible)
}

func TestDriftUpMovesUpward(t *testing.T) {
	t.Parallel()

	p := Particle{Left: 50, Duration: 10 * time.Second}
	early := Sample(Hearts(), p, time.Second)
	late := Sample(Hearts(), p, 8*time.Second)
	require.Greater(t, early.Y, late.Y)
}

func TestMotionKeyframes(t *testing.T) {
	t.Parallel()

	p := Particle{Left: 20, Top: 40, Duration: 4 * time.Second}

	tests := []struct {
		name    string
		field   Field
		at      time.Duration
		y       float64
		opacity float64
		scale   float64
	}{
		{"twinkle start", Sparkles(), 0, 40, 0, 0.5},
		{"twinkle peak", Sparkles(), time.Second + 333*time.Millisecond, 40 - 2, 1, 1.2},
		{"twinkle middle", Sparkles(), 2 * time.Second, 37, 0.8, 1.1},
		{"rise middle", CelebrationHearts(), 2 * time.Second, 32.5, 1, 1},
		{"rise quarter", CelebrationHearts(), time.Second, 36.25, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Sample(tt.field, p, tt.at)
			require.True(t, f.Visible)
			assert.InDelta(t, tt.y, f.Y, 0.01)
			assert.InDelta(t, tt.opacity, f.Opacity, 0.01)
			assert.InDelta(t, tt.scale, f.Scale, 0.01)
		})
	}
}

func TestFallFadesInAndOut(t *testing.T) {
	t.Parallel()

	p := Particle{Left: 10, Duration: 10 * time.Second}
	assert.InDelta(t, 0.0, Sample(Streaks(), p, 0).Opacity, 1e-6)
	assert.InDelta(t, 1.0, Sample(Streaks(), p, 5*time.Second).Opacity, 1e-6)
	assert.InDelta(t, 0.4, Sample(Streaks(), p, 8*time.Second).Opacity, 1e-6)
}

func TestDriftUpHoldsFullOpacityMidFlight(t *testing.T) {
	t.Parallel()

	p := Particle{Left: 50, Duration: 10 * time.Second}
	assert.InDelta(t, 1.0, Sample(Hearts(), p, 5*time.Second).Opacity, 1e-6)
	assert.InDelta(t, 0.5, Sample(Hearts(), p, time.Second).Opacity, 1e-6)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "diamond", KindDiamond.String())
	require.Equal(t, "unknown", Kind(42).String())
}
