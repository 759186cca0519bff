// Package anim samples keyframed values over time using gween tweens.
package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track is a keyframe timeline. Each pair of neighbouring keyframes is one
// eased tween segment.
type Track struct {
	values   []float64
	segments []segment
	duration time.Duration
}

type segment struct {
	start time.Duration
	end   time.Duration
	tween *gween.Tween
}

// NewTrack builds a track spanning duration. times holds the keyframe
// offsets as fractions of duration; when it is nil or does not match values
// the keyframes are spaced evenly.
func NewTrack(duration time.Duration, easing ease.TweenFunc, values []float64, times []float64) *Track {
	t := &Track{values: values, duration: duration}
	if len(values) < 2 {
		return t
	}
	if len(times) != len(values) {
		times = make([]float64, len(values))
		for i := range times {
			times[i] = float64(i) / float64(len(values)-1)
		}
	}
	for i := 1; i < len(values); i++ {
		start := scale(duration, times[i-1])
		end := scale(duration, times[i])
		if end <= start {
			continue
		}
		t.segments = append(t.segments, segment{
			start: start,
			end:   end,
			tween: gween.New(float32(values[i-1]), float32(values[i]), float32((end - start).Seconds()), easing),
		})
	}
	return t
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

// Duration returns the length of the timeline.
func (t *Track) Duration() time.Duration {
	return t.duration
}

// At returns the value at elapsed, clamped to the first and last keyframes.
func (t *Track) At(elapsed time.Duration) float64 {
	if len(t.values) == 0 {
		return 0
	}
	if elapsed <= 0 || len(t.segments) == 0 {
		if elapsed >= t.duration {
			return t.values[len(t.values)-1]
		}
		return t.values[0]
	}
	if elapsed >= t.duration {
		return t.values[len(t.values)-1]
	}
	for _, s := range t.segments {
		if elapsed < s.start {
			// Inside a zero-length gap; hold the previous segment's start value.
			v, _ := s.tween.Set(0)
			return float64(v)
		}
		if elapsed < s.end {
			v, _ := s.tween.Set(float32((elapsed - s.start).Seconds()))
			return float64(v)
		}
	}
	return t.values[len(t.values)-1]
}
