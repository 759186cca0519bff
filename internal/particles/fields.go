package particles

import "time"

var heartPalette = []Colour{
	{244, 114, 182, 0.15},
	{251, 113, 133, 0.12},
	{248, 113, 113, 0.10},
	{252, 165, 165, 0.13},
	{249, 168, 212, 0.16},
	{253, 164, 175, 0.12},
}

var orbPalette = []Colour{
	{244, 114, 182, 0.08},
	{251, 113, 133, 0.06},
	{190, 24, 93, 0.07},
	{236, 72, 153, 0.09},
	{244, 63, 94, 0.06},
	{168, 85, 247, 0.05},
}

var sparklePalette = []Colour{
	{244, 114, 182, 0.30},
	{251, 113, 133, 0.25},
	{249, 168, 212, 0.28},
	{168, 85, 247, 0.20},
	{253, 164, 175, 0.22},
}

var (
	streakColour = Colour{244, 114, 182, 1}
	celebColour  = Colour{244, 114, 182, 0.2}
)

// Hearts drift up from the bottom edge while swaying.
func Hearts() Field {
	return Field{
		Name:     "hearts",
		Count:    14,
		Motion:   MotionDriftUp,
		Kinds:    []Kind{KindHeart},
		Left:     Range{Min: 5, Span: 90},
		Size:     Range{Min: 14, Span: 20},
		Duration: Range{Min: 12, Span: 10},
		Delay:    Range{Min: 0, Span: 12},
		Opacity:  Range{Min: 1},
		Binary:   true,
		Palette:  heartPalette,
	}
}

// Orbs are large soft glows that float in place.
func Orbs() Field {
	return Field{
		Name:     "orbs",
		Count:    8,
		Motion:   MotionFloat,
		Kinds:    []Kind{KindOrb},
		Left:     Range{Min: 10, Span: 80},
		Top:      Range{Min: 10, Span: 80},
		Size:     Range{Min: 100, Span: 200},
		Duration: Range{Min: 12, Span: 8},
		Delay:    Range{Min: 0, Span: 5},
		Opacity:  Range{Min: 1},
		Blur:     Range{Min: 30, Span: 40},
		Palette:  orbPalette,
	}
}

// Sparkles twinkle and rise a little: dots, rings and diamonds.
func Sparkles() Field {
	return Field{
		Name:     "sparkles",
		Count:    18,
		Motion:   MotionTwinkle,
		Kinds:    []Kind{KindDot, KindRing, KindDiamond},
		Left:     Range{Min: 2.5, Span: 95},
		Top:      Range{Min: 2.5, Span: 95},
		Size:     Range{Min: 3, Span: 6},
		Duration: Range{Min: 4, Span: 5},
		Delay:    Range{Min: 0, Span: 8},
		Opacity:  Range{Min: 1},
		Palette:  sparklePalette,
	}
}

// Streaks are thin light lines falling through the page.
func Streaks() Field {
	return Field{
		Name:     "streaks",
		Count:    8,
		Motion:   MotionFall,
		Kinds:    []Kind{KindStreak},
		Left:     Range{Min: 0, Span: 100},
		Width:    Range{Min: 0.5, Span: 2},
		Size:     Range{Min: 40, Span: 80},
		Duration: Range{Min: 10, Span: 8},
		Delay:    Range{Min: 0, Span: 10},
		Opacity:  Range{Min: 0.03, Span: 0.08},
		Angle:    Range{Min: -10, Span: 20},
		Palette:  []Colour{streakColour},
	}
}

// CelebrationHearts pop up and float away behind the celebration card.
func CelebrationHearts() Field {
	return Field{
		Name:     "celebration-hearts",
		Count:    20,
		Motion:   MotionRise,
		Kinds:    []Kind{KindHeart},
		Left:     Range{Min: 0, Span: 100},
		Top:      Range{Min: 0, Span: 100},
		Size:     Range{Min: 12, Span: 20},
		Duration: Range{Min: 4},
		Delay:    Range{Min: 0, Span: 3},
		Opacity:  Range{Min: 0.1, Span: 0.3},
		Palette:  []Colour{celebColour},
		Pause:    3 * time.Second,
	}
}

// ProposalLayers returns the four background layers of the proposal screen,
// back to front.
func ProposalLayers() []Field {
	return []Field{Orbs(), Streaks(), Hearts(), Sparkles()}
}
