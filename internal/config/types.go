package config

import (
	"time"

	"github.com/alexisbeaulieu97/valentine/internal/decline"
)

// Config represents the full page configuration document.
type Config struct {
	Recipient        string   `yaml:"recipient" validate:"required,max=40"`
	Sender           string   `yaml:"sender" validate:"required,max=40"`
	Heading          string   `yaml:"heading"`
	Question         string   `yaml:"question" validate:"required"`
	AcceptLabel      string   `yaml:"accept_label" validate:"required"`
	Footer           string   `yaml:"footer"`
	Lines            []Line   `yaml:"lines" validate:"dive"`
	DeclineLabels    []string `yaml:"decline_labels" validate:"required,min=1,dive,required"`
	AdvisoryMessages []string `yaml:"advisory_messages" validate:"required,min=1,dive,required"`
	Timing           Timing   `yaml:"timing"`
	Device           Device   `yaml:"device"`
	Seed             int64    `yaml:"seed"`
	FPS              int      `yaml:"fps" validate:"min=1,max=120"`
}

// Line is one typewriter line on the proposal card.
type Line struct {
	Text  string `yaml:"text" validate:"required"`
	Style string `yaml:"style,omitempty" validate:"omitempty,oneof=normal highlight dim"`
}

// Timing holds every animation delay as a Go duration string.
type Timing struct {
	StartDelay         string `yaml:"start_delay" validate:"required,duration"`
	FirstCharDelay     string `yaml:"first_char_delay" validate:"required,duration"`
	JitterMin          string `yaml:"jitter_min" validate:"required,duration"`
	JitterMax          string `yaml:"jitter_max" validate:"required,duration"`
	AcceptDelay        string `yaml:"accept_delay" validate:"required,duration=positive"`
	TransitionDuration string `yaml:"transition_duration" validate:"required,duration=positive"`
	AdvisoryDuration   string `yaml:"advisory_duration" validate:"required,duration=positive"`
	BurstDuration      string `yaml:"burst_duration" validate:"required,duration=positive"`
}

// Durations is Timing with every field parsed.
type Durations struct {
	StartDelay         time.Duration
	FirstCharDelay     time.Duration
	JitterMin          time.Duration
	JitterMax          time.Duration
	AcceptDelay        time.Duration
	TransitionDuration time.Duration
	AdvisoryDuration   time.Duration
	BurstDuration      time.Duration
}

// Parse converts the duration strings. Call it on validated configuration;
// unparseable values become zero.
func (t Timing) Parse() Durations {
	return Durations{
		StartDelay:         parseDuration(t.StartDelay),
		FirstCharDelay:     parseDuration(t.FirstCharDelay),
		JitterMin:          parseDuration(t.JitterMin),
		JitterMax:          parseDuration(t.JitterMax),
		AcceptDelay:        parseDuration(t.AcceptDelay),
		TransitionDuration: parseDuration(t.TransitionDuration),
		AdvisoryDuration:   parseDuration(t.AdvisoryDuration),
		BurstDuration:      parseDuration(t.BurstDuration),
	}
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// Device controls touch-primary classification.
type Device struct {
	Touch        bool `yaml:"touch"`
	BreakpointPx int  `yaml:"breakpoint_px" validate:"min=1"`
	CellWidthPx  int  `yaml:"cell_width_px" validate:"min=1,max=64"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Recipient:   "Khushi",
		Sender:      "Sharman",
		Heading:     "I have a question for you",
		Question:    "Will you be my Valentine?",
		AcceptLabel: "Yes, I'd love to",
		Footer:      "Made with love, by Sharman",
		Lines: []Line{
			{Text: "Every moment with you feels like a dream come true.", Style: "normal"},
			{Text: "You make my heart skip a beat every single day.", Style: "highlight"},
			{Text: "So here I am, asking the most important question...", Style: "dim"},
		},
		DeclineLabels:    append([]string(nil), decline.DefaultLabels...),
		AdvisoryMessages: append([]string(nil), decline.DefaultMessages...),
		Timing: Timing{
			StartDelay:         "3s",
			FirstCharDelay:     "400ms",
			JitterMin:          "28ms",
			JitterMax:          "46ms",
			AcceptDelay:        "200ms",
			TransitionDuration: "1.4s",
			AdvisoryDuration:   "2s",
			BurstDuration:      "8s",
		},
		Device: Device{
			BreakpointPx: 768,
			CellWidthPx:  8,
		},
		FPS: 30,
	}
}
