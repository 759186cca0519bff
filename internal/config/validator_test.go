package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	valentineerrors "github.com/alexisbeaulieu97/valentine/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(cfg *Config)
		wantField string
	}{
		{name: "defaults are valid"},
		{
			name:      "missing recipient",
			mutate:    func(cfg *Config) { cfg.Recipient = "" },
			wantField: "recipient",
		},
		{
			name:      "empty decline labels",
			mutate:    func(cfg *Config) { cfg.DeclineLabels = nil },
			wantField: "decline_labels",
		},
		{
			name:      "blank advisory message",
			mutate:    func(cfg *Config) { cfg.AdvisoryMessages = []string{"ok", ""} },
			wantField: "advisory_messages[1]",
		},
		{
			name:      "line without text",
			mutate:    func(cfg *Config) { cfg.Lines = append(cfg.Lines, Line{Style: "dim"}) },
			wantField: "lines[3].text",
		},
		{
			name:      "fps out of range",
			mutate:    func(cfg *Config) { cfg.FPS = 0 },
			wantField: "fps",
		},
		{
			name:      "negative duration",
			mutate:    func(cfg *Config) { cfg.Timing.AcceptDelay = "-1s" },
			wantField: "timing.accept_delay",
		},
		{
			name: "jitter bounds inverted",
			mutate: func(cfg *Config) {
				cfg.Timing.JitterMin = "50ms"
				cfg.Timing.JitterMax = "10ms"
			},
			wantField: "timing.jitter_max",
		},
		{
			name:      "zero transition",
			mutate:    func(cfg *Config) { cfg.Timing.TransitionDuration = "0s" },
			wantField: "timing.transition_duration",
		},
		{
			name:      "zero accept delay",
			mutate:    func(cfg *Config) { cfg.Timing.AcceptDelay = "0s" },
			wantField: "timing.accept_delay",
		},
		{
			name:      "zero advisory duration",
			mutate:    func(cfg *Config) { cfg.Timing.AdvisoryDuration = "0s" },
			wantField: "timing.advisory_duration",
		},
		{
			name:      "zero burst duration",
			mutate:    func(cfg *Config) { cfg.Timing.BurstDuration = "0ms" },
			wantField: "timing.burst_duration",
		},
		{
			name:   "zero start delay is allowed",
			mutate: func(cfg *Config) { cfg.Timing.StartDelay = "0s" },
		},
		{
			name: "accept delay outlasts transition",
			mutate: func(cfg *Config) {
				cfg.Timing.AcceptDelay = "2s"
				cfg.Timing.TransitionDuration = "1s"
			},
			wantField: "timing.accept_delay",
		},
		{
			name: "accept delay equals transition",
			mutate: func(cfg *Config) {
				cfg.Timing.AcceptDelay = "1400ms"
				cfg.Timing.TransitionDuration = "1.4s"
			},
			wantField: "timing.accept_delay",
		},
		{
			name: "accept delay just inside transition",
			mutate: func(cfg *Config) {
				cfg.Timing.AcceptDelay = "1399ms"
			},
		},
		{
			name:      "cell width zero",
			mutate:    func(cfg *Config) { cfg.Device.CellWidthPx = 0 },
			wantField: "device.cell_width_px",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			if tc.mutate != nil {
				tc.mutate(cfg)
			}

			err := ValidateConfig(cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *valentineerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *valentineerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}
