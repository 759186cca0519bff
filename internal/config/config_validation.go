package config

import (
	"fmt"

	valentineerrors "github.com/alexisbeaulieu97/valentine/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return valentineerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	d := cfg.Timing.Parse()
	if d.JitterMin > d.JitterMax {
		return valentineerrors.NewValidationError("timing.jitter_max",
			fmt.Sprintf("jitter_max %s is shorter than jitter_min %s", d.JitterMax, d.JitterMin), nil)
	}
	// The accept completion runs on the proposal's timers, which are
	// cancelled when the celebration mounts.
	if d.AcceptDelay >= d.TransitionDuration {
		return valentineerrors.NewValidationError("timing.accept_delay",
			fmt.Sprintf("accept_delay %s must be shorter than transition_duration %s", d.AcceptDelay, d.TransitionDuration), nil)
	}

	return nil
}
