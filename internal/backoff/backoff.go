// Package backoff computes retry wait durations. The calculation is a pure
// function of the attempt number, an optional server-supplied hint and the
// configured bounds; given a fixed rand source the result is deterministic.
package backoff

import (
	"math/rand"
	"time"
)

// Config holds the bounds for wait calculation.
type Config struct {
	// Min is the base delay for the first attempt and the lower clamp.
	Min time.Duration
	// Max is the upper clamp for both computed delays and server hints.
	Max time.Duration
	// Multiplier is the per-attempt growth factor (2.0 doubles each attempt).
	Multiplier float64
	// Jitter is the uniform randomization fraction in [0, 1].
	Jitter float64
}

// Wait returns the duration to sleep before retrying after the given attempt.
// Attempts are 1-based: attempt 1 waits Min (plus jitter), attempt 2 waits
// Min*Multiplier, and so on, clamped to [Min, Max].
//
// A positive hint (the server explicitly said how long to wait, e.g. via
// Retry-After on a throttling response) short-circuits the exponential
// calculation and is honored up to Max. The result is never zero or negative.
func Wait(attempt int, hint time.Duration, cfg Config, rng *rand.Rand) time.Duration {
	if hint > 0 {
		if hint > cfg.Max {
			return cfg.Max
		}
		return hint
	}

	if attempt < 1 {
		attempt = 1
	}
	// Cap the exponent so the float math cannot overflow into a negative
	// duration for pathological attempt counts.
	exp := attempt - 1
	if exp > 30 {
		exp = 30
	}

	d := time.Duration(float64(cfg.Min) * pow(cfg.Multiplier, exp))
	if d < cfg.Min {
		d = cfg.Min
	}
	if d > cfg.Max {
		d = cfg.Max
	}

	jitter := clampJitter(cfg.Jitter)
	if jitter > 0 && rng != nil {
		amount := time.Duration(float64(d) * jitter * rng.Float64())
		if d+amount > cfg.Max {
			d = cfg.Max
		} else {
			d += amount
		}
	}

	if d <= 0 {
		d = cfg.Min
	}
	return d
}

func clampJitter(j float64) float64 {
	if j < 0 {
		return 0
	}
	if j > 1 {
		return 1
	}
	return j
}

func pow(base float64, exponent int) float64 {
	result := 1.0
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}
