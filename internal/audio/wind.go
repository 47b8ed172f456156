// Package audio turns snowfall activity into a soft wind bed.
package audio

import (
	"math"
	"sync/atomic"

	"snowfall/pkg/core"
)

const (
	// cutoff of the one-pole low-pass applied to the noise, in Hz.
	cutoff = 600.0
	// glide is the time constant for gain changes, in seconds.
	glide = 0.25
	// maxGain keeps the bed well under full scale.
	maxGain = 0.35
)

// Wind is an endless beep.Streamer of low-passed noise. Its loudness follows
// the activity set by the frame loop; SetActivity is safe to call while the
// speaker goroutine is streaming.
type Wind struct {
	rate   float64
	target atomic.Uint64

	seed  core.Seed
	lp    float64
	gain  float64
	alpha float64
	slew  float64
}

// NewWind returns a silent wind streamer for the given sample rate.
func NewWind(sampleRate int, seed core.Seed) *Wind {
	rate := float64(sampleRate)
	if rate <= 0 {
		rate = 44100
	}
	return &Wind{
		rate:  rate,
		seed:  seed,
		alpha: 1 - math.Exp(-2*math.Pi*cutoff/rate),
		slew:  1 - math.Exp(-1/(glide*rate)),
	}
}

// SetActivity sets the target loudness from the fraction of cells that moved
// in the last frame. Values are clamped to [0, 1].
func (w *Wind) SetActivity(a float64) {
	if a < 0 || math.IsNaN(a) {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	w.target.Store(math.Float64bits(a))
}

// Activity reports the current target.
func (w *Wind) Activity() float64 {
	return math.Float64frombits(w.target.Load())
}

// Stream fills samples with noise; it never ends.
func (w *Wind) Stream(samples [][2]float64) (n int, ok bool) {
	// Square root so sparse flurries are still audible.
	target := math.Sqrt(w.Activity()) * maxGain
	for i := range samples {
		var r float64
		r, w.seed = w.seed.Float64()
		w.lp += w.alpha * ((r*2 - 1) - w.lp)
		w.gain += w.slew * (target - w.gain)
		v := w.lp * w.gain
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err always returns nil.
func (w *Wind) Err() error { return nil }
