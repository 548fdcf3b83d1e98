package actor

import (
	"math/rand"
	"time"

	"github.com/benbjohnson/clock"
)

// Delay describes a random pause: a mean duration perturbed by Gaussian
// jitter with the given deviation. A zero Delay never sleeps.
type Delay struct {
	Mean time.Duration
	Dev  time.Duration
}

// sample draws one duration, clamped at zero. The jitter is the classic
// 12-sample sum-of-uniforms approximation of a standard normal.
func (d Delay) sample() time.Duration {
	r := -6.0
	for i := 0; i < 12; i++ {
		r += rand.Float64()
	}
	dur := time.Duration(float64(d.Mean) + r*float64(d.Dev))
	if dur < 0 {
		dur = 0
	}
	return dur
}

// Sleep suspends the caller for one sampled duration on the given clock.
func (d Delay) Sleep(clk clock.Clock) {
	if dur := d.sample(); dur > 0 {
		clk.Sleep(dur)
	}
}
