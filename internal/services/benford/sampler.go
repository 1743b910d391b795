// Package benford draws synthetic first-digit samples from the theoretical
// Benford distribution for the dashboard's digit test chart. The sample
// illustrates the test itself; it is never derived from the financial inputs.
package benford

import (
	"math"
	"math/rand"
	"time"

	"fraudlens/internal/errors"
	"fraudlens/internal/models"
)

const (
	// DefaultSampleSize matches the original monitoring dashboard.
	DefaultSampleSize = 200

	sumTolerance = 1e-6
)

// DefaultDistribution is the theoretical Benford first-digit distribution
// for digits 1 through 9.
var DefaultDistribution = []float64{0.30, 0.18, 0.12, 0.10, 0.08, 0.07, 0.06, 0.05, 0.04}

// Sampler draws fixed-size categorical samples of first digits. It holds no
// mutable state after construction and is safe for concurrent use as long as
// each call gets its own rand source.
type Sampler struct {
	size       int
	cumulative [9]float64
}

// NewSampler validates the configuration and precomputes cumulative weights.
// Misconfiguration is a startup error: no samples can be drawn from it.
func NewSampler(sampleSize int, distribution []float64) (*Sampler, error) {
	if sampleSize <= 0 {
		return nil, errors.ErrInvalidSampleSize
	}
	if len(distribution) != 9 {
		return nil, errors.ErrDistributionLength
	}

	var sum float64
	for _, w := range distribution {
		if w < 0 {
			return nil, errors.ErrNegativeWeight
		}
		sum += w
	}
	if math.Abs(sum-1) > sumTolerance {
		return nil, errors.ErrDistributionSum
	}

	s := &Sampler{size: sampleSize}
	var acc float64
	for i, w := range distribution {
		acc += w
		s.cumulative[i] = acc
	}
	// Guard the last bucket against accumulated rounding.
	s.cumulative[8] = math.Max(s.cumulative[8], 1)
	return s, nil
}

// SampleSize returns the configured default draw count.
func (s *Sampler) SampleSize() int {
	return s.size
}

// Sample draws the configured number of digits using r.
func (s *Sampler) Sample(r *rand.Rand) models.BenfordSample {
	return s.SampleN(r, s.size)
}

// SampleN draws size digits using r and tabulates them. All nine digits are
// present in the result; undrawn digits carry a zero count.
func (s *Sampler) SampleN(r *rand.Rand, size int) models.BenfordSample {
	counts := make(map[int]int, 9)
	for d := 1; d <= 9; d++ {
		counts[d] = 0
	}
	for i := 0; i < size; i++ {
		counts[s.draw(r)]++
	}
	return models.BenfordSample{SampleSize: size, DigitCounts: counts}
}

func (s *Sampler) draw(r *rand.Rand) int {
	u := r.Float64()
	for i, c := range s.cumulative {
		if u < c {
			return i + 1
		}
	}
	return 9
}

// NewRand returns a freshly seeded generator. Each request draws from its
// own generator so concurrent samples never share state.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
