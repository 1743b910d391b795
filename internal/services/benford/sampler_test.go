package benford

import (
	"math/rand"
	"testing"

	"fraudlens/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampler_ConfigValidation(t *testing.T) {
	tests := []struct {
		name         string
		size         int
		distribution []float64
		wantErr      error
	}{
		{
			name:         "valid default configuration",
			size:         DefaultSampleSize,
			distribution: DefaultDistribution,
		},
		{
			name:         "zero sample size",
			size:         0,
			distribution: DefaultDistribution,
			wantErr:      errors.ErrInvalidSampleSize,
		},
		{
			name:         "negative sample size",
			size:         -10,
			distribution: DefaultDistribution,
			wantErr:      errors.ErrInvalidSampleSize,
		},
		{
			name:         "too few weights",
			size:         200,
			distribution: []float64{0.5, 0.5},
			wantErr:      errors.ErrDistributionLength,
		},
		{
			name:         "negative weight",
			size:         200,
			distribution: []float64{0.40, 0.18, 0.12, 0.10, 0.08, 0.07, 0.06, 0.05, -0.06},
			wantErr:      errors.ErrNegativeWeight,
		},
		{
			name:         "weights do not sum to one",
			size:         200,
			distribution: []float64{0.30, 0.18, 0.12, 0.10, 0.08, 0.07, 0.06, 0.05, 0.05},
			wantErr:      errors.ErrDistributionSum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSampler(tt.size, tt.distribution)
			if tt.wantErr != nil {
				assert.Nil(t, s)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, s.SampleSize())
		})
	}
}

func TestSampler_Sample(t *testing.T) {
	s, err := NewSampler(DefaultSampleSize, DefaultDistribution)
	require.NoError(t, err)

	sample := s.Sample(rand.New(rand.NewSource(42)))

	assert.Equal(t, DefaultSampleSize, sample.SampleSize)
	assert.Len(t, sample.DigitCounts, 9)

	total := 0
	for d := 1; d <= 9; d++ {
		count, ok := sample.DigitCounts[d]
		assert.True(t, ok, "digit %d missing from counts", d)
		assert.GreaterOrEqual(t, count, 0)
		total += count
	}
	assert.Equal(t, DefaultSampleSize, total)
}

func TestSampler_SampleN(t *testing.T) {
	s, err := NewSampler(DefaultSampleSize, DefaultDistribution)
	require.NoError(t, err)

	sample := s.SampleN(rand.New(rand.NewSource(7)), 50)

	assert.Equal(t, 50, sample.SampleSize)
	total := 0
	for _, count := range sample.DigitCounts {
		total += count
	}
	assert.Equal(t, 50, total)
}

func TestSampler_DeterministicUnderFixedSeed(t *testing.T) {
	s, err := NewSampler(DefaultSampleSize, DefaultDistribution)
	require.NoError(t, err)

	first := s.Sample(rand.New(rand.NewSource(99)))
	second := s.Sample(rand.New(rand.NewSource(99)))

	assert.Equal(t, first, second)
}

func TestSampler_DegenerateDistribution(t *testing.T) {
	// All weight on digit 1: every draw must land there.
	s, err := NewSampler(10, []float64{1, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	sample := s.Sample(rand.New(rand.NewSource(1)))

	assert.Equal(t, 10, sample.DigitCounts[1])
	for d := 2; d <= 9; d++ {
		assert.Equal(t, 0, sample.DigitCounts[d])
	}
}
