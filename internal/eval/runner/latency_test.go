package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats(t *testing.T) {
	t.Run("empty sample", func(t *testing.T) {
		s := ComputeLatencyStats(nil)

		assert.Zero(t, s.SampleCount)
		assert.Zero(t, s.Mean)
	})

	t.Run("single sample", func(t *testing.T) {
		s := ComputeLatencyStats([]time.Duration{5 * time.Millisecond})

		assert.Equal(t, 5*time.Millisecond, s.Min)
		assert.Equal(t, 5*time.Millisecond, s.Max)
		assert.Equal(t, 5*time.Millisecond, s.P50)
		assert.Equal(t, 5*time.Millisecond, s.P95)
		assert.Equal(t, 1, s.SampleCount)
	})

	t.Run("unsorted input", func(t *testing.T) {
		durations := []time.Duration{
			30 * time.Millisecond,
			10 * time.Millisecond,
			20 * time.Millisecond,
		}

		s := ComputeLatencyStats(durations)

		assert.Equal(t, 10*time.Millisecond, s.Min)
		assert.Equal(t, 30*time.Millisecond, s.Max)
		assert.Equal(t, 20*time.Millisecond, s.Mean)
		assert.Equal(t, 20*time.Millisecond, s.P50)
		assert.Equal(t, 3, s.SampleCount)
	})
}
