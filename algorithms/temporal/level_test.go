package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelZeroFrame(t *testing.T) {
	lm := NewLevelMeter()
	assert.Equal(t, 0.0, lm.Level(make([]float64, 1024)))
	assert.Equal(t, 0.0, lm.Level(nil))
}

func TestLevelFullScaleSine(t *testing.T) {
	lm := NewLevelMeter()

	frame := make([]float64, 1600)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 100 * float64(i) / 16000)
	}

	// RMS of a full-scale sine is 1/sqrt(2).
	assert.InDelta(t, 1/math.Sqrt2, lm.Level(frame), 1e-3)
}

func TestLevelSeries(t *testing.T) {
	lm := NewLevelMeter()

	signal := []float64{0, 0, 0, 0, 1, -1, 1, -1}
	levels := lm.LevelSeries(signal, 4)

	assert.Equal(t, []float64{0, 1}, levels)
	assert.Empty(t, lm.LevelSeries(signal, 0))
	assert.Empty(t, lm.LevelSeries(signal[:2], 4))
}
