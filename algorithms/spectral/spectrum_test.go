package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sine(freq float64, sampleRate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

func TestSpectrumDBLength(t *testing.T) {
	a := NewAnalyzer()

	spec := a.SpectrumDB(sine(440, 16000, 512), 512)
	assert.Len(t, spec, 256)

	// Short frames are zero-padded, long frames truncated.
	assert.Len(t, a.SpectrumDB(make([]float64, 10), 256), 128)
	assert.Len(t, a.SpectrumDB(make([]float64, 4096), 256), 128)
	assert.Empty(t, a.SpectrumDB(nil, 0))
}

func TestSpectrumDBPeakAtSineBin(t *testing.T) {
	a := NewAnalyzer()
	sampleRate := 16000
	n := 512
	// 1000 Hz lands on bin 32 exactly (1000 * 512 / 16000).
	spec := a.SpectrumDB(sine(1000, sampleRate, n), n)

	peakBin := 0
	for i, v := range spec {
		if v > spec[peakBin] {
			peakBin = i
		}
	}
	assert.Equal(t, 32, peakBin)
}

func TestSpectrogramColumnShape(t *testing.T) {
	a := NewAnalyzer()
	col := a.SpectrogramColumn(sine(440, 16000, 512))

	assert.Len(t, col, ColumnBins)

	minVal, maxVal := col[0], col[0]
	for _, v := range col {
		assert.False(t, math.IsNaN(v))
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	assert.GreaterOrEqual(t, minVal, 0.0)
	assert.LessOrEqual(t, maxVal, ColumnFullScale)
}

func TestSpectrogramColumnSilence(t *testing.T) {
	a := NewAnalyzer()
	// A flat spectrum shifts to all zeros and scaling is skipped.
	col := a.SpectrogramColumn(make([]float64, 512))

	assert.Len(t, col, ColumnBins)
	for _, v := range col {
		assert.Equal(t, 0.0, v)
	}
}
