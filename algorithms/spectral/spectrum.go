package spectral

import (
	"math"
	"math/cmplx"
)

const (
	// magFloor keeps the log defined on silent bins
	magFloor = 1e-10

	// Spectrogram column geometry: a 256-point transform yields 128 usable
	// bins of which the lowest 64 are kept for display.
	columnFFTSize   = 256
	columnRawBins   = 128
	ColumnBins      = 64
	ColumnFullScale = 64.0
)

// Analyzer computes dB magnitude spectra and display-ready spectrogram columns.
// Any internal numeric fault degrades to a zeroed result; the per-frame pipeline
// never sees an error from this type.
type Analyzer struct {
	fft *FFT
}

// NewAnalyzer creates a new spectral analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{fft: NewFFT()}
}

// SpectrumDB returns the n/2 non-negative-frequency magnitudes of an n-point
// transform in dB: 20*log10(|FFT| + floor). The frame is truncated or
// zero-padded to n points.
func (a *Analyzer) SpectrumDB(frame []float64, n int) (out []float64) {
	if n < 2 {
		return []float64{}
	}

	out = make([]float64, n/2)
	defer func() {
		if r := recover(); r != nil {
			out = make([]float64, n/2)
		}
	}()

	spectrum := a.fft.ComputeSized(frame, n)
	for i := range out {
		out[i] = 20.0 * math.Log10(cmplx.Abs(spectrum[i])+magFloor)
	}

	return sanitize(out)
}

// SpectrogramColumn reduces a frame to a 64-bin display column: 256-point dB
// magnitude spectrum, low 128 bins, shifted so the minimum is 0 and scaled so
// the maximum is 64 (scaling skipped for a flat column), then cut to the low
// 64 bins.
func (a *Analyzer) SpectrogramColumn(frame []float64) (col []float64) {
	col = make([]float64, ColumnBins)
	defer func() {
		if r := recover(); r != nil {
			col = make([]float64, ColumnBins)
		}
	}()

	db := a.SpectrumDB(frame, columnFFTSize)
	if len(db) < columnRawBins {
		return col
	}
	bins := db[:columnRawBins]

	minVal := bins[0]
	for _, v := range bins[1:] {
		if v < minVal {
			minVal = v
		}
	}

	shifted := make([]float64, columnRawBins)
	maxVal := 0.0
	for i, v := range bins {
		shifted[i] = v - minVal
		if shifted[i] > maxVal {
			maxVal = shifted[i]
		}
	}

	if maxVal > 0 {
		scale := ColumnFullScale / maxVal
		for i := range shifted {
			shifted[i] *= scale
		}
	}

	copy(col, shifted[:ColumnBins])
	return sanitize(col)
}

// sanitize maps NaN/Inf bins to 0 in place
func sanitize(vals []float64) []float64 {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			vals[i] = 0
		}
	}
	return vals
}
