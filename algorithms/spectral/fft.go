package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality on real-valued frames
type FFT struct {
	// No state needed for now
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the FFT of x using mjibson/go-dsp.
// go-dsp handles all sizes, including non-power-of-2.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.FFTReal(x)
}

// ComputeSized computes the FFT of x truncated or zero-padded to n points
func (f *FFT) ComputeSized(x []float64, n int) []complex128 {
	if n <= 0 {
		return []complex128{}
	}

	sized := make([]float64, n)
	copy(sized, x)

	return fft.FFTReal(sized)
}
