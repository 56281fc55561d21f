package tonal

import (
	"github.com/RyanBlaney/sonido-vox/algorithms/common"
)

// PitchEstimate is an optional fundamental-frequency value. A zero-value
// estimate means unvoiced; a voiced estimate always lies inside the detector's
// [MinFreq, MaxFreq] band.
type PitchEstimate struct {
	Hz     float64 `json:"hz"`
	Voiced bool    `json:"voiced"`
}

// Unvoiced is the neutral estimate substituted on silence, rejection, or any
// internal numeric fault.
func Unvoiced() PitchEstimate {
	return PitchEstimate{}
}

// PitchParams contains parameters for autocorrelation pitch detection
type PitchParams struct {
	SampleRate int `json:"sample_rate"`

	// Frequency range constraints
	MinFreq float64 `json:"min_freq"` // Minimum frequency (Hz)
	MaxFreq float64 `json:"max_freq"` // Maximum frequency (Hz)

	// Frames whose peak amplitude stays below this are unvoiced outright
	SilenceThreshold float64 `json:"silence_threshold"`

	// Lag search window. Lags below MinLag are excluded to avoid
	// short-period aliasing; MaxLag caps the correlation cost per frame.
	MinLag int `json:"min_lag"`
	MaxLag int `json:"max_lag"`
}

// DefaultPitchParams returns the default detection parameters for a sample rate
func DefaultPitchParams(sampleRate int) PitchParams {
	return PitchParams{
		SampleRate:       sampleRate,
		MinFreq:          50.0,  // Low male voice
		MaxFreq:          500.0, // High female voice
		SilenceThreshold: 0.001,
		MinLag:           20,
		MaxLag:           512,
	}
}

// PitchDetector estimates fundamental frequency with a plain autocorrelation
// peak search. Deliberately a simple method, not a reference-grade estimator.
//
// References:
// - Rabiner, L.R. (1977). "On the use of autocorrelation analysis for pitch detection"
// - de Cheveigné, A., Kawahara, H. (2002). "YIN, a fundamental frequency estimator for speech and music"
type PitchDetector struct {
	params PitchParams
}

// NewPitchDetector creates a pitch detector with default parameters
func NewPitchDetector(sampleRate int) *PitchDetector {
	return &PitchDetector{params: DefaultPitchParams(sampleRate)}
}

// NewPitchDetectorWithParams creates a pitch detector with custom parameters
func NewPitchDetectorWithParams(params PitchParams) *PitchDetector {
	return &PitchDetector{params: params}
}

// Estimate returns the pitch of a single frame, or unvoiced. It never returns
// an error: rejection and internal numeric faults both degrade to unvoiced.
func (pd *PitchDetector) Estimate(frame []float64) (est PitchEstimate) {
	defer func() {
		if r := recover(); r != nil {
			est = Unvoiced()
		}
	}()

	if len(frame) == 0 {
		return Unvoiced()
	}

	// Remove DC so a biased but quiet signal does not fake periodicity.
	x := common.SubtractMean(frame)
	if common.PeakAbs(x) < pd.params.SilenceThreshold {
		return Unvoiced()
	}

	maxLag := pd.params.MaxLag
	if maxLag > len(x) {
		maxLag = len(x)
	}
	if maxLag <= pd.params.MinLag {
		return Unvoiced()
	}

	// corr[k] = sum x[i]*x[i+k], indexed by lag; corr[0] stays unused.
	corr := make([]float64, maxLag+1)
	for k := 1; k <= maxLag; k++ {
		sum := 0.0
		for i := 0; i+k < len(x); i++ {
			sum += x[i] * x[i+k]
		}
		corr[k] = sum
	}

	// Globally largest local maximum over the allowed lag window.
	bestLag := 0
	bestVal := 0.0
	for k := pd.params.MinLag; k <= maxLag; k++ {
		rising := corr[k] > corr[k-1]
		falling := k == maxLag || corr[k] >= corr[k+1]
		if rising && falling && (bestLag == 0 || corr[k] > bestVal) {
			bestLag = k
			bestVal = corr[k]
		}
	}

	if bestLag <= 0 {
		return Unvoiced()
	}

	hz := float64(pd.params.SampleRate) / float64(bestLag)
	if hz < pd.params.MinFreq || hz > pd.params.MaxFreq {
		return Unvoiced()
	}

	return PitchEstimate{Hz: hz, Voiced: true}
}

// GetParameters returns the current parameters
func (pd *PitchDetector) GetParameters() PitchParams {
	return pd.params
}
