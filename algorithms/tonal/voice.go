package tonal

import (
	"github.com/RyanBlaney/sonido-vox/algorithms/common"
)

// VoiceType is a coarse vocal-range bucket. The breakpoints are a documented
// heuristic over fundamental frequency, not physiologically precise.
type VoiceType int

const (
	VoiceNone VoiceType = iota
	VoiceBass
	VoiceBaritone
	VoiceTenor
	VoiceAlto
	VoiceSoprano
)

func (v VoiceType) String() string {
	switch v {
	case VoiceBass:
		return "Bass"
	case VoiceBaritone:
		return "Baritone"
	case VoiceTenor:
		return "Tenor"
	case VoiceAlto:
		return "Alto"
	case VoiceSoprano:
		return "Soprano"
	default:
		return "--"
	}
}

// Classification breakpoints in Hz
const (
	bassMax     = 120.0
	baritoneMax = 180.0
	tenorMax    = 250.0
	altoMax     = 350.0
)

// ClassifyVoice buckets a fundamental frequency into a voice type
func ClassifyVoice(pitchHz float64) VoiceType {
	switch {
	case pitchHz < bassMax:
		return VoiceBass
	case pitchHz < baritoneMax:
		return VoiceBaritone
	case pitchHz < tenorMax:
		return VoiceTenor
	case pitchHz < altoMax:
		return VoiceAlto
	default:
		return VoiceSoprano
	}
}

// VoiceProfile is a read-only snapshot of the classifier state.
// Stability and Clarity are 0..100 scores; both stay 0 until enough pitch
// samples have accumulated.
type VoiceProfile struct {
	LowCount  int `json:"low_count"`  // Bass
	MidCount  int `json:"mid_count"`  // Baritone and Tenor
	HighCount int `json:"high_count"` // Alto and Soprano

	Current   VoiceType `json:"current"`
	Samples   int       `json:"samples"`
	Stability float64   `json:"stability"`
	Clarity   float64   `json:"clarity"`
}

// VoiceClassifier accumulates voiced-pitch observations into range buckets and
// small-window stability/clarity scores. It owns only its private window; the
// frame processor feeds it one observation per active frame.
type VoiceClassifier struct {
	recent *common.FIFO[float64]

	lowCount  int
	midCount  int
	highCount int
	samples   int

	current   VoiceType
	stability float64
	clarity   float64
}

// Sample counts controlling the score window
const (
	scoreWindow     = 5
	scoreMinSamples = 6
)

// NewVoiceClassifier creates an empty classifier
func NewVoiceClassifier() *VoiceClassifier {
	return &VoiceClassifier{recent: common.NewFIFO[float64](scoreWindow)}
}

// Observe classifies one voiced pitch and updates the profile. currentVolume
// is the RMS level of the same frame.
func (vc *VoiceClassifier) Observe(pitchHz, currentVolume float64) VoiceType {
	voice := ClassifyVoice(pitchHz)

	switch voice {
	case VoiceBass:
		vc.lowCount++
	case VoiceBaritone, VoiceTenor:
		vc.midCount++
	default:
		vc.highCount++
	}

	vc.recent.Push(pitchHz)
	vc.samples++
	vc.current = voice

	if vc.samples >= scoreMinSamples {
		spread := common.StandardDeviation(vc.recent.Last(scoreWindow))
		vc.stability = common.Clamp(100.0-5.0*spread, 0.0, 100.0)
		vc.clarity = common.Clamp(800.0*currentVolume, 0.0, 100.0)
	}

	return voice
}

// Profile returns a snapshot of the accumulated state
func (vc *VoiceClassifier) Profile() VoiceProfile {
	return VoiceProfile{
		LowCount:  vc.lowCount,
		MidCount:  vc.midCount,
		HighCount: vc.highCount,
		Current:   vc.current,
		Samples:   vc.samples,
		Stability: vc.stability,
		Clarity:   vc.clarity,
	}
}

// Samples returns the accumulated voiced-pitch count
func (vc *VoiceClassifier) Samples() int {
	return vc.samples
}

// Reset clears all accumulated state
func (vc *VoiceClassifier) Reset() {
	*vc = *NewVoiceClassifier()
}
