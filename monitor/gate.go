package monitor

import (
	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
)

// VoiceActivityGate decides whether a frame counts as active voice.
// Stateless and pure: no hysteresis, no history.
type VoiceActivityGate struct {
	VADThreshold float64
	MinPitchHz   float64
	MaxPitchHz   float64
}

// Active reports whether a frame with the given RMS level and pitch estimate
// carries voice. Low volume vetoes regardless of pitch; an absent or
// out-of-band pitch vetoes regardless of volume.
func (g VoiceActivityGate) Active(volume float64, pitch tonal.PitchEstimate) bool {
	if volume <= g.VADThreshold {
		return false
	}
	if !pitch.Voiced {
		return false
	}
	return pitch.Hz >= g.MinPitchHz && pitch.Hz <= g.MaxPitchHz
}
