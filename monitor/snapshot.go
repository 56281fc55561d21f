package monitor

import (
	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
)

// Snapshot is the immutable per-cycle view handed to consumers. All slices are
// deep copies: mutating a snapshot never affects processor state, and later
// cycles never mutate an already-published snapshot.
type Snapshot struct {
	FrameCount uint64 `json:"frame_count"`
	Active     bool   `json:"active"`

	Pitch  tonal.PitchEstimate `json:"pitch"`
	Volume float64             `json:"volume"`
	Note   tonal.Note          `json:"note"`

	Voice    tonal.VoiceProfile  `json:"voice"`
	ScaleKey tonal.ScaleKeyGuess `json:"scale_key"`
	Stats    Stats               `json:"stats"`

	PitchHistory  []float64    `json:"pitch_history"`
	VolumeHistory []float64    `json:"volume_history"`
	Spectrogram   [][]float64  `json:"spectrogram"`
	Notes         []tonal.Note `json:"notes"`

	// Frame holds the raw samples this snapshot was computed from
	Frame []float64 `json:"-"`
}
