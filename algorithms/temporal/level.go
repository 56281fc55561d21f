package temporal

import (
	"github.com/RyanBlaney/sonido-vox/algorithms/common"
)

// LevelMeter computes per-frame RMS level.
// Defined and non-negative for any finite input, 0 for the all-zero frame.
type LevelMeter struct {
	// No state needed - stateless calculation
}

// NewLevelMeter creates a new RMS level meter
func NewLevelMeter() *LevelMeter {
	return &LevelMeter{}
}

// Level returns the RMS of the frame
func (lm *LevelMeter) Level(frame []float64) float64 {
	return common.RMS(frame)
}

// LevelSeries computes RMS for consecutive non-overlapping windows of size
// within signal, useful for coarse envelope displays.
func (lm *LevelMeter) LevelSeries(signal []float64, size int) []float64 {
	if size <= 0 || len(signal) < size {
		return []float64{}
	}

	numFrames := len(signal) / size
	levels := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		levels[i] = common.RMS(signal[i*size : (i+1)*size])
	}

	return levels
}
