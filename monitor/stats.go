package monitor

import (
	"math"

	"github.com/RyanBlaney/sonido-vox/algorithms/common"
)

// RunningStats is a Welford online mean/variance accumulator. Constant memory
// regardless of session length, replacing raw full-session sample retention.
//
// Reference: Welford, B.P. (1962). "Note on a method for calculating corrected
// sums of squares"
type RunningStats struct {
	n    uint64
	mean float64
	m2   float64
}

// Add folds one observation into the accumulator
func (rs *RunningStats) Add(x float64) {
	rs.n++
	delta := x - rs.mean
	rs.mean += delta / float64(rs.n)
	rs.m2 += delta * (x - rs.mean)
}

// Count returns the number of observations
func (rs *RunningStats) Count() uint64 {
	return rs.n
}

// Mean returns the running mean, 0 before any observation
func (rs *RunningStats) Mean() float64 {
	return rs.mean
}

// StdDev returns the running sample standard deviation
func (rs *RunningStats) StdDev() float64 {
	if rs.n < 2 {
		return 0.0
	}
	return math.Sqrt(rs.m2 / float64(rs.n-1))
}

// Stats is the read-only session summary attached to every snapshot.
// Window statistics cover the non-absent entries of the pitch ring; session
// statistics come from the bounded running accumulator.
type Stats struct {
	FrameCount        uint64  `json:"frame_count"`
	VoiceActiveFrames uint64  `json:"voice_active_frames"`
	VoiceActivityPct  float64 `json:"voice_activity_pct"`

	CurrentPitch  float64 `json:"current_pitch"` // just-written pitch slot, 0 when unvoiced
	CurrentVolume float64 `json:"current_volume"`

	WindowMeanPitch   float64 `json:"window_mean_pitch"`
	WindowPitchStdDev float64 `json:"window_pitch_std_dev"`

	SessionMeanPitch   float64 `json:"session_mean_pitch"`
	SessionPitchStdDev float64 `json:"session_pitch_std_dev"`
}

// Aggregator maintains monotonic frame counters and the session pitch
// accumulator, and assembles the per-cycle Stats value.
type Aggregator struct {
	frames       uint64
	activeFrames uint64
	pitch        RunningStats
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// ObserveFrame records one processed cycle. pitchHz is folded into the session
// accumulator only when voiced.
func (a *Aggregator) ObserveFrame(active bool, pitchHz float64) {
	a.frames++
	if active {
		a.activeFrames++
	}
	if pitchHz != AbsentPitch {
		a.pitch.Add(pitchHz)
	}
}

// FrameCount returns the monotonic processed-frame count
func (a *Aggregator) FrameCount() uint64 {
	return a.frames
}

// Snapshot assembles the summary for the cycle that just wrote frame index
func (a *Aggregator) Snapshot(history *HistoryStore, index uint64) Stats {
	s := Stats{
		FrameCount:         a.frames,
		VoiceActiveFrames:  a.activeFrames,
		CurrentPitch:       history.PitchAt(index),
		CurrentVolume:      history.VolumeAt(index),
		SessionMeanPitch:   a.pitch.Mean(),
		SessionPitchStdDev: a.pitch.StdDev(),
	}

	if a.frames > 0 {
		s.VoiceActivityPct = 100.0 * float64(a.activeFrames) / float64(a.frames)
	}

	voiced := history.VoicedPitches()
	s.WindowMeanPitch = common.Mean(voiced)
	s.WindowPitchStdDev = common.StandardDeviation(voiced)

	return s
}
