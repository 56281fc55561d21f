package monitor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/sonido-vox/algorithms/common"
	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
)

func TestRunningStatsEmpty(t *testing.T) {
	var rs RunningStats
	assert.Zero(t, rs.Count())
	assert.Zero(t, rs.Mean())
	assert.Zero(t, rs.StdDev())
}

func TestRunningStatsMatchesBatch(t *testing.T) {
	data := []float64{220.5, 221.0, 219.8, 225.3, 218.0, 230.1, 221.7}

	var rs RunningStats
	for _, x := range data {
		rs.Add(x)
	}

	assert.Equal(t, uint64(len(data)), rs.Count())
	assert.InDelta(t, common.Mean(data), rs.Mean(), 1e-9)
	assert.InDelta(t, common.StandardDeviation(data), rs.StdDev(), 1e-9)
}

func TestRunningStatsSingleValue(t *testing.T) {
	var rs RunningStats
	rs.Add(42.0)

	assert.Equal(t, 42.0, rs.Mean())
	assert.Zero(t, rs.StdDev(), "stddev undefined below two samples")
}

func TestAggregatorActivityPercent(t *testing.T) {
	a := NewAggregator()
	h := NewHistoryStore(8, 8, 8, 4)

	empty := a.Snapshot(h, 0)
	assert.Zero(t, empty.VoiceActivityPct, "no frames yet")

	for i := uint64(0); i < 8; i++ {
		active := i%2 == 0
		pitch := AbsentPitch
		if active {
			pitch = 220.0
		}
		h.RecordFrame(i, 0.1, tonal.PitchEstimate{Hz: pitch, Voiced: active})
		a.ObserveFrame(active, pitch)
	}

	s := a.Snapshot(h, 7)
	assert.Equal(t, uint64(8), s.FrameCount)
	assert.Equal(t, uint64(4), s.VoiceActiveFrames)
	assert.InDelta(t, 50.0, s.VoiceActivityPct, 1e-9)
}

func TestAggregatorPitchStats(t *testing.T) {
	a := NewAggregator()
	h := NewHistoryStore(8, 8, 8, 4)

	pitches := []float64{200.0, 210.0, 220.0, 230.0}
	for i, hz := range pitches {
		h.RecordFrame(uint64(i), 0.2, tonal.PitchEstimate{Hz: hz, Voiced: true})
		a.ObserveFrame(true, hz)
	}
	// One unvoiced frame must not pollute pitch statistics
	h.RecordFrame(4, 0.001, tonal.Unvoiced())
	a.ObserveFrame(false, AbsentPitch)

	s := a.Snapshot(h, 4)
	assert.InDelta(t, 215.0, s.SessionMeanPitch, 1e-9)
	assert.InDelta(t, common.StandardDeviation(pitches), s.SessionPitchStdDev, 1e-9)
	assert.InDelta(t, 215.0, s.WindowMeanPitch, 1e-9)

	assert.Equal(t, AbsentPitch, s.CurrentPitch, "index 4 is the unvoiced frame")
	assert.Equal(t, 0.001, s.CurrentVolume)
	assert.False(t, math.IsNaN(s.WindowPitchStdDev))
}
