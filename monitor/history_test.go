package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-vox/algorithms/spectral"
	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
)

func TestHistoryStoreInitialState(t *testing.T) {
	h := NewHistoryStore(8, 8, 8, 4)

	assert.Len(t, h.PitchValues(), 8)
	assert.Empty(t, h.VoicedPitches(), "unwritten slots hold the absent sentinel")
	assert.Empty(t, h.NoteValues())

	cols := h.SpectrogramValues()
	require.Len(t, cols, 8)
	for _, col := range cols {
		assert.Len(t, col, spectral.ColumnBins)
		for _, v := range col {
			assert.Zero(t, v)
		}
	}
}

func TestHistoryStoreRecordFrame(t *testing.T) {
	h := NewHistoryStore(4, 4, 4, 4)

	h.RecordFrame(0, 0.5, tonal.PitchEstimate{Hz: 220.0, Voiced: true})
	h.RecordFrame(1, 0.01, tonal.Unvoiced())

	assert.Equal(t, 220.0, h.PitchAt(0))
	assert.Equal(t, AbsentPitch, h.PitchAt(1))
	assert.Equal(t, 0.5, h.VolumeAt(0))
	assert.Equal(t, 0.01, h.VolumeAt(1))
	assert.Equal(t, []float64{220.0}, h.VoicedPitches())
}

func TestHistoryStoreRingWrap(t *testing.T) {
	h := NewHistoryStore(4, 4, 4, 4)

	for i := uint64(0); i < 4; i++ {
		h.RecordFrame(i, 0.5, tonal.PitchEstimate{Hz: 100.0 + float64(i), Voiced: true})
	}
	assert.Equal(t, []float64{100, 101, 102, 103}, h.PitchValues())

	// The fifth write lands on slot 0
	h.RecordFrame(4, 0.5, tonal.PitchEstimate{Hz: 200.0, Voiced: true})
	assert.Equal(t, []float64{200, 101, 102, 103}, h.PitchValues())
	assert.Len(t, h.VoicedPitches(), 4)
}

func TestHistoryStoreNotes(t *testing.T) {
	h := NewHistoryStore(4, 4, 4, 3)

	for _, freq := range []float64{220.0, 246.94, 261.63, 293.66} {
		h.RecordActive(0, make([]float64, spectral.ColumnBins), tonal.ToNote(freq))
	}

	// FIFO capacity 3: oldest note evicted
	names := make([]string, 0, 3)
	for _, n := range h.NoteValues() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"B3", "C4", "D4"}, names)

	recent := h.RecentNotes(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "C4", recent[0].Name)
	assert.Equal(t, "D4", recent[1].Name)
}

func TestHistoryStoreSpectrogramCopy(t *testing.T) {
	h := NewHistoryStore(4, 4, 4, 4)

	col := make([]float64, spectral.ColumnBins)
	col[0] = 32.0
	h.RecordActive(1, col, tonal.ToNote(220.0))

	out := h.SpectrogramValues()
	assert.Equal(t, 32.0, out[1][0])

	// Mutating the returned copy must not leak into the store
	out[1][0] = -1.0
	assert.Equal(t, 32.0, h.SpectrogramValues()[1][0])
}
