package monitor

import (
	"github.com/RyanBlaney/sonido-vox/algorithms/common"
	"github.com/RyanBlaney/sonido-vox/algorithms/spectral"
	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
)

// AbsentPitch is the pitch-ring sentinel for unvoiced frames and unwritten
// slots. It sits outside every valid pitch band, so readers can filter on it.
const AbsentPitch = 0.0

// HistoryStore owns the four bounded histories of the pipeline. It is written
// by exactly one frame cycle at a time; slot rings are addressed by the frame
// counter, so inactive frames simply skip the spectrogram slot and leave it
// stale.
type HistoryStore struct {
	pitch       *common.Ring[float64]
	volume      *common.Ring[float64]
	spectrogram *common.Ring[[]float64]
	notes       *common.FIFO[tonal.Note]
}

// NewHistoryStore creates rings of the given capacities
func NewHistoryStore(pitchCap, volumeCap, spectrogramCap, noteCap int) *HistoryStore {
	h := &HistoryStore{
		pitch:       common.NewRing(pitchCap, AbsentPitch),
		volume:      common.NewRing(volumeCap, 0.0),
		spectrogram: common.NewRing[[]float64](spectrogramCap, nil),
		notes:       common.NewFIFO[tonal.Note](noteCap),
	}

	// Seed distinct zero columns so unwritten spectrogram slots render flat
	// instead of sharing one backing slice.
	for i := 0; i < spectrogramCap; i++ {
		h.spectrogram.Set(uint64(i), make([]float64, spectral.ColumnBins))
	}

	return h
}

// RecordFrame writes the always-written slots for one cycle: RMS volume and
// the pitch value or absent sentinel.
func (h *HistoryStore) RecordFrame(index uint64, volume float64, pitch tonal.PitchEstimate) {
	h.volume.Set(index, volume)

	if pitch.Voiced {
		h.pitch.Set(index, pitch.Hz)
	} else {
		h.pitch.Set(index, AbsentPitch)
	}
}

// RecordActive writes the voice-active-only slots for one cycle: the
// spectrogram column at the frame cursor and the note pushed onto the FIFO.
func (h *HistoryStore) RecordActive(index uint64, column []float64, note tonal.Note) {
	h.spectrogram.Set(index, column)
	h.notes.Push(note)
}

// PitchValues returns a copy of the pitch ring in storage order
func (h *HistoryStore) PitchValues() []float64 {
	return h.pitch.Values()
}

// VoicedPitches returns the non-absent pitch entries
func (h *HistoryStore) VoicedPitches() []float64 {
	out := make([]float64, 0, h.pitch.Capacity())
	for _, hz := range h.pitch.Values() {
		if hz != AbsentPitch {
			out = append(out, hz)
		}
	}
	return out
}

// VolumeValues returns a copy of the volume ring in storage order
func (h *HistoryStore) VolumeValues() []float64 {
	return h.volume.Values()
}

// VolumeAt returns the volume slot for a frame index
func (h *HistoryStore) VolumeAt(index uint64) float64 {
	return h.volume.At(index)
}

// PitchAt returns the pitch slot for a frame index
func (h *HistoryStore) PitchAt(index uint64) float64 {
	return h.pitch.At(index)
}

// SpectrogramValues returns a deep copy of every spectrogram column
func (h *HistoryStore) SpectrogramValues() [][]float64 {
	cols := h.spectrogram.Values()
	out := make([][]float64, len(cols))
	for i, col := range cols {
		out[i] = make([]float64, len(col))
		copy(out[i], col)
	}
	return out
}

// RecentNotes returns up to n most recent notes, oldest first
func (h *HistoryStore) RecentNotes(n int) []tonal.Note {
	return h.notes.Last(n)
}

// NoteValues returns a copy of the note FIFO, oldest first
func (h *HistoryStore) NoteValues() []tonal.Note {
	return h.notes.Values()
}
