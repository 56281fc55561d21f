package tonal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNoteReference(t *testing.T) {
	n := ToNote(440.0)

	assert.True(t, n.Valid)
	assert.Equal(t, "A4", n.Name)
	assert.Equal(t, 0, n.Class)
	assert.Equal(t, 4, n.Octave)
	assert.Equal(t, 0, n.Cents)
}

func TestToNoteExactSemitoneUp(t *testing.T) {
	n := ToNote(440.0 * math.Pow(2, 1.0/12.0))

	assert.Equal(t, "A#4", n.Name)
	assert.Equal(t, 0, n.Cents)
}

func TestToNoteNearbyFrequencyCentsBounded(t *testing.T) {
	n := ToNote(466.0)

	assert.Equal(t, "A#4", n.Name)
	assert.Less(t, int(math.Abs(float64(n.Cents))), 50)
}

func TestToNoteOctaveBoundaries(t *testing.T) {
	// B3 and C4 sit on either side of the octave increment.
	assert.Equal(t, "B3", ToNote(246.94).Name)
	assert.Equal(t, "C4", ToNote(261.63).Name)
	assert.Equal(t, "C5", ToNote(523.25).Name)
	assert.Equal(t, "G4", ToNote(392.0).Name)
	assert.Equal(t, "A2", ToNote(110.0).Name)
}

func TestToNoteInvalidInput(t *testing.T) {
	for _, freq := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		n := ToNote(freq)
		assert.False(t, n.Valid)
		assert.Equal(t, "--", n.Name)
		assert.Equal(t, 0, n.Cents)
	}
}

func TestPitchClassName(t *testing.T) {
	assert.Equal(t, "A", PitchClassName(0))
	assert.Equal(t, "G#", PitchClassName(11))
	assert.Equal(t, "--", PitchClassName(12))
	assert.Equal(t, "--", PitchClassName(-1))
}
