package tonal

import (
	"fmt"
	"math"
)

// referenceA4 is the tuning reference in Hz
const referenceA4 = 440.0

// noteNames orders pitch classes from the A4 reference, so class 0 is A
var noteNames = []string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// Note labels a frequency with its nearest equal-tempered pitch.
// Cents is the sub-semitone deviation in [-50, 50]. A non-positive or absent
// frequency yields the sentinel label "--" with Valid false.
type Note struct {
	Class  int    `json:"class"`  // Pitch class 0..11, A-referenced
	Octave int    `json:"octave"` // Scientific octave number
	Cents  int    `json:"cents"`  // Deviation from the exact pitch
	Name   string `json:"name"`   // e.g. "A4", "C#3", or "--"
	Valid  bool   `json:"valid"`
}

// NoSignalNote is the sentinel for unvoiced or invalid input
func NoSignalNote() Note {
	return Note{Name: "--"}
}

// ToNote converts a frequency in Hz to its nearest note label
func ToNote(freq float64) Note {
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return NoSignalNote()
	}

	semis := 12.0 * math.Log2(freq/referenceA4)
	idx := int(math.Round(semis))
	cents := int(math.Round((semis - float64(idx)) * 100.0))

	class := ((idx % 12) + 12) % 12
	octave := 4 + floorDiv(idx+9, 12)

	return Note{
		Class:  class,
		Octave: octave,
		Cents:  cents,
		Name:   fmt.Sprintf("%s%d", noteNames[class], octave),
		Valid:  true,
	}
}

// PitchClassName returns the A-referenced name for a class index
func PitchClassName(class int) string {
	if class < 0 || class >= len(noteNames) {
		return "--"
	}
	return noteNames[class]
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
