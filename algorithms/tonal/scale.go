package tonal

// ScaleType is the coarse bucket returned by the scale/key heuristic
type ScaleType int

const (
	ScaleNone ScaleType = iota // not enough data yet
	ScaleUnknown
	ScaleMajor
	ScaleMinor
	ScaleComplex
)

func (s ScaleType) String() string {
	switch s {
	case ScaleNone:
		return "No Data"
	case ScaleUnknown:
		return "Unknown/Detecting"
	case ScaleMajor:
		return "Major"
	case ScaleMinor:
		return "Minor"
	case ScaleComplex:
		return "Complex/Multiple"
	default:
		return "Unknown/Detecting"
	}
}

// ScaleKeyGuess is a heuristic scale/key classification of recent notes.
// Key is a pitch class, -1 when no key applies.
type ScaleKeyGuess struct {
	Scale   ScaleType `json:"scale"`
	Key     int       `json:"key"`
	KeyName string    `json:"key_name"`
}

// ScaleKeyParams contains parameters for scale detection
type ScaleKeyParams struct {
	Window           int `json:"window"`             // Notes considered per detection
	MinTotalSamples  int `json:"min_total_samples"`  // Accumulated pitches before detecting at all
	MinInTune        int `json:"min_in_tune"`        // In-tune notes required in the window
	InTuneCents      int `json:"in_tune_cents"`      // |cents| below this counts as in tune
	MaxDistinctNotes int `json:"max_distinct_notes"` // More distinct classes than this is Complex
}

// DefaultScaleKeyParams returns the default detection parameters
func DefaultScaleKeyParams() ScaleKeyParams {
	return ScaleKeyParams{
		Window:           5,
		MinTotalSamples:  5,
		MinInTune:        3,
		InTuneCents:      25,
		MaxDistinctNotes: 5,
	}
}

// Fixed interval-set templates, expressed as pitch classes relative to any root
var (
	majorTemplate = map[int]bool{0: true, 2: true, 4: true, 5: true, 7: true, 9: true, 11: true}
	minorTemplate = map[int]bool{0: true, 2: true, 3: true, 5: true, 7: true, 8: true, 10: true}
)

// ScaleKeyDetector guesses scale type and key from a short run of recent
// notes. Heuristic pattern matching only, not music-theoretically rigorous.
type ScaleKeyDetector struct {
	params ScaleKeyParams
}

// NewScaleKeyDetector creates a detector with default parameters
func NewScaleKeyDetector() *ScaleKeyDetector {
	return &ScaleKeyDetector{params: DefaultScaleKeyParams()}
}

// NewScaleKeyDetectorWithParams creates a detector with custom parameters
func NewScaleKeyDetectorWithParams(params ScaleKeyParams) *ScaleKeyDetector {
	return &ScaleKeyDetector{params: params}
}

// Detect classifies the most recent notes. totalPitchSamples is the session's
// accumulated voiced-pitch count; below the minimum the detector reports no
// data rather than guessing.
func (sd *ScaleKeyDetector) Detect(recent []Note, totalPitchSamples int) ScaleKeyGuess {
	if totalPitchSamples < sd.params.MinTotalSamples {
		return ScaleKeyGuess{Scale: ScaleNone, Key: -1, KeyName: "--"}
	}

	window := recent
	if len(window) > sd.params.Window {
		window = window[len(window)-sd.params.Window:]
	}

	inTune := make([]Note, 0, len(window))
	for _, n := range window {
		if n.Valid && n.Cents > -sd.params.InTuneCents && n.Cents < sd.params.InTuneCents {
			inTune = append(inTune, n)
		}
	}

	if len(inTune) < sd.params.MinInTune {
		return ScaleKeyGuess{Scale: ScaleUnknown, Key: -1, KeyName: "--"}
	}

	distinct := make(map[int]bool)
	for _, n := range inTune {
		distinct[n.Class] = true
	}

	if len(distinct) > sd.params.MaxDistinctNotes {
		return ScaleKeyGuess{Scale: ScaleComplex, Key: -1, KeyName: "--"}
	}

	key := modalClass(inTune)

	// Any overlap with a template counts as a match, and major is tested
	// first, so ties always resolve to Major. That precedence is an artifact
	// of evaluation order kept deliberately (see DESIGN.md).
	if overlaps(distinct, majorTemplate) {
		return ScaleKeyGuess{Scale: ScaleMajor, Key: key, KeyName: PitchClassName(key)}
	}
	if overlaps(distinct, minorTemplate) {
		return ScaleKeyGuess{Scale: ScaleMinor, Key: key, KeyName: PitchClassName(key)}
	}

	return ScaleKeyGuess{Scale: ScaleUnknown, Key: -1, KeyName: "--"}
}

// modalClass returns the most frequent pitch class, lowest class on ties
func modalClass(notes []Note) int {
	counts := make(map[int]int)
	for _, n := range notes {
		counts[n.Class]++
	}

	best := -1
	bestCount := 0
	for class := 0; class < 12; class++ {
		if counts[class] > bestCount {
			best = class
			bestCount = counts[class]
		}
	}

	return best
}

func overlaps(classes map[int]bool, template map[int]bool) bool {
	for class := range classes {
		if template[class] {
			return true
		}
	}
	return false
}
