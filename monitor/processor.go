package monitor

import (
	"fmt"

	"github.com/RyanBlaney/sonido-vox/algorithms/spectral"
	"github.com/RyanBlaney/sonido-vox/algorithms/temporal"
	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
	"github.com/RyanBlaney/sonido-vox/logging"
	"github.com/RyanBlaney/sonido-vox/monitor/config"
)

// FrameProcessor runs one full analysis cycle per audio frame and publishes
// the result as an immutable Snapshot. It is strictly sequential: no internal
// goroutines, no locks; callers must not invoke Process concurrently.
type FrameProcessor struct {
	cfg config.Config

	level      *temporal.LevelMeter
	pitch      *tonal.PitchDetector
	spectrum   *spectral.Analyzer
	gate       VoiceActivityGate
	classifier *tonal.VoiceClassifier
	scale      *tonal.ScaleKeyDetector
	history    *HistoryStore
	stats      *Aggregator

	frameCount  uint64
	scaleWindow int

	// Held across inactive frames; refreshed only on voice-active cycles
	lastScale tonal.ScaleKeyGuess
	lastVoice tonal.VoiceProfile

	wasActive bool
}

// NewFrameProcessor builds a processor from a validated configuration
func NewFrameProcessor(cfg config.Config) (*FrameProcessor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("frame processor config: %w", err)
	}

	pitchParams := tonal.DefaultPitchParams(cfg.SampleRate)
	pitchParams.MinFreq = cfg.MinPitchHz
	pitchParams.MaxFreq = cfg.MaxPitchHz
	pitchParams.SilenceThreshold = cfg.SilenceThreshold

	return &FrameProcessor{
		cfg:      cfg,
		level:    temporal.NewLevelMeter(),
		pitch:    tonal.NewPitchDetectorWithParams(pitchParams),
		spectrum: spectral.NewAnalyzer(),
		gate: VoiceActivityGate{
			VADThreshold: cfg.VADThreshold,
			MinPitchHz:   cfg.MinPitchHz,
			MaxPitchHz:   cfg.MaxPitchHz,
		},
		classifier:  tonal.NewVoiceClassifier(),
		scale:       tonal.NewScaleKeyDetector(),
		history:     NewHistoryStore(cfg.PitchHistory, cfg.VolumeHistory, cfg.SpectrogramHistory, cfg.NoteHistory),
		stats:       NewAggregator(),
		scaleWindow: tonal.DefaultScaleKeyParams().Window,
		lastScale:   tonal.ScaleKeyGuess{Scale: tonal.ScaleNone, Key: -1, KeyName: "--"},
	}, nil
}

// FrameCount returns the number of frames processed so far
func (fp *FrameProcessor) FrameCount() uint64 {
	return fp.frameCount
}

// Process runs one analysis cycle over a frame of mono samples and returns
// the resulting snapshot. Voice-active frames update the classifier, note
// FIFO, scale guess and spectrogram column; inactive frames only advance the
// pitch and volume histories, holding the tonal state stale.
func (fp *FrameProcessor) Process(frame []float64) Snapshot {
	index := fp.frameCount

	volume := fp.level.Level(frame)
	pitch := fp.pitch.Estimate(frame)
	active := fp.gate.Active(volume, pitch)

	note := tonal.NoSignalNote()
	if active {
		fp.classifier.Observe(pitch.Hz, volume)
		fp.lastVoice = fp.classifier.Profile()

		note = tonal.ToNote(pitch.Hz)
		fp.history.RecordActive(index, fp.spectrum.SpectrogramColumn(frame), note)
		fp.lastScale = fp.scale.Detect(fp.history.RecentNotes(fp.scaleWindow), fp.classifier.Samples())
	}

	fp.history.RecordFrame(index, volume, pitch)
	fp.frameCount++

	pitchHz := AbsentPitch
	if pitch.Voiced {
		pitchHz = pitch.Hz
	}
	fp.stats.ObserveFrame(active, pitchHz)

	if active != fp.wasActive {
		logging.Debug("voice activity changed", logging.Fields{
			"frame":  index,
			"active": active,
			"pitch":  pitch.Hz,
			"volume": volume,
		})
		fp.wasActive = active
	}

	raw := make([]float64, len(frame))
	copy(raw, frame)

	return Snapshot{
		FrameCount:    fp.frameCount,
		Active:        active,
		Pitch:         pitch,
		Volume:        volume,
		Note:          note,
		Voice:         fp.lastVoice,
		ScaleKey:      fp.lastScale,
		Stats:         fp.stats.Snapshot(fp.history, index),
		PitchHistory:  fp.history.PitchValues(),
		VolumeHistory: fp.history.VolumeValues(),
		Spectrogram:   fp.history.SpectrogramValues(),
		Notes:         fp.history.NoteValues(),
		Frame:         raw,
	}
}

// Reset clears all accumulated state, returning the processor to its
// just-constructed condition
func (fp *FrameProcessor) Reset() {
	fp.classifier.Reset()
	fp.history = NewHistoryStore(fp.cfg.PitchHistory, fp.cfg.VolumeHistory, fp.cfg.SpectrogramHistory, fp.cfg.NoteHistory)
	fp.stats = NewAggregator()
	fp.frameCount = 0
	fp.lastScale = tonal.ScaleKeyGuess{Scale: tonal.ScaleNone, Key: -1, KeyName: "--"}
	fp.lastVoice = tonal.VoiceProfile{}
	fp.wasActive = false
}
