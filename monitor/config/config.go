package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable of the analysis pipeline. Zero values are not
// meaningful; start from DefaultConfig or Load.
type Config struct {
	// Capture contract
	SampleRate int `yaml:"sample_rate" json:"sample_rate"`
	FrameSize  int `yaml:"frame_size" json:"frame_size"`

	// Pitch band and gating
	MinPitchHz       float64 `yaml:"min_pitch_hz" json:"min_pitch_hz"`
	MaxPitchHz       float64 `yaml:"max_pitch_hz" json:"max_pitch_hz"`
	SilenceThreshold float64 `yaml:"silence_threshold" json:"silence_threshold"` // peak amplitude floor for pitch detection
	VADThreshold     float64 `yaml:"vad_threshold" json:"vad_threshold"`         // RMS floor for voice activity

	// History capacities
	PitchHistory       int `yaml:"pitch_history" json:"pitch_history"`
	VolumeHistory      int `yaml:"volume_history" json:"volume_history"`
	SpectrogramHistory int `yaml:"spectrogram_history" json:"spectrogram_history"`
	NoteHistory        int `yaml:"note_history" json:"note_history"`

	// Pull-loop pacing
	PollIntervalMS int `yaml:"poll_interval_ms" json:"poll_interval_ms"`
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		SampleRate:         44100,
		FrameSize:          2048,
		MinPitchHz:         50.0,
		MaxPitchHz:         500.0,
		SilenceThreshold:   0.001,
		VADThreshold:       0.005,
		PitchHistory:       200,
		VolumeHistory:      200,
		SpectrogramHistory: 200,
		NoteHistory:        50,
		PollIntervalMS:     50,
	}
}

// Load reads a YAML config file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the pipeline cannot run with
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.FrameSize <= 0 {
		return fmt.Errorf("frame_size must be positive, got %d", c.FrameSize)
	}
	if c.MinPitchHz <= 0 || c.MaxPitchHz <= c.MinPitchHz {
		return fmt.Errorf("pitch band [%g, %g] is not a valid range", c.MinPitchHz, c.MaxPitchHz)
	}
	if c.SilenceThreshold < 0 || c.VADThreshold < 0 {
		return fmt.Errorf("thresholds must be non-negative")
	}
	if c.PitchHistory <= 0 || c.VolumeHistory <= 0 || c.SpectrogramHistory <= 0 || c.NoteHistory <= 0 {
		return fmt.Errorf("history capacities must be positive")
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	return nil
}

// PollInterval returns the pull-loop period
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
