package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/RyanBlaney/sonido-vox/logging"
	"github.com/RyanBlaney/sonido-vox/monitor/config"
)

// AudioSource is the capture contract. ReadLatestFrame returns the most
// recent n mono samples in [-1, 1]; a short or nil slice means the capture
// buffer underran and the missing tail is treated as silence.
type AudioSource interface {
	ReadLatestFrame(n int) []float64
	SampleRate() int
}

// SnapshotFunc receives each published snapshot. It runs on the monitor
// goroutine, so a slow consumer delays the next cycle rather than racing it.
type SnapshotFunc func(Snapshot)

// Monitor drives the pull loop: every poll interval it reads the latest frame
// from the source, runs one processor cycle and hands the snapshot to the
// consumer.
type Monitor struct {
	cfg       config.Config
	source    AudioSource
	processor *FrameProcessor
	consume   SnapshotFunc
	log       logging.Logger
}

// New builds a monitor around a capture source. The consumer may be nil when
// the caller polls the processor directly.
func New(source AudioSource, cfg config.Config, consume SnapshotFunc) (*Monitor, error) {
	if source == nil {
		return nil, fmt.Errorf("audio source unavailable")
	}
	if sr := source.SampleRate(); sr != cfg.SampleRate {
		return nil, fmt.Errorf("source sample rate %d does not match configured %d", sr, cfg.SampleRate)
	}

	processor, err := NewFrameProcessor(cfg)
	if err != nil {
		return nil, err
	}

	return &Monitor{
		cfg:       cfg,
		source:    source,
		processor: processor,
		consume:   consume,
		log: logging.WithFields(logging.Fields{
			"component":   "monitor",
			"sample_rate": cfg.SampleRate,
			"frame_size":  cfg.FrameSize,
		}),
	}, nil
}

// Processor exposes the underlying frame processor for direct polling
func (m *Monitor) Processor() *FrameProcessor {
	return m.processor
}

// Run executes the pull loop until ctx is cancelled. Cancellation is only
// observed between cycles: an in-flight cycle always completes and publishes
// its snapshot.
func (m *Monitor) Run(ctx context.Context) error {
	interval := m.cfg.PollInterval()
	m.log.Info("monitor started", logging.Fields{"poll_interval": interval.String()})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("monitor stopped", logging.Fields{
				"frames": m.processor.FrameCount(),
			})
			return ctx.Err()
		case <-ticker.C:
			m.cycle()
		}
	}
}

// cycle runs one read-process-publish step
func (m *Monitor) cycle() {
	frame := m.source.ReadLatestFrame(m.cfg.FrameSize)
	if len(frame) < m.cfg.FrameSize {
		// Underrun: pad the missing tail with silence
		padded := make([]float64, m.cfg.FrameSize)
		copy(padded, frame)
		frame = padded
	}

	snapshot := m.processor.Process(frame)
	if m.consume != nil {
		m.consume(snapshot)
	}
}
