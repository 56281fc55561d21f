package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RyanBlaney/sonido-vox/algorithms/tonal"
)

func testGate() VoiceActivityGate {
	return VoiceActivityGate{
		VADThreshold: 0.005,
		MinPitchHz:   50.0,
		MaxPitchHz:   500.0,
	}
}

func TestGateActive(t *testing.T) {
	g := testGate()

	voiced := tonal.PitchEstimate{Hz: 220.0, Voiced: true}
	assert.True(t, g.Active(0.1, voiced))
	assert.True(t, g.Active(0.0051, voiced))
}

func TestGateVolumeVeto(t *testing.T) {
	g := testGate()
	voiced := tonal.PitchEstimate{Hz: 220.0, Voiced: true}

	assert.False(t, g.Active(0.0, voiced))
	assert.False(t, g.Active(0.004, voiced))

	// Threshold comparison is strict
	assert.False(t, g.Active(0.005, voiced))
}

func TestGatePitchVeto(t *testing.T) {
	g := testGate()

	assert.False(t, g.Active(0.1, tonal.Unvoiced()),
		"unvoiced pitch vetoes regardless of volume")
	assert.False(t, g.Active(0.1, tonal.PitchEstimate{Hz: 40.0, Voiced: true}),
		"pitch below band")
	assert.False(t, g.Active(0.1, tonal.PitchEstimate{Hz: 600.0, Voiced: true}),
		"pitch above band")

	// Band edges are inclusive
	assert.True(t, g.Active(0.1, tonal.PitchEstimate{Hz: 50.0, Voiced: true}))
	assert.True(t, g.Active(0.1, tonal.PitchEstimate{Hz: 500.0, Voiced: true}))
}
