package tone

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/signal"
)

// Tone shape. Every note uses the same envelope.
const (
	Peak     = 0.3
	Floor    = 0.01
	Attack   = 10 * time.Millisecond
	Duration = 500 * time.Millisecond
)

// DefaultSampleRate is used when no rate is configured.
const DefaultSampleRate = 44100

// Envelope returns the amplitude at time t after the tone starts: a linear
// ramp to Peak over Attack, then an exponential fall to Floor at Duration.
// Outside [0, Duration] the tone is silent.
func Envelope(t time.Duration) float64 {
	switch {
	case t < 0 || t > Duration:
		return 0
	case t < Attack:
		return Peak * t.Seconds() / Attack.Seconds()
	}
	frac := (t - Attack).Seconds() / (Duration - Attack).Seconds()
	return Peak * math.Pow(Floor/Peak, frac)
}

// Samples returns the number of frames in one tone at sampleRate.
func Samples(sampleRate int) int {
	return int(float64(sampleRate) * Duration.Seconds())
}

// Render synthesizes one mono tone at freqHz.
func Render(freqHz float64, sampleRate int) ([]float32, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("frequency must be > 0: %f", freqHz)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}

	g := signal.NewGenerator(core.WithSampleRate(float64(sampleRate)))
	sine, err := g.Sine(freqHz, 1, Samples(sampleRate))
	if err != nil {
		return nil, fmt.Errorf("oscillator: %w", err)
	}

	out := make([]float32, len(sine))
	step := float64(time.Second) / float64(sampleRate)
	for i, s := range sine {
		out[i] = float32(s * Envelope(time.Duration(float64(i)*step)))
	}
	return out, nil
}
