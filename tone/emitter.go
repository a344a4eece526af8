package tone

import (
	"go-piano/debug"
)

// Output is the shared audio sink every tone is played through.
type Output interface {
	Play(samples []float32) error
	Close() error
}

// Factory creates the shared Output. It is called at most once per Emitter.
type Factory func(sampleRate int) (Output, error)

// Emitter turns frequencies into tones on a lazily created Output.
// It is owned by the UI loop and is not safe for concurrent use.
type Emitter struct {
	factory    Factory
	sampleRate int

	out      Output
	acquired bool
}

// NewEmitter returns an emitter that has not yet opened its output.
func NewEmitter(factory Factory, sampleRate int) *Emitter {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Emitter{factory: factory, sampleRate: sampleRate}
}

// Acquire opens the shared output the first time it is called. Later calls,
// including after a failed open, do nothing.
func (e *Emitter) Acquire() {
	if e.acquired {
		return
	}
	e.acquired = true

	if e.factory == nil {
		debug.Log("tone", "no audio factory, tones are muted")
		return
	}
	out, err := e.factory(e.sampleRate)
	if err != nil {
		debug.Error("tone", err, "open audio output")
		return
	}
	e.out = out
	debug.Log("tone", "audio output ready at %dHz", e.sampleRate)
}

// Ready reports whether tones will be heard.
func (e *Emitter) Ready() bool {
	return e.out != nil
}

// SampleRate returns the rate tones are rendered at.
func (e *Emitter) SampleRate() int {
	return e.sampleRate
}

// Emit plays one tone at freqHz. Without an output it does nothing.
func (e *Emitter) Emit(freqHz float64) {
	if e.out == nil || freqHz <= 0 {
		return
	}
	samples, err := Render(freqHz, e.sampleRate)
	if err != nil {
		debug.Error("tone", err, "render %.2fHz", freqHz)
		return
	}
	if err := e.out.Play(samples); err != nil {
		debug.Error("tone", err, "play %.2fHz", freqHz)
		return
	}
	debug.Log("tone", "emit %.2fHz", freqHz)
}

// Close releases the output if one was opened.
func (e *Emitter) Close() error {
	if e.out == nil {
		return nil
	}
	err := e.out.Close()
	e.out = nil
	return err
}
