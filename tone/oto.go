package tone

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ebitengine/oto/v3"
)

// OtoOutput plays tones through the system audio device. oto allows a single
// context per process, so only one OtoOutput may ever be opened.
type OtoOutput struct {
	ctx     *oto.Context
	players []*oto.Player
}

// NewOtoOutput opens the audio device and waits until it is ready.
// It matches the Factory signature.
func NewOtoOutput(sampleRate int) (Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio context: %w", err)
	}
	<-ready
	return &OtoOutput{ctx: ctx}, nil
}

// Play starts a new player for samples. Players mix inside oto, so tones
// overlap instead of queueing.
func (o *OtoOutput) Play(samples []float32) error {
	o.prune()

	p := o.ctx.NewPlayer(bytes.NewReader(encodeFloat32LE(samples)))
	p.Play()
	o.players = append(o.players, p)
	return nil
}

// prune drops players that have finished.
func (o *OtoOutput) prune() {
	live := o.players[:0]
	for _, p := range o.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	for i := len(live); i < len(o.players); i++ {
		o.players[i] = nil
	}
	o.players = live
}

// Close stops every live player.
func (o *OtoOutput) Close() error {
	var firstErr error
	for _, p := range o.players {
		p.Pause()
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	o.players = nil
	return firstErr
}

func encodeFloat32LE(samples []float32) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	return buf
}
