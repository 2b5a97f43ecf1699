package gainfx

import (
	"math"
	"sync/atomic"
)

// DefaultAmplitude is the amplitude a new plugin instance starts with.
const DefaultAmplitude = 0.5

// Amplitude is the gain parameter shared between the audio callback and the
// GUI. The value is kept as IEEE-754 bits in an atomic word, so reads and
// writes never block and never tear. No clamping is done: anything written is
// stored as is, even outside [0, 1].
type Amplitude struct {
	bits atomic.Uint32
}

func NewAmplitude(value float32) *Amplitude {
	a := &Amplitude{}
	a.Set(value)
	return a
}

// Get returns the current amplitude. Safe to call from the audio thread.
func (a *Amplitude) Get() float32 {
	return math.Float32frombits(a.bits.Load())
}

// Set replaces the amplitude.
func (a *Amplitude) Set(value float32) {
	a.bits.Store(math.Float32bits(value))
}
