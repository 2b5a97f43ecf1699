package main

import (
	"math"

	"github.com/gainfx/gainfx"
)

// tone is a sine wave used as the input signal when previewing the effect.
type tone struct {
	phase, step float64
	level       float32
}

func newTone(frequency float64, sampleRate int) *tone {
	return &tone{step: 2 * math.Pi * frequency / float64(sampleRate), level: 0.5}
}

// Render writes the same signal to every channel of buf.
func (t *tone) Render(buf gainfx.AudioBuffer) {
	for i := 0; i < buf.Frames(); i++ {
		v := t.level * float32(math.Sin(t.phase))
		for c := range buf {
			buf[c][i] = v
		}
		t.phase = math.Mod(t.phase+t.step, 2*math.Pi)
	}
}
