package gainfx

import "github.com/viterin/vek/vek32"

type (
	// AudioBuffer holds one slice of samples per channel. All channels of a
	// buffer have the same length.
	AudioBuffer [][]float32

	// Effect is the gain effect: every input sample is scaled by the current
	// amplitude into the output buffer.
	Effect struct {
		Amplitude *Amplitude
	}
)

// MakeAudioBuffer allocates a buffer of the given number of channels and
// frames.
func MakeAudioBuffer(channels, frames int) AudioBuffer {
	ret := make(AudioBuffer, channels)
	for c := range ret {
		ret[c] = make([]float32, frames)
	}
	return ret
}

// Frames returns the length of the channels, or 0 for an empty buffer.
func (b AudioBuffer) Frames() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

func NewEffect(amplitude *Amplitude) *Effect {
	return &Effect{Amplitude: amplitude}
}

// Process computes out[c][i] = in[c][i] * a for every channel of in. The
// amplitude a is read once per call, so a buffer is never processed with two
// different gains. Output channels without a matching input channel are
// silenced. Input and output channels of the same index must be equally long;
// Process panics otherwise. Process does not allocate.
func (e *Effect) Process(in, out AudioBuffer) {
	amplitude := e.Amplitude.Get()
	for c := range out {
		if c >= len(in) {
			clear(out[c])
			continue
		}
		if len(in[c]) != len(out[c]) {
			panic("gainfx: input and output channel lengths differ")
		}
		if len(in[c]) == 0 {
			continue
		}
		vek32.MulNumber_Into(out[c], in[c], amplitude)
	}
}
