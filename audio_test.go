package gainfx_test

import (
	"testing"

	"github.com/gainfx/gainfx"
)

func TestEffectProcessMultipliesExactly(t *testing.T) {
	samples := []float32{0, 1, -1, 0.5, -0.333, 0.7071, 1e-7, 3.25}
	for _, amp := range []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		in := gainfx.AudioBuffer{samples, samples}
		out := gainfx.MakeAudioBuffer(2, len(samples))
		gainfx.NewEffect(gainfx.NewAmplitude(amp)).Process(in, out)
		for c := range out {
			for i, s := range samples {
				if want := s * amp; out[c][i] != want {
					t.Errorf("amplitude %v channel %d sample %d: got %v, want %v", amp, c, i, out[c][i], want)
				}
			}
		}
	}
}

func TestEffectProcessExtraOutputsSilenced(t *testing.T) {
	in := gainfx.AudioBuffer{{1, 1, 1}}
	out := gainfx.AudioBuffer{{9, 9, 9}, {9, 9, 9}}
	gainfx.NewEffect(gainfx.NewAmplitude(1)).Process(in, out)
	for i, v := range out[1] {
		if v != 0 {
			t.Errorf("extra channel sample %d: got %v, want 0", i, v)
		}
	}
	if out[0][0] != 1 {
		t.Errorf("first channel: got %v, want 1", out[0][0])
	}
}

func TestEffectProcessEmptyBuffer(t *testing.T) {
	in := gainfx.MakeAudioBuffer(2, 0)
	out := gainfx.MakeAudioBuffer(2, 0)
	gainfx.NewEffect(gainfx.NewAmplitude(1)).Process(in, out)
	if out.Frames() != 0 {
		t.Errorf("got %d frames, want 0", out.Frames())
	}
}

func TestEffectProcessLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for mismatched channel lengths")
		}
	}()
	in := gainfx.MakeAudioBuffer(1, 4)
	out := gainfx.MakeAudioBuffer(1, 3)
	gainfx.NewEffect(gainfx.NewAmplitude(1)).Process(in, out)
}

func TestEffectProcessDoesNotAllocate(t *testing.T) {
	in := gainfx.MakeAudioBuffer(2, 512)
	out := gainfx.MakeAudioBuffer(2, 512)
	e := gainfx.NewEffect(gainfx.NewAmplitude(0.5))
	allocs := testing.AllocsPerRun(100, func() { e.Process(in, out) })
	if allocs != 0 {
		t.Errorf("Process allocated %v times per run", allocs)
	}
}

func BenchmarkEffectProcess(b *testing.B) {
	in := gainfx.MakeAudioBuffer(2, 1024)
	out := gainfx.MakeAudioBuffer(2, 1024)
	e := gainfx.NewEffect(gainfx.NewAmplitude(0.5))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(in, out)
	}
}
