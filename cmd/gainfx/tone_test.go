package main

import (
	"math"
	"testing"

	"github.com/gainfx/gainfx"
)

func TestToneRender(t *testing.T) {
	// a quarter of the sample rate gives the sequence 0, 0.5, 0, -0.5, ...
	tn := newTone(1000, 4000)
	buf := gainfx.MakeAudioBuffer(2, 8)
	tn.Render(buf)
	want := []float32{0, 0.5, 0, -0.5, 0, 0.5, 0, -0.5}
	for i, w := range want {
		for c := range buf {
			if math.Abs(float64(buf[c][i]-w)) > 1e-6 {
				t.Errorf("channel %d sample %d: got %v, want %v", c, i, buf[c][i], w)
			}
		}
	}
}

func TestTonePhaseContinues(t *testing.T) {
	a := newTone(440, 44100)
	b := newTone(440, 44100)
	whole := gainfx.MakeAudioBuffer(1, 100)
	a.Render(whole)
	first, second := gainfx.MakeAudioBuffer(1, 60), gainfx.MakeAudioBuffer(1, 40)
	b.Render(first)
	b.Render(second)
	for i := 0; i < 40; i++ {
		if d := whole[0][60+i] - second[0][i]; d > 1e-6 || d < -1e-6 {
			t.Fatalf("sample %d differs across buffer boundary: %v vs %v", i, whole[0][60+i], second[0][i])
		}
	}
}
