package gainfx_test

import (
	"sync"
	"testing"

	"github.com/gainfx/gainfx"
)

func TestAmplitudeReadAfterWrite(t *testing.T) {
	a := gainfx.NewAmplitude(gainfx.DefaultAmplitude)
	if got := a.Get(); got != 0.5 {
		t.Fatalf("initial amplitude: got %v, want 0.5", got)
	}
	for _, v := range []float32{0, 0.25, 1, 1.5, -0.5} {
		a.Set(v)
		if got := a.Get(); got != v {
			t.Errorf("Get after Set(%v) returned %v", v, got)
		}
	}
}

func TestAmplitudeConcurrentSet(t *testing.T) {
	const x, y = float32(0.123456), float32(0.987654)
	a := gainfx.NewAmplitude(0)
	for round := 0; round < 100; round++ {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				a.Set(x)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				a.Set(y)
			}
		}()
		wg.Wait()
		if got := a.Get(); got != x && got != y {
			t.Fatalf("round %d: torn amplitude %v, want %v or %v", round, got, x, y)
		}
	}
}
