package editor_test

import (
	"testing"

	"github.com/gainfx/gainfx"
	"github.com/gainfx/gainfx/editor"
)

func newModel(initial float32) (*editor.Model, *gainfx.Amplitude) {
	a := gainfx.NewAmplitude(initial)
	return editor.NewModel(editor.NewBroker(), a, editor.DefaultPreferences().Knob), a
}

func TestSetGainUpdatesLabel(t *testing.T) {
	tests := []struct {
		value float32
		want  string
	}{
		{0, "0.00"},
		{0.25, "0.25"},
		{0.333333, "0.33"},
		{0.9999, "1.00"},
		{1, "1.00"},
	}
	for _, tt := range tests {
		m, a := newModel(0.5)
		label := m.Display()
		m.Subscribe(func(float32) { label = m.Display() })
		m.Update(editor.SetGain{Value: tt.value})
		if a.Get() != tt.value {
			t.Errorf("SetGain(%v): amplitude is %v", tt.value, a.Get())
		}
		if label != tt.want {
			t.Errorf("SetGain(%v): label %q, want %q", tt.value, label, tt.want)
		}
	}
}

func TestSubscribersOnlyOnChange(t *testing.T) {
	m, _ := newModel(0.5)
	calls := 0
	m.Subscribe(func(float32) { calls++ })
	if m.Update(editor.SetGain{Value: 0.5}) {
		t.Error("setting the same value reported a change")
	}
	if !m.Update(editor.SetGain{Value: 0.6}) {
		t.Error("setting a new value reported no change")
	}
	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestResetGain(t *testing.T) {
	m, a := newModel(0.2)
	m.Update(editor.ResetGain{})
	if a.Get() != 1 {
		t.Errorf("reset: got %v, want 1", a.Get())
	}
}

func TestNudgeGainClampsKnob(t *testing.T) {
	m, a := newModel(0.995)
	m.Update(editor.NudgeGain{Delta: 0.01})
	if a.Get() != 1 {
		t.Errorf("nudge up: got %v, want 1", a.Get())
	}
	a.Set(0.005)
	m.Update(editor.NudgeGain{Delta: -0.01})
	if a.Get() != 0 {
		t.Errorf("nudge down: got %v, want 0", a.Get())
	}
}

func TestRefreshSeesHostChanges(t *testing.T) {
	m, a := newModel(0.5)
	var got float32
	m.Subscribe(func(v float32) { got = v })
	if m.Refresh() {
		t.Error("Refresh without a change reported one")
	}
	a.Set(0.75)
	if !m.Refresh() {
		t.Error("Refresh did not notice the host change")
	}
	if got != 0.75 {
		t.Errorf("subscriber got %v, want 0.75", got)
	}
	if m.Display() != "0.75" {
		t.Errorf("display %q, want 0.75", m.Display())
	}
}

func TestUnclampedWrite(t *testing.T) {
	m, a := newModel(0.5)
	m.Update(editor.SetGain{Value: 1.5})
	if a.Get() != 1.5 {
		t.Errorf("got %v, want 1.5", a.Get())
	}
}

func TestHeading(t *testing.T) {
	m, _ := newModel(0.5)
	if h := m.Heading(); h != "GAIN" {
		t.Errorf("got %q, want GAIN", h)
	}
	if allocs := testing.AllocsPerRun(10, func() { m.Heading() }); allocs != 0 {
		t.Errorf("Heading allocated %v times per call", allocs)
	}
}
