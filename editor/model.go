package editor

import (
	"fmt"
	"math"

	"github.com/gainfx/gainfx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title is the name of the control shown above the knob.
const Title = "Gain"

// Model is the editor's view of the gain parameter. It is owned by the GUI
// goroutine; the amplitude it wraps is shared with the audio thread.
type Model struct {
	amplitude   *gainfx.Amplitude
	valueMap    gainfx.ValueMap
	knobDefault float32
	heading     string
	last        float32
	subscribers []func(value float32)
	broker      *Broker
}

func NewModel(broker *Broker, amplitude *gainfx.Amplitude, knob KnobPreferences) *Model {
	return &Model{
		amplitude:   amplitude,
		valueMap:    knob.ValueMap(),
		knobDefault: knob.Default,
		heading:     cases.Upper(language.English).String(Title),
		last:        amplitude.Get(),
		broker:      broker,
	}
}

func (m *Model) Broker() *Broker { return m.broker }

// Value returns the current amplitude.
func (m *Model) Value() float32 { return m.amplitude.Get() }

// Normalized returns the knob position of the current amplitude.
func (m *Model) Normalized() float32 { return m.valueMap.ValueToNormalized(m.Value()) }

// Display returns the current amplitude formatted for the label.
func (m *Model) Display() string { return m.valueMap.NormalizedToDisplay(m.Normalized()) }

// Heading is the upper cased title shown above the knob.
func (m *Model) Heading() string { return m.heading }

// Subscribe registers f to be called with the new amplitude after every
// change.
func (m *Model) Subscribe(f func(value float32)) {
	m.subscribers = append(m.subscribers, f)
}

// Update applies e and notifies the subscribers if the amplitude changed.
// Returns true if it did.
func (m *Model) Update(e Event) bool {
	switch e := e.(type) {
	case SetGain:
		m.amplitude.Set(m.valueMap.NormalizedToValue(e.Value))
	case ResetGain:
		m.amplitude.Set(m.valueMap.NormalizedToValue(m.knobDefault))
	case NudgeGain:
		n := min(max(m.Normalized()+e.Delta, 0), 1)
		m.amplitude.Set(m.valueMap.NormalizedToValue(n))
	default:
		panic(fmt.Sprintf("editor: unhandled event %T", e))
	}
	return m.Refresh()
}

// Refresh notifies the subscribers if the amplitude changed since the last
// notification, for example because the host automated it. Returns true if
// it did.
func (m *Model) Refresh() bool {
	v := m.amplitude.Get()
	if math.Float32bits(v) == math.Float32bits(m.last) {
		return false
	}
	m.last = v
	for _, f := range m.subscribers {
		f(v)
	}
	return true
}
