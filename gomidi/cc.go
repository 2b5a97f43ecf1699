// Package gomidi lets a MIDI controller turn the gain knob: control change
// messages of one controller number are mapped to SetGain events.
package gomidi

import (
	"github.com/gainfx/gainfx/editor"
	"gitlab.com/gomidi/midi/v2"
)

// DefaultController is the channel volume controller.
const DefaultController = 7

// Mapper turns control change messages into editor events.
type Mapper struct {
	Controller uint8
	Broker     *editor.Broker
}

// ControlToGain maps a 7 bit controller value to a normalized knob position.
func ControlToGain(value uint8) float32 {
	return float32(min(value, 127)) / 127
}

// HandleMessage has the signature of a gomidi listener. Messages that are
// not control changes of m.Controller are ignored; if the model is busy, the
// event is dropped.
func (m *Mapper) HandleMessage(msg midi.Message, timestampms int32) {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) || controller != m.Controller {
		return
	}
	editor.TrySend[editor.Event](m.Broker.ToModel, editor.SetGain{Value: ControlToGain(value)})
}
