package editor

type (
	// Event is a change request sent to the Model. The set of events is
	// closed: only the types in this file implement it.
	Event interface {
		isEvent()
	}

	// SetGain sets the gain to the normalized knob position Value.
	SetGain struct {
		Value float32
	}

	// ResetGain sets the gain back to the knob default.
	ResetGain struct{}

	// NudgeGain adds Delta to the normalized knob position.
	NudgeGain struct {
		Delta float32
	}
)

func (SetGain) isEvent()   {}
func (ResetGain) isEvent() {}
func (NudgeGain) isEvent() {}
