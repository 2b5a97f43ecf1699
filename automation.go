package gainfx

// Automation reconciles the host's copy of the parameter value with the
// Amplitude store. The host writes its copy when automating; the GUI writes
// the store. Sync is called once per process call, on the audio thread.
//
// The host's copy is a plain float32 owned by the VST2 bridge, which the
// host writes from its own thread while Sync reads and writes it on the
// audio thread; the bridge offers no atomic access to it. Knob changes reach
// the host only at the next process call.
type Automation struct {
	last float32
}

func NewAutomation(initial float32) *Automation {
	return &Automation{last: initial}
}

// Sync copies a host side change into the store. If the host value is
// unchanged since the previous Sync but the store has changed, the store
// value is published to the host. A host change wins when both changed.
func (a *Automation) Sync(hostValue *float32, amplitude *Amplitude) {
	if *hostValue != a.last {
		amplitude.Set(*hostValue)
		a.last = *hostValue
		return
	}
	if v := amplitude.Get(); v != a.last {
		*hostValue = v
		a.last = v
	}
}
