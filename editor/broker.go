package editor

type (
	// Broker connects the goroutines of the plugin: the host facing code and
	// MIDI input send Events to the model, which lives in the GUI goroutine.
	//
	// CloseGUI has a capacity of 1, so you can always TrySend an empty struct
	// to it without blocking; if it is already full, someone else already
	// requested the closing and dropping the message is fine.
	Broker struct {
		ToModel  chan Event
		CloseGUI chan struct{}
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:  make(chan Event, 1024),
		CloseGUI: make(chan struct{}, 1),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}
