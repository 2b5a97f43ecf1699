package editor

import "sync/atomic"

// Lifecycle is the open/closed state of the editor window. The zero value is
// Closed. Hosts call Open and Close from their own threads, so transitions
// are atomic.
type Lifecycle struct {
	open atomic.Bool
}

// Open transitions Closed to Open and returns true; the caller then builds
// the GUI. If the editor is already open, Open returns false and nothing must
// be built.
func (l *Lifecycle) Open() bool {
	return l.open.CompareAndSwap(false, true)
}

// Close transitions Open to Closed. Closing a closed editor does nothing.
// Returns true if the state changed.
func (l *Lifecycle) Close() bool {
	return l.open.CompareAndSwap(true, false)
}

func (l *Lifecycle) IsOpen() bool {
	return l.open.Load()
}
