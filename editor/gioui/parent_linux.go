package gioui

import "fmt"

// ParentWindow is the host window the editor belongs to. On Linux the host
// hands over an X11 window id, which is 32 bits wide.
type ParentWindow struct {
	Window uint32
}

func NewParentWindow(handle uintptr) ParentWindow {
	return ParentWindow{Window: uint32(handle)}
}

func (p ParentWindow) Valid() bool { return p.Window != 0 }

func (p ParentWindow) String() string {
	return fmt.Sprintf("xcb:%#x", p.Window)
}
