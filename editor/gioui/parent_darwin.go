package gioui

import "fmt"

// ParentWindow is the host window the editor belongs to. On macOS the host
// hands over an NSView.
type ParentWindow struct {
	NSView uintptr
}

func NewParentWindow(handle uintptr) ParentWindow {
	return ParentWindow{NSView: handle}
}

func (p ParentWindow) Valid() bool { return p.NSView != 0 }

func (p ParentWindow) String() string {
	return fmt.Sprintf("nsview:%#x", p.NSView)
}
