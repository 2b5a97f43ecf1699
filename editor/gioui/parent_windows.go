package gioui

import "fmt"

// ParentWindow is the host window the editor belongs to. On Windows the host
// hands over an HWND.
type ParentWindow struct {
	HWND uintptr
}

func NewParentWindow(handle uintptr) ParentWindow {
	return ParentWindow{HWND: handle}
}

func (p ParentWindow) Valid() bool { return p.HWND != 0 }

func (p ParentWindow) String() string {
	return fmt.Sprintf("hwnd:%#x", p.HWND)
}
