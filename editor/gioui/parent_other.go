//go:build !darwin && !windows && !linux

package gioui

import "fmt"

// ParentWindow is an opaque host window handle on platforms without a known
// handle type.
type ParentWindow struct {
	Handle uintptr
}

func NewParentWindow(handle uintptr) ParentWindow {
	return ParentWindow{Handle: handle}
}

func (p ParentWindow) Valid() bool { return p.Handle != 0 }

func (p ParentWindow) String() string {
	return fmt.Sprintf("handle:%#x", p.Handle)
}
