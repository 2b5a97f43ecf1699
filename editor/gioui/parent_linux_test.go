package gioui_test

import (
	"testing"

	"github.com/gainfx/gainfx/editor/gioui"
)

func TestParentWindowLinux(t *testing.T) {
	p := gioui.NewParentWindow(0x4a00007)
	if !p.Valid() {
		t.Error("non-zero handle should be valid")
	}
	if s := p.String(); s != "xcb:0x4a00007" {
		t.Errorf("got %q", s)
	}
	if gioui.NewParentWindow(0).Valid() {
		t.Error("zero handle should be invalid")
	}
}
