package gioui

import (
	"image"
	"log"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/gainfx/gainfx/editor"
	"github.com/gainfx/gainfx/logging"
)

type (
	// Editor is the plugin window: a heading, the gain knob and a label
	// showing the current value.
	Editor struct {
		Theme *Theme
		Knob  *KnobState

		model     *editor.Model
		prefs     editor.Preferences
		lifecycle editor.Lifecycle
		valueText string

		mu       sync.Mutex
		parent   ParentWindow
		finished chan struct{}
		session  func(finished chan struct{})
	}

	C = layout.Context
	D = layout.Dimensions
)

// refreshInterval is how often the window looks for changes made by the
// host.
const refreshInterval = 50 * time.Millisecond

// closeTimeout bounds how long Open waits for the previous window to go.
var closeTimeout = 3 * time.Second

func NewEditor(model *editor.Model, prefs editor.Preferences) *Editor {
	e := &Editor{
		Theme:     NewTheme(),
		Knob:      new(KnobState),
		model:     model,
		prefs:     prefs,
		valueText: model.Display(),
	}
	e.session = e.main
	model.Subscribe(func(float32) { e.valueText = model.Display() })
	return e
}

// Open opens the editor window as a child of parent. Returns false, and
// creates nothing, if the editor is already open, or if the window of the
// previous Open is still being torn down after closeTimeout.
func (e *Editor) Open(parent ParentWindow) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lifecycle.IsOpen() {
		return false
	}
	// the previous window must be gone before the state goes back to Open:
	// its teardown closes the lifecycle
	if e.finished != nil {
		select {
		case <-e.finished:
		case <-time.After(closeTimeout):
			log.Print("previous editor window did not close in time")
			return false
		}
	}
	if !e.lifecycle.Open() {
		return false
	}
	// drop a close request that arrived after the previous window was gone
	select {
	case <-e.model.Broker().CloseGUI:
	default:
	}
	e.parent = parent
	e.finished = make(chan struct{})
	go e.session(e.finished)
	log.Printf("editor opened (parent %v)", parent)
	return true
}

// Close asks the editor window to close. Closing a closed editor does
// nothing.
func (e *Editor) Close() {
	if !e.lifecycle.Close() {
		return
	}
	editor.TrySend(e.model.Broker().CloseGUI, struct{}{})
	log.Print("editor closed")
}

func (e *Editor) IsOpen() bool { return e.lifecycle.IsOpen() }

// Size returns the window size in Dp.
func (e *Editor) Size() (width, height int) {
	return e.prefs.Window.Width, e.prefs.Window.Height
}

// Wait blocks until the window of the latest Open has been destroyed, or
// the timeout passes. Returns false on timeout.
func (e *Editor) Wait(timeout time.Duration) bool {
	e.mu.Lock()
	finished := e.finished
	e.mu.Unlock()
	if finished == nil {
		return true
	}
	select {
	case <-finished:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Finished returns a channel that is closed when the window of the latest
// Open has been destroyed. Nil before the first Open.
func (e *Editor) Finished() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finished
}

func (e *Editor) main(finished chan struct{}) {
	defer close(finished)
	defer logging.LogPanics()
	refreshTicker := time.NewTicker(refreshInterval)
	defer refreshTicker.Stop()
	var ops op.Ops
	w := e.newWindow()
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	for {
		select {
		case ev := <-e.model.Broker().ToModel:
			if e.model.Update(ev) {
				w.Invalidate()
			}
		case <-refreshTicker.C:
			if e.model.Refresh() {
				w.Invalidate()
			}
		case <-e.model.Broker().CloseGUI:
			w.Perform(system.ActionClose)
		case ev := <-events:
			switch ev := ev.(type) {
			case app.DestroyEvent:
				if ev.Err != nil {
					log.Printf("editor window: %v", ev.Err)
				}
				e.lifecycle.Close()
				acks <- struct{}{}
				return
			case app.FrameEvent:
				gtx := app.NewContext(&ops, ev)
				e.Layout(gtx)
				ev.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
}

func (e *Editor) newWindow() *app.Window {
	width, height := e.Size()
	w := new(app.Window)
	w.Option(
		app.Title(e.prefs.Window.Title),
		app.Size(unit.Dp(width), unit.Dp(height)),
	)
	return w
}

// Layout draws the editor and handles the input of the previous frame.
func (e *Editor) Layout(gtx C) D {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, e.Theme.Background)
	knob := Knob(e.model.Normalized(), e.prefs.Knob.Step, e.Knob, &e.Theme.Knob)
	knob.Update(gtx, e.emit)
	knob.Value = e.model.Normalized()
	spacer := layout.Spacer{Height: e.Theme.Spacing}
	gtx.Constraints.Min = gtx.Constraints.Max
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle, Spacing: layout.SpaceSides}.Layout(gtx,
		layout.Rigid(Label(&e.Theme.Heading, e.model.Heading()).Layout),
		layout.Rigid(spacer.Layout),
		layout.Rigid(knob.Layout),
		layout.Rigid(spacer.Layout),
		layout.Rigid(Label(&e.Theme.Value, e.valueText).Layout),
	)
}

func (e *Editor) emit(ev editor.Event) {
	e.model.Update(ev)
}
