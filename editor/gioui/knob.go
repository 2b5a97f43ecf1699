package gioui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/x/stroke"
	"github.com/gainfx/gainfx/editor"
)

type (
	// KnobState is the interaction state of a knob that persists between
	// frames.
	KnobState struct {
		drag         gesture.Drag
		dragStartPt  f32.Point // used to calculate the drag amount
		dragStartVal float32
		click        gesture.Click
	}

	KnobWidget struct {
		Value float32 // normalized position, 0..1
		Step  float32 // normalized change per scroll notch
		State *KnobState
		Style *KnobStyle
	}
)

// dragRange is the drag distance, in Dp, that turns the knob from 0 to 1.
const dragRange = 128

func Knob(value, step float32, state *KnobState, style *KnobStyle) KnobWidget {
	return KnobWidget{Value: value, Step: step, State: state, Style: style}
}

// Update handles the input of the previous frame and calls emit with the
// resulting events.
func (k *KnobWidget) Update(gtx C, emit func(editor.Event)) {
	s := k.State
	for {
		p, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		switch p.Kind {
		case pointer.Press:
			s.dragStartPt = p.Position
			s.dragStartVal = k.Value
		case pointer.Drag:
			d := p.Position.Sub(s.dragStartPt)
			amount := (d.X - d.Y) / float32(gtx.Dp(dragRange))
			emit(editor.SetGain{Value: min(max(s.dragStartVal+amount, 0), 1)})
		}
	}
	for {
		g, ok := s.click.Update(gtx.Source)
		if !ok {
			break
		}
		if g.Kind == gesture.KindClick && g.NumClicks > 1 {
			emit(editor.ResetGain{})
		}
	}
	for {
		e, ok := gtx.Event(pointer.Filter{
			Target:  s,
			Kinds:   pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		if ev, ok := e.(pointer.Event); ok && ev.Kind == pointer.Scroll {
			notches := -float32(math.Min(math.Max(float64(ev.Scroll.Y), -1), 1))
			emit(editor.NudgeGain{Delta: notches * k.Step})
		}
	}
}

func (k *KnobWidget) Layout(gtx C) D {
	d := gtx.Dp(k.Style.Diameter)
	sw := gtx.Dp(k.Style.StrokeWidth)
	defer clip.Rect(image.Rectangle{Max: image.Pt(d, d)}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, k.State)
	k.State.drag.Add(gtx.Ops)
	k.State.click.Add(gtx.Ops)
	amount := min(max(k.Value, 0), 1)
	if amount < 1 {
		k.strokeArc(gtx, k.Style.TrackBg, sw, d, amount, 1)
	}
	if amount > 0 {
		k.strokeArc(gtx, k.Style.Track, sw, d, 0, amount)
	}
	k.strokeIndicator(gtx, amount)
	return D{Size: image.Pt(d, d)}
}

// The knob sweeps 288 degrees, starting at the bottom left.
func knobAngle(amount float32) float64 {
	return (float64(amount)*8 + 1) / 10 * 2 * math.Pi
}

func (k *KnobWidget) strokeArc(gtx C, color color.NRGBA, strokeWidth, diameter int, start, end float32) {
	rad := float32(diameter) / 2
	startAngle := knobAngle(start)
	deltaAngle := (end - start) * 8 * math.Pi / 5
	center := f32.Point{X: rad, Y: rad}
	r2 := rad - float32(strokeWidth)/2
	startPt := f32.Point{X: rad - r2*float32(math.Sin(startAngle)), Y: rad + r2*float32(math.Cos(startAngle))}
	segments := [...]stroke.Segment{
		stroke.MoveTo(startPt),
		stroke.ArcTo(center, deltaAngle),
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: float32(strokeWidth),
		Cap:   stroke.FlatCap,
	}
	paint.FillShape(gtx.Ops, color, s.Op(gtx.Ops))
}

func (k *KnobWidget) strokeIndicator(gtx C, amount float32) {
	innerRad := float32(gtx.Dp(k.Style.Indicator.InnerDiam)) / 2
	outerRad := float32(gtx.Dp(k.Style.Indicator.OuterDiam)) / 2
	center := float32(gtx.Dp(k.Style.Diameter)) / 2
	angle := knobAngle(amount)
	start := f32.Point{
		X: center - innerRad*float32(math.Sin(angle)),
		Y: center + innerRad*float32(math.Cos(angle)),
	}
	end := f32.Point{
		X: center - outerRad*float32(math.Sin(angle)),
		Y: center + outerRad*float32(math.Cos(angle)),
	}
	segments := [...]stroke.Segment{
		stroke.MoveTo(start),
		stroke.LineTo(end),
	}
	s := stroke.Stroke{
		Path:  stroke.Path{Segments: segments[:]},
		Width: float32(gtx.Dp(k.Style.Indicator.Width)),
		Cap:   stroke.RoundCap,
	}
	paint.FillShape(gtx.Ops, k.Style.Indicator.Color, s.Op(gtx.Ops))
}
