package gioui

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
)

type (
	Theme struct {
		Shaper     *text.Shaper
		Background color.NRGBA
		Spacing    unit.Dp
		Heading    LabelStyle
		Value      LabelStyle
		Knob       KnobStyle
	}

	KnobStyle struct {
		Diameter    unit.Dp
		StrokeWidth unit.Dp
		Track       color.NRGBA
		TrackBg     color.NRGBA
		Indicator   struct {
			Color     color.NRGBA
			Width     unit.Dp
			InnerDiam unit.Dp
			OuterDiam unit.Dp
		}
	}
)

var (
	labelColor      = color.NRGBA{R: 0xc2, G: 0xc2, B: 0xc2, A: 255}
	backgroundColor = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	trackColor      = color.NRGBA{R: 0xff, G: 0xb7, B: 0x4d, A: 255}
	trackBgColor    = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	shadeColor      = color.NRGBA{A: 96}
)

func NewTheme() *Theme {
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	label := LabelStyle{
		Color:      labelColor,
		ShadeColor: shadeColor,
		Alignment:  layout.Center,
		Font:       font.Font{Typeface: "Go"},
		FontSize:   unit.Sp(20),
		Shaper:     shaper,
	}
	th := &Theme{
		Shaper:     shaper,
		Background: backgroundColor,
		Spacing:    10,
		Heading:    label,
		Value:      label,
		Knob: KnobStyle{
			Diameter:    70,
			StrokeWidth: 8,
			Track:       trackColor,
			TrackBg:     trackBgColor,
		},
	}
	th.Heading.Font.Weight = font.Bold
	th.Knob.Indicator.Color = labelColor
	th.Knob.Indicator.Width = 3
	th.Knob.Indicator.InnerDiam = 20
	th.Knob.Indicator.OuterDiam = 50
	return th
}
