package neon

import (
	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/graphics"
)

// Appearance is every animatable visual property of the control.
type Appearance struct {
	// KnobOffset is the knob center's horizontal offset from the frame center.
	KnobOffset float64
	// KnobSize is the knob capsule size.
	KnobSize graphics.Size
	// Trim is the visible fraction of each neon outline.
	Trim float64
	// Lamp is the status lamp color.
	Lamp graphics.Color
}

// Derive computes the target appearance for a value and interaction state.
func Derive(isOn, pressed bool, dragOffset float64) Appearance {
	sign := -1.0
	if isOn {
		sign = 1
	}
	offset := RestOffset * sign
	width := KnobHeight
	if pressed {
		offset -= PressOffsetCorrection * sign
		width += PressWidthDelta
	}

	a := Appearance{
		KnobOffset: offset + dragOffset,
		KnobSize:   graphics.Size{Width: width, Height: KnobHeight},
		Trim:       OffTrim,
		Lamp:       LampOff,
	}
	if isOn {
		a.Trim = OnTrim
		a.Lamp = LampOn
	}
	return a
}

// DeriveInteraction is Derive driven by an Interaction.
func DeriveInteraction(isOn bool, i Interaction) Appearance {
	return Derive(isOn, i.Pressed(), i.DragOffset)
}

// Lerp interpolates between a and b. Geometry is not clamped, so spring
// curves that overshoot carry through to the knob; color is clamped.
func (a Appearance) Lerp(b Appearance, t float64) Appearance {
	return Appearance{
		KnobOffset: animation.LerpFloat64(a.KnobOffset, b.KnobOffset, t),
		KnobSize:   animation.LerpSize(a.KnobSize, b.KnobSize, t),
		Trim:       animation.LerpFloat64(a.Trim, b.Trim, t),
		Lamp:       graphics.LerpColor(a.Lamp, b.Lamp, t),
	}
}

// KnobRect returns the knob rectangle inside a frame of the given size.
func (a Appearance) KnobRect(frame graphics.Size) graphics.Rect {
	center := graphics.Offset{X: frame.Width/2 + a.KnobOffset, Y: frame.Height / 2}
	return graphics.RectFromCenter(center, a.KnobSize)
}
