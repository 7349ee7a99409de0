package neon

import (
	"time"

	"github.com/go-drift/neon/pkg/graphics"
)

// Gesture and knob geometry, in toggle units.
const (
	// MaxDragTranslation bounds how far the knob follows a drag.
	MaxDragTranslation = 12.0
	// KnobHeight is the knob height and its resting width.
	KnobHeight = 27.0
	// PressWidthDelta widens the knob while pressed.
	PressWidthDelta = 8.0
	// FlipThreshold is the release translation a drag must exceed to flip.
	FlipThreshold = KnobHeight / 6
	// RestOffset is the knob's horizontal distance from center at rest.
	RestOffset = 10.0
	// PressOffsetCorrection pulls the widened knob back toward center.
	PressOffsetCorrection = 4.0
	// OnTrim and OffTrim are the visible fraction of the neon outlines.
	OnTrim  = 0.5
	OffTrim = 0.0
)

// Layer geometry.
var (
	TrackSize      = graphics.Size{Width: 52, Height: 31}
	BorderSize     = graphics.Size{Width: 55, Height: 34}
	NeonBorderSize = graphics.Size{Width: 60, Height: 39}

	KnobShadowOffset = graphics.Offset{X: 10, Y: 4}
)

const (
	BorderStrokeWidth     = 4.0
	NeonBorderStrokeWidth = 2.0
	// LampDiameter is the status lamp size at the frame's top-leading corner.
	LampDiameter = 3.0
	// KnobBaseNudge shifts the knob's base and upper layers left.
	KnobBaseNudge = -0.7
	// NeonSplit separates the two mirrored neon layers vertically.
	NeonSplit = 0.25
)

// Palette.
var (
	TrackColor = graphics.Hex(0x1C1C1E)
	KnobColor  = graphics.Hex(0x2C2C2E)
	NeonCyan   = graphics.Hex(0x00F5FF)
	NeonGreen  = graphics.Hex(0x39FF14)
	LampOn     = graphics.Hex(0x34C759)
	LampOff    = graphics.Hex(0xFF3B30)

	ShadowColor = graphics.ColorBlack.WithAlpha(0.55)
)

// PressDuration is the length of press and drag transitions.
const PressDuration = 350 * time.Millisecond

// neonStops runs from the leading edge (cyan) to the trailing edge (green).
var neonStops = []graphics.GradientStop{
	{Position: 0, Color: NeonCyan},
	{Position: 1, Color: NeonGreen},
}

// NeonGradient returns the leading-to-trailing neon gradient spanning rect.
func NeonGradient(rect graphics.Rect) *graphics.Gradient {
	return graphics.HorizontalGradient(rect, neonStops)
}
