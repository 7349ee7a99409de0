package neon

import (
	"fmt"
	"math"
)

// Phase is the gesture phase of the control.
type Phase int

const (
	// PhaseIdle means no gesture is in progress.
	PhaseIdle Phase = iota
	// PhasePressed means a pointer is down but has not moved horizontally.
	PhasePressed
	// PhaseDragging means the pointer has moved horizontally at least once.
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePressed:
		return "pressed"
	case PhaseDragging:
		return "dragging"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Interaction is the transient gesture state of the control.
// The zero value is idle with no drag offset.
type Interaction struct {
	Phase      Phase
	DragOffset float64
}

// Pressed reports whether a pointer is down.
func (i Interaction) Pressed() bool {
	return i.Phase != PhaseIdle
}

// Dragging reports whether horizontal movement has been registered.
func (i Interaction) Dragging() bool {
	return i.Phase == PhaseDragging
}

// Begin enters the pressed phase.
func (i *Interaction) Begin() {
	i.Phase = PhasePressed
	i.DragOffset = 0
}

// Move records the total horizontal translation of the gesture. Any
// nonzero translation enters the dragging phase, which then persists
// until the gesture ends.
func (i *Interaction) Move(translation float64, isOn bool) {
	if i.Phase == PhaseIdle {
		i.Phase = PhasePressed
	}
	if translation != 0 {
		i.Phase = PhaseDragging
	}
	i.DragOffset = ClampDrag(translation, isOn)
}

// Reclamp limits the current drag offset to the travel allowed for isOn.
func (i *Interaction) Reclamp(isOn bool) {
	i.DragOffset = ClampDrag(i.DragOffset, isOn)
}

// End resets to idle and reports whether the release should flip the value.
func (i *Interaction) End(translation float64) bool {
	flip := ShouldFlip(i.Dragging(), translation)
	i.Reset()
	return flip
}

// Cancel resets to idle without flipping.
func (i *Interaction) Cancel() {
	i.Reset()
}

// Reset returns to the neutral idle state.
func (i *Interaction) Reset() {
	*i = Interaction{}
}

// ClampDrag limits a translation to the direction the knob can travel:
// [-MaxDragTranslation, 0] when on, [0, MaxDragTranslation] when off.
func ClampDrag(translation float64, isOn bool) float64 {
	if isOn {
		return math.Max(math.Min(translation, 0), -MaxDragTranslation)
	}
	return math.Max(math.Min(translation, MaxDragTranslation), 0)
}

// ShouldFlip decides a release. A gesture without horizontal movement is a
// tap and always flips. A drag flips when the raw final translation exceeds
// FlipThreshold in either direction.
func ShouldFlip(dragging bool, translation float64) bool {
	if !dragging {
		return true
	}
	return math.Abs(translation) > FlipThreshold
}
