// Package gestures turns raw pointer events into gesture callbacks.
package gestures

import (
	"fmt"

	"github.com/go-drift/neon/pkg/graphics"
)

// PointerPhase identifies where a pointer event sits in its lifecycle.
type PointerPhase int

const (
	// PointerPhaseDown is sent when a pointer makes contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is sent while a pointer in contact moves.
	PointerPhaseMove
	// PointerPhaseUp is sent when a pointer lifts.
	PointerPhaseUp
	// PointerPhaseCancel is sent when the system aborts the pointer sequence.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample delivered to a handler.
// Position and Delta are in the receiver's local coordinate space.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Delta     graphics.Offset
	Phase     PointerPhase
}

// PointerHandler receives pointer events that hit it.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}
