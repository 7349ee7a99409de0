package testing

import (
	"fmt"

	"github.com/go-drift/neon/pkg/gestures"
	"github.com/go-drift/neon/pkg/graphics"
	"github.com/go-drift/neon/pkg/host"
)

// pointerState tracks a simulated pointer between events.
type pointerState struct {
	position graphics.Offset
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Center returns the surface position of the control's center.
func (t *Tester) Center() graphics.Offset {
	return t.view.ToggleBounds().Center()
}

// Tap simulates a tap at the center of the control.
func (t *Tester) Tap() error {
	return t.TapAt(t.Center())
}

// TapAt simulates a tap at the given surface position.
func (t *Tester) TapAt(pos graphics.Offset) error {
	id := allocPointerID()
	if err := t.SendPointerDown(pos, id); err != nil {
		return err
	}
	return t.SendPointerUp(pos, id)
}

// Drag simulates a horizontal drag of dx toggle units from the control's
// center, delivered in the given number of move events.
func (t *Tester) Drag(dx float64, steps int) error {
	delta := graphics.Offset{X: dx * t.view.Scale()}
	return t.DragFrom(t.Center(), delta, steps)
}

// DragFrom simulates a drag from start by delta in surface coordinates,
// delivered in the given number of move events.
func (t *Tester) DragFrom(start, delta graphics.Offset, steps int) error {
	if steps < 1 {
		steps = 1
	}
	id := allocPointerID()
	if err := t.SendPointerDown(start, id); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		pos := graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac}
		if err := t.SendPointerMove(pos, id); err != nil {
			return err
		}
	}
	return t.SendPointerUp(start.Add(delta), id)
}

// SendPointerDown sends a pointer-down event at pos with the given pointer ID.
func (t *Tester) SendPointerDown(pos graphics.Offset, pointerID int64) error {
	if _, ok := t.pointers[pointerID]; ok {
		return fmt.Errorf("pointer %d is already down", pointerID)
	}
	t.pointers[pointerID] = &pointerState{position: pos}
	return t.send(pos, pointerID, gestures.PointerPhaseDown)
}

// SendPointerMove sends a pointer-move event at pos with the given pointer ID.
func (t *Tester) SendPointerMove(pos graphics.Offset, pointerID int64) error {
	state, ok := t.pointers[pointerID]
	if !ok {
		return fmt.Errorf("pointer %d is not down", pointerID)
	}
	state.position = pos
	return t.send(pos, pointerID, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event at pos with the given pointer ID.
func (t *Tester) SendPointerUp(pos graphics.Offset, pointerID int64) error {
	if _, ok := t.pointers[pointerID]; !ok {
		return fmt.Errorf("pointer %d is not down", pointerID)
	}
	delete(t.pointers, pointerID)
	return t.send(pos, pointerID, gestures.PointerPhaseUp)
}

// SendPointerCancel sends a pointer-cancel event for the given pointer ID.
func (t *Tester) SendPointerCancel(pointerID int64) error {
	state, ok := t.pointers[pointerID]
	if !ok {
		return fmt.Errorf("pointer %d is not down", pointerID)
	}
	delete(t.pointers, pointerID)
	return t.send(state.position, pointerID, gestures.PointerPhaseCancel)
}

// NewPointerID reserves a fresh pointer ID for manual event sequences.
func (t *Tester) NewPointerID() int64 {
	return allocPointerID()
}

func (t *Tester) send(pos graphics.Offset, pointerID int64, phase gestures.PointerPhase) error {
	if t.view == nil {
		return fmt.Errorf("no view mounted")
	}
	t.view.HandlePointer(host.PointerEvent{
		PointerID: pointerID,
		X:         pos.X,
		Y:         pos.Y,
		Phase:     phase,
	})
	return nil
}
