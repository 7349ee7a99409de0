package gestures

import "github.com/go-drift/neon/pkg/graphics"

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is where the pointer went down.
	Position graphics.Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	// Position is the current pointer position.
	Position graphics.Offset
	// Delta is the movement since the previous update.
	Delta graphics.Offset
	// Translation is the total movement since the drag started.
	Translation graphics.Offset
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Position is where the pointer lifted.
	Position graphics.Offset
	// Translation is the total movement over the whole drag.
	Translation graphics.Offset
}

// DragGestureRecognizer tracks one pointer from down to up.
//
// With MinimumDistance 0 (the default) the drag starts on pointer down, so
// a tap is reported as a drag with zero translation. With a positive
// MinimumDistance, OnStart fires once the pointer has travelled that far;
// a pointer released before then ends without any callbacks.
//
// Only the first pointer is tracked; other pointers are ignored until it
// lifts or the sequence is cancelled.
type DragGestureRecognizer struct {
	MinimumDistance float64

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	pointer  int64
	tracking bool
	started  bool
	origin   graphics.Offset
	last     graphics.Offset
}

// NewDragGestureRecognizer creates a recognizer that starts on pointer down.
func NewDragGestureRecognizer() *DragGestureRecognizer {
	return &DragGestureRecognizer{}
}

// IsActive reports whether a pointer is currently being tracked.
func (r *DragGestureRecognizer) IsActive() bool {
	return r.tracking
}

// AddPointer begins tracking a pointer-down event.
func (r *DragGestureRecognizer) AddPointer(event PointerEvent) {
	if r.tracking {
		return
	}
	r.pointer = event.PointerID
	r.tracking = true
	r.started = false
	r.origin = event.Position
	r.last = event.Position
	if r.MinimumDistance <= 0 {
		r.start()
	}
}

// HandleEvent processes move, up and cancel events for the tracked pointer.
func (r *DragGestureRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		translation := event.Position.Sub(r.origin)
		if !r.started {
			if translation.Distance() < r.MinimumDistance {
				r.last = event.Position
				return
			}
			r.start()
		}
		delta := event.Position.Sub(r.last)
		r.last = event.Position
		if r.OnUpdate != nil {
			r.OnUpdate(DragUpdateDetails{
				Position:    event.Position,
				Delta:       delta,
				Translation: translation,
			})
		}
	case PointerPhaseUp:
		started := r.started
		r.reset()
		if started && r.OnEnd != nil {
			r.OnEnd(DragEndDetails{
				Position:    event.Position,
				Translation: event.Position.Sub(r.origin),
			})
		}
	case PointerPhaseCancel:
		started := r.started
		r.reset()
		if started && r.OnCancel != nil {
			r.OnCancel()
		}
	}
}

// HandlePointer routes any pointer event to AddPointer or HandleEvent.
func (r *DragGestureRecognizer) HandlePointer(event PointerEvent) {
	if event.Phase == PointerPhaseDown {
		r.AddPointer(event)
		return
	}
	r.HandleEvent(event)
}

// Dispose stops tracking without firing callbacks.
func (r *DragGestureRecognizer) Dispose() {
	r.reset()
}

func (r *DragGestureRecognizer) start() {
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: r.origin})
	}
}

func (r *DragGestureRecognizer) reset() {
	r.tracking = false
	r.started = false
}
