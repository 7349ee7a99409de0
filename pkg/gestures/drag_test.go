package gestures

import (
	"testing"

	"github.com/go-drift/neon/pkg/graphics"
)

type dragLog struct {
	starts  int
	updates []DragUpdateDetails
	ends    []DragEndDetails
	cancels int
}

func newLoggedRecognizer(minDistance float64) (*DragGestureRecognizer, *dragLog) {
	log := &dragLog{}
	r := NewDragGestureRecognizer()
	r.MinimumDistance = minDistance
	r.OnStart = func(DragStartDetails) { log.starts++ }
	r.OnUpdate = func(d DragUpdateDetails) { log.updates = append(log.updates, d) }
	r.OnEnd = func(d DragEndDetails) { log.ends = append(log.ends, d) }
	r.OnCancel = func() { log.cancels++ }
	return r, log
}

func down(id int64, x float64) PointerEvent {
	return PointerEvent{PointerID: id, Position: graphics.Offset{X: x}, Phase: PointerPhaseDown}
}

func move(id int64, x float64) PointerEvent {
	return PointerEvent{PointerID: id, Position: graphics.Offset{X: x}, Phase: PointerPhaseMove}
}

func up(id int64, x float64) PointerEvent {
	return PointerEvent{PointerID: id, Position: graphics.Offset{X: x}, Phase: PointerPhaseUp}
}

func TestDrag_ZeroDistanceStartsOnDown(t *testing.T) {
	r, log := newLoggedRecognizer(0)

	r.HandlePointer(down(1, 10))
	if log.starts != 1 {
		t.Fatalf("starts = %d, want 1 on pointer down", log.starts)
	}
	r.HandlePointer(up(1, 10))

	if len(log.ends) != 1 || log.ends[0].Translation.X != 0 {
		t.Errorf("ends = %+v, want one end with zero translation", log.ends)
	}
	if r.IsActive() {
		t.Error("recognizer should be idle after pointer up")
	}
}

func TestDrag_TranslationIsTotal(t *testing.T) {
	r, log := newLoggedRecognizer(0)

	r.HandlePointer(down(1, 10))
	r.HandlePointer(move(1, 13))
	r.HandlePointer(move(1, 16))
	r.HandlePointer(up(1, 16))

	if len(log.updates) != 2 {
		t.Fatalf("updates = %d, want 2", len(log.updates))
	}
	second := log.updates[1]
	if second.Translation.X != 6 || second.Delta.X != 3 {
		t.Errorf("second update translation=%v delta=%v, want 6 and 3", second.Translation.X, second.Delta.X)
	}
	if log.ends[0].Translation.X != 6 {
		t.Errorf("end translation = %v, want 6", log.ends[0].Translation.X)
	}
}

func TestDrag_IgnoresOtherPointers(t *testing.T) {
	r, log := newLoggedRecognizer(0)

	r.HandlePointer(down(1, 0))
	r.HandlePointer(down(2, 50))
	r.HandlePointer(move(2, 80))
	r.HandlePointer(up(2, 80))

	if log.starts != 1 || len(log.updates) != 0 || len(log.ends) != 0 {
		t.Errorf("second pointer leaked into gesture: %+v", log)
	}
	r.HandlePointer(up(1, 0))
	if len(log.ends) != 1 {
		t.Errorf("ends = %d, want 1", len(log.ends))
	}
}

func TestDrag_Cancel(t *testing.T) {
	r, log := newLoggedRecognizer(0)

	r.HandlePointer(down(1, 0))
	r.HandlePointer(PointerEvent{PointerID: 1, Phase: PointerPhaseCancel})

	if log.cancels != 1 || len(log.ends) != 0 {
		t.Errorf("cancels=%d ends=%d, want 1 and 0", log.cancels, len(log.ends))
	}
}

func TestDrag_MinimumDistance(t *testing.T) {
	r, log := newLoggedRecognizer(5)

	r.HandlePointer(down(1, 0))
	r.HandlePointer(move(1, 3))
	if log.starts != 0 {
		t.Fatal("drag should not start below the minimum distance")
	}
	r.HandlePointer(move(1, 7))
	if log.starts != 1 || len(log.updates) != 1 {
		t.Fatalf("starts=%d updates=%d, want 1 and 1", log.starts, len(log.updates))
	}
	if log.updates[0].Delta.X != 4 {
		t.Errorf("delta = %v, want movement since last sample (4)", log.updates[0].Delta.X)
	}

	r.HandlePointer(down(2, 0))
	r.HandlePointer(up(1, 7))

	r2, log2 := newLoggedRecognizer(5)
	r2.HandlePointer(down(3, 0))
	r2.HandlePointer(up(3, 1))
	if log2.starts != 0 || len(log2.ends) != 0 {
		t.Errorf("short press should produce no callbacks, got %+v", log2)
	}
}

func TestPointerPhase_String(t *testing.T) {
	if PointerPhaseCancel.String() != "cancel" || PointerPhase(9).String() != "PointerPhase(9)" {
		t.Error("unexpected phase names")
	}
}
