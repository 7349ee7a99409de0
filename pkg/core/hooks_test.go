package core

import "testing"

// MockDisposable for testing UseController
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseObservable(t *testing.T) {
	base := &StateBase{}
	obs := NewObservable(42)

	seen := 0
	UseObservable(base, obs, func(v int) { seen = v })

	obs.Set(100)
	if seen != 100 {
		t.Errorf("Expected 100, got %d", seen)
	}
	if obs.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", obs.ListenerCount())
	}
}

func TestUseObservable_Cleanup(t *testing.T) {
	base := &StateBase{}
	obs := NewObservable(0)

	UseObservable(base, obs, func(int) {})
	base.Dispose()

	if obs.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", obs.ListenerCount())
	}
	// After dispose, setting the observable should not panic
	obs.Set(999)
}

func TestStateBase_SetStateMarksDirty(t *testing.T) {
	base := &StateBase{}
	repaints := 0
	base.SetRepaintCallback(func() { repaints++ })

	ran := false
	base.SetState(func() { ran = true })

	if !ran || !base.NeedsPaint() || repaints != 1 {
		t.Errorf("ran=%v needsPaint=%v repaints=%d", ran, base.NeedsPaint(), repaints)
	}

	base.ClearNeedsPaint()
	if base.NeedsPaint() {
		t.Error("ClearNeedsPaint should reset the dirty flag")
	}
}

func TestStateBase_SetStateAfterDispose(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	ran := false
	base.SetState(func() { ran = true })
	if ran {
		t.Error("SetState should be a no-op after Dispose")
	}
}

func TestStateBase_DisposeOrder(t *testing.T) {
	base := &StateBase{}
	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	remove := base.OnDispose(func() { order = append(order, 2) })
	base.OnDispose(func() { order = append(order, 3) })
	remove()

	base.Dispose()
	base.Dispose()

	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("order = %v, want [3 1]", order)
	}
	if !base.IsDisposed() {
		t.Error("IsDisposed should be true")
	}
}

func TestStateBase_OnDisposeAfterDispose(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	called := false
	base.OnDispose(func() { called = true })
	if !called {
		t.Error("cleanup registered after Dispose should run immediately")
	}
}
