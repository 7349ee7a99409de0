package core

import "sync"

// stateBase is satisfied by any struct that embeds StateBase.
// Hooks accept stateBase so callers can pass s directly.
type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// Disposable is implemented by resources that need explicit cleanup.
type Disposable interface {
	Dispose()
}

// StateBase provides the lifecycle plumbing shared by controls: a dirty
// flag raised by SetState, an optional repaint callback, and LIFO disposers.
//
// Example:
//
//	type toggleState struct {
//	    core.StateBase
//	    isOn bool
//	}
//
//	func (s *toggleState) flip() {
//	    s.SetState(func() { s.isOn = !s.isOn })
//	}
type StateBase struct {
	onNeedsPaint func()
	needsPaint   bool
	disposers    []func()
	disposed     bool
	mu           sync.Mutex
}

// SetRepaintCallback registers fn to run whenever SetState marks the state
// dirty. The host uses it to schedule a frame.
func (s *StateBase) SetRepaintCallback(fn func()) {
	s.onNeedsPaint = fn
}

// SetState executes the given function and marks the state as needing paint.
// Safe to call even after disposal (becomes a no-op).
//
// SetState is NOT thread-safe. It must only be called from the UI goroutine.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	s.needsPaint = true
	if s.onNeedsPaint != nil {
		s.onNeedsPaint()
	}
}

// NeedsPaint reports whether SetState ran since the last ClearNeedsPaint.
func (s *StateBase) NeedsPaint() bool {
	return s.needsPaint
}

// ClearNeedsPaint resets the dirty flag after a frame has been painted.
func (s *StateBase) ClearNeedsPaint() {
	s.needsPaint = false
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Dispose runs all registered disposers in reverse order (LIFO).
// Subsequent calls are no-ops.
func (s *StateBase) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
