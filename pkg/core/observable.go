package core

import "sync"

// Observable holds a value and notifies listeners when it changes.
//
// Set is a no-op when the new value equals the current one, so two
// observables wired to each other settle instead of echoing forever.
// Value, Set and AddListener are safe for concurrent use; listeners run on
// the goroutine that called Set, outside the internal lock.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equal     func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable for a comparable type, using == to
// detect changes.
func NewObservable[T comparable](initial T) *Observable[T] {
	return NewObservableWithEquality(initial, func(a, b T) bool { return a == b })
}

// NewObservableWithEquality creates an observable with a custom equality
// function. A nil equal notifies on every Set.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		equal:     equal,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores value and notifies listeners if it differs from the current
// value. Returns whether a change was recorded.
func (o *Observable[T]) Set(value T) bool {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, value) {
		o.mu.Unlock()
		return false
	}
	o.value = value
	listeners := make([]func(T), 0, len(o.listeners))
	for id := 0; id < o.nextID; id++ {
		if fn, ok := o.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
	return true
}

// Update applies transform to the current value and stores the result.
func (o *Observable[T]) Update(transform func(T) T) bool {
	return o.Set(transform(o.Value()))
}

// AddListener registers fn to be called with each new value.
// Listeners run in registration order. Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
