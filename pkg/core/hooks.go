package core

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
// Example:
//
//	s.motion = core.UseController(s, func() *animation.AnimationController {
//	    return animation.NewAnimationController()
//	})
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseObservable subscribes onChange to obs for the lifetime of the state.
// The subscription is removed when the state is disposed.
//
// Example:
//
//	core.UseObservable(s, binding, func(v bool) {
//	    s.SetState(func() { s.mirror = v })
//	})
func UseObservable[T any](s stateBase, obs *Observable[T], onChange func(T)) {
	base := s.state()
	unsub := obs.AddListener(onChange)
	base.OnDispose(unsub)
}
