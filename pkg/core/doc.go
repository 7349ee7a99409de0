// Package core provides the state plumbing shared by controls and hosts.
//
// # Observable values
//
// Observable holds a value and notifies listeners when it changes. The
// host owns the canonical toggle value as an Observable[bool] and hands the
// same cell to the control, which reads, observes, and writes it:
//
//	isOn := core.NewObservable(false)
//	unsub := isOn.AddListener(func(v bool) { fmt.Println("now", v) })
//	isOn.Set(true) // prints "now true"
//	isOn.Set(true) // equal value: no notification
//	unsub()
//
// # State lifecycle
//
// StateBase tracks whether a control needs repainting and runs registered
// disposers in reverse order. UseController and UseObservable tie
// controllers and subscriptions to that lifecycle.
//
// # Constructor Conventions
//
// Controllers and services use NewX() constructors returning pointers:
//
//	ctrl := animation.NewAnimationController()
//	binding := core.NewObservable(false)
//
// This distinguishes long-lived, mutable objects from plain configuration
// values, which use struct literals.
package core
