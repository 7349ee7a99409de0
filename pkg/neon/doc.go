// Package neon implements a decorative binary toggle with a glowing
// gradient outline.
//
// The control mirrors a host-owned boolean ([core.Observable]), tracks a
// drag-to-toggle gesture, and animates between appearances. A tap flips
// the value; a drag of more than [FlipThreshold] units flips it; a shorter
// drag springs back.
//
//	binding := core.NewObservable(false)
//	toggle := neon.NewToggle(binding)
//	toggle.Appear()
//	defer toggle.Dispose()
//
//	// Each frame:
//	animation.StepTickers()
//	toggle.Paint(canvas)
//
// Appearance is a pure function of the mirror value and the interaction
// state, so it can be computed and tested without a canvas. See [Derive].
package neon
