package neon

import (
	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/core"
	"github.com/go-drift/neon/pkg/gestures"
	"github.com/go-drift/neon/pkg/graphics"
)

var bouncyCurve = animation.Bouncy.Curve()

// Toggle is the neon toggle control.
//
// Toggle keeps a mirror of the binding's value. External writes to the
// binding and gesture flips each update the mirror and animate with the
// bouncy spring; press and drag changes use EaseInOut. Every new target
// starts from the appearance on screen, so the most recent change wins.
//
// Toggle is not safe for concurrent use; drive it from one goroutine.
type Toggle struct {
	core.StateBase

	// OnCommit, if set, is called after a gesture flips the value.
	// External binding writes do not call it.
	OnCommit func(bool)

	binding     *core.Observable[bool]
	isOn        bool
	interaction Interaction

	motion   *animation.AnimationController
	from, to Appearance

	drag *gestures.DragGestureRecognizer
}

// NewToggle creates a toggle bound to binding. Call Appear before the
// first frame to adopt the binding's current value.
func NewToggle(binding *core.Observable[bool]) *Toggle {
	t := &Toggle{binding: binding}
	t.to = t.Target()
	t.from = t.to

	t.motion = core.UseController(t, func() *animation.AnimationController {
		c := animation.NewAnimationController()
		c.AddListener(func() { t.SetState(nil) })
		return c
	})
	core.UseObservable(t, binding, t.onExternalChange)

	t.drag = gestures.NewDragGestureRecognizer()
	t.drag.OnStart = func(gestures.DragStartDetails) {
		t.interaction.Begin()
		t.retarget(false)
	}
	t.drag.OnUpdate = func(d gestures.DragUpdateDetails) {
		t.interaction.Move(d.Translation.X, t.isOn)
		t.retarget(false)
	}
	t.drag.OnEnd = func(d gestures.DragEndDetails) {
		if t.interaction.End(d.Translation.X) {
			t.onLocalCommit()
			return
		}
		t.retarget(false)
	}
	t.drag.OnCancel = func() {
		t.interaction.Cancel()
		t.retarget(false)
	}
	t.OnDispose(t.drag.Dispose)
	return t
}

// Appear copies the binding's value into the mirror without animating.
func (t *Toggle) Appear() {
	t.SetState(func() {
		t.motion.Jump()
		t.isOn = t.binding.Value()
		t.to = t.Target()
		t.from = t.to
	})
}

// IsOn returns the mirrored value.
func (t *Toggle) IsOn() bool {
	return t.isOn
}

// Interaction returns the current gesture state.
func (t *Toggle) Interaction() Interaction {
	return t.interaction
}

// Target returns the appearance the control is animating toward.
func (t *Toggle) Target() Appearance {
	return DeriveInteraction(t.isOn, t.interaction)
}

// Presented returns the appearance at the current animation frame.
func (t *Toggle) Presented() Appearance {
	if t.motion == nil || !t.motion.IsAnimating() {
		return t.to
	}
	return t.from.Lerp(t.to, t.motion.Value)
}

// IsAnimating reports whether a transition is in flight.
func (t *Toggle) IsAnimating() bool {
	return t.motion.IsAnimating()
}

// Size returns the control's frame size.
func (t *Toggle) Size() graphics.Size {
	return NeonBorderSize
}

// HitTest reports whether position, in toggle coordinates, is inside the
// control's frame.
func (t *Toggle) HitTest(position graphics.Offset) bool {
	return graphics.RectFromLTWH(0, 0, NeonBorderSize.Width, NeonBorderSize.Height).Contains(position)
}

// HandlePointer feeds a pointer event, in toggle coordinates, to the
// drag tracker.
func (t *Toggle) HandlePointer(event gestures.PointerEvent) {
	if t.IsDisposed() {
		return
	}
	t.drag.HandlePointer(event)
}

// Paint draws the presented appearance into a canvas whose origin is the
// top-left corner of the control's frame.
func (t *Toggle) Paint(canvas graphics.Canvas) {
	PaintAppearance(canvas, t.Presented())
}

func (t *Toggle) onExternalChange(value bool) {
	if value == t.isOn {
		return
	}
	t.isOn = value
	t.interaction.Reclamp(value)
	t.retarget(true)
}

func (t *Toggle) onLocalCommit() {
	value := !t.isOn
	t.isOn = value
	t.retarget(true)
	t.binding.Set(value)
	if t.OnCommit != nil {
		t.OnCommit(value)
	}
}

// retarget animates from the presented appearance to the current target.
// Value changes use the bouncy spring; interaction changes ease.
func (t *Toggle) retarget(valueChanged bool) {
	target := t.Target()
	if !valueChanged && target == t.to {
		return
	}
	t.from = t.Presented()
	t.to = target
	if valueChanged {
		t.motion.Play(animation.Bouncy.SettleDuration(), bouncyCurve)
	} else {
		t.motion.Play(PressDuration, animation.EaseInOut)
	}
	t.SetState(nil)
}
