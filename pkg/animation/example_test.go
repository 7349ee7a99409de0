package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/graphics"
)

// This example shows how to play a transition and read its progress.
func ExampleAnimationController() {
	controller := animation.NewAnimationController()

	// Listen for value changes
	controller.AddListener(func() {
		fmt.Printf("Value: %.2f\n", controller.Value)
	})

	// Animate 0 -> 1, easing in and out
	controller.Play(300*time.Millisecond, animation.EaseInOut)

	// Clean up when done
	controller.Dispose()
}

// This example shows how to interpolate knob geometry with the progress.
func ExampleLerpSize() {
	controller := animation.NewAnimationController()

	rest := graphics.Size{Width: 27, Height: 27}
	pressed := graphics.Size{Width: 35, Height: 27}

	controller.AddListener(func() {
		_ = animation.LerpSize(rest, pressed, controller.Value)
		_ = animation.LerpFloat64(-10, -6, controller.Value)
	})

	controller.Play(350*time.Millisecond, animation.EaseInOut)
	controller.Dispose()
}

// This example shows how to play a spring that overshoots before settling.
func ExampleSpringDescription_Curve() {
	controller := animation.NewAnimationController()
	controller.Play(animation.Bouncy.SettleDuration(), animation.Bouncy.Curve())
	controller.Dispose()
}
