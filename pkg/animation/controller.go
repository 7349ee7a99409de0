package animation

import "time"

// AnimationController drives a transition by producing a progress Value
// over time.
//
// Each call to Play runs Value from 0 toward 1 over the given duration,
// shaped by the given curve. The curve may overshoot, so Value can leave
// [0, 1] while the transition runs; it lands on exactly 1 when it ends.
// A new Play supersedes the transition in flight.
//
// Always call Dispose when done to stop the ticker and drop listeners.
// See ExampleAnimationController for usage patterns.
type AnimationController struct {
	// Value is the current progress. It rests at 1 between transitions.
	Value float64

	// Duration is the length of the current transition.
	Duration time.Duration

	// Curve transforms linear progress. Nil means linear.
	Curve func(float64) float64

	ticker         *Ticker
	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates an idle controller resting at 1.
func NewAnimationController() *AnimationController {
	return &AnimationController{
		Value:     1,
		Curve:     LinearCurve,
		listeners: make(map[int]func()),
	}
}

// Play restarts progress at 0 and animates to 1 over duration along curve.
func (c *AnimationController) Play(duration time.Duration, curve func(float64) float64) {
	c.Stop()
	c.Duration = duration
	c.Curve = curve
	c.Value = 0
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}

	if progress >= 1 {
		c.Value = 1
	} else if c.Curve != nil {
		c.Value = c.Curve(progress)
	} else {
		c.Value = progress
	}
	c.notifyListeners()

	if progress >= 1 {
		c.Stop()
	}
}

// Jump stops any transition and rests at 1 without notifying listeners.
func (c *AnimationController) Jump() {
	c.Stop()
	c.Value = 1
}

// Stop stops the transition at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// IsAnimating returns true while a transition is running.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
}
