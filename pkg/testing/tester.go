package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/core"
	"github.com/go-drift/neon/pkg/host"
	"github.com/go-drift/neon/pkg/neon"
)

// FrameDuration is the fake time advanced between settling frames.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester mounts a host view under a fake clock and simulates input.
type Tester struct {
	view      *host.View
	clock     *FakeClock
	prevClock animation.Clock
	pointers  map[int64]*pointerState
	frames    int
}

// NewTester creates a tester around a host view built from cfg.
// Call Cleanup when done, or use NewTesterWithT instead.
func NewTester(cfg host.Config) *Tester {
	clk := NewFakeClock()
	t := &Tester{
		clock:    clk,
		pointers: make(map[int64]*pointerState),
	}
	t.prevClock = animation.SetClock(clk)
	t.view = host.New(cfg)
	return t
}

// NewTesterWithT creates a tester with the default host configuration that
// cleans up via t.Cleanup. Pass options to adjust the configuration.
func NewTesterWithT(t *testing.T, opts ...func(*host.Config)) *Tester {
	t.Helper()
	cfg := host.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	tester := NewTester(cfg)
	t.Cleanup(tester.Cleanup)
	return tester
}

// WithInitial sets the binding's starting value.
func WithInitial(on bool) func(*host.Config) {
	return func(cfg *host.Config) { cfg.Initial = on }
}

// Cleanup disposes the view and restores the animation clock.
func (t *Tester) Cleanup() {
	if t.view != nil {
		t.view.Dispose()
		t.view = nil
	}
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// View returns the mounted host view.
func (t *Tester) View() *host.View {
	return t.view
}

// Toggle returns the mounted control.
func (t *Tester) Toggle() *neon.Toggle {
	return t.view.Toggle()
}

// Binding returns the host's canonical value.
func (t *Tester) Binding() *core.Observable[bool] {
	return t.view.Binding()
}

// Frames returns the number of frames pumped so far.
func (t *Tester) Frames() int {
	return t.frames
}

// Pump runs a single frame at the current fake time.
func (t *Tester) Pump() {
	t.view.StepFrame()
	t.view.Record()
	t.frames++
}

// PumpFor advances fake time by d in FrameDuration steps, pumping each frame.
func (t *Tester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		t.clock.Advance(FrameDuration)
		t.Pump()
	}
}

// PumpAndSettle runs frames until no animation is active or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *Tester) needsWork() bool {
	return animation.HasActiveTickers() || t.view.Toggle().IsAnimating()
}
