package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/neon/pkg/neon"
)

func TestNewTesterWithT_Initial(t *testing.T) {
	tester := NewTesterWithT(t, WithInitial(true))
	if !tester.Toggle().IsOn() {
		t.Error("mirror should start on")
	}
	if tester.Toggle().IsAnimating() {
		t.Error("initial value should appear without animation")
	}
}

func TestPump_CountsFrames(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Pump()
	tester.PumpFor(48 * time.Millisecond)
	if tester.Frames() != 4 {
		t.Errorf("Frames = %d, want 4", tester.Frames())
	}
}

func TestPumpAndSettle_ReachesTarget(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Tap()

	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if got, want := tester.Toggle().Presented(), neon.Derive(true, false, 0); got != want {
		t.Errorf("settled appearance = %+v, want %+v", got, want)
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Tap()

	err := tester.PumpAndSettle(32 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}
