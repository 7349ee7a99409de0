package neon

import (
	"testing"

	"github.com/go-drift/neon/pkg/graphics"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name       string
		isOn       bool
		pressed    bool
		drag       float64
		wantOffset float64
		wantWidth  float64
		wantTrim   float64
		wantLamp   graphics.Color
	}{
		{"off rest", false, false, 0, -10, 27, 0, LampOff},
		{"on rest", true, false, 0, 10, 27, 0.5, LampOn},
		{"off pressed", false, true, 0, -6, 35, 0, LampOff},
		{"on pressed", true, true, 0, 6, 35, 0.5, LampOn},
		{"off dragging", false, true, 12, 6, 35, 0, LampOff},
		{"on dragging", true, true, -12, -6, 35, 0.5, LampOn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Derive(tt.isOn, tt.pressed, tt.drag)
			if a.KnobOffset != tt.wantOffset {
				t.Errorf("KnobOffset = %v, want %v", a.KnobOffset, tt.wantOffset)
			}
			if a.KnobSize.Width != tt.wantWidth || a.KnobSize.Height != KnobHeight {
				t.Errorf("KnobSize = %v, want %vx27", a.KnobSize, tt.wantWidth)
			}
			if a.Trim != tt.wantTrim {
				t.Errorf("Trim = %v, want %v", a.Trim, tt.wantTrim)
			}
			if a.Lamp != tt.wantLamp {
				t.Errorf("Lamp = %v, want %v", a.Lamp, tt.wantLamp)
			}
		})
	}
}

func TestDeriveIsPure(t *testing.T) {
	a := Derive(true, true, -3)
	b := Derive(true, true, -3)
	if a != b {
		t.Errorf("Derive not deterministic: %+v vs %+v", a, b)
	}
}

func TestAppearanceLerp(t *testing.T) {
	off := Derive(false, false, 0)
	on := Derive(true, false, 0)

	if got := off.Lerp(on, 0); got != off {
		t.Errorf("Lerp(0) = %+v, want %+v", got, off)
	}
	if got := off.Lerp(on, 1); got != on {
		t.Errorf("Lerp(1) = %+v, want %+v", got, on)
	}
	mid := off.Lerp(on, 0.5)
	if mid.KnobOffset != 0 || mid.Trim != 0.25 {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
	over := off.Lerp(on, 1.1)
	if over.KnobOffset <= on.KnobOffset {
		t.Errorf("overshoot should pass the target: %v", over.KnobOffset)
	}
	if over.Lamp != on.Lamp {
		t.Errorf("color should clamp on overshoot, got %v", over.Lamp)
	}
}

func TestKnobRect(t *testing.T) {
	a := Derive(true, false, 0)
	r := a.KnobRect(NeonBorderSize)
	c := r.Center()
	if c.X != 40 || c.Y != 19.5 {
		t.Errorf("knob center = %+v, want (40, 19.5)", c)
	}
	if r.Width() != 27 || r.Height() != 27 {
		t.Errorf("knob size = %vx%v", r.Width(), r.Height())
	}
}
