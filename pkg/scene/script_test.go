package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/go-drift/neon/pkg/errors"
)

func TestParse_Forms(t *testing.T) {
	script, err := Parse([]byte(`
- tap
- drag: {dx: 16, steps: 4}
- drag: -8
- press
- move: 3
- release
- cancel
- set: true
- set: {value: false}
- wait: 300ms
- wait: {duration: 1s}
- settle
- settle: {timeout: 2s}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(script) != 13 {
		t.Fatalf("len = %d, want 13", len(script))
	}

	tests := []struct {
		index int
		check func(Step) bool
	}{
		{0, func(s Step) bool { return s.Action == ActionTap }},
		{1, func(s Step) bool { return s.Action == ActionDrag && s.DX == 16 && s.Steps == 4 }},
		{2, func(s Step) bool { return s.Action == ActionDrag && s.DX == -8 && s.Steps == 0 }},
		{4, func(s Step) bool { return s.Action == ActionMove && s.DX == 3 }},
		{7, func(s Step) bool { return s.Value != nil && *s.Value }},
		{8, func(s Step) bool { return s.Value != nil && !*s.Value }},
		{9, func(s Step) bool { return s.Duration == 300*time.Millisecond }},
		{10, func(s Step) bool { return s.Duration == time.Second }},
		{11, func(s Step) bool { return s.Action == ActionSettle && s.Timeout == 0 }},
		{12, func(s Step) bool { return s.Timeout == 2*time.Second }},
	}
	for _, tt := range tests {
		if !tt.check(script[tt.index]) {
			t.Errorf("step %d decoded as %+v", tt.index, script[tt.index])
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown action", "- jump", `unknown action "jump"`},
		{"set without value", "- set: {}", "set needs a value"},
		{"zero wait", "- wait: 0s", "positive duration"},
		{"negative steps", "- drag: {dx: 4, steps: -1}", "must not be negative"},
		{"argument on tap", "- tap: 3", "takes no argument"},
		{"two keys", "- {tap: 1, press: 2}", "exactly one action"},
		{"not a list", "tap: 1", "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if kind := errors.KindOf(err); kind != errors.KindScript {
				t.Errorf("kind = %v, want script", kind)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}

func TestStep_String(t *testing.T) {
	on := true
	tests := []struct {
		step Step
		want string
	}{
		{Step{Action: ActionTap}, "tap"},
		{Step{Action: ActionDrag, DX: 6, Steps: 3}, "drag(dx=6, steps=3)"},
		{Step{Action: ActionSet, Value: &on}, "set(true)"},
		{Step{Action: ActionWait, Duration: time.Second}, "wait(1s)"},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
