// Package scene plays scripted interactions against a host view and
// produces one display list per frame at a fixed frame rate.
//
// Scripts are YAML lists. Steps without parameters are bare scalars; steps
// with parameters are single-key mappings, and a scalar value stands for
// the step's main parameter:
//
//	- tap
//	- drag: {dx: 16, steps: 8}
//	- press
//	- move: 3
//	- release
//	- set: true
//	- wait: 300ms
//	- settle: {timeout: 2s}
package scene

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/neon/pkg/errors"
)

// DefaultDragSteps is the number of move events a drag step sends when the
// script does not say.
const DefaultDragSteps = 8

// DefaultSettleTimeout bounds a settle step without a timeout.
const DefaultSettleTimeout = 2 * time.Second

// Action names a script step.
type Action string

const (
	ActionTap     Action = "tap"
	ActionDrag    Action = "drag"
	ActionPress   Action = "press"
	ActionMove    Action = "move"
	ActionRelease Action = "release"
	ActionCancel  Action = "cancel"
	ActionSet     Action = "set"
	ActionWait    Action = "wait"
	ActionSettle  Action = "settle"
)

// Step is one scripted action. Only the fields its action uses are set.
type Step struct {
	Action Action
	// DX is the horizontal distance in toggle units for drag and move.
	DX float64
	// Steps is the number of move events for drag.
	Steps int
	// Value is the binding value written by set.
	Value *bool
	// Duration is the animation time a wait step lets pass.
	Duration time.Duration
	// Timeout bounds a settle step.
	Timeout time.Duration
}

type stepParams struct {
	DX       float64       `yaml:"dx"`
	Steps    int           `yaml:"steps"`
	Value    *bool         `yaml:"value"`
	Duration time.Duration `yaml:"duration"`
	Timeout  time.Duration `yaml:"timeout"`
}

// UnmarshalYAML decodes the bare and mapping forms of a step.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Action = Action(node.Value)
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: step must have exactly one action", node.Line)
		}
	default:
		return fmt.Errorf("line %d: step must be a name or a single-key mapping", node.Line)
	}

	s.Action = Action(node.Content[0].Value)
	arg := node.Content[1]
	var params stepParams
	if arg.Kind == yaml.ScalarNode {
		var target any
		switch s.Action {
		case ActionDrag, ActionMove:
			target = &params.DX
		case ActionSet:
			target = &params.Value
		case ActionWait:
			target = &params.Duration
		case ActionSettle:
			target = &params.Timeout
		default:
			return fmt.Errorf("line %d: %s takes no argument", arg.Line, s.Action)
		}
		if err := arg.Decode(target); err != nil {
			return err
		}
	} else if err := arg.Decode(&params); err != nil {
		return err
	}

	s.DX = params.DX
	s.Steps = params.Steps
	s.Value = params.Value
	s.Duration = params.Duration
	s.Timeout = params.Timeout
	return nil
}

// Validate reports the first problem with the step.
func (s Step) Validate() error {
	switch s.Action {
	case ActionTap, ActionPress, ActionRelease, ActionCancel, ActionMove:
	case ActionDrag:
		if s.Steps < 0 {
			return fmt.Errorf("drag steps must not be negative, got %d", s.Steps)
		}
	case ActionSet:
		if s.Value == nil {
			return fmt.Errorf("set needs a value")
		}
	case ActionWait:
		if s.Duration <= 0 {
			return fmt.Errorf("wait needs a positive duration")
		}
	case ActionSettle:
		if s.Timeout < 0 {
			return fmt.Errorf("settle timeout must not be negative")
		}
	case "":
		return fmt.Errorf("missing action")
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

func (s Step) String() string {
	switch s.Action {
	case ActionDrag:
		return fmt.Sprintf("drag(dx=%g, steps=%d)", s.DX, s.Steps)
	case ActionMove:
		return fmt.Sprintf("move(dx=%g)", s.DX)
	case ActionSet:
		if s.Value != nil {
			return fmt.Sprintf("set(%t)", *s.Value)
		}
	case ActionWait:
		return fmt.Sprintf("wait(%s)", s.Duration)
	case ActionSettle:
		return fmt.Sprintf("settle(%s)", s.Timeout)
	}
	return string(s.Action)
}

// Script is an ordered list of steps.
type Script []Step

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.New("scene.Parse", errors.KindScript, err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks every step and names the first invalid one.
func (s Script) Validate() error {
	for i, step := range s {
		if err := step.Validate(); err != nil {
			return errors.Errorf("scene.Validate", errors.KindScript, "step %d: %w", i+1, err)
		}
	}
	return nil
}
