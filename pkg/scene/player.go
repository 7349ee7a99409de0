package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/errors"
	"github.com/go-drift/neon/pkg/gestures"
	"github.com/go-drift/neon/pkg/graphics"
	"github.com/go-drift/neon/pkg/host"
)

// scriptPointer is the pointer id scripted gestures use.
const scriptPointer int64 = 1

// Frame is one rendered frame of a playback.
type Frame struct {
	// Index counts frames from zero.
	Index int
	// Time is the animation time elapsed since playback started.
	Time time.Duration
	// List holds the frame's drawing operations.
	List *graphics.DisplayList
}

// Player drives a host view through a script on a manual clock.
type Player struct {
	view     *host.View
	clock    *animation.ManualClock
	interval time.Duration
	emit     func(Frame) error

	elapsed time.Duration
	frames  int
	pressed bool
	pos     graphics.Offset
}

// NewPlayer creates a player stepping clock by 1/fps per frame. The clock
// must be the one installed with animation.SetClock. emit receives every
// frame; an error from it stops playback.
func NewPlayer(view *host.View, clock *animation.ManualClock, fps int, emit func(Frame) error) *Player {
	if fps <= 0 {
		fps = 60
	}
	return &Player{
		view:     view,
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		emit:     emit,
	}
}

// Frames returns the number of frames emitted so far.
func (p *Player) Frames() int {
	return p.frames
}

// Elapsed returns the animation time played so far.
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// Run plays every step in order. It stops at the first failing step or
// when ctx is done.
func (p *Player) Run(ctx context.Context, script Script) (err error) {
	defer errors.RecoverWithCallback("scene.Run", func(r any) {
		err = errors.Errorf("scene.Run", errors.KindPanic, "frame %d: %v", p.frames, r)
	})
	if err := script.Validate(); err != nil {
		return err
	}
	for i, step := range script {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.step(ctx, step); err != nil {
			if errors.KindOf(err) != errors.KindUnknown || ctx.Err() != nil {
				return err
			}
			return errors.Errorf("scene.Run", errors.KindScript, "step %d (%s): %w", i+1, step, err)
		}
	}
	return nil
}

func (p *Player) step(ctx context.Context, s Step) error {
	switch s.Action {
	case ActionTap:
		if p.pressed {
			return fmt.Errorf("tap while a press is active")
		}
		p.down()
		if err := p.frame(); err != nil {
			return err
		}
		p.send(gestures.PointerPhaseUp)
		return p.frame()

	case ActionDrag:
		if p.pressed {
			return fmt.Errorf("drag while a press is active")
		}
		steps := s.Steps
		if steps == 0 {
			steps = DefaultDragSteps
		}
		p.down()
		if err := p.frame(); err != nil {
			return err
		}
		dx := s.DX * p.view.Scale() / float64(steps)
		for i := 0; i < steps; i++ {
			p.pos.X += dx
			p.send(gestures.PointerPhaseMove)
			if err := p.frame(); err != nil {
				return err
			}
		}
		p.send(gestures.PointerPhaseUp)
		return p.frame()

	case ActionPress:
		if p.pressed {
			return fmt.Errorf("press while a press is active")
		}
		p.down()
		return p.frame()

	case ActionMove:
		if !p.pressed {
			return fmt.Errorf("move without a press")
		}
		p.pos.X += s.DX * p.view.Scale()
		p.send(gestures.PointerPhaseMove)
		return p.frame()

	case ActionRelease, ActionCancel:
		if !p.pressed {
			return fmt.Errorf("%s without a press", s.Action)
		}
		phase := gestures.PointerPhaseUp
		if s.Action == ActionCancel {
			phase = gestures.PointerPhaseCancel
		}
		p.send(phase)
		return p.frame()

	case ActionSet:
		p.view.Binding().Set(*s.Value)
		return p.frame()

	case ActionWait:
		for end := p.elapsed + s.Duration; p.elapsed < end; {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.frame(); err != nil {
				return err
			}
		}
		return nil

	case ActionSettle:
		timeout := s.Timeout
		if timeout == 0 {
			timeout = DefaultSettleTimeout
		}
		settled, err := p.view.Settle(p.clock, p.interval, timeout, func(list *graphics.DisplayList) error {
			if err := p.emitFrame(list); err != nil {
				return err
			}
			return ctx.Err()
		})
		if err != nil {
			return err
		}
		if !settled {
			return fmt.Errorf("did not settle within %s", timeout)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", s.Action)
}

func (p *Player) down() {
	p.pos = p.view.ToggleBounds().Center()
	p.send(gestures.PointerPhaseDown)
}

func (p *Player) send(phase gestures.PointerPhase) {
	p.view.HandlePointer(host.PointerEvent{
		PointerID: scriptPointer,
		X:         p.pos.X,
		Y:         p.pos.Y,
		Phase:     phase,
	})
	switch phase {
	case gestures.PointerPhaseDown:
		p.pressed = true
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		p.pressed = false
	}
}

// frame advances the clock, steps animations, records and emits.
func (p *Player) frame() error {
	p.clock.Advance(p.interval)
	p.view.StepFrame()
	return p.emitFrame(p.view.Record())
}

// emitFrame accounts for one frame interval and emits list.
func (p *Player) emitFrame(list *graphics.DisplayList) error {
	p.elapsed += p.interval
	f := Frame{Index: p.frames, Time: p.elapsed, List: list}
	p.frames++
	if p.emit == nil {
		return nil
	}
	if err := p.emit(f); err != nil {
		return errors.New("scene.emit", errors.KindIO, err)
	}
	return nil
}

// Play mounts a host view for cfg on a fresh manual clock, runs script and
// restores the previous clock. It returns the number of frames emitted.
func Play(ctx context.Context, cfg host.Config, fps int, script Script, emit func(Frame) error) (int, error) {
	clock := animation.NewManualClock(time.Unix(0, 0))
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	view := host.New(cfg)
	defer view.Dispose()

	player := NewPlayer(view, clock, fps, emit)
	err := player.Run(ctx, script)
	return player.Frames(), err
}
