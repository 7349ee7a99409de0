// Package host mounts a neon toggle on a surface: it owns the canonical
// boolean, paints the background, shows the control at a fixed scale, and
// routes surface pointer events to it.
package host

import (
	"log/slog"
	"time"

	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/core"
	"github.com/go-drift/neon/pkg/errors"
	"github.com/go-drift/neon/pkg/gestures"
	"github.com/go-drift/neon/pkg/graphics"
	"github.com/go-drift/neon/pkg/neon"
)

// DefaultScale is the uniform scale applied to the control.
const DefaultScale = 3.0

// DefaultFrameInterval is the frame period used when none is given.
const DefaultFrameInterval = time.Second / 60

// Config describes a host view.
type Config struct {
	// Size is the surface size in pixels.
	Size graphics.Size
	// Scale is applied uniformly to the control. Zero means DefaultScale.
	Scale float64
	// Initial is the starting value of the binding.
	Initial bool
	// Background fills the surface. Zero means the track color.
	Background graphics.Color
	// Logger receives debug records. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a surface large enough for the scaled control with
// a margin on every side.
func DefaultConfig() Config {
	return Config{
		Size:       graphics.Size{Width: 240, Height: 160},
		Scale:      DefaultScale,
		Background: neon.TrackColor,
	}
}

// PointerEvent is a pointer sample in surface coordinates.
type PointerEvent struct {
	PointerID int64
	X, Y      float64
	Phase     gestures.PointerPhase
}

// View is the host view. It is not safe for concurrent use.
type View struct {
	size       graphics.Size
	scale      float64
	background graphics.Color
	logger     *slog.Logger

	binding *core.Observable[bool]
	toggle  *neon.Toggle

	captured   map[int64]struct{}
	positions  map[int64]graphics.Offset
	needsFrame bool

	// OnCommit, if set, is called after a gesture flips the value.
	OnCommit func(bool)
}

// New creates a host view and mounts the toggle.
func New(cfg Config) *View {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.Background == 0 {
		cfg.Background = neon.TrackColor
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	v := &View{
		size:       cfg.Size,
		scale:      cfg.Scale,
		background: cfg.Background,
		logger:     cfg.Logger,
		binding:    core.NewObservable(cfg.Initial),
		captured:   make(map[int64]struct{}),
		positions:  make(map[int64]graphics.Offset),
		needsFrame: true,
	}
	v.toggle = neon.NewToggle(v.binding)
	v.toggle.SetRepaintCallback(func() { v.needsFrame = true })
	v.toggle.OnCommit = func(on bool) {
		v.logger.Debug("toggle committed", slog.Bool("on", on))
		if v.OnCommit != nil {
			v.OnCommit(on)
		}
	}
	v.toggle.Appear()
	return v
}

// Binding returns the canonical value. Writing it animates the toggle.
func (v *View) Binding() *core.Observable[bool] {
	return v.binding
}

// Toggle returns the mounted control.
func (v *View) Toggle() *neon.Toggle {
	return v.toggle
}

// Size returns the surface size.
func (v *View) Size() graphics.Size {
	return v.size
}

// Scale returns the control's scale factor.
func (v *View) Scale() float64 {
	return v.scale
}

// Background returns the surface fill color.
func (v *View) Background() graphics.Color {
	return v.background
}

// ToggleBounds returns the scaled control frame in surface coordinates.
func (v *View) ToggleBounds() graphics.Rect {
	ts := v.toggle.Size()
	return graphics.RectFromCenter(v.center(), graphics.Size{
		Width:  ts.Width * v.scale,
		Height: ts.Height * v.scale,
	})
}

// ToLocal maps a surface position into toggle coordinates.
func (v *View) ToLocal(p graphics.Offset) graphics.Offset {
	ts := v.toggle.Size()
	c := v.center()
	return graphics.Offset{
		X: (p.X-c.X)/v.scale + ts.Width/2,
		Y: (p.Y-c.Y)/v.scale + ts.Height/2,
	}
}

// ToSurface maps a toggle-local position onto the surface.
func (v *View) ToSurface(p graphics.Offset) graphics.Offset {
	ts := v.toggle.Size()
	c := v.center()
	return graphics.Offset{
		X: (p.X-ts.Width/2)*v.scale + c.X,
		Y: (p.Y-ts.Height/2)*v.scale + c.Y,
	}
}

func (v *View) center() graphics.Offset {
	return graphics.Offset{X: v.size.Width / 2, Y: v.size.Height / 2}
}

// HandlePointer routes a surface pointer event. A down event is hit tested
// against the scaled control; a pointer that hits keeps receiving its
// events until up or cancel, wherever it moves.
func (v *View) HandlePointer(event PointerEvent) {
	defer errors.Recover("host.HandlePointer")

	id := event.PointerID
	local := v.ToLocal(graphics.Offset{X: event.X, Y: event.Y})

	var delta graphics.Offset
	if event.Phase != gestures.PointerPhaseDown {
		if last, ok := v.positions[id]; ok {
			delta = local.Sub(last)
		}
	}

	_, routed := v.captured[id]
	if event.Phase == gestures.PointerPhaseDown {
		routed = v.toggle.HitTest(local)
		if routed {
			v.captured[id] = struct{}{}
			v.positions[id] = local
		}
	} else if routed {
		v.positions[id] = local
	}
	if event.Phase == gestures.PointerPhaseUp || event.Phase == gestures.PointerPhaseCancel {
		delete(v.captured, id)
		delete(v.positions, id)
	}
	if !routed {
		return
	}

	v.toggle.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  local,
		Delta:     delta,
		Phase:     event.Phase,
	})
}

// StepFrame advances animations by one frame and reports whether another
// frame is needed.
func (v *View) StepFrame() bool {
	animation.StepTickers()
	return v.NeedsFrame()
}

// NeedsFrame reports whether the surface changed since the last Paint or
// an animation is running.
func (v *View) NeedsFrame() bool {
	return v.needsFrame || v.toggle.IsAnimating()
}

// Paint fills the surface and draws the scaled, centered control.
func (v *View) Paint(canvas graphics.Canvas) {
	canvas.Clear(v.background)
	ts := v.toggle.Size()
	c := v.center()
	canvas.Save()
	canvas.Translate(c.X, c.Y)
	canvas.Scale(v.scale, v.scale)
	canvas.Translate(-ts.Width/2, -ts.Height/2)
	v.toggle.Paint(canvas)
	canvas.Restore()

	v.toggle.ClearNeedsPaint()
	v.needsFrame = false
}

// Record paints the current frame into a display list.
func (v *View) Record() *graphics.DisplayList {
	var recorder graphics.PictureRecorder
	canvas := recorder.BeginRecording(v.size)
	v.Paint(canvas)
	return recorder.EndRecording()
}

// Settle runs frames until the view no longer needs one, or until timeout
// of animation time has passed. Each frame advances clock by interval,
// steps animations and records the frame; onFrame, if set, receives the
// recording and an error from it stops settling. A non-positive interval
// means DefaultFrameInterval. Settle reports whether the view settled.
func (v *View) Settle(clock *animation.ManualClock, interval, timeout time.Duration, onFrame func(*graphics.DisplayList) error) (bool, error) {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	for elapsed := time.Duration(0); v.NeedsFrame(); elapsed += interval {
		if elapsed >= timeout {
			return false, nil
		}
		clock.Advance(interval)
		v.StepFrame()
		frame := v.Record()
		if onFrame != nil {
			if err := onFrame(frame); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// Dispose unmounts the toggle.
func (v *View) Dispose() {
	v.toggle.Dispose()
}
