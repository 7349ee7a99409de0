package host

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/neon/pkg/animation"
	"github.com/go-drift/neon/pkg/gestures"
	"github.com/go-drift/neon/pkg/graphics"
	"github.com/go-drift/neon/pkg/neon"
)

func newTestView(t *testing.T, cfg Config) (*View, *animation.ManualClock) {
	t.Helper()
	clock := animation.NewManualClock(time.Unix(0, 0))
	prev := animation.SetClock(clock)
	v := New(cfg)
	t.Cleanup(func() {
		v.Dispose()
		animation.SetClock(prev)
	})
	return v, clock
}

func TestView_Defaults(t *testing.T) {
	v, _ := newTestView(t, Config{Size: graphics.Size{Width: 300, Height: 150}})

	if v.Scale() != 3 {
		t.Errorf("Scale = %v, want 3", v.Scale())
	}
	if v.Background() != neon.TrackColor {
		t.Errorf("Background = %v, want track color", v.Background())
	}
	if v.Binding().Value() {
		t.Error("binding should default to false")
	}
}

func TestView_Mapping(t *testing.T) {
	v, _ := newTestView(t, DefaultConfig())

	bounds := v.ToggleBounds()
	if bounds.Width() != 180 || bounds.Height() != 117 {
		t.Fatalf("bounds = %vx%v, want 180x117", bounds.Width(), bounds.Height())
	}
	if c := bounds.Center(); c.X != 120 || c.Y != 80 {
		t.Errorf("bounds center = %+v, want (120, 80)", c)
	}

	local := v.ToLocal(graphics.Offset{X: bounds.Left, Y: bounds.Top})
	if local.X != 0 || local.Y != 0 {
		t.Errorf("top-left maps to %+v, want origin", local)
	}
	back := v.ToSurface(graphics.Offset{X: 30, Y: 19.5})
	if back.X != 120 || back.Y != 80 {
		t.Errorf("ToSurface(center) = %+v", back)
	}
}

func TestView_PointerDeltasDivideByScale(t *testing.T) {
	v, _ := newTestView(t, DefaultConfig())

	c := v.ToggleBounds().Center()
	v.HandlePointer(PointerEvent{PointerID: 1, X: c.X, Y: c.Y, Phase: gestures.PointerPhaseDown})
	v.HandlePointer(PointerEvent{PointerID: 1, X: c.X + 15, Y: c.Y, Phase: gestures.PointerPhaseMove})

	if got := v.Toggle().Interaction().DragOffset; got != 5 {
		t.Errorf("DragOffset = %v, want 5 (15px / 3)", got)
	}
	v.HandlePointer(PointerEvent{PointerID: 1, X: c.X + 15, Y: c.Y, Phase: gestures.PointerPhaseUp})
	if !v.Binding().Value() {
		t.Error("drag of 5 units should flip")
	}
}

func TestView_MissIsIgnored(t *testing.T) {
	v, _ := newTestView(t, DefaultConfig())

	v.HandlePointer(PointerEvent{PointerID: 1, X: 1, Y: 1, Phase: gestures.PointerPhaseDown})
	v.HandlePointer(PointerEvent{PointerID: 1, X: 120, Y: 80, Phase: gestures.PointerPhaseMove})
	v.HandlePointer(PointerEvent{PointerID: 1, X: 120, Y: 80, Phase: gestures.PointerPhaseUp})

	if v.Binding().Value() {
		t.Error("a pointer that went down outside the control should not reach it")
	}
}

func TestView_CapturedPointerFollowsOutside(t *testing.T) {
	v, _ := newTestView(t, DefaultConfig())

	c := v.ToggleBounds().Center()
	v.HandlePointer(PointerEvent{PointerID: 7, X: c.X, Y: c.Y, Phase: gestures.PointerPhaseDown})
	v.HandlePointer(PointerEvent{PointerID: 7, X: 239, Y: 0, Phase: gestures.PointerPhaseMove})
	if !v.Toggle().Interaction().Dragging() {
		t.Fatal("captured pointer should keep driving the drag outside the frame")
	}
	v.HandlePointer(PointerEvent{PointerID: 7, X: 239, Y: 0, Phase: gestures.PointerPhaseUp})
	if !v.Binding().Value() {
		t.Error("long drag should flip")
	}
}

func TestView_PaintSequence(t *testing.T) {
	v, _ := newTestView(t, DefaultConfig())

	if !v.NeedsFrame() {
		t.Error("a new view needs its first frame")
	}
	dl := v.Record()
	if dl.Size() != v.Size() {
		t.Errorf("display list size = %v, want %v", dl.Size(), v.Size())
	}
	if v.NeedsFrame() {
		t.Error("painting should clear the frame request")
	}

	var ops opLog
	dl.Paint(&ops)
	want := []string{"clear", "save", "translate", "scale", "translate"}
	for i, name := range want {
		if i >= len(ops.names) || ops.names[i] != name {
			t.Fatalf("ops = %v, want prefix %v", ops.names, want)
		}
	}
	if ops.names[len(ops.names)-1] != "restore" {
		t.Error("paint should end by restoring the host transform")
	}
	if ops.scale != 3 {
		t.Errorf("scale = %v, want 3", ops.scale)
	}
}

func TestView_StepFrameSettles(t *testing.T) {
	v, clock := newTestView(t, DefaultConfig())
	v.Record()

	v.Binding().Set(true)
	if !v.NeedsFrame() {
		t.Fatal("binding change should request a frame")
	}
	var frames int
	settled, err := v.Settle(clock, time.Second/60, 2*time.Second, func(*graphics.DisplayList) error {
		frames++
		return nil
	})
	if err != nil || !settled {
		t.Fatalf("Settle = %v, %v", settled, err)
	}
	if frames == 0 {
		t.Error("Settle should record frames while animating")
	}
	if v.StepFrame() {
		t.Error("settled view should not need another frame")
	}
}

func TestView_SettleZeroIntervalUsesDefault(t *testing.T) {
	v, clock := newTestView(t, DefaultConfig())
	v.Binding().Set(true)

	start := animation.Now()
	settled, err := v.Settle(clock, 0, 2*time.Second, nil)
	if err != nil || !settled {
		t.Fatalf("Settle = %v, %v", settled, err)
	}
	if spent := animation.Now().Sub(start); spent <= 0 || spent%DefaultFrameInterval != 0 {
		t.Errorf("clock advanced %v, want a multiple of %v", spent, DefaultFrameInterval)
	}
}

func TestView_SettleTimeout(t *testing.T) {
	v, clock := newTestView(t, DefaultConfig())
	v.Binding().Set(true)

	settled, err := v.Settle(clock, time.Second/60, 50*time.Millisecond, nil)
	if err != nil || settled {
		t.Errorf("Settle = %v, %v; want unsettled without error", settled, err)
	}
}

func TestView_SettleStopsOnFrameError(t *testing.T) {
	v, clock := newTestView(t, DefaultConfig())
	v.Binding().Set(true)

	boom := stderrors.New("write failed")
	var calls int
	_, err := v.Settle(clock, time.Second/60, 2*time.Second, func(*graphics.DisplayList) error {
		calls++
		return boom
	})
	if err != boom || calls != 1 {
		t.Errorf("err = %v after %d calls, want %v after 1", err, calls, boom)
	}
}

func TestView_LogsCommits(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v, _ := newTestView(t, cfg)

	var committed []bool
	v.OnCommit = func(on bool) { committed = append(committed, on) }

	c := v.ToggleBounds().Center()
	v.HandlePointer(PointerEvent{PointerID: 1, X: c.X, Y: c.Y, Phase: gestures.PointerPhaseDown})
	v.HandlePointer(PointerEvent{PointerID: 1, X: c.X, Y: c.Y, Phase: gestures.PointerPhaseUp})

	if len(committed) != 1 || !committed[0] {
		t.Errorf("committed = %v, want [true]", committed)
	}
	if !strings.Contains(buf.String(), "toggle committed") || !strings.Contains(buf.String(), "on=true") {
		t.Errorf("expected commit log, got %q", buf.String())
	}
}

// opLog is a Canvas that records op names.
type opLog struct {
	names []string
	scale float64
}

func (c *opLog) Save() {
	c.names = append(c.names, "save")
}

func (c *opLog) Restore() {
	c.names = append(c.names, "restore")
}

func (c *opLog) Translate(dx, dy float64) {
	c.names = append(c.names, "translate")
}

func (c *opLog) Scale(sx, sy float64) {
	if c.scale == 0 {
		c.scale = sx
	}
	c.names = append(c.names, "scale")
}

func (c *opLog) ClipRRect(graphics.RRect) {
	c.names = append(c.names, "clip")
}

func (c *opLog) Clear(graphics.Color) {
	c.names = append(c.names, "clear")
}

func (c *opLog) DrawRect(graphics.Rect, graphics.Paint) {
	c.names = append(c.names, "rect")
}

func (c *opLog) DrawRRect(graphics.RRect, graphics.Paint) {
	c.names = append(c.names, "rrect")
}

func (c *opLog) DrawCircle(graphics.Offset, float64, graphics.Paint) {
	c.names = append(c.names, "circle")
}
func (c *opLog) DrawPath(*graphics.Path, graphics.Paint) {
	c.names = append(c.names, "path")
}

func (c *opLog) Size() graphics.Size {
	return graphics.Size{}
}

