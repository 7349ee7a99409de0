package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNeonErrorString(t *testing.T) {
	err := New("scene.Play", KindScript, fmt.Errorf("step 3: unknown action %q", "jump"))
	got := err.Error()
	want := `scene.Play [script]: step 3: unknown action "jump"`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNeonErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	wrapped := fmt.Errorf("writing frame: %w", New("raster.WritePNG", KindIO, cause))

	if !stderrors.Is(wrapped, cause) {
		t.Error("errors.Is should find the cause through NeonError")
	}
	if got := KindOf(wrapped); got != KindIO {
		t.Errorf("KindOf = %v, want io", got)
	}
	if got := KindOf(cause); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want unknown", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindIO, "io"},
		{KindScript, "script"},
		{KindPanic, "panic"},
		{ErrorKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "host.HandlePointer"
	if got, want := err.Error(), "panic in host.HandlePointer: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *NeonError
	prev := SetHandler(&testHandler{onError: func(err *NeonError) { captured = err }})
	defer SetHandler(prev)

	Report(Errorf("config.Load", KindConfig, "surface.scale must be positive, got %v", -1))

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "config.Load" {
		t.Errorf("Op = %q, want %q", captured.Op, "config.Load")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if !strings.Contains(captured.StackTrace, "TestReport") {
		t.Errorf("expected the caller's stack, got:\n%s", captured.StackTrace)
	}
	Report(nil)
}

func TestAsNeonError(t *testing.T) {
	inner := New("scene.emit", KindIO, stderrors.New("disk full"))
	ne, ok := AsNeonError(fmt.Errorf("render: %w", inner))
	if !ok || ne != inner {
		t.Errorf("AsNeonError = %v, %v", ne, ok)
	}
	if _, ok := AsNeonError(stderrors.New("plain")); ok {
		t.Error("plain error should not match")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	prev := SetHandler(&testHandler{})
	defer SetHandler(prev)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(7)
	}()
	if got != 7 {
		t.Errorf("callback value = %v, want 7", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{
		Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		Verbose: true,
	}

	h.HandleError(&NeonError{Op: "raster.Encode", Kind: KindRender, Err: stderrors.New("bad bounds"), StackTrace: "frame"})
	h.HandlePanic(&PanicError{Op: "host.HandlePointer", Value: "boom"})
	h.HandleError(nil)

	out := buf.String()
	for _, want := range []string{"op=raster.Encode", "kind=render", `err="bad bounds"`, "stack=frame", "value=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testHandler struct {
	onError func(*NeonError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *NeonError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
