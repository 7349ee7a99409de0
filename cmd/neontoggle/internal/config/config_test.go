package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/neon/pkg/errors"
	"github.com/go-drift/neon/pkg/scene"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/acme/glow/v2\n\ngo 1.24\n")

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.ModulePath != "example.com/acme/glow/v2" {
		t.Errorf("ModulePath = %q", res.ModulePath)
	}
	if res.AppName != "glow" || res.Prefix != "glow" {
		t.Errorf("AppName = %q, Prefix = %q, want glow", res.AppName, res.Prefix)
	}
	if res.Width != DefaultWidth || res.Height != DefaultHeight || res.Scale != 3 {
		t.Errorf("surface = %dx%d@%g", res.Width, res.Height, res.Scale)
	}
	if res.FPS != DefaultFPS || res.OutputDir != DefaultOutputDir {
		t.Errorf("output = %q at %d fps", res.OutputDir, res.FPS)
	}
	if res.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", res.LogLevel)
	}
	if len(res.Script) != len(DefaultScript()) {
		t.Errorf("expected the default script, got %d steps", len(res.Script))
	}
	if got := res.FramePath(7); got != filepath.Join("frames", "glow_0007.png") {
		t.Errorf("FramePath = %q", got)
	}
}

func TestResolve_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), `
app:
  name: Neon Demo
surface:
  width: 300
  height: 120
  scale: 2
toggle:
  initial: true
output:
  dir: out
  fps: 24
script:
  - tap
  - wait: 500ms
`)

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.AppName != "Neon Demo" || res.Prefix != "neon_demo" {
		t.Errorf("AppName = %q, Prefix = %q", res.AppName, res.Prefix)
	}
	if res.Width != 300 || res.Height != 120 || res.Scale != 2 || !res.Initial {
		t.Errorf("unexpected surface: %+v", res)
	}
	if res.OutputDir != "out" || res.FPS != 24 {
		t.Errorf("output = %q at %d fps", res.OutputDir, res.FPS)
	}
	if len(res.Script) != 2 || res.Script[1].Duration != 500*time.Millisecond {
		t.Errorf("script = %v", res.Script)
	}

	hc := res.HostConfig()
	if hc.Size.Width != 300 || hc.Scale != 2 || !hc.Initial {
		t.Errorf("HostConfig = %+v", hc)
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configs", "alt.yaml")
	writeFile(t, path, "output:\n  prefix: alt\n")

	res, err := Resolve(dir, path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Prefix != "alt" {
		t.Errorf("Prefix = %q, want alt", res.Prefix)
	}
}

func TestResolve_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "output:\n  fps: 24\n  dir: out\n")
	t.Setenv("NEON_FPS", "12")
	t.Setenv("NEON_OUTPUT_DIR", "elsewhere")
	t.Setenv("NEON_SCALE", "1.5")
	t.Setenv("NEON_LOG_LEVEL", "debug")

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.FPS != 12 || res.OutputDir != "elsewhere" || res.Scale != 1.5 {
		t.Errorf("env overrides not applied: %+v", res)
	}
	if res.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", res.LogLevel)
	}
}

func TestResolve_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "NEON_FPS=48\n")
	// Register restoration, then clear so the .env value applies.
	t.Setenv("NEON_FPS", "1")
	os.Unsetenv("NEON_FPS")

	res, err := Resolve(dir, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.FPS != 48 {
		t.Errorf("FPS = %d, want 48 from .env", res.FPS)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "surface: [", "failed to parse"},
		{"negative size", "surface:\n  width: -1\n", "surface must be positive"},
		{"fps too high", "output:\n  fps: 1000\n", "fps must be between"},
		{"bad script", "script:\n  - jump\n", "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, FileName), tt.yaml)

			_, err := Resolve(dir, "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
			if kind := errors.KindOf(err); kind != errors.KindConfig {
				t.Errorf("kind = %v, want config", kind)
			}
		})
	}
}

func TestResolve_BadLogLevel(t *testing.T) {
	t.Setenv("NEON_LOG_LEVEL", "loud")

	_, err := Resolve(t.TempDir(), "")
	if err == nil || !strings.Contains(err.Error(), `invalid log level "loud"`) {
		t.Errorf("err = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultAppName(t *testing.T) {
	tests := []struct {
		modPath string
		dir     string
		want    string
	}{
		{"github.com/go-drift/neon", "/tmp/x", "neon"},
		{"example.com/glow/v3", "/tmp/x", "glow"},
		{"", "/tmp/project", "project"},
	}
	for _, tt := range tests {
		if got := defaultAppName(tt.modPath, tt.dir); got != tt.want {
			t.Errorf("defaultAppName(%q, %q) = %q, want %q", tt.modPath, tt.dir, got, tt.want)
		}
	}
}

func TestDefaultScriptIsValid(t *testing.T) {
	if err := DefaultScript().Validate(); err != nil {
		t.Errorf("default script invalid: %v", err)
	}
	if DefaultScript()[0].Action != scene.ActionTap {
		t.Error("default script should open with a tap")
	}
}
