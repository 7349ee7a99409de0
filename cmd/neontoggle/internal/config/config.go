// Package config loads neon.yaml, .env files and NEON_* environment
// overrides, and resolves them into the settings the CLI runs with.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	neonerrors "github.com/go-drift/neon/pkg/errors"
	"github.com/go-drift/neon/pkg/graphics"
	"github.com/go-drift/neon/pkg/host"
	"github.com/go-drift/neon/pkg/scene"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "neon.yaml"

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultWidth     = 240
	DefaultHeight    = 160
	DefaultFPS       = 30
	DefaultOutputDir = "frames"
	DefaultLogLevel  = "info"
	maxFPS           = 240
)

// Config represents the optional neon.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Surface SurfaceConfig `yaml:"surface"`
	Toggle  ToggleConfig  `yaml:"toggle"`
	Output  OutputConfig  `yaml:"output"`
	Script  scene.Script  `yaml:"script,omitempty"`
}

// AppConfig contains project metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// SurfaceConfig sizes the host surface.
type SurfaceConfig struct {
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// ToggleConfig sets the initial binding value.
type ToggleConfig struct {
	Initial bool `yaml:"initial,omitempty"`
}

// OutputConfig controls rendered frames.
type OutputConfig struct {
	Dir    string `yaml:"dir,omitempty"`
	FPS    int    `yaml:"fps,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
}

// Env holds the NEON_* environment overrides.
type Env struct {
	OutputDir string  `envconfig:"OUTPUT_DIR"`
	FPS       int     `envconfig:"FPS"`
	Scale     float64 `envconfig:"SCALE"`
	LogLevel  string  `envconfig:"LOG_LEVEL"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Width      int
	Height     int
	Scale      float64
	Initial    bool
	OutputDir  string
	FPS        int
	Prefix     string
	LogLevel   slog.Level
	Script     scene.Script
}

// DefaultScript is played when the configuration has no script.
func DefaultScript() scene.Script {
	off := false
	return scene.Script{
		{Action: scene.ActionTap},
		{Action: scene.ActionSettle},
		{Action: scene.ActionWait, Duration: 200 * time.Millisecond},
		{Action: scene.ActionDrag, DX: -12, Steps: scene.DefaultDragSteps},
		{Action: scene.ActionSettle},
		{Action: scene.ActionSet, Value: &off},
		{Action: scene.ActionSettle},
	}
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty configuration.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, neonerrors.Errorf("config.Load", neonerrors.KindConfig, "failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, neonerrors.Errorf("config.Load", neonerrors.KindConfig, "failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// LoadEnv loads dir/.env without overriding variables already set, then
// reads the NEON_* overrides.
func LoadEnv(dir string) (*Env, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, neonerrors.Errorf("config.LoadEnv", neonerrors.KindConfig, "failed to load .env: %w", err)
	}
	var env Env
	if err := envconfig.Process("neon", &env); err != nil {
		return nil, neonerrors.New("config.LoadEnv", neonerrors.KindConfig, err)
	}
	return &env, nil
}

// Resolve loads the configuration for dir and resolves defaults. path names
// the configuration file; empty means dir/neon.yaml. Environment overrides
// win over the file.
func Resolve(dir, path string) (*Resolved, error) {
	if path == "" {
		path = filepath.Join(dir, FileName)
	}
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	env, err := LoadEnv(dir)
	if err != nil {
		return nil, err
	}

	root, modPath := "", ""
	if r, err := FindModuleRoot(dir); err == nil {
		root = r
		modPath, err = modulePath(r)
		if err != nil {
			return nil, err
		}
	}

	res := &Resolved{
		Root:       root,
		ModulePath: modPath,
		AppName:    strings.TrimSpace(cfg.App.Name),
		Width:      cfg.Surface.Width,
		Height:     cfg.Surface.Height,
		Scale:      cfg.Surface.Scale,
		Initial:    cfg.Toggle.Initial,
		OutputDir:  strings.TrimSpace(cfg.Output.Dir),
		FPS:        cfg.Output.FPS,
		Prefix:     strings.TrimSpace(cfg.Output.Prefix),
		Script:     cfg.Script,
	}
	if res.AppName == "" {
		res.AppName = defaultAppName(modPath, dir)
	}
	if res.Prefix == "" {
		res.Prefix = sanitizePrefix(res.AppName)
	}
	if res.Width == 0 {
		res.Width = DefaultWidth
	}
	if res.Height == 0 {
		res.Height = DefaultHeight
	}

	if env.Scale != 0 {
		res.Scale = env.Scale
	}
	if res.Scale == 0 {
		res.Scale = host.DefaultScale
	}
	if env.FPS != 0 {
		res.FPS = env.FPS
	}
	if res.FPS == 0 {
		res.FPS = DefaultFPS
	}
	if env.OutputDir != "" {
		res.OutputDir = env.OutputDir
	}
	if res.OutputDir == "" {
		res.OutputDir = DefaultOutputDir
	}
	level := DefaultLogLevel
	if env.LogLevel != "" {
		level = env.LogLevel
	}
	if res.LogLevel, err = ParseLevel(level); err != nil {
		return nil, err
	}
	if len(res.Script) == 0 {
		res.Script = DefaultScript()
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// Validate checks the resolved values.
func (r *Resolved) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return neonerrors.Errorf("config.Validate", neonerrors.KindConfig, "surface must be positive, got %dx%d", r.Width, r.Height)
	case r.Scale <= 0:
		return neonerrors.Errorf("config.Validate", neonerrors.KindConfig, "scale must be positive, got %g", r.Scale)
	case r.FPS <= 0 || r.FPS > maxFPS:
		return neonerrors.Errorf("config.Validate", neonerrors.KindConfig, "fps must be between 1 and %d, got %d", maxFPS, r.FPS)
	}
	if err := r.Script.Validate(); err != nil {
		return neonerrors.New("config.Validate", neonerrors.KindConfig, err)
	}
	return nil
}

// HostConfig returns the host view settings.
func (r *Resolved) HostConfig() host.Config {
	cfg := host.DefaultConfig()
	cfg.Size = graphics.Size{Width: float64(r.Width), Height: float64(r.Height)}
	cfg.Scale = r.Scale
	cfg.Initial = r.Initial
	return cfg
}

// FramePath returns the file a rendered frame is written to.
func (r *Resolved) FramePath(index int) string {
	return filepath.Join(r.OutputDir, fmt.Sprintf("%s_%04d.png", r.Prefix, index))
}

// ParseLevel parses a slog level name such as "debug" or "warn".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, neonerrors.Errorf("config.ParseLevel", neonerrors.KindConfig, "invalid log level %q", s)
	}
	return level, nil
}

// FindModuleRoot walks up from dir to the nearest directory with a go.mod.
func FindModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", neonerrors.Errorf("config.modulePath", neonerrors.KindConfig, "failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", neonerrors.Errorf("config.modulePath", neonerrors.KindConfig, "could not determine module path from go.mod")
	}
	return path, nil
}

// defaultAppName is the last module path element without its major
// version suffix, or the directory name outside a module.
func defaultAppName(modPath, dir string) string {
	base := ""
	if abs, err := filepath.Abs(dir); err == nil {
		base = filepath.Base(abs)
	}
	if modPath != "" {
		if prefix, _, ok := module.SplitPathVersion(modPath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "neon"
	}
	return base
}

// sanitizePrefix keeps lowercase letters, digits, hyphens and
// underscores.
func sanitizePrefix(name string) string {
	var out []rune
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ' || r == '.':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "neon"
	}
	return string(out)
}
