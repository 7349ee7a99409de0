package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/neon/pkg/errors"
	"github.com/go-drift/neon/pkg/raster"
	"github.com/go-drift/neon/pkg/scene"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		outDir     string
		fps        int
		scriptPath string
		initial    bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Play a scene script and write PNG frames",
		Long: `Render plays the configured scene script (or --script) against the
toggle on a fixed frame clock and writes one PNG per frame.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			if fps > 0 {
				cfg.FPS = fps
			}
			if cmd.Flags().Changed("initial") {
				cfg.Initial = initial
			}
			script := cfg.Script
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return errors.New("render", errors.KindIO, err)
				}
				if script, err = scene.Parse(data); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return errors.New("render", errors.KindIO, err)
			}

			hostCfg := cfg.HostConfig()
			hostCfg.Logger = a.logger
			frames, err := scene.Play(cmd.Context(), hostCfg, cfg.FPS, script, func(f scene.Frame) error {
				path := cfg.FramePath(f.Index)
				if err := raster.WritePNG(path, raster.Render(f.List)); err != nil {
					return err
				}
				a.logger.Debug("frame written", slog.Int("index", f.Index), slog.String("path", path))
				return nil
			})
			if err != nil {
				return err
			}
			a.logger.Info("render complete",
				slog.Int("frames", frames),
				slog.String("dir", cfg.OutputDir),
				slog.Int("fps", cfg.FPS),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides output.dir)")
	cmd.Flags().IntVar(&fps, "fps", 0, "frames per second (overrides output.fps)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "YAML scene script to play instead of the configured one")
	cmd.Flags().BoolVar(&initial, "initial", false, "initial toggle value")
	return cmd
}
