package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/neon/pkg/preview"
)

func (a *app) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Interact with the toggle in the terminal",
		Long: `Preview shows the toggle in the terminal. Click or drag it with the
mouse, press space to tap it, e to flip the value from outside, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hostCfg := a.cfg.HostConfig()
			hostCfg.Logger = a.logger
			return preview.Run(cmd.Context(), preview.Options{Host: hostCfg, FPS: a.cfg.FPS})
		},
	}
}
