package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"sketchbox/internal/config"
	"sketchbox/internal/host"
	"sketchbox/internal/render"
)

// Render builds the command that exports frames of a sketch as PNG files.
func Render() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a sketch to PNG frames",
		Long:  `Mount a sketch off-screen and write its frames as numbered PNG files`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, cfg, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return renderFrames(ctx, loader, cfg, watch)
		},
	}
	config.DefineRenderFlags(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render whenever the config file changes")
	return cmd
}

func renderFrames(ctx context.Context, loader *config.Loader, cfg config.Config, watch bool) error {
	sess := newSession(cfg)
	r, err := host.NewReloader(sess.build)
	if err != nil {
		return err
	}
	defer r.Dispose()

	if err := export(ctx, r.Current(), sess.config()); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	wake := make(chan struct{}, 1)
	if !sess.watch(loader, r, func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}) {
		log.Warn().Msg("no config file to watch")
		return nil
	}
	log.Info().Str("file", loader.File()).Msg("watching config")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
			applied, err := r.Poll()
			if err != nil || !applied {
				continue
			}
			if err := export(ctx, r.Current(), sess.config()); err != nil {
				log.Error().Err(err).Msg("render failed")
			}
		}
	}
}

func export(ctx context.Context, inst *host.Instance, cfg config.Config) error {
	paths, err := render.Sequence(ctx, inst, render.Options{
		Dir:    cfg.Render.Out,
		Frames: cfg.Render.Frames,
		Scale:  cfg.Render.Scale,
	})
	if err != nil {
		return err
	}
	log.Info().Str("sketch", cfg.Sketch).Int("frames", len(paths)).Str("dir", cfg.Render.Out).Msg("render complete")
	return nil
}
