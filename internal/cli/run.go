//go:build ebiten

package cli

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"sketchbox/internal/app"
	"sketchbox/internal/config"
	"sketchbox/internal/host"
)

// Run builds the command that opens a sketch in a window.
func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a sketch in a window",
		Long:  `Open a sketch in a window and reload it whenever the config file changes`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, cfg, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			sess := newSession(cfg)
			r, err := host.NewReloader(sess.build)
			if err != nil {
				return err
			}
			defer r.Dispose()
			sess.watch(loader, r, nil)

			game := app.New(r, cfg.Window)
			ebiten.SetWindowTitle("sketchbox - " + cfg.Sketch)
			ebiten.SetTPS(cfg.Window.TPS)
			ebiten.SetWindowSize(game.WindowSize())
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	config.DefineWindowFlags(cmd)
	return cmd
}
