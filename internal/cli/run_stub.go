//go:build !ebiten

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"sketchbox/internal/config"
)

// Run builds the window command for builds without the ebiten tag; it
// always fails.
func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a sketch in a window (requires the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the window requires the ebiten build tag: re-run with `go run -tags ebiten ./cmd/sketchbox run`")
		},
	}
	config.DefineWindowFlags(cmd)
	return cmd
}
