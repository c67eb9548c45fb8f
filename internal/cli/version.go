package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"sketchbox/internal/build"
	"sketchbox/internal/palette"
)

// Version builds the command that prints the build version.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "sketchbox version information",
		Long:  `Print the version of sketchbox and of its palette presets`,
		Run: func(cmd *cobra.Command, args []string) {
			version(cmd.OutOrStdout())
		},
	}
}

func version(w io.Writer) {
	fmt.Fprintf(w, "sketchbox v%s (Go version: %s)\n", build.Version, runtime.Version())
	for _, name := range palette.Names() {
		fmt.Fprintf(w, "  palette %s v%s\n", name, build.PaletteVersions[name])
	}
}
