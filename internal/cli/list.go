package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sketchbox/internal/canvas"
	"sketchbox/internal/core"
	"sketchbox/internal/host"
)

// List builds the command that prints registered sketch names.
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered sketches",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list(cmd.OutOrStdout())
		},
	}
}

func list(w io.Writer) {
	for _, name := range core.Names() {
		fmt.Fprintln(w, name)
	}
}

// Describe builds the command that prints a sketch's parameter snapshot.
func Describe() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <sketch>",
		Short: "Print the parameters of a sketch",
		Long:  `Mount the sketch off-screen and print its parameter snapshot`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := cmd.Flags().GetStringToString("param")
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), args[0], params)
		},
	}
}

func describe(w io.Writer, name string, params map[string]string) error {
	s, err := host.Build(name, params)
	if err != nil {
		return err
	}
	inst, err := host.Mount(s, canvas.NewRaster(), mountOf(params))
	if err != nil {
		return err
	}
	defer inst.Remove()

	provider, ok := s.(core.ParameterProvider)
	if !ok {
		fmt.Fprintf(w, "%s (%s): no parameters\n", name, inst.State())
		return nil
	}
	fmt.Fprintf(w, "%s (%s)\n", name, inst.State())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, group := range provider.Parameters().Groups {
		fmt.Fprintf(tw, "%s\n", group.Name)
		for _, p := range group.Params {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Key, p.Label, p.Value)
		}
	}
	return tw.Flush()
}

func mountOf(params map[string]string) string {
	if m := params["mount"]; m != "" {
		return m
	}
	return core.MountID
}
