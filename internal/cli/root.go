package cli

import (
	"github.com/spf13/cobra"

	"sketchbox/internal/config"
	"sketchbox/internal/logging"
)

// Root builds the sketchbox command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "sketchbox",
		Short:         "Generative canvas sketches",
		Long:          `Render and view seeded generative sketches on a 640x640 canvas`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.DefineFlags(root)
	root.AddCommand(Render(), Run(), List(), Describe(), Version(), DefaultConfig())
	return root
}

// setup resolves configuration for cmd and configures logging. The returned
// func releases the log file.
func setup(cmd *cobra.Command) (*config.Loader, config.Config, func(), error) {
	configFile, _ := cmd.Flags().GetString("config")
	loader, err := config.NewLoader(cmd, configFile)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	return loader, cfg, closeLog, nil
}
