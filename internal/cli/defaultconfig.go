package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sketchbox/internal/config"
)

var supportedExtensions = []string{"json", "toml", "yaml", "yml"}

// DefaultConfig builds the command that writes the default config file.
func DefaultConfig() *cobra.Command {
	var defaultConfigFile string
	cmd := &cobra.Command{
		Use:   "defaultconfig",
		Short: "Generate a configuration file with defaults",
		Long:  `Generate a sketchbox configuration file with defaults, format chosen by extension`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDefaultConfig(defaultConfigFile)
		},
	}
	cmd.Flags().StringVarP(&defaultConfigFile, "output", "o", "sketchbox.yaml", "path to default config file to generate")
	return cmd
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("target file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	loader, err := config.NewLoader(nil, "")
	if err != nil {
		return err
	}
	conf, err := loader.Load()
	if err != nil {
		return err
	}
	b, err := marshalConfig(conf, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func marshalConfig(conf config.Config, ext string) ([]byte, error) {
	switch ext {
	case "json":
		return json.MarshalIndent(conf, "", "  ")
	case "toml":
		return toml.Marshal(conf)
	case "yaml", "yml":
		return yaml.Marshal(conf)
	}
	return nil, errors.New("output config file must have one of supported extensions: " + strings.Join(supportedExtensions, ", "))
}
