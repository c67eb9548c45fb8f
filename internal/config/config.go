// Package config loads sketchbox settings from flags and an optional config
// file, and watches that file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("invalid config")

// Config is the resolved configuration of a run.
type Config struct {
	// Sketch is the registered name to mount.
	Sketch string `mapstructure:"sketch" json:"sketch" toml:"sketch" yaml:"sketch"`
	// Mount is the element id the canvas is parented to.
	Mount string `mapstructure:"mount" json:"mount" toml:"mount" yaml:"mount"`
	// Params are handed to the sketch factory as-is.
	Params map[string]string `mapstructure:"params" json:"params" toml:"params" yaml:"params"`

	Log    Log    `mapstructure:"log" json:"log" toml:"log" yaml:"log"`
	Render Render `mapstructure:"render" json:"render" toml:"render" yaml:"render"`
	Window Window `mapstructure:"window" json:"window" toml:"window" yaml:"window"`
}

// Log configures the global logger.
type Log struct {
	Level string `mapstructure:"level" json:"level" toml:"level" yaml:"level"`
	File  string `mapstructure:"file" json:"file" toml:"file" yaml:"file"`
}

// Render configures headless PNG export.
type Render struct {
	Out    string  `mapstructure:"out" json:"out" toml:"out" yaml:"out"`
	Frames int     `mapstructure:"frames" json:"frames" toml:"frames" yaml:"frames"`
	Scale  float64 `mapstructure:"scale" json:"scale" toml:"scale" yaml:"scale"`
}

// Window configures the interactive viewer.
type Window struct {
	Scale int  `mapstructure:"scale" json:"scale" toml:"scale" yaml:"scale"`
	TPS   int  `mapstructure:"tps" json:"tps" toml:"tps" yaml:"tps"`
	FPS   int  `mapstructure:"fps" json:"fps" toml:"fps" yaml:"fps"`
	HUD   bool `mapstructure:"hud" json:"hud" toml:"hud" yaml:"hud"`
}

var defaults = map[string]any{
	"sketch":        "glyphs",
	"mount":         "app",
	"log.level":     "info",
	"log.file":      "",
	"render.out":    "out",
	"render.frames": 1,
	"render.scale":  1.0,
	"window.scale":  1,
	"window.tps":    60,
	"window.fps":    60,
	"window.hud":    false,
}

var bindPFlags = []string{
	"sketch", "mount", "log.level", "log.file", "render.out", "render.frames", "render.scale",
	"window.scale", "window.tps", "window.fps", "window.hud",
}

// DefineFlags registers the flags Loader binds. Commands only get the flags
// relevant to them; Loader skips the ones that are absent.
func DefineFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "path to a YAML, TOML or JSON config file")
	cmd.PersistentFlags().StringP("sketch", "s", "glyphs", "sketch to mount")
	cmd.PersistentFlags().StringP("mount", "", "app", "element id the canvas is parented to")
	cmd.PersistentFlags().StringToStringP("param", "p", nil, "sketch parameter override, key=value")
	cmd.PersistentFlags().StringP("log.level", "", "info", "set the log level: trace, debug, info, warn, error or none")
	cmd.PersistentFlags().StringP("log.file", "", "", "optional log file - if not specified logs go to STDOUT")
}

// DefineRenderFlags registers export flags.
func DefineRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("render.out", "o", "out", "output directory for PNG frames")
	cmd.Flags().IntP("render.frames", "n", 1, "number of frames to render")
	cmd.Flags().Float64P("render.scale", "", 1.0, "resize factor applied to exported frames")
}

// DefineWindowFlags registers viewer flags.
func DefineWindowFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("window.scale", "", 1, "window scale factor")
	cmd.Flags().IntP("window.tps", "", 60, "update ticks per second")
	cmd.Flags().IntP("window.fps", "", 60, "frame callbacks per second for animated sketches")
	cmd.Flags().BoolP("window.hud", "", false, "show the parameter HUD on start")
}

// Loader resolves Config from defaults, an optional file and flags.
type Loader struct {
	v         *viper.Viper
	file      string
	overrides map[string]string
}

// NewLoader reads configFile, if any, and binds the flags of cmd. A missing
// file is not an error.
func NewLoader(cmd *cobra.Command, configFile string) (*Loader, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("SKETCHBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	l := &Loader{v: v}
	if cmd != nil {
		for _, name := range bindPFlags {
			if f := cmd.Flags().Lookup(name); f != nil {
				_ = v.BindPFlag(name, f)
			}
		}
		if f := cmd.Flags().Lookup("param"); f != nil {
			overrides, err := cmd.Flags().GetStringToString("param")
			if err != nil {
				return nil, fmt.Errorf("error reading param flag: %w", err)
			}
			l.overrides = overrides
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if !errors.As(err, &pathErr) {
				return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
			log.Warn().Str("file", configFile).Msg("config file not found, using defaults")
		} else {
			l.file = configFile
		}
	}
	return l, nil
}

// File returns the config file in use, or "" when running on flags alone.
func (l *Loader) File() string { return l.file }

// Load unmarshals and validates the current settings. Flag params override
// file params key by key.
func (l *Loader) Load() (Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	for k, val := range l.overrides {
		cfg.Params[k] = val
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Watch calls onChange with the reloaded config every time the file is
// written. It does nothing without a file. onChange runs on the watcher
// goroutine.
func (l *Loader) Watch(onChange func(Config)) bool {
	if l.file == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.Load()
		if err != nil {
			log.Error().Err(err).Str("file", e.Name).Msg("ignoring config change")
			return
		}
		log.Debug().Str("file", e.Name).Str("op", e.Op.String()).Msg("config changed")
		onChange(cfg)
	})
	l.v.WatchConfig()
	return true
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Sketch == "":
		return fmt.Errorf("%w: sketch is required", ErrInvalid)
	case c.Mount == "":
		return fmt.Errorf("%w: mount is required", ErrInvalid)
	case c.Render.Frames < 1:
		return fmt.Errorf("%w: render.frames must be at least 1, got %d", ErrInvalid, c.Render.Frames)
	case c.Render.Scale <= 0:
		return fmt.Errorf("%w: render.scale must be positive, got %g", ErrInvalid, c.Render.Scale)
	case c.Window.Scale < 1:
		return fmt.Errorf("%w: window.scale must be at least 1, got %d", ErrInvalid, c.Window.Scale)
	case c.Window.TPS < 1 || c.Window.FPS < 1:
		return fmt.Errorf("%w: window.tps and window.fps must be positive", ErrInvalid)
	}
	return nil
}
