// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sketchbox/internal/config"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// Level maps a config level name to a zerolog level, defaulting to info.
func Level(name string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(name)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

const (
	colorRed = iota + 31
	colorGreen
	colorYellow
	_
	colorMagenta
	colorCyan

	colorBold = 1
)

func colorize(s any, c int) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func formatLevel(i any) string {
	switch i {
	case "trace":
		return colorize("TRC", colorCyan)
	case "debug":
		return colorize("DBG", colorMagenta)
	case "info":
		return colorize("INF", colorGreen)
	case "warn":
		return colorize("WRN", colorYellow)
	case "error":
		return colorize("ERR", colorRed)
	case "fatal":
		return colorize(colorize("FTL", colorRed), colorBold)
	}
	return colorize("???", colorBold)
}

// ConsoleWriter is the human-readable writer used on terminals.
func ConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		TimeFormat:  "2006-01-02 15:04:05",
		FormatLevel: formatLevel,
	}
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && runtime.GOOS != "windows"
}

// Setup applies cfg to the global logger. The returned func closes the log
// file, if one was opened.
func Setup(cfg config.Log) (func(), error) {
	zerolog.SetGlobalLevel(Level(cfg.Level))
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	}
	if isTerminalAttached() {
		log.Logger = log.Output(ConsoleWriter(os.Stdout))
	}
	return func() {}, nil
}
