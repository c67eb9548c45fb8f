package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	DefineRenderFlags(cmd)
	DefineWindowFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "sketchbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	l, err := NewLoader(nil, "")
	require.NoError(t, err)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "glyphs", cfg.Sketch)
	assert.Equal(t, "app", cfg.Mount)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Render.Frames)
	assert.Equal(t, 1.0, cfg.Render.Scale)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.Empty(t, cfg.Params)
	assert.Empty(t, l.File())
}

func TestFileAndFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
sketch: pulse
params:
  cols: 6
  seed: "9"
render:
  frames: 12
  out: frames
log:
  level: debug
`)
	cmd := newCmd(t, "--render.frames", "3", "--param", "seed=11,rows=2")
	l, err := NewLoader(cmd, path)
	require.NoError(t, err)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.File())
	assert.Equal(t, "pulse", cfg.Sketch)
	assert.Equal(t, 3, cfg.Render.Frames, "flags win over the file")
	assert.Equal(t, "frames", cfg.Render.Out)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, map[string]string{"cols": "6", "seed": "11", "rows": "2"}, cfg.Params)
}

func TestMissingFileUsesDefaults(t *testing.T) {
	l, err := NewLoader(nil, filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, l.File())
	assert.False(t, l.Watch(func(Config) {}))
}

func TestBrokenFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sketch: [unterminated")
	_, err := NewLoader(nil, path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	l, err := NewLoader(newCmd(t, "--render.scale", "0"), "")
	require.NoError(t, err)
	_, err = l.Load()
	assert.ErrorIs(t, err, ErrInvalid)

	l, err = NewLoader(newCmd(t, "--sketch", ""), "")
	require.NoError(t, err)
	_, err = l.Load()
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sketch: glyphs\n")
	l, err := NewLoader(nil, path)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		last Config
	)
	require.True(t, l.Watch(func(cfg Config) {
		mu.Lock()
		last = cfg
		mu.Unlock()
	}))

	writeFile(t, dir, "sketch: martens\nparams:\n  seed: 3\n")
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last.Sketch == "martens" && last.Params["seed"] == "3"
	}, 5*time.Second, 20*time.Millisecond)
}
