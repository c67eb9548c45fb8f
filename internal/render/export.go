// Package render exports canvas frames as PNG files and, in GUI builds,
// blits them to the window.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"sketchbox/internal/host"
)

// ErrNoPixels is returned when the mounted surface cannot be read back.
var ErrNoPixels = errors.New("surface has no readable pixels")

// Options controls a PNG export.
type Options struct {
	// Dir receives the files; it is created when missing.
	Dir string
	// Frames is the number of frame callbacks to run.
	Frames int
	// Scale resizes each frame; 1 keeps the canvas size.
	Scale float64
}

// FramePath names frame i of sketch in dir.
func FramePath(dir, sketch string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%04d.png", sketch, i))
}

// Scaled resizes img by factor using Lanczos filtering. A factor of 1 returns
// img unchanged.
func Scaled(img image.Image, factor float64) image.Image {
	if factor == 1 || factor <= 0 {
		return img
	}
	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// SaveFrame writes img to path as PNG after scaling it.
func SaveFrame(img image.Image, path string, scale float64) error {
	if err := imaging.Save(Scaled(img, scale), path); err != nil {
		return fmt.Errorf("save frame %s: %w", path, err)
	}
	return nil
}

// Sequence steps inst up to opts.Frames times and saves every drawn frame.
// Static sketches stop after their single frame. It returns the written
// paths in order.
func Sequence(ctx context.Context, inst *host.Instance, opts Options) ([]string, error) {
	frame, ok := inst.Surface().(Frame)
	if !ok {
		return nil, ErrNoPixels
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	name := inst.Sketch().Name()
	var paths []string
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if !inst.Step() {
			break
		}
		path := FramePath(opts.Dir, name, i)
		if err := SaveFrame(frame.Image(), path, opts.Scale); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		log.Debug().Str("sketch", name).Int("frame", i).Str("path", path).Msg("frame saved")
	}
	return paths, nil
}
