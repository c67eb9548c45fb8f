// Package host mounts sketches onto a drawing surface and drives their frame
// callbacks. A mounted sketch is either static, drawing once and then only on
// request, or animating, drawing on every step.
package host

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"sketchbox/internal/canvas"
	"sketchbox/internal/core"
)

var (
	// ErrNoCanvas is returned when a sketch's setup did not create a canvas.
	ErrNoCanvas = errors.New("sketch did not create a canvas")
	// ErrMountPointMissing is returned when the canvas was parented to an
	// element that does not exist.
	ErrMountPointMissing = errors.New("mount point missing")
	// ErrUnknownSketch is returned by Build for unregistered names.
	ErrUnknownSketch = errors.New("unknown sketch")
)

// State is the lifecycle phase of a mounted sketch.
type State uint8

const (
	Uninitialized State = iota
	Static
	Animating
	Removed
)

var stateNames = [...]string{"uninitialized", "static", "animating", "removed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Instance is a sketch mounted on a surface.
type Instance struct {
	sketch  core.Sketch
	surface canvas.Surface
	state   State
	pending bool
	frames  int
}

// Build creates a registered sketch by name.
func Build(name string, params map[string]string) (core.Sketch, error) {
	f, ok := core.Sketches()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSketch, name)
	}
	return f(params), nil
}

// Mount runs the sketch's setup against surface. mounts lists the element ids
// the canvas may be parented to; it defaults to core.MountID. On error the
// surface is released and no instance is returned.
func Mount(s core.Sketch, surface canvas.Surface, mounts ...string) (*Instance, error) {
	if len(mounts) == 0 {
		mounts = []string{core.MountID}
	}
	s.Initialize(surface)

	w, h, ok := surface.Size()
	if !ok {
		surface.Release()
		return nil, fmt.Errorf("mount %s: %w", s.Name(), ErrNoCanvas)
	}
	id := surface.MountID()
	if !slices.Contains(mounts, id) {
		surface.Release()
		return nil, fmt.Errorf("mount %s: %w: %q", s.Name(), ErrMountPointMissing, id)
	}

	inst := &Instance{sketch: s, surface: surface, state: Animating, pending: true}
	if !surface.Looping() {
		inst.state = Static
	}
	log.Info().Str("sketch", s.Name()).Str("mount", id).Int("width", w).Int("height", h).
		Str("state", inst.state.String()).Msg("sketch mounted")
	return inst, nil
}

// Step runs the frame callback if one is due and reports whether it drew.
// Static sketches draw on the first step and after Redraw; animating sketches
// draw on every step.
func (i *Instance) Step() bool {
	switch i.state {
	case Static:
		if !i.pending {
			return false
		}
	case Animating:
	default:
		return false
	}
	i.sketch.RenderFrame(i.surface)
	i.pending = false
	i.frames++
	return true
}

// Redraw schedules one more frame for a static sketch. Animating sketches
// draw anyway.
func (i *Instance) Redraw() {
	if i.state == Static {
		i.pending = true
	}
}

// Remove tears the instance down and releases its canvas. It is safe to call
// more than once.
func (i *Instance) Remove() {
	if i.state == Removed {
		return
	}
	i.surface.Release()
	log.Info().Str("sketch", i.sketch.Name()).Int("frames", i.frames).Msg("sketch removed")
	i.state = Removed
}

// State returns the lifecycle phase.
func (i *Instance) State() State { return i.state }

// Frames counts completed frame callbacks.
func (i *Instance) Frames() int { return i.frames }

// Sketch returns the mounted sketch.
func (i *Instance) Sketch() core.Sketch { return i.sketch }

// Surface returns the drawing surface.
func (i *Instance) Surface() canvas.Surface { return i.surface }
