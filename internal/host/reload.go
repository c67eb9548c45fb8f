package host

import (
	"github.com/rs/zerolog/log"
)

// Builder creates and mounts a fresh instance, typically from the latest
// configuration.
type Builder func() (*Instance, error)

// Reloader owns the current instance and replaces it on request. Request may
// be called from any goroutine; Poll, Current and Dispose belong to the frame
// loop.
type Reloader struct {
	build    Builder
	current  *Instance
	requests chan struct{}
	reloads  int
}

// NewReloader mounts the first instance.
func NewReloader(build Builder) (*Reloader, error) {
	inst, err := build()
	if err != nil {
		return nil, err
	}
	return &Reloader{
		build:    build,
		current:  inst,
		requests: make(chan struct{}, 1),
	}, nil
}

// Request asks for a reload on the next Poll. Requests made before that Poll
// collapse into one.
func (r *Reloader) Request() {
	select {
	case r.requests <- struct{}{}:
	default:
	}
}

// Poll applies a pending reload. The replacement is mounted before the old
// instance is removed, so a failed rebuild keeps the current sketch running.
func (r *Reloader) Poll() (bool, error) {
	select {
	case <-r.requests:
	default:
		return false, nil
	}
	next, err := r.build()
	if err != nil {
		log.Error().Err(err).Msg("reload failed, keeping current sketch")
		return false, err
	}
	if r.current != nil {
		r.current.Remove()
	}
	r.current = next
	r.reloads++
	log.Info().Str("sketch", next.Sketch().Name()).Int("reloads", r.reloads).Msg("sketch reloaded")
	return true, nil
}

// Current returns the live instance.
func (r *Reloader) Current() *Instance { return r.current }

// Reloads counts applied reloads.
func (r *Reloader) Reloads() int { return r.reloads }

// Dispose removes the live instance.
func (r *Reloader) Dispose() {
	if r.current != nil {
		r.current.Remove()
	}
}
