package cli

import (
	"sync/atomic"

	"sketchbox/internal/canvas"
	"sketchbox/internal/config"
	"sketchbox/internal/host"
)

// session holds the latest configuration for rebuilding the mounted sketch.
// The watcher goroutine stores; the frame loop loads.
type session struct {
	cfg atomic.Pointer[config.Config]
}

func newSession(cfg config.Config) *session {
	s := &session{}
	s.cfg.Store(&cfg)
	return s
}

func (s *session) config() config.Config { return *s.cfg.Load() }

func (s *session) update(cfg config.Config) { s.cfg.Store(&cfg) }

// build mounts a fresh instance of the configured sketch on a new raster.
func (s *session) build() (*host.Instance, error) {
	cfg := s.config()
	sketch, err := host.Build(cfg.Sketch, cfg.Params)
	if err != nil {
		return nil, err
	}
	return host.Mount(sketch, canvas.NewRaster(), cfg.Mount)
}

// watch hooks loader changes up to r. notify, if set, is called after each
// request.
func (s *session) watch(loader *config.Loader, r *host.Reloader, notify func()) bool {
	return loader.Watch(func(cfg config.Config) {
		s.update(cfg)
		r.Request()
		if notify != nil {
			notify()
		}
	})
}
