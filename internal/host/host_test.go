package host

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchbox/internal/canvas"
	"sketchbox/internal/canvas/canvastest"
	_ "sketchbox/internal/sketches/glyphs"
	_ "sketchbox/internal/sketches/pulse"
)

type fakeSketch struct {
	create bool
	mount  string
	loop   bool
	frames int
}

func (f *fakeSketch) Name() string { return "fake" }

func (f *fakeSketch) Initialize(c canvas.Canvas) {
	if f.create {
		c.CreateCanvas(10, 10).Parent(f.mount)
	}
	if !f.loop {
		c.NoLoop()
	}
}

func (f *fakeSketch) RenderFrame(canvas.Canvas) { f.frames++ }

func TestMountGlyphs(t *testing.T) {
	s, err := Build("glyphs", nil)
	require.NoError(t, err)
	rec := canvastest.New()
	inst, err := Mount(s, rec)
	require.NoError(t, err)

	w, h, ok := rec.Size()
	require.True(t, ok)
	assert.Equal(t, 640, w)
	assert.Equal(t, 640, h)
	assert.Equal(t, "app", rec.MountID())
	assert.Equal(t, Static, inst.State())

	assert.True(t, inst.Step())
	assert.Greater(t, rec.Count("rotate"), 0)
}

func TestStaticDrawsOnceUntilRedraw(t *testing.T) {
	f := &fakeSketch{create: true, mount: "app"}
	inst, err := Mount(f, canvastest.New())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		inst.Step()
	}
	assert.Equal(t, 1, f.frames)

	inst.Redraw()
	assert.True(t, inst.Step())
	assert.False(t, inst.Step())
	assert.Equal(t, 2, f.frames)
	assert.Equal(t, 2, inst.Frames())
	assert.Equal(t, Static, inst.State())
}

func TestAnimatingDrawsEveryStep(t *testing.T) {
	s, err := Build("pulse", nil)
	require.NoError(t, err)
	inst, err := Mount(s, canvastest.New())
	require.NoError(t, err)
	require.Equal(t, Animating, inst.State())

	for i := 0; i < 4; i++ {
		assert.True(t, inst.Step())
	}
	assert.Equal(t, 4, inst.Frames())
}

func TestMountErrors(t *testing.T) {
	rec := canvastest.New()
	_, err := Mount(&fakeSketch{}, rec)
	assert.ErrorIs(t, err, ErrNoCanvas)

	rec = canvastest.New()
	_, err = Mount(&fakeSketch{create: true, mount: "stage"}, rec)
	assert.ErrorIs(t, err, ErrMountPointMissing)
	assert.Equal(t, 1, rec.Count("remove"))

	_, err = Mount(&fakeSketch{create: true, mount: "stage"}, canvastest.New(), "app", "stage")
	assert.NoError(t, err)

	_, err = Build("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownSketch)
}

func TestRemove(t *testing.T) {
	f := &fakeSketch{create: true, mount: "app", loop: true}
	rec := canvastest.New()
	inst, err := Mount(f, rec)
	require.NoError(t, err)

	inst.Remove()
	inst.Remove()
	assert.Equal(t, Removed, inst.State())
	assert.Equal(t, 1, rec.Count("remove"))
	assert.False(t, inst.Step())
	_, _, ok := rec.Size()
	assert.False(t, ok)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "animating", Animating.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestReloaderSwapsInstances(t *testing.T) {
	var surfaces []*canvastest.Recorder
	build := func() (*Instance, error) {
		rec := canvastest.New()
		surfaces = append(surfaces, rec)
		return Mount(&fakeSketch{create: true, mount: "app", loop: true}, rec)
	}
	r, err := NewReloader(build)
	require.NoError(t, err)
	first := r.Current()

	applied, err := r.Poll()
	require.NoError(t, err)
	assert.False(t, applied)

	r.Request()
	r.Request()
	applied, err = r.Poll()
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NotSame(t, first, r.Current())
	assert.Equal(t, Removed, first.State())
	assert.Equal(t, 1, r.Reloads())
	require.Len(t, surfaces, 2)

	applied, _ = r.Poll()
	assert.False(t, applied, "duplicate requests collapse")

	r.Dispose()
	assert.Equal(t, Removed, r.Current().State())
}

func TestReloaderKeepsInstanceOnFailure(t *testing.T) {
	fail := false
	build := func() (*Instance, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return Mount(&fakeSketch{create: true, mount: "app", loop: true}, canvastest.New())
	}
	r, err := NewReloader(build)
	require.NoError(t, err)
	first := r.Current()

	fail = true
	r.Request()
	_, err = r.Poll()
	assert.Error(t, err)
	assert.Same(t, first, r.Current())
	assert.Equal(t, Animating, first.State())
}

func TestRequestFromOtherGoroutines(t *testing.T) {
	r, err := NewReloader(func() (*Instance, error) {
		return Mount(&fakeSketch{create: true, mount: "app"}, canvastest.New())
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Request()
		}()
	}
	wg.Wait()
	applied, err := r.Poll()
	require.NoError(t, err)
	assert.True(t, applied)
	applied, _ = r.Poll()
	assert.False(t, applied)
}
