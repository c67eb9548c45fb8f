package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchbox/internal/canvas"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(0.3, 0.8), b.Uniform(0.3, 0.8))
		require.Equal(t, a.IntRange(2, 5), b.IntRange(2, 5))
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		f := r.Uniform(0.4, 0.7)
		assert.GreaterOrEqual(t, f, 0.4)
		assert.Less(t, f, 0.7)

		n := r.IntRange(2, 5)
		assert.GreaterOrEqual(t, n, 2)
		assert.Less(t, n, 5)
	}
	assert.Equal(t, 3, r.IntRange(3, 3))
}

func TestPickReturnsMember(t *testing.T) {
	set := []int{4, 6, 8}
	r := NewRNG(9)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := Pick[int](r, set)
		assert.Contains(t, set, v)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestGridLayout(t *testing.T) {
	g := NewGrid(Size{W: 640, H: 640}, 8, 8)
	assert.Equal(t, 64, g.Len())
	assert.Equal(t, 80.0, g.CellSize())

	cx, cy := g.Center(0, 0)
	assert.Equal(t, 40.0, cx)
	assert.Equal(t, 40.0, cy)

	cx, cy = g.Center(7, 2)
	assert.Equal(t, 600.0, cx)
	assert.Equal(t, 200.0, cy)

	x, y := g.Coords(g.Index(3, 5))
	assert.Equal(t, 3, x)
	assert.Equal(t, 5, y)

	g = NewGrid(Size{W: 100, H: 50}, 0, -1)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 50.0, g.CellSize())
}

func TestNoiseDeterministicAndBounded(t *testing.T) {
	a, b := NewNoise(7), NewNoise(7)
	other := NewNoise(8)
	differs := false
	for i := 0; i < 200; i++ {
		x, y, z := float64(i)*0.13, float64(i%17)*0.2, float64(i)*0.01
		v := a.At(x, y, z)
		require.Equal(t, v, b.At(x, y, z))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		if other.At(x, y, z) != v {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should give different fields")
	assert.Equal(t, a.At(1.5, 2.5, 0.25), a.At(-1.5, -2.5, -0.25))
}

func TestNoiseIsSmooth(t *testing.T) {
	n := NewNoise(3)
	prev := n.At(0.5, 0.5, 0)
	for step := 1; step <= 100; step++ {
		v := n.At(0.5, 0.5, float64(step)*0.001)
		assert.InDelta(t, prev, v, 0.05)
		prev = v
	}
}

func TestNoiseDetail(t *testing.T) {
	n := NewNoise(5)
	base := n.At(2.3, 4.1, 0.7)

	// A single octave carries half the amplitude.
	n.Detail(1, 0.5)
	single := n.At(2.3, 4.1, 0.7)
	assert.NotEqual(t, base, single)
	for i := 0; i < 100; i++ {
		assert.Less(t, n.At(float64(i)*0.37, 1.1, 0.2), 0.5)
	}

	// Non-positive arguments keep the current setting.
	n.Detail(0, -1)
	assert.Equal(t, single, n.At(2.3, 4.1, 0.7))

	n.Detail(4, 0.5)
	assert.Equal(t, base, n.At(2.3, 4.1, 0.7))
}

func TestFixedStepPacesFrames(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	assert.True(t, fs.ShouldStep(), "first frame is due immediately")
	assert.False(t, fs.ShouldStep())

	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	clock = clock.Add(50 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A long stall yields one frame, not a burst.
	clock = clock.Add(time.Second)
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestOptionHelpers(t *testing.T) {
	cfg := map[string]string{"cols": "6", "rows": "-2", "seed": "99", "extended": "false", "palette": "", "mount": "stage"}

	cols, rows := 4, 4
	PositiveInt(cfg, "cols", &cols)
	PositiveInt(cfg, "rows", &rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, 4, rows)

	var seed int64 = 1
	Int64(cfg, "seed", &seed)
	assert.Equal(t, int64(99), seed)

	speed := 0.01
	NonNegativeFloat(map[string]string{"speed": "0.25"}, "speed", &speed)
	assert.Equal(t, 0.25, speed)
	NonNegativeFloat(map[string]string{"speed": "-1"}, "speed", &speed)
	NonNegativeFloat(map[string]string{"speed": "fast"}, "speed", &speed)
	assert.Equal(t, 0.25, speed)

	extended := true
	Bool(cfg, "extended", &extended)
	assert.False(t, extended)

	palette, mount := "martens", MountID
	String(cfg, "palette", &palette)
	String(cfg, "mount", &mount)
	assert.Equal(t, "martens", palette)
	assert.Equal(t, "stage", mount)
}

type nopSketch struct{ name string }

func (s nopSketch) Name() string              { return s.name }
func (s nopSketch) Initialize(canvas.Canvas)  {}
func (s nopSketch) RenderFrame(canvas.Canvas) {}

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Sketch { return nopSketch{} })
	Register("zz-nil", nil)
	Register("zz-test", func(map[string]string) Sketch { return nopSketch{name: "zz-test"} })
	t.Cleanup(func() { delete(sketches, "zz-test") })

	_, ok := Sketches()[""]
	assert.False(t, ok)
	_, ok = Sketches()["zz-nil"]
	assert.False(t, ok)

	f, ok := Sketches()["zz-test"]
	require.True(t, ok)
	assert.Equal(t, "zz-test", f(nil).Name())
	assert.Contains(t, Names(), "zz-test")
}
