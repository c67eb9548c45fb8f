package glyphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchbox/internal/canvas"
	"sketchbox/internal/canvas/canvastest"
	"sketchbox/internal/core"
)

func TestInitializeCreatesCanvas(t *testing.T) {
	g := New("glyphs", DefaultConfig())
	rec := canvastest.New()
	g.Initialize(rec)

	created := rec.Find("createCanvas")
	require.Len(t, created, 1)
	assert.Equal(t, []any{core.CanvasWidth, core.CanvasHeight}, created[0].Args)
	assert.Equal(t, "app", rec.MountID())
	assert.False(t, rec.Looping(), "static print must stop the loop")
	assert.Len(t, g.Cells(), 16)
}

func TestSpinKeepsLooping(t *testing.T) {
	g := New("spin", SpinConfig())
	rec := canvastest.New()
	g.Initialize(rec)
	assert.True(t, rec.Looping())
	assert.Equal(t, 0, rec.Count("noLoop"))
}

func TestInitializeIsDeterministic(t *testing.T) {
	g := New("glyphs", DefaultConfig())
	g.Initialize(canvastest.New())
	first := g.Cells()

	g.Initialize(canvastest.New())
	assert.Equal(t, first, g.Cells())

	other := New("glyphs", FromMap(DefaultConfig(), map[string]string{"seed": "43"}))
	other.Initialize(canvastest.New())
	assert.NotEqual(t, first, other.Cells())
}

func TestRenderFrameDrawsEveryCell(t *testing.T) {
	g := New("glyphs", DefaultConfig())
	rec := canvastest.New()
	g.Initialize(rec)
	rec.Reset()

	g.RenderFrame(rec)

	wantRotations := 0
	for _, cell := range g.Cells() {
		wantRotations += cell.Symmetry * len(cell.Shapes)
	}
	assert.Equal(t, wantRotations, rec.Count("rotate"))
	assert.Equal(t, 1, rec.Count("background"))

	blends := rec.Find("blendMode")
	require.Len(t, blends, 1)
	assert.Equal(t, canvas.BlendMultiply, blends[0].Args[0])
	assert.Equal(t, 0, rec.Depth())
}

func TestSpinPhaseAdvancesMonotonically(t *testing.T) {
	g := New("spin", SpinConfig())
	rec := canvastest.New()
	g.Initialize(rec)

	prev := g.Phase()
	for i := 0; i < 5; i++ {
		g.RenderFrame(rec)
		assert.Greater(t, g.Phase(), prev)
		prev = g.Phase()
	}
	assert.InDelta(t, 0.05, g.Phase(), 1e-12)
	assert.Equal(t, canvas.BlendScreen, rec.Find("blendMode")[0].Args[0])

	// Re-initialising restarts the counter.
	g.Initialize(rec)
	assert.Zero(t, g.Phase())
}

func TestStaticPhaseStaysPut(t *testing.T) {
	g := New("glyphs", DefaultConfig())
	rec := canvastest.New()
	g.Initialize(rec)
	g.RenderFrame(rec)
	g.RenderFrame(rec)
	assert.Zero(t, g.Phase())
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(DefaultConfig(), map[string]string{
		"cols":     "3",
		"rows":     "2",
		"palette":  "nocturne",
		"blend":    "screen",
		"extended": "false",
		"mount":    "stage",
		"w":        "0",
	})
	assert.Equal(t, 3, c.Cols)
	assert.Equal(t, 2, c.Rows)
	assert.Equal(t, "nocturne", c.Palette)
	assert.Equal(t, canvas.BlendScreen, c.Blend)
	assert.False(t, c.Extended)
	assert.Equal(t, "stage", c.Mount)
	assert.Equal(t, core.CanvasWidth, c.Width)

	unchanged := FromMap(DefaultConfig(), map[string]string{"blend": "nope"})
	assert.Equal(t, canvas.BlendMultiply, unchanged.Blend)
}

func TestFromMapMotion(t *testing.T) {
	c := FromMap(SpinConfig(), map[string]string{"speed": "0.05", "animate": "false"})
	assert.Equal(t, 0.05, c.Speed)
	assert.False(t, c.Animate)

	c = FromMap(DefaultConfig(), map[string]string{"animate": "true", "speed": "-1"})
	assert.True(t, c.Animate)
	assert.Equal(t, DefaultConfig().Speed, c.Speed)
}

func TestUnknownPaletteFallsBack(t *testing.T) {
	g := New("glyphs", FromMap(DefaultConfig(), map[string]string{"palette": "sepia"}))
	assert.Equal(t, "martens", g.pal.Name())
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"glyphs", "spin"} {
		f, ok := core.Sketches()[name]
		require.True(t, ok, name)
		assert.Equal(t, name, f(nil).Name())
	}
}

func TestRasterRenderPaintsCells(t *testing.T) {
	g := New("glyphs", FromMap(DefaultConfig(), map[string]string{"w": "160", "h": "160", "cols": "2", "rows": "2"}))
	r := canvas.NewRaster()
	g.Initialize(r)
	g.RenderFrame(r)

	img := r.Image()
	require.NotNil(t, img)
	bg := g.bg
	painted := 0
	for y := 0; y < 160; y += 4 {
		for x := 0; x < 160; x += 4 {
			c := img.RGBAAt(x, y)
			if c.R != bg.R || c.G != bg.G || c.B != bg.B {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 0)
}

func TestParameters(t *testing.T) {
	g := New("glyphs", DefaultConfig())
	snap := g.Parameters()
	require.NotEmpty(t, snap.Groups)
	var keys []string
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			keys = append(keys, p.Key)
		}
	}
	assert.Subset(t, keys, []string{"seed", "cols", "rows", "palette", "blend", "mount"})
}
