package martens

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchbox/internal/canvas"
	"sketchbox/internal/canvas/canvastest"
	"sketchbox/internal/core"
	"sketchbox/internal/palette"
)

func TestInitializeStopsLoop(t *testing.T) {
	m := New(DefaultConfig())
	rec := canvastest.New()
	m.Initialize(rec)

	assert.Equal(t, []any{640, 640}, rec.Find("createCanvas")[0].Args)
	assert.Equal(t, "app", rec.MountID())
	assert.False(t, rec.Looping())
}

func TestGenerationBounds(t *testing.T) {
	m := New(DefaultConfig())
	m.Initialize(canvastest.New())

	shapes := m.Shapes()
	assert.GreaterOrEqual(t, len(shapes), 30)
	assert.Less(t, len(shapes), 50)
	for _, s := range shapes {
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.Less(t, s.X, 640.0)
		assert.GreaterOrEqual(t, s.Y, 0.0)
		assert.Less(t, s.Y, 640.0)
		assert.GreaterOrEqual(t, s.Size, 40.0)
		assert.Less(t, s.Size, 180.0)
		assert.GreaterOrEqual(t, s.Alpha, 0.4)
		assert.Less(t, s.Alpha, 0.85)
		assert.True(t, palette.Martens.Contains(s.Color))
	}

	outlines := m.Outlines()
	require.Len(t, outlines, 10)
	for _, o := range outlines {
		assert.GreaterOrEqual(t, o.Size, 80.0)
		assert.Less(t, o.Size, 200.0)
		assert.GreaterOrEqual(t, o.Weight, 2.0)
		assert.Less(t, o.Weight, 6.0)
	}
}

func TestSameSeedSamePrint(t *testing.T) {
	a, b := New(DefaultConfig()), New(DefaultConfig())
	a.Initialize(canvastest.New())
	b.Initialize(canvastest.New())
	assert.Equal(t, a.Shapes(), b.Shapes())
	assert.Equal(t, a.Outlines(), b.Outlines())

	c := New(FromMap(map[string]string{"seed": "41"}))
	c.Initialize(canvastest.New())
	assert.NotEqual(t, a.Shapes(), c.Shapes())
}

func TestRenderFrameIsIdempotent(t *testing.T) {
	m := New(DefaultConfig())
	rec := canvastest.New()
	m.Initialize(rec)

	rec.Reset()
	m.RenderFrame(rec)
	first := append([]canvastest.Call(nil), rec.Calls...)

	rec.Reset()
	m.RenderFrame(rec)
	assert.Equal(t, first, rec.Calls)
}

func TestRenderFrameDrawsEveryShape(t *testing.T) {
	m := New(DefaultConfig())
	rec := canvastest.New()
	m.Initialize(rec)
	rec.Reset()
	m.RenderFrame(rec)

	assert.Equal(t, []any{canvas.Gray(255)}, rec.Find("background")[0].Args)
	assert.Equal(t, len(m.Shapes())+len(m.Outlines()), rec.Count("circle")+rec.Count("rect"))
	assert.Equal(t, 0, rec.Depth())

	stroked := 0
	for _, s := range m.Shapes() {
		if s.Stroked {
			stroked++
		}
	}
	// Hairlines use weight 1; outlines set their own weight.
	assert.Equal(t, stroked+len(m.Outlines()), rec.Count("strokeWeight"))
	assert.Equal(t, len(m.Shapes())-stroked, rec.Count("noStroke"))

	fill := rec.Find("fill")[0].Args[0].(color.NRGBA)
	assert.Equal(t, uint8(m.Shapes()[0].Alpha*255), fill.A)

	strokes := rec.Find("stroke")
	last := strokes[len(strokes)-1].Args[0].(color.NRGBA)
	assert.Equal(t, uint8(180), last.A)
}

func TestRectsAreCentred(t *testing.T) {
	m := New(DefaultConfig())
	rec := canvastest.New()
	m.Initialize(rec)
	m.RenderFrame(rec)
	for _, call := range rec.Find("rectMode") {
		assert.Equal(t, canvas.RectCenter, call.Args[0])
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"min_shapes": "5", "max_shapes": "3", "outlines": "2"})
	assert.Equal(t, 5, c.MinShapes)
	assert.Equal(t, 5, c.MaxShapes)
	assert.Equal(t, 2, c.Outlines)

	m := New(c)
	m.Initialize(canvastest.New())
	assert.Len(t, m.Shapes(), 5)
	assert.Len(t, m.Outlines(), 2)
}

func TestRegistered(t *testing.T) {
	f, ok := core.Sketches()["martens"]
	require.True(t, ok)
	assert.Equal(t, "martens", f(nil).Name())
}
