package graphics

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gotrimesh/geometry2D"
)

func gridStrings(grid [][]rune) (lines []string) {
	for _, line := range grid {
		lines = append(lines, string(line))
	}
	return
}

func TestRasterize(t *testing.T) {
	rm, err := geometry2D.NewRectMeshNxNy(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+---+",
		"|  /|",
		"| / |",
		"|/  |",
		"+---+",
	}, gridStrings(Rasterize(rm, 5, 5)))

	rm, err = geometry2D.NewRectMeshNxNy(2, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+---+---+",
		"|  /|  /|",
		"| / | / |",
		"|/  |/  |",
		"+---+---+",
	}, gridStrings(Rasterize(rm, 9, 5)))

	// Degenerate meshes draw their vertices only
	rm, err = geometry2D.NewRectMeshNxNy(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"+ ", "+ ", "+ "}, gridStrings(Rasterize(rm, 2, 3)))
	assert.Empty(t, Rasterize(rm, 4, 0))
	assert.Empty(t, Rasterize(rm, 4, -1))
	assert.Empty(t, Rasterize(rm, -1, 4))
}

func TestCrossHairsAndViewBox(t *testing.T) {
	lines := crossHairs([]float32{0, 0, 1, 1}, 0.5)
	assert.Equal(t, []float32{
		-0.5, 0, 0.5, 0, 0, -0.5, 0, 0.5,
		0.5, 1, 1.5, 1, 1, 0.5, 1, 1.5,
	}, lines)

	rm, err := geometry2D.NewRectMeshNxNy(3, 3)
	require.NoError(t, err)
	xMin, xMax, yMin, yMax := viewBox(rm, 0.1)
	assert.InDelta(t, -0.1, xMin, 1.e-6)
	assert.InDelta(t, 1.1, xMax, 1.e-6)
	assert.InDelta(t, -0.1, yMin, 1.e-6)
	assert.InDelta(t, 1.1, yMax, 1.e-6)

	// A single vertex still gets a unit sized window
	rm, err = geometry2D.NewRectMeshNxNy(0, 0)
	require.NoError(t, err)
	xMin, xMax, _, _ = viewBox(rm, 0)
	assert.InDelta(t, 1., xMax-xMin, 1.e-6)
}

func TestRenderPNG(t *testing.T) {
	rm, err := geometry2D.NewRectMeshNxNy(1, 1)
	require.NoError(t, err)
	opts := DefaultPNGOptions()
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, rm, opts))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, opts.Size, img.Bounds().Dx())
	assert.Equal(t, opts.Size, img.Bounds().Dy())

	rgb := func(x, y int) (r, g, b uint32) {
		r, g, b, _ = img.At(x, y).RGBA()
		return r >> 8, g >> 8, b >> 8
	}
	{ // Vertex at the origin is a red dot
		r, g, b := rgb(toPixelInt(geometry2D.Point{X: [2]float64{0, 0}}, opts))
		assert.Equal(t, [3]uint32{255, 0, 0}, [3]uint32{r, g, b})
	}
	{ // Bottom edge is blue
		r, _, b := rgb(toPixelInt(geometry2D.Point{X: [2]float64{0.5, 0}}, opts))
		assert.Greater(t, b, uint32(200))
		assert.Less(t, r, uint32(100))
	}
	{ // Inside a triangle, away from every edge, is background
		r, g, b := rgb(toPixelInt(geometry2D.Point{X: [2]float64{0.75, 0.25}}, opts))
		assert.Equal(t, [3]uint32{255, 255, 255}, [3]uint32{r, g, b})
	}

	path := filepath.Join(t.TempDir(), "mesh.png")
	rm, err = geometry2D.NewRectMeshNxNy(0, 0)
	require.NoError(t, err)
	assert.NoError(t, SavePNG(path, rm, opts))
}

func toPixelInt(pt geometry2D.Point, opts PNGOptions) (x, y int) {
	px, py := toPixel(pt, opts)
	return int(px), int(py)
}

func TestShowTerminal(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 12)

	rm, err := geometry2D.NewRectMeshNxNy(2, 2)
	require.NoError(t, err)
	// The pending key press ends the display loop
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	ShowTerminal(screen, rm)

	// A screen collapsed to nothing during a resize
	for _, size := range [][2]int{{40, 0}, {40, 1}, {0, 12}} {
		screen.SetSize(size[0], size[1])
		require.NotPanics(t, func() { drawScreen(screen, rm) }, "size %v", size)
	}
}
