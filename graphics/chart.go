package graphics

import (
	"context"

	"github.com/notargets/avs/chart2d"
	avsUtils "github.com/notargets/avs/utils"

	"github.com/notargets/gotrimesh/geometry2D"
)

type ChartOptions struct {
	Width, Height int
	// CrossHairSize is the half width of the vertex markers in mesh units
	CrossHairSize float32
	// Margin pads the view around the mesh bounds, as a fraction of the
	// larger mesh extent
	Margin float32
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Width:         1024,
		Height:        1024,
		CrossHairSize: 0.01,
		Margin:        0.1,
	}
}

// PlotMesh opens a chart window with the triangle edges and a red cross at
// every vertex, then blocks until ctx is done
func PlotMesh(ctx context.Context, rm *geometry2D.RectMesh, opts ChartOptions) {
	var (
		gm                     = rm.ToGraphMesh()
		xMin, xMax, yMin, yMax = viewBox(rm, opts.Margin)
	)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		opts.Width, opts.Height, avsUtils.WHITE, avsUtils.BLACK)
	ch.AddTriMesh(gm)
	ch.AddLine(crossHairs(gm.XY, opts.CrossHairSize), avsUtils.RED)
	<-ctx.Done()
}

// viewBox is a square window around the mesh, never smaller than the unit square
func viewBox(rm *geometry2D.RectMesh, margin float32) (xMin, xMax, yMin, yMax float32) {
	var (
		x0, x1, y0, y1 = rm.Bounds()
		xCent          = float32(x0+x1) / 2
		yCent          = float32(y0+y1) / 2
		half           = float32(max(x1-x0, y1-y0, 1)) / 2
	)
	half += 2 * half * margin
	return xCent - half, xCent + half, yCent - half, yCent + half
}

// crossHairs returns line segments x1,y1,x2,y2,... forming a cross at every
// interleaved x,y point
func crossHairs(xy []float32, size float32) (lines []float32) {
	var (
		lenXY = len(xy) / 2
	)
	lines = make([]float32, 0, 8*lenXY)
	for i := 0; i < lenXY; i++ {
		x, y := xy[2*i], xy[2*i+1]
		lines = append(lines,
			x-size, y,
			x+size, y,
			x, y-size,
			x, y+size,
		)
	}
	return
}
