package graphics

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/notargets/gotrimesh/geometry2D"
	"github.com/notargets/gotrimesh/utils"
)

type PNGOptions struct {
	Size        int     // Width and height of the image in pixels
	Margin      float64 // Pixels between the unit square and the image border
	LineWidth   float64
	PointRadius float64
	Title       string
}

func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Size:        500,
		Margin:      40,
		LineWidth:   2,
		PointRadius: 3,
		Title:       "Triangulation",
	}
}

func RenderPNG(w io.Writer, rm *geometry2D.RectMesh, opts PNGOptions) error {
	return drawMesh(rm, opts).EncodePNG(w)
}

func SavePNG(path string, rm *geometry2D.RectMesh, opts PNGOptions) error {
	return drawMesh(rm, opts).SavePNG(path)
}

// toPixel maps the unit square onto the image, y pointing up
func toPixel(pt geometry2D.Point, opts PNGOptions) (px, py float64) {
	var (
		span = float64(opts.Size) - 2*opts.Margin
	)
	px = opts.Margin + pt.X[0]*span
	py = float64(opts.Size) - opts.Margin - pt.X[1]*span
	return
}

func drawMesh(rm *geometry2D.RectMesh, opts PNGOptions) (dc *gg.Context) {
	var (
		size = float64(opts.Size)
	)
	dc = gg.NewContext(opts.Size, opts.Size)
	dc.SetColor(utils.GetColor(utils.White))
	dc.Clear()

	dc.SetColor(utils.GetColor(utils.Blue))
	dc.SetLineWidth(opts.LineWidth)
	for k := 0; k < rm.NumTriangles(); k++ {
		pts := rm.TriangleVertices(k)
		for n := 0; n < 3; n++ {
			x1, y1 := toPixel(pts[n], opts)
			x2, y2 := toPixel(pts[(n+1)%3], opts)
			dc.DrawLine(x1, y1, x2, y2)
		}
	}
	dc.Stroke()

	dc.SetColor(utils.GetColor(utils.Red))
	for i := 0; i < rm.NumVertices(); i++ {
		px, py := toPixel(rm.Vertex(i), opts)
		dc.DrawCircle(px, py, opts.PointRadius)
	}
	dc.Fill()

	dc.SetColor(utils.GetColor(utils.Black))
	dc.DrawStringAnchored(opts.Title, size/2, opts.Margin/2, 0.5, 0.5)
	dc.DrawStringAnchored("X", size/2, size-opts.Margin/4, 0.5, 0.5)
	dc.DrawStringAnchored("Y", opts.Margin/4, size/2, 0.5, 0.5)
	return
}
