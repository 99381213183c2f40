package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/gotrimesh/geometry2D"
)

// BoundaryMarkers walks the sides of a rectangular mesh counter-clockwise,
// starting at the origin
func BoundaryMarkers(rm *geometry2D.RectMesh) (markers []Marker) {
	var (
		nx, ny = rm.NumXElements, rm.NumYElements
		numX   = nx + 1
	)
	bottom := Marker{Tag: "bottom", Edges: make([][2]int, 0, nx)}
	right := Marker{Tag: "right", Edges: make([][2]int, 0, ny)}
	top := Marker{Tag: "top", Edges: make([][2]int, 0, nx)}
	left := Marker{Tag: "left", Edges: make([][2]int, 0, ny)}
	for i := 0; i < nx; i++ {
		bottom.Edges = append(bottom.Edges, [2]int{i, i + 1})
	}
	for j := 0; j < ny; j++ {
		right.Edges = append(right.Edges, [2]int{nx + j*numX, nx + (j+1)*numX})
	}
	for i := nx; i > 0; i-- {
		top.Edges = append(top.Edges, [2]int{i + ny*numX, i - 1 + ny*numX})
	}
	for j := ny; j > 0; j-- {
		left.Edges = append(left.Edges, [2]int{j * numX, (j - 1) * numX})
	}
	return []Marker{bottom, right, top, left}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func WriteSU2(w io.Writer, rm *geometry2D.RectMesh) (err error) {
	var (
		bw      = bufio.NewWriter(w)
		vxD     = rm.VX.Data()
		vyD     = rm.VY.Data()
		markers = BoundaryMarkers(rm)
	)
	fmt.Fprintf(bw, "%% Uniform triangulation of the unit square, %d x %d elements\n",
		rm.NumXElements, rm.NumYElements)
	fmt.Fprintf(bw, "NDIME= 2\n")
	fmt.Fprintf(bw, "NELEM= %d\n", rm.NumTriangles())
	for k, tri := range rm.EToV {
		fmt.Fprintf(bw, "%d %d %d %d %d\n", ELType_Triangle, tri[0], tri[1], tri[2], k)
	}
	fmt.Fprintf(bw, "NPOIN= %d\n", rm.NumVertices())
	for i, x := range vxD {
		fmt.Fprintf(bw, "%s %s %d\n", formatFloat(x), formatFloat(vyD[i]), i)
	}
	fmt.Fprintf(bw, "NMARK= %d\n", len(markers))
	for _, m := range markers {
		fmt.Fprintf(bw, "MARKER_TAG= %s\n", m.Tag)
		fmt.Fprintf(bw, "MARKER_ELEMS= %d\n", len(m.Edges))
		for _, e := range m.Edges {
			fmt.Fprintf(bw, "%d %d %d\n", ELType_LINE, e[0], e[1])
		}
	}
	return bw.Flush()
}

func WriteSU2File(filename string, rm *geometry2D.RectMesh) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close file %s: %w", filename, cerr)
		}
	}()
	if err = WriteSU2(file, rm); err != nil {
		return fmt.Errorf("unable to write file %s: %w", filename, err)
	}
	return
}
