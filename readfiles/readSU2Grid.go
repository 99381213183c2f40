package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notargets/gotrimesh/geometry2D"
	"github.com/notargets/gotrimesh/utils"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE     SU2ElementType = 3
	ELType_Triangle SU2ElementType = 5
)

// Marker is a tagged group of boundary line elements
type Marker struct {
	Tag   string
	Edges [][2]int
}

type SU2Grid struct {
	Dimensionality int
	VX, VY         utils.Vector
	EToV           []geometry2D.Triangle
	Markers        []Marker
}

var ErrEarlyEOF = errors.New("early end of file")

func readMarkers(reader *bufio.Reader) (markers []Marker, err error) {
	var (
		nType, NBCs int
		v1, v2      int
		line        string
	)
	if NBCs, err = readCount(reader); err != nil {
		return
	}
	for n := 0; n < NBCs; n++ {
		markers = append(markers, Marker{})
		if markers[n].Tag, err = readLabel(reader); err != nil {
			return
		}
		var nEdges int
		if nEdges, err = readCount(reader); err != nil {
			return
		}
		for i := 0; i < nEdges; i++ {
			if line, err = getLine(reader); err != nil {
				return
			}
			if _, err = fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil {
				return nil, fmt.Errorf("marker %s, edge %d: %w", markers[n].Tag, i, err)
			}
			if SU2ElementType(nType) != ELType_LINE {
				return nil, fmt.Errorf("markers should only contain line elements in 2D, have type %d", nType)
			}
			markers[n].Edges = append(markers[n].Edges, [2]int{v1, v2})
		}
	}
	return
}

func readVertices(reader *bufio.Reader) (VX, VY utils.Vector, err error) {
	var (
		x, y     float64
		line     string
		Nv       int
		vxD, vyD []float64
	)
	if Nv, err = readCount(reader); err != nil {
		return
	}
	for i := 0; i < Nv; i++ {
		if line, err = getLine(reader); err != nil {
			return
		}
		if _, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			err = fmt.Errorf("unable to read coordinates of vertex %d: %w", i, err)
			return
		}
		vxD, vyD = append(vxD, x), append(vyD, y)
	}
	VX, VY = utils.NewVector(Nv, vxD), utils.NewVector(Nv, vyD)
	return
}

func readElements(reader *bufio.Reader) (EToV []geometry2D.Triangle, err error) {
	var (
		nType      int
		v1, v2, v3 int
		line       string
		K          int
	)
	if K, err = readCount(reader); err != nil {
		return
	}
	for k := 0; k < K; k++ {
		if line, err = getLine(reader); err != nil {
			return
		}
		if _, err = fmt.Sscanf(line, "%d %d %d %d", &nType, &v1, &v2, &v3); err != nil {
			return nil, fmt.Errorf("unable to read vertices of element %d: %w", k, err)
		}
		if SU2ElementType(nType) != ELType_Triangle {
			return nil, fmt.Errorf("unable to deal with non-triangular elements, element %d has type %d", k, nType)
		}
		EToV = append(EToV, geometry2D.Triangle{v1, v2, v3})
	}
	return
}

func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	if err == io.EOF {
		return "", ErrEarlyEOF
	}
	line = strings.TrimRight(line, "\r\n")
	return
}

func getLineNoComments(reader *bufio.Reader) (line string, err error) {
	for {
		if line, err = getLine(reader); err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			return
		}
	}
}

func getToken(reader *bufio.Reader) (token string, err error) {
	var (
		line string
	)
	if line, err = getLineNoComments(reader); err != nil {
		return
	}
	ind := strings.Index(line, "=")
	if ind < 0 {
		err = fmt.Errorf("badly formed input line [%s], should have an =", line)
		return
	}
	token = strings.TrimSpace(line[ind+1:])
	return
}

func readLabel(reader *bufio.Reader) (label string, err error) {
	var (
		token string
	)
	if token, err = getToken(reader); err != nil {
		return
	}
	if _, err = fmt.Sscanf(token, "%s", &label); err != nil {
		err = fmt.Errorf("unable to read label from token: [%s]", token)
	}
	return
}

func readNumber(reader *bufio.Reader) (num int, err error) {
	var (
		token string
	)
	if token, err = getToken(reader); err != nil {
		return
	}
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		return
	}
	if num < 0 {
		err = fmt.Errorf("negative count in token: [%s]", token)
	}
	return
}

// readCount reads a section size, bounded by the largest indexable mesh
func readCount(reader *bufio.Reader) (num int, err error) {
	if num, err = readNumber(reader); err != nil {
		return
	}
	if uint64(num) > geometry2D.MaxVertices {
		err = fmt.Errorf("count %d exceeds the maximum of %d", num, uint64(geometry2D.MaxVertices))
	}
	return
}

func ParseSU2(r io.Reader) (grid *SU2Grid, err error) {
	var (
		reader = bufio.NewReader(r)
	)
	grid = &SU2Grid{}
	if grid.Dimensionality, err = readNumber(reader); err != nil {
		return nil, err
	}
	if grid.Dimensionality != 2 {
		return nil, fmt.Errorf("only 2 dimensional grids are supported, have %d", grid.Dimensionality)
	}
	if grid.EToV, err = readElements(reader); err != nil {
		return nil, err
	}
	if grid.VX, grid.VY, err = readVertices(reader); err != nil {
		return nil, err
	}
	if grid.Markers, err = readMarkers(reader); err != nil {
		return nil, err
	}
	Nv := grid.VX.Len()
	for k, tri := range grid.EToV {
		for _, v := range tri {
			if v < 0 || v >= Nv {
				return nil, fmt.Errorf("element %d references vertex %d, have %d vertices", k, v, Nv)
			}
		}
	}
	return
}

func ReadSU2(filename string, verbose bool) (grid *SU2Grid, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading SU2 file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	if grid, err = ParseSU2(file); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", filename, err)
	}
	if verbose {
		fmt.Printf("Read %d elements, %d vertices and %d markers\n",
			len(grid.EToV), grid.VX.Len(), len(grid.Markers))
	}
	return
}
