package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/avs/geometry"

	"github.com/notargets/gotrimesh/utils"
)

var ErrInvalidArgument = errors.New("invalid argument")

// MaxVertices keeps every vertex index packable into a types.EdgeKey
const MaxVertices = math.MaxUint32

type Point struct {
	X [2]float64
}

// Triangle holds three vertex indices into the mesh vertex set
type Triangle [3]int

type RectMeshConfig struct {
	NumXElements, NumYElements int
}

/*
RectMesh is a uniform triangulation of the unit square.

Vertices are stored row-major: all vertices of one y-row are contiguous and
rows are ordered by increasing y, so vertex (col, row) has index
col + row*(NumXElements+1).
*/
type RectMesh struct {
	NumXElements, NumYElements int
	VX, VY                     utils.Vector
	EToV                       []Triangle
}

func NewRectMeshNxNy(nx, ny int) (rm *RectMesh, err error) {
	return NewRectMesh(RectMeshConfig{NumXElements: nx, NumYElements: ny})
}

func NewRectMesh(cfg RectMeshConfig) (rm *RectMesh, err error) {
	var (
		nx, ny     = cfg.NumXElements, cfg.NumYElements
		numX, numY = nx + 1, ny + 1
	)
	if nx < 0 || ny < 0 {
		err = fmt.Errorf("%w: element counts must not be negative, have nx = %d, ny = %d",
			ErrInvalidArgument, nx, ny)
		return
	}
	if uint64(numX) > MaxVertices || uint64(numY) > MaxVertices ||
		uint64(numX)*uint64(numY) > MaxVertices {
		err = fmt.Errorf("%w: %d x %d elements exceeds the maximum of %d vertices",
			ErrInvalidArgument, nx, ny, uint64(MaxVertices))
		return
	}
	rm = &RectMesh{
		NumXElements: nx,
		NumYElements: ny,
	}
	rm.VX, rm.VY = rectVertices(numX, numY)
	rm.EToV = rectTriangles(nx, ny)
	return
}

func rectVertices(numX, numY int) (VX, VY utils.Vector) {
	var (
		Nv = numX * numY
		x  = utils.NewVector(numX).Linspace(0, 1).Data()
		y  = utils.NewVector(numY).Linspace(0, 1).Data()
	)
	VX, VY = utils.NewVector(Nv), utils.NewVector(Nv)
	vxD, vyD := VX.Data(), VY.Data()
	for j, yv := range y {
		for i, xv := range x {
			ind := i + j*numX
			vxD[ind], vyD[ind] = xv, yv
		}
	}
	return
}

func rectTriangles(nx, ny int) (EToV []Triangle) {
	var (
		numX = nx + 1
		// The first and the last cell are split along v0-v3, all others along v1-v2
		lastDiagonal = nx + ny - 2
	)
	EToV = make([]Triangle, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v0 := i + j*numX
			v1 := v0 + 1
			v2 := v0 + numX
			v3 := v2 + 1
			if i+j == 0 || i+j == lastDiagonal {
				EToV = append(EToV, Triangle{v0, v1, v3}, Triangle{v0, v3, v2})
			} else {
				EToV = append(EToV, Triangle{v0, v1, v2}, Triangle{v1, v3, v2})
			}
		}
	}
	return
}

func (rm *RectMesh) NumVertices() int  { return rm.VX.Len() }
func (rm *RectMesh) NumTriangles() int { return len(rm.EToV) }

func (rm *RectMesh) Vertex(i int) Point {
	return Point{X: [2]float64{rm.VX.AtVec(i), rm.VY.AtVec(i)}}
}

func (rm *RectMesh) TriangleIndices(k int) [3]int { return rm.EToV[k] }

func (rm *RectMesh) TriangleVertices(k int) (pts [3]Point) {
	for n, ind := range rm.EToV[k] {
		pts[n] = rm.Vertex(ind)
	}
	return
}

func (rm *RectMesh) Area(k int) float64 {
	pts := rm.TriangleVertices(k)
	return TriangleArea(pts[0], pts[1], pts[2])
}

func (rm *RectMesh) Bounds() (xMin, xMax, yMin, yMax float64) {
	return rm.VX.Min(), rm.VX.Max(), rm.VY.Min(), rm.VY.Max()
}

// ToGraphMesh converts to the single precision mesh used by the avs charts
func (rm *RectMesh) ToGraphMesh() (gm geometry.TriMesh) {
	var (
		verts = make([][3]int64, len(rm.EToV))
	)
	for k, tri := range rm.EToV {
		for n := 0; n < 3; n++ {
			verts[k][n] = int64(tri[n])
		}
	}
	gm = geometry.NewTriMesh(utils.ArraysToXY(rm.VX.Data(), rm.VY.Data()), verts)
	return
}
