package geometry2D

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gotrimesh/types"
)

type Connectivity struct {
	// EToE[k][f] is the element sharing face f of element k, or -1 on the
	// boundary. Face f joins local vertices f and (f+1)%3
	EToE  [][3]int
	Edges map[types.EdgeKey][]int // Elements attached to each unique edge
	// BoundaryEdges are the edges with a single attached element, sorted
	BoundaryEdges types.EdgeKeys
}

func faceVertices(tri Triangle, face int) [2]int {
	return [2]int{tri[face], tri[(face+1)%3]}
}

func Connect2D(rm *RectMesh) (c *Connectivity) {
	var (
		K  = rm.NumTriangles()
		Nv = rm.NumVertices()
	)
	c = &Connectivity{
		EToE:  make([][3]int, K),
		Edges: make(map[types.EdgeKey][]int, 3*K),
	}
	for k := range c.EToE {
		c.EToE[k] = [3]int{-1, -1, -1}
	}
	for k, tri := range rm.EToV {
		for face := 0; face < 3; face++ {
			key := types.NewEdgeKey(faceVertices(tri, face))
			c.Edges[key] = append(c.Edges[key], k)
		}
	}
	for key, elements := range c.Edges {
		if len(elements) == 1 {
			c.BoundaryEdges = append(c.BoundaryEdges, key)
		}
	}
	sort.Sort(c.BoundaryEdges)
	if K == 0 {
		return
	}
	// Element to element connections from the incidence product EToV * EToV^T,
	// an off diagonal entry of 2 means two shared vertices, i.e. a shared face
	SpEToV_Tmp := sparse.NewDOK(K, Nv)
	for k, tri := range rm.EToV {
		for _, v := range tri {
			SpEToV_Tmp.Set(k, v, 1)
		}
	}
	SpEToV := SpEToV_Tmp.ToCSR()
	SpEToE := sparse.NewCSR(K, K, nil, nil, nil)
	SpEToE.Mul(SpEToV, SpEToV.T())
	SpEToE.DoNonZero(func(k1, k2 int, shared float64) {
		if k1 == k2 || shared != 2 {
			return
		}
		tri1, tri2 := rm.EToV[k1], rm.EToV[k2]
		for face := 0; face < 3; face++ {
			fv := faceVertices(tri1, face)
			if tri2.Contains(fv[0]) && tri2.Contains(fv[1]) {
				c.EToE[k1][face] = k2
			}
		}
	})
	return
}

func (tri Triangle) Contains(v int) bool {
	return tri[0] == v || tri[1] == v || tri[2] == v
}

type Stats struct {
	NumVertices, NumTriangles   int
	NumEdges, NumBoundaryEdges  int
	TotalArea, MinArea, MaxArea float64
}

func ComputeStats(rm *RectMesh) (st Stats) {
	var (
		K     = rm.NumTriangles()
		areas = make([]float64, K)
		c     = Connect2D(rm)
	)
	for k := 0; k < K; k++ {
		areas[k] = rm.Area(k)
	}
	st = Stats{
		NumVertices:      rm.NumVertices(),
		NumTriangles:     K,
		NumEdges:         len(c.Edges),
		NumBoundaryEdges: len(c.BoundaryEdges),
	}
	if K != 0 {
		st.TotalArea = floats.Sum(areas)
		st.MinArea, st.MaxArea = floats.Min(areas), floats.Max(areas)
	}
	return
}

// EulerCharacteristic is V - E + F, which is 1 for a triangulated square
func (st Stats) EulerCharacteristic() int {
	return st.NumVertices - st.NumEdges + st.NumTriangles
}

func (st Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "[%d]\t\t\t\t= Vertices\n", st.NumVertices)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Triangles\n", st.NumTriangles)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Edges\n", st.NumEdges)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Boundary Edges\n", st.NumBoundaryEdges)
	fmt.Fprintf(w, "%8.5f\t\t= Total Area\n", st.TotalArea)
	fmt.Fprintf(w, "%8.5f\t\t= Min Area\n", st.MinArea)
	fmt.Fprintf(w, "%8.5f\t\t= Max Area\n", st.MaxArea)
}

// AreaIsConsistent reports whether the element areas sum to the bounding box
// area within tol
func (st Stats) AreaIsConsistent(rm *RectMesh, tol float64) bool {
	if st.NumTriangles == 0 {
		return st.TotalArea == 0
	}
	xMin, xMax, yMin, yMax := rm.Bounds()
	return math.Abs(st.TotalArea-(xMax-xMin)*(yMax-yMin)) < tol
}
