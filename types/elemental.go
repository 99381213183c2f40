package types

import (
	"fmt"
	"math"
)

/*
EdgeKey is an always positive number that stores an edge's vertices as indices in a way that can be compared
An edge between vertices [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// Packs two vertex indices into the low and high 32 bits of a uint64
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices(rev bool) (verts [2]int) {
	var (
		enTmp EdgeKey
	)
	enTmp = ek >> 32
	verts[1] = int(enTmp)
	verts[0] = int(ek - enTmp*(1<<32))
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (ek EdgeKey) String() string {
	verts := ek.GetVertices(false)
	return fmt.Sprintf("[%d,%d]", verts[0], verts[1])
}

// EdgeKeys sorts ascending by packed value, which orders edges by their
// larger vertex first and smaller vertex second
type EdgeKeys []EdgeKey

func (ek EdgeKeys) Len() int           { return len(ek) }
func (ek EdgeKeys) Less(i, j int) bool { return ek[i] < ek[j] }
func (ek EdgeKeys) Swap(i, j int)      { ek[i], ek[j] = ek[j], ek[i] }
