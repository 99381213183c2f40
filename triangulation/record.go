package triangulation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/notargets/gotrimesh/geometry2D"
)

const DefaultFileName = "triangulation.json"

// Mesh is the part of a triangulation needed to produce records
type Mesh interface {
	NumTriangles() int
	TriangleIndices(k int) [3]int
	Vertex(i int) geometry2D.Point
}

type VertexEntry struct {
	Index int
	X     [2]float64
}

/*
VertexMap maps vertex indices to coordinates, keeping insertion order so the
serialized document is reproducible. It is written as a JSON object keyed by
the decimal vertex index:

	{"0": [0, 0], "1": [1, 0], "3": [1, 1]}
*/
type VertexMap []VertexEntry

// Set adds or replaces the coordinates for index, a replaced entry keeps its
// original position
func (vm *VertexMap) Set(index int, x [2]float64) {
	for i := range *vm {
		if (*vm)[i].Index == index {
			(*vm)[i].X = x
			return
		}
	}
	*vm = append(*vm, VertexEntry{Index: index, X: x})
}

func (vm VertexMap) Get(index int) (x [2]float64, ok bool) {
	for _, ve := range vm {
		if ve.Index == index {
			return ve.X, true
		}
	}
	return
}

func (vm VertexMap) Points() (pts []geometry2D.Point) {
	pts = make([]geometry2D.Point, len(vm))
	for i, ve := range vm {
		pts[i] = geometry2D.Point{X: ve.X}
	}
	return
}

func (vm VertexMap) MarshalJSON() ([]byte, error) {
	var (
		buf bytes.Buffer
	)
	buf.WriteByte('{')
	for i, ve := range vm {
		if i != 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(ve.Index)))
		buf.WriteByte(':')
		coords, err := json.Marshal(ve.X)
		if err != nil {
			return nil, err
		}
		buf.Write(coords)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (vm *VertexMap) UnmarshalJSON(data []byte) (err error) {
	var (
		dec = json.NewDecoder(bytes.NewReader(data))
		tok json.Token
	)
	if tok, err = dec.Token(); err != nil {
		return
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("vertex map must be a JSON object, have %v", tok)
	}
	*vm = (*vm)[:0]
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return
		}
		key, _ := tok.(string)
		var index int
		if index, err = strconv.Atoi(key); err != nil {
			return fmt.Errorf("vertex key [%s] is not an integer index: %w", key, err)
		}
		var coords []float64
		if err = dec.Decode(&coords); err != nil {
			return
		}
		if len(coords) != 2 {
			return fmt.Errorf("vertex %d must have two coordinates, have %d", index, len(coords))
		}
		vm.Set(index, [2]float64{coords[0], coords[1]})
	}
	_, err = dec.Token()
	return
}

type Record struct {
	Triangle int       `json:"Triangle"`
	Vertices VertexMap `json:"Vertices"`
	Area     float64   `json:"Area"`
}

func NewRecords(m Mesh) (records []Record) {
	var (
		K = m.NumTriangles()
	)
	records = make([]Record, K)
	for k := 0; k < K; k++ {
		var pts [3]geometry2D.Point
		rec := Record{
			Triangle: k,
			Vertices: make(VertexMap, 0, 3),
		}
		for n, ind := range m.TriangleIndices(k) {
			pts[n] = m.Vertex(ind)
			rec.Vertices.Set(ind, pts[n].X)
		}
		rec.Area = geometry2D.TriangleArea(pts[0], pts[1], pts[2])
		records[k] = rec
	}
	return
}

// Marshal renders records as an indented JSON array, an empty set of records
// is written as []
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return json.MarshalIndent(records, "", "    ")
}

var (
	ErrMalformedRecord = errors.New("malformed triangle record")
	ErrAreaMismatch    = errors.New("stored area does not match vertex coordinates")
)

// Verify recomputes every record's area from its embedded coordinates
func Verify(records []Record, tol float64) (err error) {
	for i, rec := range records {
		if rec.Triangle != i {
			return fmt.Errorf("%w: record %d is labeled triangle %d", ErrMalformedRecord, i, rec.Triangle)
		}
		if len(rec.Vertices) != 3 {
			return fmt.Errorf("%w: triangle %d has %d vertices", ErrMalformedRecord, i, len(rec.Vertices))
		}
		pts := rec.Vertices.Points()
		area := geometry2D.TriangleArea(pts[0], pts[1], pts[2])
		if diff := area - rec.Area; diff > tol || diff < -tol {
			return fmt.Errorf("%w: triangle %d stores %v, coordinates give %v",
				ErrAreaMismatch, i, rec.Area, area)
		}
	}
	return
}
