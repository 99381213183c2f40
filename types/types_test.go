package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Test packed int for edge labeling
		en := NewEdgeKey([2]int{1, 0})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))
		assert.Equal(t, [2]int{1, 0}, en.GetVertices(true))

		en = NewEdgeKey([2]int{0, 1})
		assert.Equal(t, EdgeKey(1<<32), en)
		assert.Equal(t, [2]int{0, 1}, en.GetVertices(false))

		en = NewEdgeKey([2]int{100, 1})
		assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
		assert.Equal(t, [2]int{1, 100}, en.GetVertices(false))
		assert.Equal(t, "[1,100]", en.String())

		// Test maximum/minimum indices
		en = NewEdgeKey([2]int{1, 1<<32 - 1})
		assert.Equal(t, EdgeKey((1<<32-1)<<32+1), en)
		assert.Equal(t, [2]int{1, 1<<32 - 1}, en.GetVertices(false))
	}
	{ // Out of range vertices can not be packed
		assert.Panics(t, func() { NewEdgeKey([2]int{-1, 0}) })
		assert.Panics(t, func() { NewEdgeKey([2]int{0, 1 << 33}) })
	}
	{ // Sorting
		keys := EdgeKeys{
			NewEdgeKey([2]int{3, 4}),
			NewEdgeKey([2]int{0, 1}),
			NewEdgeKey([2]int{2, 1}),
		}
		sort.Sort(keys)
		assert.Equal(t, [2]int{0, 1}, keys[0].GetVertices(false))
		assert.Equal(t, [2]int{1, 2}, keys[1].GetVertices(false))
		assert.Equal(t, [2]int{3, 4}, keys[2].GetVertices(false))
	}
}
