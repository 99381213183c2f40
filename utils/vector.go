package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) Vector {
	if N == 0 {
		return Vector{&mat.VecDense{}}
	}
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0]))
			panic(err)
		}
		return Vector{mat.NewVecDense(N, dataO[0])}
	}
	return Vector{mat.NewVecDense(N, make([]float64, N))}
}

func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) Data() []float64     { return v.V.RawVector().Data }

// Linspace fills the receiver with evenly spaced values over [begin, end],
// endpoints included. A single element vector holds begin.
func (v Vector) Linspace(begin, end float64) Vector { // Changes receiver
	var (
		data = v.Data()
	)
	switch len(data) {
	case 0:
	case 1:
		data[0] = begin
	default:
		floats.Span(data, begin, end)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.Data()
	)
	if len(data) == 0 {
		return
	}
	return floats.Min(data)
}

func (v Vector) Max() (max float64) {
	var (
		data = v.Data()
	)
	if len(data) == 0 {
		return
	}
	return floats.Max(data)
}
