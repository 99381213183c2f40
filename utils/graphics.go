package utils

import (
	"image/color"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Blue:
		c = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	return
}

// ArraysToXY interleaves two coordinate arrays into x0,y0,x1,y1,... single
// precision pairs, the layout used by the avs chart geometry
func ArraysToXY(r1, r2 []float64) (xy []float32) {
	xy = make([]float32, 2*len(r1))
	for i := range r1 {
		xy[2*i] = float32(r1[i])
		xy[2*i+1] = float32(r2[i])
	}
	return
}
