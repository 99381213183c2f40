package geometry2D

import "math"

// TriangleArea is the shoelace area of the triangle a-b-c, independent of
// vertex order and zero for collinear points
func TriangleArea(a, b, c Point) float64 {
	var (
		xa, ya = a.X[0], a.X[1]
		xb, yb = b.X[0], b.X[1]
		xc, yc = c.X[0], c.X[1]
	)
	return 0.5 * math.Abs(xa*(yb-yc)+xb*(yc-ya)+xc*(ya-yb))
}
