package stamper

import "math"

// Matrix is a PDF affine transform in the 6-element content-stream form
// [a b c d e f], applied to row vectors: x' = a·x + c·y + e,
// y' = b·x + d·y + f.
type Matrix [6]float64

func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate builds a counter-clockwise rotation by the given angle in radians.
func Rotate(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// Multiply composes m with o: the result applies m first, then o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// StampMatrix maps the unit square of a signature image XObject onto its
// final placement: scaled to (w,h), rotated around its own center by the
// negative of the page rotation (keeping the signature visually upright on
// a rotated page), and centered at (cx,cy). Rotating around the shared
// center is what keeps the stamped output aligned with the on-screen
// overlay; rotating around a corner would shift the stamp whenever the
// page is rotated.
func StampMatrix(cx, cy, w, h float64, pageRotation int) Matrix {
	angle := -float64(pageRotation) * math.Pi / 180

	return Scale(w, h).
		Multiply(Translate(-w/2, -h/2)).
		Multiply(Rotate(angle)).
		Multiply(Translate(cx, cy))
}
