package stamper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixCompose(t *testing.T) {
	m := Identity().Multiply(Translate(10, 20)).Multiply(Scale(2, 3))

	x, y := m.Transform(1, 1)
	assert.InDelta(t, 22.0, x, 1e-9)
	assert.InDelta(t, 63.0, y, 1e-9)
}

func TestStampMatrixUnrotated(t *testing.T) {
	// No page rotation: plain scale-and-place, bottom-left corner of the
	// unit square lands on the merge corner.
	m := StampMatrix(306, 752.4, 612, 79.2, 0)

	x, y := m.Transform(0, 0)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 712.8, y, 1e-9)

	x, y = m.Transform(1, 1)
	assert.InDelta(t, 612.0, x, 1e-9)
	assert.InDelta(t, 792.0, y, 1e-9)
}

func TestStampMatrixCenterPivot(t *testing.T) {
	// The unit-square center must land on (cx,cy) for every page rotation:
	// the rotation pivots around the center, never a corner.
	for _, rotation := range []int{0, 90, 180, 270} {
		m := StampMatrix(520.2, 633.6, 158.4, 61.2, rotation)

		x, y := m.Transform(0.5, 0.5)
		assert.InDelta(t, 520.2, x, 1e-9, "rotation %d", rotation)
		assert.InDelta(t, 633.6, y, 1e-9, "rotation %d", rotation)
	}
}

func TestStampMatrixCounterRotates(t *testing.T) {
	// Page rotated 90 clockwise: the stamp counter-rotates by -90, so the
	// image's bottom-left corner ends up above-left of the center.
	cx, cy, w, h := 100.0, 200.0, 40.0, 20.0
	m := StampMatrix(cx, cy, w, h, 90)

	x, y := m.Transform(0, 0)
	assert.InDelta(t, cx-h/2, x, 1e-9)
	assert.InDelta(t, cy+w/2, y, 1e-9)

	x, y = m.Transform(1, 1)
	assert.InDelta(t, cx+h/2, x, 1e-9)
	assert.InDelta(t, cy-w/2, y, 1e-9)
}
