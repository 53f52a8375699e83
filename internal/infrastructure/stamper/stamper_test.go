package stamper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docstamp/internal/domain/entity"
)

func TestContentOpsUnrotated(t *testing.T) {
	merge := entity.MergeResult{Cx: 306, Cy: 752.4, W: 612, H: 79.2, X: 0, Y: 712.8}

	ops := ContentOps(merge, 0, "Sig0")
	assert.Equal(t, "q 612.00 0.00 0.00 79.20 0.00 712.80 cm /Sig0 Do Q", ops)
}

func TestContentOpsRotatedPage(t *testing.T) {
	merge := entity.MergeResult{Cx: 100, Cy: 200, W: 40, H: 20}

	// Counter-rotation by -90: scale axes swap into the b/c slots.
	ops := ContentOps(merge, 90, "Sig0")
	assert.Contains(t, ops, "cm /Sig0 Do Q")
	assert.Equal(t, "q 0.00 -40.00 20.00 0.00 90.00 220.00 cm /Sig0 Do Q", ops)
}
