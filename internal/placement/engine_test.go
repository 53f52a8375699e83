package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docstamp/internal/domain/entity"
)

func letterPage(rotation int) entity.PageGeometry {
	return entity.PageGeometry{PageNumber: 1, Width: 612, Height: 792, Rotation: rotation}
}

func relative() entity.StampConfig {
	return entity.StampConfig{Strategy: entity.StrategyRelative}
}

func TestPlaceRotationCoverage(t *testing.T) {
	// Fixed relative box on a letter page; expected centers follow the
	// documented composed mapping for each canonical rotation.
	box := entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1}

	tests := []struct {
		rotation       int
		wantVw, wantVh float64
		wantCx, wantCy float64
		wantW, wantH   float64
	}{
		{rotation: 0, wantVw: 612, wantVh: 792, wantCx: 122.4, wantCy: 673.2, wantW: 122.4, wantH: 79.2},
		{rotation: 90, wantVw: 792, wantVh: 612, wantCx: 520.2, wantCy: 633.6, wantW: 158.4, wantH: 61.2},
		{rotation: 180, wantVw: 612, wantVh: 792, wantCx: 489.6, wantCy: 118.8, wantW: 122.4, wantH: 79.2},
		// 270 intentionally matches 90: the stamp is counter-rotated around
		// the same center at draw time.
		{rotation: 270, wantVw: 792, wantVh: 612, wantCx: 520.2, wantCy: 633.6, wantW: 158.4, wantH: 61.2},
	}

	for _, tt := range tests {
		res, err := Place(letterPage(tt.rotation), box, relative())
		require.NoError(t, err, "rotation %d", tt.rotation)

		assert.InDelta(t, tt.wantVw, res.Overlay.ViewportWidth, 1e-9, "rotation %d viewport width", tt.rotation)
		assert.InDelta(t, tt.wantVh, res.Overlay.ViewportHeight, 1e-9, "rotation %d viewport height", tt.rotation)
		assert.InDelta(t, tt.wantCx, res.Merge.Cx, 1e-9, "rotation %d cx", tt.rotation)
		assert.InDelta(t, tt.wantCy, res.Merge.Cy, 1e-9, "rotation %d cy", tt.rotation)
		assert.InDelta(t, tt.wantW, res.Merge.W, 1e-9, "rotation %d w", tt.rotation)
		assert.InDelta(t, tt.wantH, res.Merge.H, 1e-9, "rotation %d h", tt.rotation)
	}
}

func TestPlaceFullWidthSignatureUnrotated(t *testing.T) {
	res, err := Place(letterPage(0), entity.RelativeBox{X: 0, Y: 0, W: 1, H: 0.1}, relative())
	require.NoError(t, err)

	assert.InDelta(t, 612.0, res.Overlay.W, 1e-9)
	assert.InDelta(t, 79.2, res.Overlay.H, 1e-9)
	assert.InDelta(t, 306.0, res.Merge.Cx, 1e-9)
	assert.InDelta(t, 752.4, res.Merge.Cy, 1e-9)
	assert.InDelta(t, 0.0, res.Merge.X, 1e-9)
	assert.InDelta(t, 712.8, res.Merge.Y, 1e-9)
}

func TestPlaceRoundTripUnrotated(t *testing.T) {
	// At rotation 0 the merge output must invert back to the viewer box
	// exactly (no clamping, boxes well inside the page).
	boxes := []entity.RelativeBox{
		{X: 0.1, Y: 0.1, W: 0.2, H: 0.1},
		{X: 0.35, Y: 0.6, W: 0.25, H: 0.05},
		{X: 0.0, Y: 0.0, W: 0.5, H: 0.5},
	}

	geom := letterPage(0)
	for _, box := range boxes {
		res, err := Place(geom, box, relative())
		require.NoError(t, err)

		vx := res.Merge.X
		vy := geom.Height - res.Merge.Y - res.Merge.H

		assert.InDelta(t, box.X*geom.Width, vx, 1e-9)
		assert.InDelta(t, box.Y*geom.Height, vy, 1e-9)
		assert.InDelta(t, box.W*geom.Width, res.Merge.W, 1e-9)
		assert.InDelta(t, box.H*geom.Height, res.Merge.H, 1e-9)
	}
}

func TestPlaceCenterCornerConsistency(t *testing.T) {
	// Center and bottom-left corner must agree after clamping, for every
	// rotation, including boxes that get clamped at the page edge.
	boxes := []entity.RelativeBox{
		{X: 0.1, Y: 0.1, W: 0.2, H: 0.1},
		{X: 0.95, Y: 0.95, W: 0.2, H: 0.2}, // pushed past both edges
		{X: 0, Y: 0, W: 1, H: 1},
	}

	for _, rotation := range []int{0, 90, 180, 270} {
		for _, box := range boxes {
			res, err := Place(letterPage(rotation), box, relative())
			require.NoError(t, err)

			assert.InDelta(t, res.Merge.Cx-res.Merge.W/2, res.Merge.X, 1e-9)
			assert.InDelta(t, res.Merge.Cy-res.Merge.H/2, res.Merge.Y, 1e-9)
		}
	}
}

func TestPlaceClampsAtPageEdge(t *testing.T) {
	// Extends past the right edge: clamp must keep the stamp on the page
	// without ever producing a negative size.
	res, err := Place(letterPage(0), entity.RelativeBox{X: 0.95, Y: 0.1, W: 0.2, H: 0.1}, relative())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Merge.X, 0.0)
	assert.LessOrEqual(t, res.Merge.W, letterPage(0).Width-res.Merge.X+1e-9)
	assert.Greater(t, res.Merge.W, 0.0)
	assert.Greater(t, res.Merge.H, 0.0)
}

func TestPlaceOversizedBoxShrinksToPage(t *testing.T) {
	res, err := Place(letterPage(0), entity.RelativeBox{X: 0, Y: 0, W: 1, H: 1},
		entity.StampConfig{Strategy: entity.StrategyFixed, FixedSize: &entity.StampSize{W: 10000, H: 10000}})
	require.NoError(t, err)

	assert.InDelta(t, 612.0, res.Merge.W, 1e-9)
	assert.InDelta(t, 792.0, res.Merge.H, 1e-9)
	assert.InDelta(t, 0.0, res.Merge.X, 1e-9)
	assert.InDelta(t, 0.0, res.Merge.Y, 1e-9)
}

func TestPlaceFixedSize(t *testing.T) {
	// Fixed strategy: stamp drawn at the configured size, centered off the
	// box's top-left corner plus half the resolved size.
	cfg := entity.StampConfig{Strategy: entity.StrategyFixed, FixedSize: &entity.StampSize{W: 150, H: 50}}
	res, err := Place(letterPage(0), entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.5, H: 0.5}, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 150.0, res.Overlay.W, 1e-9)
	assert.InDelta(t, 50.0, res.Overlay.H, 1e-9)
	assert.InDelta(t, 61.2+75, res.Merge.Cx, 1e-9)
	assert.InDelta(t, 792-(79.2+25), res.Merge.Cy, 1e-9)
	assert.InDelta(t, 150.0, res.Merge.W, 1e-9)
	assert.InDelta(t, 50.0, res.Merge.H, 1e-9)
}

func TestPlaceFixedWithoutSizeErrors(t *testing.T) {
	_, err := Place(letterPage(0), entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1},
		entity.StampConfig{Strategy: entity.StrategyFixed})
	assert.Error(t, err)
}

func TestPlaceUnknownStrategyErrors(t *testing.T) {
	_, err := Place(letterPage(0), entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1},
		entity.StampConfig{Strategy: "stretchy"})
	assert.Error(t, err)
}

func TestPlaceNonCanonicalRotationFallsBackToZero(t *testing.T) {
	geom := letterPage(0)
	geom.Rotation = 45

	res, err := Place(geom, entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1}, relative())
	require.NoError(t, err)

	want, err := Place(letterPage(0), entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1}, relative())
	require.NoError(t, err)
	assert.Equal(t, want.Merge, res.Merge)
}

func TestPlaceLogLine(t *testing.T) {
	res, err := Place(letterPage(90), entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1}, relative())
	require.NoError(t, err)

	assert.Contains(t, res.Log, "page=1")
	assert.Contains(t, res.Log, "rotation=90")
	assert.Contains(t, res.Log, "viewport=792.0x612.0")
}
