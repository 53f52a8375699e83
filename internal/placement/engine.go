package placement

import (
	"fmt"
	"math"

	"docstamp/internal/domain/entity"
)

// minStampDim is the floor applied when clamping shrinks a stamp: the box
// may be squeezed at a page edge but never becomes degenerate.
const minStampDim = 1.0

// Result is the outcome of one placement computation. Overlay positions the
// live preview in viewer space, Merge positions the permanent stamp in PDF
// space, and Log is a one-line diagnostic the caller may emit or discard.
type Result struct {
	Overlay entity.OverlayResult
	Merge   entity.MergeResult
	Log     string
}

// Place is the single source of truth for signature placement: both the
// interactive overlay and the permanent stamp are derived from the same
// computation so the two renderings agree for every rotation, aspect ratio
// and zoom.
//
// It does not re-validate inputs (see Validate); rotation is normalized
// defensively, out-of-range boxes are handled only by the boundary clamp.
// It errors solely on contract violations: a fixed strategy without a fixed
// size, or an unrecognized strategy.
func Place(geom entity.PageGeometry, box entity.RelativeBox, cfg entity.StampConfig) (*Result, error) {
	rotation, ok := NormalizeRotation(geom.Rotation)
	if !ok {
		rotation = 0
	}

	pw, ph := geom.Width, geom.Height
	vw, vh := ViewportSize(pw, ph, rotation)

	// Relative box to viewer-space absolute coordinates (top-left origin).
	vx := box.X * vw
	vy := box.Y * vh
	boxW := box.W * vw
	boxH := box.H * vh

	w, h, err := resolveStampSize(cfg, boxW, boxH)
	if err != nil {
		return nil, err
	}

	// Viewer-space center of the stamp.
	cvx := vx + w/2
	cvy := vy + h/2

	cx, cy, err := centerToPageSpace(cvx, cvy, pw, ph, rotation)
	if err != nil {
		return nil, err
	}

	merge := clampToPage(cx, cy, w, h, pw, ph)

	overlay := entity.OverlayResult{
		ViewportWidth:  vw,
		ViewportHeight: vh,
		X:              vx,
		Y:              vy,
		W:              w,
		H:              h,
	}

	log := fmt.Sprintf(
		"placement page=%d rotation=%d page=%.0fx%.0f viewport=%.1fx%.1f viewerBox=(%.2f,%.2f %.2fx%.2f) center=(%.2f,%.2f) stamp=%.2fx%.2f",
		geom.PageNumber, rotation, pw, ph, vw, vh, vx, vy, boxW, boxH, merge.Cx, merge.Cy, merge.W, merge.H,
	)

	return &Result{Overlay: overlay, Merge: merge, Log: log}, nil
}

func resolveStampSize(cfg entity.StampConfig, boxW, boxH float64) (float64, float64, error) {
	switch cfg.Strategy {
	case entity.StrategyRelative, "":
		return boxW, boxH, nil
	case entity.StrategyFixed:
		if cfg.FixedSize == nil || cfg.FixedSize.W <= 0 || cfg.FixedSize.H <= 0 {
			return 0, 0, fmt.Errorf("fixed stamp strategy requires a positive fixed size")
		}
		return cfg.FixedSize.W, cfg.FixedSize.H, nil
	}
	return 0, 0, fmt.Errorf("unsupported stamp strategy %q", cfg.Strategy)
}

// centerToPageSpace maps a viewer-space center (top-left origin, y-down,
// rotation-aware axes) into PDF page space (bottom-left origin, y-up,
// unrotated axes). The mapping composes the page rotation with the axis
// flip. The 90 and 270 cases share a formula: the stamp is counter-rotated
// around this same center when drawn, which is where the two diverge.
func centerToPageSpace(cvx, cvy, pw, ph float64, rotation int) (float64, float64, error) {
	switch rotation {
	case 0:
		return cvx, ph - cvy, nil
	case 90:
		return pw - cvy, ph - cvx, nil
	case 180:
		return pw - cvx, cvy, nil
	case 270:
		return pw - cvy, ph - cvx, nil
	}
	return 0, 0, fmt.Errorf("unrecognized normalized rotation %d", rotation)
}

// clampToPage confines the stamp to the page, shrinking it down to
// minStampDim if it cannot fit, and recomputes the center from the clamped
// bottom-left corner so center and corner always agree exactly.
func clampToPage(cx, cy, w, h, pw, ph float64) entity.MergeResult {
	w = math.Min(w, pw)
	if w < minStampDim {
		w = minStampDim
	}
	h = math.Min(h, ph)
	if h < minStampDim {
		h = minStampDim
	}

	x := clamp(cx-w/2, 0, pw-w)
	y := clamp(cy-h/2, 0, ph-h)

	return entity.MergeResult{
		Cx: x + w/2,
		Cy: y + h/2,
		W:  w,
		H:  h,
		X:  x,
		Y:  y,
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
