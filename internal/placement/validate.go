package placement

import (
	"fmt"

	"docstamp/internal/domain/entity"
)

// Validate pre-checks placement inputs and reports the first problem found.
// It never panics or errors: callers decide whether to abort on an invalid
// result or call Place anyway and accept the boundary clamp as the only
// safety net. Rotation is expected to be already normalized (extractor
// output), so any value outside the canonical four is rejected here.
func Validate(geom entity.PageGeometry, box entity.RelativeBox, cfg entity.StampConfig) entity.ValidationResult {
	if geom.PageNumber < 1 {
		return invalid("page_number must be >= 1, got %d", geom.PageNumber)
	}
	if geom.Width <= 0 || geom.Height <= 0 {
		return invalid("page dimensions must be positive, got %gx%g", geom.Width, geom.Height)
	}
	if _, ok := canonical(geom.Rotation); !ok {
		return invalid("rotation must be one of 0, 90, 180, 270, got %d", geom.Rotation)
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"rx", box.X},
		{"ry", box.Y},
		{"rw", box.W},
		{"rh", box.H},
	} {
		if f.value < 0 || f.value > 1 {
			return invalid("%s must be in [0,1], got %g", f.name, f.value)
		}
	}
	if box.X+box.W > 1 {
		return invalid("box exceeds viewer width: rx+rw = %g > 1", box.X+box.W)
	}
	if box.Y+box.H > 1 {
		return invalid("box exceeds viewer height: ry+rh = %g > 1", box.Y+box.H)
	}

	switch cfg.Strategy {
	case entity.StrategyRelative:
	case entity.StrategyFixed:
		if cfg.FixedSize == nil {
			return invalid("fixed strategy requires fixed_size")
		}
		if cfg.FixedSize.W <= 0 || cfg.FixedSize.H <= 0 {
			return invalid("fixed_size must be positive, got %gx%g", cfg.FixedSize.W, cfg.FixedSize.H)
		}
	default:
		return invalid("unknown stamp strategy %q", cfg.Strategy)
	}

	return entity.ValidationResult{Valid: true}
}

func canonical(rotation int) (int, bool) {
	switch rotation {
	case 0, 90, 180, 270:
		return rotation, true
	}
	return 0, false
}

func invalid(format string, args ...interface{}) entity.ValidationResult {
	return entity.ValidationResult{Valid: false, Error: fmt.Sprintf(format, args...)}
}
