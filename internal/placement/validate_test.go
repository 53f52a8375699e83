package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docstamp/internal/domain/entity"
)

func TestValidate(t *testing.T) {
	okGeom := entity.PageGeometry{PageNumber: 1, Width: 612, Height: 792, Rotation: 0}
	okBox := entity.RelativeBox{X: 0.1, Y: 0.1, W: 0.2, H: 0.1}
	okCfg := entity.StampConfig{Strategy: entity.StrategyRelative}

	tests := []struct {
		name  string
		geom  entity.PageGeometry
		box   entity.RelativeBox
		cfg   entity.StampConfig
		valid bool
	}{
		{"valid relative", okGeom, okBox, okCfg, true},
		{"valid fixed", okGeom, okBox, entity.StampConfig{
			Strategy:  entity.StrategyFixed,
			FixedSize: &entity.StampSize{W: 150, H: 50},
		}, true},
		{"page number zero", entity.PageGeometry{PageNumber: 0, Width: 612, Height: 792}, okBox, okCfg, false},
		{"zero width", entity.PageGeometry{PageNumber: 1, Width: 0, Height: 792}, okBox, okCfg, false},
		{"negative height", entity.PageGeometry{PageNumber: 1, Width: 612, Height: -1}, okBox, okCfg, false},
		{"non-canonical rotation", entity.PageGeometry{PageNumber: 1, Width: 612, Height: 792, Rotation: 45}, okBox, okCfg, false},
		{"raw rotation not normalized", entity.PageGeometry{PageNumber: 1, Width: 612, Height: 792, Rotation: 450}, okBox, okCfg, false},
		{"rx out of range", okGeom, entity.RelativeBox{X: 1.5, Y: 0.1, W: 0.2, H: 0.1}, okCfg, false},
		{"negative ry", okGeom, entity.RelativeBox{X: 0.1, Y: -0.1, W: 0.2, H: 0.1}, okCfg, false},
		{"box exceeds right bound", okGeom, entity.RelativeBox{X: 0.9, Y: 0.1, W: 0.3, H: 0.1}, okCfg, false},
		{"box exceeds bottom bound", okGeom, entity.RelativeBox{X: 0.1, Y: 0.95, W: 0.2, H: 0.1}, okCfg, false},
		{"fixed without size", okGeom, okBox, entity.StampConfig{Strategy: entity.StrategyFixed}, false},
		{"fixed with zero size", okGeom, okBox, entity.StampConfig{
			Strategy:  entity.StrategyFixed,
			FixedSize: &entity.StampSize{W: 0, H: 50},
		}, false},
		{"unknown strategy", okGeom, okBox, entity.StampConfig{Strategy: "auto"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.geom, tt.box, tt.cfg)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.NotEmpty(t, res.Error)
			} else {
				assert.Empty(t, res.Error)
			}
		})
	}
}
