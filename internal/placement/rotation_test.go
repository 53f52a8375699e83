package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in     int
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{90, 90, true},
		{180, 180, true},
		{270, 270, true},
		{360, 0, true},
		{450, 90, true},
		{-90, 270, true},
		{-270, 90, true},
		{720, 0, true},
		{45, 0, false},
		{-17, 0, false},
	}

	for _, tt := range tests {
		got, ok := NormalizeRotation(tt.in)
		assert.Equal(t, tt.want, got, "input %d", tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %d", tt.in)
	}
}

func TestViewportSize(t *testing.T) {
	w, h := ViewportSize(612, 792, 0)
	assert.Equal(t, 612.0, w)
	assert.Equal(t, 792.0, h)

	w, h = ViewportSize(612, 792, 180)
	assert.Equal(t, 612.0, w)
	assert.Equal(t, 792.0, h)

	w, h = ViewportSize(612, 792, 90)
	assert.Equal(t, 792.0, w)
	assert.Equal(t, 612.0, h)

	w, h = ViewportSize(612, 792, 270)
	assert.Equal(t, 792.0, w)
	assert.Equal(t, 612.0, h)
}
