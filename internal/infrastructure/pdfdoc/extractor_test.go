package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectOrientation(t *testing.T) {
	tests := []struct {
		name         string
		width        float64
		height       float64
		rotation     int
		imgW, imgH   int
		wantW, wantH float64
		wantRotation int
		wantFlag     bool
	}{
		{
			// Portrait page rotated 90 with a landscape scan image: the scan
			// was stored pre-rotated, so the declared rotation would rotate
			// it twice.
			name:  "pre-rotated landscape scan",
			width: 612, height: 792, rotation: 90, imgW: 3300, imgH: 2550,
			wantW: 792, wantH: 612, wantRotation: 0, wantFlag: true,
		},
		{
			name:  "pre-rotated scan at 270",
			width: 612, height: 792, rotation: 270, imgW: 3300, imgH: 2550,
			wantW: 792, wantH: 612, wantRotation: 0, wantFlag: true,
		},
		{
			// Image orientation matches the unrotated page: rotation is
			// genuine, nothing to correct.
			name:  "consistent rotated page",
			width: 612, height: 792, rotation: 90, imgW: 2550, imgH: 3300,
			wantW: 612, wantH: 792, wantRotation: 90, wantFlag: false,
		},
		{
			name:  "no rotation declared",
			width: 612, height: 792, rotation: 0, imgW: 3300, imgH: 2550,
			wantW: 612, wantH: 792, wantRotation: 0, wantFlag: false,
		},
		{
			name:  "square image is ambiguous",
			width: 612, height: 792, rotation: 90, imgW: 3000, imgH: 3000,
			wantW: 612, wantH: 792, wantRotation: 90, wantFlag: false,
		},
		{
			name:  "square page is ambiguous",
			width: 612, height: 612, rotation: 90, imgW: 3300, imgH: 2550,
			wantW: 612, wantH: 612, wantRotation: 90, wantFlag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, rotation, flag := correctOrientation(tt.width, tt.height, tt.rotation, tt.imgW, tt.imgH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantRotation, rotation)
			assert.Equal(t, tt.wantFlag, flag)
		})
	}
}
