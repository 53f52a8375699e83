package placement

// NormalizeRotation reduces a page rotation in degrees to one of the four
// canonical clockwise values 0, 90, 180, 270. The second return value is
// false when the input is not reducible to a multiple of 90; callers should
// fall back to 0 and warn.
func NormalizeRotation(degrees int) (int, bool) {
	n := ((degrees % 360) + 360) % 360
	switch n {
	case 0, 90, 180, 270:
		return n, true
	}
	return 0, false
}

// ViewportSize returns the viewer viewport dimensions for a page: the page
// as displayed on screen, which swaps width/height when the rotation is
// 90 or 270. Relative boxes are interpreted against this space.
func ViewportSize(width, height float64, rotation int) (float64, float64) {
	if rotation == 90 || rotation == 270 {
		return height, width
	}
	return width, height
}
