package pdfdoc

import (
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"docstamp/internal/domain/entity"
	"docstamp/internal/placement"
)

// Extractor produces normalized PageGeometry: dimensions from the page's
// effective content box rounded to whole points, rotation reduced to the
// four canonical values, and scanned-orientation mismatches corrected once
// here so the overlay and merge paths downstream see identical values.
type Extractor struct {
	loader *Loader
	logger *zap.Logger
}

func NewExtractor(loader *Loader, logger *zap.Logger) *Extractor {
	return &Extractor{loader: loader, logger: logger}
}

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount(path string) (int, error) {
	ctx, err := e.loader.Open(path)
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

// PageGeometry extracts the geometry of a single 1-based page.
func (e *Extractor) PageGeometry(path string, page int) (*entity.PageGeometry, error) {
	ctx, err := e.loader.Open(path)
	if err != nil {
		return nil, err
	}
	return e.fromContext(ctx, page)
}

// DocumentGeometry extracts the geometry of every page in one pass over the
// document.
func (e *Extractor) DocumentGeometry(path string) ([]entity.PageGeometry, error) {
	ctx, err := e.loader.Open(path)
	if err != nil {
		return nil, err
	}

	pages := make([]entity.PageGeometry, 0, ctx.PageCount)
	for page := 1; page <= ctx.PageCount; page++ {
		geom, err := e.fromContext(ctx, page)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *geom)
	}
	return pages, nil
}

func (e *Extractor) fromContext(ctx *model.Context, page int) (*entity.PageGeometry, error) {
	if page < 1 || page > ctx.PageCount {
		return nil, fmt.Errorf("page %d out of range, document has %d pages", page, ctx.PageCount)
	}

	_, _, inhPAttrs, err := ctx.PageDict(page, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dict for page %d: %w", page, err)
	}

	box := inhPAttrs.MediaBox
	if inhPAttrs.CropBox != nil {
		box = inhPAttrs.CropBox
	}
	if box == nil {
		return nil, fmt.Errorf("page %d has no media box", page)
	}

	// Round away sub-point float jitter (611.99998 -> 612) before any
	// transform sees the dimensions. Round, not truncate.
	width := math.Round(box.Width())
	height := math.Round(box.Height())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("page %d has non-positive dimensions %gx%g", page, width, height)
	}

	rotation, ok := placement.NormalizeRotation(inhPAttrs.Rotate)
	if !ok {
		e.logger.Warn("Page rotation not a multiple of 90, defaulting to 0",
			zap.Int("page", page),
			zap.Int("rotation", inhPAttrs.Rotate),
		)
		rotation = 0
	}

	corrected := false
	if imgW, imgH, found := largestImageDims(ctx, inhPAttrs.Resources); found {
		width, height, rotation, corrected = correctOrientation(width, height, rotation, imgW, imgH)
		if corrected {
			e.logger.Warn("Scanned-orientation mismatch corrected",
				zap.Int("page", page),
				zap.Int("declared_rotation", inhPAttrs.Rotate),
				zap.Float64("width", width),
				zap.Float64("height", height),
			)
		}
	}

	return &entity.PageGeometry{
		PageNumber:           page,
		Width:                width,
		Height:               height,
		Rotation:             rotation,
		OrientationCorrected: corrected,
	}, nil
}

// correctOrientation handles scanned documents whose stored rotation
// disagrees with the visual orientation of their scan image. When a page
// declares 90/270 but its dominant image is already oriented like the
// rotated viewport (the scanner wrote pre-rotated pixels), the declared
// rotation would rotate it a second time. The correction swaps the page
// dimensions and zeroes the rotation, so every downstream consumer works
// from one consistent geometry.
func correctOrientation(width, height float64, rotation, imgW, imgH int) (float64, float64, int, bool) {
	if rotation != 90 && rotation != 270 {
		return width, height, rotation, false
	}
	if imgW <= 0 || imgH <= 0 || imgW == imgH || width == height {
		return width, height, rotation, false
	}

	imageLandscape := imgW > imgH
	pageLandscape := width > height
	viewportLandscape := !pageLandscape // 90/270 swaps the displayed axes

	if imageLandscape == viewportLandscape && imageLandscape != pageLandscape {
		return height, width, 0, true
	}
	return width, height, rotation, false
}
