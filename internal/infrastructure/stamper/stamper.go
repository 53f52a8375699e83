package stamper

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"docstamp/internal/domain/entity"
)

// Stamper permanently draws a signature image into a PDF page at the
// placement the engine computed. It is the merge-path consumer: it works
// exclusively from MergeResult's center form, counter-rotating the stamp
// against the page rotation around that same center.
type Stamper struct {
	logger *zap.Logger
}

func NewStamper(logger *zap.Logger) *Stamper {
	return &Stamper{logger: logger}
}

// ContentOps renders the content-stream operator sequence that draws the
// stamp, for diagnostics and tests. The actual file write goes through
// pdfcpu, which emits an equivalent sequence.
func ContentOps(merge entity.MergeResult, pageRotation int, xObjectName string) string {
	m := StampMatrix(merge.Cx, merge.Cy, merge.W, merge.H, pageRotation)
	return fmt.Sprintf("q %.2f %.2f %.2f %.2f %.2f %.2f cm /%s Do Q",
		m[0], m[1], m[2], m[3], m[4], m[5], xObjectName)
}

// Apply stamps the signature image onto one page of the input document and
// writes the result to outPath. The input file is never modified.
func (s *Stamper) Apply(inPath, outPath, imagePath string, geom entity.PageGeometry, merge entity.MergeResult) error {
	imgW, imgH, err := imageSize(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read signature image: %w", err)
	}

	// Image pixels render at one point per pixel at scale 1; the watermark
	// scale factor therefore brings the image's natural width to the
	// stamp width from the merge result.
	scale := merge.W / float64(imgW)

	// pdfcpu anchors at the page center; express the stamp center as an
	// offset from it. Rotation is the negative of the page rotation so the
	// signature stays upright while the page content remains rotated.
	offX := merge.Cx - geom.Width/2
	offY := merge.Cy - geom.Height/2
	rotation := -geom.Rotation

	desc := fmt.Sprintf("pos:c, off:%.2f %.2f, sc:%.4f abs, rot:%d", offX, offY, scale, rotation)

	s.logger.Info("Applying signature stamp",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Int("page", geom.PageNumber),
		zap.String("watermark", desc),
		zap.Int("image_width", imgW),
		zap.Int("image_height", imgH),
	)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages := []string{strconv.Itoa(geom.PageNumber)}
	if err := api.AddImageWatermarksFile(inPath, outPath, pages, true, imagePath, desc, conf); err != nil {
		return fmt.Errorf("failed to stamp page %d: %w", geom.PageNumber, err)
	}

	return nil
}

func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image has invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	return cfg.Width, cfg.Height, nil
}
