package pdfdoc

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// largestImageDims finds the pixel dimensions of the page's dominant image
// XObject. Scanned pages consist of a single full-page image, so the
// largest image is a reliable proxy for the scan's true orientation. Any
// failure along the way simply reports "not found" - orientation
// correction must never break geometry extraction.
func largestImageDims(ctx *model.Context, resources types.Dict) (int, int, bool) {
	if resources == nil {
		return 0, 0, false
	}

	obj, found := resources.Find("XObject")
	if !found {
		return 0, 0, false
	}

	xObjects, err := ctx.DereferenceDict(obj)
	if err != nil || xObjects == nil {
		return 0, 0, false
	}

	var bestW, bestH, bestArea int
	for _, entry := range xObjects {
		o, err := ctx.Dereference(entry)
		if err != nil {
			continue
		}

		sd, ok := o.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype := sd.Dict.NameEntry("Subtype"); subtype == nil || *subtype != "Image" {
			continue
		}

		w := sd.Dict.IntEntry("Width")
		h := sd.Dict.IntEntry("Height")
		if w == nil || h == nil || *w <= 0 || *h <= 0 {
			continue
		}

		if area := *w * *h; area > bestArea {
			bestW, bestH, bestArea = *w, *h, area
		}
	}

	return bestW, bestH, bestArea > 0
}
