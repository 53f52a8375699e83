package entity

// Stamp sizing strategies
const (
	StrategyFixed    = "fixed"
	StrategyRelative = "relative"
)

// PageGeometry describes one PDF page's physical layout, independent of any
// particular signature. Width/Height are the unrotated content-box dimensions
// in PDF points, rounded to the nearest integer to eliminate float jitter.
// Rotation is normalized to one of 0, 90, 180, 270 (clockwise degrees).
type PageGeometry struct {
	PageNumber           int     `json:"page_number"`           // Page number (1-based)
	Width                float64 `json:"width"`                 // Unrotated page width in points
	Height               float64 `json:"height"`                // Unrotated page height in points
	Rotation             int     `json:"rotation"`              // Normalized rotation: 0, 90, 180, 270
	OrientationCorrected bool    `json:"orientation_corrected"` // True if scanned-orientation mismatch was corrected
}

// RelativeBox is a signature's position and size as fractions (0..1) of the
// viewer viewport. The viewport swaps width/height relative to the page's
// unrotated dimensions when the rotation is 90 or 270.
type RelativeBox struct {
	X float64 `json:"rx"` // Top-left X fraction
	Y float64 `json:"ry"` // Top-left Y fraction
	W float64 `json:"rw"` // Width fraction
	H float64 `json:"rh"` // Height fraction
}

// StampSize is an absolute signature size in PDF points.
type StampSize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// StampConfig is the sizing policy for the rendered signature image.
type StampConfig struct {
	Strategy  string     `json:"strategy"`             // "fixed" or "relative"
	FixedSize *StampSize `json:"fixed_size,omitempty"` // Required when strategy is "fixed"
}

// OverlayResult is the viewer-space rectangle for on-screen rendering.
// Top-left origin, y increases downward. The viewport is the page as
// displayed (rotation-aware), in unscaled viewer points; zoom is applied
// uniformly by the caller.
type OverlayResult struct {
	ViewportWidth  float64 `json:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	W              float64 `json:"w"`
	H              float64 `json:"h"`
}

// MergeResult is the PDF-space placement for permanent stamping. The center
// form is primary: the stamping step rotates around (Cx,Cy), and the
// bottom-left (X,Y) is derived from the same center after clamping so the
// two always agree.
type MergeResult struct {
	Cx float64 `json:"cx"`
	Cy float64 `json:"cy"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
	X  float64 `json:"x"` // Bottom-left X (PDF convention, y-up)
	Y  float64 `json:"y"` // Bottom-left Y
}

// ValidationResult is the outcome of a placement input pre-check.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// PlacementRequest is the API payload for validate/preview calls.
type PlacementRequest struct {
	DocumentID string      `json:"document_id"`
	Page       int         `json:"page"`
	Box        RelativeBox `json:"box"`
	Stamp      StampConfig `json:"stamp"`
}

// StampRequest is the API payload for permanent stamping.
type StampRequest struct {
	PlacementRequest
	SignatureImage string `json:"signature_image"`       // Filename in the signatures folder
	OutputName     string `json:"output_name,omitempty"` // Optional stamped output filename
}

// PlacementResult is the API response for a preview call.
type PlacementResult struct {
	Geometry PageGeometry  `json:"geometry"`
	Overlay  OverlayResult `json:"overlay"`
	Merge    MergeResult   `json:"merge"`
}

// StampResult is the API response for a stamp call.
type StampResult struct {
	PlacementResult
	OutputFile string `json:"output_file"`
}
