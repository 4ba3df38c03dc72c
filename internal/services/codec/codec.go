package codec

import "context"

const (
	// DefaultEffort is the fixed compression effort applied to every encode.
	DefaultEffort = 6
	// FullAlphaQuality keeps the alpha channel at maximum fidelity.
	FullAlphaQuality = 100
	// ColorSpaceSRGB is the normalization target for RGB-family sources.
	ColorSpaceSRGB = "srgb"
)

// Metadata describes a probed source image.
type Metadata struct {
	Format     string
	Width      int
	Height     int
	ColorSpace string
}

// Options carries the per-encode settings the conversion engine supplies.
type Options struct {
	Quality          int
	AutoRotate       bool
	TargetColorSpace string
	Effort           int
	AlphaQuality     int
	Lossless         bool
}

// Service defines image probe and encode behaviour.
type Service interface {
	Probe(ctx context.Context, path string) (Metadata, error)
	Encode(ctx context.Context, path string, opts Options) ([]byte, error)
}

// NormalizesToSRGB reports whether a source color space should be converted to
// sRGB before encoding.
func NormalizesToSRGB(colorSpace string) bool {
	switch colorSpace {
	case "rgb", "display-p3":
		return true
	default:
		return false
	}
}
