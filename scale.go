package pnmdump

import (
	"math"
	"strconv"
	"strings"
)

// Output geometry caps enforced by ScaleSpec.OutputDims.
const (
	MaxOutputWidth  = 1920
	MaxOutputHeight = 1080
)

// ScaleSpec holds the horizontal and vertical scale factors parsed from a
// scalar argument, plus the optional interpolation hint prefix.
type ScaleSpec struct {
	// WidthFactor and HeightFactor multiply the input width and height.
	// Both must point the same direction: both >= 1 (upscale) or both
	// <= 1 (downscale). Exactly 1 satisfies either side.
	WidthFactor  float64
	HeightFactor float64

	// Hint is 'm' or 'p' when the scalar carried a leading interpolation
	// hint, 0 otherwise. The hint is recorded but does not change how
	// the image is resampled.
	Hint byte
}

// ParseScale parses a scalar argument. Four grammars are accepted:
//
//	N        one factor for both axes
//	A/B      one ratio for both axes
//	NxM      per-axis factors
//	A/BxC/D  per-axis ratios
//
// An optional leading 'm' or 'p' is stripped and recorded as the hint.
// The factors are not validated here; call Validate next.
func ParseScale(s string) (ScaleSpec, error) {
	var spec ScaleSpec
	if len(s) > 0 && (s[0] == 'm' || s[0] == 'p') {
		spec.Hint = s[0]
		s = s[1:]
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		spec.WidthFactor = f
		spec.HeightFactor = f
		return spec, nil
	}
	if f, ok := parseRatio(s); ok {
		spec.WidthFactor = f
		spec.HeightFactor = f
		return spec, nil
	}

	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return ScaleSpec{}, ScaleError("bad scalar format")
	}
	if fw, err := strconv.ParseFloat(w, 64); err == nil {
		fh, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return ScaleSpec{}, ScaleError("bad scalar format")
		}
		spec.WidthFactor = fw
		spec.HeightFactor = fh
		return spec, nil
	}
	fw, ok := parseRatio(w)
	if !ok {
		return ScaleSpec{}, ScaleError("bad scalar format")
	}
	fh, ok := parseRatio(h)
	if !ok {
		return ScaleSpec{}, ScaleError("bad scalar format")
	}
	spec.WidthFactor = fw
	spec.HeightFactor = fh
	return spec, nil
}

// parseRatio parses "A/B" into A/B.
func parseRatio(s string) (float64, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, false
	}
	return n / d, true
}

// Validate checks that the factors form a usable scale. Mixed directions
// are rejected before degenerate values, so "0.5x2" reports the direction
// problem rather than anything about the individual factors.
func (s ScaleSpec) Validate() error {
	if math.IsNaN(s.WidthFactor) || math.IsNaN(s.HeightFactor) {
		return RangeError("scalar must be a non zero positive")
	}
	if (s.WidthFactor < 1 && s.HeightFactor > 1) ||
		(s.WidthFactor > 1 && s.HeightFactor < 1) {
		return RangeError("inconsistent direction, both factors must upscale or both must downscale")
	}
	if s.WidthFactor <= 0 || s.HeightFactor <= 0 {
		return RangeError("scalar must be a non zero positive")
	}
	return nil
}

// Upscales reports whether both factors grow (or keep) the image.
// Factors of exactly 1 on both axes count as an upscale.
func (s ScaleSpec) Upscales() bool {
	return s.WidthFactor >= 1 && s.HeightFactor >= 1
}

// OutputDims applies the factors to the input geometry, truncating toward
// zero, and enforces the output caps. The caps are checked before
// truncation so that an infinite factor cannot slip through the int
// conversion.
func (s ScaleSpec) OutputDims(width, height int) (int, int, error) {
	fw := float64(width) * s.WidthFactor
	fh := float64(height) * s.HeightFactor
	if fw >= MaxOutputWidth+1 || fh >= MaxOutputHeight+1 {
		return 0, 0, RangeError("output too large, max 1920x1080")
	}
	return int(fw), int(fh), nil
}
