package pnmdump

// TransformKind selects how output samples map back onto the source raster.
type TransformKind int

const (
	// Identity passes samples through unchanged.
	Identity TransformKind = iota
	// Transpose reflects the raster in the main diagonal.
	Transpose
	// Rotate90 rotates the raster a quarter turn clockwise.
	Rotate90
	// ScaleNearest resizes by nearest-neighbor sampling.
	ScaleNearest
	// ScaleBilinearUp enlarges with bilinear interpolation, extrapolating
	// past the borders where a neighbor is missing.
	ScaleBilinearUp
	// ScaleBoxDown shrinks by averaging each source block into one sample.
	ScaleBoxDown
)

func (k TransformKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Transpose:
		return "transpose"
	case Rotate90:
		return "rotate90"
	case ScaleNearest:
		return "scale-nearest"
	case ScaleBilinearUp:
		return "scale-bilinear"
	case ScaleBoxDown:
		return "scale-box"
	default:
		return "unknown"
	}
}

// SwapsDimensions reports whether the output geometry is the input's with
// width and height exchanged.
func (k TransformKind) SwapsDimensions() bool {
	return k == Transpose || k == Rotate90
}

// Scales reports whether the transform takes scale factors.
func (k TransformKind) Scales() bool {
	return k == ScaleNearest || k == ScaleBilinearUp || k == ScaleBoxDown
}

// sampler produces output samples lazily from a source raster. The zero
// scale factors are only read by the scaling kinds.
type sampler struct {
	src    *Raster
	kind   TransformKind
	outW   int
	outH   int
	wScale float64
	hScale float64
}

// sample returns the output value at the given output coordinates.
func (s *sampler) sample(row, col int) int {
	switch s.kind {
	case Transpose:
		return s.src.At(col, row)
	case Rotate90:
		return s.src.At((s.outW-1)-col, row)
	case ScaleNearest:
		return s.src.At(int(float64(row)/s.hScale), int(float64(col)/s.wScale))
	case ScaleBilinearUp:
		return s.bilinearUp(row, col)
	case ScaleBoxDown:
		return s.boxDown(row, col)
	default:
		return s.src.At(row, col)
	}
}

// bilinearUp maps an output cell back onto the source grid and
// interpolates between its four neighbors. Cells in the border margins
// have neighbors that fall outside the source; those are synthesized by
// extrapolating the gradient at the edge. The margins are half a scale
// factor wide on the top and left, and the remaining half on the bottom
// and right.
func (s *sampler) bilinearUp(row, col int) int {
	top := row < int(s.hScale/2)
	bottom := row > s.outH-int((s.hScale+1)/2)
	left := col < int(s.wScale/2)
	right := col > s.outW-int((s.wScale+1)/2)

	fr := float64(row) / s.hScale
	fc := float64(col) / s.wScale
	br, bc := int(fr), int(fc)
	fracRow := fr - float64(br)
	fracCol := fc - float64(bc)

	center := s.src.At(br, bc)
	ex := func(inner int) float64 {
		return float64(extrapolateLinear(center, inner))
	}

	switch {
	case top && left:
		return int(bilerp(fracRow, fracCol,
			ex(s.src.At(br+1, bc+1)),
			ex(s.src.At(br+1, bc)),
			ex(s.src.At(br, bc+1)),
			float64(center)))
	case top && right:
		return int(bilerp(fracRow, fracCol,
			ex(s.src.At(br+1, bc)),
			ex(s.src.At(br+1, bc-1)),
			float64(center),
			ex(s.src.At(br, bc-1))))
	case bottom && left:
		return int(bilerp(fracRow, fracCol,
			ex(s.src.At(br, bc+1)),
			float64(center),
			ex(s.src.At(br-1, bc+1)),
			ex(s.src.At(br-1, bc))))
	case bottom && right:
		return int(bilerp(fracRow, fracCol,
			float64(center),
			ex(s.src.At(br, bc-1)),
			ex(s.src.At(br-1, bc)),
			ex(s.src.At(br-1, bc+1))))
	case top:
		return int(lerp(fracRow, ex(s.src.At(br+1, bc)), float64(center)))
	case bottom:
		return int(lerp(fracRow, float64(center), ex(s.src.At(br-1, bc))))
	case left:
		return int(lerp(fracCol, ex(s.src.At(br, bc+1)), float64(center)))
	case right:
		return int(lerp(fracCol, float64(center), ex(s.src.At(br, bc-1))))
	}

	// Interior: shift past the top and left margins, then interpolate
	// between the four surrounding source samples. Note the axis order
	// differs from the border cases above; this preserves the output of
	// the original converter.
	row -= int(s.hScale / 2)
	col -= int(s.wScale / 2)
	fr = float64(row) / s.hScale
	fc = float64(col) / s.wScale
	br, bc = int(fr), int(fc)
	fracRow = fr - float64(br)
	fracCol = fc - float64(bc)

	return int(bilerp(fracCol, fracRow,
		float64(s.src.At(br, bc)),
		float64(s.src.At(br+1, bc)),
		float64(s.src.At(br, bc+1)),
		float64(s.src.At(br+1, bc+1))))
}

// boxDown averages the source block that collapses onto one output cell.
// The block is 1/hScale rows by 1/wScale columns, truncated, with the
// average itself truncated toward zero.
func (s *sampler) boxDown(row, col int) int {
	rows := int(1 / s.hScale)
	cols := int(1 / s.wScale)
	baseRow := int(float64(row) / s.hScale)
	baseCol := int(float64(col) / s.wScale)

	sum := 0
	count := 0
	for rs := 0; rs < rows; rs++ {
		for cs := 0; cs < cols; cs++ {
			sum += s.src.At(baseRow+rs, baseCol+cs)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / count
}
