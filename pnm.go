// Package pnmdump reads, transforms, and writes grayscale PGM images in
// both the ASCII (P2) and binary (P5) encodings.
//
// Basic usage:
//
//	src, _ := os.Open("in.pgm")
//	out, _ := os.Create("out.pgm")
//	err := pnmdump.Convert(src, out, pnmdump.Options{
//		Op:    pnmdump.OpScaleBilinear,
//		Scale: "2",
//	})
package pnmdump

// Magic strings for the two supported encodings.
const (
	magicASCII  = "P2"
	magicBinary = "P5"
)

// MaxCanvasDim is the largest width or height a decoded raster may have.
// Inputs exceeding it are rejected with OutOfBoundsError before any sample
// is stored.
const MaxCanvasDim = 512

// Format identifies the body encoding of a PGM stream.
type Format int

const (
	// FormatUnknown means the encoding has not been determined yet; a
	// decoder given FormatUnknown adopts whatever the header declares.
	FormatUnknown Format = iota
	// FormatASCII is the P2 encoding: whitespace-delimited decimal samples.
	FormatASCII
	// FormatBinary is the P5 encoding: one raw byte per sample.
	FormatBinary
)

// String returns the magic string for the format.
func (f Format) String() string {
	switch f {
	case FormatASCII:
		return magicASCII
	case FormatBinary:
		return magicBinary
	default:
		return "Unknown"
	}
}

// ParseFormat maps a magic string to its Format, returning FormatUnknown
// for anything that is not exactly "P2" or "P5".
func ParseFormat(s string) Format {
	switch s {
	case magicASCII:
		return FormatASCII
	case magicBinary:
		return FormatBinary
	default:
		return FormatUnknown
	}
}

// Header describes the encoding and geometry of a PGM image.
type Header struct {
	Format   Format
	Width    int
	Height   int
	MaxValue int
}

// Raster is a rectangular grid of grayscale samples stored as a flat
// row-major array: index = row * Width + col.
type Raster struct {
	Data   []int
	Width  int
	Height int
}

// NewRaster allocates a raster of the given geometry. Storage comes from
// the sample pool; call Release when the raster is no longer needed.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Data:   GetSamples(width * height),
		Width:  width,
		Height: height,
	}
}

// At returns the sample at the given row and column, or 0 when the
// coordinates fall outside the raster.
func (r *Raster) At(row, col int) int {
	if row < 0 || row >= r.Height || col < 0 || col >= r.Width {
		return 0
	}
	return r.Data[row*r.Width+col]
}

// Set stores a sample at the given row and column. Out-of-range
// coordinates are ignored.
func (r *Raster) Set(row, col, value int) {
	if row < 0 || row >= r.Height || col < 0 || col >= r.Width {
		return
	}
	r.Data[row*r.Width+col] = value
}

// AtUnchecked returns the sample without bounds checking. Only use when
// the coordinates are known to be valid.
func (r *Raster) AtUnchecked(row, col int) int {
	return r.Data[row*r.Width+col]
}

// Index returns the flat array index for the given row and column.
func (r *Raster) Index(row, col int) int {
	return row*r.Width + col
}

// Release returns the raster's storage to the sample pool. The raster
// must not be used afterwards.
func (r *Raster) Release() {
	if r == nil {
		return
	}
	PutSamples(r.Data)
	r.Data = nil
}
