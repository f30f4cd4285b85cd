package pnmdump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Comment line written into every encoded header.
const headerComment = "# Generated by pnmdump.exe"

// Decode reads a PGM image from r, adopting whichever encoding the header
// declares.
func Decode(r io.Reader) (Header, *Raster, error) {
	return DecodeExpect(r, FormatUnknown)
}

// DecodeExpect reads a PGM image from r. If want is not FormatUnknown, the
// encoding declared by the header must match it.
//
// Header grammar, four lines: magic, a comment line (contents ignored),
// "width height", maxValue. The body holds width*height samples in
// row-major order, each in [0, maxValue]. Binary bodies must end exactly
// at the last sample.
func DecodeExpect(r io.Reader, want Format) (Header, *Raster, error) {
	br := bufio.NewReader(r)

	hdr, err := readHeader(br)
	if err != nil {
		return Header{}, nil, err
	}
	if want != FormatUnknown && hdr.Format != want {
		return Header{}, nil, FormatError("wrong format: input is not " + want.String())
	}
	if hdr.Format == FormatUnknown {
		return Header{}, nil, FormatError("corrupted input")
	}
	if hdr.Width > MaxCanvasDim || hdr.Height > MaxCanvasDim {
		return Header{}, nil, OutOfBoundsError{Width: hdr.Width, Height: hdr.Height}
	}
	if hdr.Width < 0 || hdr.Height < 0 || hdr.MaxValue < 0 {
		return Header{}, nil, FormatError("corrupted input")
	}

	ras, err := readBody(br, hdr)
	if err != nil {
		return Header{}, nil, err
	}
	return hdr, ras, nil
}

// readHeader parses the four-line PGM header.
func readHeader(br *bufio.Reader) (Header, error) {
	magic, err := readToken(br)
	if err != nil {
		return Header{}, FormatError("corrupted input")
	}
	// Rest of the magic line, then the comment line; contents ignored.
	if _, err := br.ReadString('\n'); err != nil {
		return Header{}, FormatError("corrupted input")
	}
	if _, err := br.ReadString('\n'); err != nil {
		return Header{}, FormatError("corrupted input")
	}

	width, err := readInt(br)
	if err != nil {
		return Header{}, FormatError("corrupted input")
	}
	height, err := readInt(br)
	if err != nil {
		return Header{}, FormatError("corrupted input")
	}
	maxValue, err := readInt(br)
	if err != nil {
		return Header{}, FormatError("corrupted input")
	}

	return Header{
		Format:   ParseFormat(magic),
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
	}, nil
}

// readBody reads width*height samples in the header's encoding.
func readBody(br *bufio.Reader, hdr Header) (*Raster, error) {
	ras := NewRaster(hdr.Width, hdr.Height)

	switch hdr.Format {
	case FormatASCII:
		if err := readASCIIBody(br, hdr, ras); err != nil {
			ras.Release()
			return nil, err
		}
	case FormatBinary:
		if err := readBinaryBody(br, hdr, ras); err != nil {
			ras.Release()
			return nil, err
		}
	}
	return ras, nil
}

func readASCIIBody(br *bufio.Reader, hdr Header, ras *Raster) error {
	for i := 0; i < hdr.Width*hdr.Height; i++ {
		v, err := readInt(br)
		if err != nil {
			return FormatError("corrupted input")
		}
		if v < 0 || v > hdr.MaxValue {
			return FormatError("corrupted input")
		}
		ras.Data[i] = v
	}
	return nil
}

func readBinaryBody(br *bufio.Reader, hdr Header, ras *Raster) error {
	// Exactly one whitespace byte separates the maxValue token from the
	// raw sample bytes.
	sep, err := br.ReadByte()
	if err != nil || !isSpace(sep) {
		return FormatError("corrupted input")
	}
	for i := 0; i < hdr.Width*hdr.Height; i++ {
		b, err := br.ReadByte()
		if err != nil {
			return FormatError("corrupted input")
		}
		v := int(b)
		if v > hdr.MaxValue {
			return FormatError("corrupted input")
		}
		ras.Data[i] = v
	}
	// The stream must end exactly at the last sample.
	if _, err := br.ReadByte(); err != io.EOF {
		return FormatError("corrupted input")
	}
	return nil
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// readToken skips whitespace and returns the next run of non-whitespace
// bytes. The delimiter, if any, is left in the reader.
func readToken(br *bufio.Reader) (string, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
	}

	var tok []byte
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		tok = append(tok, b)
	}
	return string(tok), nil
}

// readInt reads the next whitespace-delimited token as a decimal integer.
func readInt(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

// Encode writes a PGM image to w. Samples are supplied lazily through
// sample, which is called once per cell in row-major order.
//
// Binary samples are truncated to a single byte; values above 255 wrap
// without error. This matches the historical writer and is relied on by
// existing consumers.
func Encode(w io.Writer, hdr Header, sample func(row, col int) int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n%s\n%d %d\n%d\n",
		hdr.Format, headerComment, hdr.Width, hdr.Height, hdr.MaxValue); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	switch hdr.Format {
	case FormatASCII:
		buf := getRowBuffer()
		defer putRowBuffer(buf)
		for row := 0; row < hdr.Height; row++ {
			buf.Reset()
			for col := 0; col < hdr.Width; col++ {
				if col > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(strconv.Itoa(sample(row, col)))
			}
			buf.WriteByte('\n')
			if _, err := bw.Write(buf.Bytes()); err != nil {
				return fmt.Errorf("writing samples: %w", err)
			}
		}
	case FormatBinary:
		for row := 0; row < hdr.Height; row++ {
			for col := 0; col < hdr.Width; col++ {
				if err := bw.WriteByte(byte(sample(row, col))); err != nil {
					return fmt.Errorf("writing samples: %w", err)
				}
			}
		}
	default:
		return FormatError("wrong format: cannot encode " + hdr.Format.String())
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}
