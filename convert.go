package pnmdump

import (
	"fmt"
	"io"
	"os"

	"github.com/valyala/fasthttp"
)

// Op names a conversion requested by a caller. Scaling ops need a scale
// argument alongside; OpScaleBilinear picks box averaging instead of
// interpolation when the factors shrink the image.
type Op int

const (
	OpIdentity Op = iota
	OpTranspose
	OpRotate90
	OpScaleNearest
	OpScaleBilinear
)

// Options controls a conversion.
type Options struct {
	// InputFormat, when not FormatUnknown, requires the input to be in
	// that encoding.
	InputFormat Format
	// OutputFormat selects the output encoding. FormatUnknown means
	// keep the input's encoding.
	OutputFormat Format
	// Op is the transform to apply.
	Op Op
	// Scale is the scalar argument for the scaling ops, e.g. "2",
	// "1/2", "2x3" or "3/2x4/3".
	Scale string
}

// Convert decodes a PGM image from r, applies the requested transform and
// encodes the result to w.
func Convert(r io.Reader, w io.Writer, opts Options) error {
	hdr, ras, err := DecodeExpect(r, opts.InputFormat)
	if err != nil {
		return err
	}
	defer ras.Release()

	kind, spec, err := resolveTransform(opts)
	if err != nil {
		return err
	}

	out := hdr
	if opts.OutputFormat != FormatUnknown {
		out.Format = opts.OutputFormat
	}
	if kind.SwapsDimensions() {
		out.Width, out.Height = hdr.Height, hdr.Width
	}
	if kind.Scales() {
		out.Width, out.Height, err = spec.OutputDims(hdr.Width, hdr.Height)
		if err != nil {
			return err
		}
	}

	s := &sampler{
		src:    ras,
		kind:   kind,
		outW:   out.Width,
		outH:   out.Height,
		wScale: spec.WidthFactor,
		hScale: spec.HeightFactor,
	}
	return Encode(w, out, s.sample)
}

// resolveTransform maps an Op (and its scalar, when scaling) to the
// concrete transform kind.
func resolveTransform(opts Options) (TransformKind, ScaleSpec, error) {
	switch opts.Op {
	case OpIdentity:
		return Identity, ScaleSpec{}, nil
	case OpTranspose:
		return Transpose, ScaleSpec{}, nil
	case OpRotate90:
		return Rotate90, ScaleSpec{}, nil
	}

	spec, err := ParseScale(opts.Scale)
	if err != nil {
		return 0, ScaleSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return 0, ScaleSpec{}, err
	}

	switch opts.Op {
	case OpScaleNearest:
		return ScaleNearest, spec, nil
	case OpScaleBilinear:
		if spec.Upscales() {
			return ScaleBilinearUp, spec, nil
		}
		return ScaleBoxDown, spec, nil
	}
	return 0, ScaleSpec{}, fmt.Errorf("unknown op %d", opts.Op)
}

// ConvertFile converts between named inputs and outputs. The input may be
// a local path or an http(s) URL; gzip-compressed inputs are decompressed
// transparently. A nil client uses default timeouts for URL inputs.
func ConvertFile(input, output string, opts Options, client *fasthttp.Client) error {
	src, err := Open(input, client)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Convert(src, dst, opts); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
