package pnmdump

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/valyala/fasthttp"
)

func defaultClient() *fasthttp.Client {
	return &fasthttp.Client{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Open opens a PGM input for reading. pathOrURL may be a local file path
// or an http(s) URL; URLs are streamed with ranged requests. Inputs that
// start with the gzip magic bytes are decompressed transparently. A nil
// client uses default timeouts for URL inputs.
func Open(pathOrURL string, client *fasthttp.Client) (io.ReadCloser, error) {
	var src io.ReadCloser

	// Detect if it's a URL or file path
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		src = NewHTTPReader(pathOrURL, client)
	} else {
		file, err := os.Open(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		src = file
	}

	br := bufio.NewReader(src)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		src.Close()
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("failed to open gzip input: %w", err)
		}
		return &gzipReadCloser{zr: zr, src: src}, nil
	}
	return &bufferedReadCloser{br: br, src: src}, nil
}

// bufferedReadCloser keeps the peek buffer in front of the source so the
// sniffed bytes are not lost.
type bufferedReadCloser struct {
	br  *bufio.Reader
	src io.ReadCloser
}

func (b *bufferedReadCloser) Read(p []byte) (int, error) { return b.br.Read(p) }
func (b *bufferedReadCloser) Close() error               { return b.src.Close() }

// gzipReadCloser closes both the decompressor and the underlying source.
type gzipReadCloser struct {
	zr  *gzip.Reader
	src io.ReadCloser
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	zerr := g.zr.Close()
	serr := g.src.Close()
	if zerr != nil {
		return zerr
	}
	return serr
}
