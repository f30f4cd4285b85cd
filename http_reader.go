package pnmdump

import (
	"fmt"
	"io"
	"sync"

	"github.com/valyala/fasthttp"
)

// Default fetch chunk size (64KB) for sequential reads
const defaultChunkSize = 64 * 1024

// HTTPReader implements io.ReadCloser for streaming a remote file via HTTP
// range requests. Reads are buffered in fixed-size chunks so that decoding
// a PGM header byte by byte does not issue one request per byte.
type HTTPReader struct {
	url    string
	client *fasthttp.Client
	size   int64
	mu     sync.Mutex
	pos    int64

	buffer    []byte
	bufferPos int64 // File position of buffer[0]
	chunkSize int
}

// NewHTTPReader creates a reader for the given URL. A nil client uses
// default timeouts. The size is resolved up front with a HEAD request;
// servers that do not report a length still work, falling back to reading
// until the server signals the end.
func NewHTTPReader(url string, client *fasthttp.Client) *HTTPReader {
	if client == nil {
		client = defaultClient()
	}
	hr := &HTTPReader{
		url:       url,
		client:    client,
		chunkSize: defaultChunkSize,
		bufferPos: -1,
	}
	hr.size = hr.getSize()
	return hr
}

// SetChunkSize sets the fetch chunk size. Larger values mean fewer range
// requests for big images.
func (hr *HTTPReader) SetChunkSize(size int) {
	hr.mu.Lock()
	defer hr.mu.Unlock()
	if size > 0 {
		hr.chunkSize = size
	}
}

// getSize gets the file size using HEAD request
func (hr *HTTPReader) getSize() int64 {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(hr.url)
	req.Header.SetMethod("HEAD")

	if err := hr.client.Do(req, resp); err != nil {
		return -1
	}
	if contentLength := resp.Header.ContentLength(); contentLength > 0 {
		return int64(contentLength)
	}
	return -1
}

// Read reads sequentially from the current position, fetching a new chunk
// when the buffered one is exhausted.
func (hr *HTTPReader) Read(p []byte) (n int, err error) {
	hr.mu.Lock()
	defer hr.mu.Unlock()

	if hr.size >= 0 && hr.pos >= hr.size {
		return 0, io.EOF
	}

	if hr.buffer == nil || hr.pos < hr.bufferPos || hr.pos >= hr.bufferPos+int64(len(hr.buffer)) {
		if err := hr.fill(); err != nil {
			return 0, err
		}
	}

	offset := int(hr.pos - hr.bufferPos)
	n = copy(p, hr.buffer[offset:])
	hr.pos += int64(n)
	return n, nil
}

// fill fetches the next chunk starting at the current position.
func (hr *HTTPReader) fill() error {
	end := hr.pos + int64(hr.chunkSize) - 1
	if hr.size >= 0 && end >= hr.size {
		end = hr.size - 1
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(hr.url)
	req.Header.SetMethod("GET")
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", hr.pos, end))

	if err := hr.client.Do(req, resp); err != nil {
		return fmt.Errorf("failed to fetch range: %w", err)
	}

	switch resp.StatusCode() {
	case fasthttp.StatusPartialContent:
		// Expected for a ranged request
	case fasthttp.StatusOK:
		// Server ignored the range and sent the whole file; the body
		// starts at offset zero, so it only lines up on the first fetch.
		if hr.pos != 0 {
			return fmt.Errorf("server does not support range requests")
		}
	case fasthttp.StatusRequestedRangeNotSatisfiable:
		return io.EOF
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return io.EOF
	}

	// Copy body since the response is pooled
	if cap(hr.buffer) >= len(body) {
		hr.buffer = hr.buffer[:len(body)]
	} else {
		hr.buffer = make([]byte, len(body))
	}
	copy(hr.buffer, body)
	hr.bufferPos = hr.pos

	if resp.StatusCode() == fasthttp.StatusOK {
		// Whole file in one response
		hr.size = int64(len(body))
	}
	return nil
}

// Size returns the remote file size, or -1 if unknown.
func (hr *HTTPReader) Size() int64 {
	return hr.size
}

// Close releases the chunk buffer. The reader must not be used afterwards.
func (hr *HTTPReader) Close() error {
	hr.mu.Lock()
	defer hr.mu.Unlock()
	hr.buffer = nil
	hr.bufferPos = -1
	return nil
}
