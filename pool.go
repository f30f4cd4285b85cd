package pnmdump

import (
	"bytes"
	"sync"
)

// Pools for the decode/encode hot paths. A full-canvas sample grid is
// MaxCanvasDim*MaxCanvasDim ints (2MB on 64-bit); reusing it across
// conversions avoids a large allocation per run.

const canvasSamples = MaxCanvasDim * MaxCanvasDim

var samplePool = sync.Pool{
	New: func() interface{} {
		buf := make([]int, canvasSamples)
		return &buf
	},
}

// GetSamples returns a sample slice of the requested size from the pool.
// The contents are unspecified; callers must fill every cell they read.
// Call PutSamples when done to return it to the pool.
func GetSamples(size int) []int {
	if size > canvasSamples {
		// Larger than any raster the decoder accepts; allocate directly.
		return make([]int, size)
	}
	bufPtr := samplePool.Get().(*[]int)
	return (*bufPtr)[:size]
}

// PutSamples returns a sample slice to the pool. The slice must not be
// used after calling this function.
func PutSamples(buf []int) {
	if cap(buf) != canvasSamples {
		return
	}
	buf = buf[:canvasSamples]
	samplePool.Put(&buf)
}

// rowBufferPool pools the per-row scratch buffers used by the ASCII encoder.
var rowBufferPool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

func getRowBuffer() *bytes.Buffer {
	buf := rowBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putRowBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	rowBufferPool.Put(buf)
}
