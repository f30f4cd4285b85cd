package pnmdump

import "testing"

func TestRasterAtBounds(t *testing.T) {
	ras := NewRaster(2, 2)
	defer ras.Release()
	ras.Set(0, 0, 5)
	ras.Set(1, 1, 9)

	if got := ras.At(0, 0); got != 5 {
		t.Errorf("At(0,0) = %d, want 5", got)
	}
	if got := ras.At(1, 1); got != 9 {
		t.Errorf("At(1,1) = %d, want 9", got)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		if got := ras.At(c[0], c[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0", c[0], c[1], got)
		}
	}
}

func TestRasterSetIgnoresOutOfRange(t *testing.T) {
	ras := NewRaster(2, 2)
	defer ras.Release()

	for i := range ras.Data {
		ras.Data[i] = i + 1
	}
	ras.Set(5, 5, 99)
	ras.Set(-1, 0, 99)
	for i, v := range ras.Data {
		if v != i+1 {
			t.Errorf("Data[%d] = %d after out-of-range Set, want %d", i, v, i+1)
		}
	}
}

func TestRasterReleaseNil(t *testing.T) {
	var ras *Raster
	ras.Release()
}

func TestFormatString(t *testing.T) {
	if FormatASCII.String() != "P2" || FormatBinary.String() != "P5" {
		t.Error("format magic strings wrong")
	}
	if ParseFormat("P2") != FormatASCII || ParseFormat("P5") != FormatBinary {
		t.Error("magic parsing wrong")
	}
	if ParseFormat("P6") != FormatUnknown {
		t.Error("ParseFormat accepted unsupported magic")
	}
}

func TestGetSamplesOversized(t *testing.T) {
	n := canvasSamples + 1
	buf := GetSamples(n)
	if len(buf) != n {
		t.Fatalf("len = %d, want %d", len(buf), n)
	}
	// Not pooled, but must still be safe to return.
	PutSamples(buf)
}

func TestSamplePoolReuse(t *testing.T) {
	buf := GetSamples(16)
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
	if cap(buf) != canvasSamples {
		t.Fatalf("cap = %d, want %d", cap(buf), canvasSamples)
	}
	PutSamples(buf)
}
