package pnmdump

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rasterFromGrid builds a raster from row-major test data.
func rasterFromGrid(t *testing.T, grid [][]int) *Raster {
	t.Helper()
	ras := NewRaster(len(grid[0]), len(grid))
	for row, cells := range grid {
		for col, v := range cells {
			ras.Set(row, col, v)
		}
	}
	t.Cleanup(ras.Release)
	return ras
}

// applyTransform runs a sampler over the full output geometry and
// collects the result as a grid.
func applyTransform(s *sampler) [][]int {
	out := make([][]int, s.outH)
	for row := range out {
		out[row] = make([]int, s.outW)
		for col := range out[row] {
			out[row][col] = s.sample(row, col)
		}
	}
	return out
}

func TestIdentity(t *testing.T) {
	src := rasterFromGrid(t, [][]int{{1, 2}, {3, 4}})
	s := &sampler{src: src, kind: Identity, outW: 2, outH: 2}

	want := [][]int{{1, 2}, {3, 4}}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("identity mismatch (-want +got):\n%s", diff)
	}
}

func TestTranspose(t *testing.T) {
	src := rasterFromGrid(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	s := &sampler{src: src, kind: Transpose, outW: 3, outH: 2}

	want := [][]int{{1, 3, 5}, {2, 4, 6}}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("transpose mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate90(t *testing.T) {
	src := rasterFromGrid(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	s := &sampler{src: src, kind: Rotate90, outW: 3, outH: 2}

	// Clockwise: the left column of the source becomes the top row,
	// reversed.
	want := [][]int{{5, 3, 1}, {6, 4, 2}}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("rotate mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleNearestUp(t *testing.T) {
	src := rasterFromGrid(t, [][]int{{10, 20}, {30, 40}})
	s := &sampler{src: src, kind: ScaleNearest, outW: 4, outH: 4, wScale: 2, hScale: 2}

	want := [][]int{
		{10, 10, 20, 20},
		{10, 10, 20, 20},
		{30, 30, 40, 40},
		{30, 30, 40, 40},
	}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("nearest-neighbor mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleNearestDown(t *testing.T) {
	src := rasterFromGrid(t, [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	})
	s := &sampler{src: src, kind: ScaleNearest, outW: 2, outH: 2, wScale: 0.5, hScale: 0.5}

	want := [][]int{{0, 2}, {8, 10}}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("nearest-neighbor mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleBilinearUp(t *testing.T) {
	src := rasterFromGrid(t, [][]int{{10, 20}, {30, 40}})
	s := &sampler{src: src, kind: ScaleBilinearUp, outW: 4, outH: 4, wScale: 2, hScale: 2}

	// The top and left margins extrapolate past the border; the first
	// row and column drop to zero because the gradient continues
	// downward there. Interior cells interpolate between their four
	// source neighbors.
	want := [][]int{
		{0, 0, 0, 0},
		{0, 10, 15, 20},
		{20, 20, 25, 30},
		{20, 30, 35, 40},
	}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("bilinear mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleBilinearUpFlat(t *testing.T) {
	// A constant image stays constant: every extrapolation and
	// interpolation of equal values yields the same value.
	src := rasterFromGrid(t, [][]int{{7, 7}, {7, 7}})
	s := &sampler{src: src, kind: ScaleBilinearUp, outW: 4, outH: 4, wScale: 2, hScale: 2}

	want := [][]int{
		{7, 7, 7, 7},
		{7, 7, 7, 7},
		{7, 7, 7, 7},
		{7, 7, 7, 7},
	}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("bilinear mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleBilinearUpCanExceedMaxValue(t *testing.T) {
	// Extrapolation clamps to [0, 255], not to the image's own maximum,
	// so a low-maxValue image can produce samples above its declared
	// maximum.
	src := rasterFromGrid(t, [][]int{{15, 0}, {0, 0}})
	s := &sampler{src: src, kind: ScaleBilinearUp, outW: 4, outH: 4, wScale: 2, hScale: 2}

	if got := s.sample(0, 0); got != 30 {
		t.Errorf("corner sample = %d, want 30", got)
	}
}

func TestScaleBoxDown(t *testing.T) {
	src := rasterFromGrid(t, [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	})
	s := &sampler{src: src, kind: ScaleBoxDown, outW: 2, outH: 2, wScale: 0.5, hScale: 0.5}

	want := [][]int{{2, 4}, {10, 12}}
	if diff := cmp.Diff(want, applyTransform(s)); diff != "" {
		t.Errorf("box average mismatch (-want +got):\n%s", diff)
	}
}

func TestScaleBoxDownTruncatesAverage(t *testing.T) {
	src := rasterFromGrid(t, [][]int{{0, 1}, {1, 1}})
	s := &sampler{src: src, kind: ScaleBoxDown, outW: 1, outH: 1, wScale: 0.5, hScale: 0.5}

	// (0+1+1+1)/4 truncates to 0.
	if got := s.sample(0, 0); got != 0 {
		t.Errorf("average = %d, want 0", got)
	}
}

func TestExtrapolateLinear(t *testing.T) {
	tests := []struct {
		edge, inner, want int
	}{
		{10, 20, 0},
		{20, 10, 30},
		{200, 100, 255},
		{5, 5, 5},
		{0, 200, 0},
	}

	for _, tt := range tests {
		if got := extrapolateLinear(tt.edge, tt.inner); got != tt.want {
			t.Errorf("extrapolateLinear(%d, %d) = %d, want %d",
				tt.edge, tt.inner, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := lerp(0.5, 10, 20); got != 15 {
		t.Errorf("lerp(0.5, 10, 20) = %v, want 15", got)
	}
	if got := lerp(0, 10, 20); got != 10 {
		t.Errorf("lerp(0, 10, 20) = %v, want 10", got)
	}
	if got := lerp(1, 10, 20); got != 20 {
		t.Errorf("lerp(1, 10, 20) = %v, want 20", got)
	}
}

func TestBilerp(t *testing.T) {
	// Center of the unit square averages all four corners.
	if got := bilerp(0.5, 0.5, 0, 10, 20, 30); got != 15 {
		t.Errorf("bilerp center = %v, want 15", got)
	}
	if got := bilerp(0, 0, 5, 10, 20, 30); got != 5 {
		t.Errorf("bilerp origin = %v, want 5", got)
	}
}
