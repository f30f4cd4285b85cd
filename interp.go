package pnmdump

// extrapolateLinear continues the gradient from inner to edge one step past
// the edge, clamped to the byte range.
func extrapolateLinear(edge, inner int) int {
	v := edge - (inner - edge)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// lerp interpolates between f1 at t=0 and f2 at t=1.
func lerp(t, f1, f2 float64) float64 {
	return f1*(1-t) + f2*t
}

// bilerp interpolates within the unit square. f11 is the value at (0,0),
// f21 at (1,0), f12 at (0,1) and f22 at (1,1).
func bilerp(x, y, f11, f12, f21, f22 float64) float64 {
	return lerp(y, lerp(x, f11, f21), lerp(x, f12, f22))
}
