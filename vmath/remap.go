package vmath

// Number covers the numeric types the remapping helpers work over.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Remap maps v from one range onto another. A value outside the bounds of
// the source range will be similarly outside the bounds of the target.
func Remap[T Number](v, fromStart, fromEnd, ontoStart, ontoEnd T) T {
	return (v-fromStart)*(ontoEnd-ontoStart)/(fromEnd-fromStart) + ontoStart
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
