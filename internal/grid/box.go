package grid

import "math"

// Box is an axis-aligned hyperrectangle [Lo[i], Hi[i]] per dimension.
// Guards over a mode's augmented (state, clock) space carry the clock as
// the last dimension.
type Box struct {
	Lo []float64
	Hi []float64
}

func NewBox(lo, hi []float64) Box {
	return Box{Lo: lo, Hi: hi}
}

func (b Box) Dim() int {
	return len(b.Lo)
}

func (b Box) Valid() bool {
	if len(b.Lo) == 0 || len(b.Lo) != len(b.Hi) {
		return false
	}
	for i := range b.Lo {
		if math.IsNaN(b.Lo[i]) || math.IsNaN(b.Hi[i]) ||
			math.IsInf(b.Lo[i], 0) || math.IsInf(b.Hi[i], 0) {
			return false
		}
		if b.Lo[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

func (b Box) Contains(x []float64) bool {
	if len(x) != len(b.Lo) {
		return false
	}
	for i := range x {
		if x[i] < b.Lo[i] || x[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// ContainsBox reports whether inner lies entirely inside b.
func (b Box) ContainsBox(inner Box) bool {
	if inner.Dim() != b.Dim() {
		return false
	}
	for i := range b.Lo {
		if inner.Lo[i] < b.Lo[i] || inner.Hi[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

func (b Box) Intersects(o Box) bool {
	if o.Dim() != b.Dim() {
		return false
	}
	for i := range b.Lo {
		if o.Hi[i] < b.Lo[i] || o.Lo[i] > b.Hi[i] {
			return false
		}
	}
	return true
}

// Spatial projects away the trailing clock dimension.
func (b Box) Spatial() Box {
	n := len(b.Lo) - 1
	return Box{Lo: b.Lo[:n], Hi: b.Hi[:n]}
}

// Temporal returns the bounds of the trailing clock dimension.
func (b Box) Temporal() (lo, hi float64) {
	n := len(b.Lo) - 1
	return b.Lo[n], b.Hi[n]
}

// Grow expands the box by r in every dimension.
func (b Box) Grow(r []float64) Box {
	lo := make([]float64, len(b.Lo))
	hi := make([]float64, len(b.Hi))
	for i := range b.Lo {
		lo[i] = b.Lo[i] - r[i]
		hi[i] = b.Hi[i] + r[i]
	}
	return Box{Lo: lo, Hi: hi}
}
