package grid

import (
	"fmt"
	"math"

	"github.com/san-kum/hysym/internal/dynamo"
)

// cellEps absorbs floating point noise when testing cell/box inclusion.
const cellEps = 1e-9

// Quantizer maps between concrete vectors and 1-based integer cell
// symbols on a uniform rectilinear grid over a bounded domain. Symbol 0
// is the not-found sentinel.
//
// Cell j along dimension i covers [lo + j*h, lo + (j+1)*h); points on the
// upper domain boundary fall outside every cell.
type Quantizer struct {
	bounds Box
	h      []float64
	counts []int
	stride []int
	n      int
}

// NewQuantizer covers bounds with cells of size h. A zero-dimensional
// bounds (empty Lo/Hi) yields a degenerate quantizer with the single
// symbol 1, used for autonomous modes without inputs.
func NewQuantizer(bounds Box, h []float64) (*Quantizer, error) {
	if len(bounds.Lo) == 0 && len(h) == 0 {
		return &Quantizer{bounds: bounds, n: 1}, nil
	}
	if !bounds.Valid() {
		return nil, fmt.Errorf("grid: invalid bounds %v", bounds)
	}
	if len(h) != bounds.Dim() {
		return nil, fmt.Errorf("grid: cell size dimension %d does not match bounds dimension %d", len(h), bounds.Dim())
	}
	q := &Quantizer{
		bounds: bounds,
		h:      append([]float64(nil), h...),
		counts: make([]int, bounds.Dim()),
		stride: make([]int, bounds.Dim()),
		n:      1,
	}
	for i := range h {
		if h[i] <= 0 {
			return nil, fmt.Errorf("grid: cell size must be positive, got %f in dimension %d", h[i], i)
		}
		c := int(math.Round((bounds.Hi[i] - bounds.Lo[i]) / h[i]))
		if c < 1 {
			c = 1
		}
		q.counts[i] = c
		q.stride[i] = q.n
		q.n *= c
	}
	return q, nil
}

func (q *Quantizer) Dim() int      { return len(q.counts) }
func (q *Quantizer) NumCells() int { return q.n }
func (q *Quantizer) CellSize() []float64 {
	return append([]float64(nil), q.h...)
}
func (q *Quantizer) Bounds() Box { return q.bounds }

// Concrete returns the cell center of symbol s, or nil when s is outside
// [1, NumCells].
func (q *Quantizer) Concrete(s int) dynamo.State {
	if s < 1 || s > q.n {
		return nil
	}
	x := make(dynamo.State, q.Dim())
	rem := s - 1
	for i := q.Dim() - 1; i >= 0; i-- {
		j := rem / q.stride[i]
		rem -= j * q.stride[i]
		x[i] = q.bounds.Lo[i] + (float64(j)+0.5)*q.h[i]
	}
	return x
}

// Abstract returns the symbol whose cell contains x, or 0 when x lies
// outside the domain.
func (q *Quantizer) Abstract(x dynamo.State) int {
	if len(x) != q.Dim() {
		return 0
	}
	s := 1
	for i := range x {
		j := int(math.Floor((x[i] - q.bounds.Lo[i]) / q.h[i]))
		if j < 0 || j >= q.counts[i] {
			return 0
		}
		s += j * q.stride[i]
	}
	return s
}

// Cell returns the box covered by symbol s.
func (q *Quantizer) Cell(s int) (Box, bool) {
	if s < 1 || s > q.n {
		return Box{}, false
	}
	lo := make([]float64, q.Dim())
	hi := make([]float64, q.Dim())
	rem := s - 1
	for i := q.Dim() - 1; i >= 0; i-- {
		j := rem / q.stride[i]
		rem -= j * q.stride[i]
		lo[i] = q.bounds.Lo[i] + float64(j)*q.h[i]
		hi[i] = lo[i] + q.h[i]
	}
	return Box{Lo: lo, Hi: hi}, true
}

// CellsWithin enumerates, in ascending symbol order, every cell entirely
// contained in b (inner approximation).
func (q *Quantizer) CellsWithin(b Box) []int {
	return q.cellRange(b, true)
}

// CellsIntersecting enumerates, in ascending symbol order, every cell
// overlapping b (outer approximation).
func (q *Quantizer) CellsIntersecting(b Box) []int {
	return q.cellRange(b, false)
}

func (q *Quantizer) cellRange(b Box, inner bool) []int {
	if b.Dim() != q.Dim() || !b.Valid() {
		return nil
	}
	lo := make([]int, q.Dim())
	hi := make([]int, q.Dim())
	for i := range lo {
		var jlo, jhi int
		if inner {
			jlo = int(math.Ceil((b.Lo[i] - q.bounds.Lo[i] - cellEps) / q.h[i]))
			jhi = int(math.Floor((b.Hi[i]-q.bounds.Lo[i]+cellEps)/q.h[i])) - 1
		} else {
			jlo = int(math.Floor((b.Lo[i] - q.bounds.Lo[i] + cellEps) / q.h[i]))
			jhi = int(math.Floor((b.Hi[i] - q.bounds.Lo[i] - cellEps) / q.h[i]))
		}
		if jlo < 0 {
			jlo = 0
		}
		if jhi >= q.counts[i] {
			jhi = q.counts[i] - 1
		}
		if jlo > jhi {
			return nil
		}
		lo[i] = jlo
		hi[i] = jhi
	}

	var out []int
	idx := make([]int, q.Dim())
	copy(idx, lo)
	for {
		s := 1
		for i := range idx {
			s += idx[i] * q.stride[i]
		}
		out = append(out, s)

		i := 0
		for ; i < q.Dim(); i++ {
			idx[i]++
			if idx[i] <= hi[i] {
				break
			}
			idx[i] = lo[i]
		}
		if i == q.Dim() {
			break
		}
	}
	sortInts(out)
	return out
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
