package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hysym/internal/dynamo"
	"github.com/san-kum/hysym/internal/grid"
)

var _ = Describe("Box", func() {
	It("rejects inverted and empty bounds", func() {
		Expect(grid.NewBox([]float64{1}, []float64{0}).Valid()).To(BeFalse())
		Expect(grid.Box{}.Valid()).To(BeFalse())
		Expect(grid.NewBox([]float64{0, 0}, []float64{1, 1}).Valid()).To(BeTrue())
	})

	It("treats bounds as closed for containment", func() {
		b := grid.NewBox([]float64{0, 0}, []float64{1, 2})
		Expect(b.Contains([]float64{0, 0})).To(BeTrue())
		Expect(b.Contains([]float64{1, 2})).To(BeTrue())
		Expect(b.Contains([]float64{1.0001, 1})).To(BeFalse())
	})

	It("splits augmented guards into spatial and temporal parts", func() {
		g := grid.NewBox([]float64{21, 0.25}, []float64{25, 2.0})
		Expect(g.Spatial().Lo).To(Equal([]float64{21}))
		Expect(g.Spatial().Hi).To(Equal([]float64{25}))
		lo, hi := g.Temporal()
		Expect(lo).To(Equal(0.25))
		Expect(hi).To(Equal(2.0))
	})

	It("grows symmetrically per dimension", func() {
		b := grid.NewBox([]float64{0, 0}, []float64{1, 1}).Grow([]float64{0.5, 0.25})
		Expect(b.Lo).To(Equal([]float64{-0.5, -0.25}))
		Expect(b.Hi).To(Equal([]float64{1.5, 1.25}))
	})
})

var _ = Describe("Quantizer", func() {
	var q *grid.Quantizer

	BeforeEach(func() {
		var err error
		q, err = grid.NewQuantizer(grid.NewBox([]float64{0, 0}, []float64{1, 1}), []float64{0.25, 0.5})
		Expect(err).NotTo(HaveOccurred())
	})

	It("counts cells per dimension", func() {
		Expect(q.NumCells()).To(Equal(8))
	})

	It("round-trips cell centers", func() {
		for s := 1; s <= q.NumCells(); s++ {
			x := q.Concrete(s)
			Expect(x).NotTo(BeNil())
			Expect(q.Abstract(x)).To(Equal(s))
		}
	})

	It("numbers symbols from 1 with the first dimension fastest", func() {
		Expect(q.Abstract(dynamo.State{0.1, 0.1})).To(Equal(1))
		Expect(q.Abstract(dynamo.State{0.3, 0.1})).To(Equal(2))
		Expect(q.Abstract(dynamo.State{0.1, 0.6})).To(Equal(5))
	})

	It("returns the sentinel outside the domain", func() {
		Expect(q.Abstract(dynamo.State{-0.1, 0.5})).To(Equal(0))
		Expect(q.Abstract(dynamo.State{0.5, 1.5})).To(Equal(0))
		Expect(q.Concrete(0)).To(BeNil())
		Expect(q.Concrete(9)).To(BeNil())
	})

	It("places the upper domain boundary outside every cell", func() {
		Expect(q.Abstract(dynamo.State{1, 0.5})).To(Equal(0))
	})

	It("enumerates contained cells as an inner approximation", func() {
		// Covers columns 1..2 fully in x, row 0 fully in y.
		in := q.CellsWithin(grid.NewBox([]float64{0.25, 0}, []float64{0.75, 0.5}))
		Expect(in).To(Equal([]int{2, 3}))

		// Shrinking below one cell width yields nothing.
		Expect(q.CellsWithin(grid.NewBox([]float64{0.3, 0}, []float64{0.4, 0.5}))).To(BeEmpty())
	})

	It("enumerates overlapping cells as an outer approximation", func() {
		out := q.CellsIntersecting(grid.NewBox([]float64{0.3, 0}, []float64{0.4, 0.5}))
		Expect(out).To(Equal([]int{2}))

		out = q.CellsIntersecting(grid.NewBox([]float64{0.2, 0.4}, []float64{0.3, 0.6}))
		Expect(out).To(Equal([]int{1, 2, 5, 6}))
	})

	It("clips enumeration to the domain", func() {
		out := q.CellsIntersecting(grid.NewBox([]float64{-5, -5}, []float64{5, 5}))
		Expect(out).To(HaveLen(8))
	})

	It("supports a degenerate zero-dimensional quantizer", func() {
		d, err := grid.NewQuantizer(grid.Box{}, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.NumCells()).To(Equal(1))
		Expect(d.Concrete(1)).To(Equal(dynamo.State{}))
	})

	It("rejects mismatched or non-positive cell sizes", func() {
		_, err := grid.NewQuantizer(grid.NewBox([]float64{0}, []float64{1}), []float64{0.5, 0.5})
		Expect(err).To(HaveOccurred())
		_, err = grid.NewQuantizer(grid.NewBox([]float64{0}, []float64{1}), []float64{0})
		Expect(err).To(HaveOccurred())
	})
})
