package turbulence

import (
	"github.com/ctessum/sparse"

	"github.com/goles-cfd/goles/grid"
)

// Tensor is a rank-2 tensor field: nine scalar fields indexed (row, col) in
// 0..2. Symmetric tensors (strain, Leonard, model) come out symmetric from
// their defining formulas, but all nine components are stored and computed
// independently, matching the reference algebra component for component.
type Tensor [3][3]*sparse.DenseArray

func NewTensor(g grid.Grid) (t Tensor) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			t[a][b] = g.NewField()
		}
	}
	return
}

// Filter applies the separable filter to every component, yielding a new
// tensor field with independent storage
func (t Tensor) Filter(g grid.Grid, h Kernel) (out Tensor) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			out[a][b] = Filter(g, t[a][b], h)
		}
	}
	return
}

// At gathers the nine components at one cell into a point tensor
func (t Tensor) At(g grid.Grid, i, j, k int) (p [3][3]float64) {
	n := g.Idx(i, j, k)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			p[a][b] = t[a][b].Elements[n]
		}
	}
	return
}

// contract is the full double contraction of two point tensors, summing
// over all nine index pairs
func contract(a, b [3][3]float64) (s float64) {
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			s += a[p][q] * b[p][q]
		}
	}
	return
}

// deviatoric removes the isotropic part, p_ab - (1/3) tr(p) delta_ab
func deviatoric(p [3][3]float64) [3][3]float64 {
	third := (p[0][0] + p[1][1] + p[2][2]) / 3.
	p[0][0] -= third
	p[1][1] -= third
	p[2][2] -= third
	return p
}
