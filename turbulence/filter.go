// Package turbulence implements the sub-grid scale closure for the LES
// solver: a separable 3-D linear filter and the Dynamic Smagorinsky model
// of Germano et al. with the Lilly least-squares modification.
package turbulence

import (
	"fmt"

	"github.com/ctessum/sparse"

	"github.com/goles-cfd/goles/grid"
)

// Kernel is a normalized 3-tap stencil. Applying it successively along the
// three grid axes realizes the separable (tensor-product) 3-D filter at
// O(3N) cost per point instead of O(N^3) for the full 3-D kernel.
type Kernel [3]float64

var (
	// BoxKernel is the top-hat test filter used by the dynamic procedure
	BoxKernel = Kernel{1. / 3., 1. / 3., 1. / 3.}
	// GaussianKernel is a Gaussian-like alternative of the same support
	GaussianKernel = Kernel{1. / 4., 1. / 2., 1. / 4.}
)

// KernelByName maps the FilterKernel input parameter onto a stencil
func KernelByName(name string) (h Kernel, err error) {
	switch name {
	case "box", "":
		h = BoxKernel
	case "gaussian":
		h = GaussianKernel
	default:
		err = fmt.Errorf("unknown filter kernel %q, want \"box\" or \"gaussian\"", name)
	}
	return
}

// Filter produces a spatially filtered copy of field by three sequential
// 1-D convolution passes, along j, then k, then i. Each pass reads the
// output of the previous one; the index ranges narrow progressively since
// the convolution consumes one layer of boundary support per axis, so the
// result is fully formed only one cell inside the interior boundary. The
// single ghost layer must hold valid data before the call. The input field
// is never mutated.
func Filter(g grid.Grid, field *sparse.DenseArray, h Kernel) (out *sparse.DenseArray) {
	var (
		tmp = g.NewField()
		u   = field.Elements
	)
	out = g.NewField()
	// Pass along j: the ghost layers of the source are valid, so j spans
	// the full interior while i and k keep their low-side ghost. The two
	// scratch arrays then alternate roles across the remaining passes.
	for i := 0; i <= g.NX; i++ {
		for j := 1; j <= g.NY; j++ {
			for k := 0; k <= g.NZ; k++ {
				tmp.Elements[g.Idx(i, j, k)] = h[0]*u[g.Idx(i, j-1, k)] +
					h[1]*u[g.Idx(i, j, k)] +
					h[2]*u[g.Idx(i, j+1, k)]
			}
		}
	}
	// Pass along k, reading the j-filtered intermediate
	for i := 0; i <= g.NX; i++ {
		for j := 0; j <= g.NY; j++ {
			for k := 1; k <= g.NZ; k++ {
				out.Elements[g.Idx(i, j, k)] = h[0]*tmp.Elements[g.Idx(i, j, k-1)] +
					h[1]*tmp.Elements[g.Idx(i, j, k)] +
					h[2]*tmp.Elements[g.Idx(i, j, k+1)]
			}
		}
	}
	// Pass along i, reading the jk-filtered intermediate
	for i := 1; i <= g.NX; i++ {
		for j := 0; j <= g.NY; j++ {
			for k := 0; k <= g.NZ; k++ {
				tmp.Elements[g.Idx(i, j, k)] = h[0]*out.Elements[g.Idx(i-1, j, k)] +
					h[1]*out.Elements[g.Idx(i, j, k)] +
					h[2]*out.Elements[g.Idx(i+1, j, k)]
			}
		}
	}
	out = tmp
	return
}
