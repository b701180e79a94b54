package turbulence

import (
	"math/rand"
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/assert"

	"github.com/goles-cfd/goles/grid"
)

// fill evaluates f at every padded cell, ghost layers included
func fill(g grid.Grid, f func(x, y, z float64) float64) (u *sparse.DenseArray) {
	u = g.NewField()
	for i := 0; i <= g.NX+1; i++ {
		for j := 0; j <= g.NY+1; j++ {
			for k := 0; k <= g.NZ+1; k++ {
				x, y, z := g.CellCenter(i, j, k)
				u.Elements[g.Idx(i, j, k)] = f(x, y, z)
			}
		}
	}
	return
}

// deepInterior visits the cells where all three filter passes had full
// stencil support: one cell inside the interior along the i and k axes
func deepInterior(g grid.Grid, visit func(i, j, k int)) {
	for i := 1; i <= g.NX-1; i++ {
		for j := 1; j <= g.NY; j++ {
			for k := 1; k <= g.NZ-1; k++ {
				visit(i, j, k)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	g := grid.New(6, 6, 6, 0.1, 0.2, 0.3)
	// Output shape matches the full padded input shape
	{
		u := fill(g, func(x, y, z float64) float64 { return x * y * z })
		for _, h := range []Kernel{BoxKernel, GaussianKernel} {
			fu := Filter(g, u, h)
			assert.Equal(t, u.Shape, fu.Shape)
		}
	}
	// A constant field filters to the same constant wherever the stencil
	// had full support, since the kernels sum to one
	{
		u := fill(g, func(x, y, z float64) float64 { return 42. })
		for _, h := range []Kernel{BoxKernel, GaussianKernel} {
			fu := Filter(g, u, h)
			deepInterior(g, func(i, j, k int) {
				assert.InDelta(t, 42., fu.Get(i, j, k), 1.e-12)
			})
		}
	}
	// A linear ramp passes through unchanged in the same region: the
	// 3-tap symmetric kernels introduce no overshoot for a linear signal
	{
		u := fill(g, func(x, y, z float64) float64 { return 2.*x - 3.*y + z })
		for _, h := range []Kernel{BoxKernel, GaussianKernel} {
			fu := Filter(g, u, h)
			deepInterior(g, func(i, j, k int) {
				x, y, z := g.CellCenter(i, j, k)
				assert.InDelta(t, 2.*x-3.*y+z, fu.Get(i, j, k), 1.e-12)
			})
		}
	}
	// Linearity: filter(aX+bY) == a filter(X) + b filter(Y) at every
	// stored point, partial-support cells included
	{
		rnd := rand.New(rand.NewSource(7))
		X, Y := g.NewField(), g.NewField()
		for n := range X.Elements {
			X.Elements[n] = rnd.NormFloat64()
			Y.Elements[n] = rnd.NormFloat64()
		}
		const a, b = 1.5, -2.25
		Z := g.NewField()
		for n := range Z.Elements {
			Z.Elements[n] = a*X.Elements[n] + b*Y.Elements[n]
		}
		fX := Filter(g, X, BoxKernel)
		fY := Filter(g, Y, BoxKernel)
		fZ := Filter(g, Z, BoxKernel)
		for n := range fZ.Elements {
			assert.InDelta(t, a*fX.Elements[n]+b*fY.Elements[n], fZ.Elements[n], 1.e-12)
		}
	}
	// Filtering never mutates its input
	{
		u := fill(g, func(x, y, z float64) float64 { return x + 10.*y })
		saved := u.Copy()
		_ = Filter(g, u, BoxKernel)
		assert.Equal(t, saved.Elements, u.Elements)
	}
}

func TestKernelByName(t *testing.T) {
	h, err := KernelByName("box")
	assert.NoError(t, err)
	assert.Equal(t, BoxKernel, h)
	h, err = KernelByName("")
	assert.NoError(t, err)
	assert.Equal(t, BoxKernel, h)
	h, err = KernelByName("gaussian")
	assert.NoError(t, err)
	assert.Equal(t, GaussianKernel, h)
	_, err = KernelByName("sinc")
	assert.Error(t, err)
	// Both stencils are normalized
	for _, h := range []Kernel{BoxKernel, GaussianKernel} {
		assert.InDelta(t, 1., h[0]+h[1]+h[2], 1.e-15)
	}
}
