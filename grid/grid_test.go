package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	g := New(4, 5, 6, 0.1, 0.2, 0.3)
	// Padded extents carry one ghost layer per side
	{
		assert.Equal(t, 6, g.PX())
		assert.Equal(t, 7, g.PY())
		assert.Equal(t, 8, g.PZ())
		assert.Equal(t, 4*5*6, g.InteriorCells())
	}
	// Derived differencing and filter-width constants
	{
		assert.InDelta(t, 5., g.HalfInvDX, 1.e-12)
		assert.InDelta(t, 2.5, g.HalfInvDY, 1.e-12)
		assert.InDelta(t, math.Pow(0.1*0.2*0.3, 2./3.), g.DeltaSq, 1.e-15)
		assert.Equal(t, DefaultSmall, g.Small)
	}
	// Flat indexing agrees with DenseArray's own row-major layout
	{
		f := g.NewField()
		assert.Equal(t, []int{6, 7, 8}, f.Shape)
		f.Set(3.25, 2, 4, 5)
		assert.Equal(t, 3.25, f.Elements[g.Idx(2, 4, 5)])
		f.Elements[g.Idx(5, 6, 7)] = -1.5
		assert.Equal(t, -1.5, f.Get(5, 6, 7))
	}
	// First interior cell center sits half a spacing from the origin
	{
		x, y, z := g.CellCenter(1, 1, 1)
		assert.InDelta(t, 0.05, x, 1.e-12)
		assert.InDelta(t, 0.1, y, 1.e-12)
		assert.InDelta(t, 0.15, z, 1.e-12)
		x, _, _ = g.CellCenter(0, 1, 1)
		assert.InDelta(t, -0.05, x, 1.e-12)
	}
}

func TestGridValidation(t *testing.T) {
	assert.Panics(t, func() { New(0, 5, 5, 0.1, 0.1, 0.1) })
	assert.Panics(t, func() { New(5, 5, 5, 0.1, -0.1, 0.1) })
}
