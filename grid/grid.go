// Package grid holds the structured-grid geometry shared by the flow state,
// the turbulence closure and the snapshot writers. The grid is a fixed-size
// 3-D index space of NX x NY x NZ interior cells with one ghost layer on
// each side in every axis, so storage extents are NX+2, NY+2, NZ+2. Cell
// spacing is uniform per axis and constant for the run.
package grid

import (
	"math"

	"github.com/ctessum/sparse"
)

type Grid struct {
	NX, NY, NZ int     // Interior cell counts per axis
	DX, DY, DZ float64 // Uniform cell spacing per axis

	// Precomputed 1/(2*delta) factors for centered differences
	HalfInvDX, HalfInvDY, HalfInvDZ float64

	// Grid filter width squared, Delta^2 with Delta = (DX*DY*DZ)^(1/3)
	DeltaSq float64

	// Additive regularizer for the least-squares contraction denominator
	Small float64
}

const DefaultSmall = 1.e-10

func New(nx, ny, nz int, dx, dy, dz float64) (g Grid) {
	if nx < 1 || ny < 1 || nz < 1 {
		panic("grid: interior extents must be at least one cell per axis")
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		panic("grid: cell spacing must be positive")
	}
	g = Grid{
		NX: nx, NY: ny, NZ: nz,
		DX: dx, DY: dy, DZ: dz,
		HalfInvDX: 1. / (2. * dx),
		HalfInvDY: 1. / (2. * dy),
		HalfInvDZ: 1. / (2. * dz),
		DeltaSq:   math.Pow(dx*dy*dz, 2./3.),
		Small:     DefaultSmall,
	}
	return
}

// PX, PY, PZ are the padded storage extents, interior plus both ghost layers
func (g Grid) PX() int { return g.NX + 2 }
func (g Grid) PY() int { return g.NY + 2 }
func (g Grid) PZ() int { return g.NZ + 2 }

// NewField allocates a zeroed scalar field over the full padded grid
func (g Grid) NewField() *sparse.DenseArray {
	return sparse.ZerosDense(g.PX(), g.PY(), g.PZ())
}

// Idx converts (i,j,k) cell indices into the flat row-major offset of a
// padded field's Elements slice, for hot loops that bypass DenseArray.Get
func (g Grid) Idx(i, j, k int) int {
	return (i*g.PY()+j)*g.PZ() + k
}

// CellCenter returns the physical coordinates of cell (i,j,k), with the
// first interior cell (1,1,1) centered at half a spacing from the origin
func (g Grid) CellCenter(i, j, k int) (x, y, z float64) {
	x = (float64(i-1) + 0.5) * g.DX
	y = (float64(j-1) + 0.5) * g.DY
	z = (float64(k-1) + 0.5) * g.DZ
	return
}

// InteriorCells is the number of cells the solver updates, excluding ghosts
func (g Grid) InteriorCells() int {
	return g.NX * g.NY * g.NZ
}
