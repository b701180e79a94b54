package turbulence

import (
	"math"

	"github.com/ctessum/sparse"

	"github.com/goles-cfd/goles/grid"
)

// Clip range for the dynamic coefficient: non-negative eddy viscosity below,
// empirical Smagorinsky tuning above
const (
	CdMin = 0.
	CdMax = 0.15
)

// Velocities derives the primitive velocity components u = rhoU/rho (and
// v, w likewise) over the full padded grid, ghost layers included, since
// the differencing and filter stencils read one layer beyond the interior.
// Density must be positive everywhere; that is the outer solver's
// realizability invariant and is not re-validated here.
func Velocities(g grid.Grid, rho, rhoU, rhoV, rhoW *sparse.DenseArray) (u, v, w *sparse.DenseArray) {
	u, v, w = g.NewField(), g.NewField(), g.NewField()
	for i := 0; i <= g.NX+1; i++ {
		for j := 0; j <= g.NY+1; j++ {
			for k := 0; k <= g.NZ+1; k++ {
				n := g.Idx(i, j, k)
				rr := 1. / rho.Elements[n]
				u.Elements[n] = rhoU.Elements[n] * rr
				v.Elements[n] = rhoV.Elements[n] * rr
				w.Elements[n] = rhoW.Elements[n] * rr
			}
		}
	}
	return
}

// VelocityProducts forms the nine unfiltered correlation fields u_a*u_b
// over the full padded grid
func VelocityProducts(g grid.Grid, u, v, w *sparse.DenseArray) (uu Tensor) {
	var (
		vel = [3]*sparse.DenseArray{u, v, w}
	)
	uu = NewTensor(g)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for i := 0; i <= g.NX+1; i++ {
				for j := 0; j <= g.NY+1; j++ {
					for k := 0; k <= g.NZ+1; k++ {
						n := g.Idx(i, j, k)
						uu[a][b].Elements[n] = vel[a].Elements[n] * vel[b].Elements[n]
					}
				}
			}
		}
	}
	return
}

// Leonard computes the Leonard stress tensor
//
//	L_ab = filter(u_a u_b) - filter(u_a) filter(u_b)
//
// at every interior cell, the resolvable part of the turbulent stress. The
// test-filtered velocities are returned as well since the dynamic procedure
// rederives the test-scale strain from them.
func Leonard(g grid.Grid, u, v, w *sparse.DenseArray, h Kernel) (L Tensor, uHat, vHat, wHat *sparse.DenseArray) {
	var (
		uuHat = VelocityProducts(g, u, v, w).Filter(g, h)
	)
	uHat = Filter(g, u, h)
	vHat = Filter(g, v, h)
	wHat = Filter(g, w, h)
	velHat := [3]*sparse.DenseArray{uHat, vHat, wHat}
	L = NewTensor(g)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			for i := 1; i <= g.NX; i++ {
				for j := 1; j <= g.NY; j++ {
					for k := 1; k <= g.NZ; k++ {
						n := g.Idx(i, j, k)
						L[a][b].Elements[n] = uuHat[a][b].Elements[n] -
							velHat[a].Elements[n]*velHat[b].Elements[n]
					}
				}
			}
		}
	}
	return
}

// VelocityGradient evaluates du_a/dx_b at cell (i,j,k) by centered
// differences, one stencil arm into each neighbor
func VelocityGradient(g grid.Grid, u, v, w *sparse.DenseArray, i, j, k int) (d [3][3]float64) {
	var (
		vel = [3]*sparse.DenseArray{u, v, w}
	)
	for a := 0; a < 3; a++ {
		e := vel[a].Elements
		d[a][0] = (e[g.Idx(i+1, j, k)] - e[g.Idx(i-1, j, k)]) * g.HalfInvDX
		d[a][1] = (e[g.Idx(i, j+1, k)] - e[g.Idx(i, j-1, k)]) * g.HalfInvDY
		d[a][2] = (e[g.Idx(i, j, k+1)] - e[g.Idx(i, j, k-1)]) * g.HalfInvDZ
	}
	return
}

// Strain is the symmetric part of the velocity gradient,
// S_ab = (du_a/dx_b + du_b/dx_a)/2
func Strain(d [3][3]float64) (s [3][3]float64) {
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			s[a][b] = 0.5 * (d[a][b] + d[b][a])
		}
	}
	return
}

// StrainMagnitude is |S| = sqrt(2 S_ab S_ab) summed over all nine
// components; for symmetric S this double-counts the off-diagonals, which
// is the normalization the model constants are tuned for
func StrainMagnitude(s [3][3]float64) float64 {
	return math.Sqrt(2. * contract(s, s))
}

// DynamicSmagorinsky computes the space-varying eddy viscosity of the
// Smagorinsky SGS model with the dynamic procedure of Germano, closed for a
// single scalar coefficient by Lilly's least-squares contraction. Inputs
// are the conservative variables (density and the three momentum
// components) on the padded grid; the result is written into muSGS at
// interior cells only, ghost and halo values are left untouched. All
// intermediate fields are transient to this call.
func DynamicSmagorinsky(g grid.Grid, rho, rhoU, rhoV, rhoW, muSGS *sparse.DenseArray, h Kernel) {
	var (
		u, v, w             = Velocities(g, rho, rhoU, rhoV, rhoW)
		L, uHat, vHat, wHat = Leonard(g, u, v, w, h)
		magS                = g.NewField()
		gridTerm, testTerm  = NewTensor(g), NewTensor(g)
	)
	// Grid-scale term |S| S_ab from the unfiltered velocities, test-scale
	// term |S^| S^_ab rederived from the test-filtered velocities (not by
	// filtering S itself; intentional dynamic-procedure variant)
	for i := 1; i <= g.NX; i++ {
		for j := 1; j <= g.NY; j++ {
			for k := 1; k <= g.NZ; k++ {
				n := g.Idx(i, j, k)

				s := Strain(VelocityGradient(g, u, v, w, i, j, k))
				mag := StrainMagnitude(s)
				magS.Elements[n] = mag

				sHat := Strain(VelocityGradient(g, uHat, vHat, wHat, i, j, k))
				magHat := StrainMagnitude(sHat)

				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						gridTerm[a][b].Elements[n] = mag * s[a][b]
						testTerm[a][b].Elements[n] = magHat * sHat[a][b]
					}
				}
			}
		}
	}

	gridTermHat := gridTerm.Filter(g, h)

	for i := 1; i <= g.NX; i++ {
		for j := 1; j <= g.NY; j++ {
			for k := 1; k <= g.NZ; k++ {
				n := g.Idx(i, j, k)

				// M_ab = Delta^^2 B_ab - Delta^2 A^_ab with the test filter
				// twice the grid width, Delta^^2 = 4 Delta^2
				var m [3][3]float64
				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						m[a][b] = g.DeltaSq * (4.*testTerm[a][b].Elements[n] -
							gridTermHat[a][b].Elements[n])
					}
				}

				// The Germano identity only constrains the traceless part
				l := deviatoric(L.At(g, i, j, k))

				Cd := -0.5 * contract(l, m) / (contract(m, m) + g.Small)
				if Cd > CdMax {
					Cd = CdMax
				} else if Cd < CdMin {
					Cd = CdMin
				}

				muSGS.Elements[n] = rho.Elements[n] * Cd * g.DeltaSq * magS.Elements[n]
			}
		}
	}
}
