// Package flowfield owns the conservative flow variables of the outer
// solver and the pointwise diagnostics derived from them. The turbulence
// closure reads density and momentum from here and writes back into the
// persistent eddy-viscosity array.
package flowfield

import (
	"math"

	"github.com/ctessum/sparse"

	"github.com/goles-cfd/goles/grid"
)

// State holds the conservative variables over the padded grid plus the
// eddy-viscosity field the SGS model fills in. These are the only arrays
// that persist across estimator calls.
type State struct {
	Rho              *sparse.DenseArray // density
	RhoU, RhoV, RhoW *sparse.DenseArray // momentum components
	E                *sparse.DenseArray // total energy
	MuSGS            *sparse.DenseArray // sub-grid scale eddy viscosity
}

func NewState(g grid.Grid) *State {
	return &State{
		Rho:   g.NewField(),
		RhoU:  g.NewField(),
		RhoV:  g.NewField(),
		RhoW:  g.NewField(),
		E:     g.NewField(),
		MuSGS: g.NewField(),
	}
}

// Primitive returns density, velocity and pressure at one cell,
// p = (E - rho |u|^2 / 2)(gamma - 1)
func (s *State) Primitive(i, j, k int, gamma float64) (r, u, v, w, p float64) {
	r = s.Rho.Get(i, j, k)
	u = s.RhoU.Get(i, j, k) / r
	v = s.RhoV.Get(i, j, k) / r
	w = s.RhoW.Get(i, j, k) / r
	p = (s.E.Get(i, j, k) - 0.5*r*(u*u+v*v+w*w)) * (gamma - 1.)
	return
}

// Temperature from the ideal gas law, T = p / (R rho)
func (s *State) Temperature(i, j, k int, gamma, gasR float64) float64 {
	r, _, _, _, p := s.Primitive(i, j, k, gamma)
	return p / (gasR * r)
}

// VorticityMagnitude evaluates |omega| at an interior cell by centered
// differences of the primitive velocities
func (s *State) VorticityMagnitude(g grid.Grid, i, j, k int) float64 {
	var (
		vel = func(m *sparse.DenseArray, i, j, k int) float64 {
			return m.Get(i, j, k) / s.Rho.Get(i, j, k)
		}
	)
	dvdx := (vel(s.RhoV, i+1, j, k) - vel(s.RhoV, i-1, j, k)) * g.HalfInvDX
	dwdx := (vel(s.RhoW, i+1, j, k) - vel(s.RhoW, i-1, j, k)) * g.HalfInvDX
	dudy := (vel(s.RhoU, i, j+1, k) - vel(s.RhoU, i, j-1, k)) * g.HalfInvDY
	dwdy := (vel(s.RhoW, i, j+1, k) - vel(s.RhoW, i, j-1, k)) * g.HalfInvDY
	dudz := (vel(s.RhoU, i, j, k+1) - vel(s.RhoU, i, j, k-1)) * g.HalfInvDZ
	dvdz := (vel(s.RhoV, i, j, k+1) - vel(s.RhoV, i, j, k-1)) * g.HalfInvDZ
	o23 := 0.5 * (dwdy - dvdz)
	o13 := 0.5 * (dudz - dwdx)
	o12 := 0.5 * (dvdx - dudy)
	return math.Sqrt(o12*o12 + o13*o13 + o23*o23)
}

// setConservative fills one cell, ghost cells included, from primitives
func (s *State) setConservative(i, j, k int, r, u, v, w, p, gamma float64) {
	s.Rho.Set(r, i, j, k)
	s.RhoU.Set(r*u, i, j, k)
	s.RhoV.Set(r*v, i, j, k)
	s.RhoW.Set(r*w, i, j, k)
	s.E.Set(p/(gamma-1.)+0.5*r*(u*u+v*v+w*w), i, j, k)
}

// InitUniform sets a spatially constant state over the whole padded grid
func (s *State) InitUniform(g grid.Grid, r, u, v, w, p, gamma float64) {
	for i := 0; i <= g.NX+1; i++ {
		for j := 0; j <= g.NY+1; j++ {
			for k := 0; k <= g.NZ+1; k++ {
				s.setConservative(i, j, k, r, u, v, w, p, gamma)
			}
		}
	}
}

// InitTaylorGreen sets the periodic Taylor-Green vortex at constant
// density, the standard transition-to-turbulence validation state. The
// domain spans one period per axis; ghost cells get the analytic
// continuation of the same formula.
func (s *State) InitTaylorGreen(g grid.Grid, r, v0, p0, gamma float64) {
	var (
		kx = 2. * math.Pi / (float64(g.NX) * g.DX)
		ky = 2. * math.Pi / (float64(g.NY) * g.DY)
		kz = 2. * math.Pi / (float64(g.NZ) * g.DZ)
	)
	for i := 0; i <= g.NX+1; i++ {
		for j := 0; j <= g.NY+1; j++ {
			for k := 0; k <= g.NZ+1; k++ {
				x, y, z := g.CellCenter(i, j, k)
				u := v0 * math.Sin(kx*x) * math.Cos(ky*y) * math.Cos(kz*z)
				v := -v0 * math.Cos(kx*x) * math.Sin(ky*y) * math.Cos(kz*z)
				p := p0 + r*v0*v0/16.*
					(math.Cos(2.*kx*x)+math.Cos(2.*ky*y))*(math.Cos(2.*kz*z)+2.)
				s.setConservative(i, j, k, r, u, v, 0., p, gamma)
			}
		}
	}
}
