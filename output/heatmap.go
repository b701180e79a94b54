package output

import (
	"github.com/ctessum/sparse"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/goles-cfd/goles/grid"
)

// plane adapts one interior k-plane of a scalar field to plotter.GridXYZ
type plane struct {
	g grid.Grid
	f *sparse.DenseArray
	k int
}

func (p plane) Dims() (c, r int) { return p.g.NX, p.g.NY }

func (p plane) Z(c, r int) float64 { return p.f.Get(c+1, r+1, p.k) }

func (p plane) X(c int) float64 { return (float64(c) + 0.5) * p.g.DX }

func (p plane) Y(r int) float64 { return (float64(r) + 0.5) * p.g.DY }

// WriteHeatMap renders the interior of one k-plane of field as a PNG heat
// map. Used for quick-look diagnostics of the eddy-viscosity field without
// a Tecplot reader at hand.
func WriteHeatMap(path, title string, g grid.Grid, field *sparse.DenseArray, k int) (err error) {
	var (
		pal = moreland.SmoothBlueRed().Palette(255)
		hm  = plotter.NewHeatMap(plane{g: g, f: field, k: k}, pal)
	)
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
