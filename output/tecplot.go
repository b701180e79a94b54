// Package output writes flowfield snapshots: Tecplot point-format text
// files consumed by the usual post-processors, and rendered PNG heat maps
// of single grid planes.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/goles-cfd/goles/flowfield"
	"github.com/goles-cfd/goles/grid"
)

// WriteTecplot dumps the interior cells in Tecplot point format, one line
// per cell: center coordinates, primitive variables, pressure, temperature
// and vorticity magnitude
func WriteTecplot(w io.Writer, g grid.Grid, s *flowfield.State, gamma, gasR float64) (err error) {
	if _, err = fmt.Fprintf(w, "title     = \" 3-D compressible case \"\n"); err != nil {
		return
	}
	fmt.Fprintf(w, "variables = \" x \"\n")
	for _, name := range []string{"y", "z", "rho", "u", "v", "w", "p", "T", "Vort. mag."} {
		fmt.Fprintf(w, "\"%s\"\n", name)
	}
	fmt.Fprintf(w, "zone t=\" \"\n")
	fmt.Fprintf(w, "i=%d, j=%d, k=%d, f=point\n", g.NX, g.NY, g.NZ)
	for k := 1; k <= g.NZ; k++ {
		for j := 1; j <= g.NY; j++ {
			for i := 1; i <= g.NX; i++ {
				xc, yc, zc := g.CellCenter(i, j, k)
				r, u, v, ww, p := s.Primitive(i, j, k, gamma)
				T := p / (gasR * r)
				omega := s.VorticityMagnitude(g, i, j, k)
				if _, err = fmt.Fprintf(w, "%g %g %g %g %g %g %g %g %g %g\n",
					xc, yc, zc, r, u, v, ww, p, T, omega); err != nil {
					return
				}
			}
		}
	}
	return
}

// WriteTecplotFile writes a snapshot named after the time step, "<step>.plt"
func WriteTecplotFile(step int, g grid.Grid, s *flowfield.State, gamma, gasR float64) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(fmt.Sprintf("%d.plt", step)); err != nil {
		return fmt.Errorf("unable to create snapshot file: %w", err)
	}
	defer f.Close()
	b := bufio.NewWriter(f)
	if err = WriteTecplot(b, g, s, gamma, gasR); err != nil {
		return
	}
	return b.Flush()
}
