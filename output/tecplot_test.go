package output

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goles-cfd/goles/flowfield"
	"github.com/goles-cfd/goles/grid"
)

func TestWriteTecplot(t *testing.T) {
	var (
		g     = grid.New(3, 4, 5, 0.1, 0.1, 0.1)
		gamma = 1.4
		gasR  = 287.05
	)
	s := flowfield.NewState(g)
	s.InitUniform(g, 1.225, 30., 0., 0., 101325., gamma)
	var buf bytes.Buffer
	assert.NoError(t, WriteTecplot(&buf, g, s, gamma, gasR))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header: title, ten variable declarations, zone marker, extents line
	assert.Equal(t, "title     = \" 3-D compressible case \"", lines[0])
	assert.Equal(t, "variables = \" x \"", lines[1])
	assert.Equal(t, "\"Vort. mag.\"", lines[10])
	assert.Equal(t, "zone t=\" \"", lines[11])
	assert.Equal(t, "i=3, j=4, k=5, f=point", lines[12])
	// One row per interior cell, ten columns each
	rows := lines[13:]
	assert.Equal(t, g.InteriorCells(), len(rows))
	for _, row := range rows {
		assert.Equal(t, 10, len(strings.Fields(row)))
	}
	// A uniform stream reports its own primitives
	first := strings.Fields(rows[0])
	assert.Equal(t, "1.225", first[3])
	u, err := strconv.ParseFloat(first[4], 64)
	assert.NoError(t, err)
	assert.InDelta(t, 30., u, 1.e-9)
	assert.Equal(t, "0", first[5])
}
