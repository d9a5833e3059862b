package features

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/mat"
)

// Matrix is the features-by-samples result table. Row i corresponds to
// input sample i; columns are the concatenated family blocks with
// FAMILY_{k} names.
type Matrix struct {
	columns []string
	data    [][]float64
}

// Rows returns the number of samples.
func (m *Matrix) Rows() int { return len(m.data) }

// Columns returns the column names in block order.
func (m *Matrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, len(m.data[i]))
	copy(out, m.data[i])
	return out
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.data[i][j] }

// Column returns a copy of the named column, or false if it does not
// exist.
func (m *Matrix) Column(name string) ([]float64, bool) {
	for j, col := range m.columns {
		if col != name {
			continue
		}
		out := make([]float64, len(m.data))
		for i := range m.data {
			out[i] = m.data[i][j]
		}
		return out, true
	}
	return nil, false
}

// Dense exports the matrix as a gonum dense matrix for downstream
// numeric work (classifier training lives outside this library).
func (m *Matrix) Dense() *mat.Dense {
	if len(m.data) == 0 || len(m.columns) == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(len(m.data), len(m.columns), nil)
	for i, row := range m.data {
		out.SetRow(i, row)
	}
	return out
}

// Render returns the matrix as a human-readable text table.
func (m *Matrix) Render() string {
	w := table.NewWriter()

	header := make(table.Row, 0, len(m.columns)+1)
	header = append(header, "#")
	for _, col := range m.columns {
		header = append(header, col)
	}
	w.AppendHeader(header)

	for i, row := range m.data {
		cells := make(table.Row, 0, len(row)+1)
		cells = append(cells, i)
		for _, v := range row {
			cells = append(cells, v)
		}
		w.AppendRow(cells)
	}

	return w.Render()
}
