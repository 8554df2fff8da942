package export

import "fmt"

// Dataset is an ordered table ready for rendering. Every row must carry
// exactly one cell per header.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row of cells in header order.
func (d *Dataset) AddRow(cells ...string) {
	d.Rows = append(d.Rows, cells)
}

func (d Dataset) validate() error {
	if len(d.Headers) == 0 {
		return fmt.Errorf("dataset has no headers")
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(d.Headers))
		}
	}
	return nil
}
