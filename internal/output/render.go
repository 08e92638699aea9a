package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText writes the table as aligned columns, header first when present.
func WriteText(w io.Writer, t *Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range t.Grid() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, CellString(cell))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteCSV writes the table as CSV, header first when present.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	for _, row := range t.Grid() {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = CellString(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
