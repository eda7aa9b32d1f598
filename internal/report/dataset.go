package report

import (
	"fmt"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
)

// maxRenderedRows caps how many result rows are printed before the
// output is elided.
const maxRenderedRows = 50

// RenderDataset prints a dataset as an aligned table, eliding rows past
// the display cap.
func (r *Renderer) RenderDataset(ds *dataset.Dataset) {
	if ds == nil || ds.NumColumns() == 0 {
		fmt.Fprintln(r.out, "(empty result)")
		return
	}

	total := ds.NumRows()
	shown := total
	if shown > maxRenderedRows {
		shown = maxRenderedRows
	}

	rows := make([][]string, 0, shown)
	for i := 0; i < shown; i++ {
		raw := ds.Row(i)
		row := make([]string, len(raw))
		for j, v := range raw {
			row[j] = dataset.FormatValue(v)
		}
		rows = append(rows, row)
	}
	r.table(ds.ColumnNames(), rows)

	if total > shown {
		fmt.Fprintf(r.out, "... %d more row(s)\n", total-shown)
	}
	fmt.Fprintf(r.out, "%d row(s)\n", total)
}
