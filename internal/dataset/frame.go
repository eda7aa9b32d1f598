package dataset

import "math"

// NumericFrame is a column-major view of the numeric columns of a dataset.
// Missing values are represented as NaN so row-wise completeness checks are
// a single comparison per cell.
type NumericFrame struct {
	Names []string
	Cols  [][]float64
}

// NumericFrame extracts the numeric columns of the dataset.
func (d *Dataset) NumericFrame() *NumericFrame {
	frame := &NumericFrame{}
	for _, col := range d.NumericColumns() {
		values := make([]float64, len(col.Values))
		for i, v := range col.Values {
			if v == nil {
				values[i] = math.NaN()
				continue
			}
			if f, ok := ToFloat64(v); ok {
				values[i] = f
			} else {
				values[i] = math.NaN()
			}
		}
		frame.Names = append(frame.Names, col.Name)
		frame.Cols = append(frame.Cols, values)
	}
	return frame
}

// NumRows returns the row count of the frame.
func (f *NumericFrame) NumRows() int {
	if len(f.Cols) == 0 {
		return 0
	}
	return len(f.Cols[0])
}

// NumColumns returns the column count of the frame.
func (f *NumericFrame) NumColumns() int {
	return len(f.Cols)
}

// CompleteRows returns the indices of rows with no missing value in any
// column of the frame.
func (f *NumericFrame) CompleteRows() []int {
	var keep []int
	for i := 0; i < f.NumRows(); i++ {
		complete := true
		for _, col := range f.Cols {
			if math.IsNaN(col[i]) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	return keep
}
