package profiler

import (
	"fmt"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
)

// estimateMemoryBytes estimates the in-memory footprint of a dataset,
// counting the row index and every stored value.
func estimateMemoryBytes(ds *dataset.Dataset) int64 {
	var total int64 = int64(ds.NumRows()) * 8 // row index
	for _, col := range ds.Columns() {
		for _, v := range col.Values {
			total += int64(dataset.ValueSize(v))
		}
	}
	return total
}

// FormatMemorySize renders a byte count using binary units with two-decimal
// rounding: Bytes below 1 KB, then KB, MB, GB.
func FormatMemorySize(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * 1024
		gb = 1024 * 1024 * 1024
	)
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d Bytes", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kb)
	case bytes < gb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
	}
}
