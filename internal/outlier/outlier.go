// Package outlier implements density-based outlier detection over the
// numeric columns of a dataset. Points that density clustering cannot
// assign to any cluster (noise points) are reported as outliers.
//
// Detect never fails across its public boundary: every failure mode is
// encoded in the returned Result's Error field so callers always receive a
// well-formed value.
package outlier

import (
	"fmt"
	"math"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
)

// Method is the tag recorded in results produced by this package.
const Method = "dbscan"

// Params configures the density neighborhood.
type Params struct {
	Radius       float64 `json:"radius"`        // neighborhood radius in standardized space
	MinNeighbors int     `json:"min_neighbors"` // other points required within the radius
}

// Result reports the outcome of one detection run.
// If Error is set, the counts are zeroed and must not be trusted.
type Result struct {
	Method            string  `json:"method"`
	Params            Params  `json:"params_used"`
	OutlierCount      int     `json:"outlier_count"`
	OutlierPercentage float64 `json:"outlier_percentage"` // relative to RowsAnalyzed, 2 decimals
	RowsAnalyzed      int     `json:"rows_analyzed"`
	RowsDropped       int     `json:"rows_dropped_nan"`
	Error             string  `json:"error,omitempty"`
}

// noise marks points not reachable from any cluster; unvisited marks points
// the scan has not labeled yet.
const (
	noise     = -1
	unvisited = -2
)

// Detect runs density-based clustering over the numeric frame and reports
// noise points as outliers.
//
// Rows containing any missing value are dropped first; the reported
// percentage is always relative to the cleaned population, not the original
// row count. Columns are standardized to zero mean and unit variance before
// clustering so differing scales cannot bias the neighborhood radius.
func Detect(frame *dataset.NumericFrame, params Params) Result {
	result := Result{Method: Method, Params: params}

	if frame == nil || frame.NumColumns() == 0 || frame.NumRows() == 0 {
		result.Error = "no numeric data available for outlier detection"
		return result
	}

	keep := frame.CompleteRows()

	if len(keep) < params.MinNeighbors {
		result.Error = fmt.Sprintf(
			"not enough complete rows for density estimation: %d rows after dropping missing values, need at least %d",
			len(keep), params.MinNeighbors)
		return result
	}

	if math.IsNaN(params.Radius) || params.Radius <= 0 {
		result.Error = fmt.Sprintf("invalid neighborhood radius %v: must be a positive number", params.Radius)
		return result
	}
	if params.MinNeighbors < 1 {
		result.Error = fmt.Sprintf("invalid min_neighbors %d: must be at least 1", params.MinNeighbors)
		return result
	}

	// Counts are recorded only once the run is known to proceed; an error
	// result always carries zeroed counts.
	result.RowsDropped = frame.NumRows() - len(keep)
	result.RowsAnalyzed = len(keep)

	points := standardize(frame, keep)

	labels := cluster(points, params.Radius, params.MinNeighbors)

	count := 0
	for _, label := range labels {
		if label == noise {
			count++
		}
	}
	result.OutlierCount = count
	result.OutlierPercentage = round2(100 * float64(count) / float64(len(keep)))
	return result
}

// standardize builds row-major points from the kept rows, scaling each
// column to zero mean and unit variance. Constant columns scale to zero.
func standardize(frame *dataset.NumericFrame, keep []int) [][]float64 {
	n := len(keep)
	m := frame.NumColumns()

	means := make([]float64, m)
	stds := make([]float64, m)
	for j, col := range frame.Cols {
		sum := 0.0
		for _, i := range keep {
			sum += col[i]
		}
		mean := sum / float64(n)
		variance := 0.0
		for _, i := range keep {
			d := col[i] - mean
			variance += d * d
		}
		means[j] = mean
		stds[j] = math.Sqrt(variance / float64(n))
	}

	points := make([][]float64, n)
	for r, i := range keep {
		point := make([]float64, m)
		for j, col := range frame.Cols {
			if stds[j] == 0 {
				point[j] = 0
			} else {
				point[j] = (col[i] - means[j]) / stds[j]
			}
		}
		points[r] = point
	}
	return points
}

// cluster assigns DBSCAN labels: cluster IDs from 0 upward, or noise.
// A point is a core point when at least minNeighbors other points lie
// within radius; clusters grow transitively through core points.
func cluster(points [][]float64, radius float64, minNeighbors int) []int {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = unvisited
	}

	radiusSq := radius * radius
	clusterID := 0

	for i := range points {
		if labels[i] != unvisited {
			continue
		}
		neighbors := regionQuery(points, i, radiusSq)
		if len(neighbors) < minNeighbors {
			labels[i] = noise
			continue
		}

		labels[i] = clusterID
		queue := append([]int(nil), neighbors...)
		for qi := 0; qi < len(queue); qi++ {
			j := queue[qi]
			if labels[j] == noise {
				// Border point: density-reachable from a core point
				labels[j] = clusterID
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = clusterID
			jNeighbors := regionQuery(points, j, radiusSq)
			if len(jNeighbors) >= minNeighbors {
				queue = append(queue, jNeighbors...)
			}
		}
		clusterID++
	}
	return labels
}

// regionQuery returns the indices of points within the radius of point i,
// excluding i itself.
func regionQuery(points [][]float64, i int, radiusSq float64) []int {
	var neighbors []int
	for j := range points {
		if j == i {
			continue
		}
		if distSq(points[i], points[j]) <= radiusSq {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

func distSq(a, b []float64) float64 {
	sum := 0.0
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
