package profiler

import (
	"errors"
	"fmt"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/outlier"
)

// ErrInvalidInput is returned when the profiling input is not a usable
// dataset. It is the only fatal input condition: an empty dataset still
// produces a minimal, well-formed report.
var ErrInvalidInput = errors.New("profiling input must be a non-nil dataset")

// Profiler computes profile reports. It holds no cross-call state; every
// call receives a dataset snapshot and returns a fresh report.
type Profiler struct {
	logger *logger.Logger
}

// New creates a Profiler.
func New(log *logger.Logger) *Profiler {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Profiler{logger: log}
}

// Profile computes a full profile report for the dataset.
//
// Each report section is computed independently: a failure in one section
// (correlation, skewness, kurtosis, one stats group) is logged and skipped
// without blocking the others. Only an unexpected top-level failure returns
// a nil report.
func (p *Profiler) Profile(ds *dataset.Dataset, params outlier.Params) (report *Report, err error) {
	if ds == nil {
		return nil, ErrInvalidInput
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorw("unexpected failure during profiling", "panic", r)
			report = nil
			err = fmt.Errorf("unexpected failure during profiling: %v", r)
		}
	}()

	p.logger.Debugf("Profiling dataset: %d rows, %d columns", ds.NumRows(), ds.NumColumns())

	report = &Report{
		Columns: ds.ColumnNames(),
	}

	report.BasicInfo = p.basicInfo(ds)
	report.MissingValues = p.missingValues(ds)
	report.DataTypes = p.dataTypes(ds)
	report.DescriptiveStats = p.descriptiveStats(ds)
	report.Cardinality = p.cardinality(ds)

	frame := ds.NumericFrame()
	if frame.NumColumns() > 0 && ds.NumRows() > 0 {
		report.CorrelationMatrix = p.correlationMatrix(frame)
		report.Skewness = p.shapeStats(frame, skewness, "skewness")
		report.Kurtosis = p.shapeStats(frame, kurtosis, "kurtosis")
		report.OutlierDetection = outlier.Detect(frame, params)
	} else {
		p.logger.Warn("No numeric data found; skipping correlation, skewness, kurtosis, and outlier detection")
		report.OutlierDetection = outlier.Detect(frame, params)
	}

	p.logger.Debug("Profiling complete")
	return report, nil
}

// basicInfo computes row/column counts, exact duplicate-row count, and a
// human-readable memory estimate.
func (p *Profiler) basicInfo(ds *dataset.Dataset) BasicInfo {
	info := BasicInfo{
		Rows:        ds.NumRows(),
		ColumnCount: ds.NumColumns(),
		MemoryUsage: FormatMemorySize(estimateMemoryBytes(ds)),
	}

	// Count repeats beyond the first occurrence of each distinct row
	seen := make(map[string]struct{}, ds.NumRows())
	for i := 0; i < ds.NumRows(); i++ {
		key := ds.RowKey(i)
		if _, dup := seen[key]; dup {
			info.Duplicates++
		} else {
			seen[key] = struct{}{}
		}
	}
	return info
}

// missingValues computes per-column missing counts and percentages.
func (p *Profiler) missingValues(ds *dataset.Dataset) map[string]MissingInfo {
	out := make(map[string]MissingInfo, ds.NumColumns())
	rows := ds.NumRows()
	for _, col := range ds.Columns() {
		count := col.MissingCount()
		pct := 0.0
		if rows > 0 {
			pct = round2(100 * float64(count) / float64(rows))
		}
		out[col.Name] = MissingInfo{Count: count, Percentage: pct}
	}
	return out
}

func (p *Profiler) dataTypes(ds *dataset.Dataset) map[string]string {
	out := make(map[string]string, ds.NumColumns())
	for _, col := range ds.Columns() {
		out[col.Name] = col.Kind.String()
	}
	return out
}

// descriptiveStats computes the numeric and categorical groups
// independently; either group may be nil when no columns of that kind
// exist.
func (p *Profiler) descriptiveStats(ds *dataset.Dataset) DescriptiveStats {
	var stats DescriptiveStats

	for _, col := range ds.Columns() {
		if col.Kind == dataset.KindNumeric {
			values := col.Floats()
			if len(values) == 0 && ds.NumRows() > 0 {
				p.logger.WithColumn(col.Name).Warn("Numeric column has no usable values; skipping descriptive stats")
				continue
			}
			if stats.Numeric == nil {
				stats.Numeric = make(map[string]NumericStats)
			}
			stats.Numeric[col.Name] = numericStats(values)
		} else {
			if stats.Categorical == nil {
				stats.Categorical = make(map[string]CategoricalStats)
			}
			stats.Categorical[col.Name] = categoricalStats(col)
		}
	}
	return stats
}

func numericStats(values []float64) NumericStats {
	if len(values) == 0 {
		return NumericStats{}
	}
	return NumericStats{
		Count:  len(values),
		Mean:   round3(mean(values)),
		Std:    round3(sampleStd(values)),
		Min:    round3(quantile(values, 0)),
		Q25:    round3(quantile(values, 0.25)),
		Median: round3(quantile(values, 0.5)),
		Q75:    round3(quantile(values, 0.75)),
		Max:    round3(quantile(values, 1)),
	}
}

func categoricalStats(col *dataset.Column) CategoricalStats {
	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		key := dataset.FormatValue(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		total++
	}

	stats := CategoricalStats{Count: total, Unique: len(counts)}
	// First-seen order breaks frequency ties deterministically
	for _, key := range order {
		if counts[key] > stats.Freq {
			stats.Top = key
			stats.Freq = counts[key]
		}
	}
	return stats
}

// cardinality counts distinct non-missing values per column.
func (p *Profiler) cardinality(ds *dataset.Dataset) map[string]int {
	out := make(map[string]int, ds.NumColumns())
	for _, col := range ds.Columns() {
		out[col.Name] = col.Distinct()
	}
	return out
}

// correlationMatrix computes pairwise Pearson correlation over the numeric
// columns. Omitted entirely (nil) when fewer than two numeric columns
// exist; that is not an error.
func (p *Profiler) correlationMatrix(frame *dataset.NumericFrame) map[string]map[string]float64 {
	if frame.NumColumns() < 2 {
		p.logger.Debug("Skipping correlation: fewer than two numeric columns")
		return nil
	}

	matrix := make(map[string]map[string]float64, frame.NumColumns())
	for i, nameA := range frame.Names {
		row := make(map[string]float64, frame.NumColumns())
		for j, nameB := range frame.Names {
			if i == j {
				row[nameB] = 1
				continue
			}
			r, ok := pearson(frame.Cols[i], frame.Cols[j])
			if !ok {
				p.logger.Warnf("Could not compute correlation between %q and %q", nameA, nameB)
				continue
			}
			row[nameB] = round3(r)
		}
		matrix[nameA] = row
	}
	return matrix
}

// shapeStats computes a per-column shape statistic (skewness or kurtosis)
// over the complete values of each numeric column. Columns where the
// statistic is undefined are omitted.
func (p *Profiler) shapeStats(frame *dataset.NumericFrame, fn func([]float64) (float64, bool), name string) map[string]float64 {
	out := make(map[string]float64, frame.NumColumns())
	for i, colName := range frame.Names {
		values := completeValues(frame.Cols[i])
		v, ok := fn(values)
		if !ok {
			p.logger.WithColumn(colName).Debugf("Could not compute %s (insufficient values or no variance)", name)
			continue
		}
		out[colName] = round3(v)
	}
	return out
}

func completeValues(col []float64) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if v == v { // not NaN
			out = append(out, v)
		}
	}
	return out
}
