// Package profiler computes statistical profile reports for tabular
// datasets, including per-column statistics, correlation, distribution
// shape, and density-based outlier detection.
package profiler

import (
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/outlier"
)

// Report is an immutable snapshot of one profiling run. Sections that do
// not apply (for example a correlation matrix with fewer than two numeric
// columns) are nil and marshal to JSON null, so renderers can rely on key
// presence.
type Report struct {
	BasicInfo         BasicInfo                     `json:"basic_info"`
	Columns           []string                      `json:"columns"`
	DataTypes         map[string]string             `json:"dtypes"`
	MissingValues     map[string]MissingInfo        `json:"missing_values"`
	DescriptiveStats  DescriptiveStats              `json:"descriptive_stats"`
	Cardinality       map[string]int                `json:"cardinality"`
	CorrelationMatrix map[string]map[string]float64 `json:"correlation_matrix"`
	Skewness          map[string]float64            `json:"skewness"`
	Kurtosis          map[string]float64            `json:"kurtosis"`
	OutlierDetection  outlier.Result                `json:"outlier_detection"`
}

// BasicInfo contains dataset-level counts.
type BasicInfo struct {
	Rows        int    `json:"rows"`
	ColumnCount int    `json:"columns"`
	Duplicates  int    `json:"duplicates"` // repeats beyond the first occurrence
	MemoryUsage string `json:"memory_usage"`
}

// MissingInfo contains missing-value counts for one column.
type MissingInfo struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // 2 decimals; 0 for an empty dataset
}

// DescriptiveStats splits descriptive statistics by column kind. Either
// group may be nil when no columns of that kind exist.
type DescriptiveStats struct {
	Numeric     map[string]NumericStats     `json:"numeric"`
	Categorical map[string]CategoricalStats `json:"categorical"`
}

// NumericStats describes a numeric column. All values rounded to 3 decimals.
type NumericStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"25%"`
	Median float64 `json:"50%"`
	Q75    float64 `json:"75%"`
	Max    float64 `json:"max"`
}

// CategoricalStats describes a categorical, boolean, or datetime column.
type CategoricalStats struct {
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	Top    string `json:"top"`
	Freq   int    `json:"freq"`
}
