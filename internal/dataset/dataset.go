// Package dataset contains the in-memory tabular data model shared across
// the profiling, cleaning, and query components.
package dataset

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Kind is the semantic type of a column.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
	KindDatetime
	KindBoolean
)

// String returns the kind name as used in profile reports.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	case KindDatetime:
		return "datetime"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Column is a named, typed, ordered sequence of nullable values.
// A nil value marks a missing entry. Numeric values are stored as float64,
// boolean as bool, datetime as time.Time, categorical as string.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// MissingCount returns the number of nil values in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// Distinct returns the number of distinct non-missing values.
func (c *Column) Distinct() int {
	seen := make(map[string]struct{})
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		seen[FormatValue(v)] = struct{}{}
	}
	return len(seen)
}

// Floats returns the non-missing values coerced to float64.
// Values that cannot be coerced are skipped.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		if f, ok := ToFloat64(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// Dataset is an ordered sequence of named columns with equal row counts.
type Dataset struct {
	columns *orderedmap.OrderedMap[string, *Column]
	rows    int
}

// New creates an empty dataset.
func New() *Dataset {
	return &Dataset{
		columns: orderedmap.NewOrderedMap[string, *Column](),
	}
}

// AddColumn appends a column. All columns must have the same length and
// column names must be unique.
func (d *Dataset) AddColumn(name string, kind Kind, values []any) error {
	if _, exists := d.columns.Get(name); exists {
		return fmt.Errorf("column %q already exists", name)
	}
	if d.columns.Len() > 0 && len(values) != d.rows {
		return fmt.Errorf("column %q has %d values, dataset has %d rows", name, len(values), d.rows)
	}
	d.columns.Set(name, &Column{Name: name, Kind: kind, Values: values})
	d.rows = len(values)
	return nil
}

// Column returns the named column.
func (d *Dataset) Column(name string) (*Column, bool) {
	return d.columns.Get(name)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.columns.Get(name)
	return ok
}

// ColumnNames returns column names in insertion order.
func (d *Dataset) ColumnNames() []string {
	return d.columns.Keys()
}

// Columns returns the columns in insertion order.
func (d *Dataset) Columns() []*Column {
	cols := make([]*Column, 0, d.columns.Len())
	for el := d.columns.Front(); el != nil; el = el.Next() {
		cols = append(cols, el.Value)
	}
	return cols
}

// NumRows returns the row count.
func (d *Dataset) NumRows() int {
	return d.rows
}

// NumColumns returns the column count.
func (d *Dataset) NumColumns() int {
	return d.columns.Len()
}

// Row returns the values of row i in column order.
func (d *Dataset) Row(i int) []any {
	row := make([]any, 0, d.columns.Len())
	for el := d.columns.Front(); el != nil; el = el.Next() {
		row = append(row, el.Value.Values[i])
	}
	return row
}

// RowKey returns a deterministic serialization of row i, suitable for
// duplicate detection. Null-byte separators avoid ambiguity with values
// containing delimiters.
func (d *Dataset) RowKey(i int) string {
	var sb strings.Builder
	first := true
	for el := d.columns.Front(); el != nil; el = el.Next() {
		if !first {
			sb.WriteByte(0)
		}
		first = false
		v := el.Value.Values[i]
		if v == nil {
			sb.WriteString("\x01NULL")
			continue
		}
		sb.WriteString(FormatValue(v))
	}
	return sb.String()
}

// DropColumn removes the named column. Returns false if it does not exist.
func (d *Dataset) DropColumn(name string) bool {
	ok := d.columns.Delete(name)
	if ok && d.columns.Len() == 0 {
		d.rows = 0
	}
	return ok
}

// Clone returns a deep copy of the dataset. Cleaning actions operate on
// clones so callers never observe partial mutation of their input.
func (d *Dataset) Clone() *Dataset {
	out := New()
	for el := d.columns.Front(); el != nil; el = el.Next() {
		values := make([]any, len(el.Value.Values))
		copy(values, el.Value.Values)
		// AddColumn cannot fail on a clone: names are unique, lengths match
		_ = out.AddColumn(el.Value.Name, el.Value.Kind, values)
	}
	out.rows = d.rows
	return out
}

// Equal reports whether two datasets have identical column order, kinds,
// and values.
func (d *Dataset) Equal(other *Dataset) bool {
	if other == nil || d.columns.Len() != other.columns.Len() || d.rows != other.rows {
		return false
	}
	oel := other.columns.Front()
	for el := d.columns.Front(); el != nil; el = el.Next() {
		if oel == nil || el.Value.Name != oel.Value.Name || el.Value.Kind != oel.Value.Kind {
			return false
		}
		for i, v := range el.Value.Values {
			ov := oel.Value.Values[i]
			if (v == nil) != (ov == nil) {
				return false
			}
			if v != nil && FormatValue(v) != FormatValue(ov) {
				return false
			}
		}
		oel = oel.Next()
	}
	return true
}

// SelectRows returns a new dataset containing only the rows whose index
// appears in keep, preserving order.
func (d *Dataset) SelectRows(keep []int) *Dataset {
	out := New()
	for el := d.columns.Front(); el != nil; el = el.Next() {
		values := make([]any, 0, len(keep))
		for _, i := range keep {
			values = append(values, el.Value.Values[i])
		}
		_ = out.AddColumn(el.Value.Name, el.Value.Kind, values)
	}
	out.rows = len(keep)
	return out
}

// NumericColumns returns the numeric columns in insertion order.
func (d *Dataset) NumericColumns() []*Column {
	var cols []*Column
	for el := d.columns.Front(); el != nil; el = el.Next() {
		if el.Value.Kind == KindNumeric {
			cols = append(cols, el.Value)
		}
	}
	return cols
}
