package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// missingMarkers are the cell contents treated as missing values on ingest.
var missingMarkers = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// datetimeLayouts are tried in order during type inference.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ReadCSV parses CSV data into a dataset. The first record is the header.
// Column kinds are inferred from the non-missing cells: a column where every
// cell parses as a number is numeric, as true/false boolean, as a known date
// layout datetime; anything else is categorical.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV input is empty")
	}

	header := records[0]
	rows := records[1:]

	ds := New()
	for colIdx, name := range header {
		raw := make([]string, len(rows))
		for i, row := range rows {
			if colIdx < len(row) {
				raw[i] = row[colIdx]
			}
		}
		kind := inferKind(raw)
		values := make([]any, len(raw))
		for i, cell := range raw {
			values[i] = parseCell(cell, kind)
		}
		colName := name
		if colName == "" {
			colName = fmt.Sprintf("column_%d", colIdx+1)
		}
		if err := ds.AddColumn(colName, kind, values); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// WriteCSV writes the dataset as CSV with a header row.
func WriteCSV(w io.Writer, ds *Dataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	cols := ds.Columns()
	for i := 0; i < ds.NumRows(); i++ {
		record := make([]string, len(cols))
		for j, col := range cols {
			record[j] = FormatValue(col.Values[i])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// inferKind picks the narrowest kind that fits every non-missing cell.
func inferKind(cells []string) Kind {
	sawValue := false
	numeric, boolean, datetime := true, true, true

	for _, cell := range cells {
		trimmed := strings.TrimSpace(cell)
		if missingMarkers[strings.ToLower(trimmed)] {
			continue
		}
		sawValue = true
		if numeric {
			if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
				numeric = false
			}
		}
		if boolean {
			lower := strings.ToLower(trimmed)
			if lower != "true" && lower != "false" {
				boolean = false
			}
		}
		if datetime {
			if _, ok := parseDatetime(trimmed); !ok {
				datetime = false
			}
		}
	}

	if !sawValue {
		return KindCategorical
	}
	switch {
	case boolean:
		return KindBoolean
	case numeric:
		return KindNumeric
	case datetime:
		return KindDatetime
	default:
		return KindCategorical
	}
}

// parseCell converts one CSV cell to a typed value or nil when missing.
func parseCell(cell string, kind Kind) any {
	trimmed := strings.TrimSpace(cell)
	if missingMarkers[strings.ToLower(trimmed)] {
		return nil
	}
	switch kind {
	case KindNumeric:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return f
	case KindBoolean:
		return strings.EqualFold(trimmed, "true")
	case KindDatetime:
		if t, ok := parseDatetime(trimmed); ok {
			return t
		}
		return nil
	default:
		return trimmed
	}
}

func parseDatetime(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
