// Package store persists datasets into MySQL so translated SQL queries
// can run against them.
package store

import (
	"context"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/sqlutil"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/translate"
)

// ColumnDef describes one column of a table to create.
type ColumnDef struct {
	Name string
	Kind dataset.Kind
}

// Store is the persistence surface used by the query pipeline. A
// dataset is loaded once, then arbitrary read-only SELECT statements
// run against it.
type Store interface {
	// CreateTable creates (or replaces) a table for the given column
	// definitions and returns the sanitized table name actually used.
	CreateTable(ctx context.Context, name string, cols []ColumnDef) (string, error)

	// LoadRows bulk-inserts the dataset's rows into the named table.
	// Column order must match the definitions passed to CreateTable.
	LoadRows(ctx context.Context, table string, ds *dataset.Dataset) error

	// Execute runs a SELECT statement and returns its result set.
	Execute(ctx context.Context, query string) (*dataset.Dataset, error)

	// DescribeSchema reads back the table's schema in the form the
	// translation prompts embed.
	DescribeSchema(ctx context.Context, table string) (*translate.Schema, error)

	// Close releases the underlying connections.
	Close() error
}

// ColumnDefs derives table column definitions from a dataset, with
// headings sanitized into unique MySQL identifiers. The order matches
// the dataset's column order, which LoadRows relies on.
func ColumnDefs(ds *dataset.Dataset) []ColumnDef {
	names := sqlutil.SanitizeIdentifiers(ds.ColumnNames())
	cols := ds.Columns()
	defs := make([]ColumnDef, len(cols))
	for i, c := range cols {
		defs[i] = ColumnDef{Name: names[i], Kind: c.Kind}
	}
	return defs
}

// SchemaFor builds the prompt-facing schema a dataset would have once
// materialized, without touching the database. Translation-only flows
// use this in place of DescribeSchema.
func SchemaFor(table string, ds *dataset.Dataset) *translate.Schema {
	defs := ColumnDefs(ds)
	schema := &translate.Schema{Table: sqlutil.SanitizeIdentifier(table)}
	for _, d := range defs {
		schema.Columns = append(schema.Columns, translate.SchemaColumn{
			Name: d.Name,
			Type: sqlTypeFor(d.Kind),
		})
	}
	return schema
}

// sqlTypeFor maps a dataset column kind onto the MySQL column type used
// when materializing the table.
func sqlTypeFor(kind dataset.Kind) string {
	switch kind {
	case dataset.KindNumeric:
		return "DOUBLE"
	case dataset.KindDatetime:
		return "DATETIME"
	case dataset.KindBoolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}
