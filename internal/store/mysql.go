package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/config"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/sqlutil"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/translate"
)

// insertBatchSize bounds the number of rows per multi-row INSERT.
const insertBatchSize = 500

// MySQLStore implements Store on top of a MySQL connection.
type MySQLStore struct {
	db     *sql.DB
	config *config.DatabaseConfig
	logger *logger.Logger
}

// NewMySQLStore creates a store and connects with retry.
func NewMySQLStore(ctx context.Context, cfg *config.DatabaseConfig, log *logger.Logger) (*MySQLStore, error) {
	if log == nil {
		log = logger.NewDefault()
	}
	s := &MySQLStore{config: cfg, logger: log}

	db, err := s.connectWithRetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to query store: %w", err)
	}
	s.db = db
	return s, nil
}

// connectWithRetry attempts to connect with exponential backoff.
func (s *MySQLStore) connectWithRetry(ctx context.Context) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 3
	backoff := time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = s.connect()
		if err == nil {
			if pingErr := db.PingContext(ctx); pingErr == nil {
				return db, nil
			} else {
				db.Close()
				err = pingErr
			}
		}

		if i < maxRetries-1 {
			s.logger.Warnf("Store connection failed, retrying in %s: %v", backoff, err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2 // Exponential backoff
			}
		}
	}

	return nil, fmt.Errorf("failed after %d retries: %w", maxRetries, err)
}

// connect creates a database connection.
func (s *MySQLStore) connect() (*sql.DB, error) {
	db, err := sql.Open("mysql", BuildDSN(s.config))
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	if s.config.MaxConnections > 0 {
		db.SetMaxOpenConns(s.config.MaxConnections)
	}
	if s.config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(s.config.MaxIdleConnections)
	}
	db.SetConnMaxLifetime(10 * time.Minute)

	return db, nil
}

// BuildDSN constructs a MySQL DSN from configuration.
func BuildDSN(cfg *config.DatabaseConfig) string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)

	if cfg.Database != "" {
		dsn += cfg.Database
	}

	params := "?parseTime=true"
	switch cfg.TLS {
	case "disable":
		params += "&tls=false"
	case "required":
		params += "&tls=true"
	case "preferred", "":
		params += "&tls=preferred"
	}

	return dsn + params
}

// CreateTable drops any existing table of the same name and creates a
// fresh one. Loading a dataset replaces its table wholesale.
func (s *MySQLStore) CreateTable(ctx context.Context, name string, cols []ColumnDef) (string, error) {
	if len(cols) == 0 {
		return "", fmt.Errorf("cannot create table %q with no columns", name)
	}

	table := sqlutil.SanitizeIdentifier(name)
	if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+sqlutil.QuoteIdentifier(table)); err != nil {
		return "", fmt.Errorf("failed to drop existing table %s: %w", table, err)
	}

	defs := make([]string, 0, len(cols))
	for _, c := range cols {
		defs = append(defs, fmt.Sprintf("%s %s", sqlutil.QuoteIdentifier(c.Name), sqlTypeFor(c.Kind)))
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", sqlutil.QuoteIdentifier(table), strings.Join(defs, ", "))

	if _, err := s.db.ExecContext(ctx, create); err != nil {
		return "", fmt.Errorf("failed to create table %s: %w", table, err)
	}

	s.logger.WithTable(table).Infow("Created table", "columns", len(cols))
	return table, nil
}

// LoadRows bulk-inserts the dataset in batches.
func (s *MySQLStore) LoadRows(ctx context.Context, table string, ds *dataset.Dataset) error {
	names := ds.ColumnNames()
	if len(names) == 0 {
		return fmt.Errorf("dataset has no columns")
	}

	sanitized := sqlutil.SanitizeIdentifiers(names)
	quoted := make([]string, len(sanitized))
	for i, n := range sanitized {
		quoted[i] = sqlutil.QuoteIdentifier(n)
	}
	prefix := fmt.Sprintf("INSERT INTO %s (%s) VALUES ",
		sqlutil.QuoteIdentifier(table), strings.Join(quoted, ", "))
	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ") + ")"

	total := ds.NumRows()
	for start := 0; start < total; start += insertBatchSize {
		end := start + insertBatchSize
		if end > total {
			end = total
		}

		placeholders := make([]string, 0, end-start)
		args := make([]any, 0, (end-start)*len(names))
		for i := start; i < end; i++ {
			placeholders = append(placeholders, rowPlaceholder)
			for _, v := range ds.Row(i) {
				args = append(args, driverValue(v))
			}
		}

		stmt := prefix + strings.Join(placeholders, ", ")
		if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d into %s: %w", start, end-1, table, err)
		}
	}

	s.logger.WithTable(table).Infow("Loaded rows", "rows", total)
	return nil
}

// driverValue converts a dataset value into a driver-friendly value.
// Missing values become SQL NULL.
func driverValue(v any) any {
	if v == nil {
		return nil
	}
	return v
}

// Execute runs a SELECT statement and converts the result set into a
// dataset, inferring column kinds from the MySQL column types.
func (s *MySQLStore) Execute(ctx context.Context, query string) (*dataset.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read result column types: %w", err)
	}

	kinds := make([]dataset.Kind, len(types))
	for i, t := range types {
		kinds[i] = kindForSQLType(t.DatabaseTypeName())
	}

	values := make([][]any, len(cols))
	scan := make([]any, len(cols))
	for rows.Next() {
		for i := range scan {
			scan[i] = new(any)
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, ptr := range scan {
			values[i] = append(values[i], resultValue(*(ptr.(*any)), kinds[i]))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate result rows: %w", err)
	}

	out := dataset.New()
	for i, name := range cols {
		if err := out.AddColumn(name, kinds[i], values[i]); err != nil {
			return nil, fmt.Errorf("failed to build result column %s: %w", name, err)
		}
	}
	return out, nil
}

// kindForSQLType maps a MySQL column type name onto a dataset kind.
func kindForSQLType(typeName string) dataset.Kind {
	switch strings.ToUpper(typeName) {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT",
		"DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "UNSIGNED BIGINT":
		return dataset.KindNumeric
	case "DATE", "DATETIME", "TIMESTAMP":
		return dataset.KindDatetime
	case "BOOL", "BOOLEAN":
		return dataset.KindBoolean
	default:
		return dataset.KindCategorical
	}
}

// resultValue normalizes a scanned driver value into the dataset value
// domain: float64, string, bool, time.Time or nil.
func resultValue(v any, kind dataset.Kind) any {
	if v == nil {
		return nil
	}
	switch kind {
	case dataset.KindNumeric:
		switch n := v.(type) {
		case int64:
			return float64(n)
		case float64:
			return n
		case []byte:
			if f, err := strconv.ParseFloat(string(n), 64); err == nil {
				return f
			}
			return string(n)
		}
	case dataset.KindDatetime:
		if t, ok := v.(time.Time); ok {
			return t
		}
	case dataset.KindBoolean:
		switch b := v.(type) {
		case bool:
			return b
		case int64:
			return b != 0
		}
	}
	switch s := v.(type) {
	case []byte:
		return string(s)
	case string:
		return s
	}
	return fmt.Sprintf("%v", v)
}

// DescribeSchema reads the table's columns from information_schema in
// ordinal order.
func (s *MySQLStore) DescribeSchema(ctx context.Context, table string) (*translate.Schema, error) {
	const q = `SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`

	rows, err := s.db.QueryContext(ctx, q, table)
	if err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", table, err)
	}
	defer rows.Close()

	schema := &translate.Schema{Table: table}
	for rows.Next() {
		var col translate.SchemaColumn
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return nil, fmt.Errorf("failed to scan schema row: %w", err)
		}
		schema.Columns = append(schema.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schema rows: %w", err)
	}
	if len(schema.Columns) == 0 {
		return nil, fmt.Errorf("table %s does not exist or has no columns", table)
	}
	return schema, nil
}

// Close closes the underlying connection pool.
func (s *MySQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Ping verifies the connection is alive.
func (s *MySQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}
	return nil
}
