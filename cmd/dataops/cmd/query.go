package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/llm"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/report"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/store"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/translate"
)

var (
	queryInput    string
	queryQuestion string
	queryKind     string
	queryTable    string
	queryExecute  bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Translate a natural-language question about a dataset",
	Long: `Query translates a natural-language question into a validated SQL
query, expression program, or chart-parameter object using the
configured completion model. Rejected model responses are retried with
the rejection reason fed back, within the configured retry budget.

With --execute the dataset is loaded into the MySQL store and the
translated SQL runs against it.

Example:
  dataops query --input sales.csv --question "average revenue by region"
  dataops query --input sales.csv --question "top 5 products" --execute
  dataops query --input sales.csv --question "revenue over time" --kind viz`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVarP(&queryInput, "input", "i", "",
		"Path to the CSV dataset (required)")
	queryCmd.MarkFlagRequired("input")

	queryCmd.Flags().StringVarP(&queryQuestion, "question", "q", "",
		"Natural-language question (required)")
	queryCmd.MarkFlagRequired("question")

	queryCmd.Flags().StringVarP(&queryKind, "kind", "k", "sql",
		"Translation target: sql, expression, or viz")
	queryCmd.Flags().StringVarP(&queryTable, "table", "t", "",
		"Table name for the dataset (defaults to the input file name)")
	queryCmd.Flags().BoolVar(&queryExecute, "execute", false,
		"Load the dataset into MySQL and execute the translated SQL")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	kind, err := parseQueryKind(queryKind)
	if err != nil {
		return err
	}
	if queryExecute && kind != translate.KindSQL {
		return fmt.Errorf("--execute only applies to --kind sql")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if queryExecute {
		if err := cfg.ValidateDatabase(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ds, err := loadDataset(queryInput)
	if err != nil {
		return err
	}

	table := queryTable
	if table == "" {
		table = strings.TrimSuffix(filepath.Base(queryInput), filepath.Ext(queryInput))
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		log.Warn("Received shutdown signal - cancelling query...")
		cancel()
	}()

	completer := llm.NewClient(cfg.LLM)
	protocol := translate.NewProtocol(completer, kind, cfg.Translation, log)
	out := cmd.OutOrStdout()

	if !queryExecute {
		schema := store.SchemaFor(table, ds)
		query, attempts, err := protocol.Translate(ctx, queryQuestion, schema)
		if err != nil {
			return fmt.Errorf("translation failed after %d attempt(s): %w", len(attempts), err)
		}
		return printQuery(out, query)
	}

	st, err := store.NewMySQLStore(ctx, &cfg.Database, log)
	if err != nil {
		return err
	}
	defer st.Close()

	tableName, err := st.CreateTable(ctx, table, store.ColumnDefs(ds))
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	if err := st.LoadRows(ctx, tableName, ds); err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	schema, err := st.DescribeSchema(ctx, tableName)
	if err != nil {
		return fmt.Errorf("failed to describe table: %w", err)
	}

	query, attempts, err := protocol.Translate(ctx, queryQuestion, schema)
	if err != nil {
		return fmt.Errorf("translation failed after %d attempt(s): %w", len(attempts), err)
	}

	fmt.Fprintf(out, "SQL: %s\n", query.SQL)
	result, err := st.Execute(ctx, query.SQL)
	if err != nil {
		return fmt.Errorf("query execution failed: %w", err)
	}

	report.NewRenderer(out, noColor).RenderDataset(result)
	return nil
}

func parseQueryKind(s string) (translate.QueryKind, error) {
	switch strings.ToLower(s) {
	case "sql":
		return translate.KindSQL, nil
	case "expression", "expr":
		return translate.KindExpression, nil
	case "viz":
		return translate.KindViz, nil
	default:
		return "", fmt.Errorf("unknown kind %q (expected sql, expression, or viz)", s)
	}
}

func printQuery(out io.Writer, query *translate.Query) error {
	switch query.Kind {
	case translate.KindExpression:
		fmt.Fprintln(out, query.Expression)
	case translate.KindViz:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(query.Viz)
	default:
		fmt.Fprintln(out, query.SQL)
	}
	return nil
}
