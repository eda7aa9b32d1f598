// Package report renders profile reports and suggestion lists for the
// terminal.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/profiler"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/suggest"
)

// Renderer writes human-readable report sections to an output stream.
type Renderer struct {
	out     io.Writer
	noColor bool
}

// NewRenderer creates a Renderer writing to out. When noColor is set
// all styling is suppressed, which keeps the output pipe-friendly.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{out: out, noColor: noColor}
}

func (r *Renderer) heading(text string) {
	if r.noColor {
		fmt.Fprintf(r.out, "\n== %s ==\n", text)
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", color.Bold.Render(color.Cyan.Render("== "+text+" ==")))
}

func (r *Renderer) warn(text string) {
	if r.noColor {
		fmt.Fprintln(r.out, text)
		return
	}
	fmt.Fprintln(r.out, color.Yellow.Render(text))
}

// RenderProfile writes the full profile report section by section.
func (r *Renderer) RenderProfile(rep *profiler.Report) {
	r.heading("Basic Info")
	r.table(
		[]string{"Rows", "Columns", "Duplicates", "Memory"},
		[][]string{{
			fmt.Sprintf("%d", rep.BasicInfo.Rows),
			fmt.Sprintf("%d", rep.BasicInfo.ColumnCount),
			fmt.Sprintf("%d", rep.BasicInfo.Duplicates),
			rep.BasicInfo.MemoryUsage,
		}},
	)

	r.heading("Columns")
	rows := make([][]string, 0, len(rep.Columns))
	for _, col := range rep.Columns {
		missing := rep.MissingValues[col]
		rows = append(rows, []string{
			col,
			rep.DataTypes[col],
			fmt.Sprintf("%d", rep.Cardinality[col]),
			fmt.Sprintf("%d (%.2f%%)", missing.Count, missing.Percentage),
		})
	}
	r.table([]string{"Column", "Type", "Unique", "Missing"}, rows)

	if len(rep.DescriptiveStats.Numeric) > 0 {
		r.heading("Numeric Statistics")
		rows = rows[:0]
		for _, col := range sortedKeys(rep.DescriptiveStats.Numeric) {
			s := rep.DescriptiveStats.Numeric[col]
			rows = append(rows, []string{
				col,
				fmt.Sprintf("%d", s.Count),
				formatFloat(s.Mean),
				formatFloat(s.Std),
				formatFloat(s.Min),
				formatFloat(s.Median),
				formatFloat(s.Max),
			})
		}
		r.table([]string{"Column", "Count", "Mean", "Std", "Min", "Median", "Max"}, rows)
	}

	if len(rep.DescriptiveStats.Categorical) > 0 {
		r.heading("Categorical Statistics")
		rows = rows[:0]
		for _, col := range sortedKeys(rep.DescriptiveStats.Categorical) {
			s := rep.DescriptiveStats.Categorical[col]
			rows = append(rows, []string{
				col,
				fmt.Sprintf("%d", s.Count),
				fmt.Sprintf("%d", s.Unique),
				s.Top,
				fmt.Sprintf("%d", s.Freq),
			})
		}
		r.table([]string{"Column", "Count", "Unique", "Top", "Freq"}, rows)
	}

	if rep.CorrelationMatrix != nil {
		r.heading("Correlation")
		cols := sortedKeys(rep.CorrelationMatrix)
		rows = rows[:0]
		for _, a := range cols {
			row := []string{a}
			for _, b := range cols {
				row = append(row, formatFloat(rep.CorrelationMatrix[a][b]))
			}
			rows = append(rows, row)
		}
		r.table(append([]string{""}, cols...), rows)
	}

	r.heading("Outlier Detection")
	od := rep.OutlierDetection
	if od.Error != "" {
		r.warn(od.Error)
	}
	r.table(
		[]string{"Method", "Outliers", "Share", "Analyzed", "Dropped"},
		[][]string{{
			od.Method,
			fmt.Sprintf("%d", od.OutlierCount),
			fmt.Sprintf("%.2f%%", od.OutlierPercentage),
			fmt.Sprintf("%d", od.RowsAnalyzed),
			fmt.Sprintf("%d", od.RowsDropped),
		}},
	)
}

// RenderSuggestions writes cleaning proposals as a numbered list.
func (r *Renderer) RenderSuggestions(proposals []suggest.ActionProposal) {
	r.heading("Cleaning Suggestions")
	if len(proposals) == 0 {
		fmt.Fprintln(r.out, "No issues found.")
		return
	}
	for i, p := range proposals {
		code := string(p.ActionCode)
		if !r.noColor {
			code = color.Green.Render(code)
		}
		fmt.Fprintf(r.out, "%2d. [%s] %s: %s (%s)\n", i+1, code, p.Column, p.Suggestion, p.Issue)
	}
}

// table prints an aligned table. Widths are computed with runewidth so
// wide characters in column names or values do not skew alignment.
func (r *Renderer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	r.tableRow(headers, widths, !r.noColor)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	r.tableRow(sep, widths, false)
	for _, row := range rows {
		r.tableRow(row, widths, false)
	}
}

func (r *Renderer) tableRow(cells []string, widths []int, bold bool) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		if bold {
			padded = color.Bold.Render(padded)
		}
		parts[i] = padded
	}
	fmt.Fprintln(r.out, strings.TrimRight(strings.Join(parts, "  "), " "))
}

func formatFloat(f float64) string {
	s := fmt.Sprintf("%.3f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
