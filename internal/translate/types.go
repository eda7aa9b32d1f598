package translate

import (
	"fmt"
	"strings"
)

// QueryKind selects the target representation for a translation.
type QueryKind string

const (
	// KindSQL produces a read-only SQL SELECT statement.
	KindSQL QueryKind = "sql"
	// KindExpression produces a small expression program that binds `result`.
	KindExpression QueryKind = "expression"
	// KindViz produces a JSON visualization parameter object.
	KindViz QueryKind = "viz"
)

// State tracks where a translation currently is in its lifecycle.
type State int

const (
	StateDrafting State = iota
	StateValidating
	StateRetrying
	StateAccepted
	StateExhausted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDrafting:
		return "drafting"
	case StateValidating:
		return "validating"
	case StateRetrying:
		return "retrying"
	case StateAccepted:
		return "accepted"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Outcome records how a single attempt ended.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

// Attempt is the record of one draft/validate round against the model.
type Attempt struct {
	Index      int     `json:"index"`
	Question   string  `json:"question"`
	Output     string  `json:"output"`
	PriorError string  `json:"prior_error,omitempty"`
	Outcome    Outcome `json:"outcome"`
	Error      string  `json:"error,omitempty"`
}

// Query is an accepted translation result. Exactly one of the payload
// fields is populated, selected by Kind.
type Query struct {
	Kind       QueryKind  `json:"kind"`
	SQL        string     `json:"sql,omitempty"`
	Expression string     `json:"expression,omitempty"`
	Viz        *VizParams `json:"viz,omitempty"`
}

// VizParams describes a chart request produced by the model. Column
// fields that do not apply to the chosen plot type stay empty.
type VizParams struct {
	PlotType    string `json:"plot_type"`
	XCol        string `json:"x_col,omitempty"`
	YCol        string `json:"y_col,omitempty"`
	ColorCol    string `json:"color_col,omitempty"`
	SizeCol     string `json:"size_col,omitempty"`
	Aggregation string `json:"aggregation,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SchemaColumn is one column of the table exposed to the model.
type SchemaColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Schema describes the single table a translation may reference.
type Schema struct {
	Table   string         `json:"table"`
	Columns []SchemaColumn `json:"columns"`
}

// HasColumn reports whether the schema contains the named column.
func (s *Schema) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ColumnNames returns the column names in schema order.
func (s *Schema) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// String renders the schema the way it is embedded into prompts.
func (s *Schema) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n", s.Table)
	b.WriteString("Columns:\n")
	for _, c := range s.Columns {
		fmt.Fprintf(&b, "  - %s (%s)\n", c.Name, c.Type)
	}
	return b.String()
}

// TranslationError is returned when every attempt within the retry
// budget was rejected.
type TranslationError struct {
	Question  string
	Attempts  int
	LastError string
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed after %d attempt(s): %s", e.Attempts, e.LastError)
}
