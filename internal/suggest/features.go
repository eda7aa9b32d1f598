package suggest

import (
	"fmt"
	"time"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
)

// applyFeature executes one feature-engineering action, creating a new
// column. Each sub-action computes all values first and adds the column as
// its final step, so a failed action leaves the dataset untouched.
func (e *Engine) applyFeature(ds *dataset.Dataset, action ActionProposal) (string, error) {
	switch action.ActionCode {
	case ActionExtractDatetime:
		return e.extractDatetime(ds, action)
	case ActionPolynomialFeature:
		return e.polynomialFeature(ds, action)
	case ActionInteractionFeature:
		return e.interactionFeature(ds, action)
	default:
		return "", fmt.Errorf("unsupported feature action code %q", action.ActionCode)
	}
}

// extractDatetime derives a numeric part (year, month, day, dayofweek)
// from a datetime column into a new column named <column>_<part>.
func (e *Engine) extractDatetime(ds *dataset.Dataset, action ActionProposal) (string, error) {
	col, _ := ds.Column(action.Column)
	if col.Kind != dataset.KindDatetime {
		return "", fmt.Errorf("column is not datetime")
	}

	part, _ := action.Details["part"].(string)
	switch part {
	case "year", "month", "day", "dayofweek":
	default:
		return "", fmt.Errorf("unsupported datetime part %q (use year, month, day, or dayofweek)", part)
	}

	name := detailString(action.Details, "new_column", fmt.Sprintf("%s_%s", action.Column, part))
	if ds.HasColumn(name) {
		return "", fmt.Errorf("column %q already exists", name)
	}

	values := make([]any, len(col.Values))
	for i, v := range col.Values {
		t, ok := v.(time.Time)
		if !ok {
			continue // missing stays missing
		}
		switch part {
		case "year":
			values[i] = float64(t.Year())
		case "month":
			values[i] = float64(t.Month())
		case "day":
			values[i] = float64(t.Day())
		case "dayofweek":
			values[i] = float64(t.Weekday())
		}
	}

	if err := ds.AddColumn(name, dataset.KindNumeric, values); err != nil {
		return "", err
	}
	return fmt.Sprintf("Applied 'extract_datetime': Created '%s' from the %s of '%s'.", name, part, action.Column), nil
}

// polynomialFeature raises a numeric column to a power.
func (e *Engine) polynomialFeature(ds *dataset.Dataset, action ActionProposal) (string, error) {
	col, _ := ds.Column(action.Column)
	if col.Kind != dataset.KindNumeric {
		return "", fmt.Errorf("column is not numeric")
	}

	degree, ok := detailInt(action.Details, "degree")
	if !ok || degree < 2 {
		return "", fmt.Errorf("missing or invalid 'degree' (must be an integer >= 2)")
	}

	name := detailString(action.Details, "new_column", fmt.Sprintf("%s_pow%d", action.Column, degree))
	if ds.HasColumn(name) {
		return "", fmt.Errorf("column %q already exists", name)
	}

	values := make([]any, len(col.Values))
	for i, v := range col.Values {
		f, ok := dataset.ToFloat64(v)
		if v == nil || !ok {
			continue
		}
		result := 1.0
		for d := 0; d < degree; d++ {
			result *= f
		}
		values[i] = result
	}

	if err := ds.AddColumn(name, dataset.KindNumeric, values); err != nil {
		return "", err
	}
	return fmt.Sprintf("Applied 'polynomial_feature': Created '%s' as '%s' to the power of %d.", name, action.Column, degree), nil
}

// interactionFeature combines two numeric columns by multiplication or
// division. Division by zero yields a missing value.
func (e *Engine) interactionFeature(ds *dataset.Dataset, action ActionProposal) (string, error) {
	names, err := detailColumnPair(action.Details)
	if err != nil {
		return "", err
	}

	left, ok := ds.Column(names[0])
	if !ok {
		return "", fmt.Errorf("column %q not found", names[0])
	}
	right, ok := ds.Column(names[1])
	if !ok {
		return "", fmt.Errorf("column %q not found", names[1])
	}
	if left.Kind != dataset.KindNumeric || right.Kind != dataset.KindNumeric {
		return "", fmt.Errorf("columns %q and %q must both be numeric", names[0], names[1])
	}

	op, _ := action.Details["operation"].(string)
	if op != "multiply" && op != "divide" {
		return "", fmt.Errorf("unsupported interaction operation %q (use multiply or divide)", op)
	}

	name := detailString(action.Details, "new_column", fmt.Sprintf("%s_%s_%s", names[0], op, names[1]))
	if ds.HasColumn(name) {
		return "", fmt.Errorf("column %q already exists", name)
	}

	values := make([]any, ds.NumRows())
	for i := range values {
		lf, lok := dataset.ToFloat64(left.Values[i])
		rf, rok := dataset.ToFloat64(right.Values[i])
		if left.Values[i] == nil || right.Values[i] == nil || !lok || !rok {
			continue
		}
		if op == "multiply" {
			values[i] = lf * rf
			continue
		}
		if rf == 0 {
			continue // divide by zero becomes missing
		}
		values[i] = lf / rf
	}

	if err := ds.AddColumn(name, dataset.KindNumeric, values); err != nil {
		return "", err
	}
	verb := "product"
	if op == "divide" {
		verb = "ratio"
	}
	return fmt.Sprintf("Applied 'interaction_feature': Created '%s' as the %s of '%s' and '%s'.", name, verb, names[0], names[1]), nil
}

func detailString(details map[string]any, key, fallback string) string {
	if v, ok := details[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// detailInt reads an integer detail. JSON unmarshals numbers as float64,
// so both representations are accepted.
func detailInt(details map[string]any, key string) (int, bool) {
	switch v := details[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func detailColumnPair(details map[string]any) ([2]string, error) {
	var out [2]string
	raw, ok := details["columns"]
	if !ok {
		return out, fmt.Errorf("missing 'columns' detail (two column names required)")
	}
	switch v := raw.(type) {
	case []string:
		if len(v) != 2 {
			return out, fmt.Errorf("'columns' must name exactly two columns")
		}
		out[0], out[1] = v[0], v[1]
	case []any:
		if len(v) != 2 {
			return out, fmt.Errorf("'columns' must name exactly two columns")
		}
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return out, fmt.Errorf("'columns' entries must be strings")
			}
			out[i] = s
		}
	default:
		return out, fmt.Errorf("'columns' must be a list of two column names")
	}
	return out, nil
}
