package suggest

import (
	"fmt"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
)

// Apply executes the selected actions against a copy of the dataset and
// returns the new dataset plus one human-readable log line per action
// attempted. The input dataset is never mutated.
//
// Ordering policy: all remove_duplicates actions collapse to a single pass
// executed first; all drop_column actions are collected into one
// deduplicated set applied together; remaining column-level actions run in
// input order. At most one imputation is honored per column; repeats are
// skipped with a log entry. An action referencing a missing column is
// skipped with a log entry. A failing action is logged and does not abort
// the rest, so the logs disclose partial application.
func (e *Engine) Apply(ds *dataset.Dataset, actions []ActionProposal) (*dataset.Dataset, []string) {
	if ds == nil {
		return nil, []string{"Error: input dataset is nil; nothing was changed."}
	}

	cleaned := ds.Clone()
	var logs []string

	e.logger.Debugf("Applying %d selected actions", len(actions))

	// Pass 1: duplicates, collapsed to one execution
	if hasCode(actions, ActionRemoveDuplicates) {
		removed := removeDuplicateRows(cleaned)
		cleaned = removed.ds
		if removed.count > 0 {
			logs = append(logs, fmt.Sprintf("Applied 'remove_duplicates': Removed %d duplicate rows.", removed.count))
		} else {
			logs = append(logs, "Applied 'remove_duplicates': No duplicate rows found; nothing was changed.")
		}
	}

	// Pass 2: column drops, deduplicated into one set
	dropped := make(map[string]bool)
	for _, action := range actions {
		if action.ActionCode != ActionDropColumn {
			continue
		}
		if dropped[action.Column] {
			continue // duplicate drop targets are deduplicated silently
		}
		dropped[action.Column] = true
		if cleaned.DropColumn(action.Column) {
			logs = append(logs, fmt.Sprintf("Applied 'drop_column': Dropped column '%s'.", action.Column))
		} else {
			logs = append(logs, fmt.Sprintf("Skipped 'drop_column' for column '%s': column not found; nothing was changed.", action.Column))
		}
	}

	// Pass 3: remaining column-level actions in input order
	imputed := make(map[string]bool)
	for _, action := range actions {
		switch action.ActionCode {
		case ActionRemoveDuplicates, ActionDropColumn:
			continue
		}

		if !knownCodes[action.ActionCode] {
			logs = append(logs, fmt.Sprintf("Skipped unknown action code '%s' for column '%s'; nothing was changed.", action.ActionCode, action.Column))
			e.logger.Warnf("Unknown action code %q rejected", action.ActionCode)
			continue
		}

		if !cleaned.HasColumn(action.Column) {
			logs = append(logs, fmt.Sprintf("Skipped '%s' for column '%s': column not found (possibly dropped earlier).", action.ActionCode, action.Column))
			continue
		}

		if imputationCodes[action.ActionCode] {
			if imputed[action.Column] {
				logs = append(logs, fmt.Sprintf("Skipped '%s' for column '%s': an imputation was already applied to this column.", action.ActionCode, action.Column))
				continue
			}
			msg, err := e.applyImputation(cleaned, action)
			if err != nil {
				logs = append(logs, fmt.Sprintf("Error applying '%s' on column '%s': %v. Earlier actions in this run remain applied.", action.ActionCode, action.Column, err))
				e.logger.WithColumn(action.Column).Warnf("Imputation failed: %v", err)
				continue
			}
			imputed[action.Column] = true
			logs = append(logs, msg)
			continue
		}

		// Feature-engineering actions
		msg, err := e.applyFeature(cleaned, action)
		if err != nil {
			logs = append(logs, fmt.Sprintf("Error applying '%s' on column '%s': %v. Earlier actions in this run remain applied.", action.ActionCode, action.Column, err))
			e.logger.WithColumn(action.Column).Warnf("Feature action failed: %v", err)
			continue
		}
		logs = append(logs, msg)
	}

	return cleaned, logs
}

func hasCode(actions []ActionProposal, code ActionCode) bool {
	for _, a := range actions {
		if a.ActionCode == code {
			return true
		}
	}
	return false
}

type dedupResult struct {
	ds    *dataset.Dataset
	count int
}

// removeDuplicateRows keeps the first occurrence of each distinct row.
func removeDuplicateRows(ds *dataset.Dataset) dedupResult {
	seen := make(map[string]bool, ds.NumRows())
	var keep []int
	for i := 0; i < ds.NumRows(); i++ {
		key := ds.RowKey(i)
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	removed := ds.NumRows() - len(keep)
	if removed == 0 {
		return dedupResult{ds: ds}
	}
	return dedupResult{ds: ds.SelectRows(keep), count: removed}
}

// applyImputation fills missing values in one column using the strategy of
// the action code. Returns the log line on success.
func (e *Engine) applyImputation(ds *dataset.Dataset, action ActionProposal) (string, error) {
	col, _ := ds.Column(action.Column)

	missing := col.MissingCount()
	if missing == 0 {
		return fmt.Sprintf("Applied '%s' on '%s': No missing values; nothing was changed.", action.ActionCode, action.Column), nil
	}

	var fill any
	var desc string

	switch action.ActionCode {
	case ActionImputeMedian, ActionImputeMean:
		if col.Kind != dataset.KindNumeric {
			return "", fmt.Errorf("column is not numeric")
		}
		values := col.Floats()
		if len(values) == 0 {
			return "", fmt.Errorf("no non-missing values to compute a fill value from")
		}
		if action.ActionCode == ActionImputeMedian {
			fill = median(values)
			desc = fmt.Sprintf("median (%g)", fill)
		} else {
			fill = mean(values)
			desc = fmt.Sprintf("mean (%g)", fill)
		}

	case ActionImputeMode:
		mode, ok := modeValue(col)
		if !ok {
			return "", fmt.Errorf("no non-missing values to compute the mode from")
		}
		fill = mode
		desc = fmt.Sprintf("mode (%s)", dataset.FormatValue(mode))

	case ActionImputeConstant:
		if col.Kind != dataset.KindCategorical {
			return "", fmt.Errorf("constant imputation requires a categorical column")
		}
		value := "Missing"
		if v, ok := action.Details["fill_value"].(string); ok && v != "" {
			value = v
		}
		fill = value
		desc = fmt.Sprintf("constant '%s'", value)

	default:
		return "", fmt.Errorf("unsupported imputation code %q", action.ActionCode)
	}

	for i, v := range col.Values {
		if v == nil {
			col.Values[i] = fill
		}
	}
	return fmt.Sprintf("Applied '%s' on '%s': Filled %d missing values with %s.", action.ActionCode, action.Column, missing, desc), nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// modeValue returns the most frequent non-missing value; first-seen order
// breaks ties deterministically.
func modeValue(col *dataset.Column) (any, bool) {
	counts := make(map[string]int)
	firstValue := make(map[string]any)
	var order []string
	for _, v := range col.Values {
		if v == nil {
			continue
		}
		key := dataset.FormatValue(v)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			firstValue[key] = v
		}
		counts[key]++
	}
	if len(order) == 0 {
		return nil, false
	}
	best := order[0]
	for _, key := range order {
		if counts[key] > counts[best] {
			best = key
		}
	}
	return firstValue[best], true
}
