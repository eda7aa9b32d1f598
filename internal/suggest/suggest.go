package suggest

import (
	"fmt"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/profiler"
)

// Missing-percentage thresholds for cleaning rules.
const (
	dropThreshold    = 90.0 // above this, dropping is the only proposal
	imputableCeiling = 30.0 // below this, imputation is proposed
)

// Engine generates and applies cleaning proposals. Stateless across calls.
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates an Engine.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Engine{logger: log}
}

// Suggest derives cleaning proposals from a profile report. The result is
// deterministic: missing-value proposals follow the report's column order,
// followed by the duplicate-row proposal.
func (e *Engine) Suggest(report *profiler.Report) []ActionProposal {
	if report == nil {
		return nil
	}

	var proposals []ActionProposal

	for _, col := range report.Columns {
		missing, ok := report.MissingValues[col]
		if !ok || missing.Count == 0 {
			continue
		}
		pct := missing.Percentage
		issue := fmt.Sprintf("%.1f%% Missing", pct)
		numeric := report.DataTypes[col] == "numeric"

		switch {
		case pct > dropThreshold:
			proposals = append(proposals, ActionProposal{
				Column: col, Issue: issue,
				Suggestion: "Drop Column (Very High Missing %)",
				ActionCode: ActionDropColumn, Details: map[string]any{},
			})

		case pct < imputableCeiling && numeric:
			proposals = append(proposals,
				ActionProposal{
					Column: col, Issue: issue,
					Suggestion: "Impute with Median",
					ActionCode: ActionImputeMedian, Details: map[string]any{},
				},
				ActionProposal{
					Column: col, Issue: issue,
					Suggestion: "Impute with Mean",
					ActionCode: ActionImputeMean, Details: map[string]any{},
				})

		case numeric:
			proposals = append(proposals, ActionProposal{
				Column: col, Issue: issue,
				Suggestion: "Drop Column (High Missing %)",
				ActionCode: ActionDropColumn, Details: map[string]any{},
			})

		case pct < imputableCeiling:
			proposals = append(proposals,
				ActionProposal{
					Column: col, Issue: issue,
					Suggestion: "Impute with Mode (Most Frequent)",
					ActionCode: ActionImputeMode, Details: map[string]any{},
				},
				ActionProposal{
					Column: col, Issue: issue,
					Suggestion: "Impute with Constant 'Missing'",
					ActionCode: ActionImputeConstant, Details: map[string]any{"fill_value": "Missing"},
				})

		default:
			proposals = append(proposals, ActionProposal{
				Column: col, Issue: issue,
				Suggestion: "Drop Column (High Missing %)",
				ActionCode: ActionDropColumn, Details: map[string]any{},
			})
		}
	}

	if report.BasicInfo.Duplicates > 0 {
		proposals = append(proposals, ActionProposal{
			Column:     AllColumns,
			Issue:      fmt.Sprintf("%d Duplicate Rows", report.BasicInfo.Duplicates),
			Suggestion: "Remove Duplicate Rows",
			ActionCode: ActionRemoveDuplicates,
			Details:    map[string]any{},
		})
	}

	e.logger.Debugf("Generated %d cleaning suggestions", len(proposals))
	return proposals
}
