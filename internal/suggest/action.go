// Package suggest generates rule-based cleaning and feature-engineering
// proposals from a profile report, and applies a selected list of actions
// to a dataset deterministically.
package suggest

// ActionCode identifies one cleaning or feature-engineering action.
// The set is closed: unknown codes are logged and skipped, never executed.
type ActionCode string

const (
	ActionDropColumn       ActionCode = "drop_column"
	ActionImputeMedian     ActionCode = "impute_median"
	ActionImputeMean       ActionCode = "impute_mean"
	ActionImputeMode       ActionCode = "impute_mode"
	ActionImputeConstant   ActionCode = "impute_constant"
	ActionRemoveDuplicates ActionCode = "remove_duplicates"

	ActionExtractDatetime    ActionCode = "extract_datetime"
	ActionPolynomialFeature  ActionCode = "polynomial_feature"
	ActionInteractionFeature ActionCode = "interaction_feature"
)

// imputationCodes guard the one-imputation-per-column rule in Apply.
var imputationCodes = map[ActionCode]bool{
	ActionImputeMedian:   true,
	ActionImputeMean:     true,
	ActionImputeMode:     true,
	ActionImputeConstant: true,
}

// knownCodes is the closed enumeration accepted by Apply.
var knownCodes = map[ActionCode]bool{
	ActionDropColumn:         true,
	ActionImputeMedian:       true,
	ActionImputeMean:         true,
	ActionImputeMode:         true,
	ActionImputeConstant:     true,
	ActionRemoveDuplicates:   true,
	ActionExtractDatetime:    true,
	ActionPolynomialFeature:  true,
	ActionInteractionFeature: true,
}

// AllColumns is the Column value of proposals targeting the whole dataset.
const AllColumns = "ALL"

// ActionProposal is a pure suggestion: it describes an issue and a
// candidate fix but carries no ownership of the dataset.
type ActionProposal struct {
	Column     string         `json:"column"`
	Issue      string         `json:"issue"`
	Suggestion string         `json:"suggestion"`
	ActionCode ActionCode     `json:"action_code"`
	Details    map[string]any `json:"details"`
}
