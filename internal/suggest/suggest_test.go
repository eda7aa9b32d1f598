package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/profiler"
)

func reportWith(columns []string, missing map[string]profiler.MissingInfo, types map[string]string, duplicates int) *profiler.Report {
	return &profiler.Report{
		BasicInfo:     profiler.BasicInfo{Rows: 100, ColumnCount: len(columns), Duplicates: duplicates},
		Columns:       columns,
		MissingValues: missing,
		DataTypes:     types,
	}
}

func TestSuggest_NilReport(t *testing.T) {
	assert.Nil(t, NewEngine(nil).Suggest(nil))
}

func TestSuggest_VeryHighMissingProposesOnlyDrop(t *testing.T) {
	rep := reportWith(
		[]string{"sparse"},
		map[string]profiler.MissingInfo{"sparse": {Count: 95, Percentage: 95.0}},
		map[string]string{"sparse": "numeric"},
		0,
	)

	proposals := NewEngine(nil).Suggest(rep)

	require.Len(t, proposals, 1)
	assert.Equal(t, ActionDropColumn, proposals[0].ActionCode)
	assert.Equal(t, "sparse", proposals[0].Column)
	assert.Equal(t, "95.0% Missing", proposals[0].Issue)
	assert.Contains(t, proposals[0].Suggestion, "Very High")
}

func TestSuggest_ModeratelyMissingNumericProposesMedianAndMean(t *testing.T) {
	rep := reportWith(
		[]string{"age"},
		map[string]profiler.MissingInfo{"age": {Count: 20, Percentage: 20.0}},
		map[string]string{"age": "numeric"},
		0,
	)

	proposals := NewEngine(nil).Suggest(rep)

	require.Len(t, proposals, 2)
	assert.Equal(t, ActionImputeMedian, proposals[0].ActionCode)
	assert.Equal(t, ActionImputeMean, proposals[1].ActionCode)
}

func TestSuggest_ModeratelyMissingCategoricalProposesModeAndConstant(t *testing.T) {
	rep := reportWith(
		[]string{"city"},
		map[string]profiler.MissingInfo{"city": {Count: 10, Percentage: 10.0}},
		map[string]string{"city": "categorical"},
		0,
	)

	proposals := NewEngine(nil).Suggest(rep)

	require.Len(t, proposals, 2)
	assert.Equal(t, ActionImputeMode, proposals[0].ActionCode)
	assert.Equal(t, ActionImputeConstant, proposals[1].ActionCode)
	assert.Equal(t, "Missing", proposals[1].Details["fill_value"])
}

func TestSuggest_MidRangeMissingProposesDrop(t *testing.T) {
	rep := reportWith(
		[]string{"num", "cat"},
		map[string]profiler.MissingInfo{
			"num": {Count: 50, Percentage: 50.0},
			"cat": {Count: 60, Percentage: 60.0},
		},
		map[string]string{"num": "numeric", "cat": "categorical"},
		0,
	)

	proposals := NewEngine(nil).Suggest(rep)

	require.Len(t, proposals, 2)
	for _, p := range proposals {
		assert.Equal(t, ActionDropColumn, p.ActionCode)
	}
}

func TestSuggest_CompleteColumnsProduceNothing(t *testing.T) {
	rep := reportWith(
		[]string{"ok"},
		map[string]profiler.MissingInfo{"ok": {Count: 0, Percentage: 0}},
		map[string]string{"ok": "numeric"},
		0,
	)

	assert.Empty(t, NewEngine(nil).Suggest(rep))
}

func TestSuggest_DuplicatesProposalComesLast(t *testing.T) {
	rep := reportWith(
		[]string{"age"},
		map[string]profiler.MissingInfo{"age": {Count: 20, Percentage: 20.0}},
		map[string]string{"age": "numeric"},
		3,
	)

	proposals := NewEngine(nil).Suggest(rep)

	require.Len(t, proposals, 3)
	last := proposals[len(proposals)-1]
	assert.Equal(t, ActionRemoveDuplicates, last.ActionCode)
	assert.Equal(t, AllColumns, last.Column)
	assert.Equal(t, "3 Duplicate Rows", last.Issue)
}

func TestSuggest_FollowsReportColumnOrder(t *testing.T) {
	rep := reportWith(
		[]string{"b", "a"},
		map[string]profiler.MissingInfo{
			"a": {Count: 95, Percentage: 95.0},
			"b": {Count: 95, Percentage: 95.0},
		},
		map[string]string{"a": "numeric", "b": "numeric"},
		0,
	)

	proposals := NewEngine(nil).Suggest(rep)

	require.Len(t, proposals, 2)
	assert.Equal(t, "b", proposals[0].Column)
	assert.Equal(t, "a", proposals[1].Column)
}
