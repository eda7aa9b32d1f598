package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset(t *testing.T) *Dataset {
	t.Helper()
	ds := New()
	require.NoError(t, ds.AddColumn("age", KindNumeric, []any{25.0, nil, 30.0, 25.0}))
	require.NoError(t, ds.AddColumn("city", KindCategorical, []any{"Ankara", "Izmir", "Ankara", "Ankara"}))
	return ds
}

func TestAddColumn_Errors(t *testing.T) {
	ds := New()
	require.NoError(t, ds.AddColumn("a", KindNumeric, []any{1.0, 2.0}))

	err := ds.AddColumn("a", KindNumeric, []any{3.0, 4.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	err = ds.AddColumn("b", KindNumeric, []any{1.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 rows")
}

func TestColumnAccessors(t *testing.T) {
	ds := sampleDataset(t)

	assert.Equal(t, 4, ds.NumRows())
	assert.Equal(t, 2, ds.NumColumns())
	assert.Equal(t, []string{"age", "city"}, ds.ColumnNames())
	assert.True(t, ds.HasColumn("city"))
	assert.False(t, ds.HasColumn("country"))

	age, ok := ds.Column("age")
	require.True(t, ok)
	assert.Equal(t, 1, age.MissingCount())
	assert.Equal(t, 2, age.Distinct())
	assert.Equal(t, []float64{25, 30, 25}, age.Floats())
}

func TestRowKey_DistinguishesNilFromEmpty(t *testing.T) {
	ds := New()
	require.NoError(t, ds.AddColumn("a", KindCategorical, []any{nil, ""}))

	assert.NotEqual(t, ds.RowKey(0), ds.RowKey(1))
}

func TestRowKey_DuplicateRows(t *testing.T) {
	ds := sampleDataset(t)
	assert.Equal(t, ds.RowKey(0), ds.RowKey(3))
	assert.NotEqual(t, ds.RowKey(0), ds.RowKey(2))
}

func TestCloneIsIndependent(t *testing.T) {
	ds := sampleDataset(t)
	clone := ds.Clone()
	require.True(t, ds.Equal(clone))

	col, _ := clone.Column("age")
	col.Values[0] = 99.0
	orig, _ := ds.Column("age")
	assert.Equal(t, 25.0, orig.Values[0], "mutating the clone must not touch the original")
	assert.False(t, ds.Equal(clone))
}

func TestDropColumn(t *testing.T) {
	ds := sampleDataset(t)
	assert.True(t, ds.DropColumn("age"))
	assert.False(t, ds.DropColumn("age"))
	assert.Equal(t, []string{"city"}, ds.ColumnNames())
}

func TestSelectRows(t *testing.T) {
	ds := sampleDataset(t)
	out := ds.SelectRows([]int{0, 2})

	assert.Equal(t, 2, out.NumRows())
	city, _ := out.Column("city")
	assert.Equal(t, []any{"Ankara", "Ankara"}, city.Values)
}

func TestNumericFrame(t *testing.T) {
	ds := sampleDataset(t)
	frame := ds.NumericFrame()

	require.Equal(t, []string{"age"}, frame.Names)
	assert.Equal(t, 4, frame.NumRows())
	assert.Equal(t, []int{0, 2, 3}, frame.CompleteRows())
}
