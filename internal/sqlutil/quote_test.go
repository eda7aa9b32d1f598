package sqlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple name",
			input:    "sales",
			expected: "`sales`",
		},
		{
			name:     "With underscore",
			input:    "total_sales",
			expected: "`total_sales`",
		},
		{
			name:     "Backtick escaped",
			input:    "my`col",
			expected: "`my``col`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.input))
		})
	}
}

func TestQuoteIdentifierSafe(t *testing.T) {
	quoted, err := QuoteIdentifierSafe("sales_2024")
	require.NoError(t, err)
	assert.Equal(t, "`sales_2024`", quoted)

	_, err = QuoteIdentifierSafe("sales; DROP TABLE x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identifier")
}

func TestIsValidIdentifier(t *testing.T) {
	assert.True(t, IsValidIdentifier("col_1"))
	assert.False(t, IsValidIdentifier("col 1"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("col-1"))
}
