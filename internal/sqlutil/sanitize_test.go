package sqlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Already valid",
			input:    "revenue",
			expected: "revenue",
		},
		{
			name:     "Uppercase lowered",
			input:    "Revenue",
			expected: "revenue",
		},
		{
			name:     "Spaces become underscores",
			input:    "Total Sales",
			expected: "total_sales",
		},
		{
			name:     "Punctuation collapsed",
			input:    "Total Sales ($)",
			expected: "total_sales",
		},
		{
			name:     "Leading digit prefixed",
			input:    "2024_revenue",
			expected: "_2024_revenue",
		},
		{
			name:     "Empty becomes placeholder",
			input:    "",
			expected: "col",
		},
		{
			name:     "Only symbols becomes placeholder",
			input:    "$$$",
			expected: "col",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeIdentifier(tt.input))
		})
	}
}

func TestSanitizeIdentifier_LengthCap(t *testing.T) {
	long := strings.Repeat("a", 100)
	result := SanitizeIdentifier(long)
	assert.Len(t, result, 64)
}

func TestSanitizeIdentifiers_Duplicates(t *testing.T) {
	result := SanitizeIdentifiers([]string{"Amount", "amount", "Amount ($)"})
	assert.Equal(t, "amount", result[0])
	assert.NotEqual(t, result[0], result[1])
	assert.NotEqual(t, result[1], result[2])
	assert.NotEqual(t, result[0], result[2])
	for _, r := range result {
		assert.True(t, IsValidIdentifier(r), "sanitized name %q should be valid", r)
	}
}
