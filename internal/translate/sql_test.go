package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSQL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		errContains string
	}{
		{
			name:     "Plain SELECT",
			input:    "SELECT * FROM sales",
			expected: "SELECT * FROM sales",
		},
		{
			name:     "Trailing semicolon stripped",
			input:    "SELECT * FROM sales;",
			expected: "SELECT * FROM sales",
		},
		{
			name:     "Fenced block",
			input:    "```sql\nSELECT region FROM sales\n```",
			expected: "SELECT region FROM sales",
		},
		{
			name:     "Prose before SELECT salvaged",
			input:    "Here is your query:\nSELECT region FROM sales",
			expected: "SELECT region FROM sales",
		},
		{
			name:     "Lowercase select",
			input:    "select region from sales",
			expected: "select region from sales",
		},
		{
			name:        "Empty response",
			input:       "",
			errContains: "empty",
		},
		{
			name:        "No SELECT at all",
			input:       "I cannot answer that question",
			errContains: "not a SELECT",
		},
		{
			name:        "DELETE statement",
			input:       "DELETE FROM sales",
			errContains: "not a SELECT",
		},
		{
			name:        "Forbidden keyword inside SELECT",
			input:       "SELECT * FROM sales; DROP TABLE sales",
			errContains: `forbidden keyword "drop"`,
		},
		{
			name:        "Subquery with update",
			input:       "SELECT 1 WHERE EXISTS (UPDATE sales SET amount = 0)",
			errContains: `forbidden keyword "update"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, verr := validateSQL(tt.input)
			if tt.errContains != "" {
				assert.Contains(t, verr, tt.errContains)
				assert.Empty(t, query)
				return
			}
			assert.Empty(t, verr)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestValidateSQL_KeywordBoundaries(t *testing.T) {
	// Column names containing forbidden substrings must not trip the check
	query, verr := validateSQL("SELECT created_at, last_update FROM sales")
	assert.Empty(t, verr)
	assert.Equal(t, "SELECT created_at, last_update FROM sales", query)
}
