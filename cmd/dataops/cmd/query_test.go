package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/translate"
)

func TestQueryCommandStructure(t *testing.T) {
	assert.NotNil(t, queryCmd)
	assert.Equal(t, "query", queryCmd.Use)
	assert.NotEmpty(t, queryCmd.Short)
	assert.NotEmpty(t, queryCmd.Long)
	assert.NotNil(t, queryCmd.RunE)
}

func TestQueryCommandFlags(t *testing.T) {
	flags := queryCmd.Flags()

	inputFlag := flags.Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	questionFlag := flags.Lookup("question")
	assert.NotNil(t, questionFlag)
	assert.Equal(t, "q", questionFlag.Shorthand)

	kindFlag := flags.Lookup("kind")
	assert.NotNil(t, kindFlag)
	assert.Equal(t, "sql", kindFlag.DefValue)

	tableFlag := flags.Lookup("table")
	assert.NotNil(t, tableFlag)
	assert.Equal(t, "t", tableFlag.Shorthand)

	executeFlag := flags.Lookup("execute")
	assert.NotNil(t, executeFlag)
	assert.Equal(t, "false", executeFlag.DefValue)
}

func TestParseQueryKind(t *testing.T) {
	tests := []struct {
		input   string
		want    translate.QueryKind
		wantErr bool
	}{
		{"sql", translate.KindSQL, false},
		{"SQL", translate.KindSQL, false},
		{"expression", translate.KindExpression, false},
		{"expr", translate.KindExpression, false},
		{"viz", translate.KindViz, false},
		{"chart", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseQueryKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintQuery(t *testing.T) {
	tests := []struct {
		name  string
		query *translate.Query
		want  string
	}{
		{
			name:  "sql",
			query: &translate.Query{Kind: translate.KindSQL, SQL: "SELECT region FROM sales"},
			want:  "SELECT region FROM sales\n",
		},
		{
			name:  "expression",
			query: &translate.Query{Kind: translate.KindExpression, Expression: "result = total * 2"},
			want:  "result = total * 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printQuery(&buf, tt.query))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintQuery_Viz(t *testing.T) {
	query := &translate.Query{
		Kind: translate.KindViz,
		Viz: &translate.VizParams{
			PlotType: "scatter",
			XCol:     "price",
			YCol:     "quantity",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printQuery(&buf, query))

	out := buf.String()
	assert.Contains(t, out, `"plot_type": "scatter"`)
	assert.Contains(t, out, `"x_col": "price"`)
	assert.Contains(t, out, `"y_col": "quantity"`)
}

func TestQueryIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "query" {
			found = true
			break
		}
	}
	assert.True(t, found, "query command should be added to root command")
}

func TestQueryCommandExample(t *testing.T) {
	assert.Contains(t, queryCmd.Long, "Example:")
	assert.Contains(t, queryCmd.Long, "dataops query")
}
