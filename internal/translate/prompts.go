package translate

import (
	"fmt"
	"strings"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/llm"
)

const sqlSystemPrompt = `You are an expert data analyst who writes MySQL queries.
You are given the schema of a single table and a question about it.
Respond with exactly one read-only SELECT statement answering the question.
Rules:
- Only reference the table and columns listed in the schema.
- Never use UPDATE, DELETE, INSERT, DROP, ALTER, CREATE or TRUNCATE.
- Respond with the SQL statement only, no explanation and no Markdown fences.`

const exprSystemPrompt = `You are an expert data analyst who writes small Starlark programs.
You are given the schema of a dataset and a question about it.
Write a short program that computes the answer and assigns it to a
variable named result.
Rules:
- The last meaningful statement must be an assignment to result.
- Do not use import statements.
- Respond with the program only, no explanation and no Markdown fences.`

const vizSystemPrompt = `You are an expert data analyst who configures charts.
You are given the schema of a dataset and a request for a visualization.
Respond with a single JSON object describing the chart:
  {"plot_type": "...", "x_col": "...", "y_col": "...", "color_col": "...", "size_col": "...", "aggregation": "..."}
Rules:
- plot_type must be one of: bar, line, scatter, histogram, box, pie.
- histogram, box and pie use only x_col; scatter and line need x_col and y_col.
- Only reference columns listed in the schema; omit fields that do not apply.
- If the request cannot be satisfied, respond with {"error": "reason"}.
- Respond with the JSON object only, no explanation and no Markdown fences.`

func systemPromptFor(kind QueryKind) string {
	switch kind {
	case KindExpression:
		return exprSystemPrompt
	case KindViz:
		return vizSystemPrompt
	default:
		return sqlSystemPrompt
	}
}

// buildInitialMessages assembles the first draft request for a question.
func buildInitialMessages(kind QueryKind, question string, schema *Schema) []llm.Message {
	var user strings.Builder
	user.WriteString(schema.String())
	user.WriteString("\nQuestion: ")
	user.WriteString(question)
	return []llm.Message{
		{Role: "system", Content: systemPromptFor(kind)},
		{Role: "user", Content: user.String()},
	}
}

// buildRetryMessages assembles a repair request. The model's previous
// output is quoted verbatim together with the exact reason it was
// rejected, so the model can see what to fix.
func buildRetryMessages(kind QueryKind, question string, schema *Schema, priorOutput, priorError string) []llm.Message {
	var user strings.Builder
	user.WriteString(schema.String())
	user.WriteString("\nQuestion: ")
	user.WriteString(question)
	user.WriteString("\n\nYour previous response was rejected.\n")
	fmt.Fprintf(&user, "Previous response:\n%s\n\n", priorOutput)
	fmt.Fprintf(&user, "Problem: %s\n", priorError)
	user.WriteString("Produce a corrected response that fixes this problem.")
	return []llm.Message{
		{Role: "system", Content: systemPromptFor(kind)},
		{Role: "user", Content: user.String()},
	}
}
