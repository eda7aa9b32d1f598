package translate

import (
	"fmt"
	"strings"
)

// Keywords that mutate data or schema. A generated query containing any
// of these is rejected regardless of where they appear.
var forbiddenKeywords = []string{
	"update", "delete", "insert", "drop", "alter", "create", "truncate",
}

// validateSQL cleans a model response and checks that it is a read-only
// SELECT statement. It returns the cleaned query or a validation error
// message suitable for feeding back into a retry prompt.
func validateSQL(raw string) (string, string) {
	clean := stripCodeFences(raw)
	if clean == "" {
		return "", "the response was empty"
	}

	// The model sometimes prefixes the query with prose. Salvage by
	// cutting everything before the first SELECT.
	upper := strings.ToUpper(clean)
	if !strings.HasPrefix(upper, "SELECT") {
		idx := strings.Index(upper, "SELECT")
		if idx < 0 {
			return "", fmt.Sprintf("the response is not a SELECT statement: %q", truncateForError(raw, 200))
		}
		clean = clean[idx:]
	}

	if kw := findForbiddenKeyword(clean); kw != "" {
		return "", fmt.Sprintf("the query contains the forbidden keyword %q; only read-only SELECT statements are allowed", kw)
	}

	return strings.TrimSuffix(strings.TrimSpace(clean), ";"), ""
}

// findForbiddenKeyword returns the first mutating keyword found as a
// whole word, or "" when the query is clean. Matching is done on word
// boundaries so column names like "created_at" do not trip it.
func findForbiddenKeyword(query string) string {
	words := splitIdentWords(strings.ToLower(query))
	for _, kw := range forbiddenKeywords {
		if words[kw] {
			return kw
		}
	}
	return ""
}

func splitIdentWords(s string) map[string]bool {
	words := make(map[string]bool)
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words[cur.String()] = true
			cur.Reset()
		}
	}
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return words
}
