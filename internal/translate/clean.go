package translate

import (
	"regexp"
	"strings"
)

var fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")

// stripCodeFences removes a surrounding Markdown code fence from a model
// response, keeping only its content. Responses without fences are
// returned trimmed.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if m := fencedBlockPattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Unterminated fence: drop the opening fence line and keep the rest.
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			return strings.TrimSpace(s[idx+1:])
		}
		return ""
	}
	return s
}

// truncateForError shortens model output quoted inside error messages so
// validation feedback stays readable.
func truncateForError(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
