package sqlutil

import (
	"strconv"
	"strings"
	"unicode"
)

// maxIdentifierLength is the MySQL limit for table and column names.
const maxIdentifierLength = 64

// SanitizeIdentifier converts an arbitrary column heading into a valid
// MySQL identifier: lowercase, non-alphanumeric runs become single
// underscores, a leading digit gets an underscore prefix, and the
// result is capped at the MySQL identifier length limit.
// Example: "Total Sales ($)" -> "total_sales"
func SanitizeIdentifier(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) && r <= unicode.MaxASCII || unicode.IsDigit(r) && r <= unicode.MaxASCII {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	s := strings.Trim(b.String(), "_")
	if s == "" {
		return "col"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	if len(s) > maxIdentifierLength {
		s = s[:maxIdentifierLength]
	}
	return s
}

// SanitizeIdentifiers sanitizes a list of headings, appending numeric
// suffixes so the result contains no duplicates.
func SanitizeIdentifiers(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		s := SanitizeIdentifier(name)
		if n, dup := seen[s]; dup {
			seen[s] = n + 1
			s = uniqueSuffix(s, n, seen)
		}
		seen[s] = 1
		out[i] = s
	}
	return out
}

func uniqueSuffix(base string, n int, seen map[string]int) string {
	for {
		suffix := "_" + strconv.Itoa(n)
		trimmed := base
		if len(trimmed)+len(suffix) > maxIdentifierLength {
			trimmed = trimmed[:maxIdentifierLength-len(suffix)]
		}
		candidate := trimmed + suffix
		if _, dup := seen[candidate]; !dup {
			return candidate
		}
		n++
	}
}
