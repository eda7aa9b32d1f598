package translate

import (
	"fmt"
	"regexp"
	"strings"

	"go.starlark.net/syntax"
)

var (
	resultAssignPattern = regexp.MustCompile(`(?m)^\s*result\s*=([^=]|$)`)
	bareAssignPattern   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s*=([^=]|$)`)
)

// validateExpression cleans a model response and checks that it is a
// small expression program assigning to the required `result` binding.
// The program is parsed for syntax only; it is never executed here.
func validateExpression(raw string) (string, string) {
	clean := stripCodeFences(raw)
	if clean == "" {
		return "", "the response was empty"
	}

	if !resultAssignPattern.MatchString(clean) {
		clean = salvageResultAssignment(clean)
	}
	if !resultAssignPattern.MatchString(clean) {
		return "", "the program does not assign to the required `result` variable"
	}

	if strings.Contains(clean, "import ") {
		return "", "the program contains a forbidden import statement"
	}

	file, err := syntax.Parse("query.star", clean, 0)
	if err != nil {
		return "", fmt.Sprintf("the program has a syntax error: %v", err)
	}
	if containsLoad(file) {
		return "", "the program contains a forbidden load statement"
	}

	return clean, ""
}

// containsLoad reports whether the parsed program uses Starlark's module
// loading statement anywhere, including nested positions.
func containsLoad(file *syntax.File) bool {
	found := false
	syntax.Walk(file, func(n syntax.Node) bool {
		if _, ok := n.(*syntax.LoadStmt); ok {
			found = true
			return false
		}
		return !found
	})
	return found
}

// salvageResultAssignment rewrites a trailing bare expression into a
// `result =` assignment. A program whose last line is already a
// statement is returned unchanged.
func salvageResultAssignment(code string) string {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" || bareAssignPattern.MatchString(last) || strings.HasPrefix(last, "#") {
		return code
	}
	lines[len(lines)-1] = "result = " + last
	return strings.Join(lines, "\n")
}
