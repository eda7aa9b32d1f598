package translate

import (
	"encoding/json"
	"fmt"
	"strings"
)

var supportedPlotTypes = map[string]bool{
	"bar":       true,
	"line":      true,
	"scatter":   true,
	"histogram": true,
	"box":       true,
	"pie":       true,
}

// singleAxisPlots are rendered from exactly one column.
var singleAxisPlots = map[string]bool{
	"histogram": true,
	"box":       true,
	"pie":       true,
}

// validateViz extracts the JSON object from a model response and checks
// that it names a supported plot type whose columns exist in the schema.
func validateViz(raw string, schema *Schema) (*VizParams, string) {
	obj, ok := extractJSONObject(raw)
	if !ok {
		return nil, fmt.Sprintf("the response does not contain a JSON object: %q", truncateForError(raw, 200))
	}

	var params VizParams
	if err := json.Unmarshal([]byte(obj), &params); err != nil {
		return nil, fmt.Sprintf("the response is not valid JSON: %v", err)
	}

	// The model may decline with an explanation of its own.
	if params.Error != "" {
		return nil, params.Error
	}

	if params.PlotType == "" {
		return nil, "the JSON object is missing the required plot_type field"
	}
	params.PlotType = strings.ToLower(params.PlotType)
	if !supportedPlotTypes[params.PlotType] {
		return nil, fmt.Sprintf("unsupported plot type %q; supported types are bar, line, scatter, histogram, box, pie", params.PlotType)
	}

	for field, col := range map[string]string{
		"x_col":     params.XCol,
		"y_col":     params.YCol,
		"color_col": params.ColorCol,
		"size_col":  params.SizeCol,
	} {
		if col != "" && !schema.HasColumn(col) {
			return nil, fmt.Sprintf("%s references column %q which does not exist; available columns are %s",
				field, col, strings.Join(schema.ColumnNames(), ", "))
		}
	}

	if params.XCol == "" {
		return nil, fmt.Sprintf("a %s plot requires x_col to be set", params.PlotType)
	}
	if singleAxisPlots[params.PlotType] {
		if params.YCol != "" {
			return nil, fmt.Sprintf("a %s plot uses exactly one column; set x_col and leave y_col empty", params.PlotType)
		}
	} else if params.YCol == "" && params.PlotType != "bar" {
		return nil, fmt.Sprintf("a %s plot requires both x_col and y_col", params.PlotType)
	}

	return &params, ""
}

// extractJSONObject returns the first brace-balanced JSON object inside
// s. The model often wraps its answer in prose, so scanning for the
// object is more reliable than unmarshalling the whole response.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
