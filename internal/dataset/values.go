package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// ToFloat64 converts a stored value to float64.
// Supports the numeric Go types that database drivers and CSV inference
// produce. The second return value reports whether conversion succeeded.
func ToFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int:
		return float64(f), true
	case int64:
		return float64(f), true
	case int32:
		return float64(f), true
	case int16:
		return float64(f), true
	case int8:
		return float64(f), true
	case uint:
		return float64(f), true
	case uint64:
		return float64(f), true
	case uint32:
		return float64(f), true
	case uint16:
		return float64(f), true
	case uint8:
		return float64(f), true
	default:
		return 0, false
	}
}

// FormatValue renders a value as a stable string. Used for row keys,
// distinct counting, and CSV output.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ValueSize estimates the in-memory footprint of a single value in bytes.
// Mirrors a deep memory estimate: fixed-width types use their width, strings
// use header plus payload.
func ValueSize(v any) int {
	switch t := v.(type) {
	case nil:
		return 8
	case string:
		return 16 + len(t)
	case bool:
		return 1
	case float64:
		return 8
	case time.Time:
		return 24
	default:
		return 8
	}
}
