package domain

import (
	"strconv"
	"strings"
)

// Normalize extracts a numeric value for the given field. It reports not-ok
// when the field is absent, null, or not parseable as a number. Textual
// values may carry a trailing percent marker and a comma decimal separator
// ("92,3%" -> 92.3). A numeric zero is a valid value; absence is not.
func Normalize(rec Record, field string) (float64, bool) {
	raw, ok := rec[field]
	if !ok || raw == nil {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimSuffix(s, "%")
		s = strings.Replace(s, ",", ".", 1)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// NormalizeOr is the display-context variant of Normalize: unusable values
// collapse to zero instead of excluding the record. Used for secondary fields
// (games, wins, losses, ties) on records already known to be rankable.
func NormalizeOr(rec Record, field string) float64 {
	v, ok := Normalize(rec, field)
	if !ok {
		return 0
	}
	return v
}
