package domain

import "strconv"

// Record is one player as delivered by the upstream feed. The feed guarantees
// no fixed schema, only a known set of possible field names, so records stay
// dynamic and are read through typed accessors instead of a struct.
type Record map[string]any

// StringOr returns the field as a string, converting numeric values when the
// upstream encodes a field (e.g. jersey number) as a number.
func (r Record) StringOr(field, fallback string) string {
	raw, ok := r[field]
	if !ok || raw == nil {
		return fallback
	}
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fallback
	}
}

// Bool returns the field as a boolean, false when absent or not a boolean.
func (r Record) Bool(field string) bool {
	v, ok := r[field].(bool)
	return ok && v
}
