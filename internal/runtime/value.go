package runtime

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// stringify renders a submitted scalar the way it is compared and measured:
// booleans as "true"/"false", whole numbers without a decimal point.
func stringify(v any) string {
	return cast.ToString(v)
}

// isBlank reports whether a submitted value counts as absent: nil, or a
// value whose string form is empty or whitespace-only.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	return strings.TrimSpace(stringify(v)) == ""
}

// isMissing reports whether a value is absent in the strict sense used by
// cross-field operand checks: not submitted at all, or submitted as null.
func isMissing(data map[string]any, field string) bool {
	v, ok := data[field]
	return !ok || v == nil
}

// parseNumber parses a submitted value as a float the way clients typed it.
// Booleans and other non-numeric shapes are parse failures, not coercions.
func parseNumber(v any) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(stringify(v)), 64)
}
