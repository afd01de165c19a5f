package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// looseFloat parses the leading numeric prefix of a rendered value, the way
// the storefront's grid and order documents expect ("12.50", "$12.50",
// "12.50 USD" all read as 12.5). Unparsable input yields (0, false).
func looseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "$€£ ")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenDot:
			seenDot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numericValue coerces a heterogeneously-typed document field into a float.
// JSON decoding produces float64 for numbers, but seeded and legacy records
// also carry json.Number, ints and strings.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		return looseFloat(x.String())
	case string:
		return looseFloat(x)
	default:
		return 0, false
	}
}

// quantityValue coerces a quantity field into a whole number, truncating
// fractional input. Unparsable values count as zero.
func quantityValue(v any) int {
	f, ok := numericValue(v)
	if !ok {
		return 0
	}
	return int(f)
}
