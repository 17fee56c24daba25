package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxFractionDigits is the precision of non-integral results.
const maxFractionDigits = 8

// Format renders a result for display. Whole numbers print without a
// fraction. Other values print their shortest round-trip form, rounded to
// eight fractional digits only when that form carries more, and anything
// longer than MaxDisplayLength falls back to %.4e. NaN and ±Inf render as
// ErrorValue.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorValue
	}

	var s string
	if v == math.Trunc(v) {
		if v == 0 {
			return "0"
		}
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', -1, 64)
		if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > maxFractionDigits {
			s = strconv.FormatFloat(v, 'f', maxFractionDigits, 64)
		}
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "-0" {
			s = "0"
		}
	}

	if len(s) > MaxDisplayLength {
		return formatScientific(v)
	}
	return s
}

func formatScientific(v float64) string {
	return fmt.Sprintf("%.4e", v)
}
