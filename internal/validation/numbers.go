package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseFloat reads the longest numeric prefix of s after leading whitespace,
// so "12.5kg" is 12.5. Inputs with no numeric prefix, and NaN, report false.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1), true
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1), true
	}
	prefix := leadingNumber.FindString(s)
	if prefix == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Out-of-range exponents come back as ±Inf with ErrRange.
		if ne, isNum := err.(*strconv.NumError); isNum && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FloatOrZero is ParseFloat with unparseable input counted as 0.
func FloatOrZero(s string) float64 {
	f, parsed := ParseFloat(s)
	if !parsed {
		return 0
	}
	return f
}

// OptionalFloat turns a trimmed numeric string into a pointer, nil when empty
// or unparseable.
func OptionalFloat(s string) *float64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	f, parsed := ParseFloat(s)
	if !parsed {
		return nil
	}
	return &f
}

// FormatNumber renders f the shortest way, "80" rather than "80.000000".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
