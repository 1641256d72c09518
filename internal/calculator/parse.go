package calculator

import (
	"strconv"
	"strings"
)

// parseFloat reads the longest decimal number at the start of s, the way a
// browser number field is read: "12abc" is 12, ".5" is 0.5, "1e2" is 100.
// It reports false when s has no numeric prefix or the value is not finite.
func parseFloat(s string) (float64, bool) {
	prefix := floatPrefix(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// parseInt reads the integer at the start of s, so "2.9" is 2.
// Values outside int64 count as unparseable.
func parseInt(s string) (int64, bool) {
	prefix := intPrefix(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func floatPrefix(s string) string {
	i := skipSign(s)
	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// Exponent only counts when at least one digit follows it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		j += skipSign(s[j:])
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}
	return s[:i]
}

func intPrefix(s string) string {
	i := skipSign(s)
	n := countDigits(s[i:])
	if n == 0 {
		return ""
	}
	return s[:i+n]
}

func skipSign(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
