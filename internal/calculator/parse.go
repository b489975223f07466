package calculator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numericPrefix matches the longest leading decimal number in a string,
// e.g. "12.5abc" -> "12.5", ".5" -> ".5", "1e3x" -> "1e3".
var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseNumber reads a number from user-typed text. Leading whitespace is
// skipped and trailing garbage after the numeric prefix is ignored.
// The second return is false when no number could be read.
func ParseNumber(text string) (float64, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	match := numericPrefix.FindString(s)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	// Out-of-range exponents still yield ±Inf or 0.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// CoercePercent turns percent text into a number, defaulting to 0.
func CoercePercent(text string) float64 {
	v, ok := ParseNumber(text)
	if !ok || math.IsNaN(v) {
		return 0
	}
	return v
}

// CoerceTotal turns declared-total text into a number. Zero is returned when
// the text is empty or unusable, which Allocate treats as "no declared total".
func CoerceTotal(text string) float64 {
	v, ok := ParseNumber(text)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CoercePrice maps NaN and infinite prices to zero.
func CoercePrice(price float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}
