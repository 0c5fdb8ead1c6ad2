package ir

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberRE = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsNumeric reports whether the whole of s is a decimal number literal.
func IsNumeric(s string) bool {
	return numberRE.MatchString(s)
}

// ParseNumber parses s when IsNumeric(s).
func ParseNumber(s string) (float64, bool) {
	if !IsNumeric(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range literals still carry a usable ±Inf or 0; refuse them
		return 0, false
	}
	return f, true
}

// FormatNumber renders f in its shortest literal form: integers without a
// fraction, exponent notation only for very large or very small values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Finite reports whether a number node can be written as a literal in
// JSON or TOML.
func (y *Node) Finite() bool {
	return !math.IsNaN(y.Float64) && !math.IsInf(y.Float64, 0)
}
