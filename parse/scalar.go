package parse

import (
	"strconv"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"
)

// quoted reports whether s is wrapped in a matching pair of single or
// double quotes.
func quoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '\'') && s[len(s)-1] == q
}

// unquoteEscaped strips the quotes from a quoted s, decoding backslash
// escapes in a double quoted one. Single quoted strings and undecodable
// double quoted ones lose just their quotes.
func unquoteEscaped(s string) string {
	if !quoted(s) {
		return s
	}
	if s[0] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s[1 : len(s)-1]
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// coerceScalar applies, in order: unquoting, number, boolean, text.
func coerceScalar(s string) *ir.Node {
	s = strings.TrimSpace(s)
	if quoted(s) {
		return ir.FromString(unquoteEscaped(s))
	}
	if f, ok := ir.ParseNumber(s); ok {
		return ir.FromFloat(f)
	}
	if b, ok := parseBool(s); ok {
		return ir.FromBool(b)
	}
	return ir.FromString(s)
}

// splitLines splits on \n and drops a trailing \r from each line.
func splitLines(d []byte) []string {
	lines := strings.Split(string(d), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

func isContent(trimmed string) bool {
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}
